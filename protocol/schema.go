package protocol

// FieldType identifies the wire encoding of a schema field.
type FieldType int8

const (
	TypeInt16 FieldType = iota
	TypeInt32
	TypeString
)

// Field is a named, typed slot in a wire layout.
type Field struct {
	Name string
	Type FieldType
}

// Schema is the ordered field layout of a wire record.
type Schema []Field

// Request header field names.
const (
	FieldAPIKey        = "api_key"
	FieldAPIVersion    = "api_version"
	FieldClientID      = "client_id"
	FieldClientVersion = "client_version"
	FieldCorrelationID = "correlation_id"
)

var (
	requestHeaderSchema = Schema{
		{FieldAPIKey, TypeInt16},
		{FieldAPIVersion, TypeInt16},
		{FieldClientID, TypeString},
		{FieldCorrelationID, TypeInt32},
	}
	requestSecurityHeaderSchema = Schema{
		{FieldAPIKey, TypeInt16},
		{FieldAPIVersion, TypeInt16},
		{FieldClientID, TypeString},
		{FieldClientVersion, TypeString},
		{FieldCorrelationID, TypeInt32},
	}
)

// HeaderSchema returns the request header layout for the given mode. The
// secure layout carries a client_version string immediately after client_id;
// the plain layout omits the field entirely.
func HeaderSchema(secure bool) Schema {
	if secure {
		return requestSecurityHeaderSchema
	}
	return requestHeaderSchema
}

// Field returns the named field of the schema.
func (s Schema) Field(name string) (Field, error) {
	for _, f := range s {
		if f.Name == name {
			return f, nil
		}
	}
	return Field{}, NewProtocolException(ExceptionUnknownField,
		"No field named %s in this schema", name)
}
