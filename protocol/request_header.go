package protocol

import "fmt"

// ClientVersionTag is the vendor identification written into the
// client_version field of every secure mode header. The tag is forced at
// encode time: header values cannot carry a different one onto the wire.
const ClientVersionTag = "cmss-client"

// RequestHeader is the header for a request in the Kafka protocol.
// ClientVersion is only meaningful in secure mode; in plain mode the field
// does not exist on the wire.
type RequestHeader struct {
	APIKey        int16
	APIVersion    int16
	ClientID      string
	ClientVersion string
	CorrelationID int32
}

func (h RequestHeader) String() string {
	if h.ClientVersion != "" {
		return fmt.Sprintf("api_key=%d api_version=%d client_id=%s client_version=%s correlation_id=%d",
			h.APIKey, h.APIVersion, h.ClientID, h.ClientVersion, h.CorrelationID)
	}
	return fmt.Sprintf("api_key=%d api_version=%d client_id=%s correlation_id=%d",
		h.APIKey, h.APIVersion, h.ClientID, h.CorrelationID)
}

// HeaderCodec encodes and decodes request headers against the layout of a
// single mode. The mode is fixed at construction; encode and decode are
// stateless after that and safe for concurrent use.
type HeaderCodec struct {
	secure bool
	schema Schema
}

func NewHeaderCodec(secure bool) HeaderCodec {
	return HeaderCodec{secure: secure, schema: HeaderSchema(secure)}
}

// Secure reports which layout the codec speaks.
func (c HeaderCodec) Secure() bool {
	return c.secure
}

// Encode renders the header in schema order. In secure mode the
// client_version field is normalized to ClientVersionTag before writing; the
// caller's value never reaches the wire. h is received by value, so the
// caller's header is left untouched.
func (c HeaderCodec) Encode(h RequestHeader) []byte {
	if c.secure {
		h.ClientVersion = ClientVersionTag
	}
	w := NewWriter()
	for _, f := range c.schema {
		switch f.Name {
		case FieldAPIKey:
			w.Int16(h.APIKey)
		case FieldAPIVersion:
			w.Int16(h.APIVersion)
		case FieldClientID:
			w.String(h.ClientID)
		case FieldClientVersion:
			w.String(h.ClientVersion)
		case FieldCorrelationID:
			w.Int32(h.CorrelationID)
		default:
			panic(NewProtocolException(ExceptionUnknownField,
				"Cannot encode field %s", f.Name))
		}
	}
	return w.Data()
}

// Decode reads the header in schema order from the front of data and returns
// it together with the number of bytes consumed. Trailing bytes are left for
// the caller. Truncated input and invalid string lengths fail with the
// malformed_header exception; a schema/codec field mismatch is a programming
// defect and panics, as in Encode.
func (c HeaderCodec) Decode(data []byte) (RequestHeader, int, error) {
	r := NewReader(data)
	h := RequestHeader{}
	for _, f := range c.schema {
		switch f.Name {
		case FieldAPIKey:
			h.APIKey = r.Int16()
		case FieldAPIVersion:
			h.APIVersion = r.Int16()
		case FieldClientID:
			h.ClientID = r.String()
		case FieldClientVersion:
			h.ClientVersion = r.String()
		case FieldCorrelationID:
			h.CorrelationID = r.Int32()
		default:
			panic(NewProtocolException(ExceptionUnknownField,
				"Cannot decode field %s", f.Name))
		}
	}
	if err := r.Err(); err != nil {
		return RequestHeader{}, r.Offset(), err
	}
	return h, r.Offset(), nil
}
