package config

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	// BrokerConfigPath is the well-known relative path of the broker
	// configuration resource.
	BrokerConfigPath = "config/server.properties"
	// VerifyClientVersionEnableProp switches the secure request header
	// layout on brokers that carry the configuration resource.
	VerifyClientVersionEnableProp = "verify.client.version.enable"
)

// ModeResolver determines the process-wide secure mode flag from the
// deployment environment. The probe runs at most once per resolver; the
// outcome, success or failure, is memoized and later environment changes are
// never observed.
type ModeResolver struct {
	source ConfigSource

	once   sync.Once
	secure bool
	err    error
}

func NewModeResolver(source ConfigSource) *ModeResolver {
	return &ModeResolver{source: source}
}

// Resolve returns the secure mode flag. A missing configuration resource
// means the process runs without broker configuration, so it is treated as a
// client and secure mode applies. A present resource selects the mode via
// the verify.client.version.enable property, absent or unparseable values
// reading as false. A resource that exists but cannot be read yields a
// *ConfigIOError.
func (m *ModeResolver) Resolve() (bool, error) {
	m.once.Do(func() {
		m.secure, m.err = m.resolve()
	})
	return m.secure, m.err
}

func (m *ModeResolver) resolve() (bool, error) {
	props, err := m.source.Lookup(BrokerConfigPath)
	if errors.Is(err, ErrResourceNotFound) {
		log.Warn().
			Str("path", BrokerConfigPath).
			Msg("Broker configuration not found, assuming client side and using the security request header")
		return true, nil
	}
	if err != nil {
		return false, err
	}
	secure := props.GetBool(VerifyClientVersionEnableProp, false)
	log.Info().
		Str("path", BrokerConfigPath).
		Bool(VerifyClientVersionEnableProp, secure).
		Msg("Resolved request header mode from broker configuration")
	return secure, nil
}

var defaultResolver = NewModeResolver(FileSource{})

// SecureMode resolves the secure mode flag for the process using the default
// filesystem source. The first call probes the environment; every later call
// returns the memoized result.
func SecureMode() (bool, error) {
	return defaultResolver.Resolve()
}
