package server

// Config describes how the listener binds and whether cross-origin access
// is permitted. It is a plain immutable value: construct it literally or
// through DefaultConfig, never mutate it afterwards.
//
// Host is a hostname or IP literal (IPv4, IPv6, or wildcard form). It is
// not validated here; an unresolvable host surfaces as ErrInvalidAddress
// from Run.
type Config struct {
	Host        string
	Port        uint16
	CORSEnabled bool
}

// DefaultConfig returns the local-development configuration: loopback
// host, port 8080, CORS enabled.
func DefaultConfig() Config {
	return Config{
		Host:        "127.0.0.1",
		Port:        8080,
		CORSEnabled: true,
	}
}
