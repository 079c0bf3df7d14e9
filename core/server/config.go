package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to. Empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000"`
	// ShutdownTimeoutSeconds bounds how long Stop waits for in-flight requests.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"10"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// DefaultOrigins is the allow-list used when ALLOWED_ORIGINS is unset:
// the local web client and the local mobile emulator.
var DefaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:19006",
}

// ParseOrigins turns a comma-separated list of hosts into the CORS allow-list.
// Values are kept in order and are not validated. Blank entries are dropped,
// so an empty input allows no origin at all.
func ParseOrigins(raw string) []string {
	origins := []string{}
	for _, part := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
