package server

// DefaultAddress listens on all interfaces, port 3003.
const DefaultAddress = ":3003"

// Config defines how the HTTP listener is set up.
type Config struct {
	// Address is the host:port the listener binds to.
	//
	// Environment variable: SERVER_ADDRESS
	// Default: ":3003"
	Address string `mapstructure:"address"`

	// MaxConnections bounds the number of connections accepted at once.
	// With 1, keep-alives are disabled and each connection carries a single
	// request that is fully handled before the next connection is accepted.
	// Zero means no bound.
	//
	// Environment variable: SERVER_MAX_CONNECTIONS
	// Default: 1
	MaxConnections int `mapstructure:"max_connections"`
}
