package server

// ServerConfig is the configuration of the recordd daemon.
//
// All fields are optional. Missing values fall back to defaults,
// and the store URI may come from the environment instead.
type ServerConfig struct {
	// port which the server listens on. all interfaces.
	ServerPort string `yaml:"port"`

	// connection string for the record store.
	StoreURI string `yaml:"storeURI"`
}
