package server

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// StoreURIEnvName is the environment variable overriding the store URI.
	StoreURIEnvName = "RECORDBIN_STORE_URI"

	DefaultStoreURI   = "mongodb://localhost:27017"
	DefaultServerPort = "5000"
)

// LoadServerConfig builds the effective server configuration.
//
// It reads the YAML file at filepath when given, then lets the
// RECORDBIN_STORE_URI environment variable override the store URI,
// and fills anything still missing with defaults.
func LoadServerConfig(filepath string) (*ServerConfig, error) {
	out := &ServerConfig{}
	if filepath != "" {
		content, err := os.ReadFile(filepath)
		if err != nil {
			return nil, err
		}
		out, err = Unmarshal(content)
		if err != nil {
			return nil, err
		}
	}

	if uri := os.Getenv(StoreURIEnvName); uri != "" {
		out.StoreURI = uri
	}
	if out.StoreURI == "" {
		out.StoreURI = DefaultStoreURI
	}
	if out.ServerPort == "" {
		out.ServerPort = DefaultServerPort
	}

	return out, nil
}

func Unmarshal(conf []byte) (*ServerConfig, error) {
	var out ServerConfig
	err := yaml.Unmarshal(conf, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
