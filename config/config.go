package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	DataTypeXYZ = "xyz"
	DataTypeMDB = "mdb"
)

type Config struct {
	HTTPServerPort        string `json:"http_server_port"`
	NumberOfResults       int    `json:"number_of_results"`       // number of latest molecules returned to client
	ClientRefreshInterval int    `json:"client_refresh_interval"` // period in (s) between when clients reload results

	DataType   string `json:"data_type"`   // "xyz" or "mdb"
	DataSource string `json:"data_source"` // If xyz: folder of xyz files. If mdb: connection string to mdb file database.
	DebugMode  bool   `json:"debug_mode"`  // print logs out to console instead of file when true

	RemoteMachineAddress string `json:"remote_machine_address"` // optional: mix in molecules from another dashboard

	RemoteDatabase struct {
		Address  string `json:"address"`
		User     string `json:"user"`
		Password string `json:"password"`
		Database string `json:"database"`
		Table    string `json:"table"`
	} `json:"remote_database"`
}

func LoadConfig(filePath string) (*Config, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a JSON config over the defaults and validates it.
func Decode(r io.Reader) (*Config, error) {
	conf := Config{
		HTTPServerPort:        "80",
		NumberOfResults:       20,
		ClientRefreshInterval: 10,
		DataType:              DataTypeXYZ,
	}

	if err := json.NewDecoder(r).Decode(&conf); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	// validation
	conf.DataType = strings.ToLower(conf.DataType)
	if conf.DataType != DataTypeXYZ && conf.DataType != DataTypeMDB {
		return nil, fmt.Errorf("unknown data_type %q in config file", conf.DataType)
	}
	if conf.DataSource == "" {
		return nil, errors.New("no data_source provided in config file")
	}
	if conf.NumberOfResults <= 0 {
		return nil, fmt.Errorf("number_of_results must be positive, got %d", conf.NumberOfResults)
	}

	return &conf, nil
}
