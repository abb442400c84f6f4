package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	conf, err := Decode(strings.NewReader(`{"data_source": "C:/geometries"}`))
	if err != nil {
		t.Fatal(err)
	}
	if conf.HTTPServerPort != "80" || conf.NumberOfResults != 20 || conf.ClientRefreshInterval != 10 {
		t.Errorf("defaults not applied: %+v", conf)
	}
	if conf.DataType != DataTypeXYZ {
		t.Errorf("data type %q", conf.DataType)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{
		"http_server_port": "8080",
		"data_type": "MDB",
		"data_source": "Provider=Microsoft.ACE.OLEDB.12.0;Data Source=geo.mdb;",
		"number_of_results": 5,
		"remote_database": {"address": "db01", "table": "AtomTbl"}
	}`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	conf, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if conf.HTTPServerPort != "8080" || conf.DataType != DataTypeMDB || conf.NumberOfResults != 5 {
		t.Errorf("unexpected config: %+v", conf)
	}
	if conf.RemoteDatabase.Address != "db01" || conf.RemoteDatabase.Table != "AtomTbl" {
		t.Errorf("remote database: %+v", conf.RemoteDatabase)
	}
}

func TestValidation(t *testing.T) {
	bad := []string{
		`{}`,
		`{"data_source": "x", "data_type": "csv"}`,
		`{"data_source": "x", "number_of_results": 0}`,
		`{"data_source": `,
	}
	for _, c := range bad {
		if _, err := Decode(strings.NewReader(c)); err == nil {
			t.Errorf("config %s accepted", c)
		}
	}
}
