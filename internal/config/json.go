package config

import (
	"encoding/json"
	"os"

	"github.com/vijay-pawar-99/CampusHire/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config when set.
type JsonConfig struct {
	DataDir      string `json:"data_dir"`
	DataFile     string `json:"data_file"`
	SeedDemoData *bool  `json:"seed_demo_data"`
	LogLevel     string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (via flagx); when neither
// is given, no JSON is loaded. Read or unmarshal errors panic; the host
// treats an explicitly named but unreadable config file as a startup fault.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DataFile != "" {
		cfg.DataFile = jc.DataFile
	}
	if jc.SeedDemoData != nil {
		cfg.SeedDemoData = *jc.SeedDemoData
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
