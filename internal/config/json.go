package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/taskdesk/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config fields untouched.
type JsonConfig struct {
	DataDir       *string `json:"data_dir"`
	UsersFileName *string `json:"users_file"`
	LogLevel      *string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is resolved from the -c / -config flags via
// flagx.JsonConfigFlags; if empty, no JSON is loaded. Read or unmarshal
// errors panic, matching the fail-fast behavior of the flag stage.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
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

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.UsersFileName != nil {
		cfg.UsersFileName = *jc.UsersFileName
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
