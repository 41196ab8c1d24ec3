package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional .typeguard.yaml file a generate run reads before
// CLI flags are applied on top, grounded on the teacher's
// sample-projects/config-manager Config struct (a plain yaml.v3-decoded
// struct with tagged fields, no DSL involved since this is ordinary CLI
// configuration, not data the checker validates).
type Config struct {
	SourceGlobs []string `yaml:"sourceGlobs"`
	SchemaOut   string   `yaml:"schemaOut"`
	CodeOut     string   `yaml:"codeOut"`
	Package     string   `yaml:"package"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
