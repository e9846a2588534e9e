package toml

import "fmt"

const currentSchemaVersion = 1

type journalSchema struct {
	Version int           `toml:"version"`
	Events  []eventSchema `toml:"events"`
}

type eventSchema struct {
	Key         string `toml:"key"`
	ProcessedAt string `toml:"processed_at"`
}

func (s *journalSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s journalSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported journal schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
