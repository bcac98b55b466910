package domain

// Config represents the toolbelt configuration loaded from toolbelt.yaml.
type Config struct {
	Limits   LimitsConfig
	History  HistoryConfig
	Defaults DefaultsConfig
}

// LimitsConfig bounds the work a single calculation may do.
type LimitsConfig struct {
	// MaxValue is the largest accepted LCM input. Trial division is linear in it.
	MaxValue int64
	// MaxNumbers is the largest accepted count of LCM inputs.
	MaxNumbers int
	// BatchWorkers bounds concurrent evaluations in batch mode.
	BatchWorkers int
}

type HistoryConfig struct {
	Enabled bool
	Dir     string
}

type DefaultsConfig struct {
	Format string
}

// DefaultConfig provides sane defaults if toolbelt.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Limits: LimitsConfig{
			MaxValue:     1_000_000,
			MaxNumbers:   20,
			BatchWorkers: 4,
		},
		History: HistoryConfig{
			Enabled: true,
			Dir:     "history",
		},
		Defaults: DefaultsConfig{
			Format: "pretty",
		},
	}
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
