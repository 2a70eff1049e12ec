package domain

// CheckConfig holds the per-check settings of the config file. Nil fields were not set.
type CheckConfig struct {
	Threshold *uint
	EntryGlob *string
}

// Config is the workspace configuration read from .oxiclean.yaml.
type Config struct {
	Bloat   CheckConfig
	Depth   CheckConfig
	Exclude []string
	// Jobs is the worker count; zero means one per CPU.
	Jobs int
}

// Check returns the settings for the given check kind.
func (c *Config) Check(kind CheckKind) CheckConfig {
	if c == nil {
		return CheckConfig{}
	}
	if kind == CheckDepth {
		return c.Depth
	}
	return c.Bloat
}
