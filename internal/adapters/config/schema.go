package config

// Configfile represents the structure of the .oxiclean.yaml configuration file.
type Configfile struct {
	ImportBloat CheckDTO `yaml:"import-bloat"`
	ImportDepth CheckDTO `yaml:"import-depth"`
	Exclude     []string `yaml:"exclude"`
	Jobs        int      `yaml:"jobs"`
}

// CheckDTO represents the settings of a single check. Pointer fields distinguish
// "not set" from the zero value.
type CheckDTO struct {
	Threshold *uint   `yaml:"threshold"`
	EntryGlob *string `yaml:"entry-glob"`
}
