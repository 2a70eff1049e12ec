package domain

const (
	// ConfigFileName is the optional configuration file read from the workspace root.
	ConfigFileName = ".oxiclean.yaml"

	// GitDirName marks a workspace root.
	GitDirName = ".git"

	// NodeModulesDirName is the package installation directory searched for bare requests.
	NodeModulesDirName = "node_modules"

	// PackageJSONName is the package manifest inside a node_modules package.
	PackageJSONName = "package.json"

	// TsconfigName is the TypeScript project file that carries path aliases.
	TsconfigName = "tsconfig.json"

	// SourceDirSegment selects entries when no entry glob is given.
	SourceDirSegment = "/src/"

	// DefaultBloatThreshold is the reachable module count that triggers a warning.
	DefaultBloatThreshold = 200

	// DefaultDepthThreshold is the import depth that triggers a warning.
	DefaultDepthThreshold = 10
)
