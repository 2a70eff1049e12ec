package domain

import "go.trai.ch/zerr"

var (
	// ErrWorkspaceRootNotFound is returned when no --root is given and no ancestor of the
	// working directory contains a .git entry.
	ErrWorkspaceRootNotFound = zerr.New("could not find .git directory in any parent folder")

	// ErrNoEntryFiles is returned when the walk finds no entry file under the root.
	ErrNoEntryFiles = zerr.New("no entry files found")

	// ErrViolationsFound is returned when a check produced at least one warning.
	ErrViolationsFound = zerr.New("threshold violations found")

	// ErrFileReadFailed is returned when a source file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read source file")

	// ErrParseFailed is returned when the parser cannot produce a tree for a file.
	ErrParseFailed = zerr.New("failed to parse source file")

	// ErrUnsupportedDialect is returned when a file extension has no grammar.
	ErrUnsupportedDialect = zerr.New("unsupported source file extension")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidExcludePattern is returned when an exclude glob does not compile.
	ErrInvalidExcludePattern = zerr.New("invalid exclude pattern")

	// ErrTsconfigReadFailed is returned when a tsconfig.json cannot be read.
	ErrTsconfigReadFailed = zerr.New("failed to read tsconfig")

	// ErrTsconfigParseFailed is returned when a tsconfig.json is not valid JSON after comment stripping.
	ErrTsconfigParseFailed = zerr.New("failed to parse tsconfig")

	// ErrPackageJSONInvalid is returned when a package.json cannot be decoded.
	ErrPackageJSONInvalid = zerr.New("invalid package.json")

	// ErrInvalidLogFormat is returned when --log-format is neither text nor json.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'text' or 'json'")
)
