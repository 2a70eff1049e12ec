package domain

import "strings"

// SpecKind distinguishes how a module was requested.
type SpecKind uint8

const (
	// SpecStatic is an import declaration or a require call.
	SpecStatic SpecKind = iota
	// SpecDynamic is an import() expression.
	SpecDynamic
)

// String returns the lowercase name of the kind.
func (k SpecKind) String() string {
	if k == SpecDynamic {
		return "dynamic"
	}
	return "static"
}

// Specifier is a raw module request found in a source file.
type Specifier struct {
	Request string
	Kind    SpecKind
}

// IsRelativeRequest reports whether request is resolved against the importing file's
// directory rather than through aliases or node_modules.
func IsRelativeRequest(request string) bool {
	return strings.HasPrefix(request, "./") ||
		strings.HasPrefix(request, "../") ||
		strings.HasPrefix(request, "/")
}
