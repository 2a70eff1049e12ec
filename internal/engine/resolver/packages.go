package resolver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"github.com/abvthecity/oxiclean/internal/core/domain"
)

// exportConditions are consulted in order inside exports["."].
var exportConditions = []string{"import", "require", "default"}

type packageJSON struct {
	Exports json.RawMessage `json:"exports"`
	Module  any             `json:"module"`
	Main    any             `json:"main"`
}

// resolvePackage walks from dir up to the workspace root looking for
// node_modules/<request>. When dir lies outside the root the walk ends at the
// filesystem root.
func (r *Resolver) resolvePackage(dir, request string) (string, bool) {
	bounded := isWithin(r.root, dir)
	current := dir
	for {
		if resolved, ok := r.resolveInNodeModules(current, request); ok {
			return resolved, true
		}
		if bounded && current == r.root {
			return "", false
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// resolveInNodeModules resolves request inside dir/node_modules. Only an existing
// package directory qualifies; it is entered through its manifest, then its index files.
func (r *Resolver) resolveInNodeModules(dir, request string) (string, bool) {
	pkgDir := filepath.Join(dir, domain.NodeModulesDirName, request)
	if info, err := os.Stat(pkgDir); err != nil || !info.IsDir() {
		return "", false
	}

	manifest := filepath.Join(pkgDir, domain.PackageJSONName)
	if pathExists(manifest) {
		pkg, err := readPackageJSON(manifest)
		if err != nil {
			r.logger.Debug(fmt.Sprintf("ignoring %s: %v", manifest, err))
		} else if resolved, ok := resolveManifest(pkgDir, pkg); ok {
			return resolved, true
		}
	}

	return probeIndex(pkgDir)
}

func readPackageJSON(path string) (*packageJSON, error) {
	//nolint:gosec // path is inside node_modules of the workspace
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPackageJSONInvalid.Error())
	}
	var pkg packageJSON
	if err := json.Unmarshal(content, &pkg); err != nil {
		return nil, zerr.Wrap(err, domain.ErrPackageJSONInvalid.Error())
	}
	return &pkg, nil
}

// resolveManifest applies exports, then module, then main.
func resolveManifest(pkgDir string, pkg *packageJSON) (string, bool) {
	for _, target := range exportTargets(pkg.Exports) {
		if resolved, ok := ResolveFile(filepath.Join(pkgDir, strings.TrimPrefix(target, "./"))); ok {
			return resolved, true
		}
	}
	for _, field := range []any{pkg.Module, pkg.Main} {
		target, ok := field.(string)
		if !ok {
			continue
		}
		if resolved, ok := ResolveFile(filepath.Join(pkgDir, target)); ok {
			return resolved, true
		}
	}
	return "", false
}

// exportTargets lists the candidate entry points of an exports field in priority order.
func exportTargets(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var exports any
	if err := json.Unmarshal(raw, &exports); err != nil {
		return nil
	}

	switch v := exports.(type) {
	case string:
		return []string{v}
	case map[string]any:
		dot, ok := v["."]
		if !ok {
			return nil
		}
		switch d := dot.(type) {
		case string:
			return []string{d}
		case map[string]any:
			var targets []string
			for _, cond := range exportConditions {
				if s, ok := d[cond].(string); ok {
					targets = append(targets, s)
				}
			}
			return targets
		}
	}
	return nil
}
