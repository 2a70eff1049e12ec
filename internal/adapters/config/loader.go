// Package config provides the configuration loader for oxiclean.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/abvthecity/oxiclean/internal/core/domain"
	"github.com/abvthecity/oxiclean/internal/core/ports"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// DiscoverRoot walks up from cwd and returns the first directory that contains a .git entry.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	currentDir := cwd
	for {
		if _, err := os.Stat(filepath.Join(currentDir, domain.GitDirName)); err == nil {
			l.Logger.Debug(fmt.Sprintf("found git root at %s", currentDir))
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrWorkspaceRootNotFound, "cwd", cwd)
}

// Load reads the configuration. An empty path selects .oxiclean.yaml in root, which may
// be absent; an explicit path must exist.
func (l *Loader) Load(root, path string) (*domain.Config, error) {
	if path == "" {
		path = filepath.Join(root, domain.ConfigFileName)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return &domain.Config{}, nil
		}
	}

	var file Configfile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.Logger.Debug(fmt.Sprintf("loaded config from %s", path))

	jobs := file.Jobs
	if jobs < 0 {
		l.Logger.Warn(fmt.Sprintf("ignoring negative jobs value %d in %s", jobs, path))
		jobs = 0
	}

	return &domain.Config{
		Bloat:   toCheckConfig(file.ImportBloat),
		Depth:   toCheckConfig(file.ImportDepth),
		Exclude: file.Exclude,
		Jobs:    jobs,
	}, nil
}

func toCheckConfig(dto CheckDTO) domain.CheckConfig {
	return domain.CheckConfig{Threshold: dto.Threshold, EntryGlob: dto.EntryGlob}
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is the workspace config or given by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
