package ports

import "github.com/abvthecity/oxiclean/internal/core/domain"

// ConfigLoader defines the interface for loading workspace configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// DiscoverRoot walks up from cwd to the nearest directory containing .git.
	DiscoverRoot(cwd string) (string, error)

	// Load reads the config file at path. When path is empty, the default file in root is
	// used and a missing file yields the zero configuration.
	Load(root, path string) (*domain.Config, error)
}
