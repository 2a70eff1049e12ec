// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/abvthecity/oxiclean/internal/adapters/config"
	_ "github.com/abvthecity/oxiclean/internal/adapters/fs"
	_ "github.com/abvthecity/oxiclean/internal/adapters/logger"
	_ "github.com/abvthecity/oxiclean/internal/adapters/parser"
	_ "github.com/abvthecity/oxiclean/internal/adapters/report"
	_ "github.com/abvthecity/oxiclean/internal/adapters/telemetry"
	_ "github.com/abvthecity/oxiclean/internal/adapters/tsconfig"
	// Register app and engine nodes.
	_ "github.com/abvthecity/oxiclean/internal/app"
	_ "github.com/abvthecity/oxiclean/internal/engine/checker"
	_ "github.com/abvthecity/oxiclean/internal/engine/scheduler"
)
