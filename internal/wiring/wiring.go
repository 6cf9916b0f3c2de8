// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/distpack/internal/adapters/cas"
	_ "go.trai.ch/distpack/internal/adapters/config"
	_ "go.trai.ch/distpack/internal/adapters/fs"
	_ "go.trai.ch/distpack/internal/adapters/logger"
	_ "go.trai.ch/distpack/internal/adapters/manifest"
	_ "go.trai.ch/distpack/internal/adapters/shell"
	_ "go.trai.ch/distpack/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/distpack/internal/app"
	_ "go.trai.ch/distpack/internal/engine/pipeline"
)
