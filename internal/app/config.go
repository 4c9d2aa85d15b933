package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rook-computer/favicon/internal/render"
)

const (
	EnvOutDir    = "FAVICON_OUT_DIR"
	EnvBackend   = "FAVICON_BACKEND"
	EnvDebug     = "FAVICON_DEBUG"
	EnvPreviewFB = "FAVICON_PREVIEW_FB"
)

// Config controls where and how the icon is produced. None of it changes
// what the icon looks like.
type Config struct {
	OutDir        string
	Backend       render.Backend
	Debug         bool
	PreviewDevice string
}

func DefaultConfigFromEnv() (Config, error) {
	outDir := os.Getenv(EnvOutDir)
	if outDir == "" {
		outDir = "."
	}

	backend, err := render.ParseBackend(os.Getenv(EnvBackend))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvBackend, err)
	}

	debug := false
	if raw := os.Getenv(EnvDebug); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, raw, err)
		}
		debug = parsed
	}

	return Config{
		OutDir:        outDir,
		Backend:       backend,
		Debug:         debug,
		PreviewDevice: os.Getenv(EnvPreviewFB),
	}, nil
}
