package app

import (
	"context"
	"fmt"
	"image"
	"path/filepath"

	"github.com/rook-computer/favicon/internal/export"
	"github.com/rook-computer/favicon/internal/preview"
	"github.com/rook-computer/favicon/internal/render"
)

type App struct {
	Config Config
	Icon   render.Icon
	Logger Logger

	// Preview shows the finished icon on a framebuffer device.
	// Only called when Config.PreviewDevice is set.
	Preview func(device string, icon *image.RGBA) error
}

// Result lists the files written by Run.
type Result struct {
	PNGPath string
	ICOPath string

	// PreviewErr is set when the optional preview failed. The files are
	// already written by then, so it does not fail the run.
	PreviewErr error
}

func New(cfg Config) *App {
	return &App{Config: cfg, Icon: render.TargetIcon{}, Logger: NoopLogger{}, Preview: showPreview}
}

// Run renders the icon once and writes it as PNG, then ICO. The first
// render or write failure is returned and nothing after it runs. A preview
// failure is reported in Result.PreviewErr instead.
func (app *App) Run(ctx context.Context) (Result, error) {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Icon == nil {
		app.Icon = render.TargetIcon{}
	}

	img, err := render.Render(app.Config.Backend, app.Icon)
	if err != nil {
		app.Logger.Errorf("render", "render failed: %v", err)
		return Result{}, err
	}
	app.Logger.Infof("render", "rendered %dx%d icon, backend=%s", img.Bounds().Dx(), img.Bounds().Dy(), app.Config.Backend)

	res := Result{
		PNGPath: filepath.Join(app.Config.OutDir, export.PNGName),
		ICOPath: filepath.Join(app.Config.OutDir, export.ICOName),
	}

	steps := []struct {
		component string
		path      string
		write     func() error
	}{
		{"png", res.PNGPath, func() error { return export.WritePNG(res.PNGPath, img) }},
		{"ico", res.ICOPath, func() error { return export.WriteICO(res.ICOPath, img) }},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := step.write(); err != nil {
			app.Logger.Errorf(step.component, "%v", err)
			return res, err
		}
		app.Logger.Infof(step.component, "wrote %s", step.path)
	}

	if app.Config.PreviewDevice != "" && app.Preview != nil {
		if err := app.Preview(app.Config.PreviewDevice, img); err != nil {
			app.Logger.Errorf("preview", "%v", err)
			res.PreviewErr = fmt.Errorf("preview: %w", err)
		} else {
			app.Logger.Infof("preview", "shown on %s", app.Config.PreviewDevice)
		}
	}
	return res, nil
}

func showPreview(device string, icon *image.RGBA) error {
	return preview.Show(device, icon)
}
