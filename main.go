package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rook-computer/favicon/internal/app"
	"github.com/rook-computer/favicon/internal/render"
)

const envStdioLog = "FAVICON_STDIO_LOG"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run returns the process exit status: 0 once both files are written,
// 1 on a render or write failure, 2 on bad flags or environment.
func run(args []string, stdout io.Writer) int {
	defaults, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Fprintln(stdout, "config error:", err)
		return 2
	}

	// Flags
	fs := flag.NewFlagSet("favicon", flag.ContinueOnError)
	fs.SetOutput(stdout)
	outDir := fs.String("out", defaults.OutDir, "directory to write favicon.png and favicon.ico into; also configurable via "+app.EnvOutDir)
	backend := fs.String("backend", string(defaults.Backend), "rasterizer: gg | vector; also configurable via "+app.EnvBackend)
	debug := fs.Bool("debug", defaults.Debug, "enable debug logging to ./favicon-debug.log; also configurable via "+app.EnvDebug)
	previewFB := fs.String("preview-fb", defaults.PreviewDevice, "show the icon on this framebuffer device after writing (e.g. /dev/fb0); also configurable via "+app.EnvPreviewFB)
	stdioLog := fs.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Fprintln(stdout, "stdio log redirect error:", err)
		}
	}

	cfg := defaults
	cfg.OutDir = *outDir
	cfg.Debug = *debug
	cfg.PreviewDevice = *previewFB
	if cfg.Backend, err = render.ParseBackend(*backend); err != nil {
		fmt.Fprintln(stdout, "config error:", err)
		return 2
	}

	a := app.New(cfg)
	if cfg.Debug {
		f, err := os.OpenFile("./favicon-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			a.Logger = app.NewZerologLogger(f)
			a.Logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Fprintln(stdout, "debug log open error:", err)
		}
	}

	res, err := a.Run(context.Background())
	if err != nil {
		fmt.Fprintln(stdout, "favicon error:", err)
		return 1
	}
	if res.PreviewErr != nil {
		fmt.Fprintln(stdout, "warning:", res.PreviewErr)
	}
	fmt.Fprintln(stdout, "Favicon created successfully!")
	return 0
}
