package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/phanxgames/sprig"
	"github.com/phanxgames/sprig/metrics"
	"github.com/phanxgames/sprig/scenefile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay an input script against a scene",
	Long: `Loads a scene file and an input script (YAML or JSON), drives the script
through a dispatcher frame by frame and logs every semantic event it fires.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenePath, _ := cmd.Flags().GetString("scene")
		scriptPath, _ := cmd.Flags().GetString("script")
		withMetrics, _ := cmd.Flags().GetBool("metrics")
		jsonMode, _ := cmd.Flags().GetBool("json")
		debug, _ := cmd.Flags().GetBool("debug")

		logger := newLogger(cmd.OutOrStdout(), jsonMode, debug)
		return runReplay(replayOptions{
			scenePath:  scenePath,
			scriptPath: scriptPath,
			metrics:    withMetrics,
			debug:      debug,
		}, logger)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().String("scene", "", "Scene file (YAML or JSON)")
	replayCmd.Flags().String("script", "", "Input script (YAML or JSON)")
	replayCmd.Flags().Bool("metrics", false, "Log event and listener counters when done")
	_ = replayCmd.MarkFlagRequired("scene")
	_ = replayCmd.MarkFlagRequired("script")
}

type replayOptions struct {
	scenePath  string
	scriptPath string
	metrics    bool
	debug      bool
}

func newLogger(w io.Writer, jsonMode, debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}
	if jsonMode {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func loadScript(path string) (*sprig.TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return sprig.LoadTestScript(data)
	}
	return sprig.LoadTestScriptYAML(data)
}

func runReplay(opts replayOptions, logger *slog.Logger) error {
	root, err := scenefile.LoadFile(opts.scenePath)
	if err != nil {
		return err
	}
	runner, err := loadScript(opts.scriptPath)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.scriptPath, err)
	}

	dopts := []sprig.Option{
		sprig.WithLogger(logger),
		sprig.WithHrefHandler(func(_ *sprig.Event, item *sprig.Node, href string) {
			logger.Info("href", "item", item.Name, "href", href)
		}),
		sprig.WithTooltipHandler(func(_ *sprig.Event, item *sprig.Node, show bool) {
			if item == nil {
				return
			}
			logger.Info("tooltip", "item", item.Name, "show", show, "text", fmt.Sprint(item.Tooltip))
		}),
	}
	var collector *metrics.Collector
	if opts.metrics {
		collector = metrics.NewCollector(prometheus.NewRegistry())
		dopts = append(dopts, sprig.WithObserver(collector))
	}

	surface := sprig.NewInjectSurface()
	d := sprig.NewDispatcher(dopts...)
	d.SetDebugMode(opts.debug)
	d.Initialize(surface, 0, 0).SetScene(root)

	frame := 0
	for _, typ := range sprig.Events {
		d.On(typ, func(evt *sprig.Event, item *sprig.Node) {
			attrs := []any{"frame", frame, "type", string(typ), "raw", string(evt.Type), "x", evt.X, "y", evt.Y}
			if item != nil {
				attrs = append(attrs, "item", item.Name)
			}
			logger.Info("event", attrs...)
		})
	}
	runner.OnCheckpoint = func(label string) {
		logger.Info("checkpoint", "frame", frame, "label", label)
	}

	for !runner.Done() || surface.Pending() > 0 {
		runner.Step(surface)
		surface.Step()
		frame++
	}
	logger.Info("replay finished", "frames", frame)

	if collector != nil {
		for _, typ := range sprig.Events {
			if n := collector.Fired(typ); n > 0 {
				logger.Info("events fired", "type", string(typ), "count", n)
			}
			if n := collector.Attached(typ); n > 0 {
				logger.Info("listeners attached", "type", string(typ), "count", n)
			}
		}
	}
	return nil
}
