// flowybounds classifies and merges bounding volumes read from scene files.
//
// Usage:
//
//	flowybounds classify <scene>               - classify every pair of volumes
//	flowybounds merge <scene> --kind box       - enclose the whole scene
//	flowybounds fit --kind sphere 1,2,3 4,5,6  - fit a volume to points
//	flowybounds kinds                          - list volume kinds
//
// Global flags:
//
//	--config <path>        - config file (default: config.toml)
//	--debug                - development logger with per-pair logs
//	--scalar <type>        - coordinate type: float32, float64, int32, int64
//	--metrics-file <path>  - write evaluation metrics after the command
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime/debug"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"FlowyBounds/config"
	"FlowyBounds/scene"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is the state shared by every command.
type app struct {
	configPath  string
	debug       bool
	scalar      string
	metricsFile string

	config   config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *scene.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "flowybounds",
		Short: "Classify and merge bounding volumes",
		Long: `flowybounds works with spheres, circles, boxes and rectangles described
in TOML or YAML scene files.

Examples:
  flowybounds classify scene.toml
  flowybounds merge scene.yaml --kind sphere
  flowybounds fit --kind box 0,0,0 1,2,3
  flowybounds kinds`,
		SilenceUsage:       true,
		PersistentPreRunE:  func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
		PersistentPostRunE: func(*cobra.Command, []string) error { return a.teardown() },
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "config.toml", "Path to the config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug log output")
	root.PersistentFlags().StringVar(&a.scalar, "scalar", "", "Coordinate type (overrides config and scene)")
	root.PersistentFlags().StringVar(&a.metricsFile, "metrics-file", "", "Write metrics in Prometheus text format to this file")

	root.AddCommand(a.classifyCmd())
	root.AddCommand(a.mergeCmd())
	root.AddCommand(a.fitCmd())
	root.AddCommand(a.kindsCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	c, err := readConfig(a.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if a.scalar != "" {
		c.Scalar = a.scalar
	}
	if a.metricsFile != "" {
		c.MetricsFile = a.metricsFile
	}
	if err := c.Validate(); err != nil {
		return err
	}
	a.config = c

	logger, err := newLogger(a.debug, c)
	if err != nil {
		return err
	}
	a.logger = logger
	printBuildInfo(logger)

	a.registry = prometheus.NewRegistry()
	a.metrics = scene.NewMetrics(a.registry)
	return nil
}

func (a *app) teardown() error {
	defer a.logger.Sync()

	if a.config.MetricsFile == "" {
		return nil
	}
	f, err := os.Create(a.config.MetricsFile)
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}
	defer f.Close()
	if err := scene.WriteMetrics(f, a.registry); err != nil {
		return err
	}
	a.logger.Debug("Metrics written", zap.String("path", a.config.MetricsFile))
	return f.Close()
}

// readConfig loads the config file. A missing file is only an error when
// the path was given explicitly.
func readConfig(path string, explicit bool) (config.Config, error) {
	c, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return config.Default(), nil
	}
	return c, err
}

func newLogger(isDebug bool, c config.Config) (*zap.Logger, error) {
	if isDebug {
		return zap.NewDevelopment()
	}
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func printBuildInfo(logger *zap.Logger) {
	binaryInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	settings := make(map[string]string)
	for _, v := range binaryInfo.Settings {
		settings[v.Key] = v.Value
	}
	logger.Debug("Build info", zap.Any("settings", settings))
}
