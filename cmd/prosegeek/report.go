package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wizenheimer/prosegeek"
)

type reportOptions struct {
	SettingsPath string
	JSON         bool
	Verbose      bool
}

var (
	reportOpts reportOptions

	ReportCmd = &cobra.Command{
		Use:   "report [file]",
		Short: "Analyze a text and print a markdown report",
		Long: `Analyze the given file, or standard input when no file is given, and
print the Prose Geek markdown report. Settings are read from a JSON or YAML
file; missing keys keep their defaults.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReport,
	}
)

func init() {
	ReportCmd.Flags().StringVarP(&reportOpts.SettingsPath, "settings", "s", "", "JSON or YAML settings file")
	ReportCmd.Flags().BoolVar(&reportOpts.JSON, "json", false, "Print the result as JSON instead of markdown")
	ReportCmd.Flags().BoolVarP(&reportOpts.Verbose, "verbose", "v", false, "Log every pipeline stage")
}

func runReport(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(reportOpts.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(reportOpts.SettingsPath, logger)
	if err != nil {
		return err
	}

	raw, source, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	analyzer, err := prosegeek.NewAnalyzer(cfg, prosegeek.WithLogger(logger.With(zap.String("source", source))))
	if err != nil {
		return err
	}
	result, err := analyzer.Run(raw)
	if err != nil {
		return errors.Wrapf(err, "analyze %s", source)
	}

	out := cmd.OutOrStdout()
	if reportOpts.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	report, err := prosegeek.Render(result, cfg, source)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, report)
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	conf := zap.NewProductionConfig()
	conf.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return conf.Build()
}

// loadConfig resolves the settings file over the defaults. Unknown keys are
// logged and ignored.
func loadConfig(path string, logger *zap.Logger) (prosegeek.AnalysisConfig, error) {
	external := map[string]any{}
	if path != "" {
		var err error
		if external, err = prosegeek.LoadSettingsFile(path); err != nil {
			return prosegeek.AnalysisConfig{}, err
		}
	}

	settings, unused, err := prosegeek.ResolveSettings(external)
	if err != nil {
		return prosegeek.AnalysisConfig{}, err
	}
	if len(unused) > 0 {
		logger.Warn("ignoring unknown settings", zap.Strings("keys", unused))
	}
	logger.Debug("resolved settings", zap.Any("settings", settings))
	return settings.Config()
}

// readInput returns the text to analyze and the name shown in the report.
func readInput(stdin io.Reader, args []string) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", errors.Wrap(err, "read stdin")
		}
		return string(data), prosegeek.UnsavedSourceName, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", errors.Wrapf(err, "read %s", args[0])
	}
	return string(data), filepath.Base(args[0]), nil
}
