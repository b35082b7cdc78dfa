package main

import (
	"context"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/foomo/elementwalker"
	"github.com/foomo/elementwalker/config"
	"github.com/foomo/elementwalker/reports"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:   "elementwalker [path/to/config.yaml]",
	Short: "elementwalker scrapes the MDN html element reference into a json file",
	Args:  cobra.MaximumNArgs(1),
	// must reports the error
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.Default()
		if len(args) == 1 {
			loadedConf, errConf := config.Get(args[0])
			if errConf != nil {
				return fmt.Errorf("config error: %w", errConf)
			}
			conf = loadedConf
		}
		logger, errLogger := newLogger(conf.Debug)
		if errLogger != nil {
			return fmt.Errorf("failed to initialize logger: %w", errLogger)
		}
		defer func() {
			_ = logger.Sync()
		}()
		logger.Debug("effective config", zap.String("config", spew.Sdump(conf)))
		return run(cmd.Context(), conf, logger)
	},
}

func newLogger(debug bool) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapConfig.Build()
}

func run(ctx context.Context, conf *config.Config, logger *zap.Logger) error {
	w := elementwalker.NewWalker(conf, elementwalker.WithLogger(logger))
	status := w.Walk(ctx, conf.ElementNames())

	if errWrite := elementwalker.WriteResultSet(conf.Output, status.Results); errWrite != nil {
		return errWrite
	}
	elementwalker.PrintStatus(os.Stdout, status)
	elementwalker.PrintDone(os.Stdout, conf.Output, status)

	if conf.Report {
		reports.Summary(status, os.Stdout)
		reports.Errors(status, os.Stdout)
		reports.Highscore(status, os.Stdout, 10)
		reports.Failures(status, os.Stdout)
	}
	if conf.MetricsFile != "" {
		if errMetrics := w.WriteMetrics(conf.MetricsFile); errMetrics != nil {
			logger.Warn("could not write metrics", zap.String("file", conf.MetricsFile), zap.Error(errMetrics))
		}
	}
	return nil
}

func must(comment string, err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, comment, err)
		os.Exit(1)
	}
}

func main() {
	must("elementwalker failed:", rootCmd.ExecuteContext(context.Background()))
}
