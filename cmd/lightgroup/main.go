package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wheelibin/lightgroup/internal/app"
	"github.com/wheelibin/lightgroup/internal/config"
	"github.com/wheelibin/lightgroup/internal/constants"
	"github.com/wheelibin/lightgroup/internal/hue"
	"github.com/wheelibin/lightgroup/internal/models"
	"github.com/wheelibin/lightgroup/internal/render"
	"github.com/wheelibin/lightgroup/internal/source"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logLevels = map[string]log.Level{
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
}

func main() {
	configFile := pflag.StringP("config", "c", "", "path to the config file")
	watch := pflag.BoolP("watch", "w", false, "keep refreshing until interrupted")
	asJSON := pflag.Bool("json", false, "print states as json")
	pflag.Parse()

	// read the config file
	cfg, err := config.ReadConfig(viper.New(), *configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	logger.Debug("lightgroup starting", "source", cfg.Source, "groups", len(cfg.Groups))

	// create/wire up services
	var src app.MemberSource
	switch cfg.Source {
	case constants.SourceHue:
		src = hue.NewHueAPIService(logger, fmt.Sprintf("https://%s", cfg.BridgeIP), cfg.HueAppKey)
	default:
		src = source.NewFileSource(logger, cfg.StateFile)
	}
	a := app.NewApp(logger, cfg.Groups, src)

	report := func(states []models.AggregateState) {
		if err := printStates(os.Stdout, states, *asJSON); err != nil {
			logger.Error(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *watch {
		a.Run(ctx, cfg.RefreshInterval, report)
		logger.Info("lightgroup is closing")
		return
	}

	if err := a.Refresh(ctx); err != nil {
		logger.Error(err)
	}
	report(a.States())
}

func newLogger(cfg *config.Config) *log.Logger {
	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		out = &lumberjack.Logger{
			Filename: cfg.LogFile,
			MaxAge:   3,
		}
	}

	level, ok := logLevels[cfg.LogLevel]
	if !ok {
		level = log.InfoLevel
	}

	return log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "2006/01/02 15:04:05",
	})
}

func printStates(w io.Writer, states []models.AggregateState, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(states)
	}
	_, err := fmt.Fprintln(w, render.States(states))
	return err
}
