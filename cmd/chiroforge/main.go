package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrsinham/chiroforge/internal/config"
	"github.com/mrsinham/chiroforge/internal/exam"
	"github.com/mrsinham/chiroforge/internal/logging"
	"github.com/mrsinham/chiroforge/internal/reconcile"
	"github.com/mrsinham/chiroforge/internal/report"
)

// version is set at build time via -ldflags
var version = "dev"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log zerolog.Logger
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "chiroforge",
		Short:         "Chiropractic exam narratives with auto/manual reconciliation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Settings file (default: ./chiroforge.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(
		a.wizardCmd(),
		a.newCmd(),
		a.regenCmd(),
		a.importDICOMCmd(),
		a.renderCmd(),
		a.listCmd(),
		fieldsCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	return nil
}

// fileLogger returns a logger for the full-screen wizard, which owns the
// terminal. Without log.file nothing is logged.
func (a *app) fileLogger() (zerolog.Logger, func(), error) {
	if a.cfg.Log.File == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := logging.OpenFile(a.cfg.Log.File)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	log, err := logging.New(logging.Config{Level: a.cfg.Log.Level, Format: "json", Output: f})
	if err != nil {
		f.Close()
		return zerolog.Nop(), nil, err
	}
	return log, func() { f.Close() }, nil
}

func (a *app) store(log zerolog.Logger) *exam.Store {
	return exam.NewStore(a.cfg.DataDir, a.cfg.ActiveYear, log)
}

func (a *app) workspaceOptions(log zerolog.Logger) []reconcile.Option {
	return []reconcile.Option{
		reconcile.WithLogger(log),
		reconcile.WithMaxROFGroups(a.cfg.ROF.MaxGroups),
	}
}

func (a *app) reportSettings() report.Settings {
	return report.Settings{
		ClinicName:    a.cfg.Clinic.Name,
		ClinicAddress: a.cfg.Clinic.Address,
		ClinicPhone:   a.cfg.Clinic.Phone,
	}
}
