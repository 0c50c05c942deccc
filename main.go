package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wthrr.klederson.com/internal/app"
	"wthrr.klederson.com/internal/config"
	"wthrr.klederson.com/internal/params"
)

var (
	flagLanguage   string
	flagUnits      []string
	flagBorder     string
	flagHistorical []string
	flagReset      bool
	flagSave       bool
	flagDemo       bool
	flagNoColor    bool
	flagConfig     string
	flagVerbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wthrr [address]",
		Short: "wthrr - weather report in your terminal",
		Long: `wthrr looks up an address, fetches the current weather and a seven day
forecast from Open-Meteo and prints them as a bordered panel.

Pass "auto" or no address to use the address saved in the config file.
Use --demo to render a report from generated data without network access.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&flagLanguage, "language", "l", "", "Language for place names (e.g. en, de, fr)")
	rootCmd.Flags().StringSliceVarP(&flagUnits, "units", "u", nil, "Units, e.g. fahrenheit,mph,inch")
	rootCmd.Flags().StringVarP(&flagBorder, "border", "b", "", "Border style: rounded, single, solid or double")
	rootCmd.Flags().StringSliceVarP(&flagHistorical, "historical", "H", nil, "Historical dates (YYYY-MM-DD) to include")
	rootCmd.Flags().BoolVarP(&flagReset, "reset", "r", false, "Delete the config file and exit")
	rootCmd.Flags().BoolVarP(&flagSave, "save", "s", false, "Save these settings as default without asking")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run in demo mode with generated weather (no network)")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Config file path (default is the user config dir)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.Version = config.AppVersion

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetLevel(logrus.WarnLevel)
	if flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func run(cmd *cobra.Command, args []string) error {
	log := newLogger()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path := flagConfig
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if flagReset {
		if err := config.Reset(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", path)
		return nil
	}

	stored, err := config.Load(path)
	if err != nil {
		return err
	}

	var address string
	if len(args) > 0 {
		address = strings.Join(args, " ")
	}
	p, err := params.Merge(stored, params.Args{
		Address:    address,
		Language:   flagLanguage,
		Units:      flagUnits,
		Border:     flagBorder,
		Historical: flagHistorical,
		Save:       flagSave,
		Demo:       flagDemo,
	}, time.Now())
	if err != nil {
		return err
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	gui := p.Config.GUI
	if flagNoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		gui.Color = false
	}

	a := app.New(p.Demo, log)
	product, err := a.Run(ctx, p)
	if err != nil {
		return err
	}
	if err := a.Render(cmd.OutOrStdout(), product, gui); err != nil {
		return err
	}

	next := app.Next{ConfigPath: path, Stored: stored}
	if interactive {
		next.Confirm = app.TerminalConfirm(os.Stdin, os.Stdout)
	}
	return a.HandleNext(ctx, p, next)
}
