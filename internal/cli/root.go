// Package cli wires the suggestbox command line
package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"suggestbox/internal/config"
	"suggestbox/internal/eventbus"
	"suggestbox/internal/logging"
	"suggestbox/internal/results"
	"suggestbox/internal/ui"
)

// eventBuffer sizes the bus-to-program forwarding channel
const eventBuffer = 100

type options struct {
	configPath  string
	autoRefresh bool
	inline      bool
	logFile     string
	debug       bool
}

// NewRootCommand builds the suggestbox command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "suggestbox",
		Short:         "Search box with topic, country and popular search suggestions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig(opts, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to the config file (default: user config dir)")
	cmd.Flags().BoolVar(&opts.autoRefresh, "auto-refresh", false, "refresh results on every change")
	cmd.Flags().BoolVar(&opts.inline, "inline", false, "show topic and country suggestions under the search box")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "log file path (default from config)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log at debug level")

	cmd.AddCommand(newConfigCommand(opts))
	return cmd
}

// Execute runs the root command
func Execute() error {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

func newConfigCommand(opts *options) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, svc, err := loadConfig(opts, cmd.Flags())
			if err != nil {
				return err
			}
			if write {
				if err := svc.Save(cfg); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", svc.Path())
				return nil
			}
			return printConfig(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "write the configuration to the config file")
	return cmd
}

// loadConfig loads the config file and applies the flags that were set
// explicitly on the command line
func loadConfig(opts *options, flags *pflag.FlagSet) (*config.Config, config.ConfigService, error) {
	svc := config.NewConfigService(opts.configPath)
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}

	if flags.Changed("auto-refresh") {
		cfg.UISettings.AutoRefresh = opts.autoRefresh
	}
	if flags.Changed("inline") {
		cfg.UISettings.UseDropdownFilters = !opts.inline
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("debug") && opts.debug {
		cfg.Log.Level = "debug"
	}
	return cfg, svc, nil
}

func printConfig(w io.Writer, cfg *config.Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func run(cfg *config.Config, opts *options) error {
	closer, err := logging.Setup(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		return err
	}
	defer closer.Close()

	log.Info("starting", "config", opts.configPath, "autoRefresh", cfg.UISettings.AutoRefresh)

	bus := eventbus.New()
	defer bus.Close()

	resultsSvc := results.NewService(results.NewMemoryResultStore(cfg.SampleResults()), bus, cfg.UISettings.MaxResults)
	resultsSvc.Start()
	defer resultsSvc.Stop()

	model := ui.NewModel(bus, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	model.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, eventBuffer)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn("event channel full, dropping event", "type", e.Type())
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventSearchSubmitted,
		eventbus.EventResultsRefreshed,
		eventbus.EventError,
	} {
		unsubscribe := bus.Subscribe(eventType, forward)
		defer unsubscribe()
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()

	_, err = p.Run()
	close(done)
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("exited normally")
	return nil
}
