package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/jask/vtabs/core"
	"github.com/jask/vtabs/demo"
	"github.com/jask/vtabs/internal/config"
	"github.com/jask/vtabs/internal/logging"
)

type rootFlags struct {
	configPath string
	seed       int64
	sections   int
	noAnimate  bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:          "vtabs-demo",
		Short:        "Browse a product classification with synchronized vertical tabs",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runDemo(cfg)
		},
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "seed for the generated sections")
	cmd.Flags().IntVar(&flags.sections, "sections", 0, "number of sections to generate")
	cmd.Flags().BoolVar(&flags.noAnimate, "no-animate", false, "jump instead of easing when a tab is pressed")
	cmd.AddCommand(newConfigCmd(&flags))
	return cmd
}

// loadConfig reads the config file and lays explicitly set flags over it.
func loadConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Demo.Seed = flags.seed
	}
	if cmd.Flags().Changed("sections") {
		cfg.Demo.Sections = flags.sections
	}
	if flags.noAnimate {
		cfg.UI.Animate = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func buildModel(cfg config.Config, opts demo.Options) core.Model {
	bindings := core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keybindings)
	page := demo.NewPage(opts)
	return core.NewModel("vtabs", page, core.NewKeyRegistry(bindings), opts.Zones)
}

func runDemo(cfg config.Config) error {
	logger, cleanup, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer func() {
		if cerr := cleanup(); cerr != nil {
			fmt.Fprintf(os.Stderr, "closing log file: %v\n", cerr)
		}
	}()

	zones := zone.New()
	defer zones.Close()

	logger.Info().Int64("seed", cfg.Demo.Seed).Int("sections", cfg.Demo.Sections).Msg("starting vtabs-demo")
	m := buildModel(cfg, demo.Options{
		Seed:        cfg.Demo.Seed,
		Sections:    cfg.Demo.Sections,
		TabBarWidth: cfg.UI.TabBarWidth,
		WheelStep:   cfg.UI.WheelStep,
		Animate:     cfg.UI.Animate,
		Theme:       cfg.UI.Theme,
		Zones:       zones,
		Logger:      &logger,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	logger.Info().Msg("exiting")
	return nil
}
