package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/vtabs/core"
	"github.com/jask/vtabs/internal/config"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the vtabs-demo config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath(flags.configPath)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("checking config: %w", err)
			}
			cfg, err := config.Default()
			if err != nil {
				return err
			}
			cfg.Keybindings = core.DefaultKeybindingsByAction(core.DefaultKeyBindings())
			if err := config.Save(cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			printConfig(cmd, cfg)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func configPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if env := os.Getenv("VTABS_CONFIG"); env != "" {
		return env
	}
	return config.DefaultPath()
}

func printConfig(cmd *cobra.Command, cfg config.Config) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ui.tab_bar_width = %d\n", cfg.UI.TabBarWidth)
	fmt.Fprintf(out, "ui.animate       = %t\n", cfg.UI.Animate)
	fmt.Fprintf(out, "ui.wheel_step    = %d\n", cfg.UI.WheelStep)
	fmt.Fprintf(out, "ui.theme         = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "ui.mouse         = %t\n", cfg.UI.Mouse)
	fmt.Fprintf(out, "demo.seed        = %d\n", cfg.Demo.Seed)
	fmt.Fprintf(out, "demo.sections    = %d\n", cfg.Demo.Sections)
	fmt.Fprintf(out, "log.path         = %s\n", cfg.Log.Path)
	fmt.Fprintf(out, "log.level        = %s\n", cfg.Log.Level)

	actions := make([]string, 0, len(cfg.Keybindings))
	for action := range cfg.Keybindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		fmt.Fprintf(out, "keybindings.%s = %s\n", action, strings.Join(cfg.Keybindings[action], ", "))
	}
}
