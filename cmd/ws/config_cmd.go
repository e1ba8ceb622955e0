package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wsbootstrap/ws/internal/config"
	"github.com/wsbootstrap/ws/internal/log"
	"github.com/wsbootstrap/ws/internal/output"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage ws configuration.

Config file: ~/.config/ws/config.toml (override with $WS_CONFIG)`,
		Example: `  ws config init          # Create default config
  ws config init -s       # Print default config to stdout
  ws config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd(a))
	cmd.AddCommand(newConfigShowCmd(a))

	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  ws config init           # Create config
  ws config init -f        # Overwrite existing config
  ws config init -s        # Print config to stdout`,
		RunE: func(c *cobra.Command, args []string) error {
			return initConfig(c.Context(), a, force, stdout)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func initConfig(ctx context.Context, a *app, force, stdout bool) error {
	out := output.FromContext(ctx)
	if stdout {
		out.Printf("%s", config.DefaultFile())
		return nil
	}

	path := a.cfgPath
	if path == "" {
		var err error
		if path, err = config.Path(a.getenv); err != nil {
			return err
		}
	}

	if err := config.Init(path, force); err != nil {
		if !force {
			return fmt.Errorf("%w (use -f to overwrite)", err)
		}
		return err
	}

	out.Printf("Created config file: %s\n", path)
	return nil
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show the effective configuration as TOML, followed by the resolved
repos directory and bootstrap root.`,
		RunE: func(c *cobra.Command, args []string) error {
			return showConfig(c.Context(), a)
		},
	}
}

func showConfig(ctx context.Context, a *app) error {
	out := output.FromContext(ctx)
	log.FromContext(ctx).Debug("config", "path", a.cfgPath)

	if err := a.cfg.Encode(out.Writer()); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	reposDir, err := a.cfg.ResolveReposDir("", a.getenv)
	if err != nil {
		return err
	}
	out.Println()
	out.Printf("# resolved\n")
	out.Printf("# repos dir:      %s\n", reposDir)
	out.Printf("# bootstrap root: %s (%s)\n", a.layout.Root, a.layout.Source)
	return nil
}
