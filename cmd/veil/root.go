package main

import (
	"github.com/spf13/cobra"
)

// rootOptions carries the persistent flag values shared by every subcommand.
type rootOptions struct {
	configPath      string
	logLevel        string
	logFormat       string
	backend         string
	vsync           string
	shadow          bool
	fading          bool
	inactiveOpacity float64
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "veil",
		Short:         "Veil compositor configuration tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format (console or json)")
	pf.StringVar(&opts.backend, "backend", "", "Rendering backend (xrender, glx, xr_glx_hybrid)")
	pf.StringVar(&opts.vsync, "vsync", "", "VSync mode (none, drm, opengl, ...)")
	pf.BoolVar(&opts.shadow, "shadow", false, "Enable drop shadows")
	pf.BoolVar(&opts.fading, "fading", false, "Enable window fading")
	pf.Float64Var(&opts.inactiveOpacity, "inactive-opacity", 1.0, "Opacity of unfocused windows (0.0 - 1.0)")

	rootCmd.AddCommand(newConfigCommand(opts))

	return rootCmd
}
