package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"veil/internal/config"
)

func newConfigCommand(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigCheckCommand(opts))
	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(opts))

	return configCmd
}

func newConfigCheckCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, levelVar, err := newLogger(cmd, opts)
			if err != nil {
				return err
			}

			opt := config.Default()
			loader := &config.Loader{Log: logger, Level: levelVar}
			res, err := loader.Load(opts.configPath, &opt)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !res.Loaded {
				fmt.Fprintln(out, "No configuration file found; built-in defaults are in effect")
				return nil
			}
			fmt.Fprintf(out, "Config path: %s\n", res.Path)
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			opt, res, err := loadEffective(cmd, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case res.Loaded:
				fmt.Fprintf(out, "Config path: %s\n", res.Path)
			case res.Path != "":
				fmt.Fprintf(out, "Config file at %s could not be applied; showing built-in defaults\n", res.Path)
			default:
				fmt.Fprintln(out, "No configuration file found; showing built-in defaults")
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Option", "Value"},
				effectiveRows(&opt),
				[]columnAlignment{alignLeft, alignRight},
				shouldStyle(out),
			))
			return nil
		},
	}
}

func effectiveRows(opt *config.Options) [][]string {
	fraction := func(scaled float64) string {
		return fmt.Sprintf("%.2f", scaled/config.Opaque)
	}

	overridden := 0
	for i := range opt.WinTypeOptions {
		wt := &opt.WinTypeOptions[i]
		if wt.Shadow.IsSet() || wt.Fade.IsSet() || wt.Focus.IsSet() ||
			wt.FullShadow.IsSet() || wt.RedirIgnore.IsSet() || wt.Opacity.IsSet() {
			overridden++
		}
	}

	return [][]string{
		{"backend", opt.Backend.String()},
		{"vsync", opt.VSync.String()},
		{"glx-swap-method", opt.GLXSwapMethod.String()},
		{"shadow", fmt.Sprintf("%t", opt.ShadowEnable)},
		{"shadow-radius", fmt.Sprintf("%d", opt.ShadowRadius)},
		{"shadow-opacity", fmt.Sprintf("%.2f", opt.ShadowOpacity)},
		{"shadow-offset", fmt.Sprintf("%d,%d", opt.ShadowOffsetX, opt.ShadowOffsetY)},
		{"fading", fmt.Sprintf("%t", opt.FadingEnable)},
		{"fade-delta", fmt.Sprintf("%d", opt.FadeDelta)},
		{"fade-in-step", fraction(opt.FadeInStep)},
		{"fade-out-step", fraction(opt.FadeOutStep)},
		{"inactive-opacity", fraction(opt.InactiveOpacity)},
		{"active-opacity", fraction(opt.ActiveOpacity)},
		{"frame-opacity", fmt.Sprintf("%.2f", opt.FrameOpacity)},
		{"shadow-exclude rules", fmt.Sprintf("%d", len(opt.ShadowExclude))},
		{"fade-exclude rules", fmt.Sprintf("%d", len(opt.FadeExclude))},
		{"opacity rules", fmt.Sprintf("%d", len(opt.OpacityRules))},
		{"blur kernels", fmt.Sprintf("%d", len(opt.BlurKernels))},
		{"window types overridden", fmt.Sprintf("%d", overridden)},
	}
}
