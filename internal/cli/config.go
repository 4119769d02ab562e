package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvquad/quadrature"
)

// Config is the resolved configuration after defaults, file, env and flags.
type Config struct {
	Rule      string        `mapstructure:"rule" yaml:"rule"`
	Workers   int           `mapstructure:"workers" yaml:"workers"`
	NonFinite string        `mapstructure:"non_finite" yaml:"non_finite"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Rule:      quadrature.Simpson13.String(),
		Workers:   4,
		NonFinite: quadrature.Propagate.String(),
		CacheTTL:  10 * time.Minute,
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("rule", d.Rule)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("non_finite", d.NonFinite)
	v.SetDefault("cache_ttl", d.CacheTTL)
}

// config decodes the current viper state.
func (a *app) config() (Config, error) {
	var cfg Config
	if err := a.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// rule resolves the configured rule.
func (a *app) rule() (quadrature.Rule, error) {
	return quadrature.ParseRule(a.v.GetString("rule"))
}

// integrateOptions maps configuration onto quadrature options.
func (a *app) integrateOptions() ([]quadrature.Option, error) {
	p, err := quadrature.ParseNonFinitePolicy(a.v.GetString("non_finite"))
	if err != nil {
		return nil, err
	}
	return []quadrature.Option{quadrature.WithNonFinite(p)}, nil
}

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage lvquad configuration",
		Long: `Manage lvquad configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (LVQUAD_*)
3. Config file (~/.lvquad/config.yaml)
4. Defaults`,
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if used := a.v.ConfigFileUsed(); used != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n", used)
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), "No configuration file found (using defaults)")
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = out.Write(data)
			return err
		},
	}

	var force bool
	var path string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("find home directory: %w", err)
				}
				path = filepath.Join(home, ".lvquad", "config.yaml")
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}

			data, err := yaml.Marshal(DefaultConfig())
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			header := "# lvquad configuration\n" +
				"# Rules: rectangle, trapezoid, simpson13, simpson38\n" +
				"# non_finite: propagate | reject\n\n"
			if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created default configuration: %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	initCmd.Flags().StringVar(&path, "path", "", "destination (default: $HOME/.lvquad/config.yaml)")

	cmd.AddCommand(show, initCmd)
	return cmd
}
