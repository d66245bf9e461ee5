// Command vnode renders declarative node documents and manages fragment
// props tokens.
//
// Configuration is read, highest priority first, from flags, VNODE_*
// environment variables (VNODE_KEY, VNODE_FORMAT, VNODE_ESCAPE,
// VNODE_LOG_LEVEL) and a YAML config file: --config, then
// VNODE_CONFIG_FILE, then .vnode.yaml in the working directory.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli carries the state shared by every subcommand.
type cli struct {
	v       *viper.Viper
	cfgFile string
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:   "vnode",
		Short: "Render node documents and fragment tokens",
		Long: `vnode renders YAML or JSON documents describing components and a
node tree, and encodes or decodes the props tokens used in fragment URLs.

Quick Start:
  vnode render page.yaml            Render a document as HTML
  vnode render -f json page.yaml    Render a document as JSON
  vnode encode props.yaml           Sign props for a fragment URL
  vnode decode TOKEN                Show the props in a token`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is .vnode.yaml, can also use VNODE_CONFIG_FILE env var)")
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("key", "", "key for signing and encrypting props tokens")
	_ = c.v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))
	_ = c.v.BindPFlag("key", root.PersistentFlags().Lookup("key"))

	root.AddCommand(
		newRenderCmd(c),
		newEncodeCmd(c),
		newDecodeCmd(c),
		newVersionCmd(),
	)
	return root
}

// initConfig loads the config file and environment, then builds the logger.
func (c *cli) initConfig(cmd *cobra.Command) error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	} else if envConfigFile := os.Getenv("VNODE_CONFIG_FILE"); envConfigFile != "" {
		c.v.SetConfigFile(envConfigFile)
	} else {
		c.v.AddConfigPath(".")
		c.v.SetConfigType("yaml")
		c.v.SetConfigName(".vnode")
	}

	c.v.SetEnvPrefix("VNODE")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	c.v.AutomaticEnv()

	c.v.SetDefault("format", "html")
	c.v.SetDefault("escape", "html")

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	level, err := parseLevel(c.v.GetString("log-level"))
	if err != nil {
		return err
	}
	c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if used := c.v.ConfigFileUsed(); used != "" {
		c.logger.Debug("using config file", "path", used)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vnode version %s\n", version)
		},
	}
}
