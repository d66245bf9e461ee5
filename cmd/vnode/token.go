package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pthm/vnode"
)

var errNoKey = errors.New("no key configured (use --key, VNODE_KEY or the config file)")

func (c *cli) encoder() (*vnode.Encoder, error) {
	key := c.v.GetString("key")
	if key == "" {
		return nil, errNoKey
	}
	return vnode.NewEncoder([]byte(key))
}

func newEncodeCmd(c *cli) *cobra.Command {
	var sensitive bool
	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode props (YAML or JSON) into a token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return c.encode(in, cmd.OutOrStdout(), sensitive)
		},
	}
	cmd.Flags().BoolVarP(&sensitive, "sensitive", "s", false, "encrypt instead of sign")
	return cmd
}

func (c *cli) encode(in io.Reader, out io.Writer, sensitive bool) error {
	enc, err := c.encoder()
	if err != nil {
		return err
	}

	var props map[string]any
	if err := yaml.NewDecoder(in).Decode(&props); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing props: %w", err)
	}
	if props == nil {
		props = map[string]any{}
	}

	token, err := enc.Encode(props, sensitive)
	if err != nil {
		return err
	}
	c.logger.Debug("props encoded", "keys", len(props), "sensitive", sensitive)
	_, err = fmt.Fprintln(out, token)
	return err
}

func newDecodeCmd(c *cli) *cobra.Command {
	var sensitive bool
	cmd := &cobra.Command{
		Use:   "decode TOKEN",
		Short: "Decode a token and print its props as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.decode(args[0], cmd.OutOrStdout(), sensitive)
		},
	}
	cmd.Flags().BoolVarP(&sensitive, "sensitive", "s", false, "token is encrypted")
	return cmd
}

func (c *cli) decode(token string, out io.Writer, sensitive bool) error {
	enc, err := c.encoder()
	if err != nil {
		return err
	}

	var props map[string]any
	if err := enc.Decode(strings.TrimSpace(token), sensitive, &props); err != nil {
		return err
	}

	ye := yaml.NewEncoder(out)
	ye.SetIndent(2)
	if err := ye.Encode(props); err != nil {
		return err
	}
	return ye.Close()
}
