package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/vnode"
	"github.com/pthm/vnode/lib/htmlrender"
)

func newRenderCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document",
		Long: `Render reads a document (YAML or JSON, from a file or stdin), registers
its components and prints the resolved tree.

Formats:
  html   HTML markup (default)
  json   the plain-data form of the tree

Escaping (html format only):
  html     escape text (default)
  strict   strip markup from text
  none     emit text as is`,
		Args: cobra.MaximumNArgs(1),
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
			return c.render(in, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("format", "f", "html", "output format (html, json)")
	cmd.Flags().String("escape", "html", "text escaping (html, strict, none)")
	_ = c.v.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = c.v.BindPFlag("escape", cmd.Flags().Lookup("escape"))
	return cmd
}

func (c *cli) render(in io.Reader, out io.Writer) error {
	doc, err := readDocument(in)
	if err != nil {
		return err
	}

	format := c.v.GetString("format")
	opts := []vnode.Option{vnode.WithLogger(c.logger)}
	switch format {
	case "json":
	case "html":
		hooks, err := htmlHooks(c.v.GetString("escape"))
		if err != nil {
			return err
		}
		opts = append(opts, vnode.WithHooks(hooks))
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	reg := vnode.New(opts...)
	doc.register(reg)
	c.logger.Debug("components registered", "names", reg.Components())

	tree := reg.Tree(doc.Tree)
	if tree.Root() == nil {
		c.logger.Warn("document tree resolved to nothing")
	}

	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(tree.Data())
	}
	_, err = fmt.Fprintln(out, tree.String())
	return err
}

func htmlHooks(escape string) (vnode.Hooks, error) {
	switch escape {
	case "html":
		return htmlrender.Hooks(), nil
	case "strict":
		return htmlrender.StrictHooks(), nil
	case "none":
		h := htmlrender.Hooks()
		h.EscapeValue = vnode.Stringify
		return h, nil
	}
	return vnode.Hooks{}, fmt.Errorf("unknown escape mode %q", escape)
}
