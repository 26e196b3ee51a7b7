package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/gridstyle/css"
	"github.com/npillmayer/gridstyle/dom/domdbg"
	"github.com/npillmayer/gridstyle/dom/style"
	"github.com/npillmayer/gridstyle/grid"
	"github.com/npillmayer/gridstyle/grid/gridcss"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

// options holds the flags common to all commands, and the grid
// configuration derived from them.
type options struct {
	configFile     string
	namespace      string
	columns        int
	noInlineStyles bool
	traceLevel     string
	grid           grid.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "gridstyle",
		Short:        "Compute responsive grid classes and styles",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if err := setupTracing(conf); err != nil {
				return err
			}
			opts.grid, err = grid.ConfigFrom(conf)
			return err
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "path to a YAML configuration file")
	flags.StringVar(&opts.namespace, "namespace", "el", "class name prefix")
	flags.IntVar(&opts.columns, "columns", 24, "number of grid columns")
	flags.BoolVar(&opts.noInlineStyles, "no-inline-styles", false, "do not render style attributes")
	flags.StringVar(&opts.traceLevel, "trace", "Error", "trace level of the gridstyle packages")

	cmd.AddCommand(newCSSCmd(opts))
	cmd.AddCommand(newColCmd(opts))
	return cmd
}

// --- css -------------------------------------------------------------------

func newCSSCmd(opts *options) *cobra.Command {
	var out string
	var check bool
	cmd := &cobra.Command{
		Use:   "css",
		Short: "Write the grid stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := gridcss.Generate(opts.grid)
			if check {
				sheet, err := gridcss.Parse(text)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%d rules\n", len(sheet.Rules()))
			}
			if out == "" || out == "-" {
				_, err := io.WriteString(cmd.OutOrStdout(), text)
				return err
			}
			return os.WriteFile(out, []byte(text), 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&check, "check", false, "parse the stylesheet and report the number of rules")
	return cmd
}

// --- col -------------------------------------------------------------------

type colFlags struct {
	span, order, offset, push, pull string
	flex                            string
	gutter                          string
	at                              []string
	format                          string
}

func newColCmd(opts *options) *cobra.Command {
	cf := &colFlags{}
	cmd := &cobra.Command{
		Use:   "col [text]",
		Short: "Print classes and styles of a grid column",
		Long: `Print classes and styles of a grid column.

Breakpoint overrides are given as --at <bp>:<sizes>, e.g. --at md:span=8,offset=0
or --at lg:6. Formats are "text" (class and style), "html" and "tree".`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			colopts, err := cf.columnOptions(cmd)
			if err != nil {
				return err
			}
			h, v, err := parseGutter(cf.gutter)
			if err != nil {
				return err
			}
			row := grid.NewRow(opts.grid, h, v)
			col := row.Col(colopts...)
			return printCol(cmd.OutOrStdout(), cf.format, row, col, strings.Join(args, " "))
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&cf.span, "span", "", "columns to span")
	flags.StringVar(&cf.order, "order", "", "flex order")
	flags.StringVar(&cf.offset, "offset", "", "columns to leave empty to the left")
	flags.StringVar(&cf.push, "push", "", "columns to move right")
	flags.StringVar(&cf.pull, "pull", "", "columns to move left")
	flags.StringVar(&cf.flex, "flex", "", `flex setting: a number, a length like "50%", or any flex value`)
	flags.StringVar(&cf.gutter, "gutter", "0", "gutter of the enclosing row: <h> or <h>,<v> in px")
	flags.StringArrayVar(&cf.at, "at", nil, "breakpoint override, e.g. md:span=8 (repeatable)")
	flags.StringVar(&cf.format, "format", "text", "output format: text, html or tree")
	return cmd
}

func (cf *colFlags) columnOptions(cmd *cobra.Command) ([]grid.ColOption, error) {
	var colopts []grid.ColOption
	units := []struct {
		flag, value string
		opt         func(grid.Unit) grid.ColOption
	}{
		{"span", cf.span, grid.Span},
		{"order", cf.order, grid.Order},
		{"offset", cf.offset, grid.Offset},
		{"push", cf.push, grid.Push},
		{"pull", cf.pull, grid.Pull},
	}
	for _, u := range units {
		if !cmd.Flags().Changed(u.flag) {
			continue
		}
		unit, err := grid.ParseUnit(u.value)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", u.flag, err)
		}
		colopts = append(colopts, u.opt(unit))
	}
	if cmd.Flags().Changed("flex") {
		colopts = append(colopts, grid.Flex(parseFlex(cf.flex)))
	}
	for _, at := range cf.at {
		opt, err := grid.ParseAt(at)
		if err != nil {
			return nil, fmt.Errorf("--at: %w", err)
		}
		colopts = append(colopts, opt)
	}
	return colopts, nil
}

// parseFlex treats plain finite numbers as flex numbers and everything else
// as text.
func parseFlex(s string) css.FlexT {
	if n, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return css.FlexNumber(n)
	}
	return css.Flex(s)
}

func parseGutter(s string) (float64, float64, error) {
	hs, vs, _ := strings.Cut(s, ",")
	h, err := strconv.ParseFloat(strings.TrimSpace(hs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("--gutter: %q is not a number", hs)
	}
	if vs == "" {
		return h, 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(vs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("--gutter: %q is not a number", vs)
	}
	return h, v, nil
}

func printCol(w io.Writer, format string, row *grid.Row, col *grid.Col, text string) error {
	var content []*html.Node
	if text != "" {
		content = append(content, &html.Node{Type: html.TextNode, Data: text})
	}
	switch format {
	case "text":
		_, err := fmt.Fprintf(w, "class: %s\nstyle: %s\n", col.ClassName(), style.InlineStyle(col.Style()))
		return err
	case "html":
		if err := html.Render(w, col.Render(content...)); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case "tree":
		_, err := io.WriteString(w, domdbg.Dump(row.Render(col.Render(content...))))
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}
