package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/syntax-tree/hast-util-to-dom/todom"
	"github.com/syntax-tree/hast-util-to-dom/todom/dom"
	"github.com/syntax-tree/hast-util-to-dom/todom/hast"
	"github.com/syntax-tree/hast-util-to-dom/todom/metrics"
)

type rootOptions struct {
	fragment  bool
	namespace string
	format    string
	stats     bool
	dump      bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "hast-to-dom",
		Short: "Turn a hast tree into a DOM tree",
		Long: `hast-to-dom reads a hast tree (JSON or YAML) from stdin, builds the DOM
tree it describes, and prints it as HTML, XML, or an indented tree.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&o.fragment, "fragment", false, "Build a document fragment instead of wrapping loose content in <html>")
	flags.StringVar(&o.namespace, "namespace", "", "Namespace to create elements in")
	flags.StringVarP(&o.format, "format", "f", "html", "Output format: html, xml, or tree")
	flags.BoolVar(&o.stats, "stats", false, "Print node counts to stderr")
	flags.BoolVar(&o.dump, "dump", false, "Dump the decoded hast tree to stderr")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log debug output")
	return cmd
}

func run(o *rootOptions, in io.Reader, out, errOut io.Writer) error {
	var serialize func(*dom.Node) string
	switch o.format {
	case "html":
		serialize = dom.SerializeHTML
	case "xml":
		serialize = dom.SerializeXML
	case "tree":
		serialize = (*dom.Node).String
	default:
		return errors.Errorf("unknown format %q", o.format)
	}

	logger := logrus.New()
	logger.SetOutput(errOut)
	if o.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "reading stdin")
	}
	tree, err := hast.Decode(data)
	if err != nil {
		return errors.Wrap(err, "decoding tree")
	}
	if o.dump {
		spew.Fdump(errOut, tree)
	}

	reg := prometheus.NewRegistry()
	collector := metrics.New(metrics.WithRegistry(reg))
	var result *dom.Node
	err = collector.Time(func() error {
		var err error
		result, err = todom.Transform(tree,
			todom.WithFragment(o.fragment),
			todom.WithNamespace(o.namespace),
			todom.WithLogger(logger),
			todom.WithAfterTransform(collector.Hook()),
		)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "transforming tree")
	}

	fmt.Fprintln(out, serialize(result))
	if o.stats {
		return printStats(reg, errOut)
	}
	return nil
}

// printStats writes one line per counter series in reg.
func printStats(reg *prometheus.Registry, w io.Writer) error {
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering stats")
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			line := mf.GetName()
			for _, l := range m.GetLabel() {
				line += fmt.Sprintf(" %s=%s", l.GetName(), l.GetValue())
			}
			lines = append(lines, fmt.Sprintf("%s %g", line, m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
