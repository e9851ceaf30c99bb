package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mandelsoft/kgassert/pkg/dot"
	"github.com/mandelsoft/kgassert/pkg/graph"
	"github.com/mandelsoft/kgassert/pkg/utils"
)

type Options struct {
	level   string
	timeout time.Duration
	fs      vfs.FileSystem
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs:    utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
		level: os.Getenv("KGCHECK_LOG_LEVEL"),
	}
	if opts.level == "" {
		opts.level = "warn"
	}

	maincmd := &cobra.Command{
		Use:   "kgcheck <options> <cmd> <args>",
		Short: "check assertions on knowledge graphs",
		Long: `
This command evaluates first-order assertions on labeled graphs
described in a line oriented dot format, applies updates to
such graphs and generates random graphs.
`,
		TraverseChildren: true,
		SilenceUsage:     true,
		SilenceErrors:    true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(opts.level)
		},
	}

	flags := maincmd.PersistentFlags()
	flags.StringVarP(&opts.level, "log-level", "L", opts.level, "log level")
	flags.DurationVarP(&opts.timeout, "timeout", "t", 0, "timeout for checks")

	maincmd.AddCommand(NewEval(opts))
	maincmd.AddCommand(NewCheck(opts))
	maincmd.AddCommand(NewRender(opts))
	maincmd.AddCommand(NewGenerate(opts))
	maincmd.AddCommand(NewApply(opts))
	return maincmd
}

func addGraphOption(flags *pflag.FlagSet, path *string) {
	flags.StringVarP(path, "graph", "g", "", "graph file (- for stdin)")
}

func addOutputOption(flags *pflag.FlagSet, path *string, desc ...string) {
	flags.StringVarP(path, "output", "o", "", utils.OptionalDefaulted("output file", desc...))
}

// ReadGraph reads a graph description. "-" denotes the standard input.
func (o *Options) ReadGraph(cmd *cobra.Command, path string) (*graph.Graph, error) {
	if path == "" {
		return nil, fmt.Errorf("graph file required")
	}
	if path == "-" {
		return dot.Parse("stdin", cmd.InOrStdin())
	}
	return dot.ReadFile(o.fs, path)
}

// WriteGraph writes a graph description to the given file or
// to the standard output if no file is given.
func (o *Options) WriteGraph(w io.Writer, path string, g *graph.Graph) error {
	if path == "" || path == "-" {
		return dot.Render(g, w)
	}
	return dot.WriteFile(o.fs, path, g)
}
