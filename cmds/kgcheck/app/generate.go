package app

import (
	"github.com/spf13/cobra"

	"github.com/mandelsoft/kgassert/pkg/graph"
	"github.com/mandelsoft/kgassert/pkg/graph/generator"
)

type Generate struct {
	cmd *cobra.Command

	mainopts *Options
	config   generator.Config
	id       string
	output   string
}

func NewGenerate(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:              "generate <options>",
		Short:            "generate a random graph",
		Args:             cobra.NoArgs,
		TraverseChildren: true,
	}

	c := &Generate{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.IntVarP(&c.config.Nodes, "nodes", "n", 10, "number of nodes")
	flags.IntVarP(&c.config.Edges, "edges", "e", 20, "number of edges")
	flags.IntVarP(&c.config.Labels, "labels", "l", 3, "number of distinct node data values")
	flags.IntVarP(&c.config.EdgeLabels, "edge-labels", "E", 1, "number of distinct edge labels")
	flags.BoolVarP(&c.config.Names, "names", "N", false, "use names as node data")
	flags.BoolVarP(&c.config.Loops, "loops", "", false, "permit edges from a node to itself")
	flags.Int64VarP(&c.config.Seed, "seed", "s", 0, "random seed (default: current time)")
	flags.StringVarP(&c.id, "id", "", "", "graph id")
	addOutputOption(flags, &c.output)
	return cmd
}

func (c *Generate) Run(args []string) error {
	g := generator.New(c.config).Generate(graph.Id(c.id))
	return c.mainopts.WriteGraph(c.cmd.OutOrStdout(), c.output, g)
}
