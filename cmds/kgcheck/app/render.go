package app

import (
	"github.com/spf13/cobra"
)

type Render struct {
	cmd *cobra.Command

	mainopts *Options
	graph    string
	output   string
}

func NewRender(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:              "render <options>",
		Short:            "render a graph in normalized form",
		Args:             cobra.NoArgs,
		TraverseChildren: true,
	}

	c := &Render{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	addGraphOption(flags, &c.graph)
	addOutputOption(flags, &c.output)
	return cmd
}

func (c *Render) Run(args []string) error {
	g, err := c.mainopts.ReadGraph(c.cmd, c.graph)
	if err != nil {
		return err
	}
	return c.mainopts.WriteGraph(c.cmd.OutOrStdout(), c.output, g)
}
