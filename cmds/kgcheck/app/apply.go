package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/kgassert/pkg/check"
	"github.com/mandelsoft/kgassert/pkg/ctxutil"
	"github.com/mandelsoft/kgassert/pkg/update"
)

type Apply struct {
	cmd *cobra.Command

	mainopts *Options
	graph    string
	updates  string
	rules    string
	output   string
}

func NewApply(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <options>",
		Short: "apply updates to a graph",
		Long: `
Applies the steps of an update file to a graph. Every step yields a new
snapshot of the graph. An update file looks like

  steps:
  - addNode:
      id: 4
      data: 3
  - batch:
    - addEdge: { from: 3, label: "", to: 4 }
    - deleteNode: { id: 1 }

Other updates are setNodeData (id, data), deleteEdge (from, label, to)
and setEdgeLabel (from, label, to, newLabel). If a rule file is given,
the rules are checked for every snapshot. The final snapshot is written
to the output.
`,
		Args:             cobra.NoArgs,
		TraverseChildren: true,
	}

	c := &Apply{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	addGraphOption(flags, &c.graph)
	flags.StringVarP(&c.updates, "updates", "u", "", "update file")
	flags.StringVarP(&c.rules, "rules", "c", "", "rule file checked for every snapshot")
	addOutputOption(flags, &c.output, "output file for the final snapshot")
	return cmd
}

func (c *Apply) Run(args []string) error {
	var checker *check.Checker

	if c.updates == "" {
		return fmt.Errorf("update file required")
	}
	updates, err := update.ReadFile(c.updates, c.mainopts.fs)
	if err != nil {
		return err
	}
	if c.rules != "" {
		checker, err = c.mainopts.Checker(c.rules, 0)
		if err != nil {
			return err
		}
	}
	g, err := c.mainopts.ReadGraph(c.cmd, c.graph)
	if err != nil {
		return err
	}

	snapshots := update.ApplyAll(g, updates...)
	final := g
	if len(snapshots) > 0 {
		final = snapshots[len(snapshots)-1]
	}

	if checker != nil {
		ctx := ctxutil.TimeoutContext(context.Background(), c.mainopts.timeout)
		defer ctxutil.Cancel(ctx)

		trace, err := checker.Trace(ctx, snapshots...)
		failed := 0
		for i, results := range trace {
			fmt.Fprintf(c.cmd.ErrOrStderr(), "step %d: %s\n", i+1, updates[i])
			for _, r := range results {
				fmt.Fprintf(c.cmd.ErrOrStderr(), "  %s\n", r)
			}
			failed += len(results.Failed())
		}
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d rule violations in %d steps", failed, len(trace))
		}
	}
	return c.mainopts.WriteGraph(c.cmd.OutOrStdout(), c.output, final)
}
