package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/kgassert/pkg/check"
	"github.com/mandelsoft/kgassert/pkg/ctxutil"
)

type Check struct {
	cmd *cobra.Command

	mainopts *Options
	graph    string
	rules    string
	workers  int
}

func NewCheck(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <options>",
		Short: "check a rule file on a graph",
		Long: `
Checks all rules of a rule file on a graph. A rule file looks like

  workers: 4
  rules:
  - name: sorted
    assertion: 'forall $x in nodes: forall $y in nodes: connected($x, "", $y) -> label($y) > label($x)'
  - name: no-loops
    assertion: 'exists $x in nodes: connected($x, "", $x)'
    expect: false

Environment variables (${NAME}) are substituted. The command fails
if a rule does not yield its expected verdict.
`,
		Args:             cobra.NoArgs,
		TraverseChildren: true,
	}

	c := &Check{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	addGraphOption(flags, &c.graph)
	flags.StringVarP(&c.rules, "rules", "c", "", "rule file")
	flags.IntVarP(&c.workers, "workers", "w", 0, "number of workers (default taken from rule file)")
	return cmd
}

func (c *Check) Run(args []string) error {
	checker, err := c.mainopts.Checker(c.rules, c.workers)
	if err != nil {
		return err
	}
	g, err := c.mainopts.ReadGraph(c.cmd, c.graph)
	if err != nil {
		return err
	}

	ctx := ctxutil.TimeoutContext(context.Background(), c.mainopts.timeout)
	defer ctxutil.Cancel(ctx)

	results, err := checker.Run(ctx, g)
	for _, r := range results {
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s\n", r)
	}
	if err != nil {
		return err
	}
	if failed := results.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d rules failed", len(failed), len(results))
	}
	return nil
}

// Checker reads a rule file and prepares a checker.
func (o *Options) Checker(path string, workers int) (*check.Checker, error) {
	if path == "" {
		return nil, fmt.Errorf("rule file required")
	}
	set, err := check.ReadRules(path, o.fs)
	if err != nil {
		return nil, err
	}
	if workers > 0 {
		return set.NewChecker(workers)
	}
	return set.NewChecker()
}
