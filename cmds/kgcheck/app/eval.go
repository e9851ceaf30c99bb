package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/kgassert/pkg/assertion"
	"github.com/mandelsoft/kgassert/pkg/dot"
	"github.com/mandelsoft/kgassert/pkg/query"
	"github.com/mandelsoft/kgassert/pkg/valuation"
)

type Eval struct {
	cmd *cobra.Command

	mainopts *Options
	graph    string
	bindings []string
}

func NewEval(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <options> <expression>",
		Short: "evaluate an expression on a graph",
		Long: `
Evaluates an expression given in the query syntax, for example

  forall $x in nodes: forall $y in nodes: connected($x, "", $y) -> label($y) > label($x)

Assertions print their verdict, all other expressions their value.
`,
		Args:             cobra.ExactArgs(1),
		TraverseChildren: true,
	}

	c := &Eval{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	addGraphOption(flags, &c.graph)
	flags.StringArrayVarP(&c.bindings, "bind", "b", nil, "variable binding (<name>=<node data>)")
	return cmd
}

func (c *Eval) Run(args []string) error {
	f, err := query.ParseFunction(args[0])
	if err != nil {
		return err
	}
	g, err := c.mainopts.ReadGraph(c.cmd, c.graph)
	if err != nil {
		return err
	}
	nu, err := Bindings(c.bindings)
	if err != nil {
		return err
	}
	log.Debug("evaluating {{expression}} with {{bindings}}", "expression", f, "bindings", nu)
	if a, ok := f.(assertion.Assertion); ok {
		fmt.Fprintf(c.cmd.OutOrStdout(), "%t\n", assertion.Check(a, g, nu))
	} else {
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s\n", assertion.Evaluate(f, g, nu).Quoted())
	}
	return nil
}

// Bindings parses variable bindings of the form <name>=<value>.
// Values are coerced like node data of graph files.
func Bindings(list []string) (valuation.Valuation, error) {
	nu := valuation.Empty()
	for _, b := range list {
		name, value, ok := strings.Cut(b, "=")
		if !ok || name == "" {
			return nu, fmt.Errorf("invalid binding %q", b)
		}
		nu = nu.Bind(assertion.VariableName(name), dot.Coerce(value))
	}
	return nu, nil
}
