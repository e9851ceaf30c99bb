// Package check evaluates sets of named assertions against a graph.
//
// A graph is never modified while it is checked, so all checks of a
// set are evaluated concurrently by a pool of workers sharing the graph.
package check

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/mandelsoft/logging"
	"k8s.io/client-go/util/workqueue"

	"github.com/mandelsoft/kgassert/pkg/assertion"
	"github.com/mandelsoft/kgassert/pkg/graph"
	"github.com/mandelsoft/kgassert/pkg/valuation"
)

// Check is a named assertion with its expected verdict.
type Check struct {
	Name        string
	Description string
	Assertion   assertion.Assertion
	Valuation   valuation.Valuation
	Expected    bool
}

func NewCheck(name string, a assertion.Assertion, nu ...valuation.Valuation) *Check {
	c := &Check{
		Name:      name,
		Assertion: a,
		Expected:  true,
	}
	if len(nu) > 0 {
		c.Valuation = nu[0]
	}
	return c
}

// Result is the outcome of a single check.
type Result struct {
	Name     string
	Verdict  bool
	Expected bool
	// Err is set if the check could not be evaluated.
	Err error
}

func (r Result) Passed() bool {
	return r.Err == nil && r.Verdict == r.Expected
}

func (r Result) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("%s: %s", r.Name, r.Err)
	case r.Passed():
		return fmt.Sprintf("%s: passed (%t)", r.Name, r.Verdict)
	default:
		return fmt.Sprintf("%s: FAILED (got %t, expected %t)", r.Name, r.Verdict, r.Expected)
	}
}

type Results []Result

func (r Results) Passed() bool {
	return len(r.Failed()) == 0
}

func (r Results) Failed() Results {
	var failed Results
	for _, e := range r {
		if !e.Passed() {
			failed = append(failed, e)
		}
	}
	return failed
}

////////////////////////////////////////////////////////////////////////////////

// Checker evaluates a set of checks with a pool of workers.
// It can be used for any number of graphs, also concurrently.
type Checker struct {
	workers int
	checks  []*Check
	names   map[string]int
}

// New creates a checker using the given number of workers (at least one).
func New(workers int) *Checker {
	return &Checker{
		workers: max(workers, 1),
		names:   map[string]int{},
	}
}

func (c *Checker) Workers() int {
	return c.workers
}

// AddCheck adds a check. Check names must be unique.
func (c *Checker) AddCheck(chk *Check) error {
	if chk.Assertion == nil {
		return fmt.Errorf("check %q without assertion", chk.Name)
	}
	if _, ok := c.names[chk.Name]; ok {
		return fmt.Errorf("duplicate check %q", chk.Name)
	}
	c.names[chk.Name] = len(c.checks)
	c.checks = append(c.checks, chk)
	return nil
}

func (c *Checker) Add(name string, a assertion.Assertion, nu ...valuation.Valuation) error {
	return c.AddCheck(NewCheck(name, a, nu...))
}

func (c *Checker) Checks() []*Check {
	return append([]*Check(nil), c.checks...)
}

// Run evaluates all checks for the given graph. The results keep the order
// of the checks. Cancellation is only observed between checks, checks not
// evaluated anymore get the context error.
func (c *Checker) Run(ctx context.Context, g *graph.Graph) (Results, error) {
	results := make(Results, len(c.checks))

	queue := workqueue.NewWithConfig(workqueue.QueueConfig{Name: fmt.Sprintf("check %s", g.Id())})
	for i := range c.checks {
		queue.Add(i)
	}
	queue.ShutDown()

	var wg sync.WaitGroup
	workers := min(c.workers, len(c.checks))
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			newWorker(c, queue, n).run(ctx, g, results)
		}()
	}
	wg.Wait()

	log.Debug("checked {{count}} assertions on {{graph}} ({{failed}} failed)", "count", len(results), "graph", g.Id(), "failed", len(results.Failed()))
	return results, ctx.Err()
}

// Trace runs the checks for a sequence of graphs.
func (c *Checker) Trace(ctx context.Context, graphs ...*graph.Graph) ([]Results, error) {
	var trace []Results
	for _, g := range graphs {
		r, err := c.Run(ctx, g)
		if err != nil {
			return trace, err
		}
		trace = append(trace, r)
	}
	return trace, nil
}

////////////////////////////////////////////////////////////////////////////////

type worker struct {
	logging.UnboundLogger
	checker *Checker
	queue   workqueue.Interface
}

func newWorker(c *Checker, q workqueue.Interface, number int) *worker {
	return &worker{
		UnboundLogger: logging.DynamicLogger(logging.DefaultContext(), REALM, logging.NewAttribute("worker", strconv.Itoa(number))),
		checker:       c,
		queue:         q,
	}
}

func (w *worker) run(ctx context.Context, g *graph.Graph, results Results) {
	for {
		obj, shutdown := w.queue.Get()
		if shutdown {
			return
		}
		i := obj.(int)
		chk := w.checker.checks[i]
		results[i] = w.evaluate(ctx, chk, g)
		w.queue.Done(obj)
	}
}

func (w *worker) evaluate(ctx context.Context, chk *Check, g *graph.Graph) (r Result) {
	r = Result{Name: chk.Name, Expected: chk.Expected}
	if err := ctx.Err(); err != nil {
		r.Err = err
		return r
	}
	defer func() {
		if p := recover(); p != nil {
			r.Err = fmt.Errorf("check %q failed: %v", chk.Name, p)
			w.Error("check failed", "check", chk.Name, "error", r.Err)
		}
	}()
	r.Verdict = assertion.Check(chk.Assertion, g, chk.Valuation)
	w.Debug("check {{check}}: {{verdict}}", "check", chk.Name, "verdict", r.Verdict)
	return r
}
