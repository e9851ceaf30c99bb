package check

import (
	"cmp"
	"encoding/json"
	"fmt"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/kgassert/pkg/assertion"
	"github.com/mandelsoft/kgassert/pkg/graph"
	"github.com/mandelsoft/kgassert/pkg/query"
	"github.com/mandelsoft/kgassert/pkg/utils"
	"github.com/mandelsoft/kgassert/pkg/valuation"
)

// Rule is the serialized form of a named assertion.
type Rule struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Assertion uses the query syntax.
	Assertion string `json:"assertion"`
	// Expect is the expected verdict, true if not specified.
	Expect *bool `json:"expect,omitempty"`
	// Bindings provide initial variable values.
	Bindings map[string]any `json:"bindings,omitempty"`
}

// RuleSet is the content of a rule file.
type RuleSet struct {
	Workers int    `json:"workers,omitempty"`
	Rules   []Rule `json:"rules"`
}

func (r *Rule) expected() bool {
	return r.Expect == nil || *r.Expect
}

func (r *Rule) valuation() (valuation.Valuation, error) {
	nu := valuation.Empty()
	for _, n := range utils.MapKeys(r.Bindings, cmp.Compare[string]) {
		v, err := graph.ScalarOf(r.Bindings[n])
		if err != nil {
			return nu, fmt.Errorf("binding %q: %w", n, err)
		}
		nu = nu.Bind(assertion.VariableName(n), v)
	}
	return nu, nil
}

// Compile parses the assertion of the rule.
func (r *Rule) Compile() (*Check, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("rule without name")
	}
	a, err := query.Parse(r.Assertion)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", r.Name, err)
	}
	nu, err := r.valuation()
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", r.Name, err)
	}
	return &Check{
		Name:        r.Name,
		Description: r.Description,
		Assertion:   a,
		Expected:    r.expected(),
		Valuation:   nu,
	}, nil
}

// ParseRules decodes a rule file. Environment variables (${NAME}) are
// expanded before decoding.
func ParseRules(data []byte) (*RuleSet, error) {
	expanded, err := envsubst.EvalEnv(string(data))
	if err != nil {
		return nil, fmt.Errorf("cannot expand rules: %w", err)
	}
	var set RuleSet
	err = yaml.UnmarshalStrict([]byte(expanded), &set, func(d *json.Decoder) *json.Decoder {
		d.UseNumber()
		return d
	})
	if err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	return &set, nil
}

// ReadRules reads a rule file. The os file system is used if no file
// system is given.
func ReadRules(path string, fss ...vfs.FileSystem) (*RuleSet, error) {
	fs := utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...)
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	set, err := ParseRules(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// NewChecker compiles all rules of the set.
func (s *RuleSet) NewChecker(workers ...int) (*Checker, error) {
	c := New(utils.OptionalDefaulted(s.Workers, workers...))
	for i := range s.Rules {
		chk, err := s.Rules[i].Compile()
		if err != nil {
			return nil, err
		}
		if err := c.AddCheck(chk); err != nil {
			return nil, err
		}
	}
	return c, nil
}
