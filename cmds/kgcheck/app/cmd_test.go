package app_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/kgassert/pkg/dot"
	. "github.com/mandelsoft/kgassert/pkg/testutils"

	me "github.com/mandelsoft/kgassert/cmds/kgcheck/app"
)

const dag = `digraph G {
1 [label="0"];
2 [label="1"];
3 [label="2"];
1 -> 2 [label=""];
2 -> 3 [label=""];
}
`

const rules = `
rules:
- name: sorted
  assertion: 'forall $x in nodes: forall $y in nodes: connected($x, "", $y) -> label($y) > label($x)'
- name: no-loop
  assertion: 'exists $x in nodes: connected($x, "", $x)'
  expect: false
`

const updates = `
steps:
- addNode:
    id: 4
    data: 3
- addEdge: { from: 3, label: "", to: 4 }
- addEdge: { from: 4, label: "", to: 1 }
`

var _ = Describe("kgcheck", func() {
	var fs vfs.FileSystem
	var out *bytes.Buffer

	BeforeEach(func() {
		fs = Must(MemoryFileSystem(map[string]string{
			"/data/dag.dot":      dag,
			"/data/rules.yaml":   rules,
			"/data/updates.yaml": updates,
		}))
		out = &bytes.Buffer{}
	})

	execute := func(args ...string) error {
		cmd := me.New(fs)
		cmd.SetArgs(args)
		cmd.SetOut(out)
		cmd.SetErr(out)
		cmd.SetIn(strings.NewReader(dag))
		return cmd.Execute()
	}

	Context("eval", func() {
		It("prints verdicts", func() {
			MustBeSuccessful(execute("eval", "-g", "/data/dag.dot", `forall $x in nodes: label($x) >= 0`))
			Expect(out.String()).To(Equal("true\n"))
		})

		It("prints values", func() {
			MustBeSuccessful(execute("eval", "-g", "-", "-b", "n=x", `$n`))
			Expect(out.String()).To(Equal("\"x\"\n"))
		})

		It("uses bindings", func() {
			MustBeSuccessful(execute("eval", "-g", "/data/dag.dot", "-b", "n=2", `exists $x in nodes: label($x) = $n`))
			Expect(out.String()).To(Equal("true\n"))
		})

		It("rejects syntax errors", func() {
			MustFailWithMessage(execute("eval", "-g", "/data/dag.dot", `$x &&`), `"$x &&" 5: unexpected end of expression`)
		})

		It("rejects invalid bindings", func() {
			MustFailWithMessage(execute("eval", "-g", "/data/dag.dot", "-b", "n", `$n`), `invalid binding "n"`)
		})
	})

	Context("check", func() {
		It("reports passed rules", func() {
			MustBeSuccessful(execute("check", "-g", "/data/dag.dot", "-c", "/data/rules.yaml", "-w", "2"))
			Expect(out.String()).To(Equal("sorted: passed (true)\nno-loop: passed (false)\n"))
		})

		It("fails for violated rules", func() {
			MustBeSuccessful(vfs.WriteFile(fs, "/data/loop.dot", []byte(dag+"3 -> 3 [label=\"\"];\n"), 0o600))
			MustFailWithMessage(execute("check", "-g", "/data/loop.dot", "-c", "/data/rules.yaml"), "2 of 2 rules failed")
		})

		It("requires a rule file", func() {
			MustFailWithMessage(execute("check", "-g", "/data/dag.dot"), "rule file required")
		})
	})

	Context("render", func() {
		It("normalizes graphs", func() {
			MustBeSuccessful(execute("render", "-g", "/data/dag.dot", "-o", "/data/out.dot"))
			g := Must(dot.ReadFile(fs, "/data/out.dot"))
			Expect(g.Equal(Must(dot.ParseString("dag", dag)))).To(BeTrue())
		})
	})

	Context("generate", func() {
		It("generates reproducible graphs", func() {
			MustBeSuccessful(execute("generate", "-n", "5", "-e", "7", "-s", "4711", "--id", "r"))
			first := out.String()
			out.Reset()
			MustBeSuccessful(execute("generate", "-n", "5", "-e", "7", "-s", "4711", "--id", "r"))
			Expect(out.String()).To(Equal(first))

			g := Must(dot.ParseString("r", first))
			Expect(g.Size()).To(Equal(5))
			Expect(g.EdgeCount()).To(Equal(7))
		})
	})

	Context("apply", func() {
		It("writes the final snapshot", func() {
			MustBeSuccessful(execute("apply", "-g", "/data/dag.dot", "-u", "/data/updates.yaml"))
			g := Must(dot.ParseString("result", out.String()))
			Expect(g.Size()).To(Equal(4))
			Expect(g.HasEdge(4, "", 1)).To(BeTrue())
		})

		It("checks every snapshot", func() {
			MustFailWithMessage(execute("apply", "-g", "/data/dag.dot", "-u", "/data/updates.yaml", "-c", "/data/rules.yaml"),
				"1 rule violations in 3 steps")
			Expect(out.String()).To(ContainSubstring("step 3: "))
			Expect(out.String()).To(ContainSubstring("sorted: FAILED (got false, expected true)"))
		})
	})
})
