package root_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"git.canoozie.net/riddling/propgraph/cmd/graphcheck/root"
	"git.canoozie.net/riddling/propgraph/pkg/model"
)

func TestRoot(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Graphcheck Suite")
}

func writeDocument(content string) string {
	dir, err := os.MkdirTemp("", "graphcheck")
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(os.RemoveAll, dir)

	path := filepath.Join(dir, "graph.yaml")
	Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
	return path
}

func run(args ...string) (string, error) {
	cmd := root.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

var _ = Describe("graphcheck", func() {
	var original model.Logger

	BeforeEach(func() {
		original = model.GetDefaultLogger()
		DeferCleanup(func() { model.SetDefaultLogger(original) })
	})

	Describe("check", func() {
		It("accepts a valid document", func() {
			path := writeDocument(`
vertices:
  - {id: a, label: x}
  - {id: b, label: x}
edges:
  - {id: a, label: y, out: a, in: b}
`)
			out, err := run("check", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("ok: 2 vertices, 1 edges"))
		})

		It("reports violations and fails", func() {
			path := writeDocument(`
vertices:
  - {id: a}
  - {id: a}
  - {label: anonymous}
edges:
  - {id: e1, out: a, in: zz}
`)
			out, err := run("check", path)
			Expect(err).To(MatchError(ContainSubstring("3 identifier violations")))
			Expect(out).To(ContainSubstring(`duplicate vertex identifier: "a"`))
			Expect(out).To(ContainSubstring("vertex has no identifier"))
			Expect(out).To(ContainSubstring(`edge "e1" references unknown vertex "zz"`))
		})

		It("requires a file argument", func() {
			_, err := run("check")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("dump", func() {
		It("prints elements with sorted properties", func() {
			path := writeDocument(`
vertices:
  - id: v1
    label: person
    properties: {name: alice, age: 30}
  - id: 2
    label: person
edges:
  - {id: e1, label: knows, out: v1, in: 2, properties: {since: 2020}}
`)
			out, err := run("dump", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(`vertex "v1" :person
  age=30
  name="alice"
vertex 2 :person
edge "e1" "v1" -[knows]-> 2
  since=2020
`))
		})

		It("fails on duplicate identifiers", func() {
			path := writeDocument("vertices:\n  - {id: a}\n  - {id: a}\n")
			_, err := run("dump", path)
			Expect(err).To(MatchError(ContainSubstring("duplicate vertex identifier")))
		})
	})

	It("rejects an unknown log level", func() {
		cmd := root.NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"check", "whatever.yaml", "--log-level", "loud"})
		Expect(cmd.Execute()).To(MatchError(ContainSubstring("invalid log level")))
	})
})
