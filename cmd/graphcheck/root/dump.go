package root

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"git.canoozie.net/riddling/propgraph/pkg/graph"
	"git.canoozie.net/riddling/propgraph/pkg/loader"
	"git.canoozie.net/riddling/propgraph/pkg/model"
)

func newDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump FILE",
		Short: "Print every element and its properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loader.DecodeFile(args[0])
			if err != nil {
				return err
			}

			g := graph.New()
			if err := doc.Build(g); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range g.Vertices() {
				id, _ := v.GetId()
				fmt.Fprintf(out, "vertex %s :%s\n", id, v.Label)
				printProperties(out, v.Element)
			}
			for _, e := range g.Edges() {
				id, _ := e.GetId()
				fmt.Fprintf(out, "edge %s %s -[%s]-> %s\n", id, e.Out, e.Label, e.In)
				printProperties(out, e.Element)
			}
			return nil
		},
	}
}

func printProperties(w io.Writer, e *model.Element) {
	for _, p := range e.PropertyList() {
		if p.IsID() {
			continue
		}
		fmt.Fprintf(w, "  %s\n", p)
	}
}
