package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"git.canoozie.net/riddling/propgraph/pkg/graph"
	"git.canoozie.net/riddling/propgraph/pkg/loader"
	"git.canoozie.net/riddling/propgraph/pkg/model"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Report missing, duplicate and dangling identifiers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loader.DecodeFile(args[0])
			if err != nil {
				return err
			}
			vertices, edges, err := doc.Elements()
			if err != nil {
				return err
			}

			logger := model.GetDefaultLogger()
			logger.Debug("Validating %d vertices and %d edges from %s", len(vertices), len(edges), args[0])

			out := cmd.OutOrStdout()
			errs := graph.Validate(vertices, edges)
			for _, err := range errs {
				fmt.Fprintln(out, err)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%s: %d identifier violations", args[0], len(errs))
			}

			fmt.Fprintf(out, "ok: %d vertices, %d edges\n", len(vertices), len(edges))
			return nil
		},
	}
}
