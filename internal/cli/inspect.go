package cli

import (
	"fmt"
	"io"

	"github.com/mkacz/turnip"
	"github.com/spf13/cobra"
)

func (a *app) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Describe the loops of a world file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorld(args[0])
			if err != nil {
				return err
			}
			return describeWorld(cmd.OutOrStdout(), w)
		},
	}
}

func describeWorld(out io.Writer, w *turnip.World) error {
	r, ok := w.BoundingBox()
	if !ok {
		_, err := fmt.Fprintln(out, "empty world")
		return err
	}
	i := 0
	for l := range w.Loops() {
		if _, err := fmt.Fprintf(out, "loop %d: %d nodes, area %g\n", i, l.Count(), l.SignedArea()); err != nil {
			return err
		}
		i++
	}
	_, err := fmt.Fprintf(out, "bounds %s %s\n", turnip.Pt(r.X0, r.Y0), turnip.Pt(r.X1, r.Y1))
	return err
}
