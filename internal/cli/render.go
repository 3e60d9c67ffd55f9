package cli

import (
	"fmt"
	"os"

	"github.com/mkacz/turnip"
	"github.com/mkacz/turnip/internal/observability"
	"github.com/mkacz/turnip/internal/sim"
	"github.com/mkacz/turnip/internal/snapshot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newRenderCmd() *cobra.Command {
	var (
		rf       runFlags
		trace    bool
		noLabels bool
	)
	cmd := &cobra.Command{
		Use:   "render FILE OUT.png",
		Short: "Draw a world file as a PNG image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			w, err := loadWorld(args[0])
			if err != nil {
				return err
			}

			opts := snapshot.DefaultOptions()
			opts.Width = a.cfg.Render.Width
			opts.Height = a.cfg.Render.Height
			opts.Margin = a.cfg.Render.Margin
			opts.Labels = !noLabels
			if trace {
				so, err := rf.options(a.cfg.Physics.DT)
				if err != nil {
					return err
				}
				opts.Trace = []turnip.Point{so.Start}
				opts.Body, err = sim.Run(cmd.Context(), w, a.cfg.Tuning(), so, func(s sim.Sample) error {
					opts.Trace = append(opts.Trace, s.Position)
					return nil
				})
				if err != nil {
					return err
				}
			}

			img, err := snapshot.Render(w, opts)
			if err != nil {
				return err
			}
			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer func() {
				if cerr := f.Close(); err == nil {
					err = cerr
				}
			}()
			if err := snapshot.Encode(f, img); err != nil {
				return fmt.Errorf("writing %s: %w", args[1], err)
			}
			observability.GetLogger().Info("image written",
				zap.String("path", args[1]),
				zap.Int("width", opts.Width),
				zap.Int("height", opts.Height),
				zap.Int("trace", len(opts.Trace)))
			return nil
		},
	}
	rf.register(cmd, 240)
	cmd.Flags().BoolVar(&trace, "trace", false, "simulate a body and draw its path")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "do not label loops")
	return cmd
}
