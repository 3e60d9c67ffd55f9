package cli

import (
	"fmt"
	"os"

	"github.com/mkacz/turnip"
	"github.com/mkacz/turnip/internal/observability"
	"github.com/mkacz/turnip/internal/script"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newEditCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "edit FILE SCRIPT",
		Short: "Apply an editor script to a world file",
		Long: `Edit replays the editor commands in SCRIPT against the world in FILE
and writes the result back. FILE is created if it does not exist. Use "-"
as SCRIPT to read commands from standard input.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadOrCreateWorld(args[0])
			if err != nil {
				return err
			}

			src := cmd.InOrStdin()
			if args[1] != "-" {
				f, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}

			in := &script.Interpreter{
				Editor: turnip.NewEditor(w, a.cfg.Tuning()),
				Out:    cmd.OutOrStdout(),
				DT:     a.cfg.Physics.DT,
			}
			if err := in.Run(src); err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}
			observability.GetLogger().Info("script applied",
				zap.String("script", args[1]),
				zap.Int("loops", w.Len()))
			if dryRun {
				return nil
			}
			return saveWorld(args[0], w)
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "do not write the world back")
	return cmd
}
