package cli

import (
	"os"

	"github.com/mkacz/turnip/internal/interchange"
	"github.com/spf13/cobra"
)

func (a *app) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE OUT.json",
		Short: "Convert a world file to JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			w, err := loadWorld(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if args[1] != "-" {
				f, err := os.Create(args[1])
				if err != nil {
					return err
				}
				defer func() {
					if cerr := f.Close(); err == nil {
						err = cerr
					}
				}()
				out = f
			}
			return interchange.Encode(out, w)
		},
	}
}

func (a *app) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import IN.json FILE",
		Short: "Convert a JSON document to a world file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			w, err := interchange.Decode(in)
			if err != nil {
				return err
			}
			return saveWorld(args[1], w)
		},
	}
}
