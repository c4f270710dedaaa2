package main

import (
	"fmt"
	"io"

	"github.com/hupe1980/taxa"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a registry of N taxa and print their masks",
		Long: `Generate a registry of N taxa with zero padded labels and print the
position, label and single-bit mask of every taxon.

Examples:
  taxa generate --count 5
  taxa generate --count 100 --prefix sp -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := taxa.Generate(count,
				taxa.WithPrefix(a.v.GetString("prefix")),
				taxa.WithRegistryOptions(taxa.WithLogger(a.logger()), taxa.Locked()),
			)
			if err != nil {
				return err
			}

			rows := make([]taxonRow, 0, reg.Len())
			for i, t := range reg.All() {
				m, err := reg.TaxonBitmask(t)
				if err != nil {
					return err
				}
				rows = append(rows, taxonRow{Position: i, Label: t.Label(), Mask: reg.SplitBitmaskString(m)})
			}

			return render(cmd.OutOrStdout(), a.cfg.Output, rows, func(w io.Writer) error {
				for _, r := range rows {
					if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", r.Position, r.Label, r.Mask); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of taxa")
	cmd.Flags().String("prefix", "", "label prefix (default T)")
	_ = a.v.BindPFlag("prefix", cmd.Flags().Lookup("prefix"))
	return cmd
}
