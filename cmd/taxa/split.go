package main

import (
	"errors"
	"fmt"

	"github.com/hupe1980/taxa"
	"github.com/spf13/cobra"
)

func newSplitCmd(a *app) *cobra.Command {
	var labels, members []string

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Encode a split of a labelled registry",
		Long: `Build a registry from --labels (in order) and print the split mask of
--members together with its complement.

Examples:
  taxa split --labels A,B,C,D --members A,C
  taxa split -l A,B,C -m B -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(labels) == 0 {
				return errors.New("--labels is required")
			}
			reg, err := taxa.New(taxa.WithLabels(labels...), taxa.WithLogger(a.logger()), taxa.Locked())
			if err != nil {
				return err
			}

			side := make([]*taxa.Taxon, 0, len(members))
			for _, l := range members {
				t, ok, err := reg.GetTaxon(taxa.ByLabel(l))
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("member %q: %w", l, taxa.ErrNotFound)
				}
				side = append(side, t)
			}

			split, err := reg.SplitBitmask(side...)
			if err != nil {
				return err
			}
			complement := reg.ComplementSplitBitmask(split)

			report := splitReport{
				Taxa:              reg.Labels(),
				Split:             reg.SplitBitmaskString(split),
				Complement:        reg.SplitBitmaskString(complement),
				Members:           labelsOf(reg.SplitTaxa(split)),
				ComplementMembers: labelsOf(reg.SplitTaxa(complement)),
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, report, report.text)
		},
	}

	cmd.Flags().StringSliceVarP(&labels, "labels", "l", nil, "registry labels in order")
	cmd.Flags().StringSliceVarP(&members, "members", "m", nil, "labels on one side of the split")
	return cmd
}

func labelsOf(ts []*taxa.Taxon) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Label()
	}
	return out
}
