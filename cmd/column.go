package cmd

import (
	"github.com/spf13/cobra"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Rectangular column interaction diagram and capacity checks",
	Long: `Compute P-M interaction diagrams and check demand points for
rectangular reinforced concrete columns.

The column section is defined in a JSON file. The consistent unit
system is tonf and cm (moments are reported in tonf-m).

Subcommands:
  curve  - Compute the nominal and design interaction curves
  check  - Check a factored demand point (Mu, Pu) against the design curve

Example JSON file structure:
{
  "name": "C-1 80x80",
  "width": 80.0,
  "high": 80.0,
  "covering": 5.0,
  "elastic_module": 2100.0,
  "yield_strength": 4.2,
  "ultimate_deformation_concrete": 0.003,
  "concrete_compressive_stress": 0.25,
  "alpha": 0.85,
  "beta": 0.85,
  "bars_per_line": [4, 4, 4, 4],
  "bars_diameter": [2.5, 2.5, 2.5, 2.5]
}`,
}

func init() {
	rootCmd.AddCommand(columnCmd)
}
