package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rcdesign/gorcc/internal/aci"
	"github.com/spf13/cobra"
)

var (
	// Unfactored axial forces (tonf)
	axialLoads aci.ServiceLoads
	// Unfactored moments (tonf-m)
	momentLoads aci.ServiceLoads

	// Options
	loadsShowAll       bool
	loadsUseSimplified bool
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Calculate factored column demand using ACI load combinations",
	Long: `Calculate the factored axial force (Pu) and moment (Mu) based on
ACI 318-14 Section 5.3 load combinations.

Provide unfactored load effects per load type and this command will
compute the governing factored demand over all combinations. The
combination is selected independently for Pu and Mu.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Gravity loads only
  gorcc loads --dead-p 300 --live-p 150 --dead-m 20 --live-m 12

  # With wind, showing every combination
  gorcc loads --dead-p 300 --live-p 150 --wind-m 35 --all`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	// Axial force flags (tonf)
	loadsCmd.Flags().Float64Var(&axialLoads.Dead, "dead-p", 0, "Axial force due to dead load (tonf)")
	loadsCmd.Flags().Float64Var(&axialLoads.Live, "live-p", 0, "Axial force due to live load (tonf)")
	loadsCmd.Flags().Float64Var(&axialLoads.Roof, "roof-p", 0, "Axial force due to roof live load (tonf)")
	loadsCmd.Flags().Float64Var(&axialLoads.Wind, "wind-p", 0, "Axial force due to wind load (tonf)")
	loadsCmd.Flags().Float64Var(&axialLoads.Earthquake, "quake-p", 0, "Axial force due to earthquake load (tonf)")
	loadsCmd.Flags().Float64Var(&axialLoads.Rain, "rain-p", 0, "Axial force due to rain load (tonf)")

	// Moment flags (tonf-m)
	loadsCmd.Flags().Float64Var(&momentLoads.Dead, "dead-m", 0, "Moment due to dead load (tonf-m)")
	loadsCmd.Flags().Float64Var(&momentLoads.Live, "live-m", 0, "Moment due to live load (tonf-m)")
	loadsCmd.Flags().Float64Var(&momentLoads.Roof, "roof-m", 0, "Moment due to roof live load (tonf-m)")
	loadsCmd.Flags().Float64Var(&momentLoads.Wind, "wind-m", 0, "Moment due to wind load (tonf-m)")
	loadsCmd.Flags().Float64Var(&momentLoads.Earthquake, "quake-m", 0, "Moment due to earthquake load (tonf-m)")
	loadsCmd.Flags().Float64Var(&momentLoads.Rain, "rain-m", 0, "Moment due to rain load (tonf-m)")

	// Options
	loadsCmd.Flags().BoolVarP(&loadsShowAll, "all", "a", false, "Show all load combination results")
	loadsCmd.Flags().BoolVarP(&loadsUseSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runLoads(cmd *cobra.Command, args []string) {
	if axialLoads.IsZero() && momentLoads.IsZero() {
		fmt.Println("Error: Please provide at least one unfactored load effect.")
		fmt.Println("Use 'gorcc loads --help' for usage information.")
		return
	}

	combinations := aci.LoadCombinations
	if loadsUseSimplified {
		combinations = aci.SimplifiedCombinations
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          ACI 318-14 FACTORED DEMAND CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED LOAD EFFECTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load type\tP (tonf)\tM (tonf-m)\n")
	fmt.Fprintf(w, "  ─────────\t────────\t──────────\n")
	printLoadRow(w, "Dead (D)", axialLoads.Dead, momentLoads.Dead)
	printLoadRow(w, "Live (L)", axialLoads.Live, momentLoads.Live)
	printLoadRow(w, "Roof live (Lr)", axialLoads.Roof, momentLoads.Roof)
	printLoadRow(w, "Wind (W)", axialLoads.Wind, momentLoads.Wind)
	printLoadRow(w, "Earthquake (E)", axialLoads.Earthquake, momentLoads.Earthquake)
	printLoadRow(w, "Rain (R)", axialLoads.Rain, momentLoads.Rain)
	w.Flush()
	fmt.Println()

	pu, puCombo := aci.Governing(axialLoads, combinations)
	mu, muCombo := aci.Governing(momentLoads, combinations)

	if loadsShowAll {
		fmt.Println("LOAD COMBINATIONS (ACI 318-14 Table 5.3.1):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tPu (tonf)\tMu (tonf-m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t─────────\t───────────\n")
		for _, combo := range combinations {
			markerP := ""
			if combo.ID == puCombo.ID {
				markerP = " ←"
			}
			markerM := ""
			if combo.ID == muCombo.ID {
				markerM = " ←"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\t%.2f%s\n",
				combo.ID, combo.Description,
				combo.Factor(axialLoads), markerP,
				combo.Factor(momentLoads), markerM)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing for Pu: %s (%s)\n", puCombo.ID, puCombo.Description)
	fmt.Printf("  Governing for Mu: %s (%s)\n", muCombo.ID, muCombo.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════════════╗\n")
	fmt.Printf("  ║  Pu = %.2f tonf   Mu = %.2f tonf-m  \n", pu, mu)
	fmt.Printf("  ╚═══════════════════════════════════════════╝\n")
	fmt.Println()
	fmt.Println("  Check the demand with:")
	fmt.Printf("    gorcc column check -f <section.json> --pu %.2f --mu %.2f\n", pu, mu)
	fmt.Println()
}

func printLoadRow(w *tabwriter.Writer, label string, p, m float64) {
	if p == 0 && m == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\t%.2f\t%.2f\n", label, p, m)
}
