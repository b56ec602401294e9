package cmd

import (
	"fmt"
	"os"

	"github.com/rcdesign/gorcc/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gorcc",
	Short: "Reinforced Concrete Column Capacity Tool",
	Long: `gorcc - Go Reinforced Concrete Column capacity tool

A CLI tool for the capacity evaluation of rectangular reinforced
concrete columns under combined axial load and bending, based on
ACI 318-14 strain compatibility provisions.

This tool helps structural engineers:
  - Compute nominal and design P-M interaction diagrams
  - Check factored demand points against the design curve
  - Factor service loads with ACI 318-14 load combinations
  - Export interaction diagrams as PNG/SVG/PDF images`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcc v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Column capacity tool             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for rectangular reinforced concrete columns under")
		fmt.Println("  combined axial load and bending, based on ACI 318-14.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Strain-compatibility P-M interaction diagram")
		fmt.Println("    • Nominal and φ-factored design curves")
		fmt.Println("    • Demand point checks with utilization ratio")
		fmt.Println("    • Factored loads from ACI 318-14 load combinations")
		fmt.Println()
		fmt.Println("  Use 'gorcc --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
