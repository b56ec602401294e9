package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rcdesign/gorcc/internal/column"
	"github.com/rcdesign/gorcc/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	checkFile       string
	checkSamples    int
	checkMu         float64
	checkPu         float64
	checkExportFile string
)

var columnCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a factored demand point against the design curve",
	Long: `Check whether a factored demand point (Mu, Pu) falls inside the
design interaction curve of a column section defined in a JSON file.

The capacity along the load path is found by intersecting the ray
from the origin through the demand point with the design polygon;
the utilization ratio is demand over capacity along that ray.

Examples:
  gorcc column check --file column.json --mu 120 --pu 800
  gorcc column check -f column.json --mu 45 --pu -100 -o check.png`,
	Run: runColumnCheck,
}

func init() {
	columnCmd.AddCommand(columnCheckCmd)

	columnCheckCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path to column section JSON file [required]")
	columnCheckCmd.MarkFlagRequired("file")

	columnCheckCmd.Flags().Float64Var(&checkMu, "mu", 0, "Factored moment Mu (tonf-m)")
	columnCheckCmd.Flags().Float64Var(&checkPu, "pu", 0, "Factored axial force Pu (tonf), compression positive")
	columnCheckCmd.Flags().IntVarP(&checkSamples, "samples", "n", column.DefaultSamples, "Neutral axis depths sampled per sweep direction")
	columnCheckCmd.Flags().StringVarP(&checkExportFile, "output", "o", "", "Export diagram with demand marker to file (png, svg, pdf)")
}

func runColumnCheck(cmd *cobra.Command, args []string) {
	sec, err := column.LoadFromFile(checkFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	curve, err := column.ComputeCurve(sec, checkSamples)
	if err != nil {
		fmt.Printf("Error computing interaction curve: %v\n", err)
		return
	}

	result := column.CheckCapacity(curve, checkMu, checkPu)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COLUMN CAPACITY CHECK - ACI 318-14")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
		fmt.Println()
	}

	fmt.Println("DEMAND:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Factored moment (Mu):\t%.2f tonf-m\n", result.Mu)
	fmt.Fprintf(w, "  Factored axial force (Pu):\t%.2f tonf\n", result.Pu)
	w.Flush()
	fmt.Println()

	fmt.Println("CAPACITY ALONG THE LOAD PATH:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Design moment (φMn):\t%.2f tonf-m\n", result.PhiMn)
	fmt.Fprintf(w, "  Design axial force (φPn):\t%.2f tonf\n", result.PhiPn)
	fmt.Fprintf(w, "  Utilization (demand/capacity):\t%s\n", result.UtilizationString())
	w.Flush()
	fmt.Println()

	status := "ADEQUATE ✓"
	if !result.IsAdequate {
		status = "INADEQUATE ⚠"
	}
	fmt.Println(diagram.DrawSummaryBox("CHECK RESULT", []string{
		fmt.Sprintf("Section is %s", status),
		result.Message,
		fmt.Sprintf("Utilization = %s", result.UtilizationString()),
	}))

	if checkExportFile != "" {
		nominalM, nominalP := curve.Nominal()
		designM, designP := curve.Design()
		diagramData := diagram.InteractionDiagramData{
			NominalM: nominalM,
			NominalP: nominalP,
			DesignM:  designM,
			DesignP:  designP,
			Mu:       result.Mu,
			Pu:       result.Pu,
		}
		if err := diagram.ExportInteractionDiagram(diagramData, checkExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", checkExportFile)
		}
	}
}
