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
	curveFile        string
	curveSamples     int
	curveShowDiagram bool
	curveShowPoints  bool
	curveExportFile  string
)

var columnCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Compute the P-M interaction diagram of a column section",
	Long: `Compute the nominal and design (φ-factored) interaction curves of a
rectangular column section defined in a JSON file.

The computation sweeps the neutral axis depth with a linear strain
profile, sums the rectangular concrete stress block and the
elastic-plastic steel line forces, and caps the axial capacity at
0.80·Po per ACI 318-14 Section 22.4.2.1.

Examples:
  gorcc column curve --file column.json
  gorcc column curve -f column.json --samples 80 --diagram
  gorcc column curve -f column.json --output diagram.png`,
	Run: runColumnCurve,
}

func init() {
	columnCmd.AddCommand(columnCurveCmd)

	columnCurveCmd.Flags().StringVarP(&curveFile, "file", "f", "", "Path to column section JSON file [required]")
	columnCurveCmd.MarkFlagRequired("file")

	columnCurveCmd.Flags().IntVarP(&curveSamples, "samples", "n", column.DefaultSamples, "Neutral axis depths sampled per sweep direction")

	// Output options
	columnCurveCmd.Flags().BoolVar(&curveShowDiagram, "diagram", false, "Show ASCII interaction diagram")
	columnCurveCmd.Flags().BoolVar(&curveShowPoints, "points", false, "List every curve point")
	columnCurveCmd.Flags().StringVarP(&curveExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runColumnCurve(cmd *cobra.Command, args []string) {
	sec, err := column.LoadFromFile(curveFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	curve, err := column.ComputeCurve(sec, curveSamples)
	if err != nil {
		fmt.Printf("Error computing interaction curve: %v\n", err)
		return
	}

	lines, err := sec.Layout()
	if err != nil {
		fmt.Printf("Error computing reinforcement layout: %v\n", err)
		return
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COLUMN INTERACTION DIAGRAM - ACI 318-14")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()

	fmt.Println("SECTION GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (b):\t%.1f cm\n", sec.Width)
	fmt.Fprintf(w, "  Height (h):\t%.1f cm\n", sec.Height)
	fmt.Fprintf(w, "  Cover:\t%.1f cm\n", sec.Cover)
	fmt.Fprintf(w, "  Effective depth (d):\t%.1f cm\n", sec.EffectiveDepth())
	w.Flush()
	fmt.Println()

	fmt.Println("MATERIAL PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  f'c:\t%.3f tonf/cm²\n", sec.Fc)
	fmt.Fprintf(w, "  fy:\t%.2f tonf/cm²\n", sec.Fy)
	fmt.Fprintf(w, "  Es:\t%.0f tonf/cm²\n", sec.Es)
	fmt.Fprintf(w, "  εcu:\t%.4f\n", sec.EpsilonCU)
	fmt.Fprintf(w, "  α, β:\t%.2f, %.2f\n", sec.Alpha, sec.Beta)
	w.Flush()
	fmt.Println()

	fmt.Println("REINFORCEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Line\tOffset (cm)\tBars\tDiameter (cm)\tArea (cm²)\n")
	fmt.Fprintf(w, "  ────\t───────────\t────\t─────────────\t──────────\n")
	for i, line := range lines {
		fmt.Fprintf(w, "  %d\t%+.2f\t%d\t%.2f\t%.2f\n",
			i+1, line.Position, sec.BarsPerLine[i], sec.BarsDiameter[i], line.Area)
	}
	fmt.Fprintf(w, "  Total steel area:\t\t\t\t%.2f cm²\n", column.TotalSteelArea(lines))
	w.Flush()
	fmt.Println()

	fmt.Println("CURVE SUMMARY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	first := curve.Points[0]
	fmt.Fprintf(w, "  Sweep samples per direction:\t%d\n", curveSamples)
	fmt.Fprintf(w, "  Curve points:\t%d\n", len(curve.Points))
	fmt.Fprintf(w, "  Pure tension (Pn):\t%.2f tonf\n", first.Pn)
	fmt.Fprintf(w, "  Axial cap Pn,max = 0.80·Po:\t%.2f tonf\n", curve.PnCap)
	fmt.Fprintf(w, "  Design axial cap φPn,max:\t%.2f tonf\n", curve.PhiPnCap)
	w.Flush()
	fmt.Println()

	if curveShowPoints {
		fmt.Println("CURVE POINTS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tMn (tonf-m)\tPn (tonf)\tφMn (tonf-m)\tφPn (tonf)\n")
		fmt.Fprintf(w, "  ─\t───────────\t─────────\t────────────\t──────────\n")
		for i, pt := range curve.Points {
			fmt.Fprintf(w, "  %d\t%.2f\t%.2f\t%.2f\t%.2f\n", i+1, pt.Mn, pt.Pn, pt.PhiMn, pt.PhiPn)
		}
		w.Flush()
		fmt.Println()
	}

	nominalM, nominalP := curve.Nominal()
	designM, designP := curve.Design()
	diagramData := diagram.InteractionDiagramData{
		NominalM: nominalM,
		NominalP: nominalP,
		DesignM:  designM,
		DesignP:  designP,
	}

	if curveShowDiagram {
		fmt.Println(diagram.DrawASCIIInteractionDiagram(diagramData))
		fmt.Println(diagram.DrawAxialProfile(diagramData))
	}

	if curveExportFile != "" {
		if err := diagram.ExportInteractionDiagram(diagramData, curveExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", curveExportFile)
		}
	}
}
