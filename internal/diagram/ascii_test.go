package diagram

import (
	"strings"
	"testing"
)

func sampleData() InteractionDiagramData {
	return InteractionDiagramData{
		NominalM: []float64{0, 50, 100, 50, 0, -50, -100, -50, 0},
		NominalP: []float64{-330, 200, 700, 1200, 1352, 1200, 700, 200, -330},
		DesignM:  []float64{0, 45, 78, 35, 0, -35, -78, -45, 0},
		DesignP:  []float64{-297, 150, 500, 800, 879, 800, 500, 150, -297},
	}
}

func TestDrawASCIIInteractionDiagram(t *testing.T) {
	out := DrawASCIIInteractionDiagram(sampleData())

	if !strings.Contains(out, "P-M INTERACTION DIAGRAM") {
		t.Error("missing diagram title")
	}
	if !strings.Contains(out, "·") || !strings.Contains(out, "*") {
		t.Error("missing curve markers")
	}
	if strings.Contains(out, "◆") {
		t.Error("demand marker drawn without a demand point")
	}
}

func TestDrawASCIIInteractionDiagramWithDemand(t *testing.T) {
	data := sampleData()
	data.Mu = 40
	data.Pu = 400
	out := DrawASCIIInteractionDiagram(data)

	if !strings.Contains(out, "◆") {
		t.Error("missing demand marker")
	}
	if !strings.Contains(out, "Mu = 40.00") {
		t.Error("missing demand legend")
	}
}

func TestDrawAxialProfile(t *testing.T) {
	out := DrawAxialProfile(sampleData())
	if !strings.Contains(out, "AXIAL CAPACITY ALONG THE SWEEP") {
		t.Error("missing profile title")
	}
	if !strings.Contains(out, "sweep station") {
		t.Error("missing caption")
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("CHECK RESULT", []string{"Section is ADEQUATE", "Utilization = 42.0%"})

	for _, want := range []string{"CHECK RESULT", "ADEQUATE", "╔", "╚"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary box missing %q", want)
		}
	}
}
