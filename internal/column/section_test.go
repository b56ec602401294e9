package column

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// refSection is the reference 80x80 column: 4 lines of 4 bars ⌀2.5,
// total steel area 25π ≈ 78.54 cm².
func refSection() *Section {
	return &Section{
		Name:         "C-1 80x80",
		Width:        80,
		Height:       80,
		Cover:        5,
		Es:           2100,
		Fy:           4.2,
		EpsilonCU:    0.003,
		Fc:           0.25,
		Alpha:        0.85,
		Beta:         0.85,
		BarsPerLine:  []int{4, 4, 4, 4},
		BarsDiameter: []float64{2.5, 2.5, 2.5, 2.5},
	}
}

func TestValidateAcceptsReference(t *testing.T) {
	if err := refSection().Validate(); err != nil {
		t.Fatalf("reference section should validate, got: %v", err)
	}
}

func TestValidateConfigErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Section)
	}{
		{"zero width", func(s *Section) { s.Width = 0 }},
		{"negative height", func(s *Section) { s.Height = -80 }},
		{"zero cover", func(s *Section) { s.Cover = 0 }},
		{"cover at half height", func(s *Section) { s.Cover = 40 }},
		{"zero elastic modulus", func(s *Section) { s.Es = 0 }},
		{"zero yield strength", func(s *Section) { s.Fy = 0 }},
		{"zero ultimate strain", func(s *Section) { s.EpsilonCU = 0 }},
		{"zero concrete stress", func(s *Section) { s.Fc = 0 }},
		{"alpha above one", func(s *Section) { s.Alpha = 1.1 }},
		{"beta zero", func(s *Section) { s.Beta = 0 }},
		{"no reinforcement lines", func(s *Section) { s.BarsPerLine = nil; s.BarsDiameter = nil }},
		{"mismatched line counts", func(s *Section) { s.BarsDiameter = s.BarsDiameter[:3] }},
		{"zero bar count", func(s *Section) { s.BarsPerLine[2] = 0 }},
		{"negative diameter", func(s *Section) { s.BarsDiameter[0] = -2.5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sec := refSection()
			tc.mutate(sec)
			err := sec.Validate()
			if err == nil {
				t.Fatal("expected a configuration error")
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T: %v", err, err)
			}
		})
	}
}

func TestLayoutPositionsAndAreas(t *testing.T) {
	lines, err := refSection().Layout()
	if err != nil {
		t.Fatal(err)
	}

	if len(lines) != 4 {
		t.Fatalf("got %d lines, expected 4", len(lines))
	}

	// Evenly spaced over [-(h-2rec)/2, +(h-2rec)/2] = [-35, 35]
	wantPositions := []float64{-35, -35 + 70.0/3, 35 - 70.0/3, 35}
	for i, line := range lines {
		if math.Abs(line.Position-wantPositions[i]) > 1e-9 {
			t.Errorf("line %d position = %.4f, expected %.4f", i, line.Position, wantPositions[i])
		}
		wantArea := 4 * math.Pi / 4 * 2.5 * 2.5
		if math.Abs(line.Area-wantArea) > 1e-9 {
			t.Errorf("line %d area = %.4f, expected %.4f", i, line.Area, wantArea)
		}
	}

	wantTotal := 25 * math.Pi
	if got := TotalSteelArea(lines); math.Abs(got-wantTotal) > 1e-9 {
		t.Errorf("total steel area = %.4f, expected %.4f", got, wantTotal)
	}
}

func TestLayoutSingleLineCollapsesToBottom(t *testing.T) {
	sec := refSection()
	sec.BarsPerLine = []int{4}
	sec.BarsDiameter = []float64{2.5}

	lines, err := sec.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, expected 1", len(lines))
	}
	if math.Abs(lines[0].Position-(-35)) > 1e-9 {
		t.Errorf("single line position = %.4f, expected -35", lines[0].Position)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `{
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
	}`

	path := filepath.Join(t.TempDir(), "column.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	sec, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if sec.Height != 80 || sec.Cover != 5 || sec.Es != 2100 {
		t.Errorf("unexpected field mapping: h=%.1f rec=%.1f Es=%.1f", sec.Height, sec.Cover, sec.Es)
	}
	if got := sec.EffectiveDepth(); math.Abs(got-75) > 1e-12 {
		t.Errorf("effective depth = %.2f, expected 75", got)
	}
}

func TestLoadFromFileRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"width": -1}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected validation error for invalid section file")
	}
}
