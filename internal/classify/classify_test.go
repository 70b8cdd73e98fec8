package classify

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSubfield(t *testing.T) {
	cls := Default()
	tests := []struct {
		venue string
		want  string
	}{
		{"ICML", "Artificial Intelligence"},
		{"NEURIPS", "Artificial Intelligence"},
		{"nips", "Artificial Intelligence"},
		{"  iclr ", "Artificial Intelligence"},
		{"ACL", "Computational Linguistics"},
		{"SIGGRAPH", "Computer Graphics"},
		{"CVPR", "Computer Vision and Pattern Recognition"},
		{"KDD", "Data Mining and Analysis"},
		{"WWW", "Databases and Information Systems"},
		{"ACMMM", "Multimedia"},
		{"ICRA", "Robotics"},
		{"UNHEARD-OF", Other},
		{"", Other},
	}
	for _, tt := range tests {
		t.Run(tt.venue, func(t *testing.T) {
			if got := cls.Subfield(tt.venue); got != tt.want {
				t.Errorf("Subfield(%q) = %q, want %q", tt.venue, got, tt.want)
			}
		})
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subfields.yaml")
	table := `subfields:
  Quantum Computing: [QIP, TQC]
`
	if err := os.WriteFile(path, []byte(table), 0o644); err != nil {
		t.Fatal(err)
	}

	cls, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if got := cls.Subfield("qip"); got != "Quantum Computing" {
		t.Errorf("Subfield(qip) = %q", got)
	}
	// The file replaces the built-in table entirely.
	if got := cls.Subfield("ICML"); got != Other {
		t.Errorf("Subfield(ICML) = %q, want %q", got, Other)
	}
}

func TestFromFileErrors(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("subfields: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile(empty); err == nil {
		t.Error("expected error for empty table")
	}
}

func TestContinent(t *testing.T) {
	tests := []struct {
		country string
		want    string
	}{
		{"South Africa", "Africa"},
		{"Nigeria", "Africa"},
		{"Japan", "Asia"},
		{"Germany", "Europe"},
		{"United States", "North America"},
		{"Brazil", "South America"},
		{"Australia", "Oceania"},
		{"Atlantis", ""},
	}
	for _, tt := range tests {
		if got := Continent(tt.country); got != tt.want {
			t.Errorf("Continent(%q) = %q, want %q", tt.country, got, tt.want)
		}
	}
}

func TestContinentsCopies(t *testing.T) {
	m := Continents()
	if len(m) != 6 {
		t.Fatalf("Continents has %d entries", len(m))
	}
	delete(m, "Africa")
	if Continents()["Africa"] == nil {
		t.Error("mutating the returned map should not affect later calls")
	}
}

func TestCountriesIn(t *testing.T) {
	if CountriesIn("Africa") == nil {
		t.Error("CountriesIn(Africa) = nil")
	}
	if CountriesIn("Pangaea") != nil {
		t.Error("CountriesIn(Pangaea) should be nil")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("Computer Vision and Pattern Recognition"); got != "Computer Vision" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := DisplayName("Robotics"); got != "Robotics" {
		t.Errorf("DisplayName = %q", got)
	}
}
