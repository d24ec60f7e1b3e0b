package report

import (
	"testing"

	"github.com/svsticky/alvreport/internal/models"
)

func TestSumCodeCounts(t *testing.T) {
	counts := []models.StudyCodeCount{
		{Code: "IC", Count: 40},
		{Code: "GT", Count: 25},
		{Code: "IK", Count: 12},
	}

	if got := SumCodeCounts(counts); got != 77 {
		t.Errorf("Expected sum 77, got %d", got)
	}
}

func TestSumCodeCounts_Empty(t *testing.T) {
	if got := SumCodeCounts(nil); got != 0 {
		t.Errorf("Expected sum 0 for empty distribution, got %d", got)
	}
	if got := SumCodeCounts([]models.StudyCodeCount{}); got != 0 {
		t.Errorf("Expected sum 0 for empty distribution, got %d", got)
	}
}

func TestSectionOrder(t *testing.T) {
	want := []string{
		"A2 - Verdeling studies",
		"A3 - Nieuwe leden",
		"A4 - Nieuwe bachelor",
		"A5 - Nieuew master",
		"A6 - Verdeling studies nieuwe leden",
		"A7 - Nieuwe actieve leden",
		"A8 - Nieuwe leden sinds 2010",
		"A11 - Verdeling nieuwe actieve leden",
		"A12 - Sjaars bij activiteiten",
		"A13 - Leden bij Extern activiteiten",
	}

	if len(sectionOrder) != len(want) {
		t.Fatalf("Expected %d sections, got %d", len(want), len(sectionOrder))
	}
	for i, title := range want {
		if sectionOrder[i] != title {
			t.Errorf("Expected section %d to be %q, got %q", i, title, sectionOrder[i])
		}
	}
}
