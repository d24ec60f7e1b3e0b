package report

import (
	"testing"

	"github.com/svsticky/alvreport/internal/models"
)

func TestFilterExternActivities(t *testing.T) {
	activities := []models.Activity{
		{ID: 1, Name: "Externe borrel"},
		{ID: 2, Name: "  ExTeRn Feest"},
		{ID: 3, Name: "Interne Borrel"},
		{ID: 4, Name: "extern"},
		{ID: 5, Name: "Lunch met extern"},
	}

	got := FilterExternActivities(activities)

	want := []int32{1, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("Expected ids %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected id %d at position %d, got %d", want[i], i, got[i])
		}
	}
}

func TestFilterExternActivities_NoMatches(t *testing.T) {
	activities := []models.Activity{
		{ID: 1, Name: "Interne Borrel"},
		{ID: 2, Name: "Sticky lunch"},
	}

	got := FilterExternActivities(activities)
	if len(got) != 0 {
		t.Errorf("Expected no ids, got %v", got)
	}
	if got == nil {
		t.Error("Expected an empty slice, got nil; the participant query binds it as an array")
	}
}

func TestFilterExternActivities_Empty(t *testing.T) {
	got := FilterExternActivities(nil)
	if len(got) != 0 {
		t.Errorf("Expected no ids, got %v", got)
	}
}
