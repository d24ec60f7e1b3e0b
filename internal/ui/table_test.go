package ui

import (
	"strings"
	"testing"
)

// plainUI returns a UI that renders without styling, regardless of the test
// environment's terminal.
func plainUI() *UI {
	return &UI{IsTTY: false, NoColor: true}
}

func TestTable_Plain(t *testing.T) {
	u := plainUI()

	out := u.Table([]string{"code", "count"}, [][]string{
		{"IC", "40"},
		{"GT", "25"},
	})

	for _, want := range []string{"code", "count", "IC", "40", "GT", "25"} {
		if !strings.Contains(out, want) {
			t.Errorf("Table output missing %q:\n%s", want, out)
		}
	}

	// Plain mode uses an ASCII border
	if !strings.Contains(out, "+") || !strings.Contains(out, "|") {
		t.Errorf("Expected ASCII border in plain output:\n%s", out)
	}

	// All lines of the grid are equally wide
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, line := range lines[1:] {
		if len(line) != len(lines[0]) {
			t.Errorf("Table lines are not aligned:\n%s", out)
			break
		}
	}
}

func TestTable_EmptyRows(t *testing.T) {
	u := plainUI()

	out := u.Table([]string{"code", "count"}, nil)
	if !strings.Contains(out, "code") {
		t.Errorf("Expected headers in empty table output:\n%s", out)
	}
}

func TestSumLine_Plain(t *testing.T) {
	u := plainUI()

	if got := u.SumLine(77, ""); got != "Sum: 77" {
		t.Errorf("Expected \"Sum: 77\", got %q", got)
	}

	withNote := u.SumLine(0, "(zie A7)")
	if withNote != "Sum: 0 (zie A7)" {
		t.Errorf("Expected \"Sum: 0 (zie A7)\", got %q", withNote)
	}
}

func TestSection_Plain(t *testing.T) {
	u := plainUI()

	title := "A2 - Verdeling studies"
	if got := u.Section(title); got != title {
		t.Errorf("Expected plain section to be the bare title, got %q", got)
	}
}
