package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"Editor", "100"},
		{"Web Browser", "2"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"Editor       100",
		"Web Browser    2",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatMeasuresVisibleWidth(t *testing.T) {
	// The escape sequence must not count toward the column width.
	rows := [][]string{
		{"\x1b[1mBold\x1b[0m", "x"},
		{"Plain", "y"},
	}
	got := Format(rows, nil)
	if got[0] != "\x1b[1mBold\x1b[0m   x" {
		t.Fatalf("unexpected styled row: %q", got[0])
	}
	if got[1] != "Plain  y" {
		t.Fatalf("unexpected plain row: %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil for no rows, got %v", got)
	}
}
