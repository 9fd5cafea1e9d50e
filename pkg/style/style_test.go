package style

import "testing"

func TestTableIsStable(t *testing.T) {
	a := Table()
	b := Table()
	if len(a) != 6 {
		t.Fatalf("len(Table()) = %d, want 6", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Table()[%d] differs between calls", i)
		}
		if a[i].Index != i+1 {
			t.Errorf("Table()[%d].Index = %d, want %d", i, a[i].Index, i+1)
		}
	}

	a[0].Color = "#000000"
	if Table()[0].Color != "#1f17f4" {
		t.Error("Table() must return a copy")
	}
}

func TestIndices(t *testing.T) {
	tests := []struct {
		n, primary, errorBar int
	}{
		{0, 1, 2},
		{1, 3, 4},
		{2, 5, 6},
		{5, 11, 12},
	}
	for _, tt := range tests {
		if got := Primary(tt.n); got != tt.primary {
			t.Errorf("Primary(%d) = %d, want %d", tt.n, got, tt.primary)
		}
		if got := ErrorBar(tt.n); got != tt.errorBar {
			t.Errorf("ErrorBar(%d) = %d, want %d", tt.n, got, tt.errorBar)
		}
	}
}
