package beaufort

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		speed     float64
		wantForce int
		wantLabel string
	}{
		{0, 0, "Calmo"},
		{0.99, 0, "Calmo"},
		{1, 1, "Vento leve"},
		{3.99, 1, "Vento leve"},
		{4, 2, "Brisa fraca"},
		{10, 3, "Brisa leve"},
		{11, 4, "Brisa moderada"},
		{21.5, 5, "Brisa fresca"},
		{22, 6, "Vento fresco"},
		{30, 7, "Vento forte"},
		{40, 8, "Tempestuoso"},
		{41, 9, "Tempestade"},
		{50, 10, "Tempestade forte"},
		{56, 11, "Furacão"},
		{63.9, 11, "Furacão"},
		{64, 12, "Furacão"},
		{150, 12, "Furacão"},
		{-3, 0, "Calmo"},
		{math.Inf(1), 12, "Furacão"},
	}

	for _, tt := range tests {
		got := Classify(tt.speed)
		if got.Number != tt.wantForce || got.Label != tt.wantLabel {
			t.Errorf("Classify(%v) = %d (%s), want %d (%s)",
				tt.speed, got.Number, got.Label, tt.wantForce, tt.wantLabel)
		}
	}
}

// TestClassify_BoundariesBelongToHigherForce checks every limit of the table
func TestClassify_BoundariesBelongToHigherForce(t *testing.T) {
	levels := Table()
	for i, level := range levels[:len(levels)-1] {
		if got := Classify(level.UpperBound).Number; got != i+1 {
			t.Errorf("Classify(%v) = %d, want %d", level.UpperBound, got, i+1)
		}
		below := math.Nextafter(level.UpperBound, 0)
		if got := Classify(below).Number; got != i {
			t.Errorf("Classify(%v) = %d, want %d", below, got, i)
		}
	}
}

func TestTable(t *testing.T) {
	levels := Table()
	if len(levels) != MaxForce+1 {
		t.Fatalf("Table() has %d levels, want %d", len(levels), MaxForce+1)
	}
	for i := 1; i < len(levels)-1; i++ {
		if levels[i].UpperBound <= levels[i-1].UpperBound {
			t.Errorf("level %d bound %v is not above level %d bound %v",
				i, levels[i].UpperBound, i-1, levels[i-1].UpperBound)
		}
	}
	top := levels[len(levels)-1]
	if top.Force.Number != 12 || top.UpperBound != 0 {
		t.Errorf("top level = %+v, want force 12 with open bound", top)
	}
}
