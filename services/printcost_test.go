package services

import "testing"

func TestPrintCostFor(t *testing.T) {
	board := Billboard{ID: "b1", Size: "4x3", Faces: 2}

	tests := []struct {
		name    string
		board   Billboard
		enabled bool
		price   float64
		expect  float64
	}{
		{"toggle off", board, false, 10, 0},
		{"zero price", board, true, 0, 0},
		{"negative price", board, true, -5, 0},
		{"basic", board, true, 10, 240}, // 4*3*2*10
		{"single face", Billboard{Size: "4x3", Faces: 1}, true, 10, 120},
		{"default faces", Billboard{Size: "4x3"}, true, 10, 240},
		{"multiplication sign", Billboard{Size: "3×4", Faces: 2}, true, 10, 240},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := PrintCostFor(tt.board, tt.enabled, tt.price)
			if item.Cost != tt.expect {
				t.Errorf("cost = %v, want %v", item.Cost, tt.expect)
			}
		})
	}
}

func TestPrintCostFor_UnparsableSize(t *testing.T) {
	item := PrintCostFor(Billboard{Size: "لوحة كبيرة", Faces: 2}, true, 10)
	if item.Cost != 0 {
		t.Errorf("unparsable size should cost 0, got %v", item.Cost)
	}
	if !item.Unparsable {
		t.Error("unparsable size should be flagged for the UI")
	}
}

func TestCalcPrintCost(t *testing.T) {
	boards := []Billboard{
		{Size: "4x3", Faces: 2}, // 240
		{Size: "4x5", Faces: 1}, // 200
		{Size: "bad", Faces: 2}, // 0, flagged
	}
	got := CalcPrintCost(boards, true, 10)
	if got.Total != 440 {
		t.Errorf("Total = %v, want 440", got.Total)
	}
	if !got.Items[2].Unparsable {
		t.Error("expected third item flagged unparsable")
	}

	disabled := CalcPrintCost(boards, false, 10)
	if disabled.Total != 0 {
		t.Errorf("disabled toggle should total 0, got %v", disabled.Total)
	}
}
