package services

import "testing"

func TestInstallCostFor_FaceHalving(t *testing.T) {
	tests := []struct {
		name   string
		base   float64
		faces  int
		expect float64
	}{
		{"single face halves", 300, 1, 150},
		{"single face rounds", 301, 1, 151},
		{"single face rounds down", 300.8, 1, 150},
		{"two faces unchanged", 300, 2, 300},
		{"three faces unchanged", 300, 3, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InstallCostFor(tt.base, tt.faces); got != tt.expect {
				t.Errorf("InstallCostFor(%v, %d) = %v, want %v", tt.base, tt.faces, got, tt.expect)
			}
		})
	}
}

func TestInstallPriceForSize(t *testing.T) {
	rows := testRows()

	price, ok := InstallPriceForSize(rows, "3×4")
	if !ok || price != 300 {
		t.Errorf("expected 300 for 3×4, got %v (ok=%v)", price, ok)
	}

	// 4x4 has no row; nearest area wins across the whole table.
	price, ok = InstallPriceForSize(rows, "4x4")
	if !ok || price != 300 {
		t.Errorf("expected nearest-area 300 for 4x4, got %v (ok=%v)", price, ok)
	}

	if _, ok := InstallPriceForSize(rows, "ضخم"); ok {
		t.Error("expected unparsable size to stay unresolved")
	}
}

func TestCalcInstallation(t *testing.T) {
	rows := testRows()
	boards := []Billboard{
		{ID: "b1", Name: "TR-0001", Size: "4x3", Faces: 2},
		{ID: "b2", Name: "TR-0002", Size: "3x4", Faces: 1},
		{ID: "b3", Name: "TR-0003", Size: "غير معروف", Faces: 2},
		{ID: "b4", Name: "TR-0004", Size: "4x5"}, // faces default to 2
	}

	got := CalcInstallation(rows, boards)

	// 300 + round(300/2) + 0 + 400
	if got.Total != 850 {
		t.Errorf("Total = %v, want 850", got.Total)
	}
	if len(got.Items) != 4 {
		t.Fatalf("expected 4 detail items, got %d", len(got.Items))
	}
	if got.Items[1].Cost != 150 {
		t.Errorf("single-face cost = %v, want 150", got.Items[1].Cost)
	}
	if got.Items[2].Resolved {
		t.Error("unresolvable size should be flagged unresolved")
	}
	if got.Items[2].Cost != 0 {
		t.Errorf("unresolvable size should cost 0, got %v", got.Items[2].Cost)
	}
	if got.Items[3].Faces != 2 {
		t.Errorf("missing face count should default to 2, got %d", got.Items[3].Faces)
	}
}
