package services

// PrintCostItem is the per-billboard outcome of the print cost
// calculation. Unparsable sizes contribute zero and are flagged for the
// UI instead of failing the whole computation.
type PrintCostItem struct {
	BillboardID string
	Name        string
	Size        string
	Faces       int
	Area        float64
	Cost        float64
	Unparsable  bool
}

// PrintCostTotal aggregates print production costs over a billboard set.
type PrintCostTotal struct {
	Total float64
	Items []PrintCostItem
}

// PrintCostFor returns the print production cost for one billboard:
// width * height * faces * pricePerMeter. A disabled toggle, a
// non-positive price or an unparsable size label yields zero.
func PrintCostFor(b Billboard, enabled bool, pricePerMeter float64) PrintCostItem {
	faces := b.Faces
	if faces <= 0 {
		faces = defaultFaceCount
	}
	item := PrintCostItem{
		BillboardID: b.ID,
		Name:        b.Name,
		Size:        b.Size,
		Faces:       faces,
	}
	if !enabled || pricePerMeter <= 0 {
		return item
	}
	w, h, ok := ParseSize(b.Size)
	if !ok {
		item.Unparsable = true
		return item
	}
	item.Area = w * h
	item.Cost = w * h * float64(faces) * pricePerMeter
	return item
}

// CalcPrintCost computes the print production cost for a billboard set.
func CalcPrintCost(boards []Billboard, enabled bool, pricePerMeter float64) PrintCostTotal {
	var out PrintCostTotal
	for _, b := range boards {
		item := PrintCostFor(b, enabled, pricePerMeter)
		out.Total += item.Cost
		out.Items = append(out.Items, item)
	}
	return out
}
