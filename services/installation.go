package services

import "math"

// InstallationItem is the per-billboard outcome of the installation cost
// calculation. Unresolved sizes contribute zero and are kept in the detail
// list so the edit page can flag them, they are not an error.
type InstallationItem struct {
	BillboardID string
	Name        string
	Size        string
	Faces       int
	BasePrice   float64
	Cost        float64
	Resolved    bool
}

// InstallationTotal aggregates installation costs over a billboard set.
type InstallationTotal struct {
	Total float64
	Items []InstallationItem
}

// InstallPriceForSize resolves the installation price for a size label
// using the same fuzzy matching as the rental price lookup. The
// level/category dimensions do not apply to installation, so the best
// match across the whole table wins.
func InstallPriceForSize(rows []PricingRow, label string) (float64, bool) {
	variants := SizeVariants(label)
	for _, r := range rows {
		if r.InstallPrice <= 0 {
			continue
		}
		canon := CanonicalSize(r.Size)
		for _, v := range variants {
			if canon == v {
				return r.InstallPrice, true
			}
		}
	}

	targetArea, ok := SizeArea(label)
	if !ok {
		return 0, false
	}
	bestDiff := math.Inf(1)
	var best float64
	found := false
	for _, r := range rows {
		if r.InstallPrice <= 0 {
			continue
		}
		area, ok := SizeArea(r.Size)
		if !ok {
			continue
		}
		diff := math.Abs(area - targetArea)
		if diff < bestDiff {
			bestDiff = diff
			best = r.InstallPrice
			found = true
		}
	}
	return best, found
}

// InstallCostFor returns the installation cost for one billboard.
// A single-face billboard costs half the base price, rounded to the
// nearest integer; any other face count pays the base price unchanged.
func InstallCostFor(basePrice float64, faces int) float64 {
	if faces == 1 {
		return math.Round(basePrice / 2)
	}
	return basePrice
}

// CalcInstallation computes the installation cost for a billboard set.
func CalcInstallation(rows []PricingRow, boards []Billboard) InstallationTotal {
	var out InstallationTotal
	for _, b := range boards {
		faces := b.Faces
		if faces <= 0 {
			faces = defaultFaceCount
		}
		item := InstallationItem{
			BillboardID: b.ID,
			Name:        b.Name,
			Size:        b.Size,
			Faces:       faces,
		}
		if base, ok := InstallPriceForSize(rows, b.Size); ok {
			item.BasePrice = base
			item.Cost = InstallCostFor(base, faces)
			item.Resolved = true
		}
		out.Total += item.Cost
		out.Items = append(out.Items, item)
	}
	return out
}
