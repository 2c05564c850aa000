package services

import (
	"regexp"
	"strconv"
	"strings"
)

// sizePattern matches the first "width <sep> height" pair inside a size
// label. Labels come from free-text fields and spreadsheets, so the
// separator can be x, X, the multiplication sign, a star or a dash, and
// decimals can use either a dot or a comma.
var sizePattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*[xX×*\-]\s*(\d+(?:[.,]\d+)?)`)

// ParseSize extracts the width and height from a size label. It returns
// ok=false when no dimension pair can be found.
func ParseSize(label string) (width, height float64, ok bool) {
	m := sizePattern.FindStringSubmatch(label)
	if m == nil {
		return 0, 0, false
	}
	w, err1 := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	h, err2 := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", "."), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return w, h, true
}

// CanonicalSize normalizes a size label to the "WxH" form used for
// lookups. Unparsable labels are lowercased and trimmed so equal labels
// still compare equal.
func CanonicalSize(label string) string {
	w, h, ok := ParseSize(label)
	if !ok {
		return strings.ToLower(strings.TrimSpace(label))
	}
	return formatDim(w) + "x" + formatDim(h)
}

// SizeVariants returns the canonical label plus its axis-swapped twin.
// A 4x3 billboard and a 3x4 billboard are the same physical board, so
// price lookups try both orders. Square sizes yield one variant.
func SizeVariants(label string) []string {
	w, h, ok := ParseSize(label)
	if !ok {
		return []string{CanonicalSize(label)}
	}
	canon := formatDim(w) + "x" + formatDim(h)
	if w == h {
		return []string{canon}
	}
	return []string{canon, formatDim(h) + "x" + formatDim(w)}
}

// SameSize reports whether two labels describe the same physical size,
// ignoring separator style and axis order. Unparsable labels never
// match.
func SameSize(a, b string) bool {
	aw, ah, ok := ParseSize(a)
	if !ok {
		return false
	}
	bw, bh, ok := ParseSize(b)
	if !ok {
		return false
	}
	return (aw == bw && ah == bh) || (aw == bh && ah == bw)
}

// SizeArea returns the face area in square meters.
func SizeArea(label string) (float64, bool) {
	w, h, ok := ParseSize(label)
	if !ok {
		return 0, false
	}
	return w * h, true
}

// formatDim renders a dimension without a trailing ".0".
func formatDim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
