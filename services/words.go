package services

import (
	"math"
	"strings"
)

// AmountToArabicWords converts a numeric amount to Arabic words for the
// amount-in-words line of printed invoices and contracts.
// Example: 1250 with unit "دينار" -> "ألف ومائتان وخمسون دينار فقط لا غير".
func AmountToArabicWords(amount float64, currencyUnit string) string {
	if currencyUnit == "" {
		currencyUnit = "دينار"
	}
	n := int64(math.Round(amount))
	if n == 0 {
		return "صفر " + currencyUnit + " فقط لا غير"
	}
	words := arabicNumberWords(n)
	if n < 0 {
		words = "سالب " + arabicNumberWords(-n)
	}
	return words + " " + currencyUnit + " فقط لا غير"
}

func arabicNumberWords(n int64) string {
	if n == 0 {
		return ""
	}

	var parts []string

	if n >= 1000000 {
		millions := n / 1000000
		parts = append(parts, scaleWords(millions, "مليون", "مليونان", "ملايين"))
		n %= 1000000
	}

	if n >= 1000 {
		thousands := n / 1000
		parts = append(parts, scaleWords(thousands, "ألف", "ألفان", "آلاف"))
		n %= 1000
	}

	if n >= 100 {
		parts = append(parts, arabicHundreds[n/100])
		n %= 100
	}

	if n > 0 {
		parts = append(parts, arabicUnder100(n))
	}

	return strings.Join(parts, " و")
}

// scaleWords applies Arabic number agreement to a scale word: one and two
// use the singular/dual forms alone, three to ten take the plural, and
// larger counts take the singular after the number.
func scaleWords(count int64, singular, dual, plural string) string {
	switch {
	case count == 1:
		return singular
	case count == 2:
		return dual
	case count >= 3 && count <= 10:
		return arabicUnder100(count) + " " + plural
	default:
		return arabicNumberWords(count) + " " + singular
	}
}

func arabicUnder100(n int64) string {
	if n < 20 {
		return arabicOnes[n]
	}
	tens := arabicTens[n/10]
	if n%10 == 0 {
		return tens
	}
	return arabicOnes[n%10] + " و" + tens
}

var arabicOnes = []string{
	"", "واحد", "اثنان", "ثلاثة", "أربعة", "خمسة", "ستة", "سبعة", "ثمانية", "تسعة",
	"عشرة", "أحد عشر", "اثنا عشر", "ثلاثة عشر", "أربعة عشر", "خمسة عشر",
	"ستة عشر", "سبعة عشر", "ثمانية عشر", "تسعة عشر",
}

var arabicTens = []string{
	"", "", "عشرون", "ثلاثون", "أربعون", "خمسون", "ستون", "سبعون", "ثمانون", "تسعون",
}

var arabicHundreds = []string{
	"", "مائة", "مائتان", "ثلاثمائة", "أربعمائة", "خمسمائة", "ستمائة", "سبعمائة", "ثمانمائة", "تسعمائة",
}
