package services

import (
	"testing"
	"time"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "0"},
		{"small", 5, "5"},
		{"whole thousands", 12500, "12,500"},
		{"millions", 1234567, "1,234,567"},
		{"keeps cents", 333.34, "333.34"},
		{"grouped with cents", 12345.67, "12,345.67"},
		{"drops .00", 900.00, "900"},
		{"negative", -2500, "-2,500"},
		{"boundary", 1000, "1,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.input); got != tt.expect {
				t.Errorf("FormatAmount(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatArabicDate(t *testing.T) {
	tests := []struct {
		date   time.Time
		expect string
	}{
		{time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), "15 يناير 2026"},
		{time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), "1 أغسطس 2025"},
		{time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), "31 ديسمبر 2026"},
	}
	for _, tt := range tests {
		if got := FormatArabicDate(tt.date); got != tt.expect {
			t.Errorf("FormatArabicDate(%v) = %q, want %q", tt.date, got, tt.expect)
		}
	}
}

func TestFormatDateArabic(t *testing.T) {
	if got := FormatDateArabic("2026-01-15"); got != "15 يناير 2026" {
		t.Errorf("got %q", got)
	}
	if got := FormatDateArabic(""); got != "—" {
		t.Errorf("empty date should render as em-dash, got %q", got)
	}
	if got := FormatDateArabic("garbage"); got != "garbage" {
		t.Errorf("unparsable non-empty value passes through, got %q", got)
	}
}

func TestParseDate(t *testing.T) {
	if _, ok := ParseDate("2026-01-15"); !ok {
		t.Error("plain date should parse")
	}
	if _, ok := ParseDate("2026-01-15 10:30:00.000Z"); !ok {
		t.Error("record store datetime should parse")
	}
	if _, ok := ParseDate(""); ok {
		t.Error("empty string should not parse")
	}
}

func TestDash(t *testing.T) {
	if got := Dash(""); got != "—" {
		t.Errorf("Dash(\"\") = %q", got)
	}
	if got := Dash("  "); got != "—" {
		t.Errorf("Dash(blank) = %q", got)
	}
	if got := Dash("value"); got != "value" {
		t.Errorf("Dash(value) = %q", got)
	}
}
