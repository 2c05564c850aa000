package services

import "testing"

func TestPaginateBillboards(t *testing.T) {
	boards := make([]Billboard, 19)
	for i := range boards {
		boards[i].ID = string(rune('a' + i))
	}

	pages := PaginateBillboards(boards, 8)
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	if len(pages[0]) != 8 || len(pages[1]) != 8 || len(pages[2]) != 3 {
		t.Errorf("unexpected page sizes %d/%d/%d", len(pages[0]), len(pages[1]), len(pages[2]))
	}

	if pages := PaginateBillboards(nil, 8); pages != nil {
		t.Errorf("no boards should mean no pages, got %v", pages)
	}

	// Invalid page size falls back to the default.
	fallback := PaginateBillboards(boards, 0)
	if len(fallback[0]) != BillboardsPerPrintPage {
		t.Errorf("expected default page size, got %d", len(fallback[0]))
	}
}
