package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"billboardadmin/services"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return b.String()
}

func sampleContract() services.ContractData {
	boards := []services.Billboard{
		{ID: "b1", Name: "لوحة طريق المطار", Size: "4x12", Faces: 2, Municipality: "طرابلس المركز"},
		{ID: "b2", Name: "لوحة السراج", Size: "3x4", Faces: 1, Municipality: "جنزور"},
	}
	data := services.ContractData{
		ID:             "c1",
		Number:         "CT-2026-0007",
		AdType:         "مشروبات",
		CustomerName:   "أحمد علي",
		Company:        "شركة المستقبل",
		Phone:          "0912345678",
		StartDate:      "1 يناير 2026",
		EndDate:        "1 يوليو 2026",
		DurationMonths: 6,
		CurrencyCode:   "دينار",
		Totals: services.ContractTotals{
			Subtotal:       10500,
			DiscountAmount: 500,
			FinalTotal:     10000,
			RentalOnly:     9400,
			OperatingFee:   282,
		},
		TotalWords:  services.AmountToArabicWords(10000, "دينار"),
		HasDiscount: true,
		Installments: []services.Installment{
			{Amount: 5000, DueDate: "2026-01-01", Description: "الدفعة 1"},
			{Amount: 5000, DueDate: "2026-04-01", Description: "الدفعة 2"},
		},
		Boards: boards,
		Pages:  services.PaginateBillboards(boards, 0),
	}
	return data
}

func TestContractDocumentContainsCoreFields(t *testing.T) {
	html := render(t, ContractDocument(sampleContract(), "شركة الإعلان", "للدعاية والإعلان"))

	for _, want := range []string{
		"CT-2026-0007",
		"أحمد علي",
		"لوحة طريق المطار",
		"10,000",
		"عقد إيجار لوحات إعلانية",
		"فقط لا غير",
		"window.print()",
		"dir=\"rtl\"",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("contract document missing %q", want)
		}
	}
}

func TestContractDocumentDiscountFootnote(t *testing.T) {
	data := sampleContract()
	html := render(t, ContractDocument(data, "شركة الإعلان", ""))
	if !strings.Contains(html, "خصم") {
		t.Error("expected discount footnote when HasDiscount is set")
	}

	data.HasDiscount = false
	data.Totals.DiscountAmount = 0
	html = render(t, ContractDocument(data, "شركة الإعلان", ""))
	if strings.Contains(html, "يشمل هذا العقد خصم") {
		t.Error("discount footnote rendered without a discount")
	}
}

func TestContractDocumentPaginatesBillboards(t *testing.T) {
	data := sampleContract()
	var boards []services.Billboard
	for i := 0; i < 19; i++ {
		boards = append(boards, services.Billboard{ID: "b", Name: "لوحة", Size: "3x4", Faces: 2})
	}
	data.Boards = boards
	data.Pages = services.PaginateBillboards(boards, 0)

	html := render(t, ContractDocument(data, "شركة الإعلان", ""))

	// 19 boards over 8-row pages: first page, two continuation pages,
	// closing page.
	if got := strings.Count(html, "<div class=\"page\">"); got != 4 {
		t.Errorf("page count = %d, want 4", got)
	}
	if got := strings.Count(html, "ملحق اللوحات"); got != 2 {
		t.Errorf("continuation pages = %d, want 2", got)
	}
}

func TestContractDocumentEscapesValues(t *testing.T) {
	data := sampleContract()
	data.CustomerName = `<script>alert("x")</script>`
	html := render(t, ContractDocument(data, "شركة الإعلان", ""))
	if strings.Contains(html, "<script>alert") {
		t.Error("customer name was not escaped")
	}
}
