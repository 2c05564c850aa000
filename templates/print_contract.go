package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"billboardadmin/services"
)

// ContractDocument renders the printable rental contract. Billboard rows
// are split into fixed-size pages so each page fits the pre-printed A4
// background; the first page carries the parties and totals, the last
// page carries the installment schedule and signatures.
func ContractDocument(data services.ContractData, companyName, companySub string) templ.Component {
	var pages []string

	var first strings.Builder
	first.WriteString(docHeader(companyName, companySub))
	first.WriteString("<div class=\"doc-title\">عقد إيجار لوحات إعلانية</div>\n")

	fmt.Fprintf(&first, "<div class=\"meta\"><span>رقم العقد: %s</span><span>نوع الإعلان: %s</span></div>\n",
		esc(services.Dash(data.Number)), esc(services.Dash(data.AdType)))
	fmt.Fprintf(&first, "<div class=\"meta\"><span>من: %s</span><span>إلى: %s</span><span>المدة: %d شهر</span></div>\n",
		esc(data.StartDate), esc(data.EndDate), data.DurationMonths)

	first.WriteString("<table><tr><th>العميل</th><th>الشركة</th><th>الهاتف</th></tr>")
	fmt.Fprintf(&first, "<tr><td>%s</td><td>%s</td><td>%s</td></tr></table>\n",
		esc(services.Dash(data.CustomerName)), esc(services.Dash(data.Company)), esc(services.Dash(data.Phone)))

	if len(data.Pages) > 0 {
		first.WriteString(billboardTable(data.Pages[0], 0))
	}
	first.WriteString(contractTotalsTable(data))
	fmt.Fprintf(&first, "<div class=\"words\">القيمة كتابة: %s</div>\n", esc(data.TotalWords))
	if data.HasDiscount {
		fmt.Fprintf(&first, "<div class=\"footnote\">يشمل هذا العقد خصماً قدره %s %s.</div>\n",
			amount(data.Totals.DiscountAmount), esc(data.CurrencyCode))
	}
	if data.PrintEnabled {
		first.WriteString("<div class=\"footnote\">تشمل القيمة تكلفة طباعة التصاميم.</div>\n")
	} else {
		first.WriteString("<div class=\"footnote\">لا تشمل القيمة تكلفة الطباعة.</div>\n")
	}
	pages = append(pages, first.String())

	// Remaining billboard pages.
	for i := 1; i < len(data.Pages); i++ {
		var p strings.Builder
		p.WriteString(docHeader(companyName, companySub))
		fmt.Fprintf(&p, "<div class=\"doc-title\">ملحق اللوحات — عقد %s</div>\n", esc(data.Number))
		p.WriteString(billboardTable(data.Pages[i], i*services.BillboardsPerPrintPage))
		pages = append(pages, p.String())
	}

	// Closing page: installments and signatures.
	var last strings.Builder
	last.WriteString(docHeader(companyName, companySub))
	if len(data.Installments) > 0 {
		last.WriteString("<div class=\"doc-title\">جدول الدفعات</div>\n")
		last.WriteString(installmentTable(data.Installments, data.CurrencyCode))
	}
	last.WriteString("<div class=\"sign-row\"><div>الطرف الأول</div><div>الطرف الثاني</div></div>\n")
	pages = append(pages, last.String())

	title := "عقد " + data.Number
	return PrintDocument(title, pages)
}

func billboardTable(boards []services.Billboard, offset int) string {
	var b strings.Builder
	b.WriteString("<table><tr><th>#</th><th>اللوحة</th><th>البلدية</th><th>المنطقة</th><th>أقرب نقطة دالة</th><th>المقاس</th><th>الأوجه</th></tr>\n")
	for i, board := range boards {
		fmt.Fprintf(&b, "<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%d</td></tr>\n",
			offset+i+1,
			esc(services.Dash(board.Name)),
			esc(services.Dash(board.Municipality)),
			esc(services.Dash(board.District)),
			esc(services.Dash(board.Landmark)),
			esc(services.Dash(services.CanonicalSize(board.Size))),
			board.Faces)
	}
	b.WriteString("</table>\n")
	return b.String()
}

func contractTotalsTable(data services.ContractData) string {
	currency := esc(data.CurrencyCode)
	var b strings.Builder
	b.WriteString("<table>\n")
	fmt.Fprintf(&b, "<tr><td>الإجمالي قبل الخصم</td><td>%s %s</td></tr>\n", amount(data.Totals.Subtotal), currency)
	if data.HasDiscount {
		fmt.Fprintf(&b, "<tr><td>الخصم</td><td>%s %s</td></tr>\n", amount(data.Totals.DiscountAmount), currency)
	}
	fmt.Fprintf(&b, "<tr><td>صافي الإيجار</td><td>%s %s</td></tr>\n", amount(data.Totals.RentalOnly), currency)
	fmt.Fprintf(&b, "<tr><td>رسوم التشغيل (%s%%)</td><td>%s %s</td></tr>\n",
		services.FormatAmount(data.FeeRate), amount(data.Totals.OperatingFee), currency)
	fmt.Fprintf(&b, "<tr class=\"totals\"><td>الإجمالي النهائي</td><td>%s %s</td></tr>\n", amount(data.Totals.FinalTotal), currency)
	b.WriteString("</table>\n")
	return b.String()
}

func installmentTable(items []services.Installment, currency string) string {
	var b strings.Builder
	b.WriteString("<table><tr><th>#</th><th>البيان</th><th>تاريخ الاستحقاق</th><th>القيمة</th></tr>\n")
	for i, inst := range items {
		fmt.Fprintf(&b, "<tr><td>%d</td><td>%s</td><td>%s</td><td>%s %s</td></tr>\n",
			i+1,
			esc(services.Dash(inst.Description)),
			esc(services.FormatDateArabic(inst.DueDate)),
			amount(inst.Amount), esc(currency))
	}
	b.WriteString("</table>\n")
	return b.String()
}
