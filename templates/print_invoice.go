package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"billboardadmin/services"
)

// InvoiceDocument renders a printable invoice from the typed model.
func InvoiceDocument(data services.InvoiceData, companyName, companySub string) templ.Component {
	var b strings.Builder
	b.WriteString(docHeader(companyName, companySub))

	title := invoiceTitle(data.InvoiceType)
	fmt.Fprintf(&b, "<div class=\"doc-title\">%s</div>\n", esc(title))

	fmt.Fprintf(&b, "<div class=\"meta\"><span>رقم: %s</span><span>التاريخ: %s</span></div>\n",
		esc(services.Dash(data.Number)), esc(services.Dash(data.Date)))

	b.WriteString("<table><tr><th>العميل</th><th>الشركة</th><th>الهاتف</th></tr>")
	fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td></tr></table>\n",
		esc(services.Dash(data.CustomerName)), esc(services.Dash(data.Company)), esc(services.Dash(data.Phone)))

	currency := esc(data.CurrencyCode)
	b.WriteString("<table><tr><th>#</th><th>البيان</th><th>رقم العقد</th><th>القيمة</th></tr>\n")
	for i, line := range data.Lines {
		fmt.Fprintf(&b, "<tr><td>%d</td><td>%s</td><td>%s</td><td>%s %s</td></tr>\n",
			i+1,
			esc(services.Dash(line.Description)),
			esc(services.Dash(line.ContractNumber)),
			amount(line.Amount), currency)
	}
	fmt.Fprintf(&b, "<tr class=\"totals\"><td colspan=\"3\">الإجمالي</td><td>%s %s</td></tr>\n",
		amount(data.Total), currency)
	b.WriteString("</table>\n")

	fmt.Fprintf(&b, "<div class=\"words\">القيمة كتابة: %s</div>\n", esc(data.TotalWords))
	if data.Notes != "" {
		fmt.Fprintf(&b, "<div class=\"footnote\">%s</div>\n", esc(data.Notes))
	}
	b.WriteString("<div class=\"sign-row\"><div>المستلم</div><div>الإدارة المالية</div></div>\n")

	return PrintDocument(title, []string{b.String()})
}

func invoiceTitle(invoiceType string) string {
	switch invoiceType {
	case "receipt":
		return "إيصال قبض"
	case "proforma":
		return "فاتورة مبدئية"
	case "tax":
		return "فاتورة ضريبية"
	default:
		return "فاتورة"
	}
}
