package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"billboardadmin/services"
)

// statementRowsPerPage keeps long ledgers within the printed page frame.
const statementRowsPerPage = 22

// StatementDocument renders the printable customer account statement
// with a running balance, paginated for A4.
func StatementDocument(data services.StatementData, companyName, companySub string) templ.Component {
	chunks := paginateLines(data.Lines, statementRowsPerPage)
	if len(chunks) == 0 {
		chunks = [][]services.StatementLine{nil}
	}

	var pages []string
	for pageNo, chunk := range chunks {
		var b strings.Builder
		b.WriteString(docHeader(companyName, companySub))
		b.WriteString("<div class=\"doc-title\">كشف حساب</div>\n")
		fmt.Fprintf(&b, "<div class=\"meta\"><span>العميل: %s</span><span>التاريخ: %s</span></div>\n",
			esc(services.Dash(data.CustomerName)), esc(services.Dash(data.GeneratedAt)))
		if data.Company != "" {
			fmt.Fprintf(&b, "<div class=\"meta\"><span>الشركة: %s</span><span>الهاتف: %s</span></div>\n",
				esc(data.Company), esc(services.Dash(data.Phone)))
		}

		b.WriteString("<table><tr><th>التاريخ</th><th>البيان</th><th>المرجع</th><th>مدين</th><th>دائن</th><th>الرصيد</th></tr>\n")
		for _, line := range chunk {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				esc(services.FormatDateArabic(line.Date)),
				esc(services.Dash(line.Description)),
				esc(services.Dash(line.Reference)),
				zeroDash(line.Debit),
				zeroDash(line.Credit),
				amount(line.Balance))
		}

		// Totals close the last page only.
		if pageNo == len(chunks)-1 {
			fmt.Fprintf(&b, "<tr class=\"totals\"><td colspan=\"3\">الإجمالي</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				amount(data.Summary.TotalDebit),
				amount(data.Summary.TotalCredit),
				amount(data.Summary.Balance))
		}
		b.WriteString("</table>\n")

		if pageNo == len(chunks)-1 {
			if data.Summary.Balance > 0 {
				fmt.Fprintf(&b, "<div class=\"footnote\">الرصيد المستحق على العميل: %s</div>\n", amount(data.Summary.Balance))
			} else if data.Summary.Balance < 0 {
				fmt.Fprintf(&b, "<div class=\"footnote\">الرصيد الدائن للعميل: %s</div>\n", amount(-data.Summary.Balance))
			}
		}
		pages = append(pages, b.String())
	}

	return PrintDocument("كشف حساب — "+data.CustomerName, pages)
}

func paginateLines(lines []services.StatementLine, perPage int) [][]services.StatementLine {
	var chunks [][]services.StatementLine
	for start := 0; start < len(lines); start += perPage {
		end := start + perPage
		if end > len(lines) {
			end = len(lines)
		}
		chunks = append(chunks, lines[start:end])
	}
	return chunks
}

// zeroDash renders zero amounts as the em-dash placeholder so debit and
// credit columns stay readable.
func zeroDash(v float64) string {
	if v == 0 {
		return "—"
	}
	return amount(v)
}
