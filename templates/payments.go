package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"billboardadmin/services"
)

// PaymentListItem is one row of a customer's ledger page.
type PaymentListItem struct {
	ID             string
	Type           string
	TypeLabel      string
	Amount         float64
	Date           string
	Method         string
	Reference      string
	Notes          string
	ContractNumber string
}

// PaymentsPage renders a customer's ledger with the add-entry form.
func PaymentsPage(customer services.Customer, items []PaymentListItem, contracts []ContractOption, balance float64) templ.Component {
	var b strings.Builder
	fmt.Fprintf(&b, "<p class=\"muted\">الرصيد الحالي: %s</p>\n", amount(balance))
	fmt.Fprintf(&b, "<p><a class=\"btn\" href=\"/customers/%s/statement\" target=\"_blank\">طباعة كشف حساب</a> ", esc(customer.ID))
	fmt.Fprintf(&b, "<a class=\"btn\" href=\"/customers/%s/statement/export/excel\">تصدير Excel</a></p>\n", esc(customer.ID))

	fmt.Fprintf(&b, "<form class=\"card\" method=\"post\" action=\"/customers/%s/payments\">\n", esc(customer.ID))
	b.WriteString("<label for=\"entry_type\">نوع الحركة</label>\n<select id=\"entry_type\" name=\"entry_type\">\n")
	for _, opt := range []struct{ value, label string }{
		{string(services.EntryReceipt), "إيصال قبض"},
		{string(services.EntryInvoice), "فاتورة"},
		{string(services.EntryDebt), "دين سابق"},
		{string(services.EntryAccountPayment), "دفعة على الحساب"},
	} {
		fmt.Fprintf(&b, "<option value=\"%s\">%s</option>\n", opt.value, opt.label)
	}
	b.WriteString("</select>\n")
	b.WriteString("<label for=\"amount\">القيمة</label>\n<input type=\"number\" step=\"0.01\" id=\"amount\" name=\"amount\">\n")
	b.WriteString("<label for=\"date\">التاريخ</label>\n<input type=\"date\" id=\"date\" name=\"date\">\n")
	b.WriteString("<label for=\"contract\">العقد (اختياري)</label>\n<select id=\"contract\" name=\"contract\">\n<option value=\"\"></option>\n")
	for _, c := range contracts {
		fmt.Fprintf(&b, "<option value=\"%s\">%s</option>\n", esc(c.ID), esc(c.Number))
	}
	b.WriteString("</select>\n")
	b.WriteString(textField("method", "طريقة الدفع", "", nil))
	b.WriteString(textField("reference", "المرجع", "", nil))
	b.WriteString(textField("notes", "ملاحظات", "", nil))
	b.WriteString("<p><button class=\"btn\" type=\"submit\">إضافة</button></p>\n</form>\n")

	b.WriteString("<table><tr><th>التاريخ</th><th>النوع</th><th>القيمة</th><th>العقد</th><th>المرجع</th><th>ملاحظات</th><th></th></tr>\n")
	for _, it := range items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>",
			esc(services.FormatDateArabic(it.Date)), esc(it.TypeLabel), amount(it.Amount),
			esc(services.Dash(it.ContractNumber)), esc(services.Dash(it.Reference)), esc(services.Dash(it.Notes)))
		fmt.Fprintf(&b, "<td><form method=\"post\" action=\"/customers/%s/payments/%s/delete\" style=\"display:inline\"><button class=\"btn btn-danger\" type=\"submit\">حذف</button></form></td></tr>\n",
			esc(customer.ID), esc(it.ID))
	}
	if len(items) == 0 {
		b.WriteString("<tr><td colspan=\"7\" class=\"muted\">لا توجد حركات</td></tr>\n")
	}
	b.WriteString("</table>\n")

	return Page("حساب "+customer.Name, b.String())
}
