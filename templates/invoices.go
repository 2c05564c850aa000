package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"billboardadmin/services"
)

// SavedInvoiceItem is one printed_invoices snapshot in the list page.
type SavedInvoiceItem struct {
	ID           string
	Number       string
	TypeLabel    string
	CustomerName string
	Total        float64
	Date         string
}

// InvoiceListPage lists saved invoice snapshots with re-print links.
func InvoiceListPage(items []SavedInvoiceItem) templ.Component {
	var b strings.Builder
	b.WriteString("<p><a class=\"btn\" href=\"/invoices/new\">فاتورة جديدة</a></p>\n")
	b.WriteString("<table><tr><th>الرقم</th><th>النوع</th><th>العميل</th><th>القيمة</th><th>التاريخ</th><th></th></tr>\n")
	for _, it := range items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>",
			esc(it.Number), esc(it.TypeLabel), esc(it.CustomerName), amount(it.Total),
			esc(services.FormatDateArabic(it.Date)))
		fmt.Fprintf(&b, "<td><a class=\"btn\" href=\"/invoices/%s/print\" target=\"_blank\">إعادة طباعة</a> ", esc(it.ID))
		fmt.Fprintf(&b, "<form method=\"post\" action=\"/invoices/%s/delete\" style=\"display:inline\"><button class=\"btn btn-danger\" type=\"submit\">حذف</button></form></td></tr>\n", esc(it.ID))
	}
	if len(items) == 0 {
		b.WriteString("<tr><td colspan=\"6\" class=\"muted\">لا توجد فواتير محفوظة</td></tr>\n")
	}
	b.WriteString("</table>\n")
	return Page("الفواتير", b.String())
}

// InvoiceBuildData feeds the invoice builder form.
type InvoiceBuildData struct {
	CustomerName string
	InvoiceType  string
	Notes        string
	Customers    []CustomerListItem
	Contracts    []ContractOption
	Errors       map[string]string
}

var invoiceTypeOptions = []struct{ value, label string }{
	{"receipt", "إيصال قبض"},
	{"proforma", "فاتورة مبدئية"},
	{"tax", "فاتورة ضريبية"},
	{"invoice", "فاتورة"},
}

// InvoiceBuildPage renders the invoice builder: pick a customer, pick
// contracts, the handler assembles the lines and prints.
func InvoiceBuildPage(data InvoiceBuildData) templ.Component {
	var b strings.Builder
	b.WriteString("<form class=\"card\" method=\"post\" action=\"/invoices/build\">\n")

	b.WriteString("<label for=\"customer_name\">العميل</label>\n")
	fmt.Fprintf(&b, "<input list=\"customer-names\" id=\"customer_name\" name=\"customer_name\" value=\"%s\">\n", esc(data.CustomerName))
	b.WriteString("<datalist id=\"customer-names\">\n")
	for _, c := range data.Customers {
		fmt.Fprintf(&b, "<option value=\"%s\">\n", esc(c.Name))
	}
	b.WriteString("</datalist>\n")
	if msg, ok := data.Errors["customer_name"]; ok {
		fmt.Fprintf(&b, "<p class=\"error\">%s</p>\n", esc(msg))
	}

	b.WriteString("<label for=\"invoice_type\">نوع الفاتورة</label>\n<select id=\"invoice_type\" name=\"invoice_type\">\n")
	for _, opt := range invoiceTypeOptions {
		sel := ""
		if opt.value == data.InvoiceType {
			sel = " selected"
		}
		fmt.Fprintf(&b, "<option value=\"%s\"%s>%s</option>\n", opt.value, sel, opt.label)
	}
	b.WriteString("</select>\n")

	b.WriteString("<fieldset><legend>العقود</legend>\n")
	for _, c := range data.Contracts {
		checked := ""
		if c.Selected {
			checked = " checked"
		}
		fmt.Fprintf(&b, "<label class=\"check\"><input type=\"checkbox\" name=\"contracts\" value=\"%s\"%s> %s (%s)</label>\n",
			esc(c.ID), checked, esc(c.Number), amount(c.Total))
	}
	if len(data.Contracts) == 0 {
		b.WriteString("<p class=\"muted\">لا توجد عقود لهذا العميل</p>\n")
	}
	b.WriteString("</fieldset>\n")
	if msg, ok := data.Errors["contracts"]; ok {
		fmt.Fprintf(&b, "<p class=\"error\">%s</p>\n", esc(msg))
	}

	b.WriteString(textField("notes", "ملاحظات", data.Notes, data.Errors))
	b.WriteString("<p><button class=\"btn\" type=\"submit\">إنشاء وطباعة</button></p>\n</form>\n")
	return Page("فاتورة جديدة", b.String())
}
