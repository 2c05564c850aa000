package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"billboardadmin/services"
)

// CustomerListItem is one row of the customers list page.
type CustomerListItem struct {
	ID      string
	Name    string
	Company string
	Phone   string
	Balance float64
}

// CustomerListPage renders the customers index with outstanding
// balances.
func CustomerListPage(items []CustomerListItem) templ.Component {
	var b strings.Builder
	b.WriteString("<p><a class=\"btn\" href=\"/customers/create\">عميل جديد</a></p>\n")
	b.WriteString("<table><tr><th>الاسم</th><th>الشركة</th><th>الهاتف</th><th>الرصيد</th><th></th></tr>\n")
	for _, it := range items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td>",
			esc(it.Name), esc(services.Dash(it.Company)), esc(services.Dash(it.Phone)), amount(it.Balance))
		fmt.Fprintf(&b, "<td><a href=\"/customers/%s/edit\">تعديل</a> · <a href=\"/customers/%s/payments\">الحساب</a> · <a href=\"/customers/%s/statement\" target=\"_blank\">كشف حساب</a></td></tr>\n",
			esc(it.ID), esc(it.ID), esc(it.ID))
	}
	if len(items) == 0 {
		b.WriteString("<tr><td colspan=\"5\" class=\"muted\">لا يوجد عملاء</td></tr>\n")
	}
	b.WriteString("</table>\n")
	return Page("العملاء", b.String())
}

// CustomerFormData carries the customer create/edit form values.
type CustomerFormData struct {
	ID       string
	Name     string
	Company  string
	Phone    string
	Category string
	Errors   map[string]string
}

// CustomerFormPage renders the customer create/edit form.
func CustomerFormPage(data CustomerFormData) templ.Component {
	action := "/customers"
	title := "عميل جديد"
	if data.ID != "" {
		action = fmt.Sprintf("/customers/%s/save", data.ID)
		title = "تعديل " + data.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<form class=\"card\" method=\"post\" action=\"%s\">\n", action)
	b.WriteString(textField("name", "الاسم", data.Name, data.Errors))
	b.WriteString(textField("company", "الشركة", data.Company, nil))
	b.WriteString(textField("phone", "الهاتف", data.Phone, nil))
	b.WriteString(selectField("category", "فئة التسعير", data.Category, services.CategoryOptions))
	b.WriteString("<p><button class=\"btn\" type=\"submit\">حفظ</button></p>\n</form>\n")
	return Page(title, b.String())
}
