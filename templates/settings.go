package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"billboardadmin/services"
)

// SettingsFormData mirrors the single settings record.
type SettingsFormData struct {
	CompanyName     string
	CompanySub      string
	CompanyPhone    string
	CompanyAddress  string
	DefaultFeeRate  float64
	DefaultCurrency string
	PrintPrice      float64
	Errors          map[string]string
}

// SettingsPage renders the settings editor.
func SettingsPage(data SettingsFormData) templ.Component {
	var b strings.Builder
	b.WriteString("<form class=\"card\" method=\"post\" action=\"/settings\">\n")
	b.WriteString(textField("company_name", "اسم الشركة", data.CompanyName, data.Errors))
	b.WriteString(textField("company_sub", "الوصف الفرعي", data.CompanySub, data.Errors))
	b.WriteString(textField("company_phone", "الهاتف", data.CompanyPhone, data.Errors))
	b.WriteString(textField("company_address", "العنوان", data.CompanyAddress, data.Errors))

	b.WriteString("<label for=\"default_fee_rate\">نسبة التشغيل الافتراضية %</label>\n")
	fmt.Fprintf(&b, "<input type=\"number\" step=\"0.1\" id=\"default_fee_rate\" name=\"default_fee_rate\" value=\"%s\">\n", trimFloat(data.DefaultFeeRate))
	if msg, ok := data.Errors["default_fee_rate"]; ok {
		fmt.Fprintf(&b, "<p class=\"error\">%s</p>\n", esc(msg))
	}

	b.WriteString("<label for=\"default_currency\">العملة الافتراضية</label>\n<select id=\"default_currency\" name=\"default_currency\">\n")
	for _, cur := range services.CurrencyOptions {
		sel := ""
		if cur == data.DefaultCurrency {
			sel = " selected"
		}
		fmt.Fprintf(&b, "<option value=\"%s\"%s>%s</option>\n", esc(cur), sel, esc(cur))
	}
	b.WriteString("</select>\n")

	b.WriteString("<label for=\"print_price\">سعر الطباعة للمتر</label>\n")
	fmt.Fprintf(&b, "<input type=\"number\" step=\"0.01\" id=\"print_price\" name=\"print_price\" value=\"%s\">\n", trimFloat(data.PrintPrice))
	if msg, ok := data.Errors["print_price"]; ok {
		fmt.Fprintf(&b, "<p class=\"error\">%s</p>\n", esc(msg))
	}

	b.WriteString("<p><button class=\"btn\" type=\"submit\">حفظ</button></p>\n</form>\n")
	return Page("الإعدادات", b.String())
}
