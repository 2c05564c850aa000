package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"billboardadmin/services"
)

// ContractListItem is one row of the contracts list page.
type ContractListItem struct {
	ID           string
	Number       string
	CustomerName string
	AdType       string
	StartDate    string
	EndDate      string
	Total        float64
	CurrencyCode string
	BoardCount   int
}

// ContractListPage renders the contracts index.
func ContractListPage(items []ContractListItem) templ.Component {
	var b strings.Builder
	b.WriteString("<p><a class=\"btn\" href=\"/contracts/create\">عقد جديد</a></p>\n")
	b.WriteString("<table><tr><th>رقم العقد</th><th>العميل</th><th>نوع الإعلان</th><th>من</th><th>إلى</th><th>اللوحات</th><th>الإجمالي</th><th></th></tr>\n")
	for _, it := range items {
		fmt.Fprintf(&b, "<tr><td><a href=\"/contracts/%s\">%s</a></td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s %s</td>",
			esc(it.ID), esc(services.Dash(it.Number)),
			esc(services.Dash(it.CustomerName)), esc(services.Dash(it.AdType)),
			esc(it.StartDate), esc(it.EndDate), it.BoardCount,
			amount(it.Total), esc(it.CurrencyCode))
		fmt.Fprintf(&b, "<td><a href=\"/contracts/%s/edit\">تعديل</a> · <a href=\"/contracts/%s/print\" target=\"_blank\">طباعة</a></td></tr>\n",
			esc(it.ID), esc(it.ID))
	}
	if len(items) == 0 {
		b.WriteString("<tr><td colspan=\"8\" class=\"muted\">لا توجد عقود بعد</td></tr>\n")
	}
	b.WriteString("</table>\n")
	return Page("العقود", b.String())
}

// BoardOption is a selectable billboard in the contract form.
type BoardOption struct {
	ID           string
	Name         string
	Size         string
	Municipality string
	Selected     bool
}

// ContractOption is a selectable contract (invoice building, payments).
type ContractOption struct {
	ID       string
	Number   string
	Total    float64
	Selected bool
}

// ContractFormData carries both the form values and the dropdown
// sources; on validation failure the handler re-renders it with Errors.
type ContractFormData struct {
	ID                 string
	Number             string
	CustomerName       string
	Company            string
	Phone              string
	Category           string
	AdType             string
	StartDate          string
	DurationMonths     int
	Discount           float64
	DiscountMode       string
	PrintEnabled       bool
	PrintPricePerMeter float64
	FeeRate            float64
	CurrencyCode       string
	ExchangeRate       float64
	InstallmentCount   int
	InstallmentSpacing string
	Boards             []BoardOption
	Errors             map[string]string
}

// ContractFormPage renders the create/edit contract form.
func ContractFormPage(data ContractFormData) templ.Component {
	action := "/contracts"
	title := "عقد جديد"
	if data.ID != "" {
		action = fmt.Sprintf("/contracts/%s/save", data.ID)
		title = "تعديل العقد " + data.Number
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<form class=\"card\" method=\"post\" action=\"%s\">\n", action)

	b.WriteString(textField("customer_name", "اسم العميل", data.CustomerName, data.Errors))
	b.WriteString(textField("company", "الشركة", data.Company, nil))
	b.WriteString(textField("phone", "الهاتف", data.Phone, nil))
	b.WriteString(selectField("category", "فئة العميل", data.Category, services.CategoryOptions))
	b.WriteString(selectField("ad_type", "نوع الإعلان", data.AdType, services.AdTypeOptions))

	b.WriteString("<label for=\"start_date\">تاريخ البداية</label>\n")
	fmt.Fprintf(&b, "<input type=\"date\" id=\"start_date\" name=\"start_date\" value=\"%s\">\n", esc(data.StartDate))
	if msg, ok := data.Errors["start_date"]; ok {
		fmt.Fprintf(&b, "<div class=\"field-error\">%s</div>\n", esc(msg))
	}

	b.WriteString("<label for=\"duration_months\">المدة (شهر)</label>\n<select id=\"duration_months\" name=\"duration_months\">\n")
	for _, d := range services.DurationOptions {
		selected := ""
		if d == data.DurationMonths {
			selected = " selected"
		}
		fmt.Fprintf(&b, "<option value=\"%d\"%s>%d</option>\n", d, selected, d)
	}
	b.WriteString("</select>\n")

	fmt.Fprintf(&b, "<label for=\"discount\">الخصم</label>\n<input type=\"number\" step=\"0.01\" id=\"discount\" name=\"discount\" value=\"%s\">\n", trimFloat(data.Discount))
	b.WriteString(selectField("discount_mode", "نوع الخصم", data.DiscountMode, []string{string(services.DiscountPercent), string(services.DiscountFixed)}))

	checked := ""
	if data.PrintEnabled {
		checked = " checked"
	}
	fmt.Fprintf(&b, "<label><input type=\"checkbox\" name=\"print_enabled\" value=\"1\" style=\"width:auto\"%s> احتساب تكلفة الطباعة</label>\n", checked)
	fmt.Fprintf(&b, "<label for=\"print_price\">سعر المتر للطباعة</label>\n<input type=\"number\" step=\"0.01\" id=\"print_price\" name=\"print_price\" value=\"%s\">\n", trimFloat(data.PrintPricePerMeter))

	fmt.Fprintf(&b, "<label for=\"fee_rate\">نسبة رسوم التشغيل %%</label>\n<input type=\"number\" step=\"0.01\" id=\"fee_rate\" name=\"fee_rate\" value=\"%s\">\n", trimFloat(data.FeeRate))

	b.WriteString(selectField("currency_code", "العملة", data.CurrencyCode, services.CurrencyOptions))
	fmt.Fprintf(&b, "<label for=\"exchange_rate\">سعر الصرف</label>\n<input type=\"number\" step=\"0.0001\" id=\"exchange_rate\" name=\"exchange_rate\" value=\"%s\">\n", trimFloat(data.ExchangeRate))

	fmt.Fprintf(&b, "<label for=\"installment_count\">عدد الدفعات</label>\n<input type=\"number\" id=\"installment_count\" name=\"installment_count\" value=\"%d\">\n", data.InstallmentCount)
	b.WriteString(selectField("installment_spacing", "تباعد الدفعات", data.InstallmentSpacing, []string{string(services.SpacingMonthly), string(services.SpacingWeekly)}))

	b.WriteString("<label>اللوحات</label>\n<table><tr><th></th><th>اللوحة</th><th>المقاس</th><th>البلدية</th></tr>\n")
	for _, board := range data.Boards {
		sel := ""
		if board.Selected {
			sel = " checked"
		}
		fmt.Fprintf(&b, "<tr><td><input type=\"checkbox\" name=\"billboards\" value=\"%s\" style=\"width:auto\"%s></td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			esc(board.ID), sel, esc(board.Name), esc(services.CanonicalSize(board.Size)), esc(board.Municipality))
	}
	b.WriteString("</table>\n")
	if msg, ok := data.Errors["billboards"]; ok {
		fmt.Fprintf(&b, "<div class=\"field-error\">%s</div>\n", esc(msg))
	}

	b.WriteString("<p><button class=\"btn\" type=\"submit\">حفظ</button></p>\n</form>\n")
	return Page(title, b.String())
}

// ContractViewPage renders the read-only contract summary with the
// per-cost breakdown and print/export links.
func ContractViewPage(data services.ContractData, installItems []services.InstallationItem, printItems []services.PrintCostItem) templ.Component {
	var b strings.Builder
	fmt.Fprintf(&b, "<p><a class=\"btn\" href=\"/contracts/%s/print\" target=\"_blank\">طباعة العقد</a> ", esc(data.ID))
	fmt.Fprintf(&b, "<a class=\"btn\" href=\"/contracts/%s/export/pdf\">تنزيل PDF</a> ", esc(data.ID))
	fmt.Fprintf(&b, "<a class=\"btn\" href=\"/contracts/%s/edit\">تعديل</a></p>\n", esc(data.ID))

	b.WriteString("<div class=\"card\"><table>\n")
	fmt.Fprintf(&b, "<tr><td>العميل</td><td>%s</td></tr>\n", esc(services.Dash(data.CustomerName)))
	fmt.Fprintf(&b, "<tr><td>المدة</td><td>%s — %s (%d شهر)</td></tr>\n", esc(data.StartDate), esc(data.EndDate), data.DurationMonths)
	fmt.Fprintf(&b, "<tr><td>الإجمالي قبل الخصم</td><td>%s %s</td></tr>\n", amount(data.Totals.Subtotal), esc(data.CurrencyCode))
	fmt.Fprintf(&b, "<tr><td>الخصم</td><td>%s</td></tr>\n", amount(data.Totals.DiscountAmount))
	fmt.Fprintf(&b, "<tr><td>الإجمالي النهائي</td><td>%s %s</td></tr>\n", amount(data.Totals.FinalTotal), esc(data.CurrencyCode))
	fmt.Fprintf(&b, "<tr><td>صافي الإيجار</td><td>%s</td></tr>\n", amount(data.Totals.RentalOnly))
	fmt.Fprintf(&b, "<tr><td>رسوم التشغيل</td><td>%s</td></tr>\n", amount(data.Totals.OperatingFee))
	fmt.Fprintf(&b, "<tr><td>المدفوع</td><td>%s</td></tr>\n", amount(data.PaidTotal))
	fmt.Fprintf(&b, "<tr><td>المتبقي</td><td>%s</td></tr>\n", amount(data.Remaining))
	b.WriteString("</table></div>\n")

	if len(installItems) > 0 {
		b.WriteString("<div class=\"card\"><h3>تكلفة التركيب</h3><table><tr><th>اللوحة</th><th>المقاس</th><th>الأوجه</th><th>التكلفة</th></tr>\n")
		for _, it := range installItems {
			cost := amount(it.Cost)
			if !it.Resolved {
				cost = "<span class=\"flag\">غير محدد</span>"
			}
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%d</td><td>%s</td></tr>\n",
				esc(it.Name), esc(services.CanonicalSize(it.Size)), it.Faces, cost)
		}
		b.WriteString("</table></div>\n")
	}

	if len(printItems) > 0 {
		b.WriteString("<div class=\"card\"><h3>تكلفة الطباعة</h3><table><tr><th>اللوحة</th><th>المساحة</th><th>التكلفة</th></tr>\n")
		for _, it := range printItems {
			cost := amount(it.Cost)
			if it.Unparsable {
				cost = "<span class=\"flag\">مقاس غير مقروء</span>"
			}
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				esc(it.Name), trimFloat(it.Area), cost)
		}
		b.WriteString("</table></div>\n")
	}

	if len(data.Installments) > 0 {
		b.WriteString("<div class=\"card\"><h3>جدول الدفعات</h3>")
		b.WriteString(installmentTable(data.Installments, data.CurrencyCode))
		b.WriteString("</div>\n")
	}

	return Page("العقد "+data.Number, b.String())
}

func textField(name, label, value string, errors map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<label for=\"%s\">%s</label>\n", name, esc(label))
	fmt.Fprintf(&b, "<input type=\"text\" id=\"%s\" name=\"%s\" value=\"%s\">\n", name, name, esc(value))
	if msg, ok := errors[name]; ok {
		fmt.Fprintf(&b, "<div class=\"field-error\">%s</div>\n", esc(msg))
	}
	return b.String()
}

func selectField(name, label, value string, options []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<label for=\"%s\">%s</label>\n<select id=\"%s\" name=\"%s\">\n", name, esc(label), name, name)
	for _, opt := range options {
		selected := ""
		if opt == value {
			selected = " selected"
		}
		fmt.Fprintf(&b, "<option value=\"%s\"%s>%s</option>\n", esc(opt), selected, esc(opt))
	}
	b.WriteString("</select>\n")
	return b.String()
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
