package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"billboardadmin/services"
)

// BillboardListItem is one row of the billboards list page.
type BillboardListItem struct {
	ID             string
	Name           string
	Size           string
	Faces          int
	Level          string
	Municipality   string
	District       string
	Status         string
	ContractNumber string
}

// BillboardListPage renders the billboards index with its municipality
// and status filters.
func BillboardListPage(items []BillboardListItem, municipality, status string) templ.Component {
	var b strings.Builder
	b.WriteString("<p><a class=\"btn\" href=\"/billboards/create\">لوحة جديدة</a> ")
	b.WriteString("<a class=\"btn\" href=\"/billboards/import\">استيراد من Excel</a> ")
	b.WriteString("<a class=\"btn\" href=\"/billboards/import/template\">تنزيل النموذج</a></p>\n")

	b.WriteString("<form class=\"card\" method=\"get\" action=\"/billboards\">\n")
	b.WriteString(selectField("municipality", "البلدية", municipality, append([]string{""}, services.MunicipalityOptions...)))
	b.WriteString(selectField("status", "الحالة", status, []string{"", "available", "rented"}))
	b.WriteString("<p><button class=\"btn\" type=\"submit\">تصفية</button></p>\n</form>\n")

	b.WriteString("<table><tr><th>اللوحة</th><th>المقاس</th><th>الأوجه</th><th>المستوى</th><th>البلدية</th><th>المنطقة</th><th>الحالة</th><th>العقد</th><th></th></tr>\n")
	for _, it := range items {
		status := "متاحة"
		if it.Status == "rented" {
			status = "مؤجرة"
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td><a href=\"/billboards/%s/edit\">تعديل</a></td></tr>\n",
			esc(it.Name), esc(services.CanonicalSize(it.Size)), it.Faces,
			esc(services.Dash(it.Level)), esc(services.Dash(it.Municipality)),
			esc(services.Dash(it.District)), status,
			esc(services.Dash(it.ContractNumber)), esc(it.ID))
	}
	if len(items) == 0 {
		b.WriteString("<tr><td colspan=\"9\" class=\"muted\">لا توجد لوحات</td></tr>\n")
	}
	b.WriteString("</table>\n")

	b.WriteString("<form method=\"post\" action=\"/billboards/cleanup\" style=\"margin-top:16px\">")
	b.WriteString("<button class=\"btn btn-danger\" type=\"submit\">تحرير اللوحات منتهية العقود</button></form>\n")
	return Page("اللوحات", b.String())
}

// BillboardFormData carries the billboard create/edit form values.
type BillboardFormData struct {
	ID           string
	Name         string
	Size         string
	Faces        int
	Level        string
	Municipality string
	District     string
	Landmark     string
	Latitude     string
	Longitude    string
	Errors       map[string]string
}

// BillboardFormPage renders the billboard create/edit form.
func BillboardFormPage(data BillboardFormData) templ.Component {
	action := "/billboards"
	title := "لوحة جديدة"
	if data.ID != "" {
		action = fmt.Sprintf("/billboards/%s/save", data.ID)
		title = "تعديل اللوحة " + data.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<form class=\"card\" method=\"post\" action=\"%s\">\n", action)
	b.WriteString(textField("name", "اسم اللوحة", data.Name, data.Errors))
	b.WriteString(textField("size", "المقاس", data.Size, data.Errors))
	fmt.Fprintf(&b, "<label for=\"faces\">عدد الأوجه</label>\n<input type=\"number\" id=\"faces\" name=\"faces\" value=\"%d\">\n", data.Faces)
	b.WriteString(selectField("level", "المستوى", data.Level, services.LevelOptions))
	b.WriteString(selectField("municipality", "البلدية", data.Municipality, services.MunicipalityOptions))
	b.WriteString(textField("district", "المنطقة", data.District, nil))
	b.WriteString(textField("landmark", "أقرب نقطة دالة", data.Landmark, nil))
	b.WriteString(textField("latitude", "خط العرض", data.Latitude, data.Errors))
	b.WriteString(textField("longitude", "خط الطول", data.Longitude, data.Errors))
	b.WriteString("<p><button class=\"btn\" type=\"submit\">حفظ</button></p>\n</form>\n")
	return Page(title, b.String())
}

// BillboardImportPage renders the Excel upload form plus, after a
// validation or commit pass, its outcome.
func BillboardImportPage(result *services.ImportResult) templ.Component {
	var b strings.Builder
	b.WriteString("<form class=\"card\" method=\"post\" action=\"/billboards/import\" enctype=\"multipart/form-data\">\n")
	b.WriteString("<label for=\"file\">ملف Excel</label>\n<input type=\"file\" id=\"file\" name=\"file\" accept=\".xlsx\">\n")
	b.WriteString("<p><button class=\"btn\" type=\"submit\">استيراد</button></p>\n</form>\n")

	if result != nil {
		b.WriteString("<div class=\"card\">")
		fmt.Fprintf(&b, "<p>الصفوف: %d — تم الاستيراد: %d — فشل: %d</p>\n",
			result.TotalRows, result.Imported, result.Failed)
		if len(result.Errors) > 0 {
			b.WriteString("<table><tr><th>الصف</th><th>الحقل</th><th>الخطأ</th></tr>\n")
			for _, e := range result.Errors {
				fmt.Fprintf(&b, "<tr><td>%d</td><td>%s</td><td>%s</td></tr>\n",
					e.Row, esc(services.Dash(e.Field)), esc(e.Message))
			}
			b.WriteString("</table>\n")
		}
		b.WriteString("</div>\n")
	}
	return Page("استيراد اللوحات", b.String())
}
