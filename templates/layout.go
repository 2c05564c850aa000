// Package templates renders the admin pages and the printable documents.
// Every renderer returns a templ.Component so handlers stream straight to
// the response writer.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"billboardadmin/services"
)

// esc escapes user-supplied text for safe HTML interpolation.
func esc(s string) string {
	return html.EscapeString(s)
}

// amount renders a monetary figure with thousands separators.
func amount(v float64) string {
	return services.FormatAmount(v)
}

// raw wraps an already-built HTML string as a component.
func raw(html string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

const adminCSS = `
* { box-sizing: border-box; }
body { font-family: "Segoe UI", Tahoma, sans-serif; margin: 0; background: #f4f5f7; color: #212529; }
header { background: #1d3557; color: #fff; padding: 12px 24px; display: flex; align-items: center; gap: 24px; }
header a { color: #dbe4ee; text-decoration: none; margin-left: 16px; }
header a:hover { color: #fff; }
main { max-width: 1100px; margin: 24px auto; padding: 0 16px; }
table { width: 100%; border-collapse: collapse; background: #fff; }
th, td { border: 1px solid #dee2e6; padding: 8px 10px; text-align: right; }
th { background: #edf1f5; }
.card { background: #fff; border: 1px solid #dee2e6; border-radius: 6px; padding: 20px; margin-bottom: 20px; }
.btn { display: inline-block; background: #1d3557; color: #fff; border: 0; border-radius: 4px; padding: 8px 16px; cursor: pointer; text-decoration: none; }
.btn-danger { background: #b02a37; }
label { display: block; margin: 10px 0 4px; font-weight: 600; }
input, select, textarea { width: 100%; padding: 7px; border: 1px solid #ced4da; border-radius: 4px; }
.field-error { color: #b02a37; font-size: 13px; }
.muted { color: #6c757d; }
.flag { color: #b8860b; }
`

// Page wraps page content in the admin shell: RTL document, navigation
// bar and shared styles.
func Page(title, content string) templ.Component {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"ar\" dir=\"rtl\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", esc(title))
	fmt.Fprintf(&b, "<style>%s</style>\n", adminCSS)
	b.WriteString("</head>\n<body>\n")
	b.WriteString(navBar())
	b.WriteString("<main>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", esc(title))
	b.WriteString(content)
	b.WriteString("</main>\n</body>\n</html>\n")
	return raw(b.String())
}

func navBar() string {
	links := []struct {
		href  string
		label string
	}{
		{"/contracts", "العقود"},
		{"/billboards", "اللوحات"},
		{"/customers", "العملاء"},
		{"/invoices", "الفواتير"},
		{"/settings", "الإعدادات"},
	}
	var b strings.Builder
	b.WriteString("<header><strong>إدارة اللوحات الإعلانية</strong><nav>")
	for _, l := range links {
		fmt.Fprintf(&b, "<a href=\"%s\">%s</a>", l.href, l.label)
	}
	b.WriteString("</nav></header>\n")
	return b.String()
}
