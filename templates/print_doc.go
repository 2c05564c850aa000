package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// printCSS is the shared stylesheet of every printable document:
// physical A4 pages, RTL Arabic layout, and table styling matching the
// pre-printed letterhead backgrounds.
const printCSS = `
@page { size: A4; margin: 0; }
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: "Traditional Arabic", "Times New Roman", serif; direction: rtl; color: #111; }
.page { width: 210mm; min-height: 297mm; padding: 20mm 15mm; page-break-after: always; position: relative; background: #fff; }
.page:last-child { page-break-after: auto; }
.doc-header { text-align: center; border-bottom: 3px double #1d3557; padding-bottom: 8px; margin-bottom: 16px; }
.doc-header h1 { font-size: 26px; color: #1d3557; }
.doc-header .sub { font-size: 13px; color: #555; }
.doc-title { text-align: center; font-size: 20px; margin: 14px 0; }
.meta { display: flex; justify-content: space-between; margin-bottom: 12px; font-size: 14px; }
table { width: 100%; border-collapse: collapse; margin-bottom: 14px; font-size: 13px; }
th, td { border: 1px solid #444; padding: 5px 7px; text-align: center; }
th { background: #e8edf3; }
.totals td { font-weight: bold; }
.words { border: 1px solid #444; padding: 8px; margin: 10px 0; font-size: 14px; }
.footnote { font-size: 12px; color: #555; margin-top: 6px; }
.sign-row { display: flex; justify-content: space-between; margin-top: 40px; font-size: 14px; }
.sign-row div { width: 40%; text-align: center; border-top: 1px solid #111; padding-top: 6px; }
@media print { body { -webkit-print-color-adjust: exact; } }
`

// printOnLoad triggers the browser print dialog once the document loads.
const printOnLoad = `<script>window.onload = function () { window.print(); };</script>`

// PrintDocument wraps rendered pages in a complete standalone HTML
// document ready to hand to a new browser window.
func PrintDocument(title string, pages []string) templ.Component {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"ar\" dir=\"rtl\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", esc(title))
	fmt.Fprintf(&b, "<style>%s</style>\n", printCSS)
	b.WriteString("</head>\n<body>\n")
	for _, p := range pages {
		b.WriteString("<div class=\"page\">\n")
		b.WriteString(p)
		b.WriteString("</div>\n")
	}
	b.WriteString(printOnLoad)
	b.WriteString("\n</body>\n</html>\n")
	return raw(b.String())
}

// docHeader renders the letterhead block shared by all print documents.
func docHeader(companyName, companySub string) string {
	var b strings.Builder
	b.WriteString("<div class=\"doc-header\">")
	fmt.Fprintf(&b, "<h1>%s</h1>", esc(companyName))
	if companySub != "" {
		fmt.Fprintf(&b, "<div class=\"sub\">%s</div>", esc(companySub))
	}
	b.WriteString("</div>\n")
	return b.String()
}
