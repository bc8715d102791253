package dashboard

import (
	"embed"
	"html/template"
	"net/url"
	"strconv"

	"pallet-returns-dashboard/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is what the dashboard template is executed with.
type PageData struct {
	View
	Error string
}

// RecordKey is the identifier a card uses in its action URLs. Records without
// a primary key fall back to their order id.
func RecordKey(r models.ReturnRequest) string {
	if !r.ID.IsZero() {
		return r.ID.String()
	}
	return r.OrderID
}

// PageURL links to page n of the dashboard, keeping the search term.
func PageURL(search string, n int) string {
	q := url.Values{}
	if search != "" {
		q.Set("q", search)
	}
	if n > 1 {
		q.Set("page", strconv.Itoa(n))
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

var funcs = template.FuncMap{
	"key":        RecordKey,
	"pageURL":    PageURL,
	"pathEscape": url.PathEscape,
	"add1":       func(n int) int { return n + 1 },
	"sub1":       func(n int) int { return n - 1 },
	"pages": func(total int) []int {
		out := make([]int, total)
		for i := range out {
			out[i] = i + 1
		}
		return out
	},
}

// Templates parses the embedded dashboard templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
