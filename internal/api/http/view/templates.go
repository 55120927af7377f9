package view

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data every template receives.
type Page struct {
	Title    string
	Username string
	Flashes  []Flash
	Data     any
}

// SalesPage backs sales_table.html.
type SalesPage struct {
	Rows        []SaleRow
	QuickFilter string
	Date        string
}

// AnalyticsPage backs analytics.html.
type AnalyticsPage struct {
	Analytics   AnalyticsView
	QuickFilter string
	StartDate   string
	EndDate     string
}

// LoadTemplates parses the embedded page templates. Pages are addressed by file name.
func LoadTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"money":  Money,
		"toJSON": toJSON,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

func toJSON(v any) (template.JS, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(raw), nil
}
