// file: internals/features/reports/service/html.go
package service

import (
	"bytes"
	"fmt"
	"html/template"
)

// One template renders every scope; sections carry their own shape, the
// layout never branches per scope.
var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"barWidth": func(v float64) int {
		// ratings are 1..5; normalize to a 0..100% bar
		if v < 0 {
			v = 0
		}
		if v > 5 {
			v = 5
		}
		return int(v / 5 * 100)
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 18mm 15mm; }
  body { font-family: 'Helvetica Neue', Arial, sans-serif; color: #1f2430; font-size: 11px; }
  h1 { font-size: 24px; margin: 0 0 4px; }
  h2 { font-size: 15px; border-bottom: 2px solid #3b5bdb; padding-bottom: 4px; margin-top: 24px; page-break-after: avoid; }
  .subtitle { color: #5c6470; font-size: 13px; margin-bottom: 2px; }
  .generated { color: #8a909c; font-size: 10px; }
  table { width: 100%; border-collapse: collapse; margin-top: 8px; }
  th { text-align: left; background: #eef1f8; padding: 5px 7px; font-size: 10px; text-transform: uppercase; letter-spacing: 0.04em; }
  td { padding: 5px 7px; border-bottom: 1px solid #e2e5ee; }
  tr { page-break-inside: avoid; }
  .stats td:first-child { color: #5c6470; width: 40%; }
  .truncated { color: #8a909c; font-size: 10px; font-style: italic; margin-top: 4px; }
  .note { color: #5c6470; font-size: 10px; margin-top: 6px; }
  .chart { margin-top: 10px; }
  .chart-title { font-size: 11px; font-weight: bold; margin-bottom: 4px; }
  .bar-row { display: flex; align-items: center; margin-bottom: 3px; }
  .bar-label { width: 110px; font-size: 10px; color: #5c6470; }
  .bar-track { flex: 1; background: #eef1f8; height: 10px; }
  .bar-fill { background: #3b5bdb; height: 10px; }
  .bar-value { width: 40px; text-align: right; font-size: 10px; }
  .section { page-break-inside: avoid; }
</style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <div class="subtitle">{{.Subtitle}}</div>
  <div class="generated">Generated {{.GeneratedAt.Format "2006-01-02 15:04 MST"}}</div>

  {{range .Sections}}
  <div class="section">
    <h2>{{.Heading}}</h2>
    {{if .Stats}}
    <table class="stats">
      {{range .Stats}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
      {{end}}
    </table>
    {{end}}
    {{if .Table}}
    <table>
      <tr>{{range .Table.Headers}}<th>{{.}}</th>{{end}}</tr>
      {{range .Table.Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
      {{end}}
    </table>
    {{if lt .Table.Shown .Table.Total}}<div class="truncated">Showing {{.Table.Shown}} of {{.Table.Total}} records.</div>{{end}}
    {{end}}
    {{if .Chart}}
    <div class="chart">
      <div class="chart-title">{{.Chart.Title}}</div>
      {{$labels := .Chart.Labels}}
      {{range $i, $v := .Chart.Values}}
      <div class="bar-row">
        <div class="bar-label">{{index $labels $i}}</div>
        <div class="bar-track"><div class="bar-fill" style="width: {{barWidth $v}}%"></div></div>
        <div class="bar-value">{{printf "%.2f" $v}}</div>
      </div>
      {{end}}
    </div>
    {{end}}
    {{if .Note}}<div class="note">{{.Note}}</div>{{end}}
  </div>
  {{end}}
</body>
</html>`))

// RenderHTML produces the page the browser backend prints. Output is
// deterministic for a given document apart from GeneratedAt.
func RenderHTML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("%w: template: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
