package web

import (
	"html/template"
	"strings"

	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
	"github.com/reparto-pfr/reparto-go/pkg/reparto/present"
)

// ── Template helpers ──────────────────────────────────────────────────────────

var funcMap = template.FuncMap{
	"classColor": func(c models.CellClass) string {
		return present.ClassColor(c)
	},
	"contains": func(list []string, s string) bool {
		for _, v := range list {
			if v == s {
				return true
			}
		}
		return false
	},
	"join": strings.Join,
}

func parseTemplates() *template.Template {
	t := template.New("base").Funcs(funcMap)
	template.Must(t.Parse(tmplBase))
	template.Must(t.New("dashboard").Parse(tmplDashboard))
	template.Must(t.New("error").Parse(tmplError))
	return t
}

const tmplBase = `{{define "head"}}<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<style>
body { font-family: system-ui, sans-serif; margin: 0 2rem 2rem; color: #1f2328; }
h1 { font-size: 1.6rem; }
table { border-collapse: collapse; margin: .5rem 0 1.5rem; font-size: .9rem; }
th, td { border: 1px solid #d0d7de; padding: 4px 8px; text-align: left; }
th { background: #f6f8fa; }
.metrics { display: flex; gap: 2rem; }
.metric b { display: block; font-size: 1.3rem; }
.msg { color: #57606a; font-style: italic; }
.long-wait { background-color: red; color: #fff; }
#map { width: 100%; height: 600px; }
form fieldset { border: 0; padding: 0; margin: .5rem 0; }
</style>
</head>
<body>
{{end}}
{{define "foot"}}
</body>
</html>
{{end}}`

const tmplError = `{{template "head" .}}
<h1>{{.Title}}</h1>
<p class="msg">{{.Message}}</p>
{{template "foot" .}}`

const tmplDashboard = `{{template "head" .}}
<h1>{{.Title}}</h1>
{{$d := .Dashboard}}
<form method="get" action="/">
  <fieldset>
    <label>Selecciona una unidad
      <select name="unit" onchange="this.form.submit()">
        {{range $d.UnitOptions}}<option value="{{.}}"{{if eq . $d.Unit}} selected{{end}}>{{.}}</option>{{end}}
      </select>
    </label>
  </fieldset>
  <fieldset>
    Selecciona el tipo de informe de seguridad:
    {{range .ReportModes}}<label><input type="radio" name="report" value="{{.Value}}"{{if eq .Value $d.ReportMode}} checked{{end}} onchange="this.form.submit()"> {{.Label}}</label>{{end}}
  </fieldset>
  {{if $d.Report.AvailableColumns}}
  <fieldset>
    Selecciona las columnas adicionales para mostrar:
    {{range $d.Report.AvailableColumns}}<label><input type="checkbox" name="col" value="{{.}}"{{if contains $d.ExtraColumns .}} checked{{end}} onchange="this.form.submit()"> {{.}}</label>{{end}}
  </fieldset>
  {{end}}
  {{if $d.Incidents}}
  <fieldset>
    Selecciona el tipo de evento:
    {{range .EventModes}}<label><input type="radio" name="events" value="{{.Value}}"{{if eq .Value $d.EventMode}} checked{{end}} onchange="this.form.submit()"> {{.Label}}</label>{{end}}
  </fieldset>
  {{end}}
</form>

{{if not $d.Incidents}}<h2>Información Seguridad de Unidades</h2>{{else}}<h2>Informe de la Unidad</h2>{{end}}
<table>
  <tr>{{range $d.Report.Columns}}<th>{{.}}</th>{{end}}</tr>
  {{range $d.Report.Rows}}<tr>{{range .}}<td{{with classColor .Class}} style="background-color: {{.}}"{{end}}>{{.Display}}</td>{{end}}</tr>{{end}}
</table>

{{with $d.Report.Scatter}}
<h2>Gráfico de Correlación - Distancia y Combustible</h2>
{{if .Points}}<img src="/chart/scatter.svg?report={{$d.ReportMode}}" alt="{{.Title}}" width="{{$.ChartWidth}}" height="{{$.ChartHeight}}">{{else}}<p class="msg">Sin datos para graficar.</p>{{end}}
{{end}}

{{with $d.Report.Summary}}
<details>
  <summary>Mostrar estadísticas generales</summary>
  <div class="metrics">
    <div class="metric">Total Litros Consumidos <b>{{.TotalFuelLabel}}</b></div>
    <div class="metric">Total Kilómetros Recorridos <b>{{.TotalDistanceLabel}}</b></div>
    <div class="metric">Promedio Litros por Unidad <b>{{.AvgFuelLabel}}</b></div>
    <div class="metric">Promedio Kilómetros por Unidad <b>{{.AvgDistanceLabel}}</b></div>
  </div>
</details>
{{end}}

{{with $d.Incidents}}
<h2>Eventos de seguridad</h2>
{{if .Message}}<p class="msg">{{.Message}}</p>{{else}}
<h3>{{.Mode}} de la Unidad {{.Unit}}</h3>
<table>
  <tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
  {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
</table>
{{range .Entries}}
<h3>Incidente: {{.EventType}} ----- Hora: {{.Time}}</h3>
{{if .Interior.Available}}<p><b>Video Interior</b></p>
<video width="640" height="360" controls><source src="{{.Interior.URL}}" type="video/mp4"></video>
{{else}}<p><b>No hay video interior disponible.</b></p>{{end}}
{{if .Exterior.Available}}<p><b>Video Exterior</b></p>
<video width="640" height="360" controls><source src="{{.Exterior.URL}}" type="video/mp4"></video>
{{else}}<p><b>No hay video exterior disponible.</b></p>{{end}}
{{end}}
{{end}}
{{end}}

{{with $d.Stops}}
<h2>Paradas de la Unidad {{.Unit}}</h2>
{{if .Found}}
<table>
  <tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
  {{range .Rows}}{{$row := .}}<tr>{{range $i, $col := $d.Stops.Columns}}<td{{if and $row.Highlight (eq $col "tiempo_espera")}} class="long-wait"{{end}}>{{index $row.Values $i}}</td>{{end}}</tr>{{end}}
</table>
{{else}}<p class="msg">{{.Message}}</p>{{end}}
{{end}}

{{with $d.Map}}
<h2>Mapa de Paradas</h2>
{{if .Found}}
<div id="map"></div>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script>
const view = {{.}};
const map = L.map("map").setView([view.center.lat, view.center.lng], view.zoom);
L.tileLayer("https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", {
  attribution: "&copy; OpenStreetMap contributors"
}).addTo(map);
for (const m of view.markers) {
  L.circleMarker([m.position.lat, m.position.lng], {radius: 9, color: m.color, fillColor: m.color, fillOpacity: 0.8})
    .bindPopup(m.popup)
    .addTo(map);
}
</script>
{{else}}<p class="msg">{{.Message}}</p>{{end}}
{{end}}
{{template "foot" .}}`
