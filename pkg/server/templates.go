// pkg/server/templates.go
package server

import "html/template"

var (
	indexTemplate     = template.Must(template.New("index").Parse(pageStyle + indexPage))
	mappingTemplate   = template.Must(template.New("mapping").Parse(pageStyle + mappingPage))
	dashboardTemplate = template.Must(template.New("dashboard").Parse(pageStyle + dashboardPage))
)

const pageStyle = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>MailTrace</title>
<style>
  :root { --brand:#0c2d4e; --muted:#64748b; --border:#e5e7eb; }
  body { font-family: system-ui, -apple-system, Segoe UI, Roboto, Arial, sans-serif; margin:24px; color:#0f172a; }
  .wrap { max-width:1000px; margin:0 auto; }
  h2 { margin:0 0 8px; }
  .lead { color:var(--muted); margin-bottom:16px; }
  .grid { display:grid; grid-template-columns:repeat(auto-fit,minmax(180px,1fr)); gap:16px; }
  .card { background:#fff; border:1px solid var(--border); border-radius:12px; padding:16px; }
  .k { color:var(--muted); font-size:13px; }
  .v { font-size:26px; font-weight:800; }
  .lists { display:grid; grid-template-columns:1fr 1fr; gap:16px; margin-top:16px; }
  .kvlist { list-style:none; margin:0; padding:0; }
  .kvlist li { display:flex; justify-content:space-between; padding:8px 0; border-bottom:1px solid #f1f5f9; font-weight:600; }
  table { width:100%; border-collapse:collapse; margin-top:16px; border:1px solid var(--border); }
  th, td { text-align:left; padding:10px 12px; border-bottom:1px solid #f3f4f6; font-size:14px; }
  th { background:#f8fafc; }
  .map-row { display:flex; gap:12px; align-items:center; margin:10px 0; }
  .map-row .lbl { width:120px; font-weight:700; }
  .map-row .hint { color:var(--muted); font-size:12px; }
  select, input[type=file] { padding:8px; border-radius:8px; border:1px solid #cbd5e1; }
  .btn { background:var(--brand); color:#fff; border:1px solid var(--brand); font-weight:700; padding:10px 18px; border-radius:8px; cursor:pointer; text-decoration:none; display:inline-block; }
  .err { color:#b91c1c; margin:8px 0; }
</style></head><body><div class="wrap">`

const indexPage = `
<h2>MailTrace</h2>
<div class="lead">Upload your mail history and CRM export to see which mailers turned into customers.</div>
{{if .Error}}<div class="err">{{.Error}}</div>{{end}}
<form method="POST" action="/run" enctype="multipart/form-data">
  <div class="card">
    <div class="map-row"><div class="lbl">Mail CSV</div><input type="file" name="mail_csv" accept=".csv" required></div>
    <div class="map-row"><div class="lbl">CRM CSV</div><input type="file" name="crm_csv" accept=".csv" required></div>
  </div>
  <p><button class="btn" type="submit">Run matching</button></p>
</form>
</div></body></html>`

const mappingPage = `
<h2>Confirm your columns</h2>
<div class="lead">We couldn't confidently identify every column. Pick them below and we'll continue.</div>
{{if .Error}}<div class="err">{{.Error}}</div>{{end}}
<form method="POST" action="/map">
  <input type="hidden" name="token" value="{{.Token}}">
  {{range .Datasets}}
  <div class="card" style="margin-bottom:16px">
    <h3>{{.Title}}</h3>
    {{if .Sample}}
    <table>
      <thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
      <tbody>{{range .Sample}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}</tbody>
    </table>
    {{end}}
    {{$headers := .Headers}}
    {{range .Fields}}
    <div class="map-row">
      <div class="lbl">{{.Name}}</div>
      <select name="{{.Input}}">
        <option value="">-- choose a column --</option>
        {{$selected := .Selected}}
        {{range $headers}}<option value="{{.}}"{{if eq . $selected}} selected{{end}}>{{.}}</option>{{end}}
      </select>
      <div class="hint">{{if .Required}}Required{{else}}Optional{{end}}</div>
    </div>
    {{end}}
  </div>
  {{end}}
  <button class="btn" type="submit">Continue</button>
  <a class="btn" style="background:#fff;color:var(--brand)" href="/">Cancel</a>
</form>
</div></body></html>`

const dashboardPage = `
<h2>Match results</h2>
<div class="grid">
  <div class="card"><div class="k">Mail records</div><div class="v">{{.Summary.TotalMail}}</div></div>
  <div class="card"><div class="k">Matched</div><div class="v">{{.Summary.Matched}}</div></div>
  <div class="card"><div class="k">Match rate</div><div class="v">{{printf "%.1f%%" .MatchRatePct}}</div></div>
  <div class="card"><div class="k">Avg confidence</div><div class="v">{{printf "%.0f" .Summary.AvgConfidence}}</div></div>
  <div class="card"><div class="k">Unit mismatches</div><div class="v">{{.Summary.UnitMismatches}}</div></div>
</div>
<div class="lists">
  <div class="card"><div class="k">Top cities</div><ul class="kvlist">
    {{range .Summary.TopCities}}<li><span>{{.City}}, {{.State}}</span><strong>{{.Count}}</strong></li>{{end}}
  </ul></div>
  <div class="card"><div class="k">Top ZIPs</div><ul class="kvlist">
    {{range .Summary.TopZips}}<li><span>{{.Zip}}</span><strong>{{.Count}}</strong></li>{{end}}
  </ul></div>
</div>
<form method="GET" action="/download" style="margin-top:16px">
  <input type="hidden" name="token" value="{{.Token}}">
  <button class="btn" type="submit">Download CSV</button>
</form>
<h2 style="margin-top:24px">Sample of results</h2>
<table>
  <thead><tr>
    <th>Mail Address</th><th>Mail City/State/Zip</th>
    <th>CRM Address</th><th>CRM City/State/Zip</th>
    <th>Status</th><th>Confidence</th><th>Notes</th>
  </tr></thead>
  <tbody>
  {{range .Rows}}
  <tr>
    <td>{{.MailAddress}}</td><td>{{.MailCSZ}}</td>
    <td>{{.CRMAddress}}</td><td>{{.CRMCSZ}}</td>
    <td>{{.Status}}</td><td>{{.Confidence}}</td><td>{{.Note}}</td>
  </tr>
  {{end}}
  </tbody>
</table>
</div></body></html>`
