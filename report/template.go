package report

const reportTemplateHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>XenMobile configuration - {{.ServerHost}}</title>
<style>
body { font-family: "Helvetica Neue", Helvetica, Arial, sans-serif; margin: 2em; color: #333; }
h1 { border-bottom: 2px solid #6e9e3f; padding-bottom: 0.2em; }
h2 { margin-top: 2em; color: #44586c; }
h3 { margin-bottom: 0.2em; }
h4 { margin-bottom: 0.2em; color: #44586c; }
table { border-collapse: collapse; width: 100%; margin: 0.5em 0 1.5em 0; }
th { background: #44586c; color: #fff; text-align: left; padding: 6px 10px; }
td { border: 1px solid #d0d0d0; padding: 6px 10px; vertical-align: top; }
tr:nth-child(even) td { background: #f4f6f8; }
.meta { color: #777; }
.app { margin-bottom: 2.5em; }
.icon { width: 48px; height: 48px; float: right; }
.notconfigured { color: #999; font-style: italic; }
.disabled { color: #b00; }
</style>
</head>
<body>
<h1>XenMobile configuration backup</h1>
<p class="meta">Server: {{.ServerHost}}<br>
Generated: {{date "2006-01-02 15:04:05 MST" .GeneratedAt}}<br>
Backup ID: {{.BackupID}}</p>

<h2>Server properties</h2>
<table>
<tr><th>Display name</th><th>Name</th><th>Value</th><th>Default</th></tr>
{{range .ServerProperties}}<tr><td>{{.DisplayName}}</td><td>{{.Name}}</td><td>{{.Value}}</td><td>{{.DefaultValue}}</td></tr>
{{end}}</table>

<h2>Client properties</h2>
<table>
<tr><th>Display name</th><th>Key</th><th>Value</th></tr>
{{range .ClientProperties}}<tr><td>{{.DisplayName}}</td><td>{{.Key}}</td><td>{{.Value}}</td></tr>
{{end}}</table>

<h2>Applications</h2>
{{range .Applications}}<div class="app">
<h3>{{.Name}}{{if .Disabled}} <span class="disabled">(disabled)</span>{{end}}</h3>
<p>Type: {{.AppType}}{{with .Description}}<br>{{.}}{{end}}{{with .Categories}}<br>Categories: {{join ", " .}}{{end}}{{with .Workflow}}<br>Workflow: {{.}}{{end}}</p>
{{with .Detail}}{{with .IconData}}<img class="icon" src="{{dataImage .}}" alt="app icon">
{{end}}{{with .Roles}}<p>Roles: {{join ", " .}}</p>
{{end}}{{with .VppAccount}}<p>VPP account: {{.}}</p>
{{end}}{{template "platform" dict "Name" "iOS" "Config" .IOS}}
{{template "platform" dict "Name" "Android" "Config" .Android}}
{{end}}</div>
{{end}}
</body>
</html>

{{define "platform"}}<h4>{{.Name}}</h4>
{{if .Config}}<table>
<tr><th>Display name</th><th>Version</th><th>Min OS</th><th>Max OS</th><th>Paid</th><th>Remove with MDM</th><th>Prevent backup</th></tr>
<tr><td>{{.Config.DisplayName}}</td><td>{{.Config.AppVersion}}</td><td>{{.Config.MinOsVersion}}</td><td>{{.Config.MaxOsVersion}}</td><td>{{.Config.Paid}}</td><td>{{.Config.RemoveWithMdm}}</td><td>{{.Config.PreventBackup}}</td></tr>
</table>
{{with .Config.Policies}}<table>
<tr><th>Policy</th><th>Value</th><th>Category</th><th>Type</th><th>Units</th></tr>
{{range .}}<tr><td>{{.PolicyName}}{{with .Title}}<br><small>{{.}}</small>{{end}}</td><td>{{.PolicyValue}}</td><td>{{.PolicyCategory}}</td><td>{{.PolicyType}}</td><td>{{.Units}}</td></tr>
{{end}}</table>
{{end}}{{else}}<p class="notconfigured">Not configured</p>
{{end}}{{end}}`
