package routes

// ── Harness page ──────────────────────────────────────────────────────────────

const tmplHarness = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Users API Tester</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:monospace,sans-serif;background:#0d1117;color:#c9d1d9;font-size:13px;line-height:1.5}
nav{background:#161b22;border-bottom:1px solid #30363d;padding:8px 16px;display:flex;gap:16px;align-items:center}
nav .brand{color:#f0f6fc;font-weight:700;font-size:15px}
nav .dim{margin-left:auto}
main{padding:16px;max-width:960px}
.section{background:#161b22;border:1px solid #30363d;border-radius:6px;margin-bottom:16px;overflow:hidden}
.section-hdr{padding:8px 12px;border-bottom:1px solid #30363d;font-size:11px;font-weight:600;color:#8b949e;text-transform:uppercase;letter-spacing:.05em;background:#0d1117}
form{display:flex;gap:8px;flex-wrap:wrap;padding:10px 12px}
input{background:#0d1117;border:1px solid #30363d;border-radius:4px;color:#c9d1d9;padding:4px 8px;font-family:inherit}
button{background:#1f6feb;border:0;border-radius:4px;color:#fff;padding:4px 12px;cursor:pointer;font-family:inherit}
pre{white-space:pre-wrap;word-break:break-all;font-size:12px;padding:10px 12px;border-top:1px solid #21262d;min-height:2.5em}
.dim{color:#8b949e}
.err{color:#f87171}
</style>
</head>
<body>
<nav><span class="brand">Users API Tester</span><span class="dim">{{.APIURL}}</span></nav>
<main>
{{template "content" .}}
</main>
</body>
</html>{{end}}

{{define "output"}}<pre id="{{.ID}}"{{if .Failed}} class="err"{{end}}>{{.Text}}</pre>{{end}}

{{define "content"}}
<div class="section" id="list">
  <div class="section-hdr">GET /api/users</div>
  <form method="post" action="/users/list">
    <button type="submit">List users</button>
  </form>
  {{template "output" .List}}
</div>

<div class="section" id="create">
  <div class="section-hdr">POST /api/users</div>
  <form method="post" action="/users/create">
    <input type="text" id="create-username" name="username" placeholder="username" value="{{.Create.Username}}">
    <input type="email" id="create-email" name="email" placeholder="email" value="{{.Create.Email}}">
    <button type="submit">Create user</button>
  </form>
  {{template "output" .Create.Out}}
</div>

<div class="section" id="get">
  <div class="section-hdr">GET /api/users/{id}</div>
  <form method="post" action="/users/get">
    <input type="text" id="get-id" name="id" placeholder="user id" value="{{.Get.ID}}">
    <button type="submit">Get user</button>
  </form>
  {{template "output" .Get.Out}}
</div>

<div class="section" id="update">
  <div class="section-hdr">PUT /api/users/{id}</div>
  <form method="post" action="/users/update">
    <input type="text" id="update-id" name="id" placeholder="user id" value="{{.Update.ID}}">
    <input type="text" id="update-username" name="username" placeholder="new username" value="{{.Update.Username}}">
    <input type="email" id="update-email" name="email" placeholder="new email" value="{{.Update.Email}}">
    <button type="submit">Update user</button>
  </form>
  {{template "output" .Update.Out}}
</div>

<div class="section" id="delete">
  <div class="section-hdr">DELETE /api/users/{id}</div>
  <form method="post" action="/users/delete">
    <input type="text" id="delete-id" name="id" placeholder="user id" value="{{.Delete.ID}}">
    <button type="submit">Delete user</button>
  </form>
  {{template "output" .Delete.Out}}
</div>
{{end}}
`
