package sesmail

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

type mailData struct {
	ProductName  string
	DownloadURL  string
	ExpiryDays   int
	SupportEmail string
	SiteURL      string
}

var htmlTmpl = htmltemplate.Must(htmltemplate.New("delivery_html").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;max-width:600px;margin:0 auto;padding:20px;color:#1e293b;background:#f8fafc;">
<div style="background:white;border-radius:16px;padding:40px 30px;border:1px solid #e2e8f0;">
  <h1 style="color:#0d47a1;font-size:24px;margin:0 0 10px;">Thank you for your purchase!</h1>
  <p style="color:#64748b;font-size:16px;margin:0 0 30px;">Your ebook <strong style="color:#1e293b;">{{.ProductName}}</strong> is ready to download.</p>
  <div style="text-align:center;margin:30px 0;">
    <a href="{{.DownloadURL}}" style="display:inline-block;background:#1a73e8;color:white;text-decoration:none;padding:16px 32px;border-radius:12px;font-weight:bold;font-size:16px;">Download ebook (PDF)</a>
  </div>
  <div style="background:#fff7ed;border:1px solid #fed7aa;border-radius:8px;padding:16px;margin:24px 0;">
    <p style="margin:0;font-size:14px;color:#9a3412;"><strong>The link is valid for {{.ExpiryDays}} days.</strong> Download the file and keep a local copy.</p>
  </div>
</div>
<div style="text-align:center;padding:24px 0;color:#94a3b8;font-size:12px;">
  <p>Trouble downloading? Write to <a href="mailto:{{.SupportEmail}}" style="color:#1a73e8;">{{.SupportEmail}}</a></p>
  <p style="margin-top:12px;"><a href="{{.SiteURL}}" style="color:#1a73e8;text-decoration:none;">{{.SiteURL}}</a></p>
</div>
</body></html>`))

var textTmpl = texttemplate.Must(texttemplate.New("delivery_text").Parse(`Thank you for purchasing {{.ProductName}}!

Download your ebook: {{.DownloadURL}}

The link is valid for {{.ExpiryDays}} days. Download the file and keep a local copy.

Trouble downloading? {{.SupportEmail}}
`))
