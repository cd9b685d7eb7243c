package notify

import (
	"bytes"
	"fmt"
	"html/template"
)

// EmailData fills the email templates.
type EmailData struct {
	Name       string
	ReportLink string
	TotalValue string
}

const (
	ReportReadySubject = "Your Scholarship Funding Roadmap"
	WelcomeSubject     = "🎓 Your Funding Roadmap is Ready!"
)

var reportReadyTmpl = template.Must(template.New("report_ready").Parse(`<div style="font-family: system-ui, -apple-system, 'Segoe UI', sans-serif; padding: 16px;">
  <h2>Hi {{if .Name}}{{.Name}}{{else}}there{{end}},</h2>
  <p>Your personalized scholarship report is ready.</p>
  {{if .TotalValue}}<p>Total value found: <strong>{{.TotalValue}}</strong></p>{{end}}
  <p><a href="{{.ReportLink}}" style="background:#22c55e;color:#000;padding:10px 18px;border-radius:999px;text-decoration:none;font-weight:600;">View My Scholarship Report</a></p>
  <p style="margin-top:16px;">Or paste this link in your browser:<br>{{.ReportLink}}</p>
</div>`))

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
  <body style="margin:0;padding:0;background-color:#0b0f19;font-family:Arial,Helvetica,sans-serif;">
    <table width="100%" cellpadding="0" cellspacing="0" style="background-color:#0b0f19;padding:24px;">
      <tr><td align="center">
        <table width="100%" cellpadding="0" cellspacing="0" style="max-width:420px;background:#000000;border-radius:16px;padding:28px;color:#ffffff;">
          <tr><td style="text-align:center;">
            <h2 style="color:#22d3ee;margin:0;">Hi {{.Name}}! 👋</h2>
            <p style="color:#cbd5f5;font-size:14px;margin-top:8px;">Your personalized <strong>Funding Roadmap</strong> is ready.</p>
          </td></tr>
          <tr><td style="padding:16px;background:#020617;border-radius:10px;border-left:4px solid #22d3ee;">
            <p style="margin:0;color:#e5e7eb;font-size:14px;">We found real scholarship value matching your profile.</p>
          </td></tr>
          <tr><td align="center" style="padding:26px 0;">
            <a href="{{.ReportLink}}" style="background:#22d3ee;color:#000000;text-decoration:none;padding:14px 26px;border-radius:999px;font-weight:bold;display:inline-block;">View My Funding Roadmap</a>
          </td></tr>
          <tr><td style="text-align:center;color:#94a3b8;font-size:12px;">
            <p>Share this with your parents and mentor.</p>
            <p>Sent by fundmystudyabroad.com</p>
          </td></tr>
        </table>
      </td></tr>
    </table>
  </body>
</html>`))

func render(t *template.Template, to, subject string, data EmailData) (Message, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("failed to render %s email: %w", t.Name(), err)
	}
	html := buf.String()
	return Message{To: to, Subject: subject, HTML: html, Text: PlainText(html)}, nil
}

// ReportReadyEmail carries the magic link sent after a report is unlocked.
func ReportReadyEmail(to string, data EmailData) (Message, error) {
	return render(reportReadyTmpl, to, ReportReadySubject, data)
}

// WelcomeEmail is the "welcome" notification type.
func WelcomeEmail(to string, data EmailData) (Message, error) {
	return render(welcomeTmpl, to, WelcomeSubject, data)
}
