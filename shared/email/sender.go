package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"thinknode/internal/models"
	"thinknode/shared/config"
)

type Sender struct {
	config *config.EmailConfig
}

func NewSender(cfg *config.EmailConfig) *Sender {
	return &Sender{
		config: cfg,
	}
}

// SendDigest emails the combined analysis of the watch topics
func (s *Sender) SendDigest(reports []*models.AnalysisReport) error {
	if len(reports) == 0 {
		return nil // No topics analyzed, nothing to send
	}

	subject := fmt.Sprintf("Trend Digest - %d Topics (%s)",
		len(reports), time.Now().Format("Jan 2, 2006"))

	body, err := s.generateDigestBody(reports)
	if err != nil {
		return fmt.Errorf("failed to generate digest body: %w", err)
	}

	return s.SendHTML(subject, body)
}

// SendHTML sends an email with custom HTML content
func (s *Sender) SendHTML(subject, htmlBody string) error {
	return s.sendViaSMTP(subject, htmlBody)
}

func (s *Sender) sendViaSMTP(subject, body string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.SMTPServer)

	to := []string{s.config.ToEmail}
	msg := []byte(fmt.Sprintf(`To: %s
From: %s
Subject: %s
MIME-Version: 1.0
Content-Type: text/html; charset=UTF-8

%s`, s.config.ToEmail, s.config.FromEmail, subject, body))

	addr := fmt.Sprintf("%s:%d", s.config.SMTPServer, s.config.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.FromEmail, to, msg)
}

const digestTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #111;">
{{range .Reports}}
	<h1 style="border-bottom: 2px solid #667eea;">{{.Topic}}</h1>

	<h2>YouTube</h2>
	{{if .Videos}}
	<p>{{.VideoSummary.Count}} videos, {{.VideoSummary.TotalViews}} total views,
	{{.VideoSummary.AverageViews}} avg views, {{printf "%.2f" .VideoSummary.AverageEngagementRate}}% avg engagement</p>
	<ul>
	{{range .Videos}}
		<li>
			<a href="{{.URL}}">{{.Title}}</a> — {{.ChannelTitle}}<br>
			{{.Views}} views, {{.Likes}} likes, {{.Comments}} comments ({{printf "%.2f" .EngagementRate}}%)
		</li>
	{{end}}
	</ul>
	{{else}}
	<p>No videos found.</p>
	{{end}}

	<h2>Instagram</h2>
	{{if .Posts}}
	<ul>
	{{range .Posts}}
		<li>[{{.Kind}}] <a href="{{.URL}}">{{.Title}}</a>{{if .Snippet}} — {{.Snippet}}{{end}}</li>
	{{end}}
	</ul>
	{{else}}
	<p>No Instagram content found.</p>
	{{end}}

	{{if .Research}}
	<h2>Research ({{.Research.Depth}})</h2>
	<div style="background: #f8f9fa; padding: 1em; border-radius: 8px; white-space: pre-wrap;">{{.Research.Content}}</div>
	{{end}}

	{{if .Problems}}
	<h2>Problems</h2>
	<ul>
	{{range .Problems}}
		<li><b>{{.Platform}}</b>: {{.Message}}</li>
	{{end}}
	</ul>
	{{end}}
{{end}}
<hr>
<p style="color: #666;">Think Node &bull; Cross-Platform Intelligence</p>
</body>
</html>`

func (s *Sender) generateDigestBody(reports []*models.AnalysisReport) (string, error) {
	tmpl, err := template.New("digest").Parse(digestTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	data := struct {
		Reports []*models.AnalysisReport
	}{Reports: reports}

	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
