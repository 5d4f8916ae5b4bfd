package mail

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/dtroode/statementbox/internal/model"
)

type content struct {
	Subject string
	Text    string
	HTML    string
}

type templateData struct {
	Link      string
	SessionID string
	Minutes   int
}

var textTmpl = texttemplate.Must(texttemplate.New("text").Parse(`{{if .SessionID}}Use the link below to continue your upload session {{.SessionID}}.{{else}}Use the link below to see your active upload sessions.{{end}}

{{.Link}}

The link works once and expires in {{.Minutes}} minutes. If you did not ask for it, ignore this email.
`))

var htmlTmpl = htmltemplate.Must(htmltemplate.New("html").Parse(`<p>{{if .SessionID}}Use the link below to continue your upload session <strong>{{.SessionID}}</strong>.{{else}}Use the link below to see your active upload sessions.{{end}}</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
<p>The link works once and expires in {{.Minutes}} minutes. If you did not ask for it, ignore this email.</p>
`))

func render(msg model.MagicLinkMessage) (content, error) {
	data := templateData{
		Link:      msg.Link,
		SessionID: msg.SessionID,
		Minutes:   int(msg.ExpiresIn.Minutes()),
	}

	subject := "Your sign-in link"
	if msg.Purpose == model.PurposeContinueSession {
		subject = fmt.Sprintf("Continue session %s", msg.SessionID)
	}

	var text, html bytes.Buffer
	if err := textTmpl.Execute(&text, data); err != nil {
		return content{}, fmt.Errorf("failed to render text body: %w", err)
	}
	if err := htmlTmpl.Execute(&html, data); err != nil {
		return content{}, fmt.Errorf("failed to render html body: %w", err)
	}

	return content{Subject: subject, Text: text.String(), HTML: html.String()}, nil
}
