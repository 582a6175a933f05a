// Package email provides digest email delivery via Resend.
package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

const digestHTMLTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #1f2937;">
  <h2>Hi {{.UserName}},</h2>
  <p>Here is what happened in your ledger:</p>
  <ul>
    {{range .Lines}}<li>{{.}}</li>
    {{end}}
  </ul>
  <p style="color: #6b7280; font-size: 12px;">You receive this digest because notifications are enabled for your account.</p>
</body>
</html>
`

const digestTextTemplate = `Hi {{.UserName}},

Here is what happened in your ledger:

{{range .Lines}}- {{.}}
{{end}}
You receive this digest because notifications are enabled for your account.
`

// DigestData contains data for the notification digest email.
type DigestData struct {
	UserName string
	Lines    []string
}

// DigestRenderer renders the notification digest email.
type DigestRenderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewDigestRenderer creates a new digest renderer.
func NewDigestRenderer() (*DigestRenderer, error) {
	html, err := htmltemplate.New("digest").Parse(digestHTMLTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML digest template: %w", err)
	}

	text, err := texttemplate.New("digest").Parse(digestTextTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse text digest template: %w", err)
	}

	return &DigestRenderer{
		html: html,
		text: text,
	}, nil
}

// Render renders both HTML and text versions of the digest.
func (r *DigestRenderer) Render(data DigestData) (html string, text string, err error) {
	var htmlBuf bytes.Buffer
	if err := r.html.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML digest: %w", err)
	}

	var textBuf bytes.Buffer
	if err := r.text.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to render text digest: %w", err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// DigestLine formats a notification event as a human-readable digest line.
func DigestLine(event entity.NotificationEvent) string {
	switch event.Type {
	case entity.NotificationLowBalance:
		if event.Balance != nil {
			return fmt.Sprintf("Your balance dropped to %s.", event.Balance.String())
		}
		return "Your balance is running low."
	case entity.NotificationBudgetOverflow:
		if event.CategoryName != "" {
			return fmt.Sprintf("You went over your '%s' budget.", event.CategoryName)
		}
		return "You went over one of your budgets."
	case entity.NotificationGoalCompleted:
		return fmt.Sprintf("Goal '%s' is complete. Congratulations!", event.GoalName)
	case entity.NotificationGoalDeadlineSoon:
		if event.DaysLeft != nil {
			return fmt.Sprintf("Goal '%s' is due in %d day(s).", event.GoalName, *event.DaysLeft)
		}
		return fmt.Sprintf("Goal '%s' is due soon.", event.GoalName)
	default:
		return string(event.Type)
	}
}
