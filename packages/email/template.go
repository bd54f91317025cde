package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template HTML mail template
type Template struct {
	tmpl *template.Template
}

func (t *Template) Render(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render mail template: %w", err)
	}
	return buf.String(), nil
}

func (c *Client) SendWithTemplate(from string, to string, subject string, tmpl *Template, data any) error {
	body, err := tmpl.Render(data)
	if err != nil {
		return err
	}
	return c.SendHTML(from, to, subject, body)
}

// ConfirmationCodeTemplate signup confirmation mail
const ConfirmationCodeTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #FF9800; color: white; padding: 20px; text-align: center; }
        .content { background-color: #f9f9f9; padding: 30px; border: 1px solid #ddd; }
        .code { font-size: 20px; font-weight: bold; color: #FF9800; text-align: center;
                padding: 20px; background-color: #fff; border: 2px dashed #FF9800; margin: 20px 0; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Welcome to YaMDb</h1>
        </div>
        <div class="content">
            <p>Hi {{.Username}},</p>
            <p>Exchange this confirmation code for an access token at <b>POST /api/v1/auth/token/</b>:</p>
            <div class="code">{{.Code}}</div>
            <p>If you did not sign up, ignore this message.</p>
        </div>
        <div class="footer">
            <p>This message was sent automatically, do not reply.</p>
        </div>
    </div>
</body>
</html>
`

// ConfirmationCodeData ConfirmationCodeTemplate fields
type ConfirmationCodeData struct {
	Username string
	Code     string
}

var confirmationCodeTemplate = &Template{
	tmpl: template.Must(template.New("confirmation_code").Parse(ConfirmationCodeTemplate)),
}

// SendConfirmationCode mails a signup confirmation code.
func (c *Client) SendConfirmationCode(from, to, username, code string) error {
	return c.SendWithTemplate(from, to, "YaMDb confirmation code", confirmationCodeTemplate, ConfirmationCodeData{
		Username: username,
		Code:     code,
	})
}
