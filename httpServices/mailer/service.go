// Package mailer is the outbound mail relay client (Resend HTTP API).
// Callers treat it as best-effort: the booking notification is
// fire-and-forget, and the reset-code path falls back to echoing the code
// when the relay is unconfigured.
package mailer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"os"
	"sort"
	"time"
)

const defaultFrom = "onboarding@resend.dev"

type MailerClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	from       string
}

func NewClient(baseURL string) *MailerClient {
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}
	return &MailerClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  os.Getenv("RESEND_API_KEY"),
		from:    defaultFrom,
	}
}

// Configured reports whether the relay can actually deliver mail.
func (c *MailerClient) Configured() bool {
	return c.apiKey != ""
}

// SendOTP mails a password-reset code.
func (c *MailerClient) SendOTP(email, code string) error {
	body := fmt.Sprintf(
		`<div style="font-family: system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial;">
	<h2 style="margin-bottom:8px;">Your password reset code</h2>
	<p style="margin:0 0 16px;color:#374151">Use this code to reset your AdWhey password. It expires in 5 minutes.</p>
	<p style="font-size:28px;letter-spacing:6px;font-weight:700">%s</p>
	<p style="margin-top:16px;color:#6b7280;font-size:12px">If you did not request this, you can ignore this email.</p>
</div>`, html.EscapeString(code))

	return c.send(email, "Your AdWhey password reset code", body)
}

// NotifyAdmin mails a new-booking summary as an HTML key/value table.
// The id and created_at fields are stripped and a submittedAt row appended,
// matching what the admin inbox expects.
func (c *MailerClient) NotifyAdmin(subject, adminEmail string, booking map[string]interface{}) error {
	if adminEmail == "" {
		adminEmail = os.Getenv("ADMIN_EMAIL")
	}
	if adminEmail == "" {
		adminEmail = "adwheyofficial@gmail.com"
	}
	if subject == "" {
		subject = "New Booking Submitted"
	}

	clean := make(map[string]interface{}, len(booking))
	for k, v := range booking {
		if k == "id" || k == "created_at" {
			continue
		}
		clean[k] = v
	}
	clean["submittedAt"] = time.Now().Format("02/01/2006, 15:04:05")

	return c.send(adminEmail, subject, renderEmailHTML(clean))
}

func (c *MailerClient) send(to, subject, htmlBody string) error {
	if !c.Configured() {
		return errors.New("RESEND_API_KEY is not set")
	}

	body, err := json.Marshal(sendEmailRequest{
		From:    c.from,
		To:      to,
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+"/emails", bytes.NewBuffer(body))
	if err != nil {
		return err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("mail relay returned non-OK status: " + resp.Status)
	}

	var apiResp sendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return err
	}

	return nil
}

// renderEmailHTML builds the key/value table body. Keys are sorted so the
// rendered email is stable.
func renderEmailHTML(fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var rows bytes.Buffer
	for _, k := range keys {
		v := fields[k]
		var val string
		switch t := v.(type) {
		case string:
			val = t
		default:
			if b, err := json.Marshal(v); err == nil {
				val = string(b)
			} else {
				val = fmt.Sprintf("%v", v)
			}
		}
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding:8px 12px;border:1px solid #e5e7eb;font-weight:600">%s</td><td style="padding:8px 12px;border:1px solid #e5e7eb">%s</td></tr>`,
			html.EscapeString(k), html.EscapeString(val)))
	}

	return fmt.Sprintf(`
<div style="font-family: system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial;">
	<h2 style="margin-bottom:8px;">New Booking Submitted</h2>
	<p style="margin:0 0 16px;color:#374151">You have received a new booking. Details are below:</p>
	<table style="border-collapse:collapse;border:1px solid #e5e7eb;width:100%%;max-width:640px;">%s</table>
	<p style="margin-top:16px;color:#6b7280;font-size:12px">This message was sent automatically by AdWhey.</p>
</div>`, rows.String())
}
