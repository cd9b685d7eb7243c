// Package notify sends transactional email through the Resend HTTP API.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("email provider is not configured")

// Message is a rendered email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

type ResendMailer struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

func NewResendMailer(apiKey, from, endpoint string, timeout time.Duration) *ResendMailer {
	if endpoint == "" {
		endpoint = "https://api.resend.com/emails"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ResendMailer{
		apiKey:   strings.TrimSpace(apiKey),
		from:     from,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text,omitempty"`
}

type sendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Send delivers msg and returns the provider message id.
func (m *ResendMailer) Send(ctx context.Context, msg Message) (string, error) {
	if m.apiKey == "" {
		return "", ErrNotConfigured
	}
	if msg.To == "" {
		return "", errors.New("missing recipient")
	}
	if msg.Text == "" {
		msg.Text = PlainText(msg.HTML)
	}

	body, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var parsed sendResponse
	_ = json.Unmarshal(raw, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if parsed.Message != "" {
			return "", fmt.Errorf("email provider returned status %d: %s", resp.StatusCode, parsed.Message)
		}
		return "", fmt.Errorf("email provider returned status: %d", resp.StatusCode)
	}
	return parsed.ID, nil
}

// PlainText renders the readable text of an HTML body, one block per line, with
// link targets kept in brackets.
func PlainText(htmlBody string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		return ""
	}
	doc.Find("style, script, head").Remove()
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := strings.Join(strings.Fields(sel.Text()), " ")
		if href != "" && text != href {
			sel.SetText(text + " [" + href + "]")
		}
	})
	doc.Find("br").ReplaceWithHtml("\n")

	var lines []string
	doc.Find("h1, h2, h3, p, td").Each(func(_ int, sel *goquery.Selection) {
		if sel.Find("p, td, h1, h2, h3").Length() > 0 {
			return
		}
		for _, line := range strings.Split(sel.Text(), "\n") {
			if line = strings.Join(strings.Fields(line), " "); line != "" {
				lines = append(lines, line)
			}
		}
	})
	return strings.Join(lines, "\n")
}
