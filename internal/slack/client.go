// Package slack posts assembled meeting notes to a Slack channel via
// chat.postMessage. API-level failures are returned as data, not errors, so
// the caller decides how to surface them.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/domain/meeting"
)

const DefaultBaseURL = "https://slack.com"

// Well-known Slack API error strings the assistant gives hints for.
const (
	ErrChannelNotFound = "channel_not_found"
	ErrInvalidAuth     = "invalid_auth"
)

type Client struct {
	Token   string
	BaseURL string

	// HTTPClient defaults to http.DefaultClient; no timeout is configured.
	HTTPClient *http.Client
}

func NewClient(token string) *Client {
	return &Client{Token: token, BaseURL: DefaultBaseURL}
}

// PostResult is the API outcome of one chat.postMessage call.
type PostResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NormalizeChannel prepends the "#" name sigil unless the identifier already
// carries a recognized sigil: "#" for channel names, a leading "C" for raw
// channel IDs. Idempotent.
func NormalizeChannel(channel string) string {
	if strings.HasPrefix(channel, "#") || strings.HasPrefix(channel, "C") {
		return channel
	}
	return "#" + channel
}

// BuildMessage assembles the notification text in fixed order: header with
// timestamp, attendees, context, then the three sections. Empty optional
// fields are omitted entirely rather than rendered as empty headings.
func BuildMessage(result meeting.AnalysisResult, attendees, context string, now time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "*🎙️ 씨에스엠17 회의 기록 완료 (%s)*\n\n", now.Format("2006-01-02 15:04"))

	if attendees != "" {
		fmt.Fprintf(&sb, "*👥 참여자*: %s\n", attendees)
	}
	if context != "" {
		fmt.Fprintf(&sb, "*💡 회의 목적 및 배경*: %s\n", context)
	}

	sb.WriteString("\n")

	if result.ThreeLine != "" {
		fmt.Fprintf(&sb, "*✨ 3줄 요약*\n%s\n\n", result.ThreeLine)
	}
	if result.Todo != "" {
		fmt.Fprintf(&sb, "*⚡ 할 일 (To-Do)*\n%s\n\n", result.Todo)
	}
	if result.Detailed != "" {
		fmt.Fprintf(&sb, "*📌 상세 요약*\n%s\n\n", result.Detailed)
	}

	return sb.String()
}

// PostMessage delivers one message to the (already normalized) channel. The
// returned error covers transport and decode failures only; authorization
// failures, unknown channels and other API errors come back in PostResult.
func (c *Client) PostMessage(ctx context.Context, channel, text string) (*PostResult, error) {
	if c.Token == "" {
		return nil, fmt.Errorf("slack bot token not set")
	}

	jsonBody, err := json.Marshal(map[string]string{
		"channel": channel,
		"text":    text,
	})
	if err != nil {
		return nil, err
	}

	url := c.baseURL() + "/api/chat.postMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling Slack API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var result PostResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("parsing Slack response: %w", err)
	}
	return &result, nil
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimSuffix(c.BaseURL, "/")
	}
	return DefaultBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
