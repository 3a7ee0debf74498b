package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func textResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
}

func TestGenerateFromAudio(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(textResponse("[3-Line Summary]\nfoo"))
	}))
	defer srv.Close()

	c := &Client{APIKey: "key-123", BaseURL: srv.URL}
	text, err := c.GenerateFromAudio(context.Background(), "models/gemini-2.0-flash", "summarize", []byte{0x01, 0x02}, "audio/wav")
	if err != nil {
		t.Fatalf("GenerateFromAudio failed: %v", err)
	}

	if text != "[3-Line Summary]\nfoo" {
		t.Errorf("text = %q", text)
	}
	if gotPath != "/v1beta/models/gemini-2.0-flash:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "key-123" {
		t.Errorf("api key header = %q", gotKey)
	}

	parts := gotBody.Contents[0].Parts
	if len(parts) != 2 {
		t.Fatalf("expected prompt + audio parts, got %d", len(parts))
	}
	if parts[0].Text != "summarize" {
		t.Errorf("prompt part = %q", parts[0].Text)
	}
	if parts[1].InlineData == nil || parts[1].InlineData.MimeType != "audio/wav" {
		t.Fatalf("audio part malformed: %+v", parts[1])
	}
	if parts[1].InlineData.Data != base64.StdEncoding.EncodeToString([]byte{0x01, 0x02}) {
		t.Errorf("audio payload not base64-encoded verbatim")
	}
}

func TestGenerateFromAudioBareModelName(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(textResponse("x"))
	}))
	defer srv.Close()

	c := &Client{APIKey: "k", BaseURL: srv.URL}
	if _, err := c.GenerateFromAudio(context.Background(), "gemini-flash-latest", "p", nil, "audio/wav"); err != nil {
		t.Fatalf("GenerateFromAudio failed: %v", err)
	}
	if gotPath != "/v1beta/models/gemini-flash-latest:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestGenerateFromAudioHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := &Client{APIKey: "k", BaseURL: srv.URL}
	_, err := c.GenerateFromAudio(context.Background(), "m", "p", nil, "audio/wav")
	if err == nil {
		t.Fatal("expected error for HTTP 429")
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error should carry status and body: %v", err)
	}
}

func TestGenerateFromAudioEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	c := &Client{APIKey: "k", BaseURL: srv.URL}
	text, err := c.GenerateFromAudio(context.Background(), "m", "p", nil, "audio/wav")
	if err != nil {
		t.Fatalf("empty candidates must not be an error: %v", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty", text)
	}
}

func TestGenerateFromAudioMissingKey(t *testing.T) {
	c := &Client{}
	if _, err := c.GenerateFromAudio(context.Background(), "m", "p", nil, "audio/wav"); err == nil {
		t.Error("expected error without API key")
	}
}
