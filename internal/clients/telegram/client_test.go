package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/carnage89/AlexeyR/internal/platform/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func TestSendMessageSuccess(t *testing.T) {
	t.Parallel()

	var requests int32
	var gotPath string
	var gotPayload map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	}))
	defer ts.Close()

	client := New(testLogger(), Config{
		BotToken: "bot-token",
		ChatID:   "42",
		BaseURL:  ts.URL,
	})

	if err := client.SendMessage(context.Background(), "hello"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if n := atomic.LoadInt32(&requests); n != 1 {
		t.Errorf("expected exactly one request, got %d", n)
	}
	if gotPath != "/botbot-token/sendMessage" {
		t.Errorf("unexpected request path %q", gotPath)
	}
	if gotPayload["chat_id"] != "42" || gotPayload["text"] != "hello" || gotPayload["parse_mode"] != "Markdown" {
		t.Errorf("unexpected payload %v", gotPayload)
	}
}

func TestSendMessageAPIFailure(t *testing.T) {
	t.Parallel()

	var requests int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	}))
	defer ts.Close()

	client := New(testLogger(), Config{
		BotToken: "bot-token",
		ChatID:   "42",
		BaseURL:  ts.URL,
	})

	err := client.SendMessage(context.Background(), "hello")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.HTTPStatusCode() != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", apiErr.HTTPStatusCode())
	}
	if !strings.Contains(apiErr.Error(), "chat not found") {
		t.Errorf("expected description in error, got %q", apiErr.Error())
	}
	// One attempt only.
	if n := atomic.LoadInt32(&requests); n != 1 {
		t.Errorf("expected exactly one request, got %d", n)
	}
}

func TestSendMessageRejectedBodyWithoutOK(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 with ok=false still counts as a failed delivery.
		_, _ = w.Write([]byte(`{"ok":false,"description":"Forbidden: bot was blocked"}`))
	}))
	defer ts.Close()

	client := New(testLogger(), Config{BotToken: "t", ChatID: "1", BaseURL: ts.URL})

	var apiErr *APIError
	if err := client.SendMessage(context.Background(), "hi"); !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
}

func TestSendMessageMissingConfig(t *testing.T) {
	t.Parallel()

	client := New(testLogger(), Config{})
	err := client.SendMessage(context.Background(), "hello")

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if len(cfgErr.Missing) != 2 {
		t.Errorf("expected both secrets reported missing, got %v", cfgErr.Missing)
	}
}

func TestNotifyContactSubmissionFormat(t *testing.T) {
	t.Parallel()

	var gotText string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		gotText = payload["text"]
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	client := New(testLogger(), Config{BotToken: "t", ChatID: "1", BaseURL: ts.URL})
	if err := client.NotifyContactSubmission(context.Background(), "Ivan", "ivan@example.com", "Нужен сайт"); err != nil {
		t.Fatalf("NotifyContactSubmission failed: %v", err)
	}
	for _, fragment := range []string{"Ivan", "ivan@example.com", "Нужен сайт", "Новая заявка"} {
		if !strings.Contains(gotText, fragment) {
			t.Errorf("expected message to contain %q, got %q", fragment, gotText)
		}
	}
}

func TestFormatSubmissionUsesMoscowTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	text := formatSubmission("Ivan", "ivan@example.com", "msg", at)
	// 09:30 UTC is 12:30 in Moscow.
	if !strings.Contains(text, "01.03.2025, 12:30") {
		t.Errorf("expected Moscow-local timestamp, got %q", text)
	}
}
