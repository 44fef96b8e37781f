package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/carnage89/AlexeyR/internal/platform/envutil"
	"github.com/carnage89/AlexeyR/internal/platform/logger"
)

// Client delivers contact-form submissions to a Telegram chat through
// the Bot API. Delivery is best-effort: exactly one attempt per call,
// no retry, bounded by the configured timeout.
type Client interface {
	NotifyContactSubmission(ctx context.Context, name, email, message string) error
	SendMessage(ctx context.Context, text string) error
}

type Config struct {
	BotToken string
	ChatID   string
	BaseURL  string
	Timeout  time.Duration
}

func ConfigFromEnv() Config {
	timeoutSec := envutil.Int("TELEGRAM_TIMEOUT_SECONDS", 10)
	return Config{
		BotToken: strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		ChatID:   strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")),
		BaseURL:  envutil.Str("TELEGRAM_BASE_URL", "https://api.telegram.org"),
		Timeout:  time.Duration(timeoutSec) * time.Second,
	}
}

func NewFromEnv(log *logger.Logger) Client {
	return New(log, ConfigFromEnv())
}

// New never fails: missing secrets surface as a *ConfigError on send,
// so a misconfigured sink cannot block startup.
func New(log *logger.Logger, cfg Config) Client {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.telegram.org"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &client{
		log:        log.With("client", "TelegramClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

// ConfigError reports which secrets are absent.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	if e == nil || len(e.Missing) == 0 {
		return "telegram: configuration missing"
	}
	return fmt.Sprintf("telegram: configuration missing (%s)", strings.Join(e.Missing, ", "))
}

// APIError is a rejected or failed Bot API call.
type APIError struct {
	StatusCode  int
	Description string
	Body        string
}

func (e *APIError) Error() string {
	if e == nil {
		return "telegram: <nil error>"
	}
	if strings.TrimSpace(e.Description) != "" {
		return fmt.Sprintf("telegram http %d: %s", e.StatusCode, e.Description)
	}
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = "<empty body>"
	}
	if len(msg) > 4000 {
		msg = msg[:4000] + "..."
	}
	return fmt.Sprintf("telegram http %d: %s", e.StatusCode, msg)
}

func (e *APIError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

func (c *client) NotifyContactSubmission(ctx context.Context, name, email, message string) error {
	return c.SendMessage(ctx, formatSubmission(name, email, message, time.Now()))
}

func (c *client) SendMessage(ctx context.Context, text string) error {
	if c == nil || c.httpClient == nil {
		return fmt.Errorf("telegram client unavailable")
	}

	var missing []string
	if c.cfg.BotToken == "" {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	if c.cfg.ChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id":    c.cfg.ChatID,
		"text":       text,
		"parse_mode": "Markdown",
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.cfg.BaseURL, c.cfg.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return readErr
	}

	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	_ = json.Unmarshal(raw, &result)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !result.OK {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Description: result.Description,
			Body:        string(raw),
		}
	}
	return nil
}

var moscow = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		return time.FixedZone("MSK", 3*60*60)
	}
	return loc
}()

func formatSubmission(name, email, message string, at time.Time) string {
	return fmt.Sprintf(`🔥 *Новая заявка с сайта!*

👤 *Имя:* %s
📧 *Email:* %s
💬 *Сообщение:*
%s

⏰ *Время:* %s`, name, email, message, at.In(moscow).Format("02.01.2006, 15:04"))
}
