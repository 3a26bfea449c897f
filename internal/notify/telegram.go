package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/yeojugoodnews/briefing_agent/internal/logger"
	"github.com/yeojugoodnews/briefing_agent/internal/model"
	"github.com/yeojugoodnews/briefing_agent/internal/profile"
)

// Notifier announces a successful publish. Implementations are best-effort:
// they log failures and never influence the run's outcome.
type Notifier interface {
	Notify(ctx context.Context, article model.ComposedArticle, result model.PublishResult, p *profile.Profile)
}

const telegramAPI = "https://api.telegram.org"

// Telegram sends a single fire-and-forget sendMessage call.
type Telegram struct {
	baseURL string
	token   string
	chatID  string
	client  *http.Client
}

// NewTelegram builds the notifier. baseURL may be empty for the public API.
func NewTelegram(baseURL, token, chatID string) *Telegram {
	if baseURL == "" {
		baseURL = telegramAPI
	}
	return &Telegram{
		baseURL: baseURL,
		token:   token,
		chatID:  chatID,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Notify announces the published article. It is a no-op when the profile
// has notification disabled or credentials are absent; any send failure is
// logged and swallowed.
func (t *Telegram) Notify(ctx context.Context, article model.ComposedArticle, result model.PublishResult, p *profile.Profile) {
	if !p.Notify {
		return
	}
	if t.token == "" || t.chatID == "" {
		logger.Log.Debugf("notification skipped [%s]: no telegram credentials", p.Name)
		return
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id": t.chatID,
		"text":    fmt.Sprintf("%s\n%s", article.Title, result.URL),
	})
	if err != nil {
		logger.Log.Warnf("notification payload failed [%s]: %v", p.Name, err)
		return
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		logger.Log.Warnf("notification request failed [%s]: %v", p.Name, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := t.client.Do(req)
	if err != nil {
		logger.Log.Warnf("notification send failed [%s]: %v", p.Name, err)
		return
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		logger.Log.Warnf("notification rejected [%s]: status %d", p.Name, res.StatusCode)
		return
	}
	logger.Log.Infof("notified channel [%s]", p.Name)
}
