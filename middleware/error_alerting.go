package middleware

import (
	"context"
	"crypto/md5"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/nabekou29/n8n-self-host/clients"
	"github.com/nabekou29/n8n-self-host/core/log"
	"github.com/nabekou29/n8n-self-host/models"
)

type AlertConfig struct {
	Environment string
	AppName     string
	LogsURL     string
}

type ErrorAlertMiddleware struct {
	alertClient   clients.AlertClient
	config        AlertConfig
	alertedErrors map[string]time.Time // hash -> last alert time
	mutex         sync.Mutex
	alertCooldown time.Duration
	now           func() time.Time
}

func NewErrorAlertMiddleware(alertClient clients.AlertClient, config AlertConfig) *ErrorAlertMiddleware {
	return &ErrorAlertMiddleware{
		alertClient:   alertClient,
		config:        config,
		alertedErrors: make(map[string]time.Time),
		alertCooldown: 10 * time.Minute, // Don't alert same error more than once per 10min
		now:           time.Now,
	}
}

// HTTP Middleware - wraps HTTP handlers
func (m *ErrorAlertMiddleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer m.recoverAndAlert(fmt.Sprintf("HTTP %s %s", r.Method, r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

// WrapMessageHandler turns a fallible Discord message handler into a gateway callback.
// Errors are logged and alerted; panics are recovered so one bad event cannot kill the session.
func (m *ErrorAlertMiddleware) WrapMessageHandler(
	handler func(ctx context.Context, event models.DiscordMessageEvent) error,
) func(ctx context.Context, event models.DiscordMessageEvent) {
	return func(ctx context.Context, event models.DiscordMessageEvent) {
		alertContext := fmt.Sprintf("Discord MessageCreate (message: %s)", event.MessageID)
		defer m.recoverAndAlert(alertContext)

		if err := handler(ctx, event); err != nil {
			log.Error("❌ Failed to process Discord message", "message_id", event.MessageID, "error", err)
			m.alertOnError(err, "Discord MessageCreate")
		}
	}
}

// alertOnError deduplicates by context+message so a flapping dependency alerts once per cooldown
func (m *ErrorAlertMiddleware) alertOnError(err error, where string) {
	errorMsg := fmt.Sprintf("%s: %v", where, err)
	hash := fmt.Sprintf("%x", md5.Sum([]byte(errorMsg)))

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if lastAlert, exists := m.alertedErrors[hash]; exists {
		if m.now().Sub(lastAlert) < m.alertCooldown {
			return
		}
	}

	go m.sendAlert(errorMsg, where)
	m.alertedErrors[hash] = m.now()
}

func (m *ErrorAlertMiddleware) recoverAndAlert(where string) {
	if r := recover(); r != nil {
		errorMsg := fmt.Sprintf("%s: PANIC - %v", where, r)
		log.Error("❌ Recovered from panic", "context", where, "panic", r)
		go m.sendAlert(errorMsg, where+" (PANIC)")
	}
}

func (m *ErrorAlertMiddleware) sendAlert(errorMsg, where string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := m.alertClient.SendAlert(ctx, clients.Alert{
		Title:       fmt.Sprintf("[%s] Error Alert", m.config.AppName),
		Context:     where,
		Message:     errorMsg,
		Environment: m.config.Environment,
		LogsURL:     m.config.LogsURL,
	})
	if err != nil {
		log.Error("❌ Failed to send error alert", "error", err)
	}
}
