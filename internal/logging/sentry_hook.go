package logging

import (
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// SentryHook forwards error-and-above log entries to Sentry. The levels
// it fires on are given at construction time.
type SentryHook struct {
	levels []logrus.Level
}

func NewSentryHook(levels []logrus.Level) *SentryHook {
	return &SentryHook{levels: levels}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Message = entry.Message
	event.Timestamp = entry.Time
	event.Level = sentryLevel(entry.Level)

	for key, value := range entry.Data {
		if err, ok := value.(error); ok {
			event.Extra[key] = err.Error()
			continue
		}
		event.Extra[key] = value
	}

	if sentry.CaptureEvent(event) == nil {
		return errors.New("failed to capture sentry event")
	}

	if entry.Level <= logrus.FatalLevel {
		sentry.Flush(2 * time.Second)
	}

	return nil
}

func sentryLevel(level logrus.Level) sentry.Level {
	switch level {
	case logrus.PanicLevel:
		return sentry.LevelFatal
	case logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	default:
		return sentry.LevelInfo
	}
}
