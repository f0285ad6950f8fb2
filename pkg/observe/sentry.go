package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"

	"go.uber.org/zap/zapcore"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second
)

// SentryHook is an io.Writer that forwards error-level entries of the zap
// JSON stream to sentry. Attach it as an extra writer of NewZapLogger.
type SentryHook struct {
	appZone string
	appName string
	l       *Logger
}

func NewSentryHook(
	appZone, appName string,
	maxErrorDepth int,
	isDebug bool,
	dsn string,
) *SentryHook {
	if dsn == "" {
		log.Println("Stacktracer init error: no DSN")
	}
	if maxErrorDepth == 0 {
		maxErrorDepth = _sentryMaxErrorDepth
	}
	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout
	if err := sentry.Init(
		sentry.ClientOptions{
			AttachStacktrace: true,
			Debug:            isDebug,
			Dsn:              dsn,
			Environment:      appZone,
			MaxErrorDepth:    maxErrorDepth,
			ServerName:       appName,
			Transport:        sentryTransport,
		}); err != nil {

		log.Println("Stacktracer init error: ", err.Error())
	}
	return &SentryHook{
		appZone: appZone,
		appName: appName,
	}
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.DebugLevel, zapcore.InvalidLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel:
		return sentry.LevelFatal
	}

	return sentry.LevelDebug
}

func (h *SentryHook) Write(p []byte) (n int, err error) {
	if h.appZone != "prod" && h.appZone != "dev" {
		return len(p), nil
	}

	type entry struct {
		Level      string `json:"level"`
		AppName    string `json:"app_name"`
		AppZone    string `json:"app_zone"`
		CallerFile string `json:"caller_file"`
		CallerLine int    `json:"caller_line"`
		CallerFunc string `json:"caller_func"`
		Stack      string `json:"stack"`
		Message    string `json:"msg"`
		Error      string `json:"error"`
		Timestamp  string `json:"timestamp"`
	}

	var t entry
	if err := json.Unmarshal(p, &t); err != nil {
		h.report(errors.New("[SentryHook] json.Unmarshal data"))
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(t.Level)
	if err != nil {
		h.report(errors.Wrap(err, "[SentryHook] parse zap level: "))
		return len(p), nil
	}
	if len(t.Message) == 0 {
		return len(p), nil
	}

	switch level {
	case zapcore.ErrorLevel, zapcore.FatalLevel, zapcore.PanicLevel:
		timestamp, _ := time.ParseInLocation(logTimeLayout, t.Timestamp, time.UTC)

		event := sentry.NewEvent()
		event.Extra["AppName"] = h.appName
		event.Environment = h.appZone
		event.Level = h.mapLevel(level)
		event.Timestamp = timestamp
		event.Message = t.Message
		event.Extra["Error"] = t.Error
		event.Extra["CallerFile"] = t.CallerFile
		event.Extra["CallerLine"] = t.CallerLine
		event.Extra["CallerFunc"] = t.CallerFunc
		event.Extra["Stack"] = t.Stack
		event.Extra["TimeStamp"] = t.Timestamp
		for k, v := range event.Tags {
			if v == "" {
				delete(event.Tags, k)
			}
		}
		event.Exception = append(event.Exception, sentry.Exception{
			Type:       t.Message,
			Value:      t.Error,
			Stacktrace: sentry.NewStacktrace(),
		})
		sentry.CaptureEvent(event)
	}

	return len(p), nil
}

func (h *SentryHook) report(err error) {
	if h.l != nil {
		h.l.Error(err)
		return
	}
	log.Println(err.Error())
}

// Flush drains pending sentry events, used during shutdown.
func (h *SentryHook) Flush() {
	sentry.Flush(_sentryFlushTimeout)
}

func (h *SentryHook) SetLogger(logger *Logger) {
	if logger != nil {
		h.l = logger
	}
}
