package logger

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is the structured logging interface used across the service.
type Logger interface {
	Info(ctx context.Context, message string, fields map[string]interface{})
	Error(ctx context.Context, message string, err error, fields map[string]interface{})
	Warn(ctx context.Context, message string, fields map[string]interface{})
	Debug(ctx context.Context, message string, fields map[string]interface{})
	WithFields(fields map[string]interface{}) Logger
}

// structuredLogger implements Logger on top of logrus.
type structuredLogger struct {
	logger *logrus.Logger
	fields map[string]interface{}
}

// LoggerConfig carries logger settings read from the environment.
type LoggerConfig struct {
	Level               string
	Format              string
	CorrelationIDHeader string
	ServiceName         string
}

// NewStructuredLogger builds a logger writing JSON or text to stdout.
func NewStructuredLogger(config LoggerConfig) Logger {
	logrusLogger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrusLogger.SetLevel(level)

	if config.Format == "json" {
		logrusLogger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	} else {
		logrusLogger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: time.RFC3339Nano,
			FullTimestamp:   true,
		})
	}

	logrusLogger.SetOutput(os.Stdout)

	return &structuredLogger{
		logger: logrusLogger,
		fields: map[string]interface{}{
			"service": config.ServiceName,
		},
	}
}

func (l *structuredLogger) Info(ctx context.Context, message string, fields map[string]interface{}) {
	l.logger.WithFields(l.buildFields(ctx, nil, fields)).Info(message)
}

func (l *structuredLogger) Error(ctx context.Context, message string, err error, fields map[string]interface{}) {
	l.logger.WithFields(l.buildFields(ctx, err, fields)).Error(message)
}

func (l *structuredLogger) Warn(ctx context.Context, message string, fields map[string]interface{}) {
	l.logger.WithFields(l.buildFields(ctx, nil, fields)).Warn(message)
}

func (l *structuredLogger) Debug(ctx context.Context, message string, fields map[string]interface{}) {
	l.logger.WithFields(l.buildFields(ctx, nil, fields)).Debug(message)
}

// WithFields returns a child logger carrying additional base fields.
func (l *structuredLogger) WithFields(fields map[string]interface{}) Logger {
	newFields := make(map[string]interface{})
	for k, v := range l.fields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}
	return &structuredLogger{
		logger: l.logger,
		fields: newFields,
	}
}

func (l *structuredLogger) buildFields(ctx context.Context, err error, fields map[string]interface{}) logrus.Fields {
	out := logrus.Fields{}

	for k, v := range l.fields {
		out[k] = v
	}
	for k, v := range fields {
		out[k] = v
	}

	if correlationID, ok := ctx.Value("correlation_id").(string); ok && correlationID != "" {
		out["correlation_id"] = correlationID
	}
	if err != nil {
		out["error"] = err.Error()
	}
	if pc, file, line, ok := runtime.Caller(3); ok {
		funcName := runtime.FuncForPC(pc).Name()
		out["caller"] = fmt.Sprintf("%s:%d %s", file, line, funcName)
	}
	return out
}

// LogAuditAction records a privileged mutation alongside the database audit row.
func LogAuditAction(ctx context.Context, log Logger, action, actorID, recordID string, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["event_type"] = "audit"
	fields["action"] = action
	fields["actor_id"] = actorID
	fields["record_id"] = recordID
	log.Info(ctx, fmt.Sprintf("Audit action: %s", action), fields)
}
