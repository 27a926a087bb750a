package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

type logrusService struct {
	logger *logrus.Logger
	fields logrus.Fields
}

// NewLogger creates a new Logger instance
func NewLogger(config *Config) (Logger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(string(config.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %v", err)
	}
	l.SetLevel(level)

	switch config.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   config.Development,
		})
	}

	switch {
	case config.File.Enabled && config.File.Path != "":
		f, err := os.OpenFile(config.File.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %v", err)
		}
		l.SetOutput(f)
	case config.Output == "stderr":
		l.SetOutput(os.Stderr)
	default:
		l.SetOutput(os.Stdout)
	}

	return &logrusService{
		logger: l,
		fields: logrus.Fields{},
	}, nil
}

func (l *logrusService) entry(fields map[string]interface{}) *logrus.Entry {
	entry := l.logger.WithFields(l.fields)
	if len(fields) > 0 {
		entry = entry.WithFields(logrus.Fields(fields))
	}
	return entry
}

func (l *logrusService) LogInfo(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

func (l *logrusService) LogError(err error, msg string) error {
	if err != nil {
		l.entry(nil).WithError(err).Error(msg)
	}
	return err
}

func (l *logrusService) LogErrorf(err error, format string, args ...interface{}) error {
	if err != nil {
		l.entry(nil).WithError(err).Errorf(format, args...)
	}
	return err
}

func (l *logrusService) LogFatal(err error, context string) {
	l.entry(nil).WithError(err).Fatal(context)
}

func (l *logrusService) LogDebug(message string, fields map[string]interface{}) {
	l.entry(fields).Debug(message)
}

func (l *logrusService) LogWarn(message string, fields map[string]interface{}) {
	l.entry(fields).Warn(message)
}

func (l *logrusService) WithFields(fields map[string]interface{}) Logger {
	newFields := make(logrus.Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}
	return &logrusService{
		logger: l.logger,
		fields: newFields,
	}
}

func (l *logrusService) WithRequestID(requestID string) Logger {
	return l.WithFields(map[string]interface{}{
		"requestID": requestID,
	})
}
