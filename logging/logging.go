// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package logging

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	TextFormat = "text"
	JSONFormat = "json"

	defaultTimestampFormat = time.RFC3339
)

// InitLogLevel configures the logging level.  The debug flag takes precedence if set,
// otherwise the logLevel flag (debug, info, warn, error, fatal) is used.
func InitLogLevel(debug bool, logLevel string) error {
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}
	return nil
}

// InitLogFormat configures the log format, allowing a choice of text or JSON.
func InitLogFormat(logFormat string) error {
	switch logFormat {
	case TextFormat:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true, TimestampFormat: defaultTimestampFormat})
	case JSONFormat:
		log.SetFormatter(&log.JSONFormatter{TimestampFormat: defaultTimestampFormat})
	default:
		return fmt.Errorf("unknown log format: %s", logFormat)
	}
	return nil
}

// Logc returns a log entry annotated with the request values carried by the supplied context.
func Logc(ctx context.Context) *log.Entry {
	entry := log.NewEntry(log.StandardLogger())

	if ctx == nil {
		return entry
	}
	if v := ctx.Value(ContextKeyRequestID); v != nil {
		entry = entry.WithField(string(ContextKeyRequestID), v)
	}
	if v := ctx.Value(ContextKeyRequestSource); v != nil {
		entry = entry.WithField(string(ContextKeyRequestSource), v)
	}

	return entry
}

// GenerateRequestContext returns a context with a request ID and request source set, generating
// a new request ID unless the supplied context already carries one.
func GenerateRequestContext(ctx context.Context, requestID, requestSource string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	} else {
		if v := ctx.Value(ContextKeyRequestID); v != nil {
			requestID = fmt.Sprint(v)
		}
		if v := ctx.Value(ContextKeyRequestSource); v != nil {
			requestSource = fmt.Sprint(v)
		}
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	if requestSource == "" {
		requestSource = "Unknown"
	}
	ctx = context.WithValue(ctx, ContextKeyRequestID, requestID)
	ctx = context.WithValue(ctx, ContextKeyRequestSource, requestSource)
	return ctx
}

