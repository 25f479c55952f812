// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package logging

import (
	log "github.com/sirupsen/logrus"
)

const (
	ContextKeyRequestID     ContextKey = "requestID"
	ContextKeyRequestSource ContextKey = "requestSource"

	ContextSourceCLI      = "CLI"
	ContextSourceInternal = "Internal"
	ContextSourcePeriodic = "Periodic"
)

// ContextKey is used for context.Context values. The value requires a key that is not a primitive type.
type ContextKey string

// LogFields aliases logrus fields so call sites stay terse.
type LogFields = log.Fields
