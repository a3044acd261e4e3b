// Package logging constructs the zap logger used across the service,
// selecting production or development defaults by environment.
package logging

import "go.uber.org/zap"

// New builds a *zap.Logger appropriate for environment: JSON, info-level
// output for "production"/"staging", human-readable debug output
// otherwise.
func New(environment string) (*zap.Logger, error) {
	switch environment {
	case "production", "staging":
		return zap.NewProduction()
	default:
		return zap.NewDevelopment()
	}
}

// Named returns logger scoped to name with an operation field attached,
// the convention used at every call site that logs around a single
// pipeline stage.
func Named(logger *zap.Logger, name, operation string) *zap.Logger {
	return logger.Named(name).With(zap.String("operation", operation))
}
