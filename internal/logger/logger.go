package logger

import (
	"go.uber.org/zap"
)

// NewNamed creates an environment-appropriate zap logger named after the
// service. Development gets human-readable console output; everything else
// gets production JSON.
func NewNamed(env, name string) (*zap.Logger, error) {
	var log *zap.Logger
	var err error
	if env == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
