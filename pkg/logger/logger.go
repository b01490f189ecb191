// Package logger provides the zap-based application logger.
package logger

import "go.uber.org/zap"

// Log is the global zap logger used across the project. It is a no-op
// logger until Init is called, so packages can log from tests safely.
var Log = zap.NewNop()

// Init configures the global logger. Development mode gives human readable
// console output; anything else uses the production JSON encoder.
func Init(env string) {
	var (
		l   *zap.Logger
		err error
	)
	if env == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	Log = l
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Log.Sync()
}
