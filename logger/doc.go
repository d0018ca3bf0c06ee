// Package logger provides structured logging for errkit built on zerolog.
//
// The translate package logs every translated condition through a *Logger;
// host services construct one from config and hand it to the registry
// builder:
//
//	log := logger.New(&logger.Config{Level: "info", Format: "json"}, "my-service")
//	reg, err := translate.NewBuilder().WithLogger(log).Build()
//
// Nop() returns a logger that discards everything; it is the default when no
// logger is configured.
package logger
