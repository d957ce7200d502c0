// Package logger provides structured logging using zerolog.
//
// It supports JSON and console output, level configuration and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg, "billing-api").WithComponent("endpoint")
//	log.Debug("request sent", logger.Fields("method", "GET", "url", "/users/1"))
package logger
