/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package log provides module based loggers for the claim encoder.
//
// Loggers are created per module with New and write through the aries logging component.
// A custom logging provider may be installed with Initialize before the first log line.
package log

import (
	"github.com/hyperledger/aries-framework-go/component/log"
	spilog "github.com/hyperledger/aries-framework-go/spi/log"
)

// Log is a module logger.
type Log = log.Log

// Level is a log level.
type Level = spilog.Level

// Logger is the interface a custom logger implements.
type Logger = spilog.Logger

// LoggerProvider creates loggers for modules.
type LoggerProvider = spilog.LoggerProvider

// Log levels.
const (
	CRITICAL = spilog.CRITICAL
	ERROR    = spilog.ERROR
	WARNING  = spilog.WARNING
	INFO     = spilog.INFO
	DEBUG    = spilog.DEBUG
)

// New returns a logger for the given module.
// The underlying logger is created on first use.
func New(module string) *Log {
	return log.New(module)
}

// Initialize installs a custom logging provider. It must be called before any logging happens.
func Initialize(l LoggerProvider) {
	log.Initialize(l)
}

// SetLevel sets the log level of a module. An empty module sets the default level.
func SetLevel(module string, level Level) {
	log.SetLevel(module, level)
}

// GetLevel returns the log level of a module.
func GetLevel(module string) Level {
	return log.GetLevel(module)
}

// ParseLevel parses a level name such as "DEBUG" or "warning".
func ParseLevel(level string) (Level, error) {
	return log.ParseLevel(level)
}

// IsEnabledFor reports whether level is enabled for module.
func IsEnabledFor(module string, level Level) bool {
	return log.IsEnabledFor(module, level)
}
