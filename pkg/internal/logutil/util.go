/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package logutil formats controller log lines as key/value pairs.
package logutil

import (
	"fmt"
	"strings"

	"github.com/hyperledger/aries-claim-encoder/pkg/common/log"
)

// LogError is a utility function to log error messages.
func LogError(logger *log.Log, command, action, errMsg string, data ...string) {
	logger.Errorf("command=[%s] action=[%s] %s errMsg=[%s]", command, action, join(data), errMsg)
}

// LogWarn is a utility function to log warnings.
func LogWarn(logger *log.Log, command, action, msg string, data ...string) {
	logger.Warnf("command=[%s] action=[%s] %s msg=[%s]", command, action, join(data), msg)
}

// LogDebug is a utility function to log debug messages.
func LogDebug(logger *log.Log, command, action, msg string, data ...string) {
	logger.Debugf("command=[%s] action=[%s] %s msg=[%s]", command, action, join(data), msg)
}

// LogInfo is a utility function to log info messages.
func LogInfo(logger *log.Log, command, action, msg string, data ...string) {
	logger.Infof("command=[%s] action=[%s] %s msg=[%s]", command, action, join(data), msg)
}

// CreateKeyValueString creates a concatenated string.
func CreateKeyValueString(key, val string) string {
	return fmt.Sprintf("%s=[%s]", key, val)
}

func join(data []string) string {
	return strings.Join(data, " ")
}
