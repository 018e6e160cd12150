/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cmdutil adapts plain functions to the command and REST handler interfaces.
//
// The claim command registers EncodeClaim, DecodeClaim, SchemaHash, CheckFieldElements
// and ParseFlags as CommandHandlers under the "claim" command name. The REST claim
// operation exposes the same methods as HTTPHandlers under /claims.
package cmdutil

import (
	"net/http"

	"github.com/hyperledger/aries-claim-encoder/pkg/controller/command"
)

// NewHTTPHandler returns an HTTPHandler serving method requests on path,
// for example POST /claims/encode.
func NewHTTPHandler(path, method string, handle http.HandlerFunc) *HTTPHandler {
	return &HTTPHandler{path: path, method: method, handle: handle}
}

// HTTPHandler binds one claim REST endpoint to its handler func.
// The REST server registers every HTTPHandler on the gorilla/mux router.
type HTTPHandler struct {
	path   string
	method string
	handle http.HandlerFunc
}

// Path returns http request path.
func (h *HTTPHandler) Path() string {
	return h.path
}

// Method returns http request method type.
func (h *HTTPHandler) Method() string {
	return h.method
}

// Handle returns http request handle func.
func (h *HTTPHandler) Handle() http.HandlerFunc {
	return h.handle
}

// NewCommandHandler returns a CommandHandler running exec for the name/method pair,
// for example "claim"/"EncodeClaim".
func NewCommandHandler(name, method string, exec command.Exec) *CommandHandler {
	return &CommandHandler{name: name, method: method, handle: exec}
}

// CommandHandler binds one claim command method to its Exec.
// Exec reads a JSON request and writes a JSON response.
type CommandHandler struct {
	name   string
	method string
	handle command.Exec
}

// Name of the command.
func (c *CommandHandler) Name() string {
	return c.name
}

// Method name of the command.
func (c *CommandHandler) Method() string {
	return c.method
}

// Handle returns execute function of the command handler.
func (c *CommandHandler) Handle() command.Exec {
	return c.handle
}
