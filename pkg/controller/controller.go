/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package controller collects the command and REST handlers of the claim encoder.
package controller

import (
	"github.com/hyperledger/aries-claim-encoder/pkg/controller/command"
	claimcmd "github.com/hyperledger/aries-claim-encoder/pkg/controller/command/claim"
	"github.com/hyperledger/aries-claim-encoder/pkg/controller/rest"
	claimrest "github.com/hyperledger/aries-claim-encoder/pkg/controller/rest/claim"
)

type allOpts struct {
	fieldCheck      bool
	schemaCacheSize *int
}

// Opt represents a controller option.
type Opt func(opts *allOpts)

// WithFieldCheck is an option requiring every encoded claim word to be a BN254 scalar field element.
func WithFieldCheck(enabled bool) Opt {
	return func(opts *allOpts) {
		opts.fieldCheck = enabled
	}
}

// WithSchemaCacheSize is an option setting how many derived schema hashes are cached.
func WithSchemaCacheSize(size int) Opt {
	return func(opts *allOpts) {
		opts.schemaCacheSize = &size
	}
}

// GetRESTHandlers returns all REST handlers provided by controller.
func GetRESTHandlers(opts ...Opt) []rest.Handler {
	restAPIOpts := collect(opts)

	claimOp := claimrest.New(restAPIOpts.commandOpts()...)

	var allHandlers []rest.Handler
	allHandlers = append(allHandlers, claimOp.GetRESTHandlers()...)

	return allHandlers
}

// GetCommandHandlers returns all command handlers provided by controller.
func GetCommandHandlers(opts ...Opt) []command.Handler {
	cmdOpts := collect(opts)

	claimCmd := claimcmd.New(cmdOpts.commandOpts()...)

	var allHandlers []command.Handler
	allHandlers = append(allHandlers, claimCmd.GetHandlers()...)

	return allHandlers
}

func collect(opts []Opt) *allOpts {
	o := &allOpts{}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *allOpts) commandOpts() []claimcmd.Option {
	opts := []claimcmd.Option{claimcmd.WithFieldCheck(o.fieldCheck)}

	if o.schemaCacheSize != nil {
		opts = append(opts, claimcmd.WithSchemaCacheSize(*o.schemaCacheSize))
	}

	return opts
}
