/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package claim-encoder-rest (Claim Encoder REST Server) encodes identity claims into their eight words.
//
//
// Terms Of Service:
//
//
//     Schemes: https
//     Version: 0.1.0
//     License: SPDX-License-Identifier: Apache-2.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package main

import (
	"github.com/spf13/cobra"

	"github.com/hyperledger/aries-claim-encoder/cmd/claim-encoder-rest/encodecmd"
	"github.com/hyperledger/aries-claim-encoder/cmd/claim-encoder-rest/startcmd"
	"github.com/hyperledger/aries-claim-encoder/pkg/common/log"
)

// This is an application which starts the claim encoder API on given port.
func main() {
	rootCmd := &cobra.Command{
		Use: "claim-encoder-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	logger := log.New("claim-encoder/rest")

	startCmd, err := startcmd.Cmd(&startcmd.HTTPServer{})
	if err != nil {
		logger.Fatalf(err.Error())
	}

	rootCmd.AddCommand(startCmd, encodecmd.Cmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("Failed to run claim-encoder-rest: %s", err)
	}
}
