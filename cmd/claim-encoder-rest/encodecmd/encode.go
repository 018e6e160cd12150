/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package encodecmd encodes claim descriptions offline, without starting the REST server.
package encodecmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hyperledger/aries-claim-encoder/pkg/common/log"
	"github.com/hyperledger/aries-claim-encoder/pkg/doc/claim"
)

const (
	inputFlagName      = "input"
	inputFlagShorthand = "i"
	inputFlagUsage     = "Path of the claim description JSON file. Use - to read from stdin."

	formatFlagName      = "format"
	formatFlagShorthand = "f"
	formatFlagUsage     = "Output format. Possible values [words] [hex] [json]. Defaults to words."

	checkFieldFlagName  = "check-field"
	checkFieldFlagUsage = "Fail when a word is outside the BN254 scalar field."

	stdinName = "-"

	formatWords = "words"
	formatHex   = "hex"
	formatJSON  = "json"
)

var logger = log.New("claim-encoder/encode")

// Cmd returns the Cobra encode command.
func Cmd() *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a claim description",
		Long:  `Encode a claim description into its eight words and print them`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := cmd.Flags().GetString(inputFlagName)
			if err != nil {
				return err
			}

			format, err := cmd.Flags().GetString(formatFlagName)
			if err != nil {
				return err
			}

			checkField, err := cmd.Flags().GetBool(checkFieldFlagName)
			if err != nil {
				return err
			}

			data, err := readInput(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}

			c, err := encode(data, checkField)
			if err != nil {
				return err
			}

			return write(cmd.OutOrStdout(), c, format)
		},
	}

	encodeCmd.Flags().StringP(inputFlagName, inputFlagShorthand, stdinName, inputFlagUsage)
	encodeCmd.Flags().StringP(formatFlagName, formatFlagShorthand, formatWords, formatFlagUsage)
	encodeCmd.Flags().Bool(checkFieldFlagName, false, checkFieldFlagUsage)

	return encodeCmd
}

func readInput(stdin io.Reader, input string) ([]byte, error) {
	if input == stdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read description from stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(input) // nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("read description: %w", err)
	}

	return data, nil
}

func encode(data []byte, checkField bool) (claim.Claim, error) {
	d, err := claim.ParseDescription(data)
	if err != nil {
		return claim.Claim{}, fmt.Errorf("parse description: %w", err)
	}

	c, err := claim.Encode(d)
	if err != nil {
		return claim.Claim{}, fmt.Errorf("encode claim: %w", err)
	}

	if checkField {
		if err = c.CheckFieldElements(); err != nil {
			return claim.Claim{}, err
		}
	}

	logger.Debugf("encoded claim with schema hash %s", d.SchemaHash)

	return c, nil
}

func write(w io.Writer, c claim.Claim, format string) error {
	var out string

	switch strings.ToLower(format) {
	case formatWords:
		var sb strings.Builder

		for _, word := range c.Words() {
			sb.WriteString(word.String())
			sb.WriteByte('\n')
		}

		out = sb.String()
	case formatHex:
		text, err := c.MarshalText()
		if err != nil {
			return err
		}

		out = string(text) + "\n"
	case formatJSON:
		data, err := json.Marshal(c)
		if err != nil {
			return err
		}

		out = string(data) + "\n"
	default:
		return fmt.Errorf("output format [%s] not supported", format)
	}

	_, err := io.WriteString(w, out)

	return err
}
