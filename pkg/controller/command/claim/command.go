/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/bluele/gcache"

	"github.com/hyperledger/aries-claim-encoder/pkg/common/log"
	"github.com/hyperledger/aries-claim-encoder/pkg/controller/command"
	"github.com/hyperledger/aries-claim-encoder/pkg/controller/internal/cmdutil"
	"github.com/hyperledger/aries-claim-encoder/pkg/doc/claim"
	"github.com/hyperledger/aries-claim-encoder/pkg/internal/logutil"
)

var logger = log.New("claim-encoder/command/claim")

// Error codes.
const (
	// InvalidRequestErrorCode is typically a code for invalid requests.
	InvalidRequestErrorCode = command.Code(iota + command.Claim)

	// EncodeClaimErrorCode for claim encoding errors.
	EncodeClaimErrorCode

	// DecodeClaimErrorCode for claim decoding errors.
	DecodeClaimErrorCode

	// FieldCheckErrorCode for claims with words outside the BN254 scalar field.
	FieldCheckErrorCode
)

// constants for the claim controller's methods.
const (
	// command name.
	CommandName = "claim"

	// command methods.
	EncodeClaimCommandMethod        = "EncodeClaim"
	DecodeClaimCommandMethod        = "DecodeClaim"
	SchemaHashCommandMethod         = "SchemaHash"
	CheckFieldElementsCommandMethod = "CheckFieldElements"
	ParseFlagsCommandMethod         = "ParseFlags"

	// error messages.
	errEmptyDescription = "description is mandatory"
	errEmptyClaim       = "claim or hex is mandatory"
	errAmbiguousClaim   = "only one of claim and hex may be set"
	errEmptySchemaID    = "schema id is mandatory"

	// log constants.
	schemaIDString = "schemaId"
	flagsString    = "flags"

	defaultSchemaCacheSize = 256
)

// Option configures the claim command.
type Option func(opts *Command)

// WithFieldCheck makes EncodeClaim reject claims with words outside the BN254 scalar field
// regardless of the request.
func WithFieldCheck(enabled bool) Option {
	return func(opts *Command) {
		opts.fieldCheck = enabled
	}
}

// WithSchemaCacheSize sets how many schema hashes SchemaHash keeps. Zero disables the cache.
func WithSchemaCacheSize(size int) Option {
	return func(opts *Command) {
		opts.schemaCacheSize = size
	}
}

// Command contains command operations provided by the claim controller.
type Command struct {
	fieldCheck      bool
	schemaCacheSize int
	schemaHashes    gcache.Cache
}

// New returns new claim controller command instance.
func New(opts ...Option) *Command {
	cmd := &Command{schemaCacheSize: defaultSchemaCacheSize}

	for _, opt := range opts {
		opt(cmd)
	}

	if cmd.schemaCacheSize > 0 {
		cmd.schemaHashes = gcache.New(cmd.schemaCacheSize).LRU().Build()
	}

	return cmd
}

// GetHandlers returns list of all commands supported by this controller command.
func (c *Command) GetHandlers() []command.Handler {
	return []command.Handler{
		cmdutil.NewCommandHandler(CommandName, EncodeClaimCommandMethod, c.EncodeClaim),
		cmdutil.NewCommandHandler(CommandName, DecodeClaimCommandMethod, c.DecodeClaim),
		cmdutil.NewCommandHandler(CommandName, SchemaHashCommandMethod, c.SchemaHash),
		cmdutil.NewCommandHandler(CommandName, CheckFieldElementsCommandMethod, c.CheckFieldElements),
		cmdutil.NewCommandHandler(CommandName, ParseFlagsCommandMethod, c.ParseFlags),
	}
}

// EncodeClaim encodes a claim description into its eight words.
func (c *Command) EncodeClaim(rw io.Writer, req io.Reader) command.Error {
	var request EncodeClaimRequest

	err := json.NewDecoder(req).Decode(&request)
	if err != nil {
		logutil.LogInfo(logger, CommandName, EncodeClaimCommandMethod, err.Error())

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf("request decode : %w", err))
	}

	if request.Description == nil {
		logutil.LogDebug(logger, CommandName, EncodeClaimCommandMethod, errEmptyDescription)

		return command.NewValidationError(InvalidRequestErrorCode, errors.New(errEmptyDescription))
	}

	encoded, err := claim.Encode(request.Description)
	if err != nil {
		logutil.LogError(logger, CommandName, EncodeClaimCommandMethod, err.Error())

		return command.NewValidationError(EncodeClaimErrorCode, fmt.Errorf("encode claim : %w", err))
	}

	if c.fieldCheck || request.CheckField {
		if err = encoded.CheckFieldElements(); err != nil {
			logutil.LogError(logger, CommandName, EncodeClaimCommandMethod, err.Error())

			return command.NewValidationError(FieldCheckErrorCode, err)
		}
	}

	text, err := encoded.MarshalText()
	if err != nil {
		logutil.LogError(logger, CommandName, EncodeClaimCommandMethod, err.Error())

		return command.NewExecuteError(EncodeClaimErrorCode, err)
	}

	command.WriteNillableResponse(rw, &EncodeClaimResponse{
		Claim: encoded,
		Hex:   string(text),
		Index: decimals(encoded.IndexWords()),
		Value: decimals(encoded.ValueWords()),
	}, logger)

	logutil.LogDebug(logger, CommandName, EncodeClaimCommandMethod, "success",
		logutil.CreateKeyValueString(flagsString, fmt.Sprint(rawFlags(encoded))))

	return nil
}

// DecodeClaim reads the description back out of an encoded claim.
func (c *Command) DecodeClaim(rw io.Writer, req io.Reader) command.Error {
	var request DecodeClaimRequest

	err := json.NewDecoder(req).Decode(&request)
	if err != nil {
		logutil.LogInfo(logger, CommandName, DecodeClaimCommandMethod, err.Error())

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf("request decode : %w", err))
	}

	encoded, cmdErr := readClaim(request.ClaimArgs, DecodeClaimCommandMethod)
	if cmdErr != nil {
		return cmdErr
	}

	desc, err := encoded.Description()
	if err != nil {
		logutil.LogError(logger, CommandName, DecodeClaimCommandMethod, err.Error())

		return command.NewValidationError(DecodeClaimErrorCode, err)
	}

	flags, err := desc.Flags()
	if err != nil {
		logutil.LogError(logger, CommandName, DecodeClaimCommandMethod, err.Error())

		return command.NewExecuteError(DecodeClaimErrorCode, err)
	}

	command.WriteNillableResponse(rw, &DecodeClaimResponse{
		Description: desc,
		Flags:       flags,
		RawFlags:    flags.Uint32(),
	}, logger)

	logutil.LogDebug(logger, CommandName, DecodeClaimCommandMethod, "success")

	return nil
}

// SchemaHash derives the schema hash of a schema identifier.
func (c *Command) SchemaHash(rw io.Writer, req io.Reader) command.Error {
	var request SchemaHashRequest

	err := json.NewDecoder(req).Decode(&request)
	if err != nil {
		logutil.LogInfo(logger, CommandName, SchemaHashCommandMethod, err.Error())

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf("request decode : %w", err))
	}

	if strings.TrimSpace(request.SchemaID) == "" {
		logutil.LogDebug(logger, CommandName, SchemaHashCommandMethod, errEmptySchemaID)

		return command.NewValidationError(InvalidRequestErrorCode, errors.New(errEmptySchemaID))
	}

	hash := c.schemaHash(request.SchemaID)

	word, err := claim.NewWord(hash)
	if err != nil {
		logutil.LogError(logger, CommandName, SchemaHashCommandMethod, err.Error(),
			logutil.CreateKeyValueString(schemaIDString, request.SchemaID))

		return command.NewExecuteError(EncodeClaimErrorCode, err)
	}

	command.WriteNillableResponse(rw, &SchemaHashResponse{
		SchemaHash: hash.String(),
		Hex:        hex.EncodeToString(word[:claim.SchemaHashSize]),
	}, logger)

	logutil.LogDebug(logger, CommandName, SchemaHashCommandMethod, "success",
		logutil.CreateKeyValueString(schemaIDString, request.SchemaID))

	return nil
}

// CheckFieldElements checks that every word of a claim is a BN254 scalar field element.
func (c *Command) CheckFieldElements(rw io.Writer, req io.Reader) command.Error {
	var request CheckFieldElementsRequest

	err := json.NewDecoder(req).Decode(&request)
	if err != nil {
		logutil.LogInfo(logger, CommandName, CheckFieldElementsCommandMethod, err.Error())

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf("request decode : %w", err))
	}

	encoded, cmdErr := readClaim(request.ClaimArgs, CheckFieldElementsCommandMethod)
	if cmdErr != nil {
		return cmdErr
	}

	if err = encoded.CheckFieldElements(); err != nil {
		logutil.LogInfo(logger, CommandName, CheckFieldElementsCommandMethod, err.Error())

		return command.NewValidationError(FieldCheckErrorCode, err)
	}

	command.WriteNillableResponse(rw, &CheckFieldElementsResponse{Valid: true}, logger)

	return nil
}

// ParseFlags reads a raw flags field.
func (c *Command) ParseFlags(rw io.Writer, req io.Reader) command.Error {
	var request ParseFlagsRequest

	err := json.NewDecoder(req).Decode(&request)
	if err != nil {
		logutil.LogInfo(logger, CommandName, ParseFlagsCommandMethod, err.Error())

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf("request decode : %w", err))
	}

	flags, err := claim.ParseFlags(request.Flags)
	if err != nil {
		logutil.LogDebug(logger, CommandName, ParseFlagsCommandMethod, err.Error(),
			logutil.CreateKeyValueString(flagsString, fmt.Sprint(request.Flags)))

		return command.NewValidationError(DecodeClaimErrorCode, err)
	}

	command.WriteNillableResponse(rw, &ParseFlagsResponse{Flags: flags}, logger)

	return nil
}

func (c *Command) schemaHash(schemaID string) *big.Int {
	if c.schemaHashes == nil {
		return claim.SchemaHashFromID(schemaID)
	}

	if v, err := c.schemaHashes.Get(schemaID); err == nil {
		if hash, ok := v.(*big.Int); ok {
			return new(big.Int).Set(hash)
		}
	}

	hash := claim.SchemaHashFromID(schemaID)

	if err := c.schemaHashes.Set(schemaID, new(big.Int).Set(hash)); err != nil {
		logutil.LogWarn(logger, CommandName, SchemaHashCommandMethod, err.Error(),
			logutil.CreateKeyValueString(schemaIDString, schemaID))
	}

	return hash
}

func readClaim(args ClaimArgs, method string) (claim.Claim, command.Error) {
	switch {
	case args.Claim != nil && args.Hex != "":
		logutil.LogDebug(logger, CommandName, method, errAmbiguousClaim)

		return claim.Claim{}, command.NewValidationError(InvalidRequestErrorCode, errors.New(errAmbiguousClaim))
	case args.Claim != nil:
		return *args.Claim, nil
	case args.Hex != "":
		var c claim.Claim

		if err := c.UnmarshalText([]byte(strings.TrimPrefix(args.Hex, "0x"))); err != nil {
			logutil.LogInfo(logger, CommandName, method, err.Error())

			return claim.Claim{}, command.NewValidationError(InvalidRequestErrorCode, err)
		}

		return c, nil
	default:
		logutil.LogDebug(logger, CommandName, method, errEmptyClaim)

		return claim.Claim{}, command.NewValidationError(InvalidRequestErrorCode, errors.New(errEmptyClaim))
	}
}

func decimals(words [4]*big.Int) []string {
	out := make([]string, len(words))

	for i, w := range words {
		out[i] = w.String()
	}

	return out
}

func rawFlags(c claim.Claim) uint32 {
	f, err := c.Flags()
	if err != nil {
		return 0
	}

	return f.Uint32()
}
