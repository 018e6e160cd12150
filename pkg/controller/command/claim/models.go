/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import (
	"github.com/hyperledger/aries-claim-encoder/pkg/doc/claim"
)

// EncodeClaimRequest is model for encoding a claim description.
type EncodeClaimRequest struct {
	// Description of the claim. Integers may be JSON numbers, decimal strings or 0x hex strings.
	Description *claim.Description `json:"description"`

	// CheckField also requires every word to be a BN254 field element.
	CheckField bool `json:"checkField,omitempty"`
}

// EncodeClaimResponse is model for an encoded claim.
type EncodeClaimResponse struct {
	// Claim words as decimal strings, word 0 first.
	Claim claim.Claim `json:"claim"`

	// Hex is the 256 byte wire image.
	Hex string `json:"hex"`

	Index []string `json:"index"`
	Value []string `json:"value"`
}

// ClaimArgs identifies an encoded claim either by its words or by its hex wire image.
type ClaimArgs struct {
	Claim *claim.Claim `json:"claim,omitempty"`
	Hex   string       `json:"hex,omitempty"`
}

// DecodeClaimRequest is model for decoding a claim.
type DecodeClaimRequest struct {
	ClaimArgs
}

// DecodeClaimResponse is model for a decoded claim.
type DecodeClaimResponse struct {
	Description *claim.Description `json:"description"`
	Flags       claim.Flags        `json:"flags"`
	RawFlags    uint32             `json:"rawFlags"`
}

// SchemaHashRequest is model for deriving a schema hash.
type SchemaHashRequest struct {
	SchemaID string `json:"schemaId"`
}

// SchemaHashResponse is model for a derived schema hash.
type SchemaHashResponse struct {
	// SchemaHash as a decimal string.
	SchemaHash string `json:"schemaHash"`

	// Hex is the 16 byte little-endian image written to word 0.
	Hex string `json:"hex"`
}

// CheckFieldElementsRequest is model for checking claim words against the BN254 scalar field.
type CheckFieldElementsRequest struct {
	ClaimArgs
}

// CheckFieldElementsResponse is model for a field check result.
type CheckFieldElementsResponse struct {
	Valid bool `json:"valid"`
}

// ParseFlagsRequest is model for reading a raw flags field.
type ParseFlagsRequest struct {
	Flags uint32 `json:"flags"`
}

// ParseFlagsResponse is model for parsed flags.
type ParseFlagsResponse struct {
	Flags claim.Flags `json:"flags"`
}
