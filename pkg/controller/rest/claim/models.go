/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import (
	claimcmd "github.com/hyperledger/aries-claim-encoder/pkg/controller/command/claim"
)

// encodeClaimReq model for encoding a claim.
//
// swagger:parameters encodeClaimReq
type encodeClaimReq struct { //nolint: unused,deadcode
	// in: body
	Body claimcmd.EncodeClaimRequest
}

// encodeClaimResp model
//
// swagger:response encodeClaimResp
type encodeClaimResp struct { //nolint: unused,deadcode
	// in: body
	Body claimcmd.EncodeClaimResponse
}

// decodeClaimReq model for decoding a claim.
//
// swagger:parameters decodeClaimReq
type decodeClaimReq struct { //nolint: unused,deadcode
	// in: body
	Body claimcmd.DecodeClaimRequest
}

// decodeClaimResp model
//
// swagger:response decodeClaimResp
type decodeClaimResp struct { //nolint: unused,deadcode
	// in: body
	Body claimcmd.DecodeClaimResponse
}

// schemaHashReq model for deriving a schema hash.
//
// swagger:parameters schemaHashReq
type schemaHashReq struct { //nolint: unused,deadcode
	// in: body
	Body claimcmd.SchemaHashRequest
}

// schemaHashResp model
//
// swagger:response schemaHashResp
type schemaHashResp struct { //nolint: unused,deadcode
	// in: body
	Body claimcmd.SchemaHashResponse
}

// checkFieldElementsReq model for checking claim words against the scalar field.
//
// swagger:parameters checkFieldElementsReq
type checkFieldElementsReq struct { //nolint: unused,deadcode
	// in: body
	Body claimcmd.CheckFieldElementsRequest
}

// checkFieldElementsResp model
//
// swagger:response checkFieldElementsResp
type checkFieldElementsResp struct { //nolint: unused,deadcode
	// in: body
	Body claimcmd.CheckFieldElementsResponse
}

// parseFlagsReq model for reading a raw flags field.
//
// swagger:parameters parseFlagsReq
type parseFlagsReq struct { //nolint: unused,deadcode
	// in: path
	// required: true
	Flags uint32 `json:"flags"`
}

// parseFlagsResp model
//
// swagger:response parseFlagsResp
type parseFlagsResp struct { //nolint: unused,deadcode
	// in: body
	Body claimcmd.ParseFlagsResponse
}
