/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	claimcmd "github.com/hyperledger/aries-claim-encoder/pkg/controller/command/claim"
	"github.com/hyperledger/aries-claim-encoder/pkg/controller/internal/cmdutil"
	"github.com/hyperledger/aries-claim-encoder/pkg/controller/rest"
)

// constants for the claim operations.
const (
	OperationID            = "/claims"
	EncodeClaimPath        = OperationID + "/encode"
	DecodeClaimPath        = OperationID + "/decode"
	SchemaHashPath         = OperationID + "/schema-hash"
	CheckFieldElementsPath = OperationID + "/check-field"
	ParseFlagsPath         = OperationID + "/flags/{flags:[0-9]+}"
)

// Operation contains REST operations provided by the claim API.
type Operation struct {
	handlers []rest.Handler
	command  *claimcmd.Command
}

// New returns a new instance of the claim REST controller.
func New(opts ...claimcmd.Option) *Operation {
	op := &Operation{command: claimcmd.New(opts...)}
	op.registerHandlers()

	return op
}

func (o *Operation) registerHandlers() {
	o.handlers = []rest.Handler{
		cmdutil.NewHTTPHandler(EncodeClaimPath, http.MethodPost, o.EncodeClaim),
		cmdutil.NewHTTPHandler(DecodeClaimPath, http.MethodPost, o.DecodeClaim),
		cmdutil.NewHTTPHandler(SchemaHashPath, http.MethodPost, o.SchemaHash),
		cmdutil.NewHTTPHandler(CheckFieldElementsPath, http.MethodPost, o.CheckFieldElements),
		cmdutil.NewHTTPHandler(ParseFlagsPath, http.MethodGet, o.ParseFlags),
	}
}

// GetRESTHandlers gets all controller API handlers available for this service.
func (o *Operation) GetRESTHandlers() []rest.Handler {
	return o.handlers
}

// EncodeClaim swagger:route POST /claims/encode claim encodeClaimReq
//
// Encodes a claim description into the eight words of a claim.
//
// Responses:
//    default: genericError
//    200: encodeClaimResp
func (o *Operation) EncodeClaim(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.EncodeClaim, rw, req.Body)
}

// DecodeClaim swagger:route POST /claims/decode claim decodeClaimReq
//
// Decodes a claim given as words or as its hex wire image.
//
// Responses:
//    default: genericError
//    200: decodeClaimResp
func (o *Operation) DecodeClaim(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.DecodeClaim, rw, req.Body)
}

// SchemaHash swagger:route POST /claims/schema-hash claim schemaHashReq
//
// Derives the schema hash of a schema identifier.
//
// Responses:
//    default: genericError
//    200: schemaHashResp
func (o *Operation) SchemaHash(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.SchemaHash, rw, req.Body)
}

// CheckFieldElements swagger:route POST /claims/check-field claim checkFieldElementsReq
//
// Checks that every word of a claim is a BN254 scalar field element.
//
// Responses:
//    default: genericError
//    200: checkFieldElementsResp
func (o *Operation) CheckFieldElements(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.CheckFieldElements, rw, req.Body)
}

// ParseFlags swagger:route GET /claims/flags/{flags} claim parseFlagsReq
//
// Reads a raw flags field.
//
// Responses:
//    default: genericError
//    200: parseFlagsResp
func (o *Operation) ParseFlags(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.ParseFlags, rw, bytes.NewBufferString(fmt.Sprintf(`{
		"flags":%s
	}`, mux.Vars(req)["flags"])))
}
