/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	claimcmd "github.com/hyperledger/aries-claim-encoder/pkg/controller/command/claim"
	"github.com/hyperledger/aries-claim-encoder/pkg/controller/rest"
	claimrest "github.com/hyperledger/aries-claim-encoder/pkg/controller/rest/claim"
	"github.com/hyperledger/aries-claim-encoder/pkg/doc/claim"
)

const sampleEncodeRequest = `{
  "description": {
    "schemaHash": "42",
    "idPosition": "index",
    "id": "0x0a",
    "revocationNonce": "9"
  }
}`

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func TestNew(t *testing.T) {
	op := claimrest.New()
	require.NotNil(t, op)
	require.Equal(t, 5, len(op.GetRESTHandlers()))
}

func TestOperation_EncodeDecodeClaim(t *testing.T) {
	op := claimrest.New()

	handler := lookupHandler(t, op, claimrest.EncodeClaimPath, http.MethodPost)
	buf, code := sendRequestToHandler(t, handler, strings.NewReader(sampleEncodeRequest), claimrest.EncodeClaimPath)
	require.Equal(t, http.StatusOK, code)

	var encoded claimcmd.EncodeClaimResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &encoded))

	words := encoded.Claim.Words()
	word0 := new(big.Int).Lsh(big.NewInt(2), 128)
	require.Equal(t, word0.Or(word0, big.NewInt(42)).String(), words[0].String())
	require.Equal(t, "10", words[1].String())
	require.Equal(t, "9", words[4].String())

	reqBytes, err := json.Marshal(map[string]string{"hex": encoded.Hex})
	require.NoError(t, err)

	handler = lookupHandler(t, op, claimrest.DecodeClaimPath, http.MethodPost)
	buf, code = sendRequestToHandler(t, handler, bytes.NewBuffer(reqBytes), claimrest.DecodeClaimPath)
	require.Equal(t, http.StatusOK, code)

	var decoded claimcmd.DecodeClaimResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, claim.PositionIndex, decoded.Description.IDPosition)
	require.Equal(t, "10", decoded.Description.ID.String())
	require.Equal(t, uint64(9), decoded.Description.RevocationNonce)
}

func TestOperation_EncodeClaimErrors(t *testing.T) {
	handler := lookupHandler(t, claimrest.New(), claimrest.EncodeClaimPath, http.MethodPost)

	t.Run("invalid description", func(t *testing.T) {
		buf, code := sendRequestToHandler(t, handler,
			strings.NewReader(`{"description":{"version":1}}`), claimrest.EncodeClaimPath)
		require.Equal(t, http.StatusBadRequest, code)

		var body errorBody
		require.NoError(t, json.Unmarshal(buf.Bytes(), &body))
		require.Equal(t, int(claimcmd.EncodeClaimErrorCode), body.Code)
		require.Contains(t, body.Message, claim.ErrVersionShouldBeZero.Error())
	})

	t.Run("malformed body", func(t *testing.T) {
		buf, code := sendRequestToHandler(t, handler, strings.NewReader("{"), claimrest.EncodeClaimPath)
		require.Equal(t, http.StatusBadRequest, code)

		var body errorBody
		require.NoError(t, json.Unmarshal(buf.Bytes(), &body))
		require.Equal(t, int(claimcmd.InvalidRequestErrorCode), body.Code)
	})

	t.Run("field check enabled", func(t *testing.T) {
		h := lookupHandler(t, claimrest.New(claimcmd.WithFieldCheck(true)), claimrest.EncodeClaimPath, http.MethodPost)

		req := `{"description":{"valueDataSlotB":"0x4000000000000000000000000000000000000000000000000000000000000000"}}`

		buf, code := sendRequestToHandler(t, h, strings.NewReader(req), claimrest.EncodeClaimPath)
		require.Equal(t, http.StatusBadRequest, code)

		var body errorBody
		require.NoError(t, json.Unmarshal(buf.Bytes(), &body))
		require.Equal(t, int(claimcmd.FieldCheckErrorCode), body.Code)
	})
}

func TestOperation_SchemaHash(t *testing.T) {
	handler := lookupHandler(t, claimrest.New(), claimrest.SchemaHashPath, http.MethodPost)

	buf, code := sendRequestToHandler(t, handler,
		strings.NewReader(`{"schemaId":"urn:schema:1#Type"}`), claimrest.SchemaHashPath)
	require.Equal(t, http.StatusOK, code)

	var resp claimcmd.SchemaHashResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Equal(t, claim.SchemaHashFromID("urn:schema:1#Type").String(), resp.SchemaHash)

	_, code = sendRequestToHandler(t, handler, strings.NewReader(`{}`), claimrest.SchemaHashPath)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestOperation_CheckFieldElements(t *testing.T) {
	handler := lookupHandler(t, claimrest.New(), claimrest.CheckFieldElementsPath, http.MethodPost)

	buf, code := sendRequestToHandler(t, handler,
		strings.NewReader(`{"claim":["1","2","3","4","5","6","7","8"]}`), claimrest.CheckFieldElementsPath)
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, buf.String(), `"valid":true`)

	maxWord := "0x" + strings.Repeat("f", 64)

	buf, code = sendRequestToHandler(t, handler,
		strings.NewReader(`{"claim":["0","`+maxWord+`","0","0","0","0","0","0"]}`), claimrest.CheckFieldElementsPath)
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, buf.String(), "word 1")
}

func TestOperation_ParseFlags(t *testing.T) {
	handler := lookupHandler(t, claimrest.New(), claimrest.ParseFlagsPath, http.MethodGet)

	buf, code := sendRequestToHandler(t, handler, nil, "/claims/flags/42")
	require.Equal(t, http.StatusOK, code)

	var resp claimcmd.ParseFlagsResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Equal(t, claim.Flags{Subject: claim.PositionIndex, Expirable: true, Merklized: claim.PositionIndex}, resp.Flags)

	_, code = sendRequestToHandler(t, handler, nil, "/claims/flags/1")
	require.Equal(t, http.StatusBadRequest, code)

	_, code = sendRequestToHandler(t, handler, nil, "/claims/flags/99999999999")
	require.Equal(t, http.StatusBadRequest, code)

	_, code = sendRequestToHandler(t, handler, nil, "/claims/flags/abc")
	require.Equal(t, http.StatusNotFound, code)
}

func lookupHandler(t *testing.T, op *claimrest.Operation, path, method string) rest.Handler {
	t.Helper()

	handlers := op.GetRESTHandlers()
	require.NotEmpty(t, handlers)

	for _, h := range handlers {
		if h.Path() == path && h.Method() == method {
			return h
		}
	}

	require.Fail(t, "unable to find handler")

	return nil
}

func sendRequestToHandler(t *testing.T, handler rest.Handler, requestBody io.Reader, path string) (*bytes.Buffer, int) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), handler.Method(), path, requestBody)
	require.NoError(t, err)

	router := mux.NewRouter()

	router.HandleFunc(handler.Path(), handler.Handle()).Methods(handler.Method())

	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	return rr.Body, rr.Code
}
