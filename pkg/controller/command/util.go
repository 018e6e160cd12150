/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package command

import (
	"encoding/json"
	"io"

	"github.com/hyperledger/aries-framework-go/spi/log"
)

// WriteNillableResponse writes v to w as JSON.
// If v is nil then an empty object is written.
//
// Claim command methods answer through it: claim words are written as decimal strings
// so 256-bit values survive JSON clients that read numbers as float64.
// Write failures are only logged, the command has already succeeded.
func WriteNillableResponse(w io.Writer, v interface{}, l log.Logger) {
	obj := v
	if v == nil {
		obj = map[string]interface{}{}
	}

	if err := json.NewEncoder(w).Encode(obj); err != nil {
		l.Errorf("Unable to write command response, %s", err)
	}
}
