/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import (
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/hyperledger/aries-claim-encoder/pkg/doc/util/bytesutil"
)

// SchemaHashFromID derives the 128-bit schema hash of a schema identifier
// (typically "<schema URL>#<type>"): the last 16 bytes of its keccak-256 digest, read little-endian.
func SchemaHashFromID(schemaID string) *big.Int {
	h := sha3.NewLegacyKeccak256()

	// hash.Hash.Write never returns an error.
	_, _ = h.Write([]byte(schemaID))
	sum := h.Sum(nil)

	return new(big.Int).SetBytes(bytesutil.SwapEndianness(sum[len(sum)-SchemaHashSize:]))
}
