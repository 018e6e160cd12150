/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import (
	"fmt"
	"math/big"

	ml "github.com/IBM/mathlib"
)

// FieldOrder returns the order of the BN254 scalar field the claim words are hashed over.
func FieldOrder() *big.Int {
	return new(big.Int).SetBytes(ml.Curves[ml.BN254].GroupOrder.Bytes())
}

// CheckFieldElements verifies that every word is a canonical BN254 scalar field element.
func (c Claim) CheckFieldElements() error {
	order := FieldOrder()

	for i, w := range c {
		if w.BigInt().Cmp(order) >= 0 {
			return fmt.Errorf("%w: word %d", ErrWordOutOfField, i)
		}
	}

	return nil
}
