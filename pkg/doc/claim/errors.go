/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import "errors"

// Validation errors. Each one is a permanent rejection of the description.
var (
	// ErrIDShouldBeEmpty is returned when a subject ID is given without a position.
	ErrIDShouldBeEmpty = errors.New("id should be empty")

	// ErrIDShouldBeNotEmpty is returned when a position is given without a subject ID.
	ErrIDShouldBeNotEmpty = errors.New("id should be not empty")

	// ErrInvalidIDPosition is returned for an ID position outside None, Index and Value.
	ErrInvalidIDPosition = errors.New("invalid id position")

	// ErrExpirationDateShouldBeZero is returned when a non-expirable claim carries an expiration date.
	ErrExpirationDateShouldBeZero = errors.New("expiration date should be 0 for non expirable claim")

	// ErrVersionShouldBeZero is returned when a non-updatable claim carries a version.
	ErrVersionShouldBeZero = errors.New("version should be 0 for non updatable claim")

	// ErrDataSlotsShouldBeEmpty is returned when a merklized claim carries free data.
	ErrDataSlotsShouldBeEmpty = errors.New("data slots should be empty")

	// ErrMerklizedRootShouldBeZero is returned when a non-merklized claim carries a root.
	ErrMerklizedRootShouldBeZero = errors.New("merklized root should be 0 for non merklized claim")

	// ErrInvalidMerklizedRootPosition is returned for a root position outside None, Index and Value.
	ErrInvalidMerklizedRootPosition = errors.New("invalid merklized root position")

	// ErrValueOverflow is returned when an integer field is negative or wider than 256 bits.
	ErrValueOverflow = errors.New("value does not fit into a claim word")

	// ErrNilDescription is returned when no description is given.
	ErrNilDescription = errors.New("claim description is nil")
)

// Errors returned while reading an encoded claim back.
var (
	ErrInvalidSubjectFlag   = errors.New("invalid subject flag")
	ErrInvalidMerklizedFlag = errors.New("invalid merklized flag")
	ErrReservedBitsSet      = errors.New("reserved bits are set")
	ErrInvalidClaimLength   = errors.New("invalid claim length")
	ErrWordOutOfField       = errors.New("claim word is not a field element")
)
