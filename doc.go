/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package claimencoder encodes identity claim descriptions into the fixed eight word layout
// used by sparse merkle tree based identity protocols.
//
// Packages for end developer usage
//
// pkg/doc/claim: Claim descriptions, the Encode operation and its inverse.
// A claim is eight 256-bit words: words 0-3 form the index part, words 4-7 the value part.
//
// pkg/doc/identifier: Subject identifiers and their base58 / multibase string forms.
//
// pkg/controller/command/claim: Transport independent JSON API over the claim package.
//
// pkg/controller/rest/claim: The same API as REST handlers.
//
// Basic workflow
//
//      1) Build a claim.Description, or parse one from JSON with claim.ParseDescription.
//      2) Call claim.Encode to get the eight claim words.
//      3) Optionally call Claim.CheckFieldElements before hashing the words over BN254.
//      4) Use Claim.Description to read a stored claim back.
package claimencoder
