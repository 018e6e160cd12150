/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/hyperledger/aries-claim-encoder/pkg/doc/identifier"
)

const (
	hexPrefix = "0x"
	didPrefix = "did:"

	maxSafeFloat = 1 << 53
)

// descriptionDoc is the document form of a Description as accepted by ParseDescription.
type descriptionDoc struct {
	SchemaHash            *big.Int    `json:"schemaHash,omitempty"`
	SchemaID              string      `json:"schemaId,omitempty"`
	IDPosition            Position    `json:"idPosition"`
	ID                    interface{} `json:"id,omitempty"`
	Expirable             bool        `json:"expirable"`
	ExpirationDate        uint64      `json:"expirationDate"`
	Updatable             bool        `json:"updatable"`
	Version               uint32      `json:"version"`
	MerklizedRootPosition Position    `json:"merklizedRootPosition"`
	MerklizedRoot         *big.Int    `json:"merklizedRoot,omitempty"`
	RevocationNonce       uint64      `json:"revocationNonce"`
	IndexDataSlotA        *big.Int    `json:"indexDataSlotA,omitempty"`
	IndexDataSlotB        *big.Int    `json:"indexDataSlotB,omitempty"`
	ValueDataSlotA        *big.Int    `json:"valueDataSlotA,omitempty"`
	ValueDataSlotB        *big.Int    `json:"valueDataSlotB,omitempty"`
}

// descriptionJSON is the document form written by Description.MarshalJSON.
type descriptionJSON struct {
	SchemaHash            string   `json:"schemaHash"`
	IDPosition            Position `json:"idPosition"`
	ID                    string   `json:"id,omitempty"`
	Expirable             bool     `json:"expirable"`
	ExpirationDate        uint64   `json:"expirationDate,string"`
	Updatable             bool     `json:"updatable"`
	Version               uint32   `json:"version"`
	MerklizedRootPosition Position `json:"merklizedRootPosition"`
	MerklizedRoot         string   `json:"merklizedRoot,omitempty"`
	RevocationNonce       uint64   `json:"revocationNonce,string"`
	IndexDataSlotA        string   `json:"indexDataSlotA,omitempty"`
	IndexDataSlotB        string   `json:"indexDataSlotB,omitempty"`
	ValueDataSlotA        string   `json:"valueDataSlotA,omitempty"`
	ValueDataSlotB        string   `json:"valueDataSlotB,omitempty"`
}

//nolint:gochecknoglobals
var (
	bigIntType   = reflect.TypeOf(&big.Int{})
	positionType = reflect.TypeOf(PositionNone)
)

// ParseDescription reads a claim description from a JSON document.
//
// Integer fields accept JSON numbers, decimal strings and 0x-prefixed hex strings.
// Positions accept "none", "index", "value" or 0, 1, 2.
// The subject id also accepts a base58 or multibase identifier, or a DID ending with one.
// "schemaId" may replace "schemaHash", the hash is then derived with SchemaHashFromID.
// The description is not validated, Encode does that.
func ParseDescription(data []byte) (*Description, error) {
	var raw map[string]interface{}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "unmarshal claim description")
	}

	return DescriptionFromMap(raw)
}

// DescriptionFromMap reads a claim description from a generic map, with the same rules as ParseDescription.
func DescriptionFromMap(m map[string]interface{}) (*Description, error) {
	var doc descriptionDoc

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  descriptionHook,
		ErrorUnused: true,
		Result:      &doc,
		TagName:     "json",
	})
	if err != nil {
		return nil, errors.Wrap(err, "create description decoder")
	}

	if err = decoder.Decode(m); err != nil {
		return nil, errors.Wrap(err, "decode claim description")
	}

	d := &Description{
		SchemaHash:            doc.SchemaHash,
		IDPosition:            doc.IDPosition,
		Expirable:             doc.Expirable,
		ExpirationDate:        doc.ExpirationDate,
		Updatable:             doc.Updatable,
		Version:               doc.Version,
		MerklizedRootPosition: doc.MerklizedRootPosition,
		MerklizedRoot:         doc.MerklizedRoot,
		RevocationNonce:       doc.RevocationNonce,
		IndexDataSlotA:        doc.IndexDataSlotA,
		IndexDataSlotB:        doc.IndexDataSlotB,
		ValueDataSlotA:        doc.ValueDataSlotA,
		ValueDataSlotB:        doc.ValueDataSlotB,
	}

	if doc.SchemaID != "" {
		if doc.SchemaHash != nil {
			return nil, errors.New("only one of schemaHash and schemaId may be set")
		}

		d.SchemaHash = SchemaHashFromID(doc.SchemaID)
	}

	d.ID, err = subjectID(doc.ID)
	if err != nil {
		return nil, errors.Wrap(err, "decode id")
	}

	return d, nil
}

// UnmarshalJSON implements json.Unmarshaler with the rules of ParseDescription.
func (d *Description) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDescription(data)
	if err != nil {
		return err
	}

	*d = *parsed

	return nil
}

// MarshalJSON writes integers as decimal strings and positions by name.
func (d Description) MarshalJSON() ([]byte, error) {
	if !d.IDPosition.Valid() {
		return nil, errors.Wrapf(ErrInvalidIDPosition, "marshal %s", d.IDPosition)
	}

	if !d.MerklizedRootPosition.Valid() {
		return nil, errors.Wrapf(ErrInvalidMerklizedRootPosition, "marshal %s", d.MerklizedRootPosition)
	}

	return json.Marshal(descriptionJSON{
		SchemaHash:            orZero(d.SchemaHash).String(),
		IDPosition:            d.IDPosition,
		ID:                    decimal(d.ID),
		Expirable:             d.Expirable,
		ExpirationDate:        d.ExpirationDate,
		Updatable:             d.Updatable,
		Version:               d.Version,
		MerklizedRootPosition: d.MerklizedRootPosition,
		MerklizedRoot:         decimal(d.MerklizedRoot),
		RevocationNonce:       d.RevocationNonce,
		IndexDataSlotA:        decimal(d.IndexDataSlotA),
		IndexDataSlotB:        decimal(d.IndexDataSlotB),
		ValueDataSlotA:        decimal(d.ValueDataSlotA),
		ValueDataSlotB:        decimal(d.ValueDataSlotB),
	})
}

func descriptionHook(_, to reflect.Type, data interface{}) (interface{}, error) {
	switch {
	case to == bigIntType:
		return toBigInt(data)
	case to == positionType:
		return toPosition(data)
	case to.Kind() == reflect.Uint64 || to.Kind() == reflect.Uint32:
		return toUint(data, to)
	default:
		return data, nil
	}
}

func toBigInt(data interface{}) (interface{}, error) {
	switch v := data.(type) {
	case *big.Int:
		return v, nil
	case json.Number:
		return parseUint(v.String())
	case string:
		return parseUint(v)
	case float64:
		u, err := exactUint(v)
		if err != nil {
			return nil, err
		}

		return new(big.Int).SetUint64(u), nil
	}

	rv := reflect.ValueOf(data)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < 0 {
			return nil, errors.Wrapf(ErrValueOverflow, "negative value %d", rv.Int())
		}

		return big.NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Int).SetUint64(rv.Uint()), nil
	default:
		return nil, errors.Errorf("unsupported integer type %T", data)
	}
}

func toUint(data interface{}, to reflect.Type) (interface{}, error) {
	var u uint64

	switch v := data.(type) {
	case json.Number:
		parsed, err := parseUint64(v.String())
		if err != nil {
			return nil, err
		}

		u = parsed
	case string:
		parsed, err := parseUint64(v)
		if err != nil {
			return nil, err
		}

		u = parsed
	case float32:
		parsed, err := exactUint(float64(v))
		if err != nil {
			return nil, err
		}

		u = parsed
	case float64:
		parsed, err := exactUint(v)
		if err != nil {
			return nil, err
		}

		u = parsed
	default:
		rv := reflect.ValueOf(data)

		switch rv.Kind() { //nolint:exhaustive
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if rv.Int() < 0 {
				return nil, errors.Wrapf(ErrValueOverflow, "negative value %d", rv.Int())
			}

			u = uint64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u = rv.Uint()
		default:
			return data, nil
		}
	}

	out := reflect.New(to).Elem()
	if out.OverflowUint(u) {
		return nil, errors.Wrapf(ErrValueOverflow, "%d does not fit uint%d", u, to.Bits())
	}

	out.SetUint(u)

	return out.Interface(), nil
}

func parseUint64(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	base := 10

	if strings.HasPrefix(strings.ToLower(s), hexPrefix) {
		s, base = s[len(hexPrefix):], 16
	}

	u, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse uint64")
	}

	return u, nil
}

func exactUint(v float64) (uint64, error) {
	if v < 0 || v != math.Trunc(v) || v > maxSafeFloat {
		return 0, errors.Errorf("%v is not an exact unsigned integer", v)
	}

	return uint64(v), nil
}

func toPosition(data interface{}) (interface{}, error) {
	switch v := data.(type) {
	case Position:
		return v, nil
	case string:
		return ParsePosition(v)
	}

	n, err := toBigInt(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse position")
	}

	i, ok := n.(*big.Int)
	if !ok || !i.IsUint64() || !Position(i.Uint64()).Valid() {
		return nil, errors.Errorf("unknown position %v", data)
	}

	return Position(i.Uint64()), nil
}

func subjectID(data interface{}) (*big.Int, error) {
	s, ok := data.(string)
	if !ok {
		if data == nil {
			return nil, nil
		}

		v, err := toBigInt(data)
		if err != nil {
			return nil, err
		}

		return v.(*big.Int), nil //nolint:forcetypeassert
	}

	if v, err := parseUint(s); err == nil {
		return v, nil
	}

	if strings.HasPrefix(s, didPrefix) {
		s = s[strings.LastIndex(s, ":")+1:]
	}

	id, err := identifier.ParseID(s)
	if err == nil {
		return id.BigInt(), nil
	}

	id, mbErr := identifier.ParseMultibaseID(s)
	if mbErr != nil {
		return nil, errors.Wrapf(mbErr, "%q is neither an integer nor an identifier (base58: %v)", s, err)
	}

	return id.BigInt(), nil
}

// parseUint reads a non-negative decimal or 0x-prefixed hex integer of at most 256 bits.
func parseUint(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	base := 10

	if strings.HasPrefix(strings.ToLower(s), hexPrefix) {
		s, base = s[len(hexPrefix):], 16
	}

	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, errors.Errorf("invalid integer %q", s)
	}

	if v.Sign() < 0 || v.BitLen() > WordSize*8 {
		return nil, errors.Wrapf(ErrValueOverflow, "integer %s", s)
	}

	return v, nil
}

func decimal(v *big.Int) string {
	if v == nil {
		return ""
	}

	return v.String()
}
