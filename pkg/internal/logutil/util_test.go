/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger/aries-claim-encoder/pkg/common/log"
)

func TestCreateKeyValueString(t *testing.T) {
	require.Equal(t, "schemaId=[urn:schema]", CreateKeyValueString("schemaId", "urn:schema"))
	require.Equal(t, "k=[]", CreateKeyValueString("k", ""))
}

func TestJoin(t *testing.T) {
	require.Equal(t, "", join(nil))
	require.Equal(t, "a=[1] b=[2]", join([]string{"a=[1]", "b=[2]"}))
}

func TestLogHelpers(t *testing.T) {
	const module = "claim-encoder/logutil-test"

	log.SetLevel(module, log.DEBUG)

	logger := log.New(module)

	require.NotPanics(t, func() {
		LogError(logger, "claim", "EncodeClaim", "failed", CreateKeyValueString("k", "v"))
		LogWarn(logger, "claim", "EncodeClaim", "odd")
		LogInfo(logger, "claim", "EncodeClaim", "ok")
		LogDebug(logger, "claim", "EncodeClaim", "details", "a", "b")
	})
}
