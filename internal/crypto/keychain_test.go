// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealUnseal_RoundTrip(t *testing.T) {
	kc := NewKeyChainService()

	sealed, err := kc.Seal("ptlc_client_api_key_value")
	require.NoError(t, err)
	assert.NotEqual(t, "ptlc_client_api_key_value", sealed)

	plain, err := kc.Unseal(sealed)
	require.NoError(t, err)
	assert.Equal(t, "ptlc_client_api_key_value", plain)
}

func TestSeal_FreshSaltEachCall(t *testing.T) {
	kc := NewKeyChainService()

	a, err := kc.Seal("secret")
	require.NoError(t, err)
	b, err := kc.Seal("secret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestUnseal_CorruptedBlob(t *testing.T) {
	kc := NewKeyChainService()

	_, err := kc.Unseal("not-base64!!!")
	require.Error(t, err)

	_, err = kc.Unseal("c2hvcnQ=") // valid base64, too short
	require.Error(t, err)
}

func TestUnseal_DifferentMachineSecret(t *testing.T) {
	kc := NewKeyChainService().(*keyChainService)
	sealed, err := kc.Seal("secret")
	require.NoError(t, err)

	other := NewKeyChainService().(*keyChainService)
	other.machineSecret = []byte("another-host|/home/other|coindesk")

	_, err = other.Unseal(sealed)
	assert.Error(t, err)
}
