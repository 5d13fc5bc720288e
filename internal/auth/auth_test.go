// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package auth

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc-floriangaerner/fabric-orchestrator/internal/environment"
)

func TestNewCredentialServicePrincipal(t *testing.T) {
	t.Setenv(environment.AzureClientIDEnv, "11111111-1111-1111-1111-111111111111")
	t.Setenv(environment.AzureTenantIDEnv, "22222222-2222-2222-2222-222222222222")
	t.Setenv(environment.AzureClientSecretEnv, "secret")

	cred, err := NewCredential()
	require.NoError(t, err)
	assert.IsType(t, &azidentity.ClientSecretCredential{}, cred)
}

func TestNewCredentialFallsBackToDefault(t *testing.T) {
	// With any of the three variables missing the default chain is used.
	t.Setenv(environment.AzureClientIDEnv, "11111111-1111-1111-1111-111111111111")
	t.Setenv(environment.AzureTenantIDEnv, "22222222-2222-2222-2222-222222222222")
	t.Setenv(environment.AzureClientSecretEnv, "")

	cred, err := NewCredential()
	require.NoError(t, err)
	assert.IsType(t, &azidentity.DefaultAzureCredential{}, cred)
}
