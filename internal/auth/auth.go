// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package auth selects the Entra credential used for all Fabric API calls.
package auth

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/dc-floriangaerner/fabric-orchestrator/internal/environment"
)

// NewCredential creates the token credential for the run.
//
// When AZURE_CLIENT_ID, AZURE_TENANT_ID and AZURE_CLIENT_SECRET are all set
// and non-empty a client secret credential is used (the CI/CD path).
// Otherwise it falls back to the default Azure credential chain, which
// covers local development (CLI login, managed identity, etc.).
func NewCredential() (azcore.TokenCredential, error) {
	clientID := os.Getenv(environment.AzureClientIDEnv)
	tenantID := os.Getenv(environment.AzureTenantIDEnv)
	clientSecret := os.Getenv(environment.AzureClientSecretEnv)

	if clientID != "" && tenantID != "" && clientSecret != "" {
		slog.Info("-> Using ClientSecretCredential for authentication")
		cred, err := azidentity.NewClientSecretCredential(tenantID, clientID, clientSecret, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create client secret credential: %w", err)
		}
		return cred, nil
	}

	slog.Info("-> Using DefaultAzureCredential for authentication (local development)")
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create default Azure credential: %w", err)
	}
	return cred, nil
}
