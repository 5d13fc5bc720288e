// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package environment contains the types and methods for fetching configuration from the local environment.
package environment

import (
	"os"
	"strings"
)

const (
	// AzureClientIDEnv holds the client ID of the deployment service principal.
	AzureClientIDEnv = "AZURE_CLIENT_ID"
	// AzureTenantIDEnv holds the Entra tenant ID.
	AzureTenantIDEnv = "AZURE_TENANT_ID"
	// AzureClientSecretEnv holds the client secret of the deployment service principal.
	AzureClientSecretEnv = "AZURE_CLIENT_SECRET"
	// FabricCapacityIDEnv holds the Fabric capacity GUID used when auto-creating workspaces.
	FabricCapacityIDEnv = "FABRIC_CAPACITY_ID"
	// DeploymentSPObjectIDEnv holds the Entra Object ID (not Client ID) of the deployment service principal.
	DeploymentSPObjectIDEnv = "DEPLOYMENT_SP_OBJECT_ID"
	// FabricAdminGroupIDEnv holds the Entra Object ID of the optional workspace admin group.
	FabricAdminGroupIDEnv = "FABRIC_ADMIN_GROUP_ID"
	// ActionsRunnerDebugEnv is set to "true" by GitHub Actions when debug logging is requested.
	ActionsRunnerDebugEnv = "ACTIONS_RUNNER_DEBUG"

	cacheDefaultBaseDir    = ".fabric-orchestrator" // cacheDefaultBaseDir is the default base directory for fetched workspace sources.
	cacheDefaultBaseDirEnv = "FABRIC_ORCHESTRATOR_DIR"
)

// CapacityID contents of the `FABRIC_CAPACITY_ID` environment variable.
func CapacityID() string {
	return os.Getenv(FabricCapacityIDEnv)
}

// ServicePrincipalObjectID contents of the `DEPLOYMENT_SP_OBJECT_ID` environment variable.
func ServicePrincipalObjectID() string {
	return os.Getenv(DeploymentSPObjectIDEnv)
}

// AdminGroupID contents of the `FABRIC_ADMIN_GROUP_ID` environment variable.
func AdminGroupID() string {
	return os.Getenv(FabricAdminGroupIDEnv)
}

// DebugEnabled reports whether `ACTIONS_RUNNER_DEBUG` is set to "true" (case-insensitive).
func DebugEnabled() bool {
	return strings.EqualFold(os.Getenv(ActionsRunnerDebugEnv), "true")
}

// CacheDir contents of the `FABRIC_ORCHESTRATOR_DIR` environment variable, or the default which is `.fabric-orchestrator`.
func CacheDir() string {
	dir := cacheDefaultBaseDir
	if d := os.Getenv(cacheDefaultBaseDirEnv); d != "" {
		dir = d
	}
	return dir
}
