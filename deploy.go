// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/dc-floriangaerner/fabric-orchestrator/pkg/config"
	"github.com/dc-floriangaerner/fabric-orchestrator/pkg/workspace"
)

const (
	separatorLong  = "======================================================================"
	separatorShort = "============================================================"
)

// ItemDeployer is the single-call contract to the item deployment engine.
// The production implementation lives in pkg/publish; the orchestrator never
// looks behind this interface.
type ItemDeployer interface {
	Deploy(ctx context.Context, configPath, environment string, credential azcore.TokenCredential) error
}

// WorkspaceEnsurer is the slice of the workspace manager the deployer needs.
type WorkspaceEnsurer interface {
	EnsureExists(ctx context.Context, name, capacityID, spObjectID, adminGroupID string) (string, error)
}

// Deployer deploys workspace folders for one environment. The zero value is
// not usable; populate the fields and wire an ItemDeployer.
type Deployer struct {
	WorkspacesDir            string
	Environment              string
	Credential               azcore.TokenCredential
	CapacityID               string
	ServicePrincipalObjectID string
	AdminGroupID             string
	ConfigFilename           string // empty selects config.DefaultFilename

	Items ItemDeployer

	// NewWorkspaceManager builds the workspace manager for a deployment.
	// Left nil, the Fabric SDK manager is used; tests substitute a fake.
	NewWorkspaceManager func(credential azcore.TokenCredential) (WorkspaceEnsurer, error)
}

// DeployWorkspace deploys a single workspace folder: load the configuration,
// resolve the display name for the environment, ensure the workspace exists
// and is permissioned, then hand over to the item deployment engine.
//
// Every failure is converted into a failed DeploymentResult carrying the
// error text; no error escapes this method.
func (d *Deployer) DeployWorkspace(ctx context.Context, folder string) DeploymentResult {
	slog.Info("\n" + separatorShort)
	slog.Info(fmt.Sprintf("Deploying workspace: %s", folder))
	slog.Info(separatorShort + "\n")

	workspaceName, err := d.deployWorkspace(ctx, folder)
	if err != nil {
		displayName := workspaceName
		if displayName == "" {
			displayName = folder
		}
		slog.Error(fmt.Sprintf("\n[FAIL] ERROR: Deployment failed for workspace '%s': %s\n", displayName, err))
		return DeploymentResult{
			WorkspaceFolder: folder,
			WorkspaceName:   displayName,
			Success:         false,
			ErrorMessage:    err.Error(),
		}
	}

	slog.Info(fmt.Sprintf("\n[OK] Deployment to %s completed successfully!\n", workspaceName))
	return DeploymentResult{
		WorkspaceFolder: folder,
		WorkspaceName:   workspaceName,
		Success:         true,
	}
}

// deployWorkspace returns the resolved workspace name (empty until resolved)
// alongside any error, so the caller can fall back to the folder name.
func (d *Deployer) deployWorkspace(ctx context.Context, folder string) (string, error) {
	filename := d.ConfigFilename
	if filename == "" {
		filename = config.DefaultFilename
	}

	cfg, err := config.Load(d.WorkspacesDir, folder, filename)
	if err != nil {
		return "", err
	}
	workspaceName, err := cfg.WorkspaceName(d.Environment)
	if err != nil {
		return "", err
	}
	configPath := filepath.Join(d.WorkspacesDir, folder, filename)

	slog.Info(fmt.Sprintf("-> Target workspace: %s", workspaceName))
	slog.Info(fmt.Sprintf("-> Config file: %s", configPath))
	slog.Info(fmt.Sprintf("-> Environment: %s", d.Environment))

	manager, err := d.workspaceManager()
	if err != nil {
		return workspaceName, err
	}
	workspaceID, err := manager.EnsureExists(ctx, workspaceName, d.CapacityID, d.ServicePrincipalObjectID, d.AdminGroupID)
	if err != nil {
		return workspaceName, err
	}
	slog.Info(fmt.Sprintf("-> Workspace ensured with ID: %s", workspaceID))

	slog.Info("-> Deploying items using config-based deployment...")
	if err := d.Items.Deploy(ctx, configPath, d.Environment, d.Credential); err != nil {
		return workspaceName, err
	}
	return workspaceName, nil
}

// DeployAll deploys every folder sequentially, in input order, continuing
// past failures. The returned results match the input order.
func (d *Deployer) DeployAll(ctx context.Context, folders []string) []DeploymentResult {
	results := make([]DeploymentResult, 0, len(folders))

	slog.Info(fmt.Sprintf("Starting deployment of %d workspace(s)...\n", len(folders)))
	for i, folder := range folders {
		slog.Info(fmt.Sprintf("[%d/%d] Processing workspace: %s", i+1, len(folders), folder))
		results = append(results, d.DeployWorkspace(ctx, folder))
	}
	return results
}

func (d *Deployer) workspaceManager() (WorkspaceEnsurer, error) {
	if d.NewWorkspaceManager != nil {
		return d.NewWorkspaceManager(d.Credential)
	}
	return workspace.NewManagerFromCredential(d.Credential)
}
