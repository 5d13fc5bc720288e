// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package workspace ensures Fabric workspaces exist and are permissioned
// before items are deployed into them.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/google/uuid"
)

// Manager performs workspace existence checks, creation and role assignment
// through the Fabric API. All mutating operations are guarded by an
// existence check first, so repeated EnsureExists calls are idempotent.
type Manager struct {
	api API
}

// NewManager creates a Manager from an API implementation.
func NewManager(api API) *Manager {
	return &Manager{api: api}
}

// NewManagerFromCredential creates a Manager backed by the Fabric SDK.
func NewManagerFromCredential(credential azcore.TokenCredential) (*Manager, error) {
	client, err := NewClient(credential)
	if err != nil {
		return nil, err
	}
	return NewManager(client), nil
}

// Exists checks whether a workspace with the given display name exists.
// The match is exact and case-sensitive: Fabric display names are
// case-preserving, and a case-folding match could bind to the wrong
// workspace. A name differing only in case will therefore be created anew.
func (m *Manager) Exists(ctx context.Context, name string) (string, bool, error) {
	workspaces, err := m.api.ListWorkspaces(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to list workspaces: %w", err)
	}
	for _, ws := range workspaces {
		if ws.DisplayName == name {
			slog.Info(fmt.Sprintf("  [OK] Workspace '%s' already exists", name), "id", ws.ID)
			return ws.ID, true, nil
		}
	}
	return "", false, nil
}

// Create creates a new workspace on the given capacity and returns its ID.
func (m *Manager) Create(ctx context.Context, name, capacityID string) (string, error) {
	if capacityID == "" {
		return "", &ErrCapacityIDRequired{WorkspaceName: name}
	}
	if _, err := uuid.Parse(capacityID); err != nil {
		return "", &ErrInvalidCapacityID{CapacityID: capacityID}
	}

	slog.Info(fmt.Sprintf("  -> Creating workspace '%s' with capacity '%s'...", name, capacityID))

	info, err := m.api.CreateWorkspace(ctx, name, capacityID)
	if err != nil {
		switch statusCode(err) {
		case http.StatusBadRequest:
			return "", fmt.Errorf("invalid workspace creation request: %w", err)
		case http.StatusForbidden:
			return "", &ErrCreatePermissionDenied{}
		case http.StatusNotFound:
			return "", &ErrInvalidCapacityID{CapacityID: capacityID}
		default:
			return "", err
		}
	}
	if info.ID == "" {
		return "", &ErrCreateResponseMissingID{WorkspaceName: name}
	}

	slog.Info("  [OK] Workspace created successfully", "id", info.ID)
	return info.ID, nil
}

// RoleAssignmentExists reports whether the principal already holds the role
// on the workspace.
func (m *Manager) RoleAssignmentExists(ctx context.Context, workspaceID, principalID string, role Role) (bool, error) {
	assignments, err := m.api.ListRoleAssignments(ctx, workspaceID)
	if err != nil {
		return false, fmt.Errorf("failed to list workspace role assignments: %w", err)
	}
	for _, assignment := range assignments {
		if assignment.PrincipalID == principalID && assignment.Role == role {
			return true, nil
		}
	}
	return false, nil
}

// AssignRole grants a role to a principal on a workspace.
//
// An empty principal ID is a no-op: informational for groups (an admin group
// is optional) and a warning for service principals. The existing role
// assignments are checked first so repeat runs skip the mutating call.
func (m *Manager) AssignRole(ctx context.Context, workspaceID, principalID string, principalType PrincipalType, role Role) error {
	description := principalDescription(principalType)
	if principalID == "" {
		if principalType == PrincipalTypeGroup {
			slog.Info(fmt.Sprintf("  (i) No %s configured. Skipping role assignment.", description))
		} else {
			slog.Warn(fmt.Sprintf("  WARNING: %s ID not set. Skipping role assignment.", description))
		}
		return nil
	}

	slog.Info(fmt.Sprintf("  -> Checking %s %s access...", description, role))
	exists, err := m.RoleAssignmentExists(ctx, workspaceID, principalID, role)
	if err != nil {
		return err
	}
	if exists {
		slog.Info(fmt.Sprintf("  [OK] %s already has %s access (verified)", description, role))
		return nil
	}

	slog.Info(fmt.Sprintf("  -> Granting %s %s access...", description, role))
	if err := m.api.AddRoleAssignment(ctx, workspaceID, principalID, principalType, role); err != nil {
		if statusCode(err) == http.StatusNotFound {
			return &ErrInvalidPrincipalObjectID{
				Description: description,
				PrincipalID: principalID,
				Hint:        principalIDHint(principalType),
			}
		}
		return fmt.Errorf("%s role assignment failed: %w", description, err)
	}

	slog.Info(fmt.Sprintf("  [OK] %s granted %s access successfully", description, role))
	return nil
}

// EnsureExists checks that the named workspace exists, creating it if
// necessary, and grants Admin to the deployment service principal and the
// optional admin group. It returns the workspace ID.
func (m *Manager) EnsureExists(ctx context.Context, name, capacityID, spObjectID, adminGroupID string) (string, error) {
	id, err := m.ensureExists(ctx, name, capacityID, spObjectID, adminGroupID)
	if err != nil {
		logTroubleshootingHints(err)
		return "", err
	}
	return id, nil
}

func (m *Manager) ensureExists(ctx context.Context, name, capacityID, spObjectID, adminGroupID string) (string, error) {
	slog.Info(fmt.Sprintf("-> Ensuring workspace '%s' exists...", name))

	id, found, err := m.Exists(ctx, name)
	if err != nil {
		return "", err
	}
	if found {
		slog.Info("  (i) Workspace already exists, ensuring admin access...")
	} else {
		slog.Info("  (i) Workspace not found, creating new workspace...")
		id, err = m.Create(ctx, name, capacityID)
		if err != nil {
			return "", err
		}
	}

	if err := m.AssignRole(ctx, id, spObjectID, PrincipalTypeServicePrincipal, RoleAdmin); err != nil {
		return "", err
	}
	if err := m.AssignRole(ctx, id, adminGroupID, PrincipalTypeGroup, RoleAdmin); err != nil {
		return "", err
	}

	slog.Info(fmt.Sprintf("  [OK] Workspace '%s' is ready for deployment", name))
	return id, nil
}

func principalDescription(t PrincipalType) string {
	if t == PrincipalTypeGroup {
		return "Entra ID group"
	}
	return "Service Principal"
}

func principalIDHint(t PrincipalType) string {
	if t == PrincipalTypeGroup {
		return "Entra ID group Object ID"
	}
	return "Service Principal Object ID (not Client ID)"
}

// statusCode extracts the HTTP status code from a transport error, or 0.
func statusCode(err error) int {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}
	return 0
}

// logTroubleshootingHints prints remediation guidance keyed off the failure
// category, matched by substring as the error may already be wrapped.
func logTroubleshootingHints(err error) {
	msg := err.Error()
	slog.Error(fmt.Sprintf("[FAIL] ERROR: Failed to ensure workspace exists: %s", msg))

	switch {
	case strings.Contains(msg, "workspace creation permissions"):
		slog.Info("TROUBLESHOOTING:")
		slog.Info("  1. Fabric Tenant Setting:")
		slog.Info("     - Open Fabric Admin Portal (https://app.fabric.microsoft.com/admin-portal)")
		slog.Info("     - Navigate to: Tenant Settings > Developer Settings")
		slog.Info("     - Enable: 'Service principals can create workspaces, connections, and deployment pipelines'")
		slog.Info("  2. Capacity Administrator Assignment:")
		slog.Info("     - Open Azure Portal > Your Fabric Capacity > Settings > Capacity administrators")
		slog.Info("     - Add the Service Principal by Client ID or Enterprise Application name")
	case strings.Contains(strings.ToLower(msg), "capacity"):
		slog.Info("TROUBLESHOOTING:")
		slog.Info("  1. Verify the FABRIC_CAPACITY_ID secret is set in the repository")
		slog.Info("  2. Get the capacity ID from the Fabric portal: Settings > Admin Portal > Capacity Settings")
		slog.Info("  3. Ensure the capacity is active and not paused")
	case strings.Contains(msg, "Object ID"):
		slog.Info("TROUBLESHOOTING:")
		slog.Info("  1. Go to Azure Portal > Microsoft Entra ID > Enterprise Applications")
		slog.Info("  2. Search for your application by Client ID (Application ID)")
		slog.Info("  3. Copy the 'Object ID' field (NOT the Application ID)")
		slog.Info("  4. Set the DEPLOYMENT_SP_OBJECT_ID secret to this Object ID value")
	}
}
