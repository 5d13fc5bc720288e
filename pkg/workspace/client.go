// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package workspace

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/microsoft/fabric-sdk-go/fabric"
	"github.com/microsoft/fabric-sdk-go/fabric/core"
)

// Info identifies a Fabric workspace.
type Info struct {
	ID          string
	DisplayName string
}

// Role is a Fabric workspace role.
type Role string

// Workspace roles assignable to a principal.
const (
	RoleAdmin       Role = "Admin"
	RoleContributor Role = "Contributor"
	RoleMember      Role = "Member"
)

// PrincipalType is the kind of principal holding a role assignment.
type PrincipalType string

// Principal types supported for workspace role assignments.
const (
	PrincipalTypeServicePrincipal PrincipalType = "ServicePrincipal"
	PrincipalTypeGroup            PrincipalType = "Group"
)

// RoleAssignment is an existing grant of a role to a principal on a workspace.
type RoleAssignment struct {
	PrincipalID string
	Role        Role
}

// API is the slice of the Fabric REST API the workspace manager consumes.
type API interface {
	ListWorkspaces(ctx context.Context) ([]Info, error)
	CreateWorkspace(ctx context.Context, displayName, capacityID string) (Info, error)
	ListRoleAssignments(ctx context.Context, workspaceID string) ([]RoleAssignment, error)
	AddRoleAssignment(ctx context.Context, workspaceID, principalID string, principalType PrincipalType, role Role) error
}

var _ API = (*Client)(nil)

// Client implements API on top of the Fabric SDK workspaces client.
type Client struct {
	workspaces *core.WorkspacesClient
}

// NewClient creates a Fabric API client from a token credential.
func NewClient(credential azcore.TokenCredential) (*Client, error) {
	fc, err := fabric.NewClient(credential, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Fabric client: %w", err)
	}
	return NewClientFromFactory(core.NewClientFactoryWithClient(*fc)), nil
}

// NewClientFromFactory creates a Fabric API client from an existing SDK
// client factory, so callers holding one do not build a second pipeline.
func NewClientFromFactory(factory *core.ClientFactory) *Client {
	return &Client{workspaces: factory.NewWorkspacesClient()}
}

// ListWorkspaces returns all workspaces visible to the credential.
func (c *Client) ListWorkspaces(ctx context.Context) ([]Info, error) {
	var infos []Info
	pager := c.workspaces.NewListWorkspacesPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, ws := range page.Value {
			infos = append(infos, Info{
				ID:          val(ws.ID),
				DisplayName: val(ws.DisplayName),
			})
		}
	}
	return infos, nil
}

// CreateWorkspace creates a workspace on the given capacity.
func (c *Client) CreateWorkspace(ctx context.Context, displayName, capacityID string) (Info, error) {
	resp, err := c.workspaces.CreateWorkspace(ctx, core.CreateWorkspaceRequest{
		DisplayName: to.Ptr(displayName),
		CapacityID:  to.Ptr(capacityID),
	}, nil)
	if err != nil {
		return Info{}, err
	}
	return Info{
		ID:          val(resp.ID),
		DisplayName: val(resp.DisplayName),
	}, nil
}

// ListRoleAssignments returns the existing role assignments of a workspace.
func (c *Client) ListRoleAssignments(ctx context.Context, workspaceID string) ([]RoleAssignment, error) {
	var assignments []RoleAssignment
	pager := c.workspaces.NewListWorkspaceRoleAssignmentsPager(workspaceID, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, ra := range page.Value {
			assignment := RoleAssignment{}
			if ra.Principal != nil {
				assignment.PrincipalID = val(ra.Principal.ID)
			}
			if ra.Role != nil {
				assignment.Role = Role(*ra.Role)
			}
			assignments = append(assignments, assignment)
		}
	}
	return assignments, nil
}

// AddRoleAssignment grants a role to a principal on a workspace.
func (c *Client) AddRoleAssignment(ctx context.Context, workspaceID, principalID string, principalType PrincipalType, role Role) error {
	_, err := c.workspaces.AddWorkspaceRoleAssignment(ctx, workspaceID, core.AddWorkspaceRoleAssignmentRequest{
		Principal: &core.Principal{
			ID:   to.Ptr(principalID),
			Type: to.Ptr(core.PrincipalType(principalType)),
		},
		Role: to.Ptr(core.WorkspaceRole(role)),
	}, nil)
	return err
}

// val returns the value of the pointer or the zero value of the type if the pointer is nil.
func val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
