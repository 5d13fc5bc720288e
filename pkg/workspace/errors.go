// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package workspace

import "fmt"

var _ error = (*ErrCapacityIDRequired)(nil)
var _ error = (*ErrInvalidCapacityID)(nil)
var _ error = (*ErrCreateResponseMissingID)(nil)
var _ error = (*ErrCreatePermissionDenied)(nil)
var _ error = (*ErrInvalidPrincipalObjectID)(nil)

// ErrCapacityIDRequired is an error type that indicates workspace auto-creation
// was attempted without a capacity ID.
type ErrCapacityIDRequired struct {
	WorkspaceName string
}

// Error implements the error interface for type ErrCapacityIDRequired.
func (e *ErrCapacityIDRequired) Error() string {
	return fmt.Sprintf("Capacity ID is required to auto-create a Fabric workspace. "+
		"Either manually create a workspace named '%s' in Fabric, "+
		"or set the FABRIC_CAPACITY_ID environment variable to enable auto-creation", e.WorkspaceName)
}

// ErrInvalidCapacityID is an error type that indicates the capacity ID was
// rejected, either locally (not a GUID) or by the Fabric API (404).
type ErrInvalidCapacityID struct {
	CapacityID string
}

// Error implements the error interface for type ErrInvalidCapacityID.
func (e *ErrInvalidCapacityID) Error() string {
	return fmt.Sprintf("invalid capacity ID '%s'. Verify the FABRIC_CAPACITY_ID value is the capacity GUID", e.CapacityID)
}

// ErrCreateResponseMissingID is an error type that indicates the create
// workspace call succeeded but returned no workspace ID.
type ErrCreateResponseMissingID struct {
	WorkspaceName string
}

// Error implements the error interface for type ErrCreateResponseMissingID.
func (e *ErrCreateResponseMissingID) Error() string {
	return fmt.Sprintf("workspace creation for '%s' succeeded but the response did not contain a valid 'id' field. "+
		"Inspect the Fabric API response for details", e.WorkspaceName)
}

// ErrCreatePermissionDenied is an error type that indicates the service
// principal may not create workspaces (HTTP 403 from the create call).
type ErrCreatePermissionDenied struct{}

// Error implements the error interface for type ErrCreatePermissionDenied.
func (e *ErrCreatePermissionDenied) Error() string {
	return "Service Principal lacks workspace creation permissions. " +
		"Possible causes: " +
		"1. Missing tenant setting: in Fabric Admin Portal > Tenant Settings > Developer Settings, " +
		"enable 'Service principals can create workspaces, connections, and deployment pipelines'. " +
		"2. Missing capacity admin role: in Azure Portal > Fabric Capacity > Settings > " +
		"Capacity administrators, add the Service Principal (by Client ID or Enterprise Application Object ID)"
}

// ErrInvalidPrincipalObjectID is an error type that indicates a role
// assignment referenced an unknown principal (HTTP 404 from the add call).
type ErrInvalidPrincipalObjectID struct {
	Description string // human description of the principal, e.g. "Service Principal"
	PrincipalID string
	Hint        string // which kind of Object ID to look up
}

// Error implements the error interface for type ErrInvalidPrincipalObjectID.
func (e *ErrInvalidPrincipalObjectID) Error() string {
	return fmt.Sprintf("invalid %s Object ID '%s'. Verify the value is a valid %s. "+
		"Find it in Azure Portal > Microsoft Entra ID", e.Description, e.PrincipalID, e.Hint)
}
