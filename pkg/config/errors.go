// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import "fmt"

var _ error = (*ErrConfigNotFound)(nil)
var _ error = (*ErrWorkspaceNameNotFound)(nil)
var _ error = (*ErrDirectoryNotFound)(nil)
var _ error = (*ErrNoWorkspaceFolders)(nil)

// ErrConfigNotFound is an error type that indicates a workspace folder has no configuration file.
type ErrConfigNotFound struct {
	Folder   string
	Filename string
}

// Error implements the error interface for type ErrConfigNotFound.
func (e *ErrConfigNotFound) Error() string {
	return fmt.Sprintf("%s not found in %s", e.Filename, e.Folder)
}

// ErrWorkspaceNameNotFound is an error type that indicates the configuration
// has no workspace name for the requested environment.
type ErrWorkspaceNameNotFound struct {
	Environment string
}

// Error implements the error interface for type ErrWorkspaceNameNotFound.
func (e *ErrWorkspaceNameNotFound) Error() string {
	return fmt.Sprintf("workspace name for environment '%s' not found in config.yml. Expected: core.workspace.%s",
		e.Environment, e.Environment)
}

// ErrDirectoryNotFound is an error type that indicates the workspaces root directory does not exist.
type ErrDirectoryNotFound struct {
	Dir string
}

// Error implements the error interface for type ErrDirectoryNotFound.
func (e *ErrDirectoryNotFound) Error() string {
	return fmt.Sprintf("workspaces directory not found: %s", e.Dir)
}

// ErrNoWorkspaceFolders is an error type that indicates no qualifying workspace folders were discovered.
type ErrNoWorkspaceFolders struct {
	Dir      string
	Filename string
}

// Error implements the error interface for type ErrNoWorkspaceFolders.
func (e *ErrNoWorkspaceFolders) Error() string {
	return fmt.Sprintf("no workspace folders with '%s' found in %s. Each workspace folder must contain a %s file",
		e.Filename, e.Dir, e.Filename)
}
