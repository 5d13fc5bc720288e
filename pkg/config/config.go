// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package config loads the per-workspace deployment configuration and
// discovers the workspace folders beneath the workspaces root directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file expected in every workspace folder.
const DefaultFilename = "config.yml"

// WorkspaceConfig is the parsed workspace configuration document.
// Only the `core.workspace.<environment>` mapping is validated; the rest of
// the document belongs to the item publisher and is kept as parsed.
type WorkspaceConfig struct {
	raw map[string]any
}

// Load reads and parses the configuration file for a workspace folder.
// An empty filename selects DefaultFilename.
func Load(rootDir, folder, filename string) (*WorkspaceConfig, error) {
	if filename == "" {
		filename = DefaultFilename
	}
	path := filepath.Join(rootDir, folder, filename)
	if _, err := os.Stat(path); err != nil {
		return nil, &ErrConfigNotFound{Folder: folder, Filename: filename}
	}
	return LoadFile(path)
}

// LoadFile reads and parses a configuration file at the given path.
func LoadFile(path string) (*WorkspaceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &WorkspaceConfig{raw: raw}, nil
}

// WorkspaceName resolves the target workspace display name for an
// environment from the `core.workspace.<environment>` mapping.
func (c *WorkspaceConfig) WorkspaceName(environment string) (string, error) {
	name, ok := c.lookupString("core", "workspace", environment)
	if !ok {
		return "", &ErrWorkspaceNameNotFound{Environment: environment}
	}
	return name, nil
}

// RepositoryDirectory returns the `core.repository_directory` value, or the
// empty string when it is not set.
func (c *WorkspaceConfig) RepositoryDirectory() string {
	dir, _ := c.lookupString("core", "repository_directory")
	return dir
}

// ItemTypesInScope returns the `core.item_types_in_scope` list. A missing or
// empty list means all item types are in scope.
func (c *WorkspaceConfig) ItemTypesInScope() []string {
	node := c.lookup("core", "item_types_in_scope")
	list, ok := node.([]any)
	if !ok {
		return nil
	}
	types := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			types = append(types, s)
		}
	}
	return types
}

func (c *WorkspaceConfig) lookup(path ...string) any {
	var node any = c.raw
	for _, key := range path {
		m, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		node = m[key]
	}
	return node
}

func (c *WorkspaceConfig) lookupString(path ...string) (string, bool) {
	s, ok := c.lookup(path...).(string)
	return s, ok
}
