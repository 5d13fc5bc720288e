// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// WorkspaceFolders returns the immediate subdirectories of rootDir that
// contain the configuration file, lexicographically sorted. An empty
// filename selects DefaultFilename.
func WorkspaceFolders(rootDir, filename string) ([]string, error) {
	if filename == "" {
		filename = DefaultFilename
	}
	if _, err := os.Stat(rootDir); err != nil {
		return nil, &ErrDirectoryNotFound{Dir: rootDir}
	}
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspaces directory %s: %w", rootDir, err)
	}

	folders := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(rootDir, entry.Name(), filename)); err != nil {
			continue
		}
		folders = append(folders, entry.Name())
	}
	if len(folders) == 0 {
		return nil, &ErrNoWorkspaceFolders{Dir: rootDir, Filename: filename}
	}

	// os.ReadDir is already sorted, but the contract is lexicographic order.
	slices.Sort(folders)
	return folders, nil
}

// DiscoverWorkspaceFolders returns all workspace folders to deploy and logs the outcome.
func DiscoverWorkspaceFolders(rootDir, filename string) ([]string, error) {
	folders, err := WorkspaceFolders(rootDir, filename)
	if err != nil {
		return nil, err
	}
	slog.Info(fmt.Sprintf("-> Discovered %d workspace(s): %s", len(folders), strings.Join(folders, ", ")))
	return folders, nil
}
