// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceFoldersSorted(t *testing.T) {
	root := t.TempDir()
	// Created out of order; discovery must return ASCII lexicographic order.
	for _, folder := range []string{"Zebra", "Alpha", "Mike"} {
		writeConfig(t, root, folder, "core:\n  workspace:\n    dev: ws\n")
	}

	folders, err := WorkspaceFolders(root, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Mike", "Zebra"}, folders)
}

func TestWorkspaceFoldersSkipsNonQualifying(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "good", "core:\n  workspace:\n    dev: ws\n")

	// A folder without the config file and a stray top-level file must both be ignored.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "no-config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), 0o644))

	folders, err := WorkspaceFolders(root, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"good"}, folders)
}

func TestWorkspaceFoldersRootMissing(t *testing.T) {
	_, err := WorkspaceFolders(filepath.Join(t.TempDir(), "does-not-exist"), "")
	require.Error(t, err)

	var notFound *ErrDirectoryNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestWorkspaceFoldersNoneFound(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "no-config"), 0o755))

	_, err := WorkspaceFolders(root, "")
	require.Error(t, err)

	var none *ErrNoWorkspaceFolders
	require.ErrorAs(t, err, &none)
	assert.ErrorContains(t, err, DefaultFilename)
}

func TestDiscoverWorkspaceFolders(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "ws1", "core:\n  workspace:\n    dev: ws\n")
	writeConfig(t, root, "ws2", "core:\n  workspace:\n    dev: ws\n")

	folders, err := DiscoverWorkspaceFolders(root, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ws1", "ws2"}, folders)
}

func TestResolveDirectoryLocal(t *testing.T) {
	root := t.TempDir()

	resolved, err := ResolveDirectory(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, root, resolved)
}
