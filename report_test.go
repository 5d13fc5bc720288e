// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package orchestrator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() DeploymentSummary {
	return DeploymentSummary{
		Environment: "dev",
		Duration:    30500 * time.Millisecond,
		Results: []DeploymentResult{
			{WorkspaceFolder: "zebra", WorkspaceName: "[D] Zebra", Success: true},
			{WorkspaceFolder: "alpha", WorkspaceName: "[D] Alpha", Success: false, ErrorMessage: "deploy call failed"},
		},
	}
}

func TestBuildResultsJSON(t *testing.T) {
	report := BuildResultsJSON(sampleSummary())

	assert.Equal(t, "dev", report.Environment)
	assert.InDelta(t, 30.5, report.Duration, 0.001)
	assert.Equal(t, 2, report.TotalWorkspaces)
	assert.Equal(t, 1, report.SuccessfulCount)
	assert.Equal(t, 1, report.FailedCount)

	// Counts always reconcile with the result list.
	assert.Equal(t, report.TotalWorkspaces, report.SuccessfulCount+report.FailedCount)
	assert.Len(t, report.Workspaces, report.TotalWorkspaces)

	// Sorted by folder name, not input order.
	require.Len(t, report.Workspaces, 2)
	assert.Equal(t, "alpha", report.Workspaces[0].Name)
	assert.Equal(t, "zebra", report.Workspaces[1].Name)

	assert.Equal(t, WorkspaceReport{
		Name:     "alpha",
		FullName: "[D] Alpha",
		Status:   "failure",
		Error:    "deploy call failed",
	}, report.Workspaces[0])
	assert.Equal(t, "success", report.Workspaces[1].Status)
	assert.Empty(t, report.Workspaces[1].Error)
}

func TestSaveResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ResultsFilename)
	require.NoError(t, SaveResults(sampleSummary(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report ResultsJSON
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "dev", report.Environment)
	assert.Equal(t, 2, report.TotalWorkspaces)
}

func TestPrintSummaryDoesNotPanic(t *testing.T) {
	PrintSummary(sampleSummary())
	PrintSummary(DeploymentSummary{Environment: "prod"})
}
