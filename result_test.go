// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package orchestrator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnvironment(t *testing.T) {
	for _, env := range []string{"dev", "test", "prod", "DEV", "Prod"} {
		assert.NoError(t, ValidateEnvironment(env), env)
	}

	err := ValidateEnvironment("staging")
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid environment 'staging'")
	assert.ErrorContains(t, err, "dev, prod, test")
}

func TestSummaryCounts(t *testing.T) {
	summary := DeploymentSummary{
		Environment: "dev",
		Duration:    45200 * time.Millisecond,
		Results: []DeploymentResult{
			{WorkspaceFolder: "ws1", WorkspaceName: "Workspace 1", Success: true},
			{WorkspaceFolder: "ws2", WorkspaceName: "Workspace 2", Success: false, ErrorMessage: "network error"},
			{WorkspaceFolder: "ws3", WorkspaceName: "Workspace 3", Success: true},
		},
	}

	assert.Equal(t, 3, summary.TotalWorkspaces())
	assert.Equal(t, 2, summary.SuccessfulCount())
	assert.Equal(t, 1, summary.FailedCount())
}

func TestSummaryCountsEmpty(t *testing.T) {
	summary := DeploymentSummary{Environment: "dev"}
	assert.Zero(t, summary.TotalWorkspaces())
	assert.Zero(t, summary.SuccessfulCount())
	assert.Zero(t, summary.FailedCount())
}
