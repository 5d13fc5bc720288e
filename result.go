// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package orchestrator

import (
	"fmt"
	"sort"
	"strings"
	"time"

	sets "github.com/deckarep/golang-set/v2"
)

// ValidEnvironments are the deployment environments a run may target.
var ValidEnvironments = sets.NewThreadUnsafeSet("dev", "test", "prod")

// ValidateEnvironment checks the environment name case-insensitively against
// ValidEnvironments.
func ValidateEnvironment(environment string) error {
	if ValidEnvironments.Contains(strings.ToLower(environment)) {
		return nil
	}
	valid := ValidEnvironments.ToSlice()
	sort.Strings(valid)
	return fmt.Errorf("invalid environment '%s'. Must be one of: %s", environment, strings.Join(valid, ", "))
}

// DeploymentResult is the outcome of a single workspace deployment.
// Success and ErrorMessage are mutually consistent: a failed result always
// carries a non-empty error message, a successful one never does.
type DeploymentResult struct {
	WorkspaceFolder string // name of the workspace folder on disk
	WorkspaceName   string // resolved display name in Fabric (folder name if resolution failed)
	Success         bool
	ErrorMessage    string
}

// DeploymentSummary aggregates the results of a run. Results preserve the
// discovery order; only the JSON report sorts by folder name.
type DeploymentSummary struct {
	Environment string
	Duration    time.Duration
	Results     []DeploymentResult
}

// TotalWorkspaces is the number of workspaces processed in the run.
func (s *DeploymentSummary) TotalWorkspaces() int {
	return len(s.Results)
}

// SuccessfulCount is the number of workspaces that deployed successfully.
func (s *DeploymentSummary) SuccessfulCount() int {
	n := 0
	for _, r := range s.Results {
		if r.Success {
			n++
		}
	}
	return n
}

// FailedCount is the number of workspaces that failed to deploy.
func (s *DeploymentSummary) FailedCount() int {
	return s.TotalWorkspaces() - s.SuccessfulCount()
}
