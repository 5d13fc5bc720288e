// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package orchestrator

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// ResultsFilename is the JSON results file written after each run, consumed
// by the CI/CD job summary.
const ResultsFilename = "deployment-results.json"

// WorkspaceReport is one workspace entry in the JSON results file.
type WorkspaceReport struct {
	Name     string `json:"name"`      // workspace folder
	FullName string `json:"full_name"` // resolved display name
	Status   string `json:"status"`    // "success" or "failure"
	Error    string `json:"error"`
}

// ResultsJSON is the schema of the JSON results file.
type ResultsJSON struct {
	Environment     string            `json:"environment"`
	Duration        float64           `json:"duration"` // seconds
	TotalWorkspaces int               `json:"total_workspaces"`
	SuccessfulCount int               `json:"successful_count"`
	FailedCount     int               `json:"failed_count"`
	Workspaces      []WorkspaceReport `json:"workspaces"`
}

// BuildResultsJSON converts a summary into the JSON report structure.
// Workspaces are sorted by folder name for stable output.
func BuildResultsJSON(summary DeploymentSummary) ResultsJSON {
	workspaces := make([]WorkspaceReport, 0, len(summary.Results))
	for _, result := range summary.Results {
		status := "success"
		if !result.Success {
			status = "failure"
		}
		workspaces = append(workspaces, WorkspaceReport{
			Name:     result.WorkspaceFolder,
			FullName: result.WorkspaceName,
			Status:   status,
			Error:    result.ErrorMessage,
		})
	}
	sort.Slice(workspaces, func(i, j int) bool { return workspaces[i].Name < workspaces[j].Name })

	return ResultsJSON{
		Environment:     summary.Environment,
		Duration:        summary.Duration.Seconds(),
		TotalWorkspaces: summary.TotalWorkspaces(),
		SuccessfulCount: summary.SuccessfulCount(),
		FailedCount:     summary.FailedCount(),
		Workspaces:      workspaces,
	}
}

// SaveResults writes the JSON results file for the run.
func SaveResults(summary DeploymentSummary, path string) error {
	data, err := json.MarshalIndent(BuildResultsJSON(summary), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal deployment results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write deployment results to %s: %w", path, err)
	}
	slog.Info(fmt.Sprintf("\n-> Deployment results written to %s", path))
	return nil
}

// PrintSummary logs the formatted deployment summary: environment, duration,
// counts, then the successful and failed workspaces (failures with their
// error text).
func PrintSummary(summary DeploymentSummary) {
	slog.Info("\n" + separatorLong)
	slog.Info("DEPLOYMENT SUMMARY")
	slog.Info(separatorLong)
	slog.Info(fmt.Sprintf("Environment: %s", strings.ToUpper(summary.Environment)))
	slog.Info(fmt.Sprintf("Duration: %.2f seconds", summary.Duration.Seconds()))
	slog.Info(fmt.Sprintf("Total workspaces: %d", summary.TotalWorkspaces()))
	slog.Info(fmt.Sprintf("Successful: %d", summary.SuccessfulCount()))
	slog.Info(fmt.Sprintf("Failed: %d", summary.FailedCount()))
	slog.Info(separatorLong)

	var successful []string
	type failure struct{ name, err string }
	var failed []failure
	for _, result := range summary.Results {
		if result.Success {
			successful = append(successful, result.WorkspaceName)
		} else {
			failed = append(failed, failure{name: result.WorkspaceName, err: result.ErrorMessage})
		}
	}

	if len(successful) > 0 {
		slog.Info("\n[OK] SUCCESSFUL DEPLOYMENTS:")
		for _, name := range successful {
			slog.Info(fmt.Sprintf("  [OK] %s", name))
		}
	}
	if len(failed) > 0 {
		slog.Error("\n[FAIL] FAILED DEPLOYMENTS:")
		for _, f := range failed {
			slog.Error(fmt.Sprintf("  [FAIL] %s", f.name))
			slog.Error(fmt.Sprintf("    Error: %s", f.err))
		}
	}

	slog.Info("\n" + separatorLong)
}
