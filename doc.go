// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package orchestrator deploys a set of declarative workspace definitions to
// Microsoft Fabric across environments (dev/test/prod).
// It discovers workspace folders, ensures each target workspace exists and
// is permissioned, publishes the declared items into it, and aggregates the
// per-workspace outcomes into a summary report.
//
// Workspaces are deployed strictly sequentially with continue-on-failure
// semantics: one workspace failing never aborts the run, it is recorded in
// the summary and the loop moves on.
package orchestrator
