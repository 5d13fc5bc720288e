// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package command

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	orchestrator "github.com/dc-floriangaerner/fabric-orchestrator"
	"github.com/dc-floriangaerner/fabric-orchestrator/internal/auth"
	"github.com/dc-floriangaerner/fabric-orchestrator/internal/environment"
	"github.com/dc-floriangaerner/fabric-orchestrator/internal/logging"
	"github.com/dc-floriangaerner/fabric-orchestrator/pkg/config"
	"github.com/dc-floriangaerner/fabric-orchestrator/pkg/publish"
)

var version = "dev"

const separatorLong = "======================================================================"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "fabric-orchestrator",
	Version: version,
	Short:   "Deploy Microsoft Fabric workspaces across environments",
	Long: `Fabric Orchestrator - Deploy Microsoft Fabric workspaces across environments.

Auto-discovers all workspace folders beneath the workspaces directory,
ensures each target workspace exists (creating and permissioning it when
needed), deploys the declared items, and writes a JSON results file for the
CI/CD job summary.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, _ []string) {
		workspacesDirectory, _ := cmd.Flags().GetString("workspaces-directory")
		env, _ := cmd.Flags().GetString("environment")

		logging.Setup(environment.DebugEnabled())

		slog.Info("\n" + separatorLong)
		slog.Info("FABRIC MULTI-WORKSPACE DEPLOYMENT")
		slog.Info(separatorLong)
		slog.Info(fmt.Sprintf("Environment: %s", strings.ToUpper(env)))
		slog.Info(fmt.Sprintf("Workspaces directory: %s", workspacesDirectory))
		slog.Info(separatorLong + "\n")

		if err := orchestrator.ValidateEnvironment(env); err != nil {
			failValidation(err)
		}
		env = strings.ToLower(env)

		credential, err := auth.NewCredential()
		if err != nil {
			failCritical(err)
		}

		rootDir, err := config.ResolveDirectory(cmd.Context(), workspacesDirectory)
		if err != nil {
			failCritical(err)
		}

		folders, err := config.DiscoverWorkspaceFolders(rootDir, "")
		if err != nil {
			failValidation(err)
		}

		deployer := &orchestrator.Deployer{
			WorkspacesDir:            rootDir,
			Environment:              env,
			Credential:               credential,
			CapacityID:               environment.CapacityID(),
			ServicePrincipalObjectID: environment.ServicePrincipalObjectID(),
			AdminGroupID:             environment.AdminGroupID(),
			Items:                    publish.New(),
		}

		start := time.Now()
		results := deployer.DeployAll(cmd.Context(), folders)
		summary := orchestrator.DeploymentSummary{
			Environment: env,
			Duration:    time.Since(start),
			Results:     results,
		}

		if err := orchestrator.SaveResults(summary, orchestrator.ResultsFilename); err != nil {
			failCritical(err)
		}
		orchestrator.PrintSummary(summary)

		if failed := summary.FailedCount(); failed > 0 {
			slog.Warn(fmt.Sprintf("\nDeployment completed with %d failure(s)\n", failed))
			os.Exit(1)
		}
		slog.Info(fmt.Sprintf("\nAll %d workspace(s) deployed successfully!\n", summary.SuccessfulCount()))
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("workspaces-directory", "",
		"Root directory containing workspace folders (local path or go-getter URL)")
	rootCmd.Flags().String("environment", "",
		"Target environment (dev/test/prod)")
	_ = rootCmd.MarkFlagRequired("workspaces-directory")
	_ = rootCmd.MarkFlagRequired("environment")
}

// failValidation reports a bad-input error (environment name, missing
// directory, empty discovery) and exits.
func failValidation(err error) {
	slog.Error(fmt.Sprintf("\n[FAIL] VALIDATION ERROR: %s\n", err))
	os.Exit(1)
}

// failCritical reports an unexpected error outside the per-workspace
// recovery loop and exits. No results file is written.
func failCritical(err error) {
	slog.Error(fmt.Sprintf("\n[FAIL] CRITICAL ERROR: %s\n", err))
	os.Exit(1)
}
