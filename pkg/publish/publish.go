// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package publish deploys the item definitions declared by a workspace
// configuration into a Fabric workspace.
//
// It is a deliberately thin, config-driven publisher: item folders named
// `<DisplayName>.<Type>` under the configured repository directory are
// uploaded as inline item definitions (every file in the folder, including
// the `.platform` metadata part), creating items that are absent and
// updating the definition of items that already exist. Parameterization,
// folder hierarchies and item deletion are out of scope.
package publish

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/microsoft/fabric-sdk-go/fabric"
	"github.com/microsoft/fabric-sdk-go/fabric/core"

	"github.com/dc-floriangaerner/fabric-orchestrator/pkg/config"
	"github.com/dc-floriangaerner/fabric-orchestrator/pkg/workspace"
)

// Publisher publishes workspace items through the Fabric items API.
type Publisher struct{}

// New creates a Publisher.
func New() *Publisher {
	return &Publisher{}
}

// Deploy loads the workspace configuration at configPath and publishes every
// in-scope item definition into the workspace the configuration names for
// the environment. The workspace must already exist.
func (p *Publisher) Deploy(ctx context.Context, configPath, environment string, credential azcore.TokenCredential) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	workspaceName, err := cfg.WorkspaceName(environment)
	if err != nil {
		return err
	}

	fc, err := fabric.NewClient(credential, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create Fabric client: %w", err)
	}
	factory := core.NewClientFactoryWithClient(*fc)

	manager := workspace.NewManager(workspace.NewClientFromFactory(factory))
	workspaceID, found, err := manager.Exists(ctx, workspaceName)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("workspace '%s' not found; ensure it exists before publishing items", workspaceName)
	}

	repoDir := filepath.Dir(configPath)
	if sub := cfg.RepositoryDirectory(); sub != "" {
		repoDir = filepath.Join(repoDir, sub)
	}
	definitions, err := scanItemFolders(repoDir, cfg.ItemTypesInScope())
	if err != nil {
		return err
	}
	if len(definitions) == 0 {
		slog.Info("  (i) No item definitions found to publish", "dir", repoDir)
		return nil
	}

	return p.publishItems(ctx, factory.NewItemsClient(), workspaceID, definitions)
}

// itemFolder is one `<DisplayName>.<Type>` definition folder on disk.
type itemFolder struct {
	displayName string
	itemType    string
	path        string
}

// scanItemFolders finds the item definition folders under repoDir. When
// inScope is non-empty, folders of other item types are skipped.
func scanItemFolders(repoDir string, inScope []string) ([]itemFolder, error) {
	entries, err := os.ReadDir(repoDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read repository directory %s: %w", repoDir, err)
	}

	var folders []itemFolder
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name, itemType, ok := strings.Cut(entry.Name(), ".")
		if !ok || name == "" || itemType == "" {
			continue
		}
		if len(inScope) > 0 && !contains(inScope, itemType) {
			continue
		}
		folders = append(folders, itemFolder{
			displayName: name,
			itemType:    itemType,
			path:        filepath.Join(repoDir, entry.Name()),
		})
	}
	return folders, nil
}

func (p *Publisher) publishItems(ctx context.Context, items *core.ItemsClient, workspaceID string, folders []itemFolder) error {
	existing, err := listItems(ctx, items, workspaceID)
	if err != nil {
		return err
	}

	for _, folder := range folders {
		definition, err := buildDefinition(folder.path)
		if err != nil {
			return err
		}

		key := folder.displayName + "." + folder.itemType
		if id, ok := existing[key]; ok {
			slog.Info(fmt.Sprintf("  -> Updating item %s...", key))
			_, err = items.UpdateItemDefinition(ctx, workspaceID, id, core.UpdateItemDefinitionRequest{
				Definition: definition,
			}, nil)
			if err != nil {
				return fmt.Errorf("failed to update item %s: %w", key, err)
			}
			continue
		}

		slog.Info(fmt.Sprintf("  -> Creating item %s...", key))
		_, err = items.CreateItem(ctx, workspaceID, core.CreateItemRequest{
			DisplayName: to.Ptr(folder.displayName),
			Type:        to.Ptr(core.ItemType(folder.itemType)),
			Definition:  definition,
		}, nil)
		if err != nil {
			return fmt.Errorf("failed to create item %s: %w", key, err)
		}
	}

	slog.Info(fmt.Sprintf("  [OK] Published %d item(s)", len(folders)))
	return nil
}

// listItems returns the workspace's items keyed by "<DisplayName>.<Type>".
func listItems(ctx context.Context, items *core.ItemsClient, workspaceID string) (map[string]string, error) {
	existing := make(map[string]string)
	pager := items.NewListItemsPager(workspaceID, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list workspace items: %w", err)
		}
		for _, item := range page.Value {
			if item.ID == nil || item.DisplayName == nil || item.Type == nil {
				continue
			}
			existing[*item.DisplayName+"."+string(*item.Type)] = *item.ID
		}
	}
	return existing, nil
}

// buildDefinition collects every regular file under dir into an inline
// base64 item definition. Dot-files are definition parts too: Fabric items
// carry their metadata in a `.platform` part.
func buildDefinition(dir string) (*core.ItemDefinition, error) {
	var parts []core.ItemDefinitionPart
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		parts = append(parts, core.ItemDefinitionPart{
			Path:        to.Ptr(filepath.ToSlash(rel)),
			Payload:     to.Ptr(base64.StdEncoding.EncodeToString(data)),
			PayloadType: to.Ptr(core.PayloadTypeInlineBase64),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build item definition from %s: %w", dir, err)
	}
	return &core.ItemDefinition{Parts: parts}, nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
