// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"

	"github.com/dc-floriangaerner/fabric-orchestrator/internal/environment"
)

// ResolveDirectory resolves the workspaces source to a local directory.
//
// Local paths are returned as-is (a missing one is reported by discovery).
// Remote sources are go-getter URLs (git, http, s3, ...) fetched into the
// orchestrator cache directory, so pipelines can deploy straight from a
// remote definition repository.
func ResolveDirectory(ctx context.Context, src string) (string, error) {
	if !isRemote(src) {
		return src, nil
	}

	dst := filepath.Join(environment.CacheDir(), "workspaces")
	slog.Info(fmt.Sprintf("-> Fetching workspaces from %s", src))

	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeDir,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("failed to fetch workspaces from %s: %w", src, err)
	}
	return dst, nil
}

// isRemote reports whether the source names a remote location rather than a
// local path.
func isRemote(src string) bool {
	return strings.Contains(src, "://") ||
		strings.Contains(src, "::") ||
		strings.HasPrefix(src, "github.com/") ||
		strings.HasPrefix(src, "git@")
}
