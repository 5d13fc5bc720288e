// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheDir(t *testing.T) {
	t.Setenv(cacheDefaultBaseDirEnv, "")
	assert.Equal(t, ".fabric-orchestrator", CacheDir())

	t.Setenv(cacheDefaultBaseDirEnv, "/tmp/cache")
	assert.Equal(t, "/tmp/cache", CacheDir())
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv(ActionsRunnerDebugEnv, "")
	assert.False(t, DebugEnabled())

	t.Setenv(ActionsRunnerDebugEnv, "true")
	assert.True(t, DebugEnabled())

	t.Setenv(ActionsRunnerDebugEnv, "TRUE")
	assert.True(t, DebugEnabled())

	t.Setenv(ActionsRunnerDebugEnv, "false")
	assert.False(t, DebugEnabled())
}

func TestWorkspaceCreationSettings(t *testing.T) {
	t.Setenv(FabricCapacityIDEnv, "cap-id")
	t.Setenv(DeploymentSPObjectIDEnv, "sp-id")
	t.Setenv(FabricAdminGroupIDEnv, "grp-id")

	assert.Equal(t, "cap-id", CapacityID())
	assert.Equal(t, "sp-id", ServicePrincipalObjectID())
	assert.Equal(t, "grp-id", AdminGroupID())
}
