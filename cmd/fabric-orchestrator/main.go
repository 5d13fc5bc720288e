// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import "github.com/dc-floriangaerner/fabric-orchestrator/cmd/fabric-orchestrator/command"

func main() {
	command.Execute()
}
