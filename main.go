/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command dtcgnorm normalizes and resolves DTCG design token documents.
package main

import (
	"os"

	"github.com/tokentree/dtcgnorm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
