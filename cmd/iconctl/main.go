/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command iconctl inspects and publishes icon catalogues.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
