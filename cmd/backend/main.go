// filepath: cmd/backend/main.go
package main

import "sentinel-backend/internal/cli"

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
