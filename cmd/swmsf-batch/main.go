// cmd/swmsf-batch/main.go
package main

import (
	"swmsf/internal/appshell"
	"swmsf/internal/batchapp"
)

func main() {
	appshell.Main(batchapp.RunContext)
}
