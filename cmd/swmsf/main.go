// cmd/swmsf/main.go
package main

import (
	"swmsf/internal/app"
	"swmsf/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
