// cmd/ringron/main.go
package main

import (
	"ringron/internal/app"
	"ringron/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
