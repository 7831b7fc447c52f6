// cmd/ipfilter/main.go
package main

import (
	"ipfilter/internal/app"
	"ipfilter/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
