// cmd/beaconzone/main.go
package main

import (
	"beaconzone/internal/app"
	"beaconzone/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
