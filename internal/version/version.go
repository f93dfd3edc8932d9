// Package version holds the build version, overridable at link time:
//
//	go build -ldflags "-X beaconzone/internal/version.Version=v1.2.3"
package version

var Version = "dev"
