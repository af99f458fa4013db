// Package buildinfo carries the version stamped in at link time:
//
//	go build -ldflags "-X github.com/cdclaxton/guitar-tab-generator/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("tabgen %s (commit=%s, date=%s)", Version, Commit, Date)
}
