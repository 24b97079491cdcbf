// Package buildinfo carries version metadata injected at build time via
// -ldflags "-X vigenere/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("vigenere %s (commit=%s, date=%s)", Version, Commit, Date)
}
