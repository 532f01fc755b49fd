// issuekit CLI - Command-line client for Redmine-compatible issue trackers
package main

import (
	"github.com/issuekit/issuekit/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	cli.Execute()
}
