package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// buildDetails carries the metadata injected through the linker, with
// module build info filling in whatever the linker flags left unset.
type buildDetails struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Runtime string `json:"runtime"`
}

func resolveBuild() buildDetails {
	d := buildDetails{
		Version: Version,
		Commit:  Commit,
		Date:    BuildDate,
		Runtime: runtime.Version(),
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return d
	}
	if d.Version == "dev" && info.Main.Version != "" {
		d.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if d.Commit == "none" {
				d.Commit = s.Value
			}
		case "vcs.time":
			if d.Date == "unknown" {
				d.Date = s.Value
			}
		}
	}
	return d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print issuekit build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := resolveBuild()
		if jsonOutput {
			return printJSON(d)
		}
		fmt.Printf("issuekit %s (commit %s, built %s)\n", d.Version, d.Commit, d.Date)
		fmt.Println(d.Runtime)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
