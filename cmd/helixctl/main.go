// Command helixctl manages a Twitch channel through the Helix API.
package main

import (
	"os"
	"runtime/debug"

	"github.com/jokarl/helixctl/internal/cli"
)

// Set via ldflags; otherwise read from the module build info.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	fillFromBuildInfo()

	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// fillFromBuildInfo covers `go install module@version`, where no ldflags
// are passed.
func fillFromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	if commit != "none" {
		return
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
			if len(commit) > 7 {
				commit = commit[:7]
			}
		case "vcs.time":
			date = setting.Value
		}
	}
}
