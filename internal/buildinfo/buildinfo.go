package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/aalvaropc/toolbelt/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	v, c, d := resolve(debug.ReadBuildInfo)
	return fmt.Sprintf("toolbelt %s (commit=%s, date=%s)", v, c, d)
}

// resolve fills values left at their defaults from the module build info,
// which `go install` populates.
func resolve(read func() (*debug.BuildInfo, bool)) (version, commit, date string) {
	version, commit, date = Version, Commit, Date

	info, ok := read()
	if !ok {
		return
	}
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && commit == "none":
			commit = s.Value
		case s.Key == "vcs.time" && date == "unknown":
			date = s.Value
		}
	}
	return
}
