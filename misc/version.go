// Package misc keeps build related information.
package misc

import (
	"runtime/debug"
	"strings"
)

const appName = "utdfmt"

var (
	version = "dev"
	gitHash = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		version = strings.TrimPrefix(v, "v")
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) > 0 {
			gitHash = s.Value
			if len(gitHash) > 12 {
				gitHash = gitHash[:12]
			}
		}
	}
}

func GetAppName() string { return appName }

func GetVersion() string { return version }

func GetGitHash() string { return gitHash }
