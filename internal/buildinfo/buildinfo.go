// Package buildinfo resolves the version metadata behind lsg --version.
// Release builds stamp the package variables through -ldflags; anything
// left unstamped is filled from the build info the Go toolchain embeds,
// so plain `go install` binaries still report a usable revision.
package buildinfo

import (
	"runtime/debug"
	"sync"
)

// Stamped by -ldflags on release builds, e.g.
//
//	-X github.com/gersbach/lsg/internal/buildinfo.Version=v1.2.0
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// Info is the fully resolved build metadata.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Dirty     bool // built from a modified work tree
}

var (
	resolveOnce sync.Once
	resolved    Info
)

// Resolve merges the stamped variables with the embedded VCS settings.
// Stamped values win; the result is computed once per process.
func Resolve() Info {
	resolveOnce.Do(func() {
		resolved = fromDebug(Info{Version: Version, Commit: Commit, Date: Date})
	})
	return resolved
}

func fromDebug(info Info) Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// String renders the metadata as a single --version line.
func (i Info) String() string {
	out := i.Version
	if i.Commit != "" {
		rev := i.Commit
		if len(rev) > 12 {
			rev = rev[:12]
		}
		if i.Dirty {
			rev += "-dirty"
		}
		out += " (" + rev + ")"
	}
	if i.Date != "" {
		out += " built " + i.Date
	}
	if i.GoVersion != "" {
		out += " with " + i.GoVersion
	}
	return out
}
