// Package buildinfo provides build metadata for sha256sum binaries.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the release version, injected with -ldflags -X.
	Version string
	// Commit is the source revision, injected with -ldflags -X.
	Commit string
	// Date is the build timestamp, injected with -ldflags -X.
	Date string
)

// Info contains normalized build metadata.
type Info struct {
	Version string
	Commit  string
	Date    string
	Go      string
	OS      string
	Arch    string
}

// Get returns build metadata. Values missing from -ldflags fall back to
// what the Go toolchain embedded in the binary, then to placeholders.
func Get() Info {
	return resolve(Version, Commit, Date, readBuildInfo)
}

func readBuildInfo() (*debug.BuildInfo, bool) { return debug.ReadBuildInfo() }

func resolve(version, commit, date string, read func() (*debug.BuildInfo, bool)) Info {
	if bi, ok := read(); ok && bi != nil {
		if version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			version = bi.Main.Version
		}
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if commit == "" {
					commit = setting.Value
				}
			case "vcs.time":
				if date == "" {
					date = setting.Value
				}
			}
		}
	}

	return Info{
		Version: orDefault(version, "dev"),
		Commit:  orDefault(commit, "unknown"),
		Date:    orDefault(date, "unknown"),
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// String formats build metadata for CLI output.
func (i Info) String() string {
	return fmt.Sprintf("sha256sum %s\ncommit: %s\nbuilt:  %s\ngo:     %s\nos/arch:%s/%s", i.Version, i.Commit, i.Date, i.Go, i.OS, i.Arch)
}
