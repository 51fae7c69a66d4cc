// Package version resolves the build identifier reported by the health
// endpoint and stamped into startup logs.
package version

import "runtime/debug"

// AppName prefixes the full version string.
const AppName = "pmrunner"

// commit may be injected with
//
//	-ldflags "-X github.com/pm-runner/pmrunner/pkg/version.commit=<sha>"
//
// for container builds that strip the .git directory. When empty, the VCS
// revision embedded by the Go toolchain is used instead, and "dev" is the
// last resort (go test, tarball builds).
var commit string

// GitCommit is the resolved short commit hash, at most 8 characters.
var GitCommit = resolve()

func resolve() string {
	if commit != "" {
		return short(commit)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "pmrunner/<commit>", suitable for log fields and handshakes.
func Full() string {
	return AppName + "/" + GitCommit
}
