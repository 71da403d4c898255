// Package version resolves the build's git commit for logging and startup
// banners.
package version

import "runtime/debug"

// AppName prefixes version strings, e.g. "lumen/a3f8c2d1".
const AppName = "lumen"

// commit can be injected with -ldflags for builds without VCS metadata
// (container builds strip .git). When empty the commit comes from
// debug.ReadBuildInfo, and "dev" is the last resort.
var commit string

// GitCommit is the short commit hash, resolved once at init.
var GitCommit = resolveCommit()

func resolveCommit() string {
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

// Full returns "<app>/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}
