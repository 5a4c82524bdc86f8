package main

import "runtime/debug"

const baseVersion = "1.0.0"

var version = getVersion()

func getVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return baseVersion
	}

	var revision, modified string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}

	if revision == "" {
		return baseVersion
	}

	if len(revision) > 7 {
		revision = revision[:7]
	}

	if modified == "true" {
		return baseVersion + "+" + revision + "-dirty"
	}
	return baseVersion + "+" + revision
}
