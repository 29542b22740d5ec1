package buildinfo

import "github.com/rs/zerolog"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Title is the window title.
func Title() string { return "tanksim (" + Short() + ")" }

type info struct{}

// MarshalZerologObject logs all build identifiers as one object.
func (info) MarshalZerologObject(e *zerolog.Event) {
	e.Str("version", Version).Str("commit", Commit).Str("date", Date)
}

// Fields returns the build identifiers for use with zerolog's Object.
func Fields() zerolog.LogObjectMarshaler { return info{} }
