package version

import "github.com/fatih/color"

// Version information for the tokenizer CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Major, Minor and Patch make up Version.
	Major = "1"
	Minor = "0"
	Patch = "0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Plain returns the uncolored semantic version.
func Plain() string {
	return Major + "." + Minor + "." + Patch
}

// String returns the version with each component colored. fatih/color
// drops the escapes on its own when stdout is not a terminal.
func String() string {
	s := versionMajorColor.Sprint(Major) + "." + versionMinorColor.Sprint(Minor) + "." + versionPatchColor.Sprint(Patch)
	if GitCommit != "" {
		s += " (" + GitCommit + ")"
	}
	if BuildDate != "" {
		s += " built " + BuildDate
	}
	return s
}
