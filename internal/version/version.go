/*
Package version provides build information for toolbelt.

Values are set via ldflags during build:

	go build -ldflags "-X github.com/khanglvm/toolbelt/internal/version.Version=v1.2.0 \
	  -X github.com/khanglvm/toolbelt/internal/version.Commit=abc1234 \
	  -X github.com/khanglvm/toolbelt/internal/version.Date=2026-10-01"

Without ldflags the build reports itself as "dev".
*/
package version

// Version information (set via ldflags during build)
var (
	// Version is the release tag (e.g., v1.2.0)
	Version = "dev"
	// Commit is the git commit hash (short form)
	Commit = "none"
	// Date is the build date in UTC (YYYY-MM-DD)
	Date = "unknown"
)

// GetVersion returns version information as a formatted string
func GetVersion() string {
	return FormatVersion(Version, Commit, Date)
}

// FormatVersion formats version components into a display string
func FormatVersion(version, commit, date string) string {
	if version == "dev" {
		return version + " (development build)"
	}
	return version + " (commit: " + commit + ", built: " + date + ")"
}

// GetVersionComponents returns individual version components
func GetVersionComponents() (version, commit, date string) {
	return Version, Commit, Date
}
