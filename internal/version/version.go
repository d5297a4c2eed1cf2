package version

// Set at build time with -ldflags, e.g.
// go build -ldflags "-X github.com/alexiusacademia/acibeam/internal/version.Version=0.2.0"
var (
	Version = "0.1.0"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2025"
)

// Info is the one line version string shown by the CLI.
func Info() string {
	return "acibeam v" + Version + " (" + GitCommit + ", built " + BuildTime + ")"
}
