package version

// Version is the current release.
const Version = "0.4.0"

// BuildDate is injected at link time.
var BuildDate = "unknown"

// GitCommit is injected at link time.
var GitCommit = "unknown"

// ProjectURL is printed by the version command.
const ProjectURL = "https://github.com/YangQing-Lin/git-ignore"

// GetVersion returns the release version.
func GetVersion() string { return Version }

// GetBuildDate returns the build date.
func GetBuildDate() string { return BuildDate }

// GetGitCommit returns the git commit hash.
func GetGitCommit() string { return GitCommit }
