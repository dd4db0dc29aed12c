package cli

import "github.com/yaklabco/sentlint/pkg/runner"

// Exit codes for sentlint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitIssuesFound indicates the check completed and found violations.
	ExitIssuesFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64
)

// ExitCodeFromResult determines the exit code based on the scan result.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasIssues() {
		return ExitIssuesFound
	}
	return ExitSuccess
}
