package config

// DefaultTemplate is the commented starter config written by `sentlint init`.
const DefaultTemplate = `# sentlint configuration
#
# Every sentence in Markdown prose must begin at the start of a line.
# Suspend the rule for a span of lines with:
#   <!-- ignore(sentence-newline) -->
#   ...
#   <!-- unignore(sentence-newline) -->

# File extensions treated as Markdown.
extensions:
  - .md
  - .markdown

# Glob patterns for files and directories to skip.
ignore: []
#  - vendor/**
#  - CHANGELOG.md

# How many consecutive lines an ignore region may cover before the
# region itself is reported.
max_ignore_lines: 20

# Output format: text or json.
format: text
`

// GenerateTemplate returns the starter configuration file content.
func GenerateTemplate() []byte {
	return []byte(DefaultTemplate)
}
