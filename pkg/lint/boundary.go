package lint

// snippetContext is the number of bytes of context kept on each side of a
// boundary match when building the reported snippet.
const snippetContext = 5

// isTerminator reports whether b is sentence-ending punctuation.
func isTerminator(b byte) bool {
	return b == '.' || b == '?' || b == '!'
}

// isSpaceByte reports whether b is ASCII whitespace.
func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// boundaryMatch scans line left to right for a sentence boundary: a
// terminator followed by exactly one space that is not followed by further
// whitespace. A candidate position is rejected when:
//
//   - the three bytes before the terminator spell "e.g", "i.e" or "etc"
//     (fixed-width abbreviation check; other abbreviations slip through,
//     which is an accepted false negative)
//   - the byte before the terminator is itself a terminator, so ellipses
//     and emphasis runs like "Wait... ok" or "Really?! no" do not count
//   - the byte before the terminator is a digit, so ordered-list markers
//     like "1. Item" do not count
//
// The first qualifying position wins; at most one match per line.
func boundaryMatch(line string) (start, end int, ok bool) {
	for i := 0; i < len(line); i++ {
		if !isTerminator(line[i]) {
			continue
		}
		if i+1 >= len(line) || line[i+1] != ' ' {
			continue
		}
		if i+2 < len(line) && isSpaceByte(line[i+2]) {
			continue
		}
		if i >= 1 && (isTerminator(line[i-1]) || isDigit(line[i-1])) {
			continue
		}
		if i >= 3 && isAbbreviation(line[i-3:i]) {
			continue
		}
		return i, i + 2, true
	}
	return 0, 0, false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAbbreviation(s string) bool {
	return s == "e.g" || s == "i.e" || s == "etc"
}

// boundarySnippet returns the context window around the first boundary
// match on line: snippetContext bytes before the match through
// snippetContext bytes after it, clamped to the line.
func boundarySnippet(line string) (string, bool) {
	start, end, ok := boundaryMatch(line)
	if !ok {
		return "", false
	}
	from := max(0, start-snippetContext)
	to := min(len(line), end+snippetContext)
	return line[from:to], true
}
