package scanner

// Outcome classifies the result of a delimiter-pair or extension scan.
type Outcome uint8

const (
	// NoMatch means the pattern did not match; the cursor is untouched.
	NoMatch Outcome = iota
	// Match means the full pattern matched.
	Match
	// MatchTrimmedEOL means the closing pattern was not found before a
	// disallowed line break; the partial span up to the break is returned.
	MatchTrimmedEOL
	// MatchTrimmedEOF means the buffer ended before the closing pattern;
	// the partial span up to the end is returned.
	MatchTrimmedEOF
)

// Matched reports whether any input was matched, fully or partially.
func (o Outcome) Matched() bool {
	return o != NoMatch
}

// Trimmed reports whether the match stopped short of its closing pattern.
func (o Outcome) Trimmed() bool {
	return o == MatchTrimmedEOL || o == MatchTrimmedEOF
}

func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "NoMatch"
	case Match:
		return "Match"
	case MatchTrimmedEOL:
		return "MatchTrimmedEOL"
	case MatchTrimmedEOF:
		return "MatchTrimmedEOF"
	}
	return "Unknown"
}
