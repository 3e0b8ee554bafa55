package segment

import "strings"

// Region is a delimited formula found by a scanner: s[Start:End] includes
// the delimiters.
type Region struct {
	Start, End int
}

// Body returns the text between the delimiters of r in s.
func (r Region) Body(s string, delim int) string {
	return s[r.Start+delim : r.End-delim]
}

// FindBlocks locates $$...$$ regions by literal bracket matching: an opener
// is the leftmost $$, its closer the first $$ after it. The body may span
// lines and may contain single dollars. An opener without a closer ends the
// scan; the remainder is left to the caller as text.
func FindBlocks(s string) []Region {
	var regions []Region
	i := 0
	for i < len(s) {
		open := strings.Index(s[i:], "$$")
		if open < 0 {
			break
		}
		open += i
		close := strings.Index(s[open+2:], "$$")
		if close < 0 {
			tracer().Debugf("unterminated $$ at offset %d, left as text", open)
			break
		}
		close += open + 2
		regions = append(regions, Region{Start: open, End: close + 2})
		i = close + 2
	}
	return regions
}

// FindInlines locates $...$ regions in text that has no block regions left.
//
// A '$' at i opens a formula only if it is not preceded by '$' and is followed
// by a character other than '$'. The closer is the next '$'; no newline may
// occur before it and it must not be followed by '$'. A failed candidate is
// skipped and scanning resumes at the next byte, so an unterminated '$' stays
// literal text.
func FindInlines(s string) []Region {
	var regions []Region
	for i := 0; i < len(s); i++ {
		if s[i] != '$' {
			continue
		}
		if i > 0 && s[i-1] == '$' {
			continue
		}
		if i+1 >= len(s) || s[i+1] == '$' {
			continue
		}
		j := i + 1
		for j < len(s) && s[j] != '$' && s[j] != '\n' {
			j++
		}
		if j >= len(s) || s[j] != '$' {
			continue
		}
		if j+1 < len(s) && s[j+1] == '$' {
			continue
		}
		regions = append(regions, Region{Start: i, End: j + 1})
		i = j
	}
	return regions
}
