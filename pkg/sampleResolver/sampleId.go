package sampleResolver

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// SampleID sample identifier taken from a file name
type SampleID string

// ExtractSampleID returns the text before the first delimiter.
// ok is false when delimiter is absent and the whole name is returned.
func ExtractSampleID(fileName, delimiter string) (id SampleID, ok bool) {
	if delimiter == "" {
		return SampleID(fileName), false
	}
	before, _, found := strings.Cut(fileName, delimiter)
	if !found || before == "" {
		return SampleID(fileName), false
	}
	return SampleID(before), true
}

// SuffixStripper removes one known pair suffix from file names
type SuffixStripper struct {
	suffixes []string
	matcher  *ahocorasick.Matcher
}

func NewSuffixStripper(suffixes []string) *SuffixStripper {
	if len(suffixes) == 0 {
		suffixes = DefaultSuffixes
	}
	var sorted = SortSuffixes(suffixes)
	return &SuffixStripper{
		suffixes: sorted,
		matcher:  ahocorasick.NewStringMatcher(sorted),
	}
}

// Strip removes the longest matching suffix.
// ok is false when nothing matches and fileName is returned unchanged.
func (s *SuffixStripper) Strip(fileName string) (id SampleID, ok bool) {
	var best = -1
	for _, i := range s.matcher.Match([]byte(fileName)) {
		var suffix = s.suffixes[i]
		if !strings.HasSuffix(fileName, suffix) || len(suffix) >= len(fileName) {
			continue
		}
		if best < 0 || len(suffix) > len(s.suffixes[best]) || (len(suffix) == len(s.suffixes[best]) && i < best) {
			best = i
		}
	}
	if best < 0 {
		return SampleID(fileName), false
	}
	return SampleID(strings.TrimSuffix(fileName, s.suffixes[best])), true
}

// StripSuffix one-shot Strip with given suffixes
func StripSuffix(fileName string, suffixes []string) (SampleID, bool) {
	return NewSuffixStripper(suffixes).Strip(fileName)
}
