package sampleResolver

import (
	"sort"
	"strings"
)

// Style read direction naming style
type Style string

const (
	// StyleRx uses literal R1/R2 tokens
	StyleRx Style = "Rx"
	// StyleNumeric uses a trailing _1/_2 token
	StyleNumeric Style = "numeric"
)

// Mode how a SampleID is taken from a file name
type Mode string

const (
	// ModeSuffix strips a known pair suffix, e.g. _R1_001.fastq.gz
	ModeSuffix Mode = "suffix"
	// ModePrefix keeps the text before the first delimiter
	ModePrefix Mode = "prefix"
)

const DefaultDelimiter = "_"

var DefaultExtensions = []string{".fastq.gz", ".fq.gz"}

// DefaultSuffixes known pair suffixes
var DefaultSuffixes = []string{
	"_1.fq.gz", "_2.fq.gz",
	"_1.fastq.gz", "_2.fastq.gz",
	"_R1.fq.gz", "_R2.fq.gz",
	"_R1.fastq.gz", "_R2.fastq.gz",
	"_R1_001.fq.gz", "_R2_001.fq.gz",
	"_R1_001.fastq.gz", "_R2_001.fastq.gz",
}

// NamingConvention describes how file names are parsed. Zero values fall back to defaults.
type NamingConvention struct {
	Style      Style
	Mode       Mode
	Delimiter  string
	Extensions []string
	Suffixes   []string

	// Strict numeric style: the direction token must be exactly "1" or "2"
	Strict bool
}

// NewNamingConvention returns a convention with default delimiter, extensions and suffixes
func NewNamingConvention(style Style, mode Mode) NamingConvention {
	return NamingConvention{
		Style:      style,
		Mode:       mode,
		Delimiter:  DefaultDelimiter,
		Extensions: append([]string(nil), DefaultExtensions...),
		Suffixes:   append([]string(nil), DefaultSuffixes...),
	}
}

func (nc NamingConvention) extensions() []string {
	if len(nc.Extensions) == 0 {
		return DefaultExtensions
	}
	return nc.Extensions
}

func (nc NamingConvention) suffixes() []string {
	if len(nc.Suffixes) == 0 {
		return DefaultSuffixes
	}
	return nc.Suffixes
}

func (nc NamingConvention) mode() Mode {
	if nc.Mode == "" {
		return ModeSuffix
	}
	return nc.Mode
}

// Check validates style and mode
func (nc NamingConvention) Check() error {
	if nc.Style != StyleRx && nc.Style != StyleNumeric {
		return &InputValidationError{Field: "style", Value: string(nc.Style), Reason: "expect Rx or numeric"}
	}
	switch nc.mode() {
	case ModeSuffix, ModePrefix:
	default:
		return &InputValidationError{Field: "mode", Value: string(nc.Mode), Reason: "expect suffix or prefix"}
	}
	return nil
}

// ParseStyle accepts Rx/R1/R2 or numeric/1/2, case-insensitive, surrounding quotes ignored
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(trimQuotes(strings.TrimSpace(s))) {
	case "rx", "r", "r1", "r2", "r1/r2":
		return StyleRx, nil
	case "numeric", "number", "1", "2", "1/2":
		return StyleNumeric, nil
	}
	return "", &InputValidationError{Field: "style", Value: s, Reason: "expect Rx or numeric"}
}

// ParseMode accepts suffix or prefix
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSuffix:
		return ModeSuffix, nil
	case ModePrefix:
		return ModePrefix, nil
	}
	return "", &InputValidationError{Field: "mode", Value: s, Reason: "expect suffix or prefix"}
}

// SortSuffixes longest first, ties keep input order
func SortSuffixes(suffixes []string) []string {
	var sorted = append([]string(nil), suffixes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	return sorted
}

func trimQuotes(s string) string {
	if len(s) >= 2 {
		var first, last = s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
