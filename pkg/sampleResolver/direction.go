package sampleResolver

import (
	"fmt"
	"strings"
)

// Direction read direction
type Direction int

const (
	Forward Direction = iota + 1
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Reverse:
		return "Reverse"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Tokenize splits a file name on '_' and '.'
func Tokenize(fileName string) []string {
	return strings.FieldsFunc(fileName, func(r rune) bool {
		return r == '_' || r == '.'
	})
}

// ClassifyDirection decides forward or reverse from the tokens of a file name
func ClassifyDirection(tokens []string, style Style, strict bool) (Direction, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1] != "gz" {
		return 0, &ClassificationError{Reason: "ensure files are gzipped"}
	}

	switch style {
	case StyleRx:
		var r1, r2 bool
		for _, t := range tokens {
			switch t {
			case "R1":
				r1 = true
			case "R2":
				r2 = true
			}
		}
		switch {
		case r1 && !r2:
			return Forward, nil
		case r2 && !r1:
			return Reverse, nil
		case r1 && r2:
			return 0, &ClassificationError{Reason: "both R1 and R2 found"}
		}
		return 0, &ClassificationError{Reason: "neither R1 nor R2 found"}
	case StyleNumeric:
		if len(tokens) < 3 {
			return 0, &ClassificationError{Reason: "too few tokens for numeric style"}
		}
		var t = tokens[len(tokens)-3]
		var has1, has2 bool
		if strict {
			has1, has2 = t == "1", t == "2"
		} else {
			has1, has2 = strings.Contains(t, "1"), strings.Contains(t, "2")
		}
		switch {
		case has1 && !has2:
			return Forward, nil
		case has2 && !has1:
			return Reverse, nil
		case has1 && has2:
			return 0, &ClassificationError{Reason: fmt.Sprintf("token %q contains both 1 and 2", t)}
		}
		return 0, &ClassificationError{Reason: fmt.Sprintf("token %q contains neither 1 nor 2", t)}
	}
	return 0, &ClassificationError{Reason: fmt.Sprintf("unknown style %q", style)}
}

// ClassifyFile tokenizes name and classifies it, the error names the file
func ClassifyFile(name string, style Style, strict bool) (Direction, error) {
	d, err := ClassifyDirection(Tokenize(name), style, strict)
	if err != nil {
		if ce, ok := err.(*ClassificationError); ok {
			ce.File = name
		}
		return 0, err
	}
	return d, nil
}
