// Package prompt asks questions on a terminal and loops until the answer is valid.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"FastqMe/pkg/sampleResolver"
)

// ErrAborted input closed before a valid answer
var ErrAborted = errors.New("input closed, aborted")

// Predicate nil when answer is acceptable
type Predicate func(answer string) error

// Asker reads answers from In and writes questions to Out
type Asker struct {
	In  *bufio.Reader
	Out io.Writer
}

func NewAsker(in io.Reader, out io.Writer) *Asker {
	return &Asker{In: bufio.NewReader(in), Out: out}
}

// Ask one line, trailing newline and surrounding spaces removed
func (a *Asker) Ask(question string) (string, error) {
	fmt.Fprint(a.Out, question)
	line, err := a.In.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskUntil asks question, then retry, until predicate accepts the answer
func (a *Asker) AskUntil(question, retry string, predicate Predicate) (string, error) {
	var q = question
	for {
		answer, err := a.Ask(q)
		if err != nil {
			return "", err
		}
		err = predicate(answer)
		if err == nil {
			return answer, nil
		}
		fmt.Fprintln(a.Out, err)
		if retry != "" {
			q = retry
		}
	}
}

// Confirm y/yes or n/no, anything else asks again
func (a *Asker) Confirm(question string) (bool, error) {
	var answer, err = a.AskUntil(question, "", OneOf("y", "yes", "n", "no"))
	if err != nil {
		return false, err
	}
	switch NormalizeAnswer(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Choose returns the normalized answer, one of options
func (a *Asker) Choose(question string, options ...string) (string, error) {
	answer, err := a.AskUntil(question, "", OneOf(options...))
	if err != nil {
		return "", err
	}
	return NormalizeAnswer(answer), nil
}

// NormalizeAnswer lower case, spaces and one pair of surrounding quotes removed
func NormalizeAnswer(answer string) string {
	var s = strings.ToLower(strings.TrimSpace(answer))
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	return s
}

// OneOf normalized answer must equal one of options
func OneOf(options ...string) Predicate {
	return func(answer string) error {
		var s = NormalizeAnswer(answer)
		for _, o := range options {
			if s == o {
				return nil
			}
		}
		return &sampleResolver.InputValidationError{
			Field:  "answer",
			Value:  answer,
			Reason: "please answer with " + strings.Join(options, "/"),
		}
	}
}

// NonEmpty answer must not be blank
func NonEmpty(answer string) error {
	if strings.TrimSpace(answer) == "" {
		return &sampleResolver.InputValidationError{Field: "answer", Value: answer, Reason: "empty"}
	}
	return nil
}

// ExistingDir answer must be an existing directory
func ExistingDir(answer string) error {
	info, err := os.Stat(answer)
	if err != nil || !info.IsDir() {
		return &sampleResolver.PathNotFoundError{Path: answer}
	}
	return nil
}
