package sampleResolver

import (
	"fmt"
	"strings"
)

// InputValidationError malformed or out-of-range input
type InputValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// PathNotFoundError supplied path does not exist
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

// ClassificationError a file can not be assigned to forward or reverse
type ClassificationError struct {
	File   string
	Reason string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("can not classify %s: %s", e.File, e.Reason)
}

// PlanInconsistencyError samples with empty forward or reverse list
type PlanInconsistencyError struct {
	Samples []SampleID
}

func (e *PlanInconsistencyError) Error() string {
	var ids = make([]string, len(e.Samples))
	for i, id := range e.Samples {
		ids[i] = string(id)
	}
	return fmt.Sprintf("samples missing forward or reverse reads: %s", strings.Join(ids, ","))
}
