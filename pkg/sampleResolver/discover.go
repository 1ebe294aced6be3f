package sampleResolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// RawFile a discovered file on disk
type RawFile struct {
	Name      string
	FullPath  string
	Directory string
}

func NewRawFile(path string) RawFile {
	return RawFile{
		Name:      filepath.Base(path),
		FullPath:  path,
		Directory: filepath.Dir(path),
	}
}

// HasExtension exact, case-sensitive suffix match
func HasExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if ext != "" && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Discover walks rootDir and returns every file ending with one of extensions, sorted by path
func Discover(rootDir string, extensions []string) ([]RawFile, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	if _, err := os.Stat(rootDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &PathNotFoundError{Path: rootDir}
		}
		return nil, err
	}

	var files []RawFile
	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if HasExtension(d.Name(), extensions) {
			files = append(files, NewRawFile(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", rootDir, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].FullPath < files[j].FullPath
	})
	return files, nil
}

// SingleDirectory requires all files to share one parent directory
func SingleDirectory(files []RawFile) error {
	if len(files) == 0 {
		return nil
	}
	var first = files[0].Directory
	for _, f := range files[1:] {
		if f.Directory != first {
			return &InputValidationError{
				Field:  "directory",
				Value:  f.Directory,
				Reason: fmt.Sprintf("all files must be in the same directory as %s", first),
			}
		}
	}
	return nil
}
