package stage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/liserjrqlxue/goUtil/osUtil"
)

const (
	UndeterminedPrefix = "Undetermined"
	OtherDir           = "Other"
)

// MoveUndetermined moves Undetermined* files of dir into dir/otherDir, returns moved names
func MoveUndetermined(dir, otherDir string) (moved []string, err error) {
	if otherDir == "" {
		otherDir = OtherDir
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var target = filepath.Join(dir, otherDir)
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), UndeterminedPrefix) {
			continue
		}
		if !osUtil.FileExists(target) {
			if err := os.MkdirAll(target, 0755); err != nil {
				return moved, err
			}
		}
		if err := os.Rename(filepath.Join(dir, e.Name()), filepath.Join(target, e.Name())); err != nil {
			return moved, fmt.Errorf("move %s: %w", e.Name(), err)
		}
		moved = append(moved, e.Name())
	}
	slog.Info("Moving undetermined files", "dir", dir, "to", target, "count", len(moved))
	return moved, nil
}
