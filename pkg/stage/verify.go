package stage

import (
	"bufio"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// SlimsManifest md5 manifest name shipped with SLIMS downloads
const SlimsManifest = "@md5Sum.md5"

// Verifier checks files listed in a manifest
type Verifier interface {
	Verify(ctx context.Context, manifestPath string) error
}

// ChecksumError files that are corrupt or missing
type ChecksumError struct {
	Manifest string
	Mismatch []string
	Missing  []string
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf(
		"%s: some files are corrupt or missing, mismatch:[%s] missing:[%s]",
		e.Manifest,
		strings.Join(e.Mismatch, ","),
		strings.Join(e.Missing, ","),
	)
}

// ManifestEntry one line of an md5sum manifest
type ManifestEntry struct {
	Sum  string
	Name string
}

// ParseManifest reads md5sum output lines: "<hex>  <name>" or "<hex> *<name>"
func ParseManifest(r io.Reader) (entries []ManifestEntry, err error) {
	var scanner = bufio.NewScanner(r)
	var n = 0
	for scanner.Scan() {
		n++
		var line = strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sum, name, ok := strings.Cut(line, " ")
		if !ok || len(sum) != md5.Size*2 {
			return nil, fmt.Errorf("manifest line %d: malformed %q", n, line)
		}
		name = strings.TrimPrefix(strings.TrimPrefix(name, " "), "*")
		if name == "" {
			return nil, fmt.Errorf("manifest line %d: no file name", n)
		}
		entries = append(entries, ManifestEntry{Sum: strings.ToLower(sum), Name: name})
	}
	return entries, scanner.Err()
}

// Md5Sum hex md5 of file
func Md5Sum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	var h = md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Md5Verifier hashes every manifest entry relative to the manifest directory
type Md5Verifier struct{}

func (Md5Verifier) Verify(ctx context.Context, manifestPath string) error {
	f, err := os.Open(manifestPath)
	if err != nil {
		return err
	}
	entries, err := ParseManifest(f)
	f.Close()
	if err != nil {
		return err
	}

	var (
		dir    = filepath.Dir(manifestPath)
		result = &ChecksumError{Manifest: manifestPath}
	)
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		sum, err := Md5Sum(filepath.Join(dir, filepath.FromSlash(e.Name)))
		if err != nil {
			if os.IsNotExist(err) {
				result.Missing = append(result.Missing, e.Name)
				continue
			}
			return err
		}
		if sum != e.Sum {
			result.Mismatch = append(result.Mismatch, e.Name)
		}
	}
	if len(result.Mismatch)+len(result.Missing) > 0 {
		return result
	}
	slog.Info("All files have the correct md5sum", "manifest", manifestPath, "files", len(entries))
	return nil
}

// CommandVerifier md5sum -c manifest, run in the manifest directory
type CommandVerifier struct {
	Binary string
	Run    Runner
}

func (v CommandVerifier) Verify(ctx context.Context, manifestPath string) error {
	var run = v.Run
	if run == nil {
		run = RunCommand
	}
	var binary = v.Binary
	if binary == "" {
		binary = "md5sum"
	}
	return run(ctx, filepath.Dir(manifestPath), binary, "-c", filepath.Base(manifestPath))
}
