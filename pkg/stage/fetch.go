package stage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

const (
	DefaultSlimsHost   = "slimsdata.genomecenter.ucdavis.edu"
	DefaultSlimsModule = "slims"
)

// Fetcher copies a remote dataset into destDir
type Fetcher interface {
	Fetch(ctx context.Context, remote, destDir string) error
}

// RsyncFetcher rsync -avL host::module/remote/ destDir
type RsyncFetcher struct {
	Binary string
	Host   string
	Module string
	Run    Runner
}

func NewRsyncFetcher(host string) *RsyncFetcher {
	if host == "" {
		host = DefaultSlimsHost
	}
	return &RsyncFetcher{
		Binary: "rsync",
		Host:   host,
		Module: DefaultSlimsModule,
		Run:    RunCommand,
	}
}

// Source rsync source for remote
func (f *RsyncFetcher) Source(remote string) string {
	return fmt.Sprintf("%s::%s/%s/", f.Host, f.Module, strings.Trim(remote, "/"))
}

func (f *RsyncFetcher) Fetch(ctx context.Context, remote, destDir string) error {
	if strings.TrimSpace(remote) == "" {
		return errors.New("empty rsync remote")
	}
	var run = f.Run
	if run == nil {
		run = RunCommand
	}
	var binary = f.Binary
	if binary == "" {
		binary = "rsync"
	}
	slog.Info("Downloading fastq files", "remote", remote, "dest", destDir)
	return run(ctx, "", binary, "-avL", f.Source(remote), destDir)
}

// ParseGSURL splits gs://bucket/prefix
func ParseGSURL(url string) (bucket, prefix string, err error) {
	var rest, ok = strings.CutPrefix(url, "gs://")
	if !ok {
		return "", "", fmt.Errorf("not a gs:// url: %q", url)
	}
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("no bucket in %q", url)
	}
	return bucket, prefix, nil
}

// GCSFetcher downloads every object under gs://bucket/prefix, keeping paths relative to prefix
type GCSFetcher struct {
	Client *storage.Client
}

func (f *GCSFetcher) Fetch(ctx context.Context, remote, destDir string) error {
	bucket, prefix, err := ParseGSURL(remote)
	if err != nil {
		return err
	}
	var client = f.Client
	if client == nil {
		client, err = storage.NewClient(ctx)
		if err != nil {
			return &ExternalCommandFailure{Command: "storage.NewClient", Err: err}
		}
		defer client.Close()
	}

	var (
		handle = client.Bucket(bucket)
		it     = handle.Objects(ctx, &storage.Query{Prefix: prefix})
		n      = 0
	)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return &ExternalCommandFailure{Command: "list " + remote, Err: err}
		}
		dest, err := ObjectPath(destDir, prefix, attrs.Name)
		if err != nil {
			return err
		}
		if dest == "" {
			continue
		}
		if err := downloadObject(ctx, handle.Object(attrs.Name), dest); err != nil {
			return &ExternalCommandFailure{Command: "download gs://" + bucket + "/" + attrs.Name, Err: err}
		}
		n++
	}
	slog.Info("gcs fetch done", "remote", remote, "objects", n)
	return nil
}

// ObjectPath local path of object name under destDir for a gs:// prefix.
// The prefix matches a whole object name or a directory, so "data" covers
// "data" and "data/x" but not "data2/x". It returns "" for objects to skip
// and an error for names that would land outside destDir.
func ObjectPath(destDir, prefix, name string) (string, error) {
	if strings.HasSuffix(name, "/") {
		return "", nil
	}
	var rel string
	switch {
	case prefix == "":
		rel = name
	case name == prefix:
		rel = path.Base(name)
	default:
		var dirPrefix = prefix
		if !strings.HasSuffix(dirPrefix, "/") {
			dirPrefix += "/"
		}
		var ok bool
		if rel, ok = strings.CutPrefix(name, dirPrefix); !ok {
			return "", nil
		}
	}

	var (
		root = filepath.Clean(destDir)
		dest = filepath.Join(root, filepath.FromSlash(rel))
	)
	inside, err := filepath.Rel(root, dest)
	if err != nil || inside == "." || inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("object %q maps outside %s", name, destDir)
	}
	return dest, nil
}

func downloadObject(ctx context.Context, obj *storage.ObjectHandle, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	rdr, err := obj.NewReader(ctx)
	if err != nil {
		return err
	}
	defer rdr.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, rdr); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	return out.Close()
}

// NewFetcher GCS for gs:// remotes, rsync otherwise
func NewFetcher(remote, slimsHost string) Fetcher {
	if strings.HasPrefix(remote, "gs://") {
		return &GCSFetcher{}
	}
	return NewRsyncFetcher(slimsHost)
}
