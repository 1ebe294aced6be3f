package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"FastqMe/pkg/prompt"
	"FastqMe/pkg/sampleResolver"
	"FastqMe/pkg/stage"

	"github.com/joho/godotenv"
	"github.com/liserjrqlxue/goUtil/osUtil"
)

// LoadSuffixes etc/suffix.txt next to the executable, else the embedded copy
func LoadSuffixes(exPath string) (suffixes []string) {
	for _, line := range osUtil.FS2Array(osUtil.OpenFS("etc/suffix.txt", exPath, etcEMFS)) {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		suffixes = append(suffixes, line)
	}
	return
}

// LoadEnv reads .env of the project directory when present
func LoadEnv(path string) {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("load env", "path", path, "err", err)
	}
}

func isGSURL(answer string) error {
	if !isGS.MatchString(strings.TrimSpace(answer)) {
		return &sampleResolver.InputValidationError{Field: "url", Value: answer, Reason: "expect gs://bucket/prefix"}
	}
	return nil
}

func verifier(kind string) (stage.Verifier, error) {
	switch kind {
	case "native":
		return stage.Md5Verifier{}, nil
	case "md5sum":
		return stage.CommandVerifier{}, nil
	case "none":
		return nil, nil
	}
	return nil, &sampleResolver.InputValidationError{Field: "verify", Value: kind, Reason: "expect native, md5sum or none"}
}

// FetchSlims rsync the SLIMS dataset into projectDir, verify it and move Undetermined files aside
func FetchSlims(ctx context.Context, asker *prompt.Asker, projectDir string, v stage.Verifier) (dataDir string, err error) {
	slimsString, err := asker.AskUntil("What is your SLIMS string? ", "", prompt.NonEmpty)
	if err != nil {
		return "", err
	}
	slimsDir, err := asker.AskUntil("What is your SLIMS directory? ", "", prompt.NonEmpty)
	if err != nil {
		return "", err
	}

	if err = stage.NewRsyncFetcher(os.Getenv(EnvSlimsHost)).Fetch(ctx, slimsString, projectDir); err != nil {
		return "", err
	}

	dataDir = filepath.Join(projectDir, slimsDir)
	if filepath.IsAbs(slimsDir) {
		dataDir = slimsDir
	}
	if v != nil {
		slog.Info("Carrying out MD5 Checksum to ensure that the files have properly transferred")
		if err = v.Verify(ctx, filepath.Join(dataDir, stage.SlimsManifest)); err != nil {
			return "", fmt.Errorf("%w\nplease re-run this script before continuing", err)
		}
	}
	if _, err = stage.MoveUndetermined(dataDir, stage.OtherDir); err != nil {
		return "", err
	}
	return dataDir, nil
}

// FetchGS download a gs:// prefix, verify when a manifest came along
func FetchGS(ctx context.Context, asker *prompt.Asker, v stage.Verifier) (dataDir string, err error) {
	url, err := asker.AskUntil("What is your gs:// url? ", "", isGSURL)
	if err != nil {
		return "", err
	}
	dataDir, err = asker.AskUntil("Which local directory should the files be downloaded into? ", "", prompt.NonEmpty)
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	if err = stage.NewFetcher(strings.TrimSpace(url), "").Fetch(ctx, strings.TrimSpace(url), dataDir); err != nil {
		return "", err
	}
	var manifest = filepath.Join(dataDir, stage.SlimsManifest)
	if v != nil && osUtil.FileExists(manifest) {
		if err = v.Verify(ctx, manifest); err != nil {
			return "", err
		}
	}
	return dataDir, nil
}

// AskLocal loop until the directory exists
func AskLocal(asker *prompt.Asker) (string, error) {
	return asker.AskUntil(
		"What is the absolute path that contains your raw data? ",
		"This directory could not be found. Please check to make sure that the directory is correct and try again: ",
		prompt.ExistingDir,
	)
}

// AskStyle style flag when given, else ask
func AskStyle(asker *prompt.Asker, flagValue string) (sampleResolver.Style, error) {
	if flagValue != "" {
		return sampleResolver.ParseStyle(flagValue)
	}
	answer, err := asker.AskUntil(
		"Are read directions marked with R1/R2 or with _1/_2? (Rx/numeric) ",
		"",
		func(answer string) error {
			_, err := sampleResolver.ParseStyle(answer)
			return err
		},
	)
	if err != nil {
		return "", err
	}
	return sampleResolver.ParseStyle(answer)
}

// PrintPlan one line per sample: id, forward and reverse file counts
func PrintPlan(plan sampleResolver.SamplePlan) {
	for _, id := range plan.IDs() {
		var s = plan.Samples[id]
		fmt.Printf("%s\t%d\t%d\n", id, len(s.Forward), len(s.Reverse))
	}
	fmt.Println()
}
