package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"FastqMe/pkg/prompt"
	"FastqMe/pkg/sampleResolver"
	"FastqMe/pkg/stage"
	"FastqMe/pkg/wechatwork"

	"github.com/google/uuid"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// os
var (
	ex, _  = os.Executable()
	exPath = filepath.Dir(ex)
)

// flag
var (
	workDir = flag.String(
		"w",
		"",
		"project directory, default is CWD",
	)
	outputDir = flag.String(
		"o",
		"00.MergedData",
		"output directory of merged [SampleID]_[12].fq.gz",
	)
	configName = flag.String(
		"c",
		stage.DefaultConfigName,
		"dataset config written for the pipeline",
	)
	style = flag.String(
		"style",
		"",
		"read direction style: Rx or numeric, ask when empty",
	)
	mode = flag.String(
		"mode",
		"suffix",
		"sample id from: suffix (strip known pair suffix) or prefix (text before -d)",
	)
	delimiter = flag.String(
		"d",
		sampleResolver.DefaultDelimiter,
		"sample id delimiter for -mode prefix",
	)
	strict = flag.Bool(
		"strict",
		false,
		"numeric style: direction token must be exactly 1 or 2",
	)
	sameDir = flag.Bool(
		"sameDir",
		false,
		"require all fastq in one directory",
	)
	noMerge = flag.Bool(
		"noMerge",
		false,
		"only write config, do not concatenate",
	)
	count = flag.Bool(
		"count",
		false,
		"count reads of merged fastq",
	)
	plot = flag.Bool(
		"plot",
		false,
		"plot merged size per sample",
	)
	verify = flag.String(
		"verify",
		"native",
		"md5 check of downloads: native, md5sum or none",
	)
	yes = flag.Bool(
		"y",
		false,
		"skip the project directory question",
	)
)

// embed etc
//
//go:embed etc/*.txt
var etcEMFS embed.FS

func main() {
	flag.Parse()
	now := time.Now()

	if *workDir != "" {
		simpleUtil.CheckErr(os.Chdir(*workDir))
	}
	var projectDir = simpleUtil.HandleError(os.Getwd())
	LoadEnv(filepath.Join(projectDir, ".env"))

	var runID = uuid.NewString()
	slog.SetDefault(slog.Default().With("run", runID))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		asker    = prompt.NewAsker(os.Stdin, os.Stdout)
		notifier = wechatwork.NewNotificationSender(os.Getenv(EnvWebhookKey))
		batch    = &stage.Batch{
			OutputDir:  *outputDir,
			ConfigPath: *configName,
			SameDir:    *sameDir,
			Merge:      !*noMerge,
			Count:      *count,
			Plot:       *plot,
		}
		report = wechatwork.RunReport{RunID: runID, Project: projectDir}
	)

	if mention := os.Getenv(EnvMention); mention != "" {
		notifier.Mentioned = strings.Split(mention, ",")
	}

	var err = run(ctx, asker, projectDir, batch)

	report.Genome = batch.Genome
	report.Samples = batch.Plan.IDStrings()
	if err == nil {
		report.Config = batch.ConfigPath
	}
	report.Err = err
	report.Duration = time.Since(now)
	if nerr := notifier.SendReport(report); nerr != nil {
		slog.Warn("notify", "err", nerr)
	}

	if err != nil {
		log.Fatal(err)
	}
	slog.Info("Done", "time", time.Since(now))
}

func run(ctx context.Context, asker *prompt.Asker, projectDir string, batch *stage.Batch) (err error) {
	if !*yes {
		ok, err := asker.Confirm("Are you currently in your project directory? (y/n) ")
		if err != nil {
			return err
		}
		if !ok {
			return errNotProjectDir
		}
		fmt.Println()
	}

	v, err := verifier(*verify)
	if err != nil {
		return err
	}

	location, err := asker.Choose("Is your data maintained on SLIMS, Google Cloud Storage or locally downloaded? (slims/gs/local) ", locations...)
	if err != nil {
		return err
	}
	fmt.Println()
	switch location {
	case "slims":
		batch.DataDir, err = FetchSlims(ctx, asker, projectDir, v)
	case "gs":
		batch.DataDir, err = FetchGS(ctx, asker, v)
	default:
		batch.DataDir, err = AskLocal(asker)
	}
	if err != nil {
		return err
	}
	fmt.Println()

	batch.Genome, err = asker.AskUntil(
		"Please input the primary genome you will align your files to. This will need to match the name of the genome subdirectory you created in 01_genomes/ ",
		"",
		prompt.NonEmpty,
	)
	if err != nil {
		return err
	}
	fmt.Println()

	direction, err := AskStyle(asker, *style)
	if err != nil {
		return err
	}
	idMode, err := sampleResolver.ParseMode(*mode)
	if err != nil {
		return err
	}
	batch.Convention = sampleResolver.NewNamingConvention(direction, idMode)
	batch.Convention.Delimiter = *delimiter
	batch.Convention.Strict = *strict
	if suffixes := LoadSuffixes(exPath); len(suffixes) > 0 {
		batch.Convention.Suffixes = suffixes
	}

	if err = batch.Resolve(); err != nil {
		return err
	}
	PrintPlan(batch.Plan)

	if !batch.Validation.Pass {
		fmt.Println(batch.Validation.Err())
		ok, err := asker.Confirm("Proceed anyway? (y/n) ")
		if err != nil {
			return err
		}
		if !ok {
			return errInconsistent
		}
	}

	ok, err := asker.Confirm("Please check the sample IDs above. This should include lane information if you have multiple lanes. Are they correct? (y/n) ")
	if err != nil {
		return err
	}
	if !ok {
		return errWrongIDs
	}
	fmt.Println()

	if err = batch.MergeFastq(); err != nil {
		return err
	}
	if err = batch.Summary(); err != nil {
		return err
	}

	slog.Info("Creating " + batch.ConfigPath + ", which will contain a list of file names to be used in the rest of the pipeline")
	return batch.WriteConfig()
}
