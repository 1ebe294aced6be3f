package main

import (
	"flag"
	"log"
	"log/slog"
	"time"

	"FastqMe/pkg/sampleResolver"
	"FastqMe/pkg/stage"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"
)

var (
	input = flag.String(
		"i",
		"",
		"raw data directory",
	)
	outputDir = flag.String(
		"o",
		"00.MergedData",
		"output directory",
	)
	configName = flag.String(
		"c",
		stage.DefaultConfigName,
		"dataset config",
	)
	genome = flag.String(
		"g",
		"",
		"primary genome",
	)
	style = flag.String(
		"style",
		"Rx",
		"read direction style: Rx or numeric",
	)
	mode = flag.String(
		"mode",
		"suffix",
		"sample id from: suffix or prefix",
	)
	delimiter = flag.String(
		"d",
		sampleResolver.DefaultDelimiter,
		"sample id delimiter for -mode prefix",
	)
	suffixList = flag.String(
		"suffix",
		"",
		"pair suffix list, one per line, default built-in",
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
	force = flag.Bool(
		"force",
		false,
		"merge even if some samples miss forward or reverse reads",
	)
)

func main() {
	t0 := time.Now()
	flag.Parse()
	if *input == "" || *genome == "" {
		flag.PrintDefaults()
		log.Fatal("-i/-g required!")
	}

	var (
		direction = simpleUtil.HandleError(sampleResolver.ParseStyle(*style))
		idMode    = simpleUtil.HandleError(sampleResolver.ParseMode(*mode))
		batch     = &stage.Batch{
			DataDir:    *input,
			OutputDir:  *outputDir,
			ConfigPath: *configName,
			Genome:     *genome,
			Convention: sampleResolver.NewNamingConvention(direction, idMode),
			SameDir:    *sameDir,
			Merge:      true,
			Count:      *count,
			Plot:       *plot,
		}
	)
	batch.Convention.Delimiter = *delimiter
	batch.Convention.Strict = *strict
	if *suffixList != "" {
		batch.Convention.Suffixes = textUtil.File2Array(*suffixList)
	}

	simpleUtil.CheckErr(batch.Resolve())
	if !batch.Validation.Pass {
		if !*force {
			log.Fatal(batch.Validation.Err())
		}
		slog.Warn("proceed with inconsistent plan", "err", batch.Validation.Err())
	}
	simpleUtil.CheckErr(batch.MergeFastq())
	simpleUtil.CheckErr(batch.Summary())
	simpleUtil.CheckErr(batch.WriteConfig())

	slog.Info("Done", "samples", len(batch.Merged), "config", batch.ConfigPath, "time", time.Since(t0))
}
