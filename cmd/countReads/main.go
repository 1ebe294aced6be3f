package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"FastqMe/pkg/stage"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"
)

var (
	input = flag.String(
		"i",
		"",
		"input fq.gz, comma as sep",
	)
	list = flag.String(
		"l",
		"",
		"input fq.gz list, one per line",
	)
)

func main() {
	t0 := time.Now()
	flag.Parse()

	var fqs []string
	if *input != "" {
		fqs = append(fqs, strings.Split(*input, ",")...)
	}
	if *list != "" {
		fqs = append(fqs, textUtil.File2Array(*list)...)
	}
	if len(fqs) == 0 {
		flag.PrintDefaults()
		log.Fatal("-i/-l required!")
	}

	var total = 0
	for _, fq := range fqs {
		if fq == "" {
			continue
		}
		var n = simpleUtil.HandleError(stage.CountReads(fq))
		total += n
		fmtUtil.Fprintf(os.Stdout, "%s\t%d\n", fq, n)
	}
	log.Printf("Files: %d, Reads: %d", len(fqs), total)
	log.Print("Done in ", time.Since(t0))
}
