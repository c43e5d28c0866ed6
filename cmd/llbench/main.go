package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/smartwalle/linkedlist/internal/perf"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (defaults are used when empty)")
		ops        = flag.String("ops", "", "comma separated ops to run, overrides the config")
		outPath    = flag.String("out", "", "CSV output file (stdout when empty)")
		quiet      = flag.Bool("q", false, "suppress progress logging")
	)
	flag.Parse()

	log.SetPrefix("llbench: ")
	log.SetFlags(log.LstdFlags)

	var cfg = perf.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = perf.LoadConfig(*configPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *ops != "" {
		cfg.Ops = cfg.Ops[:0]
		for _, op := range strings.Split(*ops, ",") {
			cfg.Ops = append(cfg.Ops, perf.Op(strings.TrimSpace(op)))
		}
	}

	var logger = log.Default()
	if *quiet {
		logger = log.New(io.Discard, "", 0)
	}

	runner, err := perf.NewRunner(cfg, perf.WithLogger(logger))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var ctx, stop = signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := runner.RunAll(ctx)
	if err != nil {
		log.Printf("run interrupted: %v", err)
	}

	if *outPath == "" {
		if err := perf.WriteCSV(os.Stdout, results...); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		return
	}

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create %s: %v", *outPath, err)
	}
	if err := perf.WriteCSV(f, results...); err != nil {
		f.Close()
		log.Fatalf("write csv: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close %s: %v", *outPath, err)
	}
}
