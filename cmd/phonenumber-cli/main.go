// Copyright (c) 2025 A Bit of Help, Inc.

// Command phonenumber-cli reads newline-delimited "<region>\t<raw number>"
// pairs from stdin (or -input) and prints each number's parse, format, and
// validation results. It is the external collaborator spec.md places out of
// scope for the kernel itself: a small demo exerciser, never imported by the
// kernel packages.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/abitofhelp/phonenumber"
	"github.com/abitofhelp/phonenumber/batchparse"
	pnconfig "github.com/abitofhelp/phonenumber/config"
	pnctx "github.com/abitofhelp/phonenumber/context"
	"github.com/abitofhelp/phonenumber/env"
	"github.com/abitofhelp/phonenumber/internal/kernellog"
	"github.com/abitofhelp/phonenumber/logging"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/regexcache"
	"github.com/abitofhelp/phonenumber/stringutil"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", env.GetEnv("PHONENUMBER_CONFIG", ""), "path to a YAML runner configuration file")
	inputPath := flag.String("input", "", "path to newline-delimited \"<region>\\t<raw number>\" pairs (default stdin)")
	metadataPath := flag.String("metadata", "", "path to a YAML metadata document (default: builtin snapshot)")
	flag.Parse()

	if err := run(*configPath, *inputPath, *metadataPath); err != nil {
		fmt.Fprintln(os.Stderr, "phonenumber-cli:", err)
		os.Exit(1)
	}
}

func run(configPath, inputPath, metadataPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if metadataPath != "" {
		cfg.MetadataPath = metadataPath
	}

	logger, err := kernellog.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	store, err := loadStore(cfg.MetadataPath, logger)
	if err != nil {
		return fmt.Errorf("load metadata: %w", err)
	}
	warmCache(store, cfg.WarmRegions, logger)

	parser := phonenumber.NewParser(store)
	contextLogger := logging.NewContextLogger(logger)
	handler := batchparse.NewHandler(parser, contextLogger)

	ctx := pnctx.WithOperation(context.Background(), "batch-parse")
	ctx = pnctx.WithRequestID(ctx)

	in, closeIn, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer closeIn()

	requests, err := readRequests(in, cfg.DefaultRegion)
	if err != nil {
		return fmt.Errorf("read requests: %w", err)
	}

	results := handler.HandleBatch(ctx, requests)
	printResults(os.Stdout, results)
	return nil
}

func loadConfig(path string) (pnconfig.RunnerConfig, error) {
	if path == "" {
		return pnconfig.Load(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pnconfig.RunnerConfig{}, err
	}
	return pnconfig.Load(data)
}

func loadStore(metadataPath string, logger *zap.Logger) (*metadata.Store, error) {
	regionCount := func(s *metadata.Store) int {
		n := 0
		for cc := 1; cc <= 999; cc++ {
			n += len(s.RegionsForCountryCode(cc))
		}
		return n
	}

	if metadataPath == "" {
		store, err := metadata.Builtin()
		if err != nil {
			kernellog.MetadataLoadFailed(logger, "builtin", err)
			return nil, err
		}
		kernellog.MetadataLoaded(logger, regionCount(store), "builtin")
		return store, nil
	}

	data, err := os.ReadFile(metadataPath)
	if err != nil {
		kernellog.MetadataLoadFailed(logger, metadataPath, err)
		return nil, err
	}
	store, err := metadata.LoadFromYAML(data)
	if err != nil {
		kernellog.MetadataLoadFailed(logger, metadataPath, err)
		return nil, err
	}
	kernellog.MetadataLoaded(logger, regionCount(store), metadataPath)
	return store, nil
}

// warmCache pre-compiles, in the full-match form the kernel looks them up
// in, the national-number pattern of a warm region's general/fixed-line/
// mobile/toll-free descriptors and every pattern in its national format
// list, so the first real parse against that region does not compile them.
func warmCache(store *metadata.Store, regions []string, logger *zap.Logger) {
	compiled := 0
	for _, region := range regions {
		t, ok := store.Region(region)
		if !ok {
			continue
		}
		for _, desc := range []metadata.NumberDesc{t.GeneralDesc, t.FixedLine, t.Mobile, t.TollFree} {
			if desc.IsApplicable() {
				regexcache.MustCompileFull(desc.NationalNumberPattern)
				compiled++
			}
		}
		for _, f := range t.NationalFormats {
			regexcache.MustCompileFull(f.Pattern)
			compiled++
		}
	}
	kernellog.CacheWarmed(logger, regions, compiled)
}

func openInput(path string) (*bufio.Scanner, func() error, error) {
	if path == "" {
		return bufio.NewScanner(os.Stdin), func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return bufio.NewScanner(f), f.Close, nil
}

// readRequests parses "<region>\t<raw number>" lines, falling back to
// defaultRegion when a line carries no region column (a bare raw number,
// useful for "+"-prefixed input that needs no default).
func readRequests(scanner *bufio.Scanner, defaultRegion string) ([]batchparse.Request, error) {
	var reqs []batchparse.Request
	for scanner.Scan() {
		line := scanner.Text()
		if stringutil.IsEmpty(line) {
			continue
		}

		region, raw := defaultRegion, line
		if idx := strings.IndexByte(line, '\t'); idx >= 0 {
			region = stringutil.RemoveWhitespace(line[:idx])
			raw = strings.TrimSpace(line[idx+1:])
		}

		reqs = append(reqs, batchparse.Request{Region: region, RawNumber: raw})
	}
	return reqs, scanner.Err()
}

func printResults(w *os.File, results []batchparse.Result) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\t%s\tERROR: %v\n", r.Request.Region, r.Request.RawNumber, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\tE164=%s\tNATIONAL=%s\tINTERNATIONAL=%s\tvalid=%t\tpossible=%t\ttype=%s\n",
			r.Request.Region, r.Request.RawNumber, r.E164, r.National, r.International, r.Valid, r.Possible, r.Type)
	}
}
