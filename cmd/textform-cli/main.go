package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cognicore/textform/pkg/textform"
	"github.com/cognicore/textform/pkg/textform/catalog"
	"github.com/cognicore/textform/pkg/textform/config"
	"github.com/cognicore/textform/pkg/textform/ingest"
	"github.com/cognicore/textform/pkg/textform/store"
	"github.com/cognicore/textform/pkg/textform/store/sqlite"
)

func main() {
	var (
		input      = flag.String("input", "", "Path to a text file; reads stdin when empty")
		formatHint = flag.String("format", "", "Optional target format hint")
		detectOnly = flag.Bool("detect", false, "Only suggest a format instead of a full analysis")
		validate   = flag.Bool("validate", false, "Append advisory validation issues to the output")
		patterns   = flag.String("patterns", "", "Optional YAML file with extra pattern definitions")
		keywords   = flag.String("keywords", "", "Optional YAML file with keyword overrides")
		dbPath     = flag.String("db", "", "Optional SQLite file recording analysis history")
		history    = flag.Int("history", 0, "Print the N most recent history records and exit (requires -db)")
	)
	flag.Parse()

	ctx := context.Background()

	if *history > 0 {
		if *dbPath == "" {
			log.Fatal("--history requires --db")
		}
		printHistory(ctx, *dbPath, *history)
		return
	}

	text, err := readInput(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	if ingest.LooksLikeHTML(text) {
		text, err = ingest.StripHTML(strings.NewReader(text))
		if err != nil {
			log.Fatalf("strip markup: %v", err)
		}
	}

	engine := textform.New(buildOptions(*patterns, *keywords))

	if *detectOnly {
		printJSON(engine.DetectFormat(text))
		return
	}

	var opts []textform.Option
	if *formatHint != "" {
		opts = append(opts, textform.WithFormat(*formatHint))
	}
	analysis := engine.Analyze(text, opts...)

	if *dbPath != "" {
		recordHistory(ctx, *dbPath, text, analysis)
	}

	if *validate {
		printJSON(struct {
			Analysis   *textform.TextAnalysis    `json:"analysis"`
			Validation textform.ValidationResult `json:"validation"`
		}{analysis, textform.Validate(analysis)})
		return
	}
	printJSON(analysis)
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func buildOptions(patternsPath, keywordsPath string) textform.Options {
	var opts textform.Options

	if patternsPath != "" {
		defs, err := config.LoadPatterns(patternsPath)
		if err != nil {
			log.Fatalf("load patterns: %v", err)
		}
		opts.Catalog = catalog.Builtin().Extend(defs)
	}
	if keywordsPath != "" {
		kw, err := config.LoadKeywords(keywordsPath)
		if err != nil {
			log.Fatalf("load keywords: %v", err)
		}
		opts.Keywords = kw
	}
	return opts
}

func recordHistory(ctx context.Context, path, text string, a *textform.TextAnalysis) {
	s, err := sqlite.Open(ctx, path)
	if err != nil {
		log.Fatalf("open history db: %v", err)
	}
	defer s.Close()

	format := a.Classification.Predictions[0].Format
	rec := store.Record{
		ID:         a.Metadata.ID,
		InputHash:  store.HashInput(text, a.Metadata.TargetFormat),
		Format:     format,
		Confidence: a.Classification.Predictions[0].Confidence,
		Duration:   a.Metadata.Duration,
		CreatedAt:  a.Metadata.AnalyzedAt,
	}
	if err := s.SaveRecord(ctx, rec); err != nil {
		log.Fatalf("save history record: %v", err)
	}
}

func printHistory(ctx context.Context, path string, limit int) {
	s, err := sqlite.Open(ctx, path)
	if err != nil {
		log.Fatalf("open history db: %v", err)
	}
	defer s.Close()

	records, err := s.ListRecent(ctx, limit)
	if err != nil {
		log.Fatalf("list history: %v", err)
	}
	counts, err := s.CountByFormat(ctx)
	if err != nil {
		log.Fatalf("count history: %v", err)
	}

	printJSON(struct {
		Recent []store.Record           `json:"recent"`
		Counts map[catalog.Format]int64 `json:"countsByFormat"`
	}{records, counts})
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("marshal output: %v", err)
	}
	fmt.Println(string(out))
}
