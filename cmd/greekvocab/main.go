package main

import (
	"bytes"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-shiori/go-readability"
	"github.com/hellenist/greekvocab/pkg/db"
	"github.com/hellenist/greekvocab/pkg/greek"
	"github.com/hellenist/greekvocab/pkg/ingest"
	"github.com/hellenist/greekvocab/pkg/morph"
	"github.com/hellenist/greekvocab/pkg/vocab"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	textFlag := flag.String("text", "", "Path to a Greek text file, or - for stdin")
	urlFlag := flag.String("url", "", "URL of an article to process instead of -text")
	dbFlag := flag.String("db", "", "Path to SQLite database; empty disables persistence")
	stopFlag := flag.String("stopwords", "", "Path to a stop word list, one lemma per line")
	formatFlag := flag.String("format", "plain", "Output format: plain or latex")
	workersFlag := flag.Int("workers", 4, "Concurrent analyzer calls")
	cruncherFlag := flag.String("cruncher", "cruncher", "Path to the morpheus cruncher binary")
	stemlibFlag := flag.String("stemlib", "", "Path to the morpheus stemlib directory (MORPHLIB)")
	defsFlag := flag.String("defs", "shortdefs.tsv", "Path to the short definitions file")
	titleFlag := flag.String("title", "", "Source title override for persistence")
	flag.Parse()

	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	mode, err := vocab.ParseMode(*formatFlag)
	if err != nil {
		log.Fatalf("Invalid -format: %v", err)
	}

	if *textFlag == "" && *urlFlag == "" {
		log.Fatal("Please provide a -text file or a -url")
	}

	// Prepare definitions (auto-download / cache). The pipeline still
	// runs without them; entries just get empty glosses.
	if err := morph.EnsureDefinitions(ctx, *defsFlag); err != nil {
		log.Printf("Warning: Failed to ensure definitions at %s: %v. Continuing without glosses.", *defsFlag, err)
	}

	var defs *morph.Definitions
	if _, err := os.Stat(*defsFlag); err == nil {
		start := time.Now()
		defs, err = morph.LoadDefinitions(*defsFlag)
		if err != nil {
			log.Printf("Warning: Failed to load definitions: %v", err)
		} else {
			fmt.Printf("Definitions loaded (%d entries) in %v\n", defs.Len(), time.Since(start))
		}
	} else {
		fmt.Println("Skipping definitions load (file missing). Glosses will be empty.")
	}

	var (
		text    string
		title   string
		author  string
		website string
	)

	if *urlFlag != "" {
		text, title, author, website = fetchArticle(ctx, *urlFlag)
	} else {
		text = readText(*textFlag)
		title = *textFlag
	}
	if *titleFlag != "" {
		title = *titleFlag
	}

	tokens := greek.Tokenize(text)
	fmt.Printf("Found %d Greek tokens.\n", len(tokens))

	parser := morph.NewParser(*cruncherFlag, *stemlibFlag)
	parser.Definitions = defs
	parser.Logger = log.Default()
	gen := &vocab.Generator{
		Analyzer: parser,
		Workers:  *workersFlag,
	}

	entries, stats, err := gen.Generate(ctx, tokens)
	if err != nil {
		if vocab.IsAnalyzerUnavailable(err) {
			log.Fatalf("Analyzer unavailable: %v", err)
		}
		log.Fatalf("Vocabulary generation failed: %v", err)
	}

	if *stopFlag != "" {
		f, err := os.Open(*stopFlag)
		if err != nil {
			log.Fatalf("Failed to open stop word list: %v", err)
		}
		stops, err := vocab.LoadStopWords(f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to read stop word list: %v", err)
		}
		before := len(entries)
		entries = vocab.Filter(entries, stops)
		fmt.Printf("Stop words removed %d entries.\n", before-len(entries))
	}

	fmt.Println(vocab.Render(entries, mode))
	fmt.Printf("---------------------------------------------------\n")
	fmt.Printf("Tokens: %d, entries: %d, unrecognized: %d, failed: %d\n",
		stats.Tokens, len(entries), stats.Unrecognized, stats.Failed)

	if *dbFlag == "" {
		return
	}

	conn, err := sql.Open("sqlite3", *dbFlag)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := db.InitDB(conn); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sourceType := "text_file"
	if *urlFlag != "" {
		sourceType = "website_article"
	}
	sourceID, err := db.CreateOrGetSource(conn, sourceType, title, author, website, *urlFlag, "")
	if err != nil {
		log.Fatalf("Failed to persist source: %v", err)
	}

	ingester := ingest.NewIngester(conn)
	ingester.Logger = log.Default()
	written, err := ingester.Ingest(ctx, sourceID, entries)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}
	fmt.Printf("Persisted %d entries to %s (source %d).\n", written, *dbFlag, sourceID)
}

func readText(path string) string {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		log.Fatalf("Failed to read input text: %v", err)
	}
	return string(data)
}

// fetchArticle downloads a page and extracts its readable text.
func fetchArticle(ctx context.Context, rawURL string) (text, title, author, website string) {
	fmt.Printf("Fetching %s...\n", rawURL)

	// Custom request with a browser User-Agent to avoid being blocked
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		log.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,el;q=0.8")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("Failed to fetch URL: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Error: Got status code %d fetching %s", resp.StatusCode, rawURL)
	}

	// Size limit to prevent OOM from untrusted URLs
	const maxBodySize = 10 * 1024 * 1024

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Fatalf("Failed to read response body: %v", err)
	}
	if int64(len(bodyBytes)) >= int64(maxBodySize) {
		log.Fatalf("Response body exceeded maximum size limit of %d bytes", maxBodySize)
	}

	parsedURL, _ := url.Parse(rawURL)
	article, err := readability.FromReader(bytes.NewReader(bodyBytes), parsedURL)
	if err != nil {
		log.Fatalf("Failed to extract article: %v", err)
	}

	fmt.Printf("Title: %s\n", article.Title)
	fmt.Printf("Extracted Text Length: %d chars\n", len(article.TextContent))
	return article.TextContent, article.Title, article.Byline, article.SiteName
}
