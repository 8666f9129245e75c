// Package main provides the command-line tool that generates the animal HTML page.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ItsHarfer/My-Zootopia/internal/config"
	"github.com/ItsHarfer/My-Zootopia/internal/fetcher"
	"github.com/ItsHarfer/My-Zootopia/internal/filter"
	"github.com/ItsHarfer/My-Zootopia/internal/formatter"
	"github.com/ItsHarfer/My-Zootopia/internal/generator"
	"github.com/ItsHarfer/My-Zootopia/internal/logger"
	"github.com/ItsHarfer/My-Zootopia/internal/normalizer"
	"github.com/ItsHarfer/My-Zootopia/internal/renderer"
	"github.com/ItsHarfer/My-Zootopia/internal/validator"
)

const defaultConfigPath = "configs/generator.yaml"

func main() {
	// Define command-line flags
	configFile := flag.String("config", "", "Path to YAML configuration file")
	animalName := flag.String("animal", "", "Animal name to search for")
	filterSpec := flag.String("filter", "", "Characteristic filter as key=value (e.g. skin_type=scales)")
	localFile := flag.String("file", "", "Local JSON records file (bypasses the API)")
	output := flag.String("output", "", "Output HTML file path (overrides config)")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	cfg := loadConfiguration(*configFile)

	if *output != "" {
		cfg.Output.Path = *output
	}

	if *animalName == "" && *localFile == "" {
		log.Fatal("❌ Please provide -animal (or -file for local records)")
	}

	criterion, err := filter.ParseCriterion(*filterSpec)
	if err != nil {
		log.Fatalf("❌ %v\n", err)
	}

	appLog := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	src, err := buildFetcher(cfg, *localFile)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	var docValidator *validator.DocumentValidator
	if cfg.Validation.Enabled {
		docValidator = validator.NewDocumentValidator()
	}

	gen := generator.NewGenerator(
		src,
		normalizer.NewNormalizerWithPlaceholder(cfg.Page.Placeholder),
		renderer.NewCardRenderer(),
		renderer.NewAssembler(cfg.Page.Title, cfg.Output.Stylesheet),
		docValidator,
		appLog,
	)

	fmt.Printf("🔍 Searching for %q...\n", *animalName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.API.TimeoutSec+5)*time.Second)
	defer cancel()

	result, err := gen.Run(ctx, *animalName, criterion)
	if err != nil {
		fmt.Printf("❌ Generation failed: %v\n", err)
		os.Exit(1)
	}

	if err := renderer.WritePage(cfg.Output.Path, result.Document, cfg.Output.CreateBackup); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	printResult(result.Status.String(), len(result.Animals), cfg.Output.Path)

	if table := formatter.SummaryTable(result.Animals); table != "" {
		fmt.Println()
		fmt.Println(table)
	}
}

// loadConfiguration resolves config in order: explicit -config flag, the
// default config file when present, built-in defaults otherwise.
func loadConfiguration(configFile string) *config.Config {
	if configFile != "" {
		fmt.Printf("⚙️  Loading configuration from: %s\n", configFile)

		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			log.Fatalf("❌ Failed to load config: %v\n", err)
		}

		return cfg
	}

	if _, err := os.Stat(defaultConfigPath); err == nil {
		fmt.Printf("⚙️  Loading default configuration: %s\n", defaultConfigPath)

		cfg, err := config.LoadConfig(defaultConfigPath)
		if err != nil {
			log.Fatalf("❌ Failed to load default config: %v\n", err)
		}

		return cfg
	}

	fmt.Println("⚙️  Using built-in defaults")

	return config.Default()
}

// buildFetcher returns the local-file client when a file is given, otherwise
// the API client with the key resolved from the environment.
func buildFetcher(cfg *config.Config, localFile string) (generator.Fetcher, error) {
	if localFile != "" {
		fmt.Printf("📄 Using local records from: %s\n", localFile)

		return fetcher.NewLocalClient(localFile), nil
	}

	apiKey, err := cfg.API.ResolveAPIKey()
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.API.TimeoutSec) * time.Second

	return fetcher.NewClient(cfg.API.BaseURL, apiKey, timeout), nil
}

func printResult(status string, cards int, path string) {
	switch status {
	case "ok":
		fmt.Printf("✅ Wrote %d card(s) to %s\n", cards, path)
	case "no_results":
		fmt.Printf("🔎 No matches, wrote a no-results page to %s\n", path)
	case "fetch_error":
		fmt.Printf("⚠️  Fetch failed, wrote an error page to %s\n", path)
	}
}

func printUsage() {
	fmt.Println("Animal page generator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  generator -animal <name> [-filter key=value] [-config path] [-output path]")
	fmt.Println("  generator -file <records.json> [-filter key=value] [-output path]")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("The API key is read from the environment variable named by api.key_env")
	fmt.Println("in the configuration (default API_NINJA_KEY); a .env file is honored.")
}
