package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dvloznov/budget-trips/internal/config"
	"github.com/dvloznov/budget-trips/internal/logger"
	"github.com/dvloznov/budget-trips/internal/pipeline"
)

func main() {
	log := logger.New().With().Str("run_id", uuid.NewString()).Logger()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "classify":
		runClassify(log)
	case "cluster":
		runCluster(log)
	case "summarize":
		runSummarize(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Budget Trips CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  trips <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  classify   Tag transactions with hashtag and bill/transfer flags")
	fmt.Println("  cluster    Identify trips and annotate every transaction")
	fmt.Println("  summarize  Identify trips and print per-trip summaries")
	fmt.Println("  help       Show this help message")
	fmt.Println("\nRun 'trips <command> -h' for more information on a command.")
}

// setup loads configuration and builds the pipeline.
func setup(log zerolog.Logger, envFile string) (*config.Config, *pipeline.Pipeline) {
	cfg, err := config.Load(envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load reference timezone")
	}
	return cfg, pipeline.NewPipeline(loc)
}

func runClassify(log zerolog.Logger) {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	input := fs.String("input", "", "Path to a JSON file of transactions (\"-\" for stdin)")
	envFile := fs.String("env", "", "Path to a .env file")
	fs.Parse(os.Args[2:])

	_, pipe := setup(log, *envFile)
	txs := readTransactions(log, *input)

	log.Info().Int("transactions", len(txs)).Msg("Classifying transactions")

	tagged, err := pipe.ClassifyAndTag(txs)
	if err != nil {
		log.Fatal().Err(err).Msg("Classification failed")
	}
	writeJSON(log, tagged)
}

func runCluster(log zerolog.Logger) {
	fs := flag.NewFlagSet("cluster", flag.ExitOnError)
	input := fs.String("input", "", "Path to a JSON file of transactions (\"-\" for stdin)")
	envFile := fs.String("env", "", "Path to a .env file")
	maxDays := fs.Int("max-days", -1, "Max day gap within a trip (overrides configuration)")
	fs.Parse(os.Args[2:])

	cfg, pipe := setup(log, *envFile)
	settings := cfg.Settings()
	if *maxDays >= 0 {
		settings.MaxDaysBetween = *maxDays
	}
	txs := readTransactions(log, *input)

	log.Info().
		Int("transactions", len(txs)).
		Int("max_days_between", settings.MaxDaysBetween).
		Str("timezone", cfg.Timezone).
		Msg("Identifying trips")

	annotated, err := pipe.ClusterTrips(txs, settings)
	if err != nil {
		log.Fatal().Err(err).Msg("Trip identification failed")
	}
	writeJSON(log, annotated)
}

func runSummarize(log zerolog.Logger) {
	fs := flag.NewFlagSet("summarize", flag.ExitOnError)
	input := fs.String("input", "", "Path to a JSON file of transactions (\"-\" for stdin)")
	envFile := fs.String("env", "", "Path to a .env file")
	currency := fs.String("currency", "CAD", "Currency code for logged totals")
	fs.Parse(os.Args[2:])

	cfg, pipe := setup(log, *envFile)
	txs := readTransactions(log, *input)

	annotated, err := pipe.ClusterTrips(txs, cfg.Settings())
	if err != nil {
		log.Fatal().Err(err).Msg("Trip identification failed")
	}
	summaries, err := pipe.SummarizeTrips(annotated)
	if err != nil {
		log.Fatal().Err(err).Msg("Summarizing trips failed")
	}

	for _, s := range summaries {
		log.Info().
			Str("trip", s.Name).
			Str("start", s.StartDate).
			Str("end", s.EndDate).
			Int("transactions", s.TransactionCount).
			Str("spending", pipeline.FormatAmount(s.TotalSpending, *currency)).
			Strs("frequent_words", s.FrequentWords).
			Msg("Trip")
	}
	log.Info().
		Int("trips", len(summaries)).
		Str("batch_total", pipeline.FormatAmount(pipeline.Total(txs), *currency)).
		Msg("Summarized trips")

	writeJSON(log, summaries)
}

func readTransactions(log zerolog.Logger, path string) []pipeline.Transaction {
	if path == "" {
		log.Fatal().Msg("Error: -input is required")
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		log.Fatal().Err(err).Str("input", path).Msg("Failed to read transactions")
	}

	var txs []pipeline.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		log.Fatal().Err(err).Str("input", path).Msg("Failed to parse transactions JSON")
	}
	return txs
}

func writeJSON(log zerolog.Logger, v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatal().Err(err).Msg("Failed to write output")
	}
}
