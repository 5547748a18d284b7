package cli

import (
	"context"
	"fmt"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/spf13/cobra"

	"github.com/maktabah/rijal/internal/config"
	"github.com/maktabah/rijal/internal/corpus"
	"github.com/maktabah/rijal/internal/database"
	"github.com/maktabah/rijal/internal/extractor"
	"github.com/maktabah/rijal/internal/logging"
	"github.com/maktabah/rijal/internal/processor"
	"github.com/maktabah/rijal/internal/storage"
)

var (
	inputPath        string
	outputPath       string
	startVolume      int
	lexiconPath      string
	stripDiacritics  bool
	omitUnclassified bool
	saveToDB         bool
	saveToES         bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract narrator records from a JSON page corpus",
	Long: `Extract reads a corpus of digitized pages, segments each page into
numbered biography entries, and emits one structured record per named
narrator: judgements, teachers, students, and source location.

Example:
  rijal extract --input pages.json --output narrators.json
  rijal extract --input pages.json --start-volume 1 --lexicons terms.yaml
  rijal extract --input pages.json --db --es`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input corpus JSON file (required)")
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "narrators.json", "output JSON path")
	extractCmd.Flags().IntVar(&startVolume, "start-volume", 0, "skip pages below this volume (default from config)")
	extractCmd.Flags().StringVar(&lexiconPath, "lexicons", "", "YAML file overriding the built-in lexicons")
	extractCmd.Flags().BoolVar(&stripDiacritics, "strip-diacritics", false, "remove diacritics from page text before extraction")
	extractCmd.Flags().BoolVar(&omitUnclassified, "omit-unclassified", false, "drop the unclassified list from output records")
	extractCmd.Flags().BoolVar(&saveToDB, "db", false, "also store records in the configured database")
	extractCmd.Flags().BoolVar(&saveToES, "es", false, "also index records in the configured Elasticsearch cluster")

	_ = extractCmd.MarkFlagRequired("input")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("start-volume") {
		cfg.Extraction.StartVolume = startVolume
	}
	if lexiconPath != "" {
		cfg.Extraction.LexiconFile = lexiconPath
	}
	if stripDiacritics {
		cfg.Extraction.StripDiacritics = true
	}
	if omitUnclassified {
		cfg.Extraction.OmitUnclassified = true
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	exCfg := extractor.Config{}
	if cfg.Extraction.LexiconFile != "" {
		lf, err := extractor.LoadLexiconFile(cfg.Extraction.LexiconFile)
		if err != nil {
			return err
		}
		lf.Apply(&exCfg)
	}
	ex := extractor.New(exCfg, logger)

	ctx := context.Background()
	sinks, cleanup, err := buildSinks(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	pages, err := corpus.LoadPages(inputPath, corpus.LoadOptions{
		StripDiacritics: cfg.Extraction.StripDiacritics,
	})
	if err != nil {
		return err
	}

	proc := processor.New(ex, processor.Options{
		StartVolume: cfg.Extraction.StartVolume,
		Sinks:       sinks,
	}, logger)

	records, stats, err := proc.Run(ctx, pages)
	if err != nil {
		return err
	}

	if err := corpus.WriteRecords(outputPath, records, corpus.WriteOptions{
		OmitUnclassified: cfg.Extraction.OmitUnclassified,
	}); err != nil {
		return err
	}

	printSummary(stats, outputPath)
	return nil
}

// buildSinks opens the optional record stores selected by flags.
func buildSinks(ctx context.Context, cfg *config.Config, logger logging.Logger) ([]processor.RecordSink, func(), error) {
	var sinks []processor.RecordSink
	cleanup := func() {}

	if saveToDB {
		db, err := database.Open(database.Config{
			Driver:          cfg.Database.Driver,
			DSN:             cfg.Database.DSN,
			MaxOpenConns:    cfg.Database.MaxConnections,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		})
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() { _ = db.Close() }
		if err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, func() {}, err
		}
		sinks = append(sinks, database.NewNarratorsRepository(db))
		logger.Info("database sink enabled", "driver", cfg.Database.Driver)
	}

	if saveToES {
		client, err := es.NewClient(es.Config{
			Addresses: []string{cfg.Elasticsearch.URL},
			Username:  cfg.Elasticsearch.Username,
			Password:  cfg.Elasticsearch.Password,
		})
		if err != nil {
			return nil, cleanup, fmt.Errorf("creating elasticsearch client: %w", err)
		}
		esStore := storage.NewElasticsearchStorage(
			client,
			cfg.Elasticsearch.Index,
			cfg.Elasticsearch.BulkSize,
			cfg.Elasticsearch.RateLimit,
			logger,
		)
		if err := esStore.TestConnection(ctx); err != nil {
			return nil, cleanup, err
		}
		if err := esStore.EnsureIndex(ctx); err != nil {
			return nil, cleanup, err
		}
		sinks = append(sinks, esStore)
		logger.Info("elasticsearch sink enabled", "index", cfg.Elasticsearch.Index)
	}

	return sinks, cleanup, nil
}

// printSummary reports run totals on stdout for interactive use.
func printSummary(stats *processor.Stats, output string) {
	fmt.Printf("Pages processed:  %d (skipped %d)\n", stats.PagesProcessed, stats.PagesSkipped)
	fmt.Printf("Entries found:    %d\n", stats.EntriesSegmented)
	fmt.Printf("Records emitted:  %d\n", stats.RecordsEmitted)
	fmt.Printf("  with ta'dil:    %d\n", stats.RecordsWithTaadil)
	fmt.Printf("  with jarh:      %d\n", stats.RecordsWithJarh)
	fmt.Printf("  with teachers:  %d\n", stats.RecordsWithTeachers)
	fmt.Printf("  with students:  %d\n", stats.RecordsWithStudents)
	fmt.Printf("Output written:   %s\n", output)
}
