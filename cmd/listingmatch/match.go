package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kotaroooo0/listingmatch"
	"github.com/kotaroooo0/listingmatch/config"
	"github.com/kotaroooo0/listingmatch/morphology"
)

func newMatchCmd(v *viper.Viper, cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match listings with products and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWith(v, *cfgFile)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Log, cmd.ErrOrStderr())

			storage, closeStorage, err := newStorage(cfg)
			if err != nil {
				logger.Error().Err(err).Msg("failed to open storage")
				return err
			}
			defer closeStorage()

			out, closeOut, err := openOutput(cfg.Output, cmd.OutOrStdout())
			if err != nil {
				logger.Error().Err(err).Msg("failed to open output")
				return err
			}
			defer closeOut()

			if err := run(cmd.Context(), cfg, storage, logger, out); err != nil {
				logger.Error().Err(err).Msg("matching failed")
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("source", "", "input source (file, rdb)")
	flags.String("listings", "", "line-delimited JSON listings file")
	flags.String("products", "", "line-delimited JSON products file")
	flags.String("stop-words", "", "stop-word list file")
	flags.String("db-driver", "", "database driver for the rdb source (mysql, sqlite)")
	flags.String("db-path", "", "sqlite database file")
	flags.String("format", "", "output format (text, json, pp)")
	flags.StringP("output", "o", "", "output file (default stdout)")
	flags.Bool("stem", false, "stem keywords with the english snowball stemmer")

	v.BindPFlag("source.type", flags.Lookup("source"))
	v.BindPFlag("source.listings", flags.Lookup("listings"))
	v.BindPFlag("source.products", flags.Lookup("products"))
	v.BindPFlag("source.stop_words", flags.Lookup("stop-words"))
	v.BindPFlag("db.driver", flags.Lookup("db-driver"))
	v.BindPFlag("db.path", flags.Lookup("db-path"))
	v.BindPFlag("output.format", flags.Lookup("format"))
	v.BindPFlag("output.path", flags.Lookup("output"))
	v.BindPFlag("extractor.stem", flags.Lookup("stem"))
	return cmd
}

// run loads the inputs, matches them and prints the results to w.
func run(ctx context.Context, cfg *config.Config, storage listingmatch.Storage, logger zerolog.Logger, w io.Writer) error {
	in, err := listingmatch.LoadInputs(ctx, storage)
	if err != nil {
		return fmt.Errorf("load inputs: %w", err)
	}
	logger.Info().
		Int("listings", len(in.Listings)).
		Int("products", len(in.Products)).
		Int("stop_words", len(in.StopWords)).
		Msg("loaded inputs")

	extractor, err := newExtractor(cfg.Extractor, in.StopWords)
	if err != nil {
		return fmt.Errorf("build keyword extractor: %w", err)
	}
	matcher := listingmatch.NewMatcher(extractor,
		listingmatch.WithLogger(logger),
		listingmatch.WithKeywordlessProducts(cfg.Matcher.MatchKeywordlessProducts),
	)
	results, err := matcher.Match(in.Listings, in.Products)
	if err != nil {
		return err
	}

	printer, err := listingmatch.NewPrinter(cfg.Output.Format)
	if err != nil {
		return err
	}
	return printer.Print(w, results)
}

func newExtractor(cfg config.ExtractorConfig, stopWords []string) (listingmatch.KeywordExtractor, error) {
	var analyzer listingmatch.Analyzer
	switch cfg.Mode {
	case "morphological":
		kagome, err := morphology.NewKagome()
		if err != nil {
			return listingmatch.KeywordExtractor{}, err
		}
		analyzer = listingmatch.NewMorphologicalAnalyzer(kagome, stopWords)
	default:
		analyzer = listingmatch.NewDefaultAnalyzer(stopWords)
	}

	var charFilters []listingmatch.CharFilter
	if len(cfg.CharMappings) > 0 {
		charFilters = append(charFilters, listingmatch.NewMappingCharFilter(cfg.CharMappings))
	}
	var tokenFilters []listingmatch.TokenFilter
	if cfg.Stem {
		tokenFilters = append(tokenFilters, listingmatch.NewStemmerFilter())
	}
	return listingmatch.NewKeywordExtractor(analyzer.With(charFilters, tokenFilters)), nil
}

func newStorage(cfg *config.Config) (listingmatch.Storage, func(), error) {
	switch cfg.Source.Type {
	case "rdb":
		dbConfig := &listingmatch.DBConfig{
			Driver:   cfg.DB.Driver,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Addr:     cfg.DB.Addr,
			Port:     cfg.DB.Port,
			DB:       cfg.DB.Name,
			Path:     cfg.DB.Path,
		}
		db, err := listingmatch.NewDBClient(dbConfig)
		if err != nil {
			return nil, nil, err
		}
		return listingmatch.NewStorageRdbImpl(db), func() { db.Close() }, nil
	default:
		storage := listingmatch.NewStorageFileImpl(cfg.Source.Listings, cfg.Source.Products, cfg.Source.StopWords)
		return storage, func() {}, nil
	}
}

func openOutput(cfg config.OutputConfig, stdout io.Writer) (io.Writer, func(), error) {
	if cfg.Path == "" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
