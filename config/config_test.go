package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		testChdir(t, t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "file", cfg.Source.Type)
		assert.Equal(t, "data/listings.txt", cfg.Source.Listings)
		assert.Equal(t, "data/products.txt", cfg.Source.Products)
		assert.Equal(t, "data/stop-words.txt", cfg.Source.StopWords)
		assert.Equal(t, "mysql", cfg.DB.Driver)
		assert.Equal(t, "3306", cfg.DB.Port)
		assert.Equal(t, "pattern", cfg.Extractor.Mode)
		assert.False(t, cfg.Extractor.Stem)
		assert.False(t, cfg.Matcher.MatchKeywordlessProducts)
		assert.Equal(t, "text", cfg.Output.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		testChdir(t, t.TempDir())
		t.Setenv("LISTINGMATCH_SOURCE_LISTINGS", "/tmp/l.txt")
		t.Setenv("LISTINGMATCH_OUTPUT_FORMAT", "json")
		t.Setenv("LISTINGMATCH_EXTRACTOR_STEM", "true")
		t.Setenv("LISTINGMATCH_LOG_LEVEL", "debug")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "/tmp/l.txt", cfg.Source.Listings)
		assert.Equal(t, "json", cfg.Output.Format)
		assert.True(t, cfg.Extractor.Stem)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("loads a config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "listingmatch.yaml")
		content := `
source:
  type: rdb
db:
  driver: sqlite
  path: /var/lib/listingmatch.db
extractor:
  char_mappings:
    "&": " and "
matcher:
  match_keywordless_products: true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "rdb", cfg.Source.Type)
		assert.Equal(t, "sqlite", cfg.DB.Driver)
		assert.Equal(t, "/var/lib/listingmatch.db", cfg.DB.Path)
		assert.Equal(t, map[string]string{"&": " and "}, cfg.Extractor.CharMappings)
		assert.True(t, cfg.Matcher.MatchKeywordlessProducts)
	})

	t.Run("fails when the given config file is missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		cases := map[string]string{
			"LISTINGMATCH_SOURCE_TYPE":    "ftp",
			"LISTINGMATCH_OUTPUT_FORMAT":  "xml",
			"LISTINGMATCH_EXTRACTOR_MODE": "fuzzy",
			"LISTINGMATCH_LOG_FORMAT":     "logfmt",
		}
		for key, value := range cases {
			t.Run(key, func(t *testing.T) {
				testChdir(t, t.TempDir())
				t.Setenv(key, value)

				_, err := Load("")
				assert.Error(t, err)
			})
		}
	})
}

// testChdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it
// changes the working directory and restores it when the test finishes.
func testChdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatal(err)
		}
	})
}
