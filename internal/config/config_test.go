package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("RATINGS_PATH", "/data/u.data")
	t.Setenv("MIN_RATINGS", "50")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("TOP_N", "no-es-numero")

	cfg := Load()
	if cfg.RatingsPath != "/data/u.data" {
		t.Fatalf("unexpected ratings path: %q", cfg.RatingsPath)
	}
	if cfg.MinRatings != 50 {
		t.Fatalf("expected min ratings 50, got %d", cfg.MinRatings)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %s", cfg.FetchTimeout)
	}
	if cfg.TopN != 10 {
		t.Fatalf("invalid TOP_N should fall back to 10, got %d", cfg.TopN)
	}
	if cfg.TitlesURL != DefaultTitlesURL {
		t.Fatalf("unexpected titles url: %q", cfg.TitlesURL)
	}
}

func TestLoadCatalog_Embedded(t *testing.T) {
	c, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.References) != 2 {
		t.Fatalf("expected 2 references, got %d", len(c.References))
	}
	if len(c.Posters) != 10 {
		t.Fatalf("expected 10 posters, got %d", len(c.Posters))
	}
	ref, ok := c.Reference("star-wars")
	if !ok || ref.Title != "Star Wars (1977)" {
		t.Fatalf("unexpected star-wars reference: %+v ok=%v", ref, ok)
	}
	ref, ok = c.Reference("liar-liar")
	if !ok || ref.Title != "Liar Liar (1997)" {
		t.Fatalf("unexpected liar-liar reference: %+v ok=%v", ref, ok)
	}
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	yaml := `references:
  - id: toy-story
    title: "Toy Story (1995)"
posters: []
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.References) != 1 || c.References[0].Title != "Toy Story (1995)" {
		t.Fatalf("unexpected references: %+v", c.References)
	}
	if _, ok := c.Reference("star-wars"); ok {
		t.Fatalf("star-wars should not exist in custom catalog")
	}
}

func TestParseCatalog_Invalid(t *testing.T) {
	cases := map[string]string{
		"sin referencias": "posters: []\n",
		"sin titulo":      "references:\n  - id: a\n",
		"sin id":          "references:\n  - title: \"A (1990)\"\n",
		"id duplicado":    "references:\n  - id: a\n    title: \"A\"\n  - id: a\n    title: \"B\"\n",
		"yaml roto":       "references: [\n",
	}
	for name, in := range cases {
		if _, err := ParseCatalog([]byte(in)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing catalog file")
	}
}
