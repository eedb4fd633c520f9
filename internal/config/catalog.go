package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog agrupa las películas de referencia y los pósters de la barra lateral.
type Catalog struct {
	References []models.Reference `yaml:"references"`
	Posters    []models.Poster    `yaml:"posters"`
}

// LoadCatalog lee el catálogo YAML; con path vacío usa el catálogo embebido.
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultCatalog
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("leyendo catálogo %s: %w", path, err)
		}
		data = b
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parseando catálogo: %w", err)
	}
	if len(c.References) == 0 {
		return nil, fmt.Errorf("el catálogo no define películas de referencia")
	}

	seen := make(map[string]bool, len(c.References))
	for i, ref := range c.References {
		if strings.TrimSpace(ref.Title) == "" {
			return nil, fmt.Errorf("referencia #%d sin título", i)
		}
		if ref.ID == "" {
			return nil, fmt.Errorf("referencia %q sin id", ref.Title)
		}
		if seen[ref.ID] {
			return nil, fmt.Errorf("id de referencia duplicado: %s", ref.ID)
		}
		seen[ref.ID] = true
	}
	return &c, nil
}

// Reference busca una referencia por id estable.
func (c *Catalog) Reference(id string) (models.Reference, bool) {
	for _, ref := range c.References {
		if ref.ID == id {
			return ref, true
		}
	}
	return models.Reference{}, false
}
