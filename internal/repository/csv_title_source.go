package repository

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"
)

// ErrMissingColumn se devuelve cuando el CSV de títulos no trae item_id o title.
var ErrMissingColumn = errors.New("columna requerida ausente")

// CSVTitleSource lee la tabla item_id -> title desde una URL http(s) o un path local.
type CSVTitleSource struct {
	Location string
	client   *http.Client
}

func NewCSVTitleSource(location string, timeout time.Duration) *CSVTitleSource {
	return &CSVTitleSource{
		Location: location,
		client:   &http.Client{Timeout: timeout},
	}
}

func isRemote(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

func (s *CSVTitleSource) Movies(ctx context.Context) ([]models.MovieDoc, error) {
	rc, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	out, err := ParseTitlesCSV(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Location, err)
	}
	return out, nil
}

// una sola llamada, sin reintentos
func (s *CSVTitleSource) open(ctx context.Context) (io.ReadCloser, error) {
	if !isRemote(s.Location) {
		f, err := os.Open(s.Location)
		if err != nil {
			return nil, fmt.Errorf("abriendo títulos: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("descargando títulos: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("descargando títulos: %s respondió %s", s.Location, resp.Status)
	}
	return resp.Body, nil
}

// ParseTitlesCSV lee un CSV con encabezado; las columnas item_id y title se
// buscan por nombre, el resto se ignora.
func ParseTitlesCSV(r io.Reader) ([]models.MovieDoc, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("leyendo encabezado: %w", err)
	}
	idCol, titleCol := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) {
		case "item_id":
			idCol = i
		case "title":
			titleCol = i
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("%w: item_id", ErrMissingColumn)
	}
	if titleCol < 0 {
		return nil, fmt.Errorf("%w: title", ErrMissingColumn)
	}

	var out []models.MovieDoc
	seen := make(map[int]bool)
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leyendo títulos: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if len(rec) <= idCol || len(rec) <= titleCol {
			return nil, fmt.Errorf("línea %d: faltan columnas", line)
		}

		id, err := strconv.Atoi(strings.TrimSpace(rec[idCol]))
		if err != nil {
			return nil, fmt.Errorf("línea %d: item_id inválido %q", line, rec[idCol])
		}
		if seen[id] {
			return nil, fmt.Errorf("línea %d: item_id duplicado %d", line, id)
		}
		seen[id] = true
		out = append(out, models.MovieDoc{MovieID: id, Title: rec[titleCol]})
	}
	return out, nil
}
