package repository

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"
)

// TSVRatingSource lee el archivo de ratings: 4 columnas separadas por tab y sin
// encabezado (user_id, item_id, rating, timestamp).
type TSVRatingSource struct {
	Path string
}

func NewTSVRatingSource(path string) *TSVRatingSource {
	return &TSVRatingSource{Path: path}
}

func (s *TSVRatingSource) Ratings(ctx context.Context) ([]models.Rating, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("abriendo archivo de ratings: %w", err)
	}
	defer f.Close()

	out, err := ParseRatingsTSV(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return out, nil
}

// ParseRatingsTSV parsea el formato de ratings; cualquier fila mal formada corta la carga.
func ParseRatingsTSV(ctx context.Context, r io.Reader) ([]models.Rating, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.Comma = '\t'
	reader.FieldsPerRecord = 4
	reader.ReuseRecord = true

	var out []models.Rating
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leyendo ratings: %w", err)
		}
		line, _ := reader.FieldPos(0)

		// chequeo barato de cancelación cada tanto
		if len(out)%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		rt, err := parseRatingRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		out = append(out, rt)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no se encontraron ratings")
	}
	return out, nil
}

func parseRatingRecord(rec []string) (models.Rating, error) {
	uid, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return models.Rating{}, fmt.Errorf("user_id inválido %q", rec[0])
	}
	iid, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err != nil {
		return models.Rating{}, fmt.Errorf("item_id inválido %q", rec[1])
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil {
		return models.Rating{}, fmt.Errorf("rating inválido %q", rec[2])
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(rec[3]), 10, 64)
	if err != nil {
		return models.Rating{}, fmt.Errorf("timestamp inválido %q", rec[3])
	}
	return models.Rating{UserID: uid, ItemID: iid, Rating: val, Timestamp: ts}, nil
}
