// Package render contiene los presentadores del reporte: consola y página HTML.
// Todos consumen el mismo models.Report, el cálculo vive en service.
package render

import (
	"context"
	"fmt"
	"io"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"
)

type Renderer interface {
	Render(ctx context.Context, rep *models.Report) error
}

// New devuelve el presentador de texto ("console") o de página estática ("html").
func New(format string, w io.Writer) (Renderer, error) {
	switch format {
	case "console":
		return NewConsole(w), nil
	case "html":
		return NewHTML(w), nil
	default:
		return nil, fmt.Errorf("formato de salida desconocido %q", format)
	}
}
