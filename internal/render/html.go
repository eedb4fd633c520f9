package render

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"io"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTmpl = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{"json": toJS}).
		ParseFS(templatesFS, "templates/dashboard.html"),
)

// json.Marshal escapa <, > y & así que el resultado es seguro dentro de <script>
func toJS(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

type dashboardData struct {
	Report *models.Report
	// LiveAPI habilita los controles que consultan /api y /ws (solo en modo servidor)
	LiveAPI bool
}

// HTML escribe el dashboard como una página autocontenida (Plotly por CDN).
type HTML struct {
	w io.Writer
}

func NewHTML(w io.Writer) *HTML {
	return &HTML{w: w}
}

func (h *HTML) Render(ctx context.Context, rep *models.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return WriteDashboard(h.w, rep, false)
}

func WriteDashboard(w io.Writer, rep *models.Report, liveAPI bool) error {
	return dashboardTmpl.Execute(w, dashboardData{Report: rep, LiveAPI: liveAPI})
}
