package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"
)

const barWidth = 40

// Console escribe el reporte como texto plano (tablas + histogramas ASCII).
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Render(ctx context.Context, rep *models.Report) error {
	tw := tabwriter.NewWriter(c.w, 0, 4, 2, ' ', 0)

	section(tw, "Head of the data")
	fmt.Fprintln(tw, "user_id\titem_id\trating\ttimestamp")
	for _, r := range rep.RatingsHead {
		fmt.Fprintf(tw, "%d\t%d\t%g\t%d\n", r.UserID, r.ItemID, r.Rating, r.Timestamp)
	}

	section(tw, "Movie titles")
	fmt.Fprintln(tw, "item_id\ttitle")
	for _, m := range rep.TitlesHead {
		fmt.Fprintf(tw, "%d\t%s\n", m.MovieID, m.Title)
	}

	section(tw, "Merged data")
	fmt.Fprintln(tw, "user_id\titem_id\trating\ttimestamp\ttitle")
	for _, r := range rep.JoinedHead {
		fmt.Fprintf(tw, "%d\t%d\t%g\t%d\t%s\n", r.UserID, r.ItemID, r.Rating, r.Timestamp, r.Title)
	}
	fmt.Fprintf(tw, "\n%d ratings, %d cruzados, %d descartados, %d usuarios, %d títulos\n",
		rep.TotalRatings, rep.JoinedRatings, rep.DroppedRatings, rep.Users, len(rep.Summaries))

	section(tw, "Movie summary")
	fmt.Fprintln(tw, "title\trating\tnum of ratings")
	for _, s := range firstSummaries(rep.Summaries, 5) {
		fmt.Fprintf(tw, "%s\t%.6f\t%d\n", s.Title, s.MeanRating, s.NumRatings)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	histogram(c.w, "Number of ratings per movie", rep.CountHist, "%8.1f")
	histogram(c.w, "Mean rating per movie", rep.MeanHist, "%8.3f")

	section(tw, "Top most rated movies")
	fmt.Fprintln(tw, "#\ttitle\tnum of ratings")
	for i, s := range rep.MostRated {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", i+1, s.Title, s.NumRatings)
	}

	for _, rec := range rep.Recommendations {
		section(tw, "Top recommendations for "+rec.Reference.Title)
		writeCorrelationTable(tw, rec.Items)
	}

	if len(rep.Posters) > 0 {
		section(tw, "Recommended movies")
		for _, p := range rep.Posters {
			fmt.Fprintf(tw, "%s\t%s\n", p.Title, p.ImageURL)
		}
	}
	fmt.Fprintf(tw, "\nrun %s  %s\n", rep.RunID, rep.GeneratedAt.Format("2006-01-02 15:04:05"))
	return tw.Flush()
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s:\n", title)
}

func writeCorrelationTable(w io.Writer, items []models.CorrelationEntry) {
	if len(items) == 0 {
		fmt.Fprintln(w, "(sin títulos sobre el umbral de popularidad)")
		return
	}
	fmt.Fprintln(w, "title\tCorrelation\tnum of ratings")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%.6f\t%d\n", it.Title, it.Correlation, it.NumRatings)
	}
}

func firstSummaries(s []models.MovieSummary, n int) []models.MovieSummary {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// histogram dibuja un bin por línea; los bins vacíos de las puntas se omiten.
func histogram(w io.Writer, title string, bins []models.HistogramBin, labelFmt string) {
	section(w, title)
	if len(bins) == 0 {
		fmt.Fprintln(w, "(sin datos)")
		return
	}
	first, last, peak := -1, -1, 0
	for i, b := range bins {
		if b.Count > 0 {
			if first < 0 {
				first = i
			}
			last = i
		}
		if b.Count > peak {
			peak = b.Count
		}
	}
	if first < 0 {
		fmt.Fprintln(w, "(sin datos)")
		return
	}
	for _, b := range bins[first : last+1] {
		n := 0
		if peak > 0 {
			n = b.Count * barWidth / peak
		}
		if n == 0 && b.Count > 0 {
			n = 1
		}
		fmt.Fprintf(w, labelFmt+" | %-*s %d\n", b.Lower, barWidth, strings.Repeat("#", n), b.Count)
	}
}
