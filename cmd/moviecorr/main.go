package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Akshat-07-ux/OnlineRecommendationSystem/docs" // swagger docs

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/config"
	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/db"
	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/handler"
	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"
	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/render"
	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/repository"
	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/service"
)

// @title Movie Correlation Dashboard API
// @version 1.0
// @description Dashboard de recomendaciones item-based por correlación de Pearson
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	mode := flag.String("mode", modeConsole, "console | html | dashboard")
	out := flag.String("out", "dashboard.html", "archivo de salida para -mode=html")
	flag.StringVar(&cfg.DataSource, "source", cfg.DataSource, "file | mongo")
	flag.StringVar(&cfg.RatingsPath, "ratings", cfg.RatingsPath, "archivo TSV de ratings")
	flag.StringVar(&cfg.TitlesURL, "titles", cfg.TitlesURL, "URL o path del CSV de títulos")
	flag.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "catálogo YAML de referencias y pósters (vacío = embebido)")
	flag.IntVar(&cfg.MinRatings, "min-ratings", cfg.MinRatings, "umbral de popularidad (estrictamente mayor)")
	flag.IntVar(&cfg.TopN, "top", cfg.TopN, "filas por tabla de recomendaciones")
	flag.StringVar(&cfg.HTTPPort, "port", cfg.HTTPPort, "puerto HTTP para -mode=dashboard")
	flag.Parse()

	if err := validateMode(*mode); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("[catalog] %v", err)
	}

	ratings, titles, closeFn, err := sources(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFn()

	pipeline := service.NewPipelineService(ratings, titles, catalog.References, catalog.Posters, service.PipelineOptions{
		MinRatings: cfg.MinRatings,
		TopN:       cfg.TopN,
		MostRatedN: cfg.MostRatedN,
		HistBins:   cfg.HistBins,
	})

	res, err := pipeline.Run(ctx)
	if err != nil {
		closeFn()
		log.Fatalf("[pipeline] %v", err)
	}

	if *mode == modeDashboard {
		err = serve(ctx, cfg.HTTPPort, res, catalog)
	} else {
		err = renderReport(ctx, *mode, *out, res.Report)
	}
	if err != nil {
		closeFn()
		log.Fatal(err)
	}
}

// sources arma las fuentes de ratings y títulos según DATA_SOURCE.
func sources(ctx context.Context, cfg *config.Config) (service.RatingSource, service.TitleSource, func(), error) {
	switch cfg.DataSource {
	case "file", "":
		return repository.NewTSVRatingSource(cfg.RatingsPath),
			repository.NewCSVTitleSource(cfg.TitlesURL, cfg.FetchTimeout),
			func() {}, nil
	case "mongo":
		mdb, err := db.ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() {
			cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mdb.Client().Disconnect(cctx)
		}
		return repository.NewMongoRatingRepository(mdb), repository.NewMongoMovieRepository(mdb), closeFn, nil
	default:
		return nil, nil, nil, fmt.Errorf("DATA_SOURCE desconocido %q (file | mongo)", cfg.DataSource)
	}
}

const (
	modeConsole   = "console"
	modeHTML      = "html"
	modeDashboard = "dashboard"
)

func validateMode(mode string) error {
	switch mode {
	case modeConsole, modeHTML, modeDashboard:
		return nil
	}
	return fmt.Errorf("modo desconocido %q (console | html | dashboard)", mode)
}

// renderReport presenta el reporte con el Renderer del modo: consola a stdout,
// html a un archivo.
func renderReport(ctx context.Context, mode, out string, rep *models.Report) error {
	var w io.Writer = os.Stdout
	var f *os.File
	if mode == modeHTML {
		var err error
		if f, err = os.Create(out); err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	r, err := render.New(mode, w)
	if err != nil {
		return err
	}
	if err := r.Render(ctx, rep); err != nil {
		return err
	}
	if f != nil {
		if err := f.Close(); err != nil {
			return err
		}
		log.Printf("[html] dashboard escrito en %s", out)
	}
	return nil
}

func serve(ctx context.Context, port string, res *service.Result, catalog *config.Catalog) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler.NewRouter(res, catalog),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP escuchando en :%s", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Println("apagando servidor…")
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	}
}
