package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestParseRatingsTSV(t *testing.T) {
	in := "196\t242\t3\t881250949\n186\t302\t3\t891717742\n22\t377\t1\t878887116\n"
	got, err := ParseRatingsTSV(context.Background(), strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseRatingsTSV: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 ratings, got %d", len(got))
	}
	first := got[0]
	if first.UserID != 196 || first.ItemID != 242 || first.Rating != 3 || first.Timestamp != 881250949 {
		t.Fatalf("unexpected first rating: %+v", first)
	}
}

func TestParseRatingsTSV_Malformed(t *testing.T) {
	cases := map[string]string{
		"columnas de menos": "1\t2\t3\n",
		"columnas de mas":   "1\t2\t3\t4\t5\n",
		"user no numerico":  "a\t2\t3\t4\n",
		"rating roto":       "1\t2\tx\t4\n",
		"timestamp roto":    "1\t2\t3\t4.5\n",
		"vacio":             "",
	}
	for name, in := range cases {
		if _, err := ParseRatingsTSV(context.Background(), strings.NewReader(in)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestParseRatingsTSV_ReportsLine(t *testing.T) {
	in := "1\t2\t3\t4\n1\t2\tmal\t4\n"
	_, err := ParseRatingsTSV(context.Background(), strings.NewReader(in))
	if err == nil || !strings.Contains(err.Error(), "línea 2") {
		t.Fatalf("expected error mentioning line 2, got %v", err)
	}
}

func TestTSVRatingSource_MissingFile(t *testing.T) {
	src := NewTSVRatingSource(filepath.Join(t.TempDir(), "file.tsv"))
	if _, err := src.Ratings(context.Background()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseTitlesCSV(t *testing.T) {
	in := "item_id,title\n1,Toy Story (1995)\n2,GoldenEye (1995)\n3,\"Shawshank Redemption, The (1994)\"\n"
	got, err := ParseTitlesCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseTitlesCSV: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 titles, got %d", len(got))
	}
	if got[2].MovieID != 3 || got[2].Title != "Shawshank Redemption, The (1994)" {
		t.Fatalf("unexpected quoted title: %+v", got[2])
	}
}

func TestParseTitlesCSV_ColumnsByName(t *testing.T) {
	in := "title,year,item_id\nStar Wars (1977),1977,50\n"
	got, err := ParseTitlesCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseTitlesCSV: %v", err)
	}
	if got[0].MovieID != 50 || got[0].Title != "Star Wars (1977)" {
		t.Fatalf("unexpected row: %+v", got[0])
	}
}

func TestParseTitlesCSV_Errors(t *testing.T) {
	if _, err := ParseTitlesCSV(strings.NewReader("id,title\n1,A\n")); !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn for item_id, got %v", err)
	}
	if _, err := ParseTitlesCSV(strings.NewReader("item_id,name\n1,A\n")); !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn for title, got %v", err)
	}
	if _, err := ParseTitlesCSV(strings.NewReader("item_id,title\nx,A\n")); err == nil {
		t.Fatalf("expected error for non-numeric item_id")
	}
	if _, err := ParseTitlesCSV(strings.NewReader("item_id,title\n1,A\n1,B\n")); err == nil {
		t.Fatalf("expected error for duplicated item_id")
	}
	if _, err := ParseTitlesCSV(strings.NewReader("")); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestCSVTitleSource_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("item_id,title\n50,Star Wars (1977)\n"))
	}))
	defer srv.Close()

	src := NewCSVTitleSource(srv.URL+"/Movie_Id_Titles.csv", time.Second)
	got, err := src.Movies(context.Background())
	if err != nil {
		t.Fatalf("Movies: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Star Wars (1977)" {
		t.Fatalf("unexpected titles: %+v", got)
	}
}

func TestCSVTitleSource_RemoteStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	src := NewCSVTitleSource(srv.URL, time.Second)
	if _, err := src.Movies(context.Background()); err == nil {
		t.Fatalf("expected error on 404")
	}
}

func TestCSVTitleSource_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.csv")
	if err := os.WriteFile(path, []byte("item_id,title\n1,A\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := NewCSVTitleSource(path, time.Second).Movies(context.Background())
	if err != nil {
		t.Fatalf("Movies: %v", err)
	}
	if len(got) != 1 || got[0].MovieID != 1 {
		t.Fatalf("unexpected titles: %+v", got)
	}
}

func TestRatingFromRaw_MixedNumericTypes(t *testing.T) {
	raw := bson.M{
		"userId":    int32(7),
		"movieId":   int64(50),
		"rating":    int32(4),
		"timestamp": float64(881250949),
	}
	got, err := ratingFromRaw(raw)
	if err != nil {
		t.Fatalf("ratingFromRaw: %v", err)
	}
	if got.UserID != 7 || got.ItemID != 50 || got.Rating != 4 || got.Timestamp != 881250949 {
		t.Fatalf("unexpected rating: %+v", got)
	}
}

func TestRatingFromRaw_MalformedDocument(t *testing.T) {
	cases := map[string]struct {
		raw   bson.M
		field string
	}{
		"sin userId":        {bson.M{"_id": "r1", "movieId": int32(50), "rating": int32(5), "timestamp": int64(1)}, "userId"},
		"rating como texto": {bson.M{"_id": "r2", "userId": int32(1), "movieId": int32(50), "rating": "5", "timestamp": int64(1)}, "rating"},
		"movieId nulo":      {bson.M{"_id": "r3", "userId": int32(1), "movieId": nil, "rating": 4.0, "timestamp": int64(1)}, "movieId"},
		"sin timestamp":     {bson.M{"_id": "r4", "userId": int32(1), "movieId": int32(50), "rating": 4.0}, "timestamp"},
	}
	for name, tc := range cases {
		_, err := ratingFromRaw(tc.raw)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if !strings.Contains(err.Error(), tc.field) || !strings.Contains(err.Error(), fmt.Sprint(tc.raw["_id"])) {
			t.Fatalf("%s: error should name document and field %s, got %v", name, tc.field, err)
		}
	}
}
