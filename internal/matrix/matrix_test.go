package matrix

import (
	"errors"
	"math"
	"testing"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"
)

func jr(user int, title string, rating float64) models.JoinedRating {
	return models.JoinedRating{UserID: user, Title: title, Rating: rating}
}

// ejemplo de punta a punta: X = item A, Y = item B
func exampleJoined() []models.JoinedRating {
	return []models.JoinedRating{
		jr(1, "X", 5), jr(2, "X", 4),
		jr(1, "Y", 5), jr(2, "Y", 3), jr(3, "Y", 2),
	}
}

func TestPearson_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want float64
	}{
		{"perfecta", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"inversa", []float64{1, 2, 3}, []float64{3, 2, 1}, -1},
		{"dos puntos", []float64{5, 4}, []float64{5, 3}, 1},
		{"parcial", []float64{1, 2, 3, 4}, []float64{2, 1, 4, 3}, 0.6},
	}
	for _, tc := range tests {
		got, ok := Pearson(tc.x, tc.y)
		if !ok {
			t.Fatalf("%s: expected defined correlation", tc.name)
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestPearson_Undefined(t *testing.T) {
	if _, ok := Pearson([]float64{1}, []float64{2}); ok {
		t.Fatalf("single observation must be undefined")
	}
	if _, ok := Pearson(nil, nil); ok {
		t.Fatalf("empty overlap must be undefined")
	}
	if _, ok := Pearson([]float64{3, 3, 3}, []float64{1, 2, 3}); ok {
		t.Fatalf("zero variance must be undefined")
	}
	if _, ok := Pearson([]float64{1, 2}, []float64{1, 2, 3}); ok {
		t.Fatalf("length mismatch must be undefined")
	}
}

func TestBuild_OneEntryPerPair(t *testing.T) {
	m := Build(exampleJoined())

	if got := len(m.Users()); got != 3 {
		t.Fatalf("expected 3 users, got %d", got)
	}
	if got := m.Titles(); len(got) != 2 || got[0] != "X" || got[1] != "Y" {
		t.Fatalf("unexpected titles: %v", got)
	}
	if m.Len() != 5 {
		t.Fatalf("expected 5 cells, got %d", m.Len())
	}
	for _, r := range exampleJoined() {
		v, ok := m.Get(r.UserID, r.Title)
		if !ok || v != r.Rating {
			t.Fatalf("cell (%d,%s): expected %v, got %v ok=%v", r.UserID, r.Title, r.Rating, v, ok)
		}
	}
	if _, ok := m.Get(3, "X"); ok {
		t.Fatalf("user 3 never rated X, cell must be absent")
	}
	if _, ok := m.Get(99, "X"); ok {
		t.Fatalf("unknown user must be absent")
	}
	if _, ok := m.Get(1, "Z"); ok {
		t.Fatalf("unknown title must be absent")
	}
}

func TestBuild_DuplicatePairsAreAveraged(t *testing.T) {
	m := Build([]models.JoinedRating{jr(1, "X", 5), jr(1, "X", 2), jr(2, "X", 4)})
	v, ok := m.Get(1, "X")
	if !ok || v != 3.5 {
		t.Fatalf("expected averaged 3.5, got %v ok=%v", v, ok)
	}
	if m.Duplicates() != 1 {
		t.Fatalf("expected 1 duplicate, got %d", m.Duplicates())
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 cells, got %d", m.Len())
	}
}

func TestCorrWith_EndToEndExample(t *testing.T) {
	m := Build(exampleJoined())

	corrs, err := m.CorrWith("X")
	if err != nil {
		t.Fatalf("CorrWith: %v", err)
	}
	byTitle := map[string]Correlation{}
	for _, c := range corrs {
		byTitle[c.Title] = c
	}

	self, ok := byTitle["X"]
	if !ok || self.R != 1.0 {
		t.Fatalf("self correlation must be exactly 1, got %+v", self)
	}

	// X sobre usuarios {1,2} = (5,4); Y sobre los mismos = (5,3)
	y, ok := byTitle["Y"]
	if !ok {
		t.Fatalf("Y should have a defined correlation")
	}
	want, _ := Pearson([]float64{5, 4}, []float64{5, 3})
	if y.R != want || y.Overlap != 2 {
		t.Fatalf("expected r=%v overlap=2, got %+v", want, y)
	}
	if y.R < -1 || y.R > 1 {
		t.Fatalf("correlation out of range: %v", y.R)
	}
}

func TestCorrWith_ExcludesSmallOverlap(t *testing.T) {
	m := Build([]models.JoinedRating{
		jr(1, "Ref", 5), jr(2, "Ref", 3), jr(3, "Ref", 1),
		jr(1, "Solo", 4),                     // 1 usuario en común
		jr(1, "Plana", 3), jr(2, "Plana", 3), // varianza cero
		jr(9, "Ajena", 2), jr(8, "Ajena", 4), // sin intersección
		jr(1, "Buena", 1), jr(2, "Buena", 3), jr(3, "Buena", 5),
	})

	corrs, err := m.CorrWith("Ref")
	if err != nil {
		t.Fatalf("CorrWith: %v", err)
	}
	got := map[string]float64{}
	for _, c := range corrs {
		got[c.Title] = c.R
		if c.Overlap < 2 {
			t.Fatalf("%s returned with overlap %d", c.Title, c.Overlap)
		}
	}
	for _, excluded := range []string{"Solo", "Plana", "Ajena"} {
		if _, ok := got[excluded]; ok {
			t.Fatalf("%s should be excluded", excluded)
		}
	}
	if r := got["Buena"]; math.Abs(r+1) > 1e-12 {
		t.Fatalf("expected -1 for Buena, got %v", r)
	}
}

func TestCorrWith_UnknownTitle(t *testing.T) {
	m := Build(exampleJoined())
	_, err := m.CorrWith("Star Wars (1997)")
	if !errors.Is(err, ErrUnknownTitle) {
		t.Fatalf("expected ErrUnknownTitle, got %v", err)
	}
	if _, err := m.Column("nope"); !errors.Is(err, ErrUnknownTitle) {
		t.Fatalf("expected ErrUnknownTitle from Column, got %v", err)
	}
}

func TestCorrMatrix_Symmetric(t *testing.T) {
	m := Build(exampleJoined())
	cm, err := m.CorrMatrix([]string{"X", "Y"})
	if err != nil {
		t.Fatalf("CorrMatrix: %v", err)
	}
	if cm[0][0] != 1 || cm[1][1] != 1 {
		t.Fatalf("diagonal must be 1, got %v", cm)
	}
	if cm[0][1] != cm[1][0] {
		t.Fatalf("matrix must be symmetric, got %v", cm)
	}
	if _, err := m.CorrMatrix([]string{"X", "W"}); !errors.Is(err, ErrUnknownTitle) {
		t.Fatalf("expected ErrUnknownTitle, got %v", err)
	}
}

func TestColumn(t *testing.T) {
	m := Build(exampleJoined())
	col, err := m.Column("Y")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if len(col) != 3 || col[1] != 5 || col[2] != 3 || col[3] != 2 {
		t.Fatalf("unexpected column: %v", col)
	}
}
