package matrix

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"
)

// ErrUnknownTitle: el título pedido no es columna de la matriz.
var ErrUnknownTitle = errors.New("título desconocido")

// RatingMatrix es la tabla usuario x título con semántica dispersa: una celda
// ausente significa "no calificó", nunca cero. Filas y columnas van ordenadas.
type RatingMatrix struct {
	users  []int
	titles []string
	col    map[string]int
	// cols[j] = celdas del título j ordenadas por índice de usuario
	cols [][]entry
	// pares (usuario, título) repetidos que se promediaron al armar la matriz
	duplicates int
}

type entry struct {
	u int
	v float64
}

// Build pivotea los ratings cruzados. Si un usuario calificó el mismo título más
// de una vez (p.ej. dos item_id con el mismo título) la celda es el promedio.
func Build(joined []models.JoinedRating) *RatingMatrix {
	userSet := make(map[int]struct{})
	titleSet := make(map[string]struct{})
	for _, r := range joined {
		userSet[r.UserID] = struct{}{}
		titleSet[r.Title] = struct{}{}
	}

	m := &RatingMatrix{
		users:  make([]int, 0, len(userSet)),
		titles: make([]string, 0, len(titleSet)),
		col:    make(map[string]int, len(titleSet)),
	}
	for u := range userSet {
		m.users = append(m.users, u)
	}
	sort.Ints(m.users)
	for t := range titleSet {
		m.titles = append(m.titles, t)
	}
	sort.Strings(m.titles)

	userIdx := make(map[int]int, len(m.users))
	for i, u := range m.users {
		userIdx[u] = i
	}
	for j, t := range m.titles {
		m.col[t] = j
	}

	type cell struct {
		sum float64
		n   int
	}
	acc := make([]map[int]*cell, len(m.titles))
	for _, r := range joined {
		j := m.col[r.Title]
		if acc[j] == nil {
			acc[j] = make(map[int]*cell)
		}
		u := userIdx[r.UserID]
		c := acc[j][u]
		if c == nil {
			c = &cell{}
			acc[j][u] = c
		} else {
			m.duplicates++
		}
		c.sum += r.Rating
		c.n++
	}

	m.cols = make([][]entry, len(m.titles))
	for j, cells := range acc {
		col := make([]entry, 0, len(cells))
		for u, c := range cells {
			col = append(col, entry{u: u, v: c.sum / float64(c.n)})
		}
		sort.Slice(col, func(a, b int) bool { return col[a].u < col[b].u })
		m.cols[j] = col
	}
	return m
}

func (m *RatingMatrix) Users() []int     { return m.users }
func (m *RatingMatrix) Titles() []string { return m.titles }
func (m *RatingMatrix) Duplicates() int  { return m.duplicates }

// Len devuelve la cantidad de celdas no vacías.
func (m *RatingMatrix) Len() int {
	n := 0
	for _, c := range m.cols {
		n += len(c)
	}
	return n
}

// Get devuelve el rating de (userID, title); ok=false si el usuario no lo calificó.
func (m *RatingMatrix) Get(userID int, title string) (float64, bool) {
	j, ok := m.col[title]
	if !ok {
		return 0, false
	}
	u := sort.SearchInts(m.users, userID)
	if u == len(m.users) || m.users[u] != userID {
		return 0, false
	}
	col := m.cols[j]
	k := sort.Search(len(col), func(i int) bool { return col[i].u >= u })
	if k == len(col) || col[k].u != u {
		return 0, false
	}
	return col[k].v, true
}

// Column devuelve userID -> rating de los usuarios que calificaron el título.
func (m *RatingMatrix) Column(title string) (map[int]float64, error) {
	j, ok := m.col[title]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTitle, title)
	}
	out := make(map[int]float64, len(m.cols[j]))
	for _, e := range m.cols[j] {
		out[m.users[e.u]] = e.v
	}
	return out, nil
}

// Correlation es la correlación de un título contra la referencia.
type Correlation struct {
	Title   string
	R       float64
	Overlap int
}

// CorrWith correlaciona cada columna contra la del título de referencia, usando solo
// los usuarios que calificaron ambos. Las correlaciones indefinidas (menos de 2
// usuarios en común o varianza cero) no se devuelven. El orden es el de las columnas.
func (m *RatingMatrix) CorrWith(title string) ([]Correlation, error) {
	j, ok := m.col[title]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTitle, title)
	}
	ref := m.cols[j]

	out := make([]Correlation, 0, len(m.titles))
	x := make([]float64, 0, len(ref))
	y := make([]float64, 0, len(ref))
	for k, t := range m.titles {
		r, n := pairwise(ref, m.cols[k], x[:0], y[:0])
		if math.IsNaN(r) {
			continue
		}
		out = append(out, Correlation{Title: t, R: r, Overlap: n})
	}
	return out, nil
}

// CorrMatrix arma la matriz de correlaciones por pares entre los títulos dados.
// Las celdas indefinidas quedan en NaN; la diagonal es 1 cuando está definida.
func (m *RatingMatrix) CorrMatrix(titles []string) ([][]float64, error) {
	idx := make([]int, len(titles))
	for i, t := range titles {
		j, ok := m.col[t]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTitle, t)
		}
		idx[i] = j
	}

	out := make([][]float64, len(titles))
	for i := range out {
		out[i] = make([]float64, len(titles))
	}
	x := make([]float64, 0, len(m.users))
	y := make([]float64, 0, len(m.users))
	for a := 0; a < len(idx); a++ {
		for b := a; b < len(idx); b++ {
			r, _ := pairwise(m.cols[idx[a]], m.cols[idx[b]], x[:0], y[:0])
			out[a][b] = r
			out[b][a] = r
		}
	}
	return out, nil
}

// pairwise alinea dos columnas por usuario (merge de listas ordenadas) y calcula
// Pearson sobre la intersección. Devuelve NaN si no está definida.
func pairwise(a, b []entry, x, y []float64) (float64, int) {
	i, k := 0, 0
	for i < len(a) && k < len(b) {
		switch {
		case a[i].u < b[k].u:
			i++
		case a[i].u > b[k].u:
			k++
		default:
			x = append(x, a[i].v)
			y = append(y, b[k].v)
			i++
			k++
		}
	}
	r, ok := Pearson(x, y)
	if !ok {
		return math.NaN(), len(x)
	}
	return r, len(x)
}
