package surface

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/riemann"
	"github.com/npillmayer/riemann/curvature"
	"github.com/npillmayer/riemann/emotion"
	"github.com/npillmayer/riemann/metric"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrInvalidResolution indicates a grid with fewer than 2 samples per side.
var ErrInvalidResolution = errors.New("grid needs at least 2 samples per side")

// GridSample is everything a mesh or vector-field renderer needs at one grid
// position.
type GridSample struct {
	Pos       riemann.Pair // normalized position
	Height    float64
	Field     r2.Vec // unit direction of steepest descent, or zero
	Dominant  emotion.Kind
	Magnitude float64 // absolute intensity of the dominant emotion
	Curvature float64 // Gaussian curvature
}

// SampleGrid evaluates the surface on an n×n grid spanning [-1,1]². Samples
// are returned row by row (y outer, x inner). Rows are distributed over the
// engine's workers; each worker writes only its own rows.
func (e *Engine) SampleGrid(p emotion.Params, n int) ([]GridSample, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidResolution, n)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	workers := e.workers
	if workers < 1 { // zero Engine
		workers = 1
	}
	samples := make([]GridSample, n*n)
	rows := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				e.sampleRow(samples[row*n:(row+1)*n], row, n, p)
			}
		}()
	}
	for row := 0; row < n; row++ {
		rows <- row
	}
	close(rows)
	wg.Wait()
	tracer().Infof("sampled %d×%d grid with %d workers", n, n, workers)
	return samples, nil
}

func (e *Engine) sampleRow(out []GridSample, row, n int, p emotion.Params) {
	h := e.Step()
	y := gridCoord(row, n)
	for col := range out {
		x := gridCoord(col, n)
		fx, fy := metric.VectorField(x, y, p, h)
		k, mag := emotion.Dominant(emotion.All(x, y, p))
		out[col] = GridSample{
			Pos:       riemann.P(x, y),
			Height:    emotion.Height(x, y, p),
			Field:     r2.Vec{X: fx, Y: fy},
			Dominant:  k,
			Magnitude: mag,
			Curvature: curvature.Gaussian(x, y, p, h),
		}
	}
}

// gridCoord maps index i of n onto [-1,1].
func gridCoord(i, n int) float64 {
	return -1 + 2*float64(i)/float64(n-1)
}
