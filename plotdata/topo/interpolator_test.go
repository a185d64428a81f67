package topo

import (
	"errors"
	"math"
	"sort"
	"sync"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-eeg/internal/testutil"
)

var fourLabels = []string{"Fp1", "Fp2", "F7", "F8"}

func mustInterpolator(t *testing.T, labels []string, rows [][]float64, start, step float64) *Interpolator {
	t.Helper()
	ip, err := New(labels, rows, start, step)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ip
}

// reference evaluates the weighting formula directly over a full sort.
func reference(ip *Interpolator, k int, frequency float64, p Point) float64 {
	n := ip.ElectrodeCount()
	w := make([]float64, n)
	order := make([]int, n)
	for i := range w {
		w[i] = 1 / sqDist(p, layout1020[i])
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return w[order[a]] > w[order[b]] })
	if k > n {
		k = n
	}

	bin, ok := ip.BinIndex(frequency)
	mid, span := ip.Extent().Midpoint(), ip.Extent().Span()
	var num, den float64
	for _, e := range order[:max(k, 0)] {
		if !ok {
			continue
		}
		num += 2 * w[e] * (ip.Correlations()[bin][e] - mid) / span
		den += w[e]
	}
	return num / den
}

func TestNewStripsLabelsAndScansExtent(t *testing.T) {
	ip := mustInterpolator(t, []string{" F p1", "Fp2 ", "C z"}, [][]float64{
		{3, -1, 4},
		{1, 5, -9},
	}, 1, 1)

	want := []string{"Fp1", "Fp2", "Cz"}
	for i, l := range ip.Labels() {
		if l != want[i] {
			t.Fatalf("label %d = %q, want %q", i, l, want[i])
		}
	}
	if got := ip.Extent(); got != (Range{Min: -9, Max: 5}) {
		t.Fatalf("extent = %v, want [-9, 5]", got)
	}
	if ip.Units() != DefaultUnits || ip.Name() != "" {
		t.Fatalf("unexpected config: name=%q units=%q", ip.Name(), ip.Units())
	}
}

func TestNewEmptyExtent(t *testing.T) {
	ip := mustInterpolator(t, nil, nil, 0, 1)
	e := ip.Extent()
	if !math.IsInf(e.Min, 1) || !math.IsInf(e.Max, -1) {
		t.Fatalf("extent = %v, want [+Inf, -Inf]", e)
	}
	if got := ip.Interpolate(3, 10, Point{X: 0.1}); !math.IsNaN(got) {
		t.Fatalf("Interpolate on empty = %v, want NaN", got)
	}
}

func TestNewErrors(t *testing.T) {
	tooMany := make([]string, LayoutSize+1)
	if _, err := New(tooMany, nil, 0, 1); !errors.Is(err, ErrTooManyElectrodes) {
		t.Fatalf("err = %v, want ErrTooManyElectrodes", err)
	}

	_, err := New(fourLabels, [][]float64{{1, 2, 3, 4}, {1, 2}}, 0, 1)
	if !errors.Is(err, ErrRowLength) {
		t.Fatalf("err = %v, want ErrRowLength", err)
	}
}

func TestNewFromMatrix(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	ip, err := NewFromMatrix([]string{"O1", "O2", "Pz"}, m, 8, 2, WithName("alpha"), WithUnits("r"))
	if err != nil {
		t.Fatal(err)
	}

	if ip.BinCount() != 2 || ip.ElectrodeCount() != 3 {
		t.Fatalf("dims = %dx%d, want 2x3", ip.BinCount(), ip.ElectrodeCount())
	}
	testutil.RequireSliceNearlyEqual(t, ip.Correlations()[1], []float64{4, 5, 6}, 0)
	if ip.Name() != "alpha" || ip.Units() != "r" {
		t.Fatalf("config = %q/%q", ip.Name(), ip.Units())
	}

	m.Set(0, 0, 100)
	if ip.Correlations()[0][0] != 1 {
		t.Fatal("NewFromMatrix aliases the matrix")
	}
}

func TestInterpolateOnElectrode(t *testing.T) {
	ip := mustInterpolator(t, fourLabels, [][]float64{{0, 10, 20, 30}}, 0, 1)
	if got := ip.Extent(); got != (Range{Min: 0, Max: 30}) {
		t.Fatalf("extent = %v, want [0, 30]", got)
	}

	if got := ip.Interpolate(1, 10, layout1020[3]); got != 1 {
		t.Fatalf("Interpolate at max electrode = %v, want 1", got)
	}
	if got := ip.Interpolate(1, 10, layout1020[0]); got != -1 {
		t.Fatalf("Interpolate at min electrode = %v, want -1", got)
	}
}

func TestInterpolateOnElectrodeIgnoresOthers(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		row := testutil.DeterministicNoise(seed, 50, len(fourLabels))
		row[2] = 7
		ip := mustInterpolator(t, fourLabels, [][]float64{row}, 0, 1)
		ip.SetExtent(-50, 50)

		want := 2 * (7 - 0) / 100.0
		for k := 1; k <= 6; k++ {
			if got := ip.Interpolate(k, 0, layout1020[2]); math.Abs(got-want) > 1e-12 {
				t.Fatalf("seed %d k=%d: got %v, want %v", seed, k, got, want)
			}
		}
	}
}

func TestInterpolateSymmetricPairCancels(t *testing.T) {
	// Electrodes 0 and 1 mirror each other across the midline.
	ip := mustInterpolator(t, fourLabels, [][]float64{{0, 30, 10, 20}}, 0, 1)

	p := Point{X: 0, Y: layout1020[0].Y}
	if got := ip.Interpolate(2, 0, p); math.Abs(got) > 1e-12 {
		t.Fatalf("Interpolate between 0 and 30 = %v, want 0", got)
	}
}

func TestInterpolateMatchesReference(t *testing.T) {
	labels := make([]string, LayoutSize)
	row := testutil.DeterministicNoise(7, 20, LayoutSize)
	rows := [][]float64{row, testutil.DeterministicNoise(8, 20, LayoutSize)}
	ip := mustInterpolator(t, labels, rows, 8, 2)

	points := []Point{{X: 0.1, Y: 0.2}, {X: -0.7, Y: 0.3}, {X: 0.33, Y: -0.81}, {X: 0, Y: 0.9}}
	for _, p := range points {
		for _, k := range []int{1, 2, 4, 7, 19} {
			for _, f := range []float64{8, 9.9, 10, 11.5} {
				got := ip.Interpolate(k, f, p)
				want := reference(ip, k, f, p)
				if math.Abs(got-want) > 1e-9 {
					t.Fatalf("p=%v k=%d f=%v: got %v, want %v", p, k, f, got, want)
				}
				if got < -1-1e-9 || got > 1+1e-9 {
					t.Fatalf("p=%v k=%d f=%v: %v outside [-1, 1]", p, k, f, got)
				}
			}
		}
	}
}

func TestInterpolateSaturatesAtElectrodeCount(t *testing.T) {
	ip := mustInterpolator(t, fourLabels, [][]float64{{0, 10, 20, 30}}, 0, 1)
	p := Point{X: 0.05, Y: -0.4}

	base := ip.Interpolate(len(fourLabels), 0, p)
	for _, k := range []int{5, 19, 1000} {
		if got := ip.Interpolate(k, 0, p); got != base {
			t.Fatalf("k=%d: got %v, want %v", k, got, base)
		}
	}
}

func TestInterpolateFrequencyBins(t *testing.T) {
	rows := [][]float64{
		{0, 0, 0, 0},
		{30, 30, 30, 30},
		{15, 15, 15, 15},
	}
	ip := mustInterpolator(t, fourLabels, rows, 8, 1)
	p := Point{X: 0.2, Y: -0.3}

	for _, tc := range []struct {
		f    float64
		want float64
	}{
		{f: 2, want: -1},
		{f: 8, want: -1},
		{f: 8.99, want: -1},
		{f: 9, want: 1},
		{f: 10.5, want: 0},
	} {
		if got := ip.Interpolate(3, tc.f, p); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("f=%v: got %v, want %v", tc.f, got, tc.want)
		}
	}

	if got := ip.Interpolate(3, 11, p); !math.IsNaN(got) {
		t.Fatalf("out-of-range bin: got %v, want NaN", got)
	}
	if _, err := ip.InterpolateStrict(3, 11, p); !errors.Is(err, ErrNoContributors) {
		t.Fatalf("err = %v, want ErrNoContributors", err)
	}
}

func TestInterpolateSingleBinIgnoresFrequency(t *testing.T) {
	ip := mustInterpolator(t, fourLabels, [][]float64{{0, 10, 20, 30}}, 8, 1)
	p := Point{X: 0.1, Y: -0.6}

	want := ip.Interpolate(2, 8, p)
	for _, f := range []float64{-100, 0, 55, math.Inf(1)} {
		if got := ip.Interpolate(2, f, p); got != want {
			t.Fatalf("f=%v: got %v, want %v", f, got, want)
		}
	}
}

func TestInterpolateNonPositiveK(t *testing.T) {
	ip := mustInterpolator(t, fourLabels, [][]float64{{0, 10, 20, 30}}, 0, 1)
	for _, k := range []int{0, -1} {
		if got := ip.Interpolate(k, 0, Point{}); !math.IsNaN(got) {
			t.Fatalf("k=%d: got %v, want NaN", k, got)
		}
	}
}

func TestInterpolateStrict(t *testing.T) {
	ip := mustInterpolator(t, fourLabels, [][]float64{{0, 10, 20, 30}}, 0, 1)

	got, err := ip.InterpolateStrict(2, 0, Point{X: 0.1, Y: -0.6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireFinite(t, []float64{got})

	got, err = ip.InterpolateStrict(1, 0, layout1020[3])
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("err = %v, want ErrDegenerateGeometry", err)
	}
	if got != 1 {
		t.Fatalf("value = %v, want 1 alongside the error", got)
	}

	ip.SetExtent(5, 5)
	got, err = ip.InterpolateStrict(2, 0, Point{X: 0.1, Y: -0.6})
	if !errors.Is(err, ErrDegenerateExtent) {
		t.Fatalf("err = %v, want ErrDegenerateExtent", err)
	}
	if !math.IsInf(got, 0) && !math.IsNaN(got) {
		t.Fatalf("value = %v, want non-finite", got)
	}
}

func TestSetExtentRenormalizes(t *testing.T) {
	ip := mustInterpolator(t, fourLabels, [][]float64{{0, 10, 20, 30}}, 0, 1)
	if got := ip.SetExtent(0, 60).Interpolate(1, 0, layout1020[3]); got != 0 {
		t.Fatalf("got %v, want 0 after widening the extent", got)
	}
	if got := ip.Extent(); got != (Range{Min: 0, Max: 60}) {
		t.Fatalf("extent = %v", got)
	}
}

func TestInterpolateConcurrent(t *testing.T) {
	labels := make([]string, LayoutSize)
	rows := [][]float64{testutil.DeterministicNoise(3, 10, LayoutSize)}
	ip := mustInterpolator(t, labels, rows, 0, 1)

	points := make([]Point, 64)
	want := make([]float64, len(points))
	for i := range points {
		points[i] = Point{X: math.Cos(float64(i)) * 0.8, Y: math.Sin(float64(i)) * 0.8}
		want[i] = ip.Interpolate(5, 0, points[i])
	}

	var wg sync.WaitGroup
	got := make([][]float64, 8)
	for g := range got {
		got[g] = make([]float64, len(points))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, p := range points {
				got[g][i] = ip.Interpolate(5, 0, p)
			}
		}()
	}
	wg.Wait()

	for g := range got {
		testutil.RequireSliceNearlyEqual(t, got[g], want, 0)
	}
}
