package vecx

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestAddSub(t *testing.T) {
	dst := []float64{1, 2, 3}
	Add(dst, []float64{1, 1, 1})
	want := []float64{2, 3, 4}
	for i := range want {
		if !almostEqual(dst[i], want[i]) {
			t.Errorf("Add[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
	Sub(dst, []float64{1, 1, 1})
	want = []float64{1, 2, 3}
	for i := range want {
		if !almostEqual(dst[i], want[i]) {
			t.Errorf("Sub[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestAddScaled(t *testing.T) {
	dst := []float64{1, 1}
	AddScaled(dst, 2, []float64{1, 2})
	want := []float64{3, 5}
	for i := range want {
		if !almostEqual(dst[i], want[i]) {
			t.Errorf("AddScaled[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestDotNorm(t *testing.T) {
	a := []float64{3, 4}
	if got := Dot(a, a); !almostEqual(got, 25) {
		t.Errorf("Dot = %v, want 25", got)
	}
	if got := Norm2(a); !almostEqual(got, 5) {
		t.Errorf("Norm2 = %v, want 5", got)
	}
	if got := NormInf([]float64{-3, 4, -1}); !almostEqual(got, 4) {
		t.Errorf("NormInf = %v, want 4", got)
	}
}

func TestOuterMatVec(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{3, 4}
	dst := make([]float64, 4)
	Outer(dst, a, b)
	want := []float64{3, 4, 6, 8}
	for i := range want {
		if !almostEqual(dst[i], want[i]) {
			t.Errorf("Outer[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
	y := make([]float64, 2)
	MatVec(y, dst, 2, 2, []float64{1, 1})
	wantY := []float64{7, 14}
	for i := range wantY {
		if !almostEqual(y[i], wantY[i]) {
			t.Errorf("MatVec[%d] = %v, want %v", i, y[i], wantY[i])
		}
	}
}

func TestIdentityClip(t *testing.T) {
	id := make([]float64, 9)
	Identity(id, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if !almostEqual(id[i*3+j], want) {
				t.Errorf("Identity[%d,%d] = %v, want %v", i, j, id[i*3+j], want)
			}
		}
	}
	v := []float64{-5, 0.5, 5}
	ClipElem(v, 0, 1)
	want := []float64{0, 0.5, 1}
	for i := range want {
		if !almostEqual(v[i], want[i]) {
			t.Errorf("ClipElem[%d] = %v, want %v", i, v[i], want[i])
		}
	}
}

func TestFloat32(t *testing.T) {
	a := []float32{3, 4}
	if got := Norm2(a); math.Abs(float64(got)-5) > 1e-5 {
		t.Errorf("Norm2(float32) = %v, want 5", got)
	}
}
