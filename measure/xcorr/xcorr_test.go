package xcorr

import (
	"errors"
	"math"
	"testing"

	"github.com/almondyoung/depth-aware-motion-deblurring/img/grid"
	"github.com/almondyoung/depth-aware-motion-deblurring/internal/testutil"
)

func TestScoreSelf(t *testing.T) {
	x := testutil.DeterministicNoise(1, 1, 16, 16)
	got, err := Score(x, x, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1) > 1e-12 {
		t.Errorf("score(x, x) = %v, want 1", got)
	}
}

func TestScoreNegated(t *testing.T) {
	x := testutil.DeterministicNoise(2, 1, 16, 16)
	y := grid.NewReal(16, 16)
	for i, v := range x.Data {
		y.Data[i] = -v
	}
	got, err := Score(x, y, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got+1) > 1e-12 {
		t.Errorf("score(x, -x) = %v, want -1", got)
	}
}

func TestScoreAffineInvariant(t *testing.T) {
	// A positive affine transform of x correlates perfectly with x.
	x := testutil.DeterministicNoise(3, 1, 8, 8)
	y := grid.NewReal(8, 8)
	for i, v := range x.Data {
		y.Data[i] = 3*v + 7
	}
	got, err := Score(x, y, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("score(x, 3x+7) = %v, want 1", got)
	}
}

func TestScoreMaskedIgnoresOutside(t *testing.T) {
	x := testutil.DeterministicNoise(4, 1, 12, 12)
	y := x.Clone()

	mask := grid.NewGray(12, 12)
	for r := 3; r < 9; r++ {
		for c := 3; c < 9; c++ {
			mask.Set(r, c, 1)
		}
	}

	// Corrupt everything outside the mask; the masked score must not see it.
	for r := 0; r < 12; r++ {
		for c := 0; c < 12; c++ {
			if !mask.Active(r, c) {
				y.Set(r, c, 1e6)
			}
		}
	}

	got, err := Score(x, y, mask)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1) > 1e-12 {
		t.Errorf("masked score = %v, want 1", got)
	}

	unmasked, err := Score(x, y, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(unmasked-1) < 1e-6 {
		t.Error("unmasked score should see the corrupted region")
	}
}

func TestScoreBounded(t *testing.T) {
	x := testutil.DeterministicNoise(5, 1, 10, 10)
	y := testutil.DeterministicNoise(6, 1, 10, 10)
	got, err := Score(x, y, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got < -1-1e-12 || got > 1+1e-12 {
		t.Errorf("score %v outside [-1, 1]", got)
	}
}

func TestScoreZeroDeviation(t *testing.T) {
	x := testutil.Constant(5, 4, 4)
	y := testutil.DeterministicNoise(7, 1, 4, 4)

	if _, err := Score(x, y, nil); !errors.Is(err, ErrZeroDeviation) {
		t.Errorf("constant x: expected ErrZeroDeviation, got %v", err)
	}
	if _, err := Score(y, x, nil); !errors.Is(err, ErrZeroDeviation) {
		t.Errorf("constant y: expected ErrZeroDeviation, got %v", err)
	}
}

func TestScoreEmptyMask(t *testing.T) {
	x := testutil.DeterministicNoise(8, 1, 4, 4)
	if _, err := Score(x, x, grid.NewGray(4, 4)); !errors.Is(err, ErrEmptyRegion) {
		t.Errorf("expected ErrEmptyRegion, got %v", err)
	}
}

func TestScoreSizeMismatch(t *testing.T) {
	a := grid.NewReal(4, 4)
	b := grid.NewReal(4, 5)

	if _, err := Score(a, b, nil); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("grid mismatch: expected ErrSizeMismatch, got %v", err)
	}
	if _, err := Score(a, a, grid.NewGray(3, 4)); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("mask mismatch: expected ErrSizeMismatch, got %v", err)
	}
	if _, err := Score(nil, a, nil); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("nil grid: expected ErrSizeMismatch, got %v", err)
	}
}
