package solver

import "testing"

func TestCoefArithmetic(t *testing.T) {
	half := NewCoef(1, 2)
	third := NewCoef(1, 3)

	if got := half.Add(third); got != NewCoef(5, 6) {
		t.Errorf("half + third = %v, want 5/6", got)
	}
	if got := half.Sub(third); got != NewCoef(1, 6) {
		t.Errorf("half - third = %v, want 1/6", got)
	}
	if got := half.Mul(third); got != NewCoef(1, 6) {
		t.Errorf("half * third = %v, want 1/6", got)
	}
	if got := half.Div(third); got != NewCoef(3, 2) {
		t.Errorf("half / third = %v, want 3/2", got)
	}
	if got := half.Neg(); got != NewCoef(-1, 2) {
		t.Errorf("-half = %v, want -1/2", got)
	}
}

func TestCoefNormalizes(t *testing.T) {
	cases := []struct {
		num, den int32
		want     Coef
	}{
		{2, 4, NewCoef(1, 2)},
		{-2, 4, NewCoef(-1, 2)},
		{2, -4, NewCoef(-1, 2)},
		{0, 5, CoefFromInt(0)},
		{6, 3, CoefFromInt(2)},
	}
	for _, c := range cases {
		if got := NewCoef(c.num, c.den); got != c.want {
			t.Errorf("NewCoef(%d,%d) = %v, want %v", c.num, c.den, got, c.want)
		}
	}
}

func TestCoefZero(t *testing.T) {
	z := CoefFromInt(0)
	if !z.IsZero() {
		t.Error("CoefFromInt(0).IsZero() = false")
	}
	if NewCoef(1, 2).IsZero() {
		t.Error("1/2 reported as zero")
	}
}

func TestCoefFloorCeil(t *testing.T) {
	cases := []struct {
		c          Coef
		floor, ceil Val
	}{
		{NewCoef(7, 2), 3, 4},
		{NewCoef(-7, 2), -4, -3},
		{CoefFromInt(5), 5, 5},
		{NewCoef(-6, 2), -3, -3},
	}
	for _, c := range cases {
		if got := c.c.Floor(); got != c.floor {
			t.Errorf("(%v).Floor() = %d, want %d", c.c, got, c.floor)
		}
		if got := c.c.Ceil(); got != c.ceil {
			t.Errorf("(%v).Ceil() = %d, want %d", c.c, got, c.ceil)
		}
	}
}

func TestCoefCmpAndSign(t *testing.T) {
	if NewCoef(1, 2).Cmp(NewCoef(2, 3)) >= 0 {
		t.Error("1/2 should compare less than 2/3")
	}
	if NewCoef(-1, 2).Sign() != -1 {
		t.Error("-1/2 should have sign -1")
	}
	if CoefFromInt(0).Sign() != 0 {
		t.Error("0 should have sign 0")
	}
}

func TestCoefIsIntegerAndToInt(t *testing.T) {
	if !CoefFromInt(4).IsInteger() {
		t.Error("4 should be integral")
	}
	if NewCoef(1, 2).IsInteger() {
		t.Error("1/2 should not be integral")
	}
	if got := CoefFromInt(7).ToInt(); got != 7 {
		t.Errorf("ToInt() = %d, want 7", got)
	}
}

func TestCoefDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic dividing by zero")
		}
	}()
	CoefFromInt(1).Div(CoefFromInt(0))
}
