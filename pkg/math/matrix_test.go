package math

import (
	"errors"
	"testing"
)

func TestNewMatrix_Construction(t *testing.T) {
	m := NewMatrix(4,
		1, 2, 3, 4,
		5.5, 6.5, 7.5, 8.5,
		9, 10, 11, 12,
		13.5, 14.5, 15.5, 16.5,
	)

	tests := []struct {
		row, col int
		expected float64
	}{
		{0, 0, 1},
		{0, 3, 4},
		{1, 0, 5.5},
		{1, 2, 7.5},
		{2, 2, 11},
		{3, 0, 13.5},
		{3, 2, 15.5},
	}

	for _, tt := range tests {
		if got := m.Get(tt.row, tt.col); !ApproxEqual(got, tt.expected) {
			t.Errorf("Get(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.expected)
		}
	}

	m2 := NewMatrix(2, -3, 5, 1, -2)
	if m2.Order() != 2 {
		t.Errorf("order = %d, want 2", m2.Order())
	}
	if got := m2.Get(0, 0); !ApproxEqual(got, -3) {
		t.Errorf("Get(0, 0) = %v, want -3", got)
	}
	if got := m2.Get(1, 1); !ApproxEqual(got, -2) {
		t.Errorf("Get(1, 1) = %v, want -2", got)
	}

	m3 := NewMatrix(3, -3, 5, 0, 1, -2, -7, 0, 1, 1)
	if got := m3.Get(1, 1); !ApproxEqual(got, -2) {
		t.Errorf("Get(1, 1) = %v, want -2", got)
	}
	if got := m3.Get(2, 2); !ApproxEqual(got, 1) {
		t.Errorf("Get(2, 2) = %v, want 1", got)
	}
}

func TestNewMatrix_WrongElementCountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for wrong element count")
		}
	}()

	NewMatrix(3, 1, 2, 3, 4)
}

func TestMatrix_GetOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
	}{
		{"row too large", 4, 0},
		{"col too large", 0, 4},
		{"negative row", -1, 0},
		{"negative col", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic for out-of-range index")
				}
			}()

			Identity().Get(tt.row, tt.col)
		})
	}
}

func TestMatrix_Equals(t *testing.T) {
	a := NewMatrix(2, 1, 2, 3, 4)
	b := NewMatrix(2, 1, 2, 3, 4)
	c := NewMatrix(2, 2, 3, 4, 5)

	if !a.Equals(b) {
		t.Error("identical matrices should be equal")
	}
	if a.Equals(c) {
		t.Error("different matrices should not be equal")
	}
	if a.Equals(Identity()) {
		t.Error("matrices of different orders should not be equal")
	}
	if !a.Equals(NewMatrix(2, 1+1e-10, 2, 3, 4)) {
		t.Error("matrices within epsilon should be equal")
	}
}

func TestMatrix_Mul(t *testing.T) {
	a := NewMatrix(4,
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	)
	b := NewMatrix(4,
		-2, 1, 2, 3,
		3, 2, 1, -1,
		4, 3, 6, 5,
		1, 2, 7, 8,
	)
	expected := NewMatrix(4,
		20, 22, 50, 48,
		44, 54, 114, 108,
		40, 58, 110, 102,
		16, 26, 46, 42,
	)

	if got := a.Mul(b); !got.Equals(expected) {
		t.Errorf("a * b = %v, want %v", got, expected)
	}
}

func TestMatrix_MulOrderMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic multiplying matrices of different orders")
		}
	}()

	Identity().Mul(NewMatrix(2, 1, 0, 0, 1))
}

func TestMatrix_MulIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{
			name: "dense matrix",
			m: NewMatrix(4,
				0, 1, 2, 4,
				1, 2, 4, 8,
				2, 4, 8, 16,
				4, 8, 16, 32,
			),
		},
		{
			name: "transform matrix",
			m:    Translation(NewVector(5, -3, 2)).Mul(Scaling(NewVector(2, 3, 4))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Mul(Identity()); !got.Equals(tt.m) {
				t.Errorf("m * identity = %v, want %v", got, tt.m)
			}
			if got := Identity().Mul(tt.m); !got.Equals(tt.m) {
				t.Errorf("identity * m = %v, want %v", got, tt.m)
			}
		})
	}
}

func TestMatrix_MulPoint(t *testing.T) {
	m := NewMatrix(4,
		1, 2, 3, 4,
		2, 4, 4, 2,
		8, 6, 4, 1,
		0, 0, 0, 1,
	)

	if got := m.MulPoint(NewPoint(1, 2, 3)); !got.Equals(NewPoint(18, 24, 33)) {
		t.Errorf("m * point = %v, want %v", got, NewPoint(18, 24, 33))
	}
}

func TestMatrix_MulPointIdentity(t *testing.T) {
	p := NewPoint(1, 2, 3)
	if got := Identity().MulPoint(p); !got.Equals(p) {
		t.Errorf("identity * point = %v, want %v", got, p)
	}

	v := NewVector(1, 2, 3)
	if got := Identity().MulVector(v); !got.Equals(v) {
		t.Errorf("identity * vector = %v, want %v", got, v)
	}
}

func TestMatrix_MulPointWrongOrderPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for matrix-point product on order 2 matrix")
		}
	}()

	NewMatrix(2, 1, 0, 0, 1).MulPoint(NewPoint(1, 2, 3))
}

func TestMatrix_Transpose(t *testing.T) {
	m := NewMatrix(4,
		0, 9, 3, 0,
		9, 8, 0, 8,
		1, 8, 5, 3,
		0, 0, 5, 8,
	)
	expected := NewMatrix(4,
		0, 9, 1, 0,
		9, 8, 8, 0,
		3, 0, 5, 5,
		0, 8, 3, 5,
	)

	if got := m.Transpose(); !got.Equals(expected) {
		t.Errorf("transpose = %v, want %v", got, expected)
	}

	if got := Identity().Transpose(); !got.Equals(Identity()) {
		t.Error("transpose of identity should be identity")
	}
}

func TestMatrix_Submatrix(t *testing.T) {
	m3 := NewMatrix(3,
		1, 5, 0,
		-3, 2, 7,
		0, 6, -3,
	)
	if got := m3.Submatrix(0, 2); !got.Equals(NewMatrix(2, -3, 2, 0, 6)) {
		t.Errorf("submatrix(0, 2) = %v, want %v", got, NewMatrix(2, -3, 2, 0, 6))
	}

	m4 := NewMatrix(4,
		-6, 1, 1, 6,
		-8, 5, 8, 6,
		-1, 0, 8, 2,
		-7, 1, -1, 1,
	)
	expected := NewMatrix(3,
		-6, 1, 6,
		-8, 8, 6,
		-7, -1, 1,
	)
	if got := m4.Submatrix(2, 1); !got.Equals(expected) {
		t.Errorf("submatrix(2, 1) = %v, want %v", got, expected)
	}
}

func TestMatrix_MinorAndCofactor(t *testing.T) {
	m := NewMatrix(3,
		3, 5, 0,
		2, -1, -7,
		6, -1, 5,
	)

	if got := m.Minor(1, 0); !ApproxEqual(got, 25) {
		t.Errorf("minor(1, 0) = %v, want 25", got)
	}
	if got := m.Cofactor(0, 0); !ApproxEqual(got, -12) {
		t.Errorf("cofactor(0, 0) = %v, want -12", got)
	}
	if got := m.Cofactor(1, 0); !ApproxEqual(got, -25) {
		t.Errorf("cofactor(1, 0) = %v, want -25", got)
	}
}

func TestMatrix_Determinant(t *testing.T) {
	m2 := NewMatrix(2, 1, 5, -3, 2)
	if got := m2.Determinant(); !ApproxEqual(got, 17) {
		t.Errorf("2x2 determinant = %v, want 17", got)
	}

	m3 := NewMatrix(3,
		1, 2, 6,
		-5, 8, -4,
		2, 6, 4,
	)
	if got := m3.Cofactor(0, 0); !ApproxEqual(got, 56) {
		t.Errorf("cofactor(0, 0) = %v, want 56", got)
	}
	if got := m3.Cofactor(0, 1); !ApproxEqual(got, 12) {
		t.Errorf("cofactor(0, 1) = %v, want 12", got)
	}
	if got := m3.Cofactor(0, 2); !ApproxEqual(got, -46) {
		t.Errorf("cofactor(0, 2) = %v, want -46", got)
	}
	if got := m3.Determinant(); !ApproxEqual(got, -196) {
		t.Errorf("3x3 determinant = %v, want -196", got)
	}

	m4 := NewMatrix(4,
		-2, -8, 3, 5,
		-3, 1, 7, 3,
		1, 2, -9, 6,
		-6, 7, 7, -9,
	)
	if got := m4.Determinant(); !ApproxEqual(got, -4071) {
		t.Errorf("4x4 determinant = %v, want -4071", got)
	}
}

func TestMatrix_Inverse(t *testing.T) {
	m := NewMatrix(4,
		-5, 2, 6, -8,
		1, -5, 1, 8,
		7, 7, -6, -7,
		1, -3, 7, 4,
	)

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := NewMatrix(4,
		0.21805, 0.45113, 0.24060, -0.04511,
		-0.80827, -1.45677, -0.44361, 0.52068,
		-0.07895, -0.22368, -0.05263, 0.19737,
		-0.52632, -0.81391, -0.30075, 0.30639,
	)
	if !inv.EqualsEps(expected, 1e-5) {
		t.Errorf("inverse = %v, want %v", inv, expected)
	}
}

func TestMatrix_InverseSingular(t *testing.T) {
	m := NewMatrix(4,
		-4, 2, -2, -3,
		9, 6, 2, 6,
		0, -5, 1, -5,
		0, 0, 0, 0,
	)

	if _, err := m.Inverse(); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("expected ErrSingularMatrix, got %v", err)
	}
}

func TestMatrix_MulByInverseIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{
			name: "dense matrix",
			m: NewMatrix(4,
				3, -9, 7, 3,
				3, -8, 2, -9,
				-4, 4, 4, 1,
				-6, 5, -1, 1,
			),
		},
		{
			name: "transform chain",
			m:    Identity().RotateX(0.7).Scale(NewVector(2, 3, 4)).Translate(NewVector(5, -3, 2)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.m.Inverse()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := tt.m.Mul(inv); !got.EqualsEps(Identity(), 1e-4) {
				t.Errorf("m * m⁻¹ = %v, want identity", got)
			}
		})
	}
}

func TestMatrix_MulProductByInverseUndoes(t *testing.T) {
	a := NewMatrix(4,
		3, -9, 7, 3,
		3, -8, 2, -9,
		-4, 4, 4, 1,
		-6, 5, -1, 1,
	)
	b := NewMatrix(4,
		8, 2, 2, 2,
		3, -1, 7, 0,
		7, 0, 5, 4,
		6, -2, 0, 5,
	)

	invB, err := b.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := a.Mul(b).Mul(invB); !got.EqualsEps(a, 1e-4) {
		t.Errorf("(a * b) * b⁻¹ = %v, want %v", got, a)
	}
}

func TestMatrix_InverseOfTransposeIsTransposeOfInverse(t *testing.T) {
	m := NewMatrix(4,
		3, -9, 7, 3,
		3, -8, 2, -9,
		-4, 4, 4, 1,
		-6, 5, -1, 1,
	)

	invOfTranspose, err := m.Transpose().Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !invOfTranspose.EqualsEps(inv.Transpose(), 1e-4) {
		t.Errorf("(mᵗ)⁻¹ = %v, want (m⁻¹)ᵗ = %v", invOfTranspose, inv.Transpose())
	}
}
