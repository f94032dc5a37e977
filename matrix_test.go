package rayops

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/curve"
)

var ignoreLayout = cmpopts.IgnoreUnexported(Matrix{})

func TestMatrixAddSub(t *testing.T) {
	a := MatrixTranslate(1, 2, 3)
	b := MatrixScale(2, 2, 2)
	sum := a.Add(b)
	want := Matrix{M0: 3, M5: 3, M10: 3, M15: 2, M12: 1, M13: 2, M14: 3}
	if d := cmp.Diff(want, sum, ignoreLayout); d != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(a, sum.Sub(b), ignoreLayout); d != "" {
		t.Errorf("Sub does not invert Add (-want +got):\n%s", d)
	}
}

func TestMatrixMul(t *testing.T) {
	id := MatrixIdentity()
	a := MatrixTranslate(1, 2, 3)
	if d := cmp.Diff(a, a.Mul(id), ignoreLayout); d != "" {
		t.Errorf("a*I mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(a, id.Mul(a), ignoreLayout); d != "" {
		t.Errorf("I*a mismatch (-want +got):\n%s", d)
	}

	// Translations compose by adding their offsets.
	got := a.Mul(MatrixTranslate(10, 20, 30))
	if d := cmp.Diff(MatrixTranslate(11, 22, 33), got, ignoreLayout); d != "" {
		t.Errorf("translate compose mismatch (-want +got):\n%s", d)
	}

	// Mul is the full matrix product, not elementwise like Add.
	got = MatrixScale(2, 2, 2).Mul(MatrixScale(3, 3, 3))
	if d := cmp.Diff(MatrixScale(6, 6, 6), got, ignoreLayout); d != "" {
		t.Errorf("scale compose mismatch (-want +got):\n%s", d)
	}
}

func TestMatrixMulAppliesRightFirst(t *testing.T) {
	// Scale then translate differs from translate then scale.
	ts := MatrixTranslate(1, 0, 0).Mul(MatrixScale(2, 2, 2))
	st := MatrixScale(2, 2, 2).Mul(MatrixTranslate(1, 0, 0))
	if ts.M12 != 1 {
		t.Errorf("translate∘scale offset = %v, want 1", ts.M12)
	}
	if st.M12 != 2 {
		t.Errorf("scale∘translate offset = %v, want 2", st.M12)
	}
}

func TestMatrixArrayView(t *testing.T) {
	m := MatrixTranslate(1, 2, 3)
	a := m.Array()
	if a[0] != 1 || a[12] != 1 || a[13] != 2 || a[14] != 3 {
		t.Errorf("unexpected column-major layout: %v", *a)
	}
	a[12] = 42
	if m.M12 != 42 {
		t.Error("Array does not alias the matrix storage")
	}
}

func TestMat4Transposes(t *testing.T) {
	m := MatrixTranslate(1, 2, 3)
	rm := m.Mat4()
	// Row-major puts the translation column at the end of each row.
	if rm[3] != 1 || rm[7] != 2 || rm[11] != 3 || rm[15] != 1 {
		t.Errorf("unexpected row-major layout: %v", rm)
	}
}

func TestMatrixFromAffine(t *testing.T) {
	var a curve.Affine // no-op 2D transform, all coefficients zero
	got := MatrixFromAffine(a)
	want := Matrix{M10: 1, M15: 1}
	if d := cmp.Diff(want, got, ignoreLayout); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestMatrixLookAt(t *testing.T) {
	got := MatrixLookAt(Vector3{0, 0, 1}, Vector3{}, Vector3{0, 1, 0})
	want := MatrixIdentity()
	want.M14 = -1
	if d := cmp.Diff(want, got, ignoreLayout); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}
