package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestEnsureLenIntGrow(t *testing.T) {
	buf := make([]int, 2)

	out := EnsureLenInt(buf, 5)
	if len(out) != 5 {
		t.Fatalf("len = %d, want 5", len(out))
	}

	if out := EnsureLenInt(buf, 0); len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}

func TestCopyInto(t *testing.T) {
	dst := make([]float64, 2)

	n := CopyInto(dst, []float64{1, 2, 3})
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}

	if dst[0] != 1 || dst[1] != 2 {
		t.Fatalf("unexpected dst: %#v", dst)
	}
}

func TestZeroAndFill(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}

	Fill(buf, 7)
	for i, v := range buf {
		if v != 7 {
			t.Fatalf("buf[%d] = %v, want 7", i, v)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	src := []float64{1, 2}
	out := Clone(src)
	out[0] = 9

	if src[0] != 1 {
		t.Fatalf("Clone shares storage with src")
	}

	if empty := Clone(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("Clone(nil) = %#v, want empty non-nil slice", empty)
	}
}
