package memalign

import "testing"

func TestAlloc(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 4096} {
		b := Alloc(n)
		if !Aligned(b) {
			t.Errorf("Alloc(%d) not aligned", n)
		}
		want := n
		if want == 0 {
			want = 1
		}
		if len(b) != want {
			t.Errorf("Alloc(%d) len = %d, want %d", n, len(b), want)
		}
		if cap(b) != want {
			t.Errorf("Alloc(%d) cap = %d, want %d", n, cap(b), want)
		}
	}
}

func TestPadStride(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0},
		{1, 16},
		{15, 16},
		{16, 16},
		{17, 32},
		{100, 112},
	}
	for _, tc := range cases {
		if got := PadStride(tc.in); got != tc.want {
			t.Errorf("PadStride(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestAlignedEmpty(t *testing.T) {
	if Aligned(nil) {
		t.Error("nil slice reported aligned")
	}
}
