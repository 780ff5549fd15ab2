package palette

import "testing"

func TestMul(t *testing.T) {
	tests := []struct {
		c    RGB
		k    uint8
		want RGB
	}{
		{CarBody, 255, CarBody},
		{CarBody, 0, RGB{}},
		{RGB{R: 200, G: 100, B: 50}, 128, RGB{R: 100, G: 50, B: 25}},
	}
	for _, tt := range tests {
		if got := tt.c.Mul(tt.k); got != tt.want {
			t.Errorf("%+v.Mul(%d) = %+v, want %+v", tt.c, tt.k, got, tt.want)
		}
	}
}

func TestFloats(t *testing.T) {
	r, g, b := RGB{R: 255, G: 0, B: 51}.Floats()
	if r != 1 || g != 0 || b != 0.2 {
		t.Fatalf("Floats = (%v, %v, %v), want (1, 0, 0.2)", r, g, b)
	}
}
