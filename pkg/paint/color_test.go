package paint

import "testing"

func TestLerpEndpoints(t *testing.T) {
	c0 := RGBA(10, 20, 30, 40)
	c1 := RGBA(200, 150, 100, 255)

	if got := c0.Lerp(c1, 0); got != c0 {
		t.Errorf("Lerp(t=0) = %v, want %v", got, c0)
	}
	if got := c0.Lerp(c1, 1); got != c1 {
		t.Errorf("Lerp(t=1) = %v, want %v", got, c1)
	}
}

func TestLerpMidpoint(t *testing.T) {
	c0 := RGB(0, 0, 0)
	c1 := RGB(100, 200, 50)

	got := c0.Lerp(c1, 0.5)
	want := RGB(50, 100, 25)
	if got != want {
		t.Errorf("Lerp(t=0.5) = %v, want %v", got, want)
	}
}

func TestLerpClampsT(t *testing.T) {
	c0 := RGB(10, 10, 10)
	c1 := RGB(20, 20, 20)

	if got := c0.Lerp(c1, -0.5); got != c0 {
		t.Errorf("Lerp(t=-0.5) = %v, want %v", got, c0)
	}
	if got := c0.Lerp(c1, 1.5); got != c1 {
		t.Errorf("Lerp(t=1.5) = %v, want %v", got, c1)
	}
}

func TestFromChannels(t *testing.T) {
	tests := []struct {
		name     string
		channels []int
		want     Color
		wantErr  bool
	}{
		{"rgba", []int{135, 206, 235, 255}, RGBA(135, 206, 235, 255), false},
		{"rgb defaults opaque", []int{10, 20, 30}, RGBA(10, 20, 30, 255), false},
		{"out of range", []int{300, 0, 0, 255}, Color{}, true},
		{"too few", []int{1, 2}, Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromChannels(tt.channels)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromChannels(%v) error = %v, wantErr %v", tt.channels, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("FromChannels(%v) = %v, want %v", tt.channels, got, tt.want)
			}
		})
	}
}

func TestOverOpaqueReplaces(t *testing.T) {
	dst := RGBA(1, 2, 3, 200)
	src := RGBA(240, 10, 60, 255)

	if got := Over(src, dst); got != src {
		t.Errorf("Over(opaque src) = %v, want %v", got, src)
	}
}

func TestOverTransparentKeepsDst(t *testing.T) {
	dst := RGBA(1, 2, 3, 200)
	src := RGBA(240, 10, 60, 0)

	if got := Over(src, dst); got != dst {
		t.Errorf("Over(transparent src) = %v, want %v", got, dst)
	}
}

func TestOverBlends(t *testing.T) {
	dst := RGBA(0, 0, 0, 255)
	src := RGBA(255, 255, 255, 128)

	got := Over(src, dst)
	if got.A != 255 {
		t.Errorf("alpha = %d, want 255", got.A)
	}
	// 50% white over black lands near mid-gray.
	if got.R < 126 || got.R > 130 {
		t.Errorf("R = %d, want ~128", got.R)
	}
}
