package media

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShrink(t *testing.T) {
	cases := []struct {
		name  string
		w, h  int
		wantW int
		wantH int
	}{
		{"abaixo do limite passa intacta", 300, 200, 300, 200},
		{"limite exato passa intacta", 512, 512, 512, 512},
		{"paisagem reduz pela largura", 1024, 512, 512, 256},
		{"retrato reduz pela altura", 600, 1200, 256, 512},
		{"quadrada grande", 2048, 2048, 512, 512},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tc.w, tc.h))
			got := shrink(src)

			assert.Equal(t, tc.wantW, got.Bounds().Dx())
			assert.Equal(t, tc.wantH, got.Bounds().Dy())
		})
	}
}

func TestShrinkKeepsSmallImageInstance(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	assert.Same(t, image.Image(src), shrink(src))
}
