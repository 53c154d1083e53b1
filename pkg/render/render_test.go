package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkenColor(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 100, 0, 255}, DarkenColor(color.RGBA{100, 200, 1, 255}))
}
