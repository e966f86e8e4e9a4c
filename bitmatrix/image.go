package bitmatrix

import (
	"image"
	"image/color"
)

// FromImage thresholds img into a 0/1 matrix: a pixel becomes a unit bit
// when its 8-bit grayscale value is ≥ threshold. The matrix has the
// bounds' size; pixel (Min.X, Min.Y) maps to (0, 0).
// Returns ErrEmptyMatrix for images with an empty bounds rectangle.
func FromImage(img image.Image, threshold uint8) (*Matrix, error) {
	b := img.Bounds()
	m, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if g.Y >= threshold {
				m.Set(x-b.Min.X, y-b.Min.Y, true)
			}
		}
	}
	return m, nil
}
