package hw

import (
	"image"
	"image/png"
	"io"
	"os"
)

// Frame is a 256x240 RGBA image the PPU renders into.
type Frame struct {
	img *image.RGBA
}

func NewFrame() *Frame {
	return &Frame{
		img: image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight)),
	}
}

// SetPixel sets the color of the pixel at (x, y), rgb being a packed
// 0xRRGGBB color. Out of screen pixels are ignored.
func (f *Frame) SetPixel(x, y int, rgb uint32) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return
	}
	off := f.img.PixOffset(x, y)
	pix := f.img.Pix[off : off+4 : off+4]
	pix[0] = uint8(rgb >> 16)
	pix[1] = uint8(rgb >> 8)
	pix[2] = uint8(rgb)
	pix[3] = 0xFF
}

// Image returns the underlying image, which is overwritten by the next frame.
func (f *Frame) Image() *image.RGBA {
	return f.img
}

// EncodePNG writes the frame as a PNG image to w.
func (f *Frame) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.img)
}

// SaveAsPNG saves the frame as a PNG image to path.
func (f *Frame) SaveAsPNG(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.EncodePNG(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
