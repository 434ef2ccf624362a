package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadPixels copies the bottom-left width×height region of the current
// framebuffer into an image with the top row first.
func (d *Device) ReadPixels(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, img.Pix[top:top+rowLen])
		copy(img.Pix[top:top+rowLen], img.Pix[bot:bot+rowLen])
		copy(img.Pix[bot:bot+rowLen], tmp)
	}
	return img
}
