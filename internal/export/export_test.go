package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type imageRaster struct {
	img *image.NRGBA
	err error
}

func newImageRaster(w, h int) *imageRaster {
	return &imageRaster{img: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

func (r *imageRaster) Width() int  { return r.img.Bounds().Dx() }
func (r *imageRaster) Height() int { return r.img.Bounds().Dy() }
func (r *imageRaster) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	return png.Encode(w, r.img)
}

func TestWritePNG(t *testing.T) {
	r := newImageRaster(6, 4)
	r.img.Set(2, 1, color.NRGBA{R: 255, A: 255})

	var out bytes.Buffer
	require.NoError(t, WritePNG(&out, r))

	decoded, err := png.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 4), decoded.Bounds())
	_, _, _, a := decoded.At(2, 1).RGBA()
	assert.NotZero(t, a)
}

func TestWritePNGEmptyCanvas(t *testing.T) {
	for _, r := range []Raster{nil, newImageRaster(0, 0), newImageRaster(5, 0)} {
		var out bytes.Buffer
		err := WritePNG(&out, r)
		assert.ErrorIs(t, err, ErrEmptyCanvas)
		assert.Zero(t, out.Len())
	}
}

func TestWritePNGEncodeFailureWritesNothing(t *testing.T) {
	r := newImageRaster(2, 2)
	r.err = errors.New("boom")

	var out bytes.Buffer
	assert.Error(t, WritePNG(&out, r))
	assert.Zero(t, out.Len())
}

func TestWritePDF(t *testing.T) {
	r := newImageRaster(40, 30)
	r.img.Set(5, 5, color.NRGBA{B: 255, A: 255})

	var out bytes.Buffer
	require.NoError(t, WritePDF(&out, r))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")))
}

func TestWritePDFEmptyCanvas(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, WritePDF(&out, newImageRaster(0, 10)), ErrEmptyCanvas)
	assert.Zero(t, out.Len())
}
