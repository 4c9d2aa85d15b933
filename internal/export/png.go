package export

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/draw"
	"io"
)

const (
	pngBitDepth  = 8
	pngColorRGBA = 6
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// encodeRGBA writes img as an 8-bit truecolour-with-alpha PNG. image/png
// drops the alpha channel of fully opaque images, so the chunks are built
// here. Rows are stored unfiltered.
func encodeRGBA(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	var idat bytes.Buffer
	zw, err := zlib.NewWriterLevel(&idat, zlib.BestCompression)
	if err != nil {
		return err
	}
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		if _, err := zw.Write([]byte{0}); err != nil {
			return err
		}
		if _, err := zw.Write(row); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = pngBitDepth
	ihdr[9] = pngColorRGBA
	// compression, filter and interlace methods are all 0

	if _, err := w.Write(pngSignature); err != nil {
		return err
	}
	for _, c := range []struct {
		typ  string
		data []byte
	}{
		{"IHDR", ihdr},
		{"IDAT", idat.Bytes()},
		{"IEND", nil},
	} {
		if err := writeChunk(w, c.typ, c.data); err != nil {
			return fmt.Errorf("%s chunk: %w", c.typ, err)
		}
	}
	return nil
}

func writeChunk(w io.Writer, typ string, data []byte) error {
	var header [8]byte
	binary.BigEndian.PutUint32(header[:4], uint32(len(data)))
	copy(header[4:], typ)

	crc := crc32.NewIEEE()
	crc.Write(header[4:])
	crc.Write(data)
	var footer [4]byte
	binary.BigEndian.PutUint32(footer[:], crc.Sum32())

	for _, part := range [][]byte{header[:], data, footer[:]} {
		if _, err := w.Write(part); err != nil {
			return err
		}
	}
	return nil
}
