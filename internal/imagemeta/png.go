package imagemeta

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/png"
	"io"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// readPNG scans the chunk stream for a pHYs chunk. Density chunks are only
// valid before the image data, so scanning stops at IDAT.
func readPNG(r io.Reader) (Resolution, error) {
	sig := make([]byte, len(pngSignature))
	if _, err := io.ReadFull(r, sig); err != nil {
		return Resolution{}, err
	}
	if !bytes.Equal(sig, pngSignature) {
		return Resolution{}, errors.New("not a PNG stream")
	}

	var header [8]byte
	for {
		if _, err := io.ReadFull(r, header[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return Default(), nil
			}
			return Resolution{}, err
		}
		length := binary.BigEndian.Uint32(header[:4])
		switch string(header[4:8]) {
		case "pHYs":
			data := make([]byte, length+4)
			if _, err := io.ReadFull(r, data); err != nil {
				return Resolution{}, err
			}
			if length != 9 || data[8] != 1 {
				return Default(), nil
			}
			return Resolution{
				X: float64(binary.BigEndian.Uint32(data[:4])) * metersPerInch,
				Y: float64(binary.BigEndian.Uint32(data[4:8])) * metersPerInch,
			}, nil
		case "IDAT", "IEND":
			return Default(), nil
		default:
			if _, err := io.CopyN(io.Discard, r, int64(length)+4); err != nil {
				return Resolution{}, err
			}
		}
	}
}

// EncodePNG writes img to w as a PNG carrying res in a pHYs chunk. A zero
// resolution writes a plain PNG with no density chunk.
func EncodePNG(w io.Writer, img image.Image, res Resolution) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	raw := buf.Bytes()
	if res.X <= 0 || res.Y <= 0 {
		_, err := w.Write(raw)
		return err
	}

	// IHDR is the mandatory first chunk; pHYs goes right after it.
	split := len(pngSignature) + 8 + 13 + 4
	if len(raw) < split {
		return errors.New("malformed PNG encoding")
	}
	if _, err := w.Write(raw[:split]); err != nil {
		return err
	}
	if _, err := w.Write(physChunk(res)); err != nil {
		return err
	}
	_, err := w.Write(raw[split:])
	return err
}

func physChunk(res Resolution) []byte {
	chunk := make([]byte, 8+9+4)
	binary.BigEndian.PutUint32(chunk[:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], uint32(res.X/metersPerInch+0.5))
	binary.BigEndian.PutUint32(chunk[12:16], uint32(res.Y/metersPerInch+0.5))
	chunk[16] = 1 // pixels per metre
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))
	return chunk
}
