package imagemeta

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// readJPEG walks the segment markers looking for a JFIF APP0 header, which
// records density as dots per inch or dots per centimetre.
func readJPEG(r io.Reader) (Resolution, error) {
	var soi [2]byte
	if _, err := io.ReadFull(r, soi[:]); err != nil {
		return Resolution{}, err
	}
	if soi[0] != 0xff || soi[1] != 0xd8 {
		return Resolution{}, errors.New("not a JPEG stream")
	}

	var seg [4]byte
	for {
		if _, err := io.ReadFull(r, seg[:2]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return Default(), nil
			}
			return Resolution{}, err
		}
		if seg[0] != 0xff {
			return Default(), nil
		}
		marker := seg[1]
		if marker == 0x01 || (marker >= 0xd0 && marker <= 0xd8) {
			continue
		}
		if marker == 0xd9 || marker == 0xda {
			return Default(), nil
		}
		if _, err := io.ReadFull(r, seg[2:4]); err != nil {
			return Resolution{}, err
		}
		length := int(binary.BigEndian.Uint16(seg[2:4]))
		if length < 2 {
			return Default(), nil
		}
		payload := make([]byte, length-2)
		if _, err := io.ReadFull(r, payload); err != nil {
			return Resolution{}, err
		}
		if marker != 0xe0 || !bytes.HasPrefix(payload, []byte("JFIF\x00")) || len(payload) < 12 {
			continue
		}
		x := float64(binary.BigEndian.Uint16(payload[8:10]))
		y := float64(binary.BigEndian.Uint16(payload[10:12]))
		switch payload[7] {
		case 1:
			return Resolution{X: x, Y: y}, nil
		case 2:
			return Resolution{X: x * 2.54, Y: y * 2.54}, nil
		}
		return Default(), nil
	}
}
