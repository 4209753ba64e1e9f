package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// The whole protocol uses one integer convention: little-endian, fixed
// width. Encoder and decoder on both ends of the channel must agree, so
// the convention is baked in here rather than chosen per call.

const maxWidth = 8

var (
	ErrValueOverflow = errors.New("value does not fit declared width")
	ErrInvalidLength = errors.New("invalid wire integer length")
)

// Encode returns v as width little-endian bytes.
func Encode(v uint64, width int) ([]byte, error) {
	if width < 1 || width > maxWidth {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidLength, width)
	}
	if width < maxWidth && v >= 1<<(8*width) {
		return nil, fmt.Errorf("%w: %d into %d byte(s)", ErrValueOverflow, v, width)
	}
	var buf [maxWidth]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	out := make([]byte, width)
	copy(out, buf[:width])
	return out, nil
}

// EncodeSigned returns v as width little-endian two's complement bytes.
func EncodeSigned(v int64, width int) ([]byte, error) {
	if width < 1 || width > maxWidth {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidLength, width)
	}
	if width < maxWidth {
		min := -(int64(1) << (8*width - 1))
		max := int64(1)<<(8*width-1) - 1
		if v < min || v > max {
			return nil, fmt.Errorf("%w: %d into %d byte(s)", ErrValueOverflow, v, width)
		}
	}
	var buf [maxWidth]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	out := make([]byte, width)
	copy(out, buf[:width])
	return out, nil
}

// Decode reads an unsigned little-endian integer of len(data) bytes.
func Decode(data []byte) (uint64, error) {
	if len(data) == 0 || len(data) > maxWidth {
		return 0, fmt.Errorf("%w: %d byte(s)", ErrInvalidLength, len(data))
	}
	var buf [maxWidth]byte
	copy(buf[:], data)
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// DecodeSigned reads a signed little-endian integer of len(data) bytes,
// sign-extending from the topmost bit of the input.
func DecodeSigned(data []byte) (int64, error) {
	if len(data) == 0 || len(data) > maxWidth {
		return 0, fmt.Errorf("%w: %d byte(s)", ErrInvalidLength, len(data))
	}
	var buf [maxWidth]byte
	copy(buf[:], data)
	v := binary.LittleEndian.Uint64(buf[:])
	if len(data) < maxWidth && data[len(data)-1]&0x80 != 0 {
		v |= ^uint64(0) << (8 * len(data))
	}
	return int64(v), nil
}
