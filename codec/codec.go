// Package codec implements canonical encode, decode, and fingerprint.
package codec

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"github.com/katalvlaran/determinisk/fixed"
	"github.com/katalvlaran/determinisk/world"
)

// Sentinel errors for decoding.
var (
	// ErrTruncated indicates the byte stream ended mid-record.
	ErrTruncated = errors.New("codec: truncated encoding")

	// ErrBodyCountMismatch indicates the encoded body count differs
	// from the destination world's.
	ErrBodyCountMismatch = errors.New("codec: body count mismatch")

	// ErrIDMismatch indicates an encoded identifier differs from the
	// destination world's at the same index.
	ErrIDMismatch = errors.New("codec: body id mismatch")
)

// scalarsPerBody is the fixed number of Q16.16 fields encoded per body.
const scalarsPerBody = 8

// EncodedLen returns the exact byte length Encode will produce for w.
// Complexity: O(bodies).
func EncodedLen(w *world.World) int {
	n := 4
	for i := range w.IDs {
		n += 4 + len(w.IDs[i]) + 4*scalarsPerBody
	}
	return n
}

// Encode appends the canonical encoding of w to dst and returns the
// extended slice. Layout is fixed and big-endian; see the package
// documentation. Pass a slice with EncodedLen capacity to avoid
// growth.
// Complexity: O(bodies).
func Encode(dst []byte, w *world.World) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(w.Bodies)))
	for i := range w.Bodies {
		b := &w.Bodies[i]
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(w.IDs[i])))
		dst = append(dst, w.IDs[i]...)
		for _, s := range [scalarsPerBody]fixed.Scalar{
			b.Position.X, b.Position.Y,
			b.OldPosition.X, b.OldPosition.Y,
			b.Radius, b.Mass,
			b.Restitution, b.Friction,
		} {
			dst = binary.BigEndian.AppendUint32(dst, uint32(s.Raw()))
		}
	}
	return dst
}

// Hash returns the SHA-256 determinism fingerprint of w's canonical
// encoding.
// Complexity: O(bodies).
func Hash(w *world.World) [32]byte {
	return sha256.Sum256(Encode(nil, w))
}

// EncodeState returns the persisted state: the canonical encoding
// followed by the 8-byte big-endian step counter.
// Complexity: O(bodies).
func EncodeState(w *world.World) []byte {
	dst := Encode(make([]byte, 0, EncodedLen(w)+8), w)
	return binary.BigEndian.AppendUint64(dst, w.StepCount)
}

// Decode reads a canonical encoding into w's bodies. The destination
// world supplies everything the encoding does not carry (bounds,
// springs, fields, zones); body count and identifiers must match
// exactly, in order.
// Complexity: O(bodies).
func Decode(data []byte, w *world.World) error {
	rest, err := decodeBodies(data, w)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return ErrTruncated // trailing bytes are as fatal as missing ones
	}
	return nil
}

// DecodeState reads a persisted state (canonical encoding plus step
// counter) into w.
// Complexity: O(bodies).
func DecodeState(data []byte, w *world.World) error {
	rest, err := decodeBodies(data, w)
	if err != nil {
		return err
	}
	if len(rest) != 8 {
		return ErrTruncated
	}
	w.StepCount = binary.BigEndian.Uint64(rest)
	return nil
}

// decodeBodies consumes the body section and returns the unread tail.
func decodeBodies(data []byte, w *world.World) ([]byte, error) {
	if len(data) < 4 {
		return nil, ErrTruncated
	}
	count := binary.BigEndian.Uint32(data)
	data = data[4:]
	if int(count) != len(w.Bodies) {
		return nil, ErrBodyCountMismatch
	}

	for i := range w.Bodies {
		if len(data) < 4 {
			return nil, ErrTruncated
		}
		idLen := int(binary.BigEndian.Uint32(data))
		data = data[4:]
		if len(data) < idLen+4*scalarsPerBody {
			return nil, ErrTruncated
		}
		if string(data[:idLen]) != w.IDs[i] {
			return nil, ErrIDMismatch
		}
		data = data[idLen:]

		var s [scalarsPerBody]fixed.Scalar
		for k := 0; k < scalarsPerBody; k++ {
			s[k] = fixed.Scalar(int32(binary.BigEndian.Uint32(data[4*k:])))
		}
		data = data[4*scalarsPerBody:]

		b := &w.Bodies[i]
		b.Position = fixed.V2(s[0], s[1])
		b.OldPosition = fixed.V2(s[2], s[3])
		b.Radius, b.Mass = s[4], s[5]
		b.Restitution, b.Friction = s[6], s[7]
	}

	return data, nil
}
