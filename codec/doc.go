// Package codec implements the canonical byte encoding of world state
// and the SHA-256 determinism fingerprint over it.
//
// 🚀 What is codec?
//
//	The arbiter of "identical". Two runs agree exactly when their
//	canonical encodings agree, and the encoding is big-endian,
//	fixed-layout, and determined solely by the ordered body list:
//
//	  4 bytes  body count
//	  per body, in index order:
//	    4 bytes  id length, then the id's UTF-8 bytes
//	    4 bytes  position.x   (raw Q16.16, big-endian)
//	    4 bytes  position.y
//	    4 bytes  old_position.x
//	    4 bytes  old_position.y
//	    4 bytes  radius
//	    4 bytes  mass
//	    4 bytes  restitution
//	    4 bytes  friction
//
// ✨ Contracts:
//
//   - Hash(w) = SHA-256(Encode(w)) — the determinism fingerprint
//   - decode(encode(W)) ≡ W and encode(decode(B)) = B, bit-for-bit
//   - EncodeState appends the 8-byte big-endian step counter; those
//     bytes plus nothing else are the persisted state
//
// Decode writes into an existing World so the run-constant parts
// (springs, fields, zones, bounds) stay put; only body kinematics and
// material scalars travel through the encoding.
package codec
