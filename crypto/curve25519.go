// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package crypto

// This file implements the Curve25519 variant used by the Ardor platform for
// transaction signatures and key agreement. It is a port of the public domain
// implementation by Matthijs van Duin (via the Java port used by the Nxt
// reference software), which works on the Montgomery curve
//
//	y^2 = x^3 + 486662 x^2 + x  over GF(2^255-19)
//
// with field elements in a 10-limb representation of alternating 26/25 bit
// limbs. Scalar arithmetic modulo the group order is done with
// filippo.io/edwards25519, which replaces the byte-level long division of the
// original.
//
// The signature scheme is the EC-KCDSA variant used by the platform: keygen
// produces both the public key P (the x coordinate of kG) and a signing
// factor s with s*abs(P) = G, so that a signature (v, h) with
// v = (x - h)*s mod q verifies through Y = v*abs(P) + h*G = x*G.

import (
	"bytes"

	"filippo.io/edwards25519"
)

const (
	p25 = 33554431 // (1 << 25) - 1
	p26 = 67108863 // (1 << 26) - 1
)

// A field element in radix 2^25.5: even limbs hold 26 bits, odd limbs 25
type long10 [10]int64

// 2Gy and 1/(2Gy) for the base point G = (9, Gy)
var base2y = long10{
	39999547, 18689728, 59995525, 1648697, 57546132,
	24010086, 19059592, 5425144, 63499247, 16420658,
}

var baseR2y = long10{
	5744, 8160848, 4790893, 13779497, 35730846,
	12541209, 49101323, 30047407, 40071253, 6226132,
}

// Convert to internal format from little-endian byte format
func unpack(x *long10, m []byte) {
	x[0] = int64(m[0]) | int64(m[1])<<8 | int64(m[2])<<16 |
		int64(m[3]&3)<<24
	x[1] = int64(m[3]&0xfc)>>2 | int64(m[4])<<6 | int64(m[5])<<14 |
		int64(m[6]&7)<<22
	x[2] = int64(m[6]&0xf8)>>3 | int64(m[7])<<5 | int64(m[8])<<13 |
		int64(m[9]&31)<<21
	x[3] = int64(m[9]&0xe0)>>5 | int64(m[10])<<3 | int64(m[11])<<11 |
		int64(m[12]&63)<<19
	x[4] = int64(m[12]&0xc0)>>6 | int64(m[13])<<2 | int64(m[14])<<10 |
		int64(m[15])<<18
	x[5] = int64(m[16]) | int64(m[17])<<8 | int64(m[18])<<16 |
		int64(m[19]&1)<<24
	x[6] = int64(m[19]&0xfe)>>1 | int64(m[20])<<7 | int64(m[21])<<15 |
		int64(m[22]&7)<<23
	x[7] = int64(m[22]&0xf8)>>3 | int64(m[23])<<5 | int64(m[24])<<13 |
		int64(m[25]&15)<<21
	x[8] = int64(m[25]&0xf0)>>4 | int64(m[26])<<4 | int64(m[27])<<12 |
		int64(m[28]&63)<<20
	x[9] = int64(m[28]&0xc0)>>6 | int64(m[29])<<2 | int64(m[30])<<10 |
		int64(m[31])<<18
}

// Check if reduced-form input >= 2^255-19
func isOverflow(x *long10) bool {
	return (x[0] > p26-19 &&
		(x[1]&x[3]&x[5]&x[7]&x[9]) == p25 &&
		(x[2]&x[4]&x[6]&x[8]) == p26) ||
		x[9] > p25
}

// Convert from internal format to little-endian byte format. The number must
// be in a reduced form which is output by the following functions:
// unpack, mulSmall, mul, sqr and recip (a reduced input is also acceptable).
func pack(x *long10, m []byte) {
	var ld, ud int64
	if isOverflow(x) {
		ld = 1
	}
	if x[9] < 0 {
		ld--
	}
	ud = ld * -(p25 + 1)
	ld *= 19
	t := ld + x[0] + x[1]<<26
	m[0] = byte(t)
	m[1] = byte(t >> 8)
	m[2] = byte(t >> 16)
	m[3] = byte(t >> 24)
	t = t>>32 + x[2]<<19
	m[4] = byte(t)
	m[5] = byte(t >> 8)
	m[6] = byte(t >> 16)
	m[7] = byte(t >> 24)
	t = t>>32 + x[3]<<13
	m[8] = byte(t)
	m[9] = byte(t >> 8)
	m[10] = byte(t >> 16)
	m[11] = byte(t >> 24)
	t = t>>32 + x[4]<<6
	m[12] = byte(t)
	m[13] = byte(t >> 8)
	m[14] = byte(t >> 16)
	m[15] = byte(t >> 24)
	t = t>>32 + x[5] + x[6]<<25
	m[16] = byte(t)
	m[17] = byte(t >> 8)
	m[18] = byte(t >> 16)
	m[19] = byte(t >> 24)
	t = t>>32 + x[7]<<19
	m[20] = byte(t)
	m[21] = byte(t >> 8)
	m[22] = byte(t >> 16)
	m[23] = byte(t >> 24)
	t = t>>32 + x[8]<<12
	m[24] = byte(t)
	m[25] = byte(t >> 8)
	m[26] = byte(t >> 16)
	m[27] = byte(t >> 24)
	t = t>>32 + (x[9]+ud)<<6
	m[28] = byte(t)
	m[29] = byte(t >> 8)
	m[30] = byte(t >> 16)
	m[31] = byte(t >> 24)
}

func cpy(out, in *long10) {
	*out = *in
}

func set(out *long10, in int64) {
	*out = long10{in}
}

// Add/subtract two numbers. The inputs must be in reduced form, and the
// output isn't, so to do another addition or subtraction on the output,
// first multiply it by one to reduce it.
func add(xy, x, y *long10) {
	for i := range xy {
		xy[i] = x[i] + y[i]
	}
}

func sub(xy, x, y *long10) {
	for i := range xy {
		xy[i] = x[i] - y[i]
	}
}

// Multiply a number by a small integer in range -185861411 .. 185861411.
// The output is in reduced form, the input x need not be. x and xy may
// point to the same buffer.
func mulSmall(xy, x *long10, y int64) {
	t := x[8] * y
	xy[8] = t & p26
	t = t>>26 + x[9]*y
	xy[9] = t & p25
	t = 19*(t>>25) + x[0]*y
	xy[0] = t & p26
	t = t>>26 + x[1]*y
	xy[1] = t & p25
	t = t>>25 + x[2]*y
	xy[2] = t & p26
	t = t>>26 + x[3]*y
	xy[3] = t & p25
	t = t>>25 + x[4]*y
	xy[4] = t & p26
	t = t>>26 + x[5]*y
	xy[5] = t & p25
	t = t>>25 + x[6]*y
	xy[6] = t & p26
	t = t>>26 + x[7]*y
	xy[7] = t & p25
	t = t>>25 + xy[8]
	xy[8] = t & p26
	xy[9] += t >> 26
}

// Multiply two numbers. The output is in reduced form, the inputs need not be.
func mul(xy, x, y *long10) {
	t := x[0]*y[8] + x[2]*y[6] + x[4]*y[4] + x[6]*y[2] + x[8]*y[0] +
		2*(x[1]*y[7]+x[3]*y[5]+x[5]*y[3]+x[7]*y[1]) +
		38*(x[9]*y[9])
	xy[8] = t & p26
	t = t>>26 + x[0]*y[9] + x[1]*y[8] + x[2]*y[7] + x[3]*y[6] +
		x[4]*y[5] + x[5]*y[4] + x[6]*y[3] + x[7]*y[2] +
		x[8]*y[1] + x[9]*y[0]
	xy[9] = t & p25
	t = x[0]*y[0] +
		19*(t>>25+x[2]*y[8]+x[4]*y[6]+x[6]*y[4]+x[8]*y[2]) +
		38*(x[1]*y[9]+x[3]*y[7]+x[5]*y[5]+x[7]*y[3]+x[9]*y[1])
	xy[0] = t & p26
	t = t>>26 + x[0]*y[1] + x[1]*y[0] +
		19*(x[2]*y[9]+x[3]*y[8]+x[4]*y[7]+x[5]*y[6]+x[6]*y[5]+
			x[7]*y[4]+x[8]*y[3]+x[9]*y[2])
	xy[1] = t & p25
	t = t>>25 + x[0]*y[2] + x[2]*y[0] +
		19*(x[4]*y[8]+x[6]*y[6]+x[8]*y[4]) + 2*(x[1]*y[1]) +
		38*(x[3]*y[9]+x[5]*y[7]+x[7]*y[5]+x[9]*y[3])
	xy[2] = t & p26
	t = t>>26 + x[0]*y[3] + x[1]*y[2] + x[2]*y[1] + x[3]*y[0] +
		19*(x[4]*y[9]+x[5]*y[8]+x[6]*y[7]+x[7]*y[6]+x[8]*y[5]+
			x[9]*y[4])
	xy[3] = t & p25
	t = t>>25 + x[0]*y[4] + x[2]*y[2] + x[4]*y[0] +
		19*(x[6]*y[8]+x[8]*y[6]) + 2*(x[1]*y[3]+x[3]*y[1]) +
		38*(x[5]*y[9]+x[7]*y[7]+x[9]*y[5])
	xy[4] = t & p26
	t = t>>26 + x[0]*y[5] + x[1]*y[4] + x[2]*y[3] + x[3]*y[2] +
		x[4]*y[1] + x[5]*y[0] +
		19*(x[6]*y[9]+x[7]*y[8]+x[8]*y[7]+x[9]*y[6])
	xy[5] = t & p25
	t = t>>25 + x[0]*y[6] + x[2]*y[4] + x[4]*y[2] + x[6]*y[0] +
		19*(x[8]*y[8]) + 2*(x[1]*y[5]+x[3]*y[3]+x[5]*y[1]) +
		38*(x[7]*y[9]+x[9]*y[7])
	xy[6] = t & p26
	t = t>>26 + x[0]*y[7] + x[1]*y[6] + x[2]*y[5] + x[3]*y[4] +
		x[4]*y[3] + x[5]*y[2] + x[6]*y[1] + x[7]*y[0] +
		19*(x[8]*y[9]+x[9]*y[8])
	xy[7] = t & p25
	t = t>>25 + xy[8]
	xy[8] = t & p26
	xy[9] += t >> 26
}

// Square a number. Optimization of mul(x2, x, x).
func sqr(x2, x *long10) {
	t := x[4]*x[4] + 2*(x[0]*x[8]+x[2]*x[6]) + 38*(x[9]*x[9]) +
		4*(x[1]*x[7]+x[3]*x[5])
	x2[8] = t & p26
	t = t>>26 + 2*(x[0]*x[9]+x[1]*x[8]+x[2]*x[7]+x[3]*x[6]+
		x[4]*x[5])
	x2[9] = t & p25
	t = 19*(t>>25) + x[0]*x[0] +
		38*(x[2]*x[8]+x[4]*x[6]+x[5]*x[5]) +
		76*(x[1]*x[9]+x[3]*x[7])
	x2[0] = t & p26
	t = t>>26 + 2*(x[0]*x[1]) +
		38*(x[2]*x[9]+x[3]*x[8]+x[4]*x[7]+x[5]*x[6])
	x2[1] = t & p25
	t = t>>25 + 19*(x[6]*x[6]) + 2*(x[0]*x[2]+x[1]*x[1]) +
		38*(x[4]*x[8]) + 76*(x[3]*x[9]+x[5]*x[7])
	x2[2] = t & p26
	t = t>>26 + 2*(x[0]*x[3]+x[1]*x[2]) +
		38*(x[4]*x[9]+x[5]*x[8]+x[6]*x[7])
	x2[3] = t & p25
	t = t>>25 + x[2]*x[2] + 2*(x[0]*x[4]) +
		38*(x[6]*x[8]+x[7]*x[7]) + 4*(x[1]*x[3]) +
		76*(x[5]*x[9])
	x2[4] = t & p26
	t = t>>26 + 2*(x[0]*x[5]+x[1]*x[4]+x[2]*x[3]) +
		38*(x[6]*x[9]+x[7]*x[8])
	x2[5] = t & p25
	t = t>>25 + 19*(x[8]*x[8]) +
		2*(x[0]*x[6]+x[2]*x[4]+x[3]*x[3]) + 4*(x[1]*x[5]) +
		76*(x[7]*x[9])
	x2[6] = t & p26
	t = t>>26 + 2*(x[0]*x[7]+x[1]*x[6]+x[2]*x[5]+x[3]*x[4]) +
		38*(x[8]*x[9])
	x2[7] = t & p25
	t = t>>25 + x2[8]
	x2[8] = t & p26
	x2[9] += t >> 26
}

// Calculates a reciprocal. The output is in reduced form, the inputs need
// not be. When sqrtAssist is true, the function calculates x^((p-5)/8)
// instead, which is used by the square root below.
func recip(y, x *long10, sqrtAssist bool) {
	var t0, t1, t2, t3, t4 long10
	// the addition chain for 2^255-21 is from the original implementation
	sqr(&t1, x)        //  2 == 2 * 1
	sqr(&t2, &t1)      //  4 == 2 * 2
	sqr(&t0, &t2)      //  8 == 2 * 4
	mul(&t2, &t0, x)   //  9 == 8 + 1
	mul(&t0, &t2, &t1) // 11 == 9 + 2
	sqr(&t1, &t0)      // 22 == 2 * 11
	mul(&t3, &t1, &t2) // 31 == 22 + 9 == 2^5   - 2^0
	sqr(&t1, &t3)      // 2^6   - 2^1
	sqr(&t2, &t1)      // 2^7   - 2^2
	sqr(&t1, &t2)      // 2^8   - 2^3
	sqr(&t2, &t1)      // 2^9   - 2^4
	sqr(&t1, &t2)      // 2^10  - 2^5
	mul(&t2, &t1, &t3) // 2^10  - 2^0
	sqr(&t1, &t2)      // 2^11  - 2^1
	sqr(&t3, &t1)      // 2^12  - 2^2
	for i := 1; i < 5; i++ {
		sqr(&t1, &t3)
		sqr(&t3, &t1)
	} // t3 = 2^20  - 2^10
	mul(&t1, &t3, &t2) // 2^20  - 2^0
	sqr(&t3, &t1)      // 2^21  - 2^1
	sqr(&t4, &t3)      // 2^22  - 2^2
	for i := 1; i < 10; i++ {
		sqr(&t3, &t4)
		sqr(&t4, &t3)
	} // t4 = 2^40  - 2^20
	mul(&t3, &t4, &t1) // 2^40  - 2^0
	for i := 0; i < 5; i++ {
		sqr(&t1, &t3)
		sqr(&t3, &t1)
	} // t3 = 2^50  - 2^10
	mul(&t1, &t3, &t2) // 2^50  - 2^0
	sqr(&t2, &t1)      // 2^51  - 2^1
	sqr(&t3, &t2)      // 2^52  - 2^2
	for i := 1; i < 25; i++ {
		sqr(&t2, &t3)
		sqr(&t3, &t2)
	} // t3 = 2^100 - 2^50
	mul(&t2, &t3, &t1) // 2^100 - 2^0
	sqr(&t3, &t2)      // 2^101 - 2^1
	sqr(&t4, &t3)      // 2^102 - 2^2
	for i := 1; i < 50; i++ {
		sqr(&t3, &t4)
		sqr(&t4, &t3)
	} // t4 = 2^200 - 2^100
	mul(&t3, &t4, &t2) // 2^200 - 2^0
	for i := 0; i < 25; i++ {
		sqr(&t4, &t3)
		sqr(&t3, &t4)
	} // t3 = 2^250 - 2^50
	mul(&t2, &t3, &t1) // 2^250 - 2^0
	sqr(&t1, &t2)      // 2^251 - 2^1
	sqr(&t2, &t1)      // 2^252 - 2^2
	if sqrtAssist {
		mul(y, x, &t2) // 2^252 - 3
	} else {
		sqr(&t1, &t2)      // 2^253 - 2^3
		sqr(&t2, &t1)      // 2^254 - 2^4
		sqr(&t1, &t2)      // 2^255 - 2^5
		mul(y, &t1, &t0)   // 2^255 - 21
	}
}

// Checks if x is "negative", requires reduced input
func isNegative(x *long10) bool {
	var sign int64
	if isOverflow(x) || x[9] < 0 {
		sign = 1
	}
	return (sign ^ (x[0] & 1)) != 0
}

// A square root
func sqrtRoot(x, u *long10) {
	var v, t1, t2 long10
	add(&t1, u, u)        // t1 = 2u
	recip(&v, &t1, true)  // v = (2u)^((p-5)/8)
	sqr(x, &v)            // x = v^2
	mul(&t2, &t1, x)      // t2 = 2uv^2
	t2[0]--               // t2 = 2uv^2-1
	mul(&t1, &v, &t2)     // t1 = v(2uv^2-1)
	mul(x, u, &t1)        // x = uv(2uv^2-1)
}

// t1 = ax + az, t2 = ax - az
func montPrep(t1, t2, ax, az *long10) {
	add(t1, ax, az)
	sub(t2, ax, az)
}

// A = P + Q   where
//
//	X(A) = ax/az
//	X(P) = (t1+t2)/(t1-t2)
//	X(Q) = (t3+t4)/(t3-t4)
//	X(P-Q) = dx
//
// clobbers t1 and t2, preserves t3 and t4
func montAdd(t1, t2, t3, t4, ax, az, dx *long10) {
	mul(ax, t2, t3)
	mul(az, t1, t4)
	add(t1, ax, az)
	sub(t2, ax, az)
	sqr(ax, t1)
	sqr(t1, t2)
	mul(az, t1, dx)
}

// B = 2 * Q   where
//
//	X(B) = bx/bz
//	X(Q) = (t3+t4)/(t3-t4)
//
// clobbers t1 and t2, preserves t3 and t4
func montDbl(t1, t2, t3, t4, bx, bz *long10) {
	sqr(t1, t3)
	sqr(t2, t4)
	mul(bx, t1, t2)
	sub(t2, t1, t2)
	mulSmall(bz, t2, 121665)
	add(t1, t1, bz)
	mul(bz, t1, t2)
}

// y^2 = x^3 + 486662 x^2 + x  (t is a temporary)
func xToY2(t, y2, x *long10) {
	sqr(t, x)
	mulSmall(y2, x, 486662)
	add(t, t, y2)
	t[0]++
	mul(y2, t, x)
}

// scalarReduce interprets b as a little-endian integer and reduces it modulo
// the group order
func scalarReduce(b []byte) *edwards25519.Scalar {
	var wide [64]byte
	copy(wide[:], b)
	s, _ := new(edwards25519.Scalar).SetUniformBytes(wide[:]) // cannot fail for a 64-byte input
	return s
}

// P = kG and s = sign(P)/k
func core(px, s, k, gx []byte) {
	var dx, t1, t2, t3, t4 long10
	var x, z [2]long10

	// unpack the base
	if gx != nil {
		unpack(&dx, gx)
	} else {
		set(&dx, 9)
	}

	// 0G = point-at-infinity
	set(&x[0], 1)
	set(&z[0], 0)

	// 1G = G
	cpy(&x[1], &dx)
	set(&z[1], 1)

	for i := 31; i >= 0; i-- {
		for j := 7; j >= 0; j-- {
			// swap arguments depending on bit
			bit1 := int(k[i]) >> uint(j) & 1
			bit0 := bit1 ^ 1
			ax, az := &x[bit0], &z[bit0]
			bx, bz := &x[bit1], &z[bit1]

			// a' = a + b, b' = 2 b
			montPrep(&t1, &t2, ax, az)
			montPrep(&t3, &t4, bx, bz)
			montAdd(&t1, &t2, &t3, &t4, ax, az, &dx)
			montDbl(&t1, &t2, &t3, &t4, bx, bz)
		}
	}

	recip(&t1, &z[0], false)
	mul(&dx, &x[0], &t1)
	pack(&dx, px)

	// calculate s such that s abs(P) = G  .. assumes G is the base point
	if s != nil {
		xToY2(&t2, &t1, &dx)     // t1 = Py^2
		recip(&t3, &z[1], false) // where Q = P + G ...
		mul(&t2, &x[1], &t3)     // t2 = Qx
		add(&t2, &t2, &dx)       // t2 = Qx + Px
		t2[0] += 9 + 486662      // t2 = Qx + Px + Gx + 486662
		dx[0] -= 9               // dx = Px - Gx
		sqr(&t3, &dx)            // t3 = (Px - Gx)^2
		mul(&dx, &t2, &t3)       // dx = t2 (Px - Gx)^2
		sub(&dx, &dx, &t1)       // dx = t2 (Px - Gx)^2 - Py^2
		dx[0] -= 39420360        // dx = t2 (Px - Gx)^2 - Py^2 - Gy^2
		mul(&t1, &dx, &baseR2y)  // t1 = -Py

		// s = 1/k or -1/k mod q, whichever satisfies s abs(P) = G
		sc := scalarReduce(k)
		if !isNegative(&t1) {
			sc.Negate(sc)
		}
		sc.Invert(sc)
		copy(s, sc.Bytes())
	}
}

// Private key clamping
func clamp(k []byte) {
	k[31] &= 0x7f
	k[31] |= 0x40
	k[0] &= 0xf8
}

// Key-pair generation. The signing factor s may be nil if only the public
// key is wanted. k is clamped in place.
func keygen(p, s, k []byte) {
	clamp(k)
	core(p, s, k, nil)
}

// Key agreement: dst = x coordinate of k*P. The scalar k is not clamped.
func curve(dst, k, p []byte) {
	core(dst, nil, k, p)
}

// Signature generation primitive: v = (x - h) s mod q. Returns false when
// the resulting value is zero, in which case a different x or h is needed.
func curveSign(v, h, x, s []byte) bool {
	sc, err := new(edwards25519.Scalar).SetCanonicalBytes(s)
	if err != nil {
		return false
	}
	out := new(edwards25519.Scalar).Subtract(scalarReduce(x), scalarReduce(h))
	out.Multiply(out, sc)
	copy(v, out.Bytes())
	for _, b := range v[:32] {
		if b != 0 {
			return true
		}
	}
	return false
}

// Signature verification primitive: Y = v abs(P) + h G
func curveVerify(y, v, h, p []byte) {
	d := make([]byte, 32)
	var pt, s [2]long10
	var yx, yz, t1, t2 [3]long10
	var vi, hi, di, nvh int32

	// set pt[0] to G and pt[1] to P
	set(&pt[0], 9)
	unpack(&pt[1], p)

	// set s[0] to X(P+G) and s[1] to X(P-G)
	//
	//	X(P+G) = (Py^2 + Gy^2 - 2 Py Gy)/(Px - Gx)^2 - Px - Gx - 486662
	//	X(P-G) = (Py^2 + Gy^2 + 2 Py Gy)/(Px - Gx)^2 - Px - Gx - 486662

	xToY2(&t1[0], &t2[0], &pt[1]) // t2[0] = Py^2
	sqrtRoot(&t1[0], &t2[0])      // t1[0] = Py or -Py
	j := 0
	if isNegative(&t1[0]) { //        ... check which
		j = 1
	}
	t2[0][0] += 39420360            // t2[0] = Py^2 + Gy^2
	mul(&t2[1], &base2y, &t1[0])    // t2[1] = 2 Py Gy or -2 Py Gy
	sub(&t1[j], &t2[0], &t2[1])     // t1[0] = Py^2 + Gy^2 - 2 Py Gy
	add(&t1[1-j], &t2[0], &t2[1])   // t1[1] = Py^2 + Gy^2 + 2 Py Gy
	cpy(&t2[0], &pt[1])             // t2[0] = Px
	t2[0][0] -= 9                   // t2[0] = Px - Gx
	sqr(&t2[1], &t2[0])             // t2[1] = (Px - Gx)^2
	recip(&t2[0], &t2[1], false)    // t2[0] = 1/(Px - Gx)^2
	mul(&s[0], &t1[0], &t2[0])      // s[0] = t1[0]/(Px - Gx)^2
	sub(&s[0], &s[0], &pt[1])       // s[0] = t1[0]/(Px - Gx)^2 - Px
	s[0][0] -= 9 + 486662           // s[0] = X(P+G)
	mul(&s[1], &t1[1], &t2[0])      // s[1] = t1[1]/(Px - Gx)^2
	sub(&s[1], &s[1], &pt[1])       // s[1] = t1[1]/(Px - Gx)^2 - Px
	s[1][0] -= 9 + 486662           // s[1] = X(P-G)
	mulSmall(&s[0], &s[0], 1)       // reduce s[0]
	mulSmall(&s[1], &s[1], 1)       // reduce s[1]

	// prepare the chain
	for i := 0; i < 32; i++ {
		vi = (vi >> 8) ^ int32(v[i]) ^ (int32(v[i]) << 1)
		hi = (hi >> 8) ^ int32(h[i]) ^ (int32(h[i]) << 1)
		nvh = ^(vi ^ hi)
		di = (nvh & ((di & 0x80) >> 7)) ^ vi
		di ^= nvh & ((di & 0x01) << 1)
		di ^= nvh & ((di & 0x02) << 1)
		di ^= nvh & ((di & 0x04) << 1)
		di ^= nvh & ((di & 0x08) << 1)
		di ^= nvh & ((di & 0x10) << 1)
		di ^= nvh & ((di & 0x20) << 1)
		di ^= nvh & ((di & 0x40) << 1)
		d[i] = byte(di)
	}

	di = ((nvh & ((di & 0x80) << 1)) ^ vi) >> 8

	// initialize state
	set(&yx[0], 1)
	cpy(&yx[1], &pt[di])
	cpy(&yx[2], &s[0])
	set(&yz[0], 0)
	set(&yz[1], 1)
	set(&yz[2], 1)

	// y[0] is (even)P + (even)G
	// y[1] is (even)P + (odd)G  if current d-bit is 0
	// y[1] is (odd)P + (even)G  if current d-bit is 1
	// y[2] is (odd)P + (odd)G

	vi = 0
	hi = 0

	for i := 31; i >= 0; i-- {
		vi = (vi << 8) | int32(v[i])
		hi = (hi << 8) | int32(h[i])
		di = (di << 8) | int32(d[i])

		for j := 7; j >= 0; j-- {
			montPrep(&t1[0], &t2[0], &yx[0], &yz[0])
			montPrep(&t1[1], &t2[1], &yx[1], &yz[1])
			montPrep(&t1[2], &t2[2], &yx[2], &yz[2])

			k := (((vi ^ (vi >> 1)) >> uint(j)) & 1) +
				(((hi ^ (hi >> 1)) >> uint(j)) & 1)
			montDbl(&yx[2], &yz[2], &t1[k], &t2[k], &yx[0], &yz[0])

			k = ((di >> uint(j)) & 2) ^ (((di >> uint(j)) & 1) << 1)
			montAdd(&t1[1], &t2[1], &t1[k], &t2[k], &yx[1], &yz[1],
				&pt[(di>>uint(j))&1])

			montAdd(&t1[2], &t2[2], &t1[0], &t2[0], &yx[2], &yz[2],
				&s[(((vi^hi)>>uint(j))&2)>>1])
		}
	}

	k := (vi & 1) + (hi & 1)
	recip(&t1[0], &yz[k], false)
	mul(&t1[1], &yx[k], &t1[0])
	pack(&t1[1], y)
}

// A public key is canonical when unpacking and repacking it reproduces the
// original bytes
func isCanonicalPublicKey(publicKey []byte) bool {
	if len(publicKey) != 32 {
		return false
	}
	var unpacked long10
	unpack(&unpacked, publicKey)
	packed := make([]byte, 32)
	pack(&unpacked, packed)
	return bytes.Equal(packed, publicKey)
}

// A signature is canonical when its v half is already reduced modulo the
// group order. The h half is a raw hash output and carries no constraint.
func isCanonicalSignature(signature []byte) bool {
	if len(signature) != 64 {
		return false
	}
	_, err := new(edwards25519.Scalar).SetCanonicalBytes(signature[:32])
	return err == nil
}
