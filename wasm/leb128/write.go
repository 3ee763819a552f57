// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package leb128

import (
	"io"
)

func writeByte(w io.Writer, b byte) (int, error) {
	if bw, ok := w.(io.ByteWriter); ok {
		if err := bw.WriteByte(b); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return w.Write([]byte{b})
}

// WriteVarint7 writes v as a single-byte signed LEB128 value. Only the low
// seven bits of v are significant.
func WriteVarint7(w io.Writer, v int8) (int, error) {
	return writeByte(w, byte(v)&0x7f)
}

// WriteVarUint7 writes v as a single-byte unsigned LEB128 value.
func WriteVarUint7(w io.Writer, v uint8) (int, error) {
	return writeByte(w, v&0x7f)
}

// WriteVarUint1 writes v as a single byte holding 0 or 1.
func WriteVarUint1(w io.Writer, v bool) (int, error) {
	if v {
		return writeByte(w, 1)
	}
	return writeByte(w, 0)
}

// WriteVarUint32 writes a LEB128 encoded unsigned 32-bit integer to w.
// It returns the integer value, the size of the encoded value (in bytes), and
// the error (if any).
func WriteVarUint32(w io.Writer, cur uint32) (int, error) {
	var buf [5]byte
	i := 0
	for {
		b := byte(cur & 0x7f)
		cur >>= 7
		if cur != 0 {
			b |= 0x80
		}
		buf[i] = b
		i++
		if cur == 0 {
			break
		}
	}
	return w.Write(buf[:i])
}

// WriteVarint64 writes a LEB128 encoded signed 64-bit integer to w, and
// returns the bytes written and the error (if any).
func WriteVarint64(w io.Writer, v int64) (int, error) {
	var buf [10]byte
	i := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7
		done := (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0)
		if !done {
			b |= 0x80
		}
		buf[i] = b
		i++
		if done {
			break
		}
	}
	return w.Write(buf[:i])
}
