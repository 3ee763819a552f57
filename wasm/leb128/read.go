// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package leb128 provides functions for reading and writing the LEB128
// variable-length integer encodings used by the WebAssembly binary format.
package leb128

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrOverflow is returned when an encoded integer does not fit the requested width.
	ErrOverflow = errors.New("leb128: integer representation too long")
	// ErrVarint7Overflow is returned when a varint7 spans more than one byte.
	ErrVarint7Overflow = errors.New("leb128: varint7 does not fit in a single byte")
	// ErrVarUint7Overflow is returned when a varuint7 spans more than one byte.
	ErrVarUint7Overflow = errors.New("leb128: varuint7 does not fit in a single byte")
)

// InvalidVarUint1Error is returned when a varuint1 holds a value other than 0 or 1.
type InvalidVarUint1Error uint8

func (e InvalidVarUint1Error) Error() string {
	return fmt.Sprintf("leb128: invalid varuint1 value %#x", uint8(e))
}

func readByte(r io.Reader) (byte, error) {
	if br, ok := r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadVarint7 reads a single-byte signed LEB128 value.
func ReadVarint7(r io.Reader) (int8, error) {
	b, err := readByte(r)
	if err != nil {
		return 0, err
	}
	if b&0x80 != 0 {
		return 0, ErrVarint7Overflow
	}
	// sign-extend from bit 6
	return int8(b<<1) >> 1, nil
}

// ReadVarUint7 reads a single-byte unsigned LEB128 value.
func ReadVarUint7(r io.Reader) (uint8, error) {
	b, err := readByte(r)
	if err != nil {
		return 0, err
	}
	if b&0x80 != 0 {
		return 0, ErrVarUint7Overflow
	}
	return b, nil
}

// ReadVarUint1 reads a single-bit unsigned value encoded as one byte.
func ReadVarUint1(r io.Reader) (bool, error) {
	b, err := readByte(r)
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, InvalidVarUint1Error(b)
	}
}

// ReadVarUint32Size reads a LEB128 encoded unsigned 32-bit integer from r.
// It returns the integer value, the size of the encoded value (in bytes), and
// the error (if any).
func ReadVarUint32Size(r io.Reader) (res uint32, size uint, err error) {
	var shift uint
	for {
		b, err := readByte(r)
		if err != nil {
			return 0, size, err
		}
		size++
		if shift == 28 && b&0xf0 != 0 {
			return 0, size, ErrOverflow
		}
		res |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return res, size, nil
		}
		shift += 7
	}
}

// ReadVarUint32 reads a LEB128 encoded unsigned 32-bit integer from r, and
// returns the integer value, and the error (if any).
func ReadVarUint32(r io.Reader) (uint32, error) {
	n, _, err := ReadVarUint32Size(r)
	return n, err
}

// ReadVarint32Size reads a LEB128 encoded signed 32-bit integer from r, and
// returns the integer value, the size of the encoded value, and the error
// (if any)
func ReadVarint32Size(r io.Reader) (res int32, size uint, err error) {
	res64, size, err := readVarintSize(r, 5)
	if err != nil {
		return 0, size, err
	}
	if int64(int32(res64)) != res64 {
		return 0, size, ErrOverflow
	}
	return int32(res64), size, nil
}

// ReadVarint32 reads a LEB128 encoded signed 32-bit integer from r, and
// returns the integer value, and the error (if any).
func ReadVarint32(r io.Reader) (int32, error) {
	n, _, err := ReadVarint32Size(r)
	return n, err
}

// ReadVarint64Size reads a LEB128 encoded signed 64-bit integer from r, and
// returns the integer value, the size of the encoded value, and the error
// (if any)
func ReadVarint64Size(r io.Reader) (res int64, size uint, err error) {
	return readVarintSize(r, 10)
}

// ReadVarint64 reads a LEB128 encoded signed 64-bit integer from r, and
// returns the integer value, and the error (if any).
func ReadVarint64(r io.Reader) (int64, error) {
	n, _, err := ReadVarint64Size(r)
	return n, err
}

func readVarintSize(r io.Reader, maxSize uint) (res int64, size uint, err error) {
	var shift uint
	var b byte
	for {
		if size == maxSize {
			return 0, size, ErrOverflow
		}
		if b, err = readByte(r); err != nil {
			return 0, size, err
		}
		size++
		if shift < 64 {
			res |= int64(b&0x7f) << shift
		}
		shift += 7
		if b&0x80 == 0 {
			break
		}
	}
	if shift < 64 && b&0x40 != 0 {
		res |= -1 << shift
	}
	return res, size, nil
}
