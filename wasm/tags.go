// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"github.com/willf/bitset"
)

// Tag bytes of the type grammar, as signed 7-bit values.
const (
	tagI32       int8 = -0x01
	tagI64       int8 = -0x02
	tagF32       int8 = -0x03
	tagF64       int8 = -0x04
	tagV128      int8 = -0x05
	tagAnyFunc   int8 = -0x10
	tagAnyRef    int8 = -0x11
	tagRef       int8 = -0x12
	tagPackedI8  int8 = -0x18
	tagPackedI16 int8 = -0x19
	tagFunction  int8 = -0x20
	tagStruct    int8 = -0x21
	tagArray     int8 = -0x22
	tagNoResult  int8 = -0x40
)

type tagEntry struct {
	name string
	tag  int8
}

// tagTable is the set of tags recognized at one dispatch level of the
// grammar. Each level owns its own table even where the entries overlap.
type tagTable struct {
	level   string
	entries []tagEntry
	members bitset.BitSet
}

func tagBit(tag int8) uint {
	return uint(uint8(tag))
}

func newTagTable(level string, groups ...[]tagEntry) *tagTable {
	t := &tagTable{level: level}
	for _, g := range groups {
		for _, e := range g {
			if t.members.Test(tagBit(e.tag)) {
				panic("wasm: duplicate tag " + e.name + " in " + level + " table")
			}
			t.members.Set(tagBit(e.tag))
			t.entries = append(t.entries, e)
		}
	}
	return t
}

func (t *tagTable) has(tag int8) bool {
	return t.members.Test(tagBit(tag))
}

func (t *tagTable) name(tag int8) (string, bool) {
	for _, e := range t.entries {
		if e.tag == tag {
			return e.name, true
		}
	}
	return "", false
}

func (t *tagTable) overlaps(o *tagTable) bool {
	return t.members.IntersectionCardinality(&o.members) != 0
}

var (
	numTags = []tagEntry{
		{"i32", tagI32},
		{"i64", tagI64},
		{"f32", tagF32},
		{"f64", tagF64},
	}
	vecTags = []tagEntry{
		{"v128", tagV128},
	}

	numTagTable   = newTagTable("num", numTags)
	refTagTable   = newTagTable("ref", refTags)
	valueTagTable = newTagTable("value", vecTags, numTags, refTags)
	blockTagTable = newTagTable("block", []tagEntry{{"noresult", tagNoResult}}, vecTags, numTags, refTags)
)

// Tag describes one recognized tag byte.
type Tag struct {
	Level string `csv:"level"`
	Name  string `csv:"name"`
	Value int8   `csv:"value"`
	Byte  uint8  `csv:"byte"`
}

// Tags returns every tag recognized by the active dialect, grouped by
// dispatch level.
func Tags() []Tag {
	var tags []Tag
	for _, t := range tagTables {
		for _, e := range t.entries {
			tags = append(tags, Tag{
				Level: t.level,
				Name:  e.name,
				Value: e.tag,
				Byte:  uint8(e.tag) & 0x7f,
			})
		}
	}
	return tags
}
