package form

import (
	"fmt"
	"strings"
)

// MaxWordBits is the widest instruction word a Field may address.
const MaxWordBits = 32

// Field is one contiguous bit range of an instruction word. Bit 0 is the LSB.
type Field struct {
	name   string
	pos    uint
	length uint
	mask   uint64
}

// NewField returns the field [pos, pos+length). Invalid ranges panic: fields
// are declared once at package initialisation and a bad declaration is a
// programming error.
func NewField(name string, pos, length uint) *Field {
	if length == 0 || pos+length > MaxWordBits {
		panic(fmt.Errorf("field %q: bad range pos=%d len=%d", name, pos, length))
	}
	return &Field{
		name:   name,
		pos:    pos,
		length: length,
		mask:   (uint64(1) << length) - 1,
	}
}

func (f *Field) Name() string { return f.name }

// Pos is the bit position of the field's least significant bit.
func (f *Field) Pos() uint { return f.pos }

func (f *Field) Len() uint { return f.length }

// Mask is the right-justified mask, (1<<Len)-1.
func (f *Field) Mask() uint64 { return f.mask }

// ShiftedMask is Mask positioned at Pos. Callers blank the field with word &^ ShiftedMask.
func (f *Field) ShiftedMask() uint64 { return f.mask << f.pos }

// Extract returns the right-justified value of the field within word.
func (f *Field) Extract(word uint64) uint64 {
	return (word >> f.pos) & f.mask
}

// Insert returns word with the field replaced by v. Bits of v above Len are dropped.
func (f *Field) Insert(word, v uint64) uint64 {
	return (word &^ f.ShiftedMask()) | ((v & f.mask) << f.pos)
}

// IsEquivalent reports whether both fields cover the same bits, regardless of name.
func (f *Field) IsEquivalent(other *Field) bool {
	return f.pos == other.pos && f.length == other.length
}

func (f *Field) String() string {
	if f.length == 1 {
		return fmt.Sprintf("%s[%d]", f.name, f.pos)
	}
	return fmt.Sprintf("%s[%d:%d]", f.name, f.pos+f.length-1, f.pos)
}

// ConcatField reassembles one logical value from discontiguous fields. The
// first sub-field lands in the least significant bits of the result, each
// following one directly above the previous.
type ConcatField struct {
	name   string
	subs   []*Field
	length uint
}

// NewConcatField panics if the reassembled value would not fit in 64 bits.
func NewConcatField(name string, subs ...*Field) *ConcatField {
	var length uint
	for _, s := range subs {
		length += s.Len()
	}
	if len(subs) == 0 || length > 64 {
		panic(fmt.Errorf("concat field %q: bad width %d", name, length))
	}
	return &ConcatField{name: name, subs: subs, length: length}
}

func (c *ConcatField) Name() string { return c.name }

// Len is the sum of the sub-field lengths.
func (c *ConcatField) Len() uint { return c.length }

// Fields returns the sub-fields in declaration order (lowest chunk first).
func (c *ConcatField) Fields() []*Field { return c.subs }

// ShiftedMask is the union of the sub-fields' positioned masks.
func (c *ConcatField) ShiftedMask() uint64 {
	var m uint64
	for _, s := range c.subs {
		m |= s.ShiftedMask()
	}
	return m
}

func (c *ConcatField) Extract(word uint64) uint64 {
	var (
		out    uint64
		offset uint
	)
	for _, s := range c.subs {
		out |= s.Extract(word) << offset
		offset += s.Len()
	}
	return out
}

// Insert scatters the low Len bits of v into word, inverse of Extract.
func (c *ConcatField) Insert(word, v uint64) uint64 {
	var offset uint
	for _, s := range c.subs {
		word = s.Insert(word, v>>offset)
		offset += s.Len()
	}
	return word
}

func (c *ConcatField) String() string {
	parts := make([]string, len(c.subs))
	for i, s := range c.subs {
		parts[len(c.subs)-1-i] = s.String()
	}
	return c.name + "{" + strings.Join(parts, ",") + "}"
}
