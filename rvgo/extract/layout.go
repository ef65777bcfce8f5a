package extract

import (
	"github.com/ethereum-optimism/rvform/rvgo/form"
	"github.com/ethereum-optimism/rvform/rvgo/meta"
)

// bitSource is a plain or concatenated field.
type bitSource interface {
	Extract(word uint64) uint64
	Len() uint
	ShiftedMask() uint64
}

// immField is an immediate read from src and scaled by the implied low zero bits.
type immField struct {
	src   bitSource
	shift uint
}

func (i immField) immediate(op uint64) uint64 {
	if i.src == nil {
		return 0
	}
	return i.src.Extract(op) << i.shift
}

func (i immField) immWidth() uint {
	if i.src == nil {
		return 0
	}
	return i.src.Len() + i.shift
}

func (i immField) immMask() uint64 {
	if i.src == nil {
		return 0
	}
	return i.src.ShiftedMask()
}

type specials map[SpecialField]bitSource

func (s specials) special(id SpecialField, op uint64) (uint64, bool) {
	src, ok := s[id]
	if !ok {
		return 0, false
	}
	return src.Extract(op), true
}

// basic is a layout whose operands do not depend on the opcode. The more
// irregular forms embed it and override sources or dests.
type basic struct {
	f   *form.Form
	src []regOperand
	dst []regOperand
	immField
	specials
}

func (b *basic) form() *form.Form { return b.f }

func (b *basic) sources(uint64) []regOperand { return b.src }

func (b *basic) dests(uint64) []regOperand { return b.dst }

// layoutBuilder keeps the per-form declarations short.
type layoutBuilder struct {
	b *basic
}

func build(f *form.Form) layoutBuilder {
	return layoutBuilder{b: &basic{f: f}}
}

func (lb layoutBuilder) fld(name string) *form.Field { return lb.b.f.MustField(name) }

func (lb layoutBuilder) src(ops ...regOperand) layoutBuilder {
	lb.b.src = append(lb.b.src, ops...)
	return lb
}

func (lb layoutBuilder) dst(ops ...regOperand) layoutBuilder {
	lb.b.dst = append(lb.b.dst, ops...)
	return lb
}

// imm sets the immediate to the named plain field, or concat field if the form has one.
func (lb layoutBuilder) imm(name string, shift uint) layoutBuilder {
	if c, err := lb.b.f.ConcatField(name); err == nil {
		lb.b.immField = immField{src: c, shift: shift}
	} else {
		lb.b.immField = immField{src: lb.fld(name), shift: shift}
	}
	return lb
}

func (lb layoutBuilder) special(id SpecialField, name string) layoutBuilder {
	if lb.b.specials == nil {
		lb.b.specials = make(specials)
	}
	if c, err := lb.b.f.ConcatField(name); err == nil {
		lb.b.specials[id] = c
	} else {
		lb.b.specials[id] = lb.fld(name)
	}
	return lb
}

// Register shorthands over the builder's form.

func (lb layoutBuilder) rs1() regOperand { return reg(meta.RS1, lb.fld("rs1")) }
func (lb layoutBuilder) rs2() regOperand { return reg(meta.RS2, lb.fld("rs2")) }
func (lb layoutBuilder) rs3() regOperand { return reg(meta.RS3, lb.fld("rs3")) }
func (lb layoutBuilder) rd() regOperand  { return reg(meta.RD, lb.fld("rd")) }

func (lb layoutBuilder) done() *basic { return lb.b }

// namedLayout pairs an extractor name with its layout. Xforms reuse a form
// under a different name.
type namedLayout struct {
	name string
	l    layout
}

func named(l layout) namedLayout { return namedLayout{name: l.form().Name(), l: l} }

func xform(name string, l layout) namedLayout { return namedLayout{name: name, l: l} }
