package extract

import (
	"fmt"

	"github.com/ethereum-optimism/rvform/rvgo/form"
	"github.com/ethereum-optimism/rvform/rvgo/meta"
	"github.com/ethereum-optimism/rvform/rvgo/operand"
)

// Metadata is the per-mnemonic operand type information an extractor consults.
// *meta.InstMetaData implements it. A nil Metadata means "no type information".
type Metadata interface {
	OperandType(id meta.OperandFieldID) meta.OperandType
	IsOperandType(id meta.OperandFieldID, kind meta.OperandType) bool
	IsNoneOperandType(kind meta.OperandType) bool
	IsAllOperandType(kind meta.OperandType) bool
}

// Extractor pulls registers, immediates and control fields out of opcodes of
// one Form. Opcodes are passed right-justified; compressed opcodes occupy the
// low 16 bits. Extractors are immutable and safe for concurrent use.
type Extractor interface {
	// Name is the form name, or the xform name for per-instruction variants.
	Name() string
	Form() *form.Form

	SourceRegs(op uint64) RegSet
	// SourceAddressRegs are the sources used for address generation. Forms
	// that do not separate address and data sources return SourceRegs.
	SourceAddressRegs(op uint64) RegSet
	// SourceDataRegs are the sources holding data to be stored. Forms that do
	// not separate address and data sources return SourceRegs.
	SourceDataRegs(op uint64) RegSet
	DestRegs(op uint64) RegSet

	SourceOperTypeRegs(op uint64, md Metadata, kind meta.OperandType) RegSet
	DestOperTypeRegs(op uint64, md Metadata, kind meta.OperandType) RegSet

	SourceOperandInfo(op uint64, md Metadata, suppressX0 bool) operand.Info
	DestOperandInfo(op uint64, md Metadata, suppressX0 bool) operand.Info

	ImmediateType() form.ImmKind
	Immediate(op uint64) uint64
	SignedOffset(op uint64) int64

	// SpecialField returns an *UnsupportedSpecialFieldError if the form has no such field.
	SpecialField(id SpecialField, op uint64) (uint64, error)

	Dasm(mnemonic string, op uint64) string
	// DasmWithMeta prefixes registers by operand type. With nil md it is Dasm.
	DasmWithMeta(mnemonic string, op uint64, md Metadata) string

	// SpecialCaseClone returns an extractor of the same form that treats the
	// bits in fixedMask as fixed to fixedValue.
	SpecialCaseClone(fixedMask, fixedValue uint64) Extractor
	FixedFieldMask() uint64
	FixedFieldValue() uint64
	// Matches reports whether op carries the fixed bits.
	Matches(op uint64) bool
}

// regOperand is one register an encoding reads or writes. Implied operands
// have no field and a constant index.
type regOperand struct {
	id        meta.OperandFieldID
	field     *form.Field
	bias      uint64
	index     uint64
	storeData bool
}

func (r regOperand) implied() bool { return r.field == nil }

func reg(id meta.OperandFieldID, f *form.Field) regOperand {
	return regOperand{id: id, field: f}
}

// creg is a 3-bit compressed register field naming x8..x15.
func creg(id meta.OperandFieldID, f *form.Field) regOperand {
	return regOperand{id: id, field: f, bias: 8}
}

func impliedReg(id meta.OperandFieldID, index uint64) regOperand {
	return regOperand{id: id, index: index}
}

func storeData(r regOperand) regOperand {
	r.storeData = true
	return r
}

// layout is the per-form part of an extractor: which registers an opcode
// reads and writes. Optional behaviour is picked up through immLayout,
// specialLayout and dasmLayout.
type layout interface {
	form() *form.Form
	sources(op uint64) []regOperand
	dests(op uint64) []regOperand
}

type immLayout interface {
	immediate(op uint64) uint64
	// immWidth is the logical width of the immediate, including any implied
	// low zero bits, so that its top bit is the sign bit.
	immWidth() uint
	// immMask is the positioned mask of the encoded immediate bits.
	immMask() uint64
}

// kindLayout overrides the form's immediate kind for per-instruction variants.
type kindLayout interface {
	immKind() form.ImmKind
}

type specialLayout interface {
	special(id SpecialField, op uint64) (uint64, bool)
}

type dasmLayout interface {
	dasm(w *dasmWriter, x *extractor, op uint64)
}

type extractor struct {
	name       string
	l          layout
	fixedMask  uint64
	fixedValue uint64
}

var _ Extractor = (*extractor)(nil)

func newExtractor(name string, l layout) *extractor {
	return &extractor{name: name, l: l}
}

func (x *extractor) Name() string { return x.name }

func (x *extractor) Form() *form.Form { return x.l.form() }

func (x *extractor) FixedFieldMask() uint64 { return x.fixedMask }

func (x *extractor) FixedFieldValue() uint64 { return x.fixedValue }

func (x *extractor) Matches(op uint64) bool {
	return op&x.fixedMask == x.fixedValue&x.fixedMask
}

func (x *extractor) SpecialCaseClone(fixedMask, fixedValue uint64) Extractor {
	return &extractor{name: x.name, l: x.l, fixedMask: fixedMask, fixedValue: fixedValue}
}

// isFixed reports whether every bit of r's field is fixed by the mnemonic, in
// which case the field does not name a register operand at all.
func (x *extractor) isFixed(r regOperand) bool {
	if r.implied() || x.fixedMask == 0 {
		return false
	}
	return r.field.ShiftedMask()&^x.fixedMask == 0
}

// each calls fn for every register of ops that is not fixed, with its index.
// Field values are taken from op with the fixed bits blanked.
func (x *extractor) each(ops []regOperand, op uint64, fn func(r regOperand, index uint64)) {
	blanked := op &^ x.fixedMask
	for _, r := range ops {
		if x.isFixed(r) {
			continue
		}
		if r.implied() {
			fn(r, r.index)
			continue
		}
		fn(r, r.field.Extract(blanked)+r.bias)
	}
}

func (x *extractor) regs(ops []regOperand, op uint64, keep func(r regOperand) bool) RegSet {
	var set RegSet
	x.each(ops, op, func(r regOperand, index uint64) {
		if keep == nil || keep(r) {
			set |= regBit(index)
		}
	})
	return set
}

func (x *extractor) SourceRegs(op uint64) RegSet {
	return x.regs(x.l.sources(op), op, nil)
}

func (x *extractor) DestRegs(op uint64) RegSet {
	return x.regs(x.l.dests(op), op, nil)
}

func hasStoreData(ops []regOperand) bool {
	for _, r := range ops {
		if r.storeData {
			return true
		}
	}
	return false
}

func (x *extractor) SourceAddressRegs(op uint64) RegSet {
	srcs := x.l.sources(op)
	if !hasStoreData(srcs) {
		return x.regs(srcs, op, nil)
	}
	return x.regs(srcs, op, func(r regOperand) bool { return !r.storeData })
}

func (x *extractor) SourceDataRegs(op uint64) RegSet {
	srcs := x.l.sources(op)
	if !hasStoreData(srcs) {
		return x.regs(srcs, op, nil)
	}
	return x.regs(srcs, op, func(r regOperand) bool { return r.storeData })
}

// operTypeRegs keeps the registers of ops whose declared type is kind. When
// every operand has that type the full set, implied registers included, is
// returned; otherwise only encoded fields are consulted.
func (x *extractor) operTypeRegs(ops []regOperand, op uint64, md Metadata, kind meta.OperandType) RegSet {
	if md == nil || md.IsNoneOperandType(kind) {
		return 0
	}
	if md.IsAllOperandType(kind) {
		return x.regs(ops, op, nil)
	}
	return x.regs(ops, op, func(r regOperand) bool {
		return !r.implied() && md.IsOperandType(r.id, kind)
	})
}

func (x *extractor) SourceOperTypeRegs(op uint64, md Metadata, kind meta.OperandType) RegSet {
	return x.operTypeRegs(x.l.sources(op), op, md, kind)
}

func (x *extractor) DestOperTypeRegs(op uint64, md Metadata, kind meta.OperandType) RegSet {
	return x.operTypeRegs(x.l.dests(op), op, md, kind)
}

func operandType(md Metadata, id meta.OperandFieldID) meta.OperandType {
	if md == nil {
		return meta.OperandNone
	}
	return md.OperandType(id)
}

// operandInfo lists ops in declaration order. With suppressX0, encoded
// integer (or untyped) operands naming x0 are left out; x0 is hard-wired to
// zero so such operands carry no dependency. f0 and v0 are never suppressed.
func (x *extractor) operandInfo(ops []regOperand, op uint64, md Metadata, suppressX0 bool) operand.Info {
	var info operand.Info
	x.each(ops, op, func(r regOperand, index uint64) {
		typ := operandType(md, r.id)
		if suppressX0 && index == 0 && !r.implied() && (typ == meta.OperandNone || typ.IsInteger()) {
			return
		}
		info.MustAdd(operand.Element{
			FieldID:     r.id,
			Type:        typ,
			Value:       uint32(index),
			IsStoreData: r.storeData,
			IsImplied:   r.implied(),
		})
	})
	return info
}

func (x *extractor) SourceOperandInfo(op uint64, md Metadata, suppressX0 bool) operand.Info {
	return x.operandInfo(x.l.sources(op), op, md, suppressX0)
}

func (x *extractor) DestOperandInfo(op uint64, md Metadata, suppressX0 bool) operand.Info {
	return x.operandInfo(x.l.dests(op), op, md, suppressX0)
}

func (x *extractor) ImmediateType() form.ImmKind {
	if kl, ok := x.l.(kindLayout); ok {
		return kl.immKind()
	}
	return x.l.form().ImmediateKind()
}

func (x *extractor) Immediate(op uint64) uint64 {
	if il, ok := x.l.(immLayout); ok {
		return il.immediate(op)
	}
	return 0
}

func (x *extractor) SignedOffset(op uint64) int64 {
	il, ok := x.l.(immLayout)
	if !ok {
		return 0
	}
	imm := il.immediate(op)
	if x.ImmediateType() != form.ImmSigned || il.immWidth() == 0 {
		return int64(imm)
	}
	return int64(signExtend(imm, il.immWidth()-1))
}

func (x *extractor) SpecialField(id SpecialField, op uint64) (uint64, error) {
	if sl, ok := x.l.(specialLayout); ok {
		if v, ok := sl.special(id, op); ok {
			return v, nil
		}
	}
	return 0, &UnsupportedSpecialFieldError{Extractor: x.name, Field: id}
}

func (x *extractor) Dasm(mnemonic string, op uint64) string {
	return x.DasmWithMeta(mnemonic, op, nil)
}

func (x *extractor) DasmWithMeta(mnemonic string, op uint64, md Metadata) string {
	w := newDasmWriter(mnemonic, md)
	if dl, ok := x.l.(dasmLayout); ok {
		dl.dasm(w, x, op)
	} else {
		x.defaultDasm(w, op)
	}
	return w.String()
}

// defaultDasm prints encoded destinations, then encoded sources, then the immediate.
func (x *extractor) defaultDasm(w *dasmWriter, op uint64) {
	x.dasmRegs(w, x.l.dests(op), op)
	x.dasmRegs(w, x.l.sources(op), op)
	x.dasmImm(w, op)
}

func (x *extractor) dasmRegs(w *dasmWriter, ops []regOperand, op uint64) {
	x.each(ops, op, func(r regOperand, index uint64) {
		if !r.implied() {
			w.reg(r.id, index)
		}
	})
}

// dasmImm prints nothing when every immediate bit is fixed by the mnemonic.
func (x *extractor) dasmImm(w *dasmWriter, op uint64) {
	if il, ok := x.l.(immLayout); ok && x.fixedMask != 0 {
		if m := il.immMask(); m != 0 && m&^x.fixedMask == 0 {
			return
		}
	}
	switch x.ImmediateType() {
	case form.ImmSigned:
		w.offset(x.SignedOffset(op))
	case form.ImmUnsigned:
		w.hex(x.Immediate(op))
	}
}

func (x *extractor) String() string {
	if x.fixedMask == 0 {
		return x.name
	}
	return fmt.Sprintf("%s[fixed=%#x]", x.name, x.fixedMask)
}
