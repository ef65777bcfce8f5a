package extract

import (
	"github.com/ethereum-optimism/rvform/rvgo/form"
	"github.com/ethereum-optimism/rvform/rvgo/meta"
	"github.com/ethereum-optimism/rvform/rvgo/riscv"
)

// Vector sources are declared vs2 before vs1 so they print in assembler order.
func vectorLayouts() []namedLayout {
	vs := build(form.VSetvli)
	vsi := build(form.VSetivli)
	vsl := build(form.VSetvl)
	vu := build(form.VUimm6)
	return []namedLayout{
		named(newVArithLayout()),
		xform("V_simm5", &vImmLayout{vArithLayout: newVArithLayout()}),
		named(newVMemLayout()),
		named(vs.src(vs.rs1()).dst(vs.rd()).imm("imm11", 0).done()),
		named(&vsetivliLayout{vsi.dst(vsi.rd()).imm("imm10", 0).special(SpecialAVL, "avl").done()}),
		named(vsl.src(vsl.rs1(), vsl.rs2()).dst(vsl.rd()).done()),
		named(&vecLayout{vu.src(vu.rs2()).dst(vu.rd()).imm("imm", 0).special(SpecialVM, "vm").done()}),
	}
}

// vecLayout appends the "v0.t" mask operand when vm is clear.
type vecLayout struct {
	*basic
}

func (l *vecLayout) dasm(w *dasmWriter, x *extractor, op uint64) {
	x.defaultDasm(w, op)
	if vm, _ := l.special(SpecialVM, op); vm == 0 {
		w.text("v0.t")
	}
}

// vArithLayout drops rs1 from the sources of the OPIVI encodings, where
// those bits are an immediate.
type vArithLayout struct {
	vecLayout
	opivi []regOperand
	func3 *form.Field
}

func newVArithLayout() *vArithLayout {
	v := build(form.V)
	return &vArithLayout{
		vecLayout: vecLayout{v.src(v.rs2(), v.rs1()).dst(v.rd()).special(SpecialVM, "vm").done()},
		opivi:     []regOperand{v.rs2()},
		func3:     v.fld("func3"),
	}
}

func (l *vArithLayout) sources(op uint64) []regOperand {
	if l.func3.Extract(op) == riscv.Funct3OPIVI {
		return l.opivi
	}
	return l.src
}

// vImmLayout is the V shape of the .vi instructions, whose rs1 bits are a
// signed 5-bit immediate.
type vImmLayout struct {
	*vArithLayout
}

func (l *vImmLayout) immKind() form.ImmKind { return form.ImmSigned }

func (l *vImmLayout) immediate(op uint64) uint64 {
	return l.form().MustField("rs1").Extract(op)
}

func (l *vImmLayout) immWidth() uint { return 5 }

func (l *vImmLayout) immMask() uint64 { return l.form().MustField("rs1").ShiftedMask() }

// vMemLayout tells loads from stores by the major opcode. Unit-stride
// accesses (mop 0) hold lumop/sumop rather than a register in the rs2 bits.
type vMemLayout struct {
	vecLayout
	mop       *form.Field
	unitLoad  []regOperand
	unitStore []regOperand
	store     []regOperand
}

func newVMemLayout() *vMemLayout {
	v := build(form.VFMem)
	vs3 := storeData(reg(meta.RS3, v.fld("vs3")))
	return &vMemLayout{
		vecLayout: vecLayout{v.src(v.rs1(), v.rs2()).dst(v.rd()).
			special(SpecialNF, "nf").
			special(SpecialVM, "vm").
			done()},
		mop:       v.fld("mop"),
		unitLoad:  []regOperand{v.rs1()},
		unitStore: []regOperand{vs3, v.rs1()},
		store:     []regOperand{vs3, v.rs1(), v.rs2()},
	}
}

func vMemIsStore(op uint64) bool { return op&riscv.OpcodeMask == riscv.OpcodeStoreFP }

func (l *vMemLayout) sources(op uint64) []regOperand {
	unit := l.mop.Extract(op) == 0
	switch {
	case vMemIsStore(op) && unit:
		return l.unitStore
	case vMemIsStore(op):
		return l.store
	case unit:
		return l.unitLoad
	default:
		return l.src
	}
}

func (l *vMemLayout) dests(op uint64) []regOperand {
	if vMemIsStore(op) {
		return nil
	}
	return l.dst
}

// vsetivliLayout renders "rd, avl, vtypei".
type vsetivliLayout struct {
	*basic
}

func (l *vsetivliLayout) dasm(w *dasmWriter, x *extractor, op uint64) {
	x.dasmRegs(w, l.dests(op), op)
	avl, _ := l.special(SpecialAVL, op)
	w.hex(avl)
	w.hex(l.immediate(op))
}
