package extract

import (
	"github.com/ethereum-optimism/rvform/rvgo/form"
	"github.com/ethereum-optimism/rvform/rvgo/meta"
	"github.com/ethereum-optimism/rvform/rvgo/riscv"
)

// The GP-relative AndeStar accesses read x3 without encoding it.
func gp() regOperand { return impliedReg(meta.RS1, riscv.RegGP) }

func andesLayouts() []namedLayout {
	c0 := build(form.AndesCustom0)
	c0s := build(form.AndesCustom0S)
	c2 := build(form.AndesCustom2)
	xdef := build(form.AndesCustom2XDEF)
	return []namedLayout{
		named(c0.src(gp()).dst(c0.rd()).imm("imm", 0).done()),
		named(c0s.src(gp(), storeData(c0s.rs2())).imm("imm", 0).done()),
		named(newGPLoadLayout("imm_h", 1)),
		xform("AndeStar_Custom_1_LW", newGPLoadLayout("imm_w", 2)),
		xform("AndeStar_Custom_1_LD", newGPLoadLayout("imm_d", 3)),
		named(newGPStoreLayout("imm_h", 1)),
		xform("AndeStar_Custom_1_SW", newGPStoreLayout("imm_w", 2)),
		xform("AndeStar_Custom_1_SD", newGPStoreLayout("imm_d", 3)),
		named(&bitFieldLayout{c2.src(c2.rs1()).dst(c2.rd()).
			special(SpecialMSB, "msb").
			special(SpecialLSB, "lsb").
			done()}),
		named(newBranchConstLayout(form.AndesCustom2BBx)),
		named(newBranchConstLayout(form.AndesCustom2BxC)),
		named(xdef.src(xdef.rs1(), xdef.rs2()).dst(xdef.rd()).done()),
	}
}

// newGPLoadLayout builds lhgp (the form default) and its wider xforms,
// which differ only in how the immediate chunks are read.
func newGPLoadLayout(imm string, shift uint) *basic {
	c := build(form.AndesCustom1)
	return c.src(gp()).dst(c.rd()).imm(imm, shift).done()
}

func newGPStoreLayout(imm string, shift uint) *basic {
	c := build(form.AndesCustom1S)
	return c.src(gp(), storeData(c.rs2())).imm(imm, shift).done()
}

// bitFieldLayout renders "rd, rs1, msb, lsb".
type bitFieldLayout struct {
	*basic
}

func (l *bitFieldLayout) dasm(w *dasmWriter, x *extractor, op uint64) {
	x.dasmRegs(w, l.dests(op), op)
	x.dasmRegs(w, l.sources(op), op)
	msb, _ := l.special(SpecialMSB, op)
	lsb, _ := l.special(SpecialLSB, op)
	w.hex(msb)
	w.hex(lsb)
}

// branchConstLayout compares rs1 against a constant (a bit number for
// bbc/bbs, a value for beqc/bnec) and renders "rs1, cimm, offset".
type branchConstLayout struct {
	*basic
}

func newBranchConstLayout(f *form.Form) *branchConstLayout {
	c := build(f)
	return &branchConstLayout{c.src(c.rs1()).imm("imm", 1).special(SpecialCIMM, "cimm").done()}
}

func (l *branchConstLayout) dasm(w *dasmWriter, x *extractor, op uint64) {
	x.dasmRegs(w, l.sources(op), op)
	cimm, _ := l.special(SpecialCIMM, op)
	w.hex(cimm)
	x.dasmImm(w, op)
}
