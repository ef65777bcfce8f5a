package extract

import (
	"github.com/ethereum-optimism/rvform/rvgo/form"
)

func stdLayouts() []namedLayout {
	r := build(form.R)
	rf := build(form.Rfloat)
	r4 := build(form.R4)
	i := build(form.I)
	ish := build(form.ISH)
	ishw := build(form.ISHW)
	s := build(form.S)
	b := build(form.B)
	u := build(form.U)
	j := build(form.J)
	csr := build(form.CSR)
	csri := build(form.CSRI)
	fence := build(form.FENCE)
	amo := build(form.AMO)
	return []namedLayout{
		named(r.src(r.rs1(), r.rs2()).dst(r.rd()).done()),
		named(rf.src(rf.rs1(), rf.rs2()).dst(rf.rd()).special(SpecialRM, "rm").done()),
		named(r4.src(r4.rs1(), r4.rs2(), r4.rs3()).dst(r4.rd()).special(SpecialRM, "rm").done()),
		named(i.src(i.rs1()).dst(i.rd()).imm("imm", 0).done()),
		named(ish.src(ish.rs1()).dst(ish.rd()).imm("shamt", 0).done()),
		named(ishw.src(ishw.rs1()).dst(ishw.rd()).imm("shamtw", 0).done()),
		named(s.src(s.rs1(), storeData(s.rs2())).imm("imm", 0).done()),
		named(b.src(b.rs1(), b.rs2()).imm("imm", 1).done()),
		named(u.dst(u.rd()).imm("imm", 12).done()),
		named(j.dst(j.rd()).imm("imm", 1).done()),
		named(&csrLayout{csr.src(csr.rs1()).dst(csr.rd()).special(SpecialCSR, "csr").done()}),
		named(&csrLayout{csri.dst(csri.rd()).imm("uimm", 0).special(SpecialCSR, "csr").done()}),
		named(&fenceLayout{fence.
			special(SpecialFM, "fm").
			special(SpecialPred, "pred").
			special(SpecialSucc, "succ").
			done()}),
		named(amo.src(amo.rs1(), storeData(amo.rs2())).dst(amo.rd()).
			special(SpecialAQ, "aq").
			special(SpecialRL, "rl").
			special(SpecialWD, "wd").
			special(SpecialVM, "vm").
			done()),
	}
}

// csrLayout renders "rd, csr, rs1" or "rd, csr, uimm".
type csrLayout struct {
	*basic
}

func (l *csrLayout) dasm(w *dasmWriter, x *extractor, op uint64) {
	x.dasmRegs(w, l.dests(op), op)
	csr, _ := l.special(SpecialCSR, op)
	w.hex(csr)
	x.dasmRegs(w, l.sources(op), op)
	x.dasmImm(w, op)
}

// fenceLayout renders the predecessor and successor sets as in "fence rw, w".
type fenceLayout struct {
	*basic
}

func fenceSet(v uint64) string {
	if v == 0 {
		return "0"
	}
	var out []byte
	for i, c := range "iorw" {
		if v&(8>>i) != 0 {
			out = append(out, byte(c))
		}
	}
	return string(out)
}

func (l *fenceLayout) dasm(w *dasmWriter, _ *extractor, op uint64) {
	pred, _ := l.special(SpecialPred, op)
	succ, _ := l.special(SpecialSucc, op)
	w.text(fenceSet(pred))
	w.text(fenceSet(succ))
}
