package extract

import (
	"github.com/ethereum-optimism/rvform/rvgo/form"
	"github.com/ethereum-optimism/rvform/rvgo/meta"
	"github.com/ethereum-optimism/rvform/rvgo/riscv"
)

func rvcLayouts() []namedLayout {
	return []namedLayout{
		named(newC0Layout("imm", 2)),
		xform("C0_D", newC0Layout("imm_d", 3)),
		named(func() layout {
			c := build(form.C1)
			return c.src(c.rs1()).dst(c.rd()).imm("imm", 0).done()
		}()),
		named(func() layout {
			c := build(form.C2)
			return c.src(c.rs1()).dst(c.rd()).imm("imm", 0).done()
		}()),
		named(func() layout {
			c := build(form.CA)
			return c.src(creg(meta.RS1, c.fld("rs1")), creg(meta.RS2, c.fld("rs2"))).
				dst(creg(meta.RD, c.fld("rd"))).done()
		}()),
		named(func() layout {
			c := build(form.CB)
			return c.src(creg(meta.RS1, c.fld("rs1"))).imm("imm", 1).done()
		}()),
		named(newCILayout("imm", 2)),
		xform("CI_D", newCILayout("imm_d", 3)),
		named(func() layout {
			c := build(form.CIrDOnly)
			return c.dst(c.rd()).imm("imm", 0).done()
		}()),
		xform("CI_rD_only_LUI", func() layout {
			c := build(form.CIrDOnly)
			return c.dst(c.rd()).imm("imm", 12).done()
		}()),
		// c.addi16sp: rd is fixed to 2 by the mnemonic, so sp is implied both ways.
		xform("CI_rD_only_SP", build(form.CIrDOnly).
			src(impliedReg(meta.RS1, riscv.RegSP)).
			dst(impliedReg(meta.RD, riscv.RegSP)).
			imm("imm_sp", 4).done()),
		named(func() layout {
			c := build(form.CIW)
			return c.src(impliedReg(meta.RS1, riscv.RegSP)).dst(creg(meta.RD, c.fld("rd"))).imm("imm", 2).done()
		}()),
		named(func() layout {
			c := build(form.CIX)
			return c.src(creg(meta.RS1, c.fld("rs1"))).dst(creg(meta.RD, c.fld("rd"))).imm("imm", 0).done()
		}()),
		named(&cjLayout{
			basic: build(form.CJ).imm("imm", 1).done(),
			link:  []regOperand{impliedReg(meta.RD, riscv.RegRA)},
		}),
		named(func() layout {
			c := build(form.CJR)
			return &cjrLayout{
				basic: c.src(c.rs1()).done(),
				link:  []regOperand{impliedReg(meta.RD, riscv.RegRA)},
			}
		}()),
		named(func() layout {
			c := build(form.CR)
			return &crLayout{
				basic: c.src(c.rs2()).dst(c.rd()).done(),
				add:   []regOperand{c.rs1(), c.rs2()},
			}
		}()),
		named(newCSSLayout("imm", 2)),
		xform("CSS_D", newCSSLayout("imm_d", 3)),
	}
}

// c0Layout switches between load and store shapes on func3[2] (bit 15).
type c0Layout struct {
	*basic
	store []regOperand
}

func newC0Layout(imm string, shift uint) *c0Layout {
	c := build(form.C0)
	rs1 := creg(meta.RS1, c.fld("rs1"))
	return &c0Layout{
		basic: c.src(rs1).dst(creg(meta.RD, c.fld("rd"))).imm(imm, shift).done(),
		store: []regOperand{rs1, storeData(creg(meta.RS2, c.fld("rs2")))},
	}
}

func c0IsStore(op uint64) bool { return op&(1<<15) != 0 }

func (l *c0Layout) sources(op uint64) []regOperand {
	if c0IsStore(op) {
		return l.store
	}
	return l.src
}

func (l *c0Layout) dests(op uint64) []regOperand {
	if c0IsStore(op) {
		return nil
	}
	return l.dst
}

func newCILayout(imm string, shift uint) *basic {
	c := build(form.CI)
	return c.src(impliedReg(meta.RS1, riscv.RegSP)).dst(c.rd()).imm(imm, shift).done()
}

func newCSSLayout(imm string, shift uint) *basic {
	c := build(form.CSS)
	return c.src(impliedReg(meta.RS1, riscv.RegSP), storeData(c.rs2())).imm(imm, shift).done()
}

// cjLayout: c.jal (func3 001) links through x1, c.j does not.
type cjLayout struct {
	*basic
	link []regOperand
}

func (l *cjLayout) dests(op uint64) []regOperand {
	if (op>>13)&7 == 1 {
		return l.link
	}
	return nil
}

// cjrLayout: c.jalr sets bit 12 and links through x1, c.jr does not.
// c.ebreak shares the encoding with rs1 zero and links nothing.
type cjrLayout struct {
	*basic
	link []regOperand
}

func (l *cjrLayout) dests(op uint64) []regOperand {
	if op&(1<<12) != 0 && (op>>7)&0x1f != 0 {
		return l.link
	}
	return nil
}

// crLayout: c.add sets bit 12 and also reads rd, c.mv only reads rs2.
type crLayout struct {
	*basic
	add []regOperand
}

func (l *crLayout) sources(op uint64) []regOperand {
	if op&(1<<12) != 0 {
		return l.add
	}
	return l.src
}
