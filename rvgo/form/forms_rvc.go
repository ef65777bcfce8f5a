package form

// Compressed (RVC) forms. All are 16 bits wide. Three-bit register fields
// (rs1', rs2', rd') name x8..x15; the extractors apply the bias.

var (
	cOpcode = NewField("opcode", 0, 2)
	cFunc3  = NewField("func3", 13, 3)
	cFunc4  = NewField("func4", 12, 4)
	cImm1   = NewField("imm1", 12, 1)
	cImm5   = NewField("imm5", 2, 5)
	cRd5    = NewField("rd", 7, 5)
	cRs2_5  = NewField("rs2", 2, 5)
	cRs1_3  = NewField("rs1", 7, 3)
	cRd3Lo  = NewField("rd", 2, 3)
)

// C0 is the quadrant-0 load/store shape (c.lw, c.sw, c.ld, c.sd, c.fld, ...).
// rd' of loads and rs2' of stores share bits 4:2.
var C0 = newForm("C0", 16, ImmUnsigned,
	[]*Field{cFunc3, NewField("imm3", 10, 3), cRs1_3, NewField("imm2", 5, 2), cRd3Lo, cOpcode},
	withAlias("rs2", "rd"),
	withOpcodeFields("opcode", "func3"),
	// uimm[6:2] of word accesses: uimm[5:3]=12:10, uimm[2]=6, uimm[6]=5.
	withConcat(NewConcatField("imm",
		NewField("uimm[2]", 6, 1),
		NewField("uimm[5:3]", 10, 3),
		NewField("uimm[6]", 5, 1),
	)),
	// uimm[7:3] of doubleword accesses: uimm[5:3]=12:10, uimm[7:6]=6:5.
	withConcat(NewConcatField("imm_d",
		NewField("uimm[5:3]", 10, 3),
		NewField("uimm[7:6]", 5, 2),
	)),
)

// C1 is the quadrant-1 register-immediate shape (c.addi, c.addiw).
var C1 = newForm("C1", 16, ImmSigned,
	[]*Field{cFunc3, cImm1, cRd5, cImm5, cOpcode},
	withAlias("rs1", "rd"),
	withOpcodeFields("opcode", "func3"),
	withConcat(NewConcatField("imm", cImm5, cImm1)),
)

// C2 is the quadrant-2 shift shape (c.slli): shamt[5]=12, shamt[4:0]=6:2.
var C2 = newForm("C2", 16, ImmUnsigned,
	[]*Field{cFunc3, cImm1, cRd5, cRs2_5, cOpcode},
	withAlias("rs1", "rd"),
	withAlias("imm5", "rs2"),
	withOpcodeFields("opcode", "func3"),
	withConcat(NewConcatField("imm", cRs2_5, cImm1)),
)

// CA is the register-register arithmetic shape (c.sub, c.xor, c.addw, ...).
var CA = newForm("CA", 16, ImmNone,
	[]*Field{
		NewField("func6", 10, 6),
		cRs1_3,
		NewField("func2", 5, 2),
		NewField("rs2", 2, 3),
		cOpcode,
	},
	withAlias("rd", "rs1"),
	withOpcodeFields("opcode", "func6", "func2"),
)

// CB is the compare-with-zero branch shape (c.beqz, c.bnez).
// offset[8|4:3] sits in 12:10 and offset[7:6|2:1|5] in 6:2.
var CB = newForm("CB", 16, ImmSigned,
	[]*Field{cFunc3, NewField("imm3", 10, 3), cRs1_3, cImm5, cOpcode},
	withOpcodeFields("opcode", "func3"),
	withConcat(NewConcatField("imm",
		NewField("imm[2:1]", 3, 2),
		NewField("imm[4:3]", 10, 2),
		NewField("imm[5]", 2, 1),
		NewField("imm[7:6]", 5, 2),
		NewField("imm[8]", 12, 1),
	)),
)

// CI is the stack-pointer relative load shape (c.lwsp, c.ldsp, c.flwsp, c.fldsp).
var CI = newForm("CI", 16, ImmUnsigned,
	[]*Field{cFunc3, cImm1, cRd5, cImm5, cOpcode},
	withOpcodeFields("opcode", "func3"),
	// uimm[7:2]: uimm[5]=12, uimm[4:2]=6:4, uimm[7:6]=3:2.
	withConcat(NewConcatField("imm",
		NewField("uimm[4:2]", 4, 3),
		NewField("uimm[5]", 12, 1),
		NewField("uimm[7:6]", 2, 2),
	)),
	// uimm[8:3]: uimm[5]=12, uimm[4:3]=6:5, uimm[8:6]=4:2.
	withConcat(NewConcatField("imm_d",
		NewField("uimm[4:3]", 5, 2),
		NewField("uimm[5]", 12, 1),
		NewField("uimm[8:6]", 2, 3),
	)),
)

// CI_rD_only is the CI shape without a source register (c.li). c.lui
// scales the same imm by 4096; c.addi16sp (rd 2) scrambles the bits as
// nzimm[9|4|6|8:7|5] and reads and writes sp.
var CIrDOnly = newForm("CI_rD_only", 16, ImmSigned,
	[]*Field{cFunc3, cImm1, cRd5, cImm5, cOpcode},
	withOpcodeFields("opcode", "func3"),
	withConcat(NewConcatField("imm", cImm5, cImm1)),
	// nzimm[9:4]: nzimm[4]=6, nzimm[5]=2, nzimm[6]=5, nzimm[8:7]=4:3, nzimm[9]=12.
	withConcat(NewConcatField("imm_sp",
		NewField("nzimm[4]", 6, 1),
		NewField("nzimm[5]", 2, 1),
		NewField("nzimm[6]", 5, 1),
		NewField("nzimm[8:7]", 3, 2),
		NewField("nzimm[9]", 12, 1),
	)),
)

// CIW is the wide-immediate shape of c.addi4spn: nzuimm[5:4|9:6|2|3] in 12:5.
var CIW = newForm("CIW", 16, ImmUnsigned,
	[]*Field{cFunc3, NewField("imm8", 5, 8), cRd3Lo, cOpcode},
	withOpcodeFields("opcode", "func3"),
	withConcat(NewConcatField("imm",
		NewField("uimm[2]", 6, 1),
		NewField("uimm[3]", 5, 1),
		NewField("uimm[5:4]", 11, 2),
		NewField("uimm[9:6]", 7, 4),
	)),
)

// CIX is the rd'/rs1' immediate shape (c.srli, c.srai, c.andi).
var CIX = newForm("CIX", 16, ImmSigned,
	[]*Field{cFunc3, cImm1, NewField("func2", 10, 2), cRs1_3, cImm5, cOpcode},
	withAlias("rd", "rs1"),
	withOpcodeFields("opcode", "func3", "func2"),
	withConcat(NewConcatField("imm", cImm5, cImm1)),
)

// CJ is the jump shape (c.j, c.jal): offset[11|4|9:8|10|6|7|3:1|5] in 12:2.
var CJ = newForm("CJ", 16, ImmSigned,
	[]*Field{cFunc3, NewField("imm11", 2, 11), cOpcode},
	withOpcodeFields("opcode", "func3"),
	withConcat(NewConcatField("imm",
		NewField("imm[3:1]", 3, 3),
		NewField("imm[4]", 11, 1),
		NewField("imm[5]", 2, 1),
		NewField("imm[6]", 7, 1),
		NewField("imm[7]", 6, 1),
		NewField("imm[9:8]", 9, 2),
		NewField("imm[10]", 8, 1),
		NewField("imm[11]", 12, 1),
	)),
)

// CJR is the register jump shape (c.jr, c.jalr). rs2 is zero for both.
var CJR = newForm("CJR", 16, ImmNone,
	[]*Field{cFunc4, NewField("rs1", 7, 5), cRs2_5, cOpcode},
	withOpcodeFields("opcode", "func4", "rs2"),
)

// CR is the register move/add shape (c.mv, c.add).
var CR = newForm("CR", 16, ImmNone,
	[]*Field{cFunc4, cRd5, cRs2_5, cOpcode},
	withAlias("rs1", "rd"),
	withOpcodeFields("opcode", "func4"),
)

// CSS is the stack-pointer relative store shape (c.swsp, c.sdsp, ...).
var CSS = newForm("CSS", 16, ImmUnsigned,
	[]*Field{cFunc3, NewField("imm6", 7, 6), cRs2_5, cOpcode},
	withOpcodeFields("opcode", "func3"),
	// uimm[5:2|7:6] in 12:7.
	withConcat(NewConcatField("imm",
		NewField("uimm[5:2]", 9, 4),
		NewField("uimm[7:6]", 7, 2),
	)),
	// uimm[5:3|8:6] in 12:7.
	withConcat(NewConcatField("imm_d",
		NewField("uimm[5:3]", 10, 3),
		NewField("uimm[8:6]", 7, 3),
	)),
)
