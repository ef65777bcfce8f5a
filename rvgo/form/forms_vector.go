package form

var (
	vVM    = NewField("vm", 25, 1)
	vFunc6 = NewField("func6", 26, 6)
	vBit31 = NewField("bit31", 31, 1)
)

// V is the OP-V arithmetic shape. rs1 holds vs1, rs1 or a 5-bit immediate
// depending on func3; rs2 holds vs2.
var V = newForm("V", 32, ImmNone,
	[]*Field{vFunc6, vVM, fRs2, fRs1, fFunc3, fRd, fOpcode},
	withOpcodeFields("opcode", "func3", "func6"),
)

// VF_mem is the vector load/store shape. Stores read vs3 from the rd bits;
// unit-stride accesses put lumop/sumop in the rs2 bits.
var VFMem = newForm("VF_mem", 32, ImmNone,
	[]*Field{
		NewField("nf", 29, 3),
		NewField("mew", 28, 1),
		NewField("mop", 26, 2),
		vVM, fRs2, fRs1,
		NewField("width", 12, 3),
		fRd, fOpcode,
	},
	withAlias("vs3", "rd"),
	withAlias("lumop", "rs2"),
	withOpcodeFields("opcode", "width", "mop", "mew"),
)

var VSetvli = newForm("V_vsetvli", 32, ImmUnsigned,
	[]*Field{vBit31, NewField("imm11", 20, 11), fRs1, fFunc3, fRd, fOpcode},
	withOpcodeFields("opcode", "func3", "bit31"),
)

var VSetivli = newForm("V_vsetivli", 32, ImmUnsigned,
	[]*Field{
		NewField("bit31_30", 30, 2),
		NewField("imm10", 20, 10),
		NewField("avl", 15, 5),
		fFunc3, fRd, fOpcode,
	},
	withOpcodeFields("opcode", "func3", "bit31_30"),
)

var VSetvl = newForm("V_vsetvl", 32, ImmNone,
	[]*Field{vBit31, NewField("func6", 25, 6), fRs2, fRs1, fFunc3, fRd, fOpcode},
	withOpcodeFields("opcode", "func3", "bit31", "func6"),
)

// V_uimm6 carries a 6-bit unsigned immediate split as i5 (bit 26) and uimm5 (19:15), as in vror.vi.
var VUimm6 = newForm("V_uimm6", 32, ImmUnsigned,
	[]*Field{
		NewField("func5", 27, 5),
		NewField("i5", 26, 1),
		vVM, fRs2,
		NewField("uimm5", 15, 5),
		fFunc3, fRd, fOpcode,
	},
	withOpcodeFields("opcode", "func3", "func5"),
	withConcat(NewConcatField("imm", NewField("uimm5", 15, 5), NewField("i5", 26, 1))),
)
