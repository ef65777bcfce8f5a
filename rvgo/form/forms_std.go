package form

// Fields shared by the 32-bit base encodings.
var (
	fOpcode = NewField("opcode", 0, 7)
	fRd     = NewField("rd", 7, 5)
	fFunc3  = NewField("func3", 12, 3)
	fRs1    = NewField("rs1", 15, 5)
	fRs2    = NewField("rs2", 20, 5)
	fFunc7  = NewField("func7", 25, 7)
	fRm     = NewField("rm", 12, 3)
	fImm7   = NewField("imm7", 25, 7)
	fImm5   = NewField("imm5", 7, 5)
)

var R = newForm("R", 32, ImmNone,
	[]*Field{fFunc7, fRs2, fRs1, fFunc3, fRd, fOpcode},
	withOpcodeFields("opcode", "func3", "func7"),
)

var Rfloat = newForm("Rfloat", 32, ImmNone,
	[]*Field{fFunc7, fRs2, fRs1, fRm, fRd, fOpcode},
	withOpcodeFields("opcode", "func7"),
)

var R4 = newForm("R4", 32, ImmNone,
	[]*Field{
		NewField("rs3", 27, 5),
		NewField("func2", 25, 2),
		fRs2, fRs1, fRm, fRd, fOpcode,
	},
	withOpcodeFields("opcode", "func2"),
)

var I = newForm("I", 32, ImmSigned,
	[]*Field{NewField("imm", 20, 12), fRs1, fFunc3, fRd, fOpcode},
	withOpcodeFields("opcode", "func3"),
)

var ISH = newForm("ISH", 32, ImmUnsigned,
	[]*Field{
		NewField("func6", 26, 6),
		NewField("shamt", 20, 6),
		fRs1, fFunc3, fRd, fOpcode,
	},
	withOpcodeFields("opcode", "func3", "func6"),
)

var ISHW = newForm("ISHW", 32, ImmUnsigned,
	[]*Field{
		fFunc7,
		NewField("shamtw", 20, 5),
		fRs1, fFunc3, fRd, fOpcode,
	},
	withOpcodeFields("opcode", "func3", "func7"),
)

var S = newForm("S", 32, ImmSigned,
	[]*Field{fImm7, fRs2, fRs1, fFunc3, fImm5, fOpcode},
	withOpcodeFields("opcode", "func3"),
	withConcat(NewConcatField("imm", fImm5, fImm7)),
)

// B scrambles imm[12|10:5] into imm7 and imm[4:1|11] into imm5. The concat
// field "imm" yields imm[12:1].
var B = newForm("B", 32, ImmSigned,
	[]*Field{fImm7, fRs2, fRs1, fFunc3, fImm5, fOpcode},
	withOpcodeFields("opcode", "func3"),
	withConcat(NewConcatField("imm",
		NewField("imm[4:1]", 8, 4),
		NewField("imm[10:5]", 25, 6),
		NewField("imm[11]", 7, 1),
		NewField("imm[12]", 31, 1),
	)),
)

var U = newForm("U", 32, ImmSigned,
	[]*Field{NewField("imm", 12, 20), fRd, fOpcode},
	withOpcodeFields("opcode"),
)

// J: the concat field "imm" yields imm[20:1].
var J = newForm("J", 32, ImmSigned,
	[]*Field{NewField("imm20", 12, 20), fRd, fOpcode},
	withOpcodeFields("opcode"),
	withConcat(NewConcatField("imm",
		NewField("imm[10:1]", 21, 10),
		NewField("imm[11]", 20, 1),
		NewField("imm[19:12]", 12, 8),
		NewField("imm[20]", 31, 1),
	)),
)

var fCSR = NewField("csr", 20, 12)

var CSR = newForm("CSR", 32, ImmNone,
	[]*Field{fCSR, fRs1, fFunc3, fRd, fOpcode},
	withOpcodeFields("opcode", "func3"),
)

var CSRI = newForm("CSRI", 32, ImmUnsigned,
	[]*Field{fCSR, NewField("uimm", 15, 5), fFunc3, fRd, fOpcode},
	withOpcodeFields("opcode", "func3"),
)

var FENCE = newForm("FENCE", 32, ImmNone,
	[]*Field{
		NewField("fm", 28, 4),
		NewField("pred", 24, 4),
		NewField("succ", 20, 4),
		fRs1, fFunc3, fRd, fOpcode,
	},
	withOpcodeFields("opcode", "func3", "fm"),
)

// AMO also serves the vector AMO encodings, which reuse aq as wd and rl as vm.
var AMO = newForm("AMO", 32, ImmNone,
	[]*Field{
		NewField("func5", 27, 5),
		NewField("aq", 26, 1),
		NewField("rl", 25, 1),
		fRs2, fRs1, fFunc3, fRd, fOpcode,
	},
	withAlias("wd", "aq"),
	withAlias("vm", "rl"),
	withOpcodeFields("opcode", "func3", "func5"),
)
