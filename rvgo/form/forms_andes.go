package form

// AndeStar V5 custom encodings. The GP-relative loads and stores of Custom-0
// (opcode 0001011) and Custom-1 (opcode 0101011) spread an 18 to 20 bit
// immediate over the word in an order unrelated to its logical bit order.
// The concat fields below list the chunks lowest logical bits first.
//
// Custom-0 load/addi layout, instruction bits to immediate bits:
//
//	31       30:21      20       19:17      16:15      14
//	imm[17]  imm[10:1]  imm[11]  imm[14:12] imm[16:15] imm[0]
//
// Read as an 18-bit source value (instruction bits 31:14), source bit 17 maps
// to imm[17], 16:7 to imm[10:1], 6 to imm[11], 5:3 to imm[14:12], 2:1 to
// imm[16:15] and 0 to imm[0].

var (
	aImm17    = NewField("imm17", 31, 1)
	aImm10_1  = NewField("imm10_1", 21, 10)
	aImm11    = NewField("imm11", 20, 1)
	aImm14_12 = NewField("imm14_12", 17, 3)
	aImm16_15 = NewField("imm16_15", 15, 2)
	aImm0     = NewField("imm0", 14, 1)
	aFunc2    = NewField("func2", 12, 2)
)

var AndesCustom0 = newForm("AndeStar_Custom_0", 32, ImmSigned,
	[]*Field{aImm17, aImm10_1, aImm11, aImm14_12, aImm16_15, aImm0, aFunc2, fRd, fOpcode},
	withOpcodeFields("opcode", "func2"),
	withConcat(NewConcatField("imm", aImm0, aImm10_1, aImm11, aImm14_12, aImm16_15, aImm17)),
)

// AndeStar_Custom_0_S is sbgp:
//
//	31       30:25      24:20  19:17      16:15      14      11:8      7
//	imm[17]  imm[10:5]  rs2    imm[14:12] imm[16:15] imm[0]  imm[4:1]  imm[11]
var AndesCustom0S = newForm("AndeStar_Custom_0_S", 32, ImmSigned,
	[]*Field{
		aImm17,
		NewField("imm10_5", 25, 6),
		fRs2, aImm14_12, aImm16_15, aImm0, aFunc2,
		NewField("imm4_1", 8, 4),
		NewField("imm11", 7, 1),
		fOpcode,
	},
	withOpcodeFields("opcode", "func2"),
	withConcat(NewConcatField("imm",
		aImm0,
		NewField("imm4_1", 8, 4),
		NewField("imm10_5", 25, 6),
		NewField("imm11", 7, 1),
		aImm14_12, aImm16_15, aImm17,
	)),
)

// Custom-1 fields are named by instruction bit position because their meaning
// depends on the access size:
//
//	        31       30:21                       20       19:17      16:15
//	lhgp    imm[17]  imm[10:1]                   imm[11]  imm[14:12] imm[16:15]
//	lwgp    imm[18]  imm[10:2] (30:22) imm[17]   imm[11]  imm[14:12] imm[16:15]
//	ldgp    imm[19]  imm[10:3] (30:23) imm[18:17] imm[11] imm[14:12] imm[16:15]
var (
	b31    = NewField("b31", 31, 1)
	b30_21 = NewField("b30_21", 21, 10)
	b20    = NewField("b20", 20, 1)
	b19_17 = NewField("b19_17", 17, 3)
	b16_15 = NewField("b16_15", 15, 2)
)

var AndesCustom1 = newForm("AndeStar_Custom_1", 32, ImmSigned,
	[]*Field{b31, b30_21, b20, b19_17, b16_15, fFunc3, fRd, fOpcode},
	withOpcodeFields("opcode", "func3"),
	withConcat(NewConcatField("imm_h", b30_21, b20, b19_17, b16_15, b31)),
	withConcat(NewConcatField("imm_w",
		NewField("b30_22", 22, 9), b20, b19_17, b16_15,
		NewField("b21", 21, 1), b31,
	)),
	withConcat(NewConcatField("imm_d",
		NewField("b30_23", 23, 8), b20, b19_17, b16_15,
		NewField("b22_21", 21, 2), b31,
	)),
)

// Custom-1 stores:
//
//	        31       30:25      19:17      16:15      11:8                      7
//	shgp    imm[17]  imm[10:5]  imm[14:12] imm[16:15] imm[4:1]                  imm[11]
//	swgp    imm[18]  imm[10:5]  imm[14:12] imm[16:15] imm[4:2] (11:9) imm[17]   imm[11]
//	sdgp    imm[19]  imm[10:5]  imm[14:12] imm[16:15] imm[4:3] (11:10) imm[18:17] imm[11]
var (
	b30_25 = NewField("b30_25", 25, 6)
	b7     = NewField("b7", 7, 1)
)

var AndesCustom1S = newForm("AndeStar_Custom_1_S", 32, ImmSigned,
	[]*Field{b31, b30_25, fRs2, b19_17, b16_15, fFunc3, NewField("b11_8", 8, 4), b7, fOpcode},
	withOpcodeFields("opcode", "func3"),
	withConcat(NewConcatField("imm_h", NewField("b11_8", 8, 4), b30_25, b7, b19_17, b16_15, b31)),
	withConcat(NewConcatField("imm_w",
		NewField("b11_9", 9, 3), b30_25, b7, b19_17, b16_15,
		NewField("b8", 8, 1), b31,
	)),
	withConcat(NewConcatField("imm_d",
		NewField("b11_10", 10, 2), b30_25, b7, b19_17, b16_15,
		NewField("b9_8", 8, 2), b31,
	)),
)

// AndeStar_Custom_2 is the bit-field extract shape (bfos, bfoz).
var AndesCustom2 = newForm("AndeStar_Custom_2", 32, ImmNone,
	[]*Field{NewField("msb", 26, 6), NewField("lsb", 20, 6), fRs1, fFunc3, fRd, fOpcode},
	withOpcodeFields("opcode", "func3"),
)

var (
	aBImm10   = NewField("imm10", 31, 1)
	aBImm9_5  = NewField("imm9_5", 25, 5)
	aBCimm4_0 = NewField("cimm4_0", 20, 5)
	aBImm4_1  = NewField("imm4_1", 8, 4)
	aBCimm5   = NewField("cimm5", 7, 1)
)

// AndeStar_Custom_2_BBx is branch on bit clear/set (bbc, bbs):
//
//	31       30     29:25     24:20      19:15  14:12  11:8      7
//	imm[10]  func1  imm[9:5]  cimm[4:0]  rs1    func3  imm[4:1]  cimm[5]
var AndesCustom2BBx = newForm("AndeStar_Custom_2_BBx", 32, ImmSigned,
	[]*Field{aBImm10, NewField("func1", 30, 1), aBImm9_5, aBCimm4_0, fRs1, fFunc3, aBImm4_1, aBCimm5, fOpcode},
	withOpcodeFields("opcode", "func3", "func1"),
	withConcat(NewConcatField("imm", aBImm4_1, aBImm9_5, aBImm10)),
	withConcat(NewConcatField("cimm", aBCimm4_0, aBCimm5)),
)

// AndeStar_Custom_2_BxC is branch on (not) equal constant (beqc, bnec). Bit 30
// carries cimm[6].
var AndesCustom2BxC = newForm("AndeStar_Custom_2_BxC", 32, ImmSigned,
	[]*Field{aBImm10, NewField("cimm6", 30, 1), aBImm9_5, aBCimm4_0, fRs1, fFunc3, aBImm4_1, aBCimm5, fOpcode},
	withOpcodeFields("opcode", "func3"),
	withConcat(NewConcatField("imm", aBImm4_1, aBImm9_5, aBImm10)),
	withConcat(NewConcatField("cimm", aBCimm4_0, aBCimm5, NewField("cimm6", 30, 1))),
)

// AndeStar_Custom_2_XDEF is the register-register shape of the remaining
// Custom-2 instructions (lea.*, ffb, ffzmism, ffmism, flmism).
var AndesCustom2XDEF = newForm("AndeStar_Custom_2_XDEF", 32, ImmNone,
	[]*Field{fFunc7, fRs2, fRs1, fFunc3, fRd, fOpcode},
	withOpcodeFields("opcode", "func3", "func7"),
)
