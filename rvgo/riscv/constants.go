package riscv

// ABI register numbers the decoder treats as implied operands.
const (
	RegZero = 0
	RegRA   = 1
	RegSP   = 2
	RegGP   = 3
)

// Major opcodes, bits [6:0] of a 32-bit instruction.
const (
	OpcodeLoadFP  = 0x07
	OpcodeCustom0 = 0x0b
	OpcodeStoreFP = 0x27
	OpcodeCustom1 = 0x2b
	OpcodeAMO     = 0x2f
	OpcodeOPV     = 0x57
	OpcodeCustom2 = 0x5b
	OpcodeSystem  = 0x73
	OpcodeCustom3 = 0x7b

	OpcodeMask = 0x7f
)

// OP-V funct3 categories.
const (
	Funct3OPIVV = 0
	Funct3OPFVV = 1
	Funct3OPMVV = 2
	Funct3OPIVI = 3
	Funct3OPIVX = 4
	Funct3OPFVF = 5
	Funct3OPMVX = 6
	Funct3OPCFG = 7
)

// IsCompressed reports whether the low bits of op mark a 16-bit instruction.
func IsCompressed(op uint64) bool { return op&3 != 3 }
