package meta

import (
	"fmt"
	"strings"
)

// OperandType is the data type held by one instruction operand.
type OperandType uint8

const (
	OperandNone OperandType = iota
	OperandWord
	OperandLong
	OperandHalf
	OperandSingle
	OperandDouble
	OperandQuad
	OperandVector
	numOperandTypes
)

var operandTypeNames = [numOperandTypes]string{
	OperandNone:   "none",
	OperandWord:   "word",
	OperandLong:   "long",
	OperandHalf:   "half",
	OperandSingle: "single",
	OperandDouble: "double",
	OperandQuad:   "quad",
	OperandVector: "vector",
}

// NumOperandTypes is the number of distinct operand types, for per-type counters.
const NumOperandTypes = int(numOperandTypes)

func (t OperandType) String() string {
	if t < numOperandTypes {
		return operandTypeNames[t]
	}
	return fmt.Sprintf("OperandType(%d)", uint8(t))
}

// IsInteger reports whether operands of this type live in the integer register file.
func (t OperandType) IsInteger() bool {
	return t == OperandWord || t == OperandLong
}

// IsFloat reports whether operands of this type live in the floating-point register file.
func (t OperandType) IsFloat() bool {
	return t == OperandHalf || t == OperandSingle || t == OperandDouble || t == OperandQuad
}

// RegPrefix is the disassembly register prefix for the type: x, f, v, or empty.
func (t OperandType) RegPrefix() string {
	switch {
	case t.IsInteger():
		return "x"
	case t.IsFloat():
		return "f"
	case t == OperandVector:
		return "v"
	default:
		return ""
	}
}

func (t OperandType) bit() uint16 { return 1 << t }

func (t OperandType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *OperandType) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for i, n := range operandTypeNames {
		if n == s {
			*t = OperandType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown operand type %q", text)
}

// OperandFieldID names an operand slot of an instruction, independent of its encoding.
type OperandFieldID uint8

const (
	RS1 OperandFieldID = iota
	RS2
	RS3
	RD
	RD2
	FieldNone
	numFieldIDs
)

var fieldIDNames = [numFieldIDs]string{
	RS1:       "rs1",
	RS2:       "rs2",
	RS3:       "rs3",
	RD:        "rd",
	RD2:       "rd2",
	FieldNone: "none",
}

// NumFieldIDs is the number of operand field IDs including FieldNone.
const NumFieldIDs = int(numFieldIDs)

func (id OperandFieldID) String() string {
	if id < numFieldIDs {
		return fieldIDNames[id]
	}
	return fmt.Sprintf("OperandFieldID(%d)", uint8(id))
}

func (id OperandFieldID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *OperandFieldID) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for i, n := range fieldIDNames {
		if n == s {
			*id = OperandFieldID(i)
			return nil
		}
	}
	return fmt.Errorf("unknown operand field %q", text)
}

// InstType is a bitmask of instruction classes.
type InstType uint64

const (
	InstInt InstType = 1 << iota
	InstFloat
	InstArith
	InstMultiply
	InstDivide
	InstBranch
	InstPC
	InstConditional
	InstJAL
	InstJALR
	InstLoad
	InstStore
	InstMAC
	InstSqrt
	InstConvert
	InstCompare
	InstMove
	InstClassify
	InstVector
	InstMaskable
	InstAtomic
	InstFence
	InstSystem
	InstCSR
	InstHint
)

var instTypeNames = []struct {
	t    InstType
	name string
}{
	{InstInt, "int"}, {InstFloat, "float"}, {InstArith, "arith"}, {InstMultiply, "mul"},
	{InstDivide, "div"}, {InstBranch, "branch"}, {InstPC, "pc"}, {InstConditional, "cond"},
	{InstJAL, "jal"}, {InstJALR, "jalr"}, {InstLoad, "load"}, {InstStore, "store"},
	{InstMAC, "mac"}, {InstSqrt, "sqrt"}, {InstConvert, "convert"}, {InstCompare, "compare"},
	{InstMove, "move"}, {InstClassify, "classify"}, {InstVector, "vector"}, {InstMaskable, "maskable"},
	{InstAtomic, "atomic"}, {InstFence, "fence"}, {InstSystem, "system"}, {InstCSR, "csr"},
	{InstHint, "hint"},
}

func (t InstType) String() string {
	var parts []string
	for _, n := range instTypeNames {
		if t&n.t != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseInstType maps one instruction class name to its bit.
func ParseInstType(name string) (InstType, error) {
	for _, n := range instTypeNames {
		if n.name == name {
			return n.t, nil
		}
	}
	return 0, fmt.Errorf("unknown instruction type %q", name)
}

// ISAExt is a bitmask of ISA extensions.
type ISAExt uint64

const (
	ExtI ISAExt = 1 << iota
	ExtM
	ExtA
	ExtF
	ExtD
	ExtQ
	ExtC
	ExtV
	ExtH
	ExtZicsr
	ExtZifencei
	ExtZba
	ExtZbb
	ExtZbs
	ExtXAndes
)

var isaExtNames = []struct {
	e    ISAExt
	name string
}{
	{ExtI, "i"}, {ExtM, "m"}, {ExtA, "a"}, {ExtF, "f"}, {ExtD, "d"}, {ExtQ, "q"},
	{ExtC, "c"}, {ExtV, "v"}, {ExtH, "h"}, {ExtZicsr, "zicsr"}, {ExtZifencei, "zifencei"},
	{ExtZba, "zba"}, {ExtZbb, "zbb"}, {ExtZbs, "zbs"}, {ExtXAndes, "xandes"},
}

func (e ISAExt) String() string {
	var parts []string
	for _, n := range isaExtNames {
		if e&n.e != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseISAExt maps one extension name to its bit.
func ParseISAExt(name string) (ISAExt, error) {
	s := strings.ToLower(name)
	for _, n := range isaExtNames {
		if n.name == s {
			return n.e, nil
		}
	}
	return 0, fmt.Errorf("unknown ISA extension %q", name)
}
