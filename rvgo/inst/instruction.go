package inst

import (
	"fmt"

	"github.com/ethereum-optimism/rvform/rvgo/extract"
	"github.com/ethereum-optimism/rvform/rvgo/form"
	"github.com/ethereum-optimism/rvform/rvgo/meta"
	"github.com/ethereum-optimism/rvform/rvgo/operand"
)

// Instruction is one decoded opcode together with the mnemonic it was
// decoded as. All queries go through the mnemonic's extractor and metadata.
type Instruction struct {
	Mnemonic  string
	Opcode    uint64
	Extractor extract.Extractor
	Meta      *meta.InstMetaData
}

// md avoids handing a typed nil to the extractor, which would read as
// "metadata present".
func (i *Instruction) md() extract.Metadata {
	if i.Meta == nil {
		return nil
	}
	return i.Meta
}

func (i *Instruction) SourceRegs() extract.RegSet { return i.Extractor.SourceRegs(i.Opcode) }

func (i *Instruction) SourceAddressRegs() extract.RegSet {
	return i.Extractor.SourceAddressRegs(i.Opcode)
}

func (i *Instruction) SourceDataRegs() extract.RegSet {
	return i.Extractor.SourceDataRegs(i.Opcode)
}

func (i *Instruction) DestRegs() extract.RegSet { return i.Extractor.DestRegs(i.Opcode) }

func (i *Instruction) SourceOperTypeRegs(kind meta.OperandType) extract.RegSet {
	return i.Extractor.SourceOperTypeRegs(i.Opcode, i.md(), kind)
}

func (i *Instruction) DestOperTypeRegs(kind meta.OperandType) extract.RegSet {
	return i.Extractor.DestOperTypeRegs(i.Opcode, i.md(), kind)
}

func (i *Instruction) SourceOperandInfo(suppressX0 bool) operand.Info {
	return i.Extractor.SourceOperandInfo(i.Opcode, i.md(), suppressX0)
}

func (i *Instruction) DestOperandInfo(suppressX0 bool) operand.Info {
	return i.Extractor.DestOperandInfo(i.Opcode, i.md(), suppressX0)
}

func (i *Instruction) ImmediateType() form.ImmKind { return i.Extractor.ImmediateType() }

func (i *Instruction) Immediate() uint64 { return i.Extractor.Immediate(i.Opcode) }

func (i *Instruction) SignedOffset() int64 { return i.Extractor.SignedOffset(i.Opcode) }

// SpecialField wraps extractor errors with the mnemonic. The cause stays
// reachable through errors.As.
func (i *Instruction) SpecialField(id extract.SpecialField) (uint64, error) {
	v, err := i.Extractor.SpecialField(id, i.Opcode)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", i.Mnemonic, err)
	}
	return v, nil
}

// Dasm renders the instruction with typed register names when metadata is known.
func (i *Instruction) Dasm() string {
	var d extract.Disassembler
	return d.Dasm(i.Extractor, i.Mnemonic, i.Opcode, i.md())
}

func (i *Instruction) String() string {
	return fmt.Sprintf("%s(%#x)", i.Mnemonic, i.Opcode)
}
