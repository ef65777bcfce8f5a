package cmd

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/optimism/op-service/jsonutil"

	"github.com/ethereum-optimism/rvform/rvgo/extract"
	"github.com/ethereum-optimism/rvform/rvgo/form"
	"github.com/ethereum-optimism/rvform/rvgo/inst"
	"github.com/ethereum-optimism/rvform/rvgo/meta"
	"github.com/ethereum-optimism/rvform/rvgo/operand"
)

type Operand struct {
	Field     meta.OperandFieldID `json:"field"`
	Type      meta.OperandType    `json:"type"`
	Reg       uint32              `json:"reg"`
	StoreData bool                `json:"store-data,omitempty"`
	Implied   bool                `json:"implied,omitempty"`
}

type Decoded struct {
	Opcode    hexutil.Uint64 `json:"opcode"`
	Mnemonic  string         `json:"mnemonic,omitempty"`
	Extractor string         `json:"extractor"`
	Dasm      string         `json:"dasm"`

	Sources []Operand `json:"sources"`
	Dests   []Operand `json:"dests"`

	Immediate *hexutil.Uint64 `json:"immediate,omitempty"`
	Offset    *int64          `json:"offset,omitempty"`

	Specials map[extract.SpecialField]hexutil.Uint64 `json:"specials,omitempty"`
}

func operands(info operand.Info) []Operand {
	out := make([]Operand, 0, info.NOpers())
	for _, e := range info.Elements() {
		out = append(out, Operand{
			Field:     e.FieldID,
			Type:      e.Type,
			Reg:       e.Value,
			StoreData: e.IsStoreData,
			Implied:   e.IsImplied,
		})
	}
	return out
}

func NewDecoded(in *inst.Instruction) *Decoded {
	d := &Decoded{
		Opcode:    hexutil.Uint64(in.Opcode),
		Extractor: in.Extractor.Name(),
		Dasm:      in.Dasm(),
		Sources:   operands(in.SourceOperandInfo(true)),
		Dests:     operands(in.DestOperandInfo(true)),
	}
	if in.Meta != nil {
		d.Mnemonic = in.Mnemonic
	}
	switch in.ImmediateType() {
	case form.ImmSigned:
		off := in.SignedOffset()
		d.Offset = &off
	case form.ImmUnsigned:
		imm := hexutil.Uint64(in.Immediate())
		d.Immediate = &imm
	}
	for _, id := range extract.SpecialFields() {
		v, err := in.Extractor.SpecialField(id, in.Opcode)
		if err != nil {
			continue
		}
		if d.Specials == nil {
			d.Specials = make(map[extract.SpecialField]hexutil.Uint64)
		}
		d.Specials[id] = hexutil.Uint64(v)
	}
	return d
}

// decoder resolves one opcode to an instruction according to the command flags.
type decoder func(op uint64) (*inst.Instruction, error)

func newDecoder(ctx *cli.Context) (decoder, error) {
	if name := ctx.String(FormFlag.Name); name != "" {
		x, err := extract.Lookup(name)
		if err != nil {
			return nil, err
		}
		mnemonic := ctx.String(MnemonicFlag.Name)
		if mnemonic == "" {
			mnemonic = name
		}
		return func(op uint64) (*inst.Instruction, error) {
			return &inst.Instruction{Mnemonic: mnemonic, Opcode: op, Extractor: x}, nil
		}, nil
	}
	tbl, err := loadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load instruction table: %w", err)
	}
	if mnemonic := ctx.String(MnemonicFlag.Name); mnemonic != "" {
		if _, err := tbl.Lookup(mnemonic); err != nil {
			return nil, err
		}
		return func(op uint64) (*inst.Instruction, error) {
			return tbl.Decode(mnemonic, op)
		}, nil
	}
	return tbl.Match, nil
}

func Decode(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("no opcodes given")
	}
	ops, err := parseOpcodes(ctx.Args().Slice())
	if err != nil {
		return err
	}
	dec, err := newDecoder(ctx)
	if err != nil {
		return err
	}
	out := make([]*Decoded, 0, len(ops))
	for _, op := range ops {
		in, err := dec(op)
		if err != nil {
			return fmt.Errorf("failed to decode %#x: %w", op, err)
		}
		out = append(out, NewDecoded(in))
	}
	if err := jsonutil.WriteJSON(ctx.Path(OutputFlag.Name), out, OutFilePerm); err != nil {
		return fmt.Errorf("failed to write decode output: %w", err)
	}
	return nil
}

var DecodeCommand = &cli.Command{
	Name:        "decode",
	Usage:       "Decode RISC-V opcodes into their operands",
	Description: "Decode hex opcodes given as arguments. Opcodes are matched against the instruction table, or interpreted as one mnemonic or one form when those flags are set.",
	ArgsUsage:   "<opcode> [opcode...]",
	Action:      Decode,
	Flags: []cli.Flag{
		TableFlag,
		XLENFlag,
		FormFlag,
		MnemonicFlag,
		OutputFlag,
	},
}
