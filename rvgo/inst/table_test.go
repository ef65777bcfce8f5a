package inst

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum-optimism/rvform/rvgo/extract"
	"github.com/ethereum-optimism/rvform/rvgo/meta"
)

func TestDefaultTable(t *testing.T) {
	tbl := Default()
	require.Equal(t, uint(64), tbl.XLEN())
	require.NotEmpty(t, tbl.Entries())

	_, err := tbl.Lookup("c.jal")
	var ume *UnknownMnemonicError
	require.True(t, errors.As(err, &ume), "c.jal is RV32 only")

	e, err := tbl.Lookup("fsqrt.d")
	require.NoError(t, err)
	require.Equal(t, uint64(0x01f00000), e.Extractor.FixedFieldMask())
	require.True(t, e.Meta.IsExtInstType(meta.ExtD))
	require.True(t, e.Meta.IsInstType(meta.InstSqrt))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		op   uint64
		want string
		dasm string
	}{
		{0x00518233, "add", "add\tx4, x3, x5"},
		{0x5A018253, "fsqrt.d", "fsqrt.d\tf4, f3"},
		{0xFE112FA3, "sw", "sw\tx2, x1, -0x1"},
		{0x00000073, "ecall", "ecall"},
		{0x00100073, "ebreak", "ebreak"},
		{0x0001, "c.nop", "c.nop"},
		{0x10FD, "c.addi", "c.addi\tx1, x1, -0x1"},
		{0x2001, "c.addiw", ""},
		{0x9002, "c.ebreak", "c.ebreak"},
		{0x9282, "c.jalr", "c.jalr\tx5"},
		{0x929A, "c.add", "c.add\tx5, x5, x6"},
		{0x8282, "c.jr", "c.jr\tx5"},
		{0x829A, "c.mv", "c.mv\tx5, x6"},
		{0x4412, "c.lwsp", "c.lwsp\tx8, 0x4"},
		{0x6285, "c.lui", "c.lui\tx5, 0x1000"},
		{0x6141, "c.addi16sp", "c.addi16sp\t0x10"},
		{0x0020202B | 1<<7, "lwgp", "lwgp\tx1, 0x20000"},
		{0x022FB0D7, "vadd.vi", "vadd.vi\tv1, v2, -0x1"},
		{0x02016087, "vle32.v", "vle32.v\tv1, x2"},
		{0x4032F45B, "bbs", "bbs\tx5, 0x3, 0x8"},
		// bits above the instruction word are ignored
		{1<<40 | 0x00518233, "add", ""},
	}
	tbl := Default()
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			in, err := tbl.Match(tt.op)
			require.NoError(t, err)
			require.Equal(t, tt.want, in.Mnemonic)
			if tt.dasm != "" {
				require.Equal(t, tt.dasm, in.Dasm())
			}
		})
	}
}

func TestMatchUnknown(t *testing.T) {
	for _, op := range []uint64{0xffffffff, 0x8000} {
		_, err := Default().Match(op)
		var uoe *UnknownOpcodeError
		require.True(t, errors.As(err, &uoe), "%#x", op)
		require.Equal(t, op, uoe.Opcode)
	}
}

func TestMatchXLEN32(t *testing.T) {
	recs, err := DefaultRecords()
	require.NoError(t, err)
	tbl, err := NewTable(32, recs)
	require.NoError(t, err)

	in, err := tbl.Match(0x2001)
	require.NoError(t, err)
	require.Equal(t, "c.jal", in.Mnemonic)
	require.Equal(t, extract.RegSet(1<<1), in.DestRegs())

	_, err = tbl.Lookup("ldgp")
	require.Error(t, err)
}

func TestInstructionQueries(t *testing.T) {
	tbl := Default()

	in, err := tbl.Decode("sw", 0xFE112FA3)
	require.NoError(t, err)
	require.Equal(t, int64(-1), in.SignedOffset())
	require.Equal(t, uint64(0xfff), in.Immediate())
	require.Equal(t, extract.RegSet(1<<2), in.SourceAddressRegs())
	require.Equal(t, extract.RegSet(1<<1), in.SourceDataRegs())
	require.Equal(t, "{1,2}", in.SourceOperTypeRegs(meta.OperandLong).String())
	require.Equal(t, 2, in.SourceOperandInfo(true).NOpers())
	require.Zero(t, in.DestRegs())
	require.Equal(t, "sw(0xfe112fa3)", in.String())

	// fsd f1, 0(x2): mixed types
	in, err = tbl.Decode("fsd", 0x00113027)
	require.NoError(t, err)
	require.Equal(t, "{2}", in.SourceOperTypeRegs(meta.OperandLong).String())
	require.Equal(t, "{1}", in.SourceOperTypeRegs(meta.OperandDouble).String())
	info := in.SourceOperandInfo(false)
	typ, err := info.OperandType(meta.RS2)
	require.NoError(t, err)
	require.Equal(t, meta.OperandDouble, typ)
	require.Zero(t, in.DestOperandInfo(false).NOpers())
}

func TestSpecialFieldWrapsMnemonic(t *testing.T) {
	in, err := Default().Decode("add", 0x00518233)
	require.NoError(t, err)
	_, err = in.SpecialField(extract.SpecialRM)
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "add: "), err.Error())
	var ue *extract.UnsupportedSpecialFieldError
	require.True(t, errors.As(err, &ue))
	require.Equal(t, extract.SpecialRM, ue.Field)

	in, err = Default().Decode("fadd.d", 0x02007053)
	require.NoError(t, err)
	rm, err := in.SpecialField(extract.SpecialRM)
	require.NoError(t, err)
	require.Equal(t, uint64(7), rm)
}

func TestInstructionWithoutMeta(t *testing.T) {
	x, err := extract.Lookup("R")
	require.NoError(t, err)
	in := &Instruction{Mnemonic: "add", Opcode: 0x00518233, Extractor: x}
	require.Equal(t, "add\t4, 3, 5", in.Dasm())
	require.Zero(t, in.SourceOperTypeRegs(meta.OperandLong))
}

func TestDecodeUnknown(t *testing.T) {
	_, err := Default().Decode("frobnicate", 0)
	var ume *UnknownMnemonicError
	require.True(t, errors.As(err, &ume))
	require.Equal(t, "frobnicate", ume.Mnemonic)
}

func writeRecords(t *testing.T, recs []Record) string {
	t.Helper()
	b, err := json.Marshal(recs)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "isa.json")
	require.NoError(t, os.WriteFile(path, b, 0644))
	return path
}

func TestLoadTable(t *testing.T) {
	path := writeRecords(t, []Record{
		{
			Mnemonic:      "fmv.x.d",
			Form:          "R",
			Match:         0xe2000053,
			Type:          []string{"float", "move"},
			Ext:           []string{"d"},
			OperandType:   meta.OperandDouble,
			OperandFields: map[meta.OperandFieldID]meta.OperandType{meta.RD: meta.OperandLong},
			Fixed:         []string{"rs2"},
		},
	})
	tbl, err := LoadTable(path, 64)
	require.NoError(t, err)

	// fmv.x.d x4, f3
	in, err := tbl.Match(0xe2018253)
	require.NoError(t, err)
	require.Equal(t, "fmv.x.d", in.Mnemonic)
	require.Equal(t, "fmv.x.d\tx4, f3", in.Dasm())
	require.Equal(t, meta.OperandLong, in.Meta.OperandType(meta.RD))
}

func TestLoadTableErrors(t *testing.T) {
	tests := []struct {
		name string
		recs []Record
	}{
		{"unknown form", []Record{{Mnemonic: "x", Form: "Q"}}},
		{"unknown fixed field", []Record{{Mnemonic: "x", Form: "R", Fixed: []string{"imm"}}}},
		{"match outside mask", []Record{{Mnemonic: "x", Form: "U", Match: 0x1037}}},
		{"unknown type", []Record{{Mnemonic: "x", Form: "R", Type: []string{"teleport"}}}},
		{"duplicate", []Record{{Mnemonic: "x", Form: "R"}, {Mnemonic: "x", Form: "I"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTable(writeRecords(t, tt.recs), 64)
			require.Error(t, err)
		})
	}

	_, err := LoadTable(filepath.Join(t.TempDir(), "missing.json"), 64)
	require.Error(t, err)

	_, err = NewTable(64, []Record{{Mnemonic: "x", Form: "Q"}})
	var uee *extract.UnknownExtractorError
	require.True(t, errors.As(err, &uee))
}
