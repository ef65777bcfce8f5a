package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum-optimism/rvform/rvgo/form"
	"github.com/ethereum-optimism/rvform/rvgo/meta"
)

type regCase struct {
	name   string
	xform  string
	op     uint64
	src    string
	dst    string
	imm    int64
	dasm   string
	mnemon string
}

func runRegCases(t *testing.T, cases []regCase) {
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			x := mustLookup(t, tt.xform)
			require.Equal(t, tt.src, x.SourceRegs(tt.op).String(), "sources")
			require.Equal(t, tt.dst, x.DestRegs(tt.op).String(), "dests")
			require.Equal(t, tt.imm, x.SignedOffset(tt.op), "immediate")
			if tt.dasm != "" {
				require.Equal(t, tt.dasm, x.Dasm(tt.mnemon, tt.op))
			}
		})
	}
}

func TestStandardLayouts(t *testing.T) {
	runRegCases(t, []regCase{
		{name: "addi", xform: "I", op: 0xFFF18213, src: "{3}", dst: "{4}", imm: -1,
			mnemon: "addi", dasm: "addi\t4, 3, -0x1"},
		{name: "beq", xform: "B", op: 0x00208463, src: "{1,2}", dst: "{}", imm: 8},
		{name: "lui", xform: "U", op: 0x800002B7, src: "{}", dst: "{5}", imm: -0x80000000},
		{name: "jal", xform: "J", op: 0x008000EF, src: "{}", dst: "{1}", imm: 8},
		{name: "srai", xform: "ISH", op: 0x43F1D213, src: "{3}", dst: "{4}", imm: 63},
		{name: "fmadd.d", xform: "R4", op: 0x22A100C3, src: "{2,4,10}", dst: "{1}"},
		{name: "csrrw", xform: "CSR", op: 0x300110F3, src: "{2}", dst: "{1}",
			mnemon: "csrrw", dasm: "csrrw\t1, 0x300, 2"},
		{name: "csrrwi", xform: "CSRI", op: 0x3002D0F3, src: "{}", dst: "{1}", imm: 5,
			mnemon: "csrrwi", dasm: "csrrwi\t1, 0x300, 0x5"},
		{name: "fence", xform: "FENCE", op: 0x0310000F, src: "{}", dst: "{}",
			mnemon: "fence", dasm: "fence\trw, w"},
		{name: "amoadd.w", xform: "AMO", op: 0x0420A1AF, src: "{1,2}", dst: "{3}"},
	})
}

func TestCSRSpecial(t *testing.T) {
	csr, err := mustLookup(t, "CSR").SpecialField(SpecialCSR, 0x300110F3)
	require.NoError(t, err)
	require.Equal(t, uint64(0x300), csr)
}

func TestFenceSpecials(t *testing.T) {
	x := mustLookup(t, "FENCE")
	// fence.tso: fm=1000 pred=rw succ=rw
	const op = 0x8330000F
	for id, want := range map[SpecialField]uint64{SpecialFM: 8, SpecialPred: 3, SpecialSucc: 3} {
		v, err := x.SpecialField(id, op)
		require.NoError(t, err)
		require.Equal(t, want, v, id.String())
	}
	require.Equal(t, "fence.tso\trw, rw", x.Dasm("fence.tso", op))
	require.Equal(t, "0", fenceSet(0))
	require.Equal(t, "iorw", fenceSet(15))
}

func TestAMOSpecials(t *testing.T) {
	x := mustLookup(t, "AMO")
	// amoadd.w.aq: aq=1 rl=0
	const op = 0x0420A1AF
	aq, err := x.SpecialField(SpecialAQ, op)
	require.NoError(t, err)
	require.Equal(t, uint64(1), aq)
	rl, err := x.SpecialField(SpecialRL, op)
	require.NoError(t, err)
	require.Zero(t, rl)
	wd, err := x.SpecialField(SpecialWD, op)
	require.NoError(t, err)
	require.Equal(t, aq, wd)

	require.Equal(t, RegSet(1<<1), x.SourceAddressRegs(op))
	require.Equal(t, RegSet(1<<2), x.SourceDataRegs(op))
}

func TestCompressedLayouts(t *testing.T) {
	runRegCases(t, []regCase{
		{name: "c.lw", xform: "C0", op: 0x4044, src: "{8}", dst: "{9}", imm: 4,
			mnemon: "c.lw", dasm: "c.lw\t9, 8, 0x4"},
		{name: "c.sw", xform: "C0", op: 0xC044, src: "{8,9}", dst: "{}", imm: 4},
		{name: "c.ld", xform: "C0_D", op: 0x6404, src: "{8}", dst: "{9}", imm: 8},
		{name: "c.addi", xform: "C1", op: 0x10FD, src: "{1}", dst: "{1}", imm: -1},
		{name: "c.slli", xform: "C2", op: 0x1086, src: "{1}", dst: "{1}", imm: 33},
		{name: "c.sub", xform: "CA", op: 0x8C05, src: "{8,9}", dst: "{8}"},
		{name: "c.beqz", xform: "CB", op: 0xC011, src: "{8}", dst: "{}", imm: 4},
		{name: "c.lwsp", xform: "CI", op: 0x4412, src: "{2}", dst: "{8}", imm: 4},
		{name: "c.ldsp", xform: "CI_D", op: 0x6422, src: "{2}", dst: "{8}", imm: 8},
		{name: "c.li", xform: "CI_rD_only", op: 0x52FD, src: "{}", dst: "{5}", imm: -1},
		{name: "c.lui", xform: "CI_rD_only_LUI", op: 0x6285, src: "{}", dst: "{5}", imm: 0x1000,
			mnemon: "c.lui", dasm: "c.lui\t5, 0x1000"},
		{name: "c.lui negative", xform: "CI_rD_only_LUI", op: 0x72FD, src: "{}", dst: "{5}", imm: -0x1000},
		{name: "c.addi16sp", xform: "CI_rD_only_SP", op: 0x6141, src: "{2}", dst: "{2}", imm: 16,
			mnemon: "c.addi16sp", dasm: "c.addi16sp\t0x10"},
		{name: "c.addi16sp sign", xform: "CI_rD_only_SP", op: 0x7101, src: "{2}", dst: "{2}", imm: -512},
		{name: "c.addi16sp all", xform: "CI_rD_only_SP", op: 0x717D, src: "{2}", dst: "{2}", imm: -16},
		{name: "c.addi4spn", xform: "CIW", op: 0x0040, src: "{2}", dst: "{8}", imm: 4},
		{name: "c.andi", xform: "CIX", op: 0x8805, src: "{8}", dst: "{8}", imm: 1},
		{name: "c.j", xform: "CJ", op: 0xA001, src: "{}", dst: "{}"},
		{name: "c.jal", xform: "CJ", op: 0x2001, src: "{}", dst: "{1}"},
		{name: "c.jr", xform: "CJR", op: 0x8282, src: "{5}", dst: "{}"},
		{name: "c.jalr", xform: "CJR", op: 0x9282, src: "{5}", dst: "{1}"},
		{name: "c.ebreak", xform: "CJR", op: 0x9002, src: "{0}", dst: "{}"},
		{name: "c.mv", xform: "CR", op: 0x829A, src: "{6}", dst: "{5}"},
		{name: "c.add", xform: "CR", op: 0x929A, src: "{5,6}", dst: "{5}"},
		{name: "c.swsp", xform: "CSS", op: 0xC416, src: "{2,5}", dst: "{}", imm: 8},
		{name: "c.sdsp", xform: "CSS_D", op: 0xE416, src: "{2,5}", dst: "{}", imm: 8},
	})
}

func TestCompressedStoreData(t *testing.T) {
	c0 := mustLookup(t, "C0")
	require.Equal(t, RegSet(1<<8), c0.SourceAddressRegs(0xC044))
	require.Equal(t, RegSet(1<<9), c0.SourceDataRegs(0xC044))

	css := mustLookup(t, "CSS")
	require.Equal(t, RegSet(1<<2), css.SourceAddressRegs(0xC416))
	require.Equal(t, RegSet(1<<5), css.SourceDataRegs(0xC416))
	// sp is implied and not printed
	require.Equal(t, "c.swsp\t5, 0x8", css.Dasm("c.swsp", 0xC416))
}

func TestVectorLayouts(t *testing.T) {
	runRegCases(t, []regCase{
		{name: "vadd.vv", xform: "V", op: 0x022180D7, src: "{2,3}", dst: "{1}",
			mnemon: "vadd.vv", dasm: "vadd.vv\t1, 2, 3"},
		{name: "vadd.vv masked", xform: "V", op: 0x002180D7, src: "{2,3}", dst: "{1}",
			mnemon: "vadd.vv", dasm: "vadd.vv\t1, 2, 3, v0.t"},
		{name: "vadd.vi", xform: "V", op: 0x022FB0D7, src: "{2}", dst: "{1}"},
		{name: "vadd.vi simm5", xform: "V_simm5", op: 0x022FB0D7, src: "{2}", dst: "{1}", imm: -1,
			mnemon: "vadd.vi", dasm: "vadd.vi\t1, 2, -0x1"},
		{name: "vle32.v", xform: "VF_mem", op: 0x02016087, src: "{2}", dst: "{1}"},
		{name: "vse32.v", xform: "VF_mem", op: 0x020160A7, src: "{1,2}", dst: "{}"},
		{name: "vlse32.v", xform: "VF_mem", op: 0x0A316087, src: "{2,3}", dst: "{1}"},
		{name: "vsetvli", xform: "V_vsetvli", op: 0x0102F2D7, src: "{5}", dst: "{5}", imm: 0x10},
		{name: "vsetivli", xform: "V_vsetivli", op: 0xC10272D7, src: "{}", dst: "{5}", imm: 0x10,
			mnemon: "vsetivli", dasm: "vsetivli\t5, 0x4, 0x10"},
		{name: "vsetvl", xform: "V_vsetvl", op: 0x8062F2D7, src: "{5,6}", dst: "{5}"},
		{name: "vror.vi", xform: "V_uimm6", op: 0x522FB057 | 1<<26, src: "{2}", dst: "{0}", imm: 63},
	})
}

func TestVectorSpecials(t *testing.T) {
	vm, err := mustLookup(t, "V").SpecialField(SpecialVM, 0x002180D7)
	require.NoError(t, err)
	require.Zero(t, vm)

	avl, err := mustLookup(t, "V_vsetivli").SpecialField(SpecialAVL, 0xC10272D7)
	require.NoError(t, err)
	require.Equal(t, uint64(4), avl)

	// vlseg2e32.v: nf=1
	nf, err := mustLookup(t, "VF_mem").SpecialField(SpecialNF, 0x22016087)
	require.NoError(t, err)
	require.Equal(t, uint64(1), nf)

	x := mustLookup(t, "VF_mem")
	require.Equal(t, RegSet(1<<1), x.SourceDataRegs(0x020160A7))
	require.Equal(t, RegSet(1<<2), x.SourceAddressRegs(0x020160A7))
	md := meta.New("vse32.v", meta.WithOperandType(meta.OperandVector), meta.WithFieldType(meta.RS1, meta.OperandLong))
	require.Equal(t, "vse32.v\tv1, x2", x.DasmWithMeta("vse32.v", 0x020160A7, md))

	require.Equal(t, form.ImmSigned, mustLookup(t, "V_simm5").ImmediateType())
	require.Equal(t, form.ImmNone, mustLookup(t, "V").ImmediateType())
}

func TestAndesLayouts(t *testing.T) {
	runRegCases(t, []regCase{
		{name: "lhgp imm[1]", xform: "AndeStar_Custom_1", op: 0x0020102B | 1<<7, src: "{3}", dst: "{1}", imm: 2},
		{name: "lwgp imm[17]", xform: "AndeStar_Custom_1_LW", op: 0x0020202B | 1<<7, src: "{3}", dst: "{1}", imm: 0x20000},
		{name: "ldgp imm[19]", xform: "AndeStar_Custom_1_LD", op: 0x8000302B, src: "{3}", dst: "{0}", imm: -0x80000},
		{name: "shgp", xform: "AndeStar_Custom_1_S", op: 0x0050002B | 1<<8, src: "{3,5}", dst: "{}", imm: 2},
		{name: "swgp imm[17]", xform: "AndeStar_Custom_1_SW", op: 0x0050402B | 1<<8, src: "{3,5}", dst: "{}", imm: 0x20000},
		{name: "sdgp imm[3]", xform: "AndeStar_Custom_1_SD", op: 0x0050702B | 1<<10, src: "{3,5}", dst: "{}", imm: 8},
		{name: "sbgp", xform: "AndeStar_Custom_0_S", op: 0x0050300B | 1<<14, src: "{3,5}", dst: "{}", imm: 1,
			mnemon: "sbgp", dasm: "sbgp\t5, 0x1"},
		{name: "bfoz", xform: "AndeStar_Custom_2", op: 0x1C0332DB, src: "{6}", dst: "{5}",
			mnemon: "bfoz", dasm: "bfoz\t5, 6, 0x7, 0x0"},
		{name: "bbs", xform: "AndeStar_Custom_2_BBx", op: 0x4032F45B, src: "{5}", dst: "{}", imm: 8,
			mnemon: "bbs", dasm: "bbs\t5, 0x3, 0x8"},
		{name: "bbc back", xform: "AndeStar_Custom_2_BBx", op: 0x8032E05B, src: "{5}", dst: "{}", imm: -0x400},
		{name: "lea.h", xform: "AndeStar_Custom_2_XDEF", op: 0x0A31025B, src: "{2,3}", dst: "{4}"},
	})
}

func TestAndesBranchConst(t *testing.T) {
	bxc := mustLookup(t, "AndeStar_Custom_2_BxC")
	// beqc with cimm[6] set
	cimm, err := bxc.SpecialField(SpecialCIMM, 0x4000505B)
	require.NoError(t, err)
	require.Equal(t, uint64(0x40), cimm)

	bbx := mustLookup(t, "AndeStar_Custom_2_BBx")
	cimm, err = bbx.SpecialField(SpecialCIMM, 0x4032F45B|1<<7)
	require.NoError(t, err)
	require.Equal(t, uint64(0x23), cimm)

	msb, err := mustLookup(t, "AndeStar_Custom_2").SpecialField(SpecialMSB, 0x1C0332DB)
	require.NoError(t, err)
	require.Equal(t, uint64(7), msb)
}
