package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldRoundTrip(t *testing.T) {
	for _, f := range All() {
		f := f
		t.Run(f.Name(), func(t *testing.T) {
			for _, fld := range f.Fields() {
				for _, v := range []uint64{0, 1, fld.Mask() >> 1, fld.Mask()} {
					word := v << fld.Pos()
					require.Equal(t, v, fld.Extract(word), "field %s value %x", fld, v)
					require.Zero(t, word&^fld.ShiftedMask(), "field %s leaks outside its mask", fld)
				}
				require.LessOrEqual(t, fld.Pos()+fld.Len(), f.Width())
			}
		})
	}
}

func TestFieldInsert(t *testing.T) {
	fld := NewField("x", 4, 3)
	require.Equal(t, uint64(0x70), fld.ShiftedMask())
	require.Equal(t, uint64(0xfdf), fld.Insert(0xfff, 0x5))
	require.Equal(t, uint64(0x70), fld.Insert(0, 0xff))
}

func TestNewFieldRejectsBadRange(t *testing.T) {
	require.Panics(t, func() { NewField("bad", 30, 3) })
	require.Panics(t, func() { NewField("empty", 0, 0) })
	require.NotPanics(t, func() { NewField("top", 31, 1) })
}

func TestConcatFieldOrder(t *testing.T) {
	a := NewField("a", 0, 2)
	b := NewField("b", 10, 3)
	c := NewField("c", 20, 4)
	cf := NewConcatField("abc", a, b, c)
	require.Equal(t, uint(9), cf.Len())

	require.Equal(t, uint64(1), cf.Extract(1<<a.Pos()))
	require.Equal(t, uint64(1)<<(a.Len()+b.Len()), cf.Extract(1<<c.Pos()))
	require.Equal(t, uint64(0x3), cf.Extract(a.ShiftedMask()))
	require.Equal(t, uint64(0x1ff), cf.Extract(cf.ShiftedMask()))

	for _, v := range []uint64{0, 1, 0x155, 0x0aa, 0x1ff} {
		require.Equal(t, v, cf.Extract(cf.Insert(0, v)))
	}
}

func TestAliases(t *testing.T) {
	t.Run("C2 rd and rs1", func(t *testing.T) {
		rd, err := C2.Field("rd")
		require.NoError(t, err)
		rs1, err := C2.Field("rs1")
		require.NoError(t, err)
		require.True(t, rd.IsEquivalent(rs1))
		i, err := C2.FieldIndex("rs1")
		require.NoError(t, err)
		j, err := C2.FieldIndex("rd")
		require.NoError(t, err)
		require.Equal(t, j, i)
	})
	t.Run("AMO vector aliases", func(t *testing.T) {
		require.True(t, AMO.MustField("wd").IsEquivalent(AMO.MustField("aq")))
		require.True(t, AMO.MustField("vm").IsEquivalent(AMO.MustField("rl")))
	})
	t.Run("distinct fields differ", func(t *testing.T) {
		require.False(t, I.MustField("rd").IsEquivalent(I.MustField("rs1")))
	})
	t.Run("equivalence ignores names", func(t *testing.T) {
		require.True(t, NewField("p", 7, 5).IsEquivalent(I.MustField("rd")))
	})
}

func TestFormLookup(t *testing.T) {
	f, err := Lookup("I")
	require.NoError(t, err)
	require.Equal(t, []string{"func3", "imm", "opcode", "rd", "rs1"}, f.FieldNames())
	require.True(t, f.HasImmediate())
	require.Equal(t, ImmSigned, f.ImmediateKind())

	_, err = Lookup("Q")
	var unknownForm *UnknownFormError
	require.True(t, errors.As(err, &unknownForm))
	require.Equal(t, "Q", unknownForm.Name)
	require.Nil(t, Default().Find("Q"))

	_, err = f.Field("rs2")
	var unknownField *UnknownFieldError
	require.True(t, errors.As(err, &unknownField))
	require.Equal(t, "I", unknownField.Form)
	require.Equal(t, "rs2", unknownField.Field)
	require.ErrorContains(t, err, `unknown field "rs2" in form I`)

	_, err = f.FieldIndex("nope")
	require.Error(t, err)
	_, err = f.ConcatField("nope")
	require.Error(t, err)
}

func TestRegistryNames(t *testing.T) {
	names := Default().Names()
	require.Len(t, names, len(All()))
	for _, n := range []string{
		"R", "I", "S", "B", "J", "U", "C0", "CJR", "CSR", "CSRI", "FENCE", "ISH", "ISHW", "AMO",
		"Rfloat", "R4", "V", "VF_mem", "V_vsetvli", "V_vsetivli", "V_vsetvl", "V_uimm6",
		"AndeStar_Custom_0", "AndeStar_Custom_2_XDEF",
	} {
		require.Contains(t, names, n)
	}
	require.Panics(t, func() { NewRegistry(R, R) })
}

func TestOpcodeFields(t *testing.T) {
	require.Equal(t, uint64(0xfe00707f), R.OpcodeMask())
	require.Equal(t, uint64(0x707f), I.OpcodeMask())
	require.Equal(t, uint64(0x7f), J.OpcodeMask())
	require.Equal(t, uint64(0xe003), C0.OpcodeMask())
	for _, f := range All() {
		require.NotEmpty(t, f.OpcodeFields(), f.Name())
	}
}

func TestStandardImmediates(t *testing.T) {
	t.Run("S", func(t *testing.T) {
		// imm7=0b1111111 imm5=0b11111
		word := uint64(0x7f)<<25 | uint64(0x1f)<<7
		require.Equal(t, uint64(0xfff), S.MustConcatField("imm").Extract(word))
		require.Equal(t, uint64(0x1f), S.MustConcatField("imm").Extract(uint64(0x1f)<<7))
	})
	t.Run("B", func(t *testing.T) {
		imm := B.MustConcatField("imm")
		require.Equal(t, uint64(1)<<11, imm.Extract(1<<31)) // imm[12]
		require.Equal(t, uint64(1)<<10, imm.Extract(1<<7))  // imm[11]
		require.Equal(t, uint64(1), imm.Extract(1<<8))      // imm[1]
	})
	t.Run("J", func(t *testing.T) {
		imm := J.MustConcatField("imm")
		require.Equal(t, uint64(1)<<19, imm.Extract(1<<31)) // imm[20]
		require.Equal(t, uint64(1)<<10, imm.Extract(1<<20)) // imm[11]
		require.Equal(t, uint64(1)<<11, imm.Extract(1<<12)) // imm[12]
	})
}

func TestAndesCustom0Permutation(t *testing.T) {
	imm := AndesCustom0.MustConcatField("imm")
	require.Equal(t, uint(18), imm.Len())
	// The 18-bit source value occupies instruction bits 31:14.
	enc := func(src uint64) uint64 { return src << 14 }

	require.Equal(t, uint64(0x3ffff), imm.Extract(enc(0x3ffff)))
	require.Equal(t, uint64(1)<<17, imm.Extract(enc(1<<17)))
	require.Equal(t, uint64(0x7fe), imm.Extract(enc(0x3ff<<7))) // src 16:7 -> imm[10:1]
	require.Equal(t, uint64(1)<<11, imm.Extract(enc(1<<6)))     // src 6 -> imm[11]
	require.Equal(t, uint64(0x7000), imm.Extract(enc(0x7<<3)))  // src 5:3 -> imm[14:12]
	require.Equal(t, uint64(0x18000), imm.Extract(enc(0x3<<1))) // src 2:1 -> imm[16:15]
	require.Equal(t, uint64(1), imm.Extract(enc(1)))            // src 0 -> imm[0]
}

func TestConcatFieldsFitForms(t *testing.T) {
	for _, f := range All() {
		for name, c := range f.concat {
			for _, s := range c.Fields() {
				require.LessOrEqual(t, s.Pos()+s.Len(), f.Width(), "%s.%s", f.Name(), name)
			}
			require.Equal(t, c.ShiftedMask()&f.OpcodeMask(), uint64(0), "%s.%s overlaps opcode fields", f.Name(), name)
		}
	}
}
