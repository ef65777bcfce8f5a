package extract

import (
	"strconv"
	"strings"

	"github.com/ethereum-optimism/rvform/rvgo/meta"
)

// dasmWriter renders "mnemonic\top, op, ...".
type dasmWriter struct {
	sb   strings.Builder
	md   Metadata
	nops int
}

func newDasmWriter(mnemonic string, md Metadata) *dasmWriter {
	w := &dasmWriter{md: md}
	w.sb.WriteString(mnemonic)
	return w
}

func (w *dasmWriter) sep() {
	if w.nops == 0 {
		w.sb.WriteByte('\t')
	} else {
		w.sb.WriteString(", ")
	}
	w.nops++
}

// reg writes a register, prefixed x/f/v by its declared type when metadata is known.
func (w *dasmWriter) reg(id meta.OperandFieldID, index uint64) {
	w.sep()
	if w.md != nil {
		w.sb.WriteString(w.md.OperandType(id).RegPrefix())
	}
	w.sb.WriteString(strconv.FormatUint(index, 10))
}

// hex writes v as 0x-prefixed hex.
func (w *dasmWriter) hex(v uint64) {
	w.sep()
	w.sb.WriteString("0x")
	w.sb.WriteString(strconv.FormatUint(v, 16))
}

// offset writes v as signed hex, e.g. -0x10.
func (w *dasmWriter) offset(v int64) {
	w.sep()
	if v < 0 {
		w.sb.WriteByte('-')
		w.sb.WriteString("0x")
		w.sb.WriteString(strconv.FormatUint(uint64(-v), 16))
		return
	}
	w.sb.WriteString("0x")
	w.sb.WriteString(strconv.FormatInt(v, 16))
}

// text writes a literal operand.
func (w *dasmWriter) text(s string) {
	w.sep()
	w.sb.WriteString(s)
}

func (w *dasmWriter) String() string { return w.sb.String() }

// Disassembler renders instructions through their extractors.
type Disassembler struct{}

// Dasm uses the metadata-aware rendering when md is non-nil and the plain one otherwise.
func (Disassembler) Dasm(x Extractor, mnemonic string, op uint64, md Metadata) string {
	if md == nil {
		return x.Dasm(mnemonic, op)
	}
	return x.DasmWithMeta(mnemonic, op, md)
}
