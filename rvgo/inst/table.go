package inst

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/bits"
	"sort"
	"sync"

	"github.com/ethereum-optimism/optimism/op-service/jsonutil"

	"github.com/ethereum-optimism/rvform/rvgo/extract"
	"github.com/ethereum-optimism/rvform/rvgo/meta"
	"github.com/ethereum-optimism/rvform/rvgo/riscv"
)

// Entry is one resolved table row: the mnemonic's metadata and the extractor
// specialised for its fixed fields.
type Entry struct {
	Meta      *meta.InstMetaData
	Extractor extract.Extractor
	// Mask selects the opcode bits that identify the mnemonic; Match is their value.
	Mask  uint64
	Match uint64
}

func (e *Entry) matches(op uint64) bool { return op&e.Mask == e.Match }

// Table decodes opcodes of one XLEN. It is immutable once built.
type Table struct {
	xlen       uint
	entries    []*Entry
	byMnemonic map[string]*Entry
	// decode order: 16-bit and 32-bit entries, most specific mask first
	compressed []*Entry
	full       []*Entry
}

// NewTable resolves recs against the default extractor registry. Records not
// available at xlen are skipped.
func NewTable(xlen uint, recs []Record) (*Table, error) {
	t := &Table{xlen: xlen, byMnemonic: make(map[string]*Entry, len(recs))}
	for i := range recs {
		rec := &recs[i]
		md, err := rec.Meta()
		if err != nil {
			return nil, fmt.Errorf("instruction %s: %w", rec.Mnemonic, err)
		}
		if !md.IsISAWidth(xlen) {
			continue
		}
		if _, dup := t.byMnemonic[rec.Mnemonic]; dup {
			return nil, fmt.Errorf("duplicate instruction %s", rec.Mnemonic)
		}
		e, err := newEntry(rec, md)
		if err != nil {
			return nil, fmt.Errorf("instruction %s: %w", rec.Mnemonic, err)
		}
		t.entries = append(t.entries, e)
		t.byMnemonic[rec.Mnemonic] = e
		if e.Extractor.Form().Width() == 16 {
			t.compressed = append(t.compressed, e)
		} else {
			t.full = append(t.full, e)
		}
	}
	for _, list := range [][]*Entry{t.compressed, t.full} {
		sort.SliceStable(list, func(i, j int) bool {
			return bits.OnesCount64(list[i].Mask) > bits.OnesCount64(list[j].Mask)
		})
	}
	return t, nil
}

func newEntry(rec *Record, md *meta.InstMetaData) (*Entry, error) {
	x, err := extract.Lookup(rec.Form)
	if err != nil {
		return nil, err
	}
	fixed, err := extract.FixedFieldMask(x.Form(), rec.Fixed...)
	if err != nil {
		return nil, err
	}
	match := uint64(rec.Match)
	mask := x.Form().OpcodeMask() | fixed
	if match&^mask != 0 {
		return nil, fmt.Errorf("match %#x has bits outside mask %#x", match, mask)
	}
	if fixed != 0 {
		x = x.SpecialCaseClone(fixed, match&fixed)
	}
	return &Entry{Meta: md, Extractor: x, Mask: mask, Match: match}, nil
}

// LoadTable reads a JSON list of records.
func LoadTable(path string, xlen uint) (*Table, error) {
	recs, err := jsonutil.LoadJSON[[]Record](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load instruction table %s: %w", path, err)
	}
	return NewTable(xlen, *recs)
}

//go:embed isa.json
var defaultTable []byte

// DefaultRecords returns the built-in RV64GCV table with the AndeStar extensions.
func DefaultRecords() ([]Record, error) {
	var recs []Record
	if err := json.Unmarshal(defaultTable, &recs); err != nil {
		return nil, fmt.Errorf("built-in instruction table: %w", err)
	}
	return recs, nil
}

// Default is the built-in table at XLEN 64.
var Default = sync.OnceValue(func() *Table {
	recs, err := DefaultRecords()
	if err != nil {
		panic(err)
	}
	t, err := NewTable(64, recs)
	if err != nil {
		panic(err)
	}
	return t
})

func (t *Table) XLEN() uint { return t.xlen }

// Entries lists the table rows in file order.
func (t *Table) Entries() []*Entry { return t.entries }

func (t *Table) Lookup(mnemonic string) (*Entry, error) {
	e, ok := t.byMnemonic[mnemonic]
	if !ok {
		return nil, &UnknownMnemonicError{Mnemonic: mnemonic}
	}
	return e, nil
}

// Decode interprets opcode as mnemonic without checking the encoding.
func (t *Table) Decode(mnemonic string, opcode uint64) (*Instruction, error) {
	e, err := t.Lookup(mnemonic)
	if err != nil {
		return nil, err
	}
	return e.instruction(opcode), nil
}

// Match finds the mnemonic whose encoding opcode carries. Opcodes with low
// bits other than 11 are compressed and only their low 16 bits are used.
func (t *Table) Match(opcode uint64) (*Instruction, error) {
	list := t.full
	op := opcode & 0xffff_ffff
	if riscv.IsCompressed(opcode) {
		list = t.compressed
		op = opcode & 0xffff
	}
	for _, e := range list {
		if e.matches(op) {
			return e.instruction(op), nil
		}
	}
	return nil, &UnknownOpcodeError{Opcode: opcode}
}

func (e *Entry) instruction(op uint64) *Instruction {
	return &Instruction{
		Mnemonic:  e.Meta.Mnemonic(),
		Opcode:    op,
		Extractor: e.Extractor,
		Meta:      e.Meta,
	}
}
