package meta

import (
	"slices"
)

// InstMetaData is the static, read-only description of one mnemonic: what kind
// of instruction it is, which extension it belongs to, and the data type of
// each of its operands.
type InstMetaData struct {
	mnemonic    string
	instTypes   InstType
	isaExts     ISAExt
	isaWidths   []uint
	defaultType OperandType
	fieldTypes  [NumFieldIDs]OperandType
	typeMask    uint16
	fixedFields []string
	dataSize    uint
	tags        []string
}

type Option func(m *InstMetaData)

func WithInstTypes(t InstType) Option {
	return func(m *InstMetaData) { m.instTypes |= t }
}

func WithISAExt(e ISAExt) Option {
	return func(m *InstMetaData) { m.isaExts |= e }
}

// WithISAWidths restricts the mnemonic to the given XLENs (32, 64).
func WithISAWidths(w ...uint) Option {
	return func(m *InstMetaData) { m.isaWidths = append(m.isaWidths, w...) }
}

// WithOperandType sets the type of every operand not overridden per field.
func WithOperandType(t OperandType) Option {
	return func(m *InstMetaData) { m.defaultType = t }
}

// WithFieldType overrides the type of one operand.
func WithFieldType(id OperandFieldID, t OperandType) Option {
	return func(m *InstMetaData) {
		if id < FieldNone {
			m.fieldTypes[id] = t
		}
	}
}

// WithFixedFields names the encoding fields whose value is fixed for this mnemonic.
func WithFixedFields(names ...string) Option {
	return func(m *InstMetaData) { m.fixedFields = append(m.fixedFields, names...) }
}

// WithDataSize sets the memory access size in bits.
func WithDataSize(bits uint) Option {
	return func(m *InstMetaData) { m.dataSize = bits }
}

func WithTags(tags ...string) Option {
	return func(m *InstMetaData) { m.tags = append(m.tags, tags...) }
}

func New(mnemonic string, opts ...Option) *InstMetaData {
	m := &InstMetaData{mnemonic: mnemonic}
	for _, opt := range opts {
		opt(m)
	}
	if m.defaultType != OperandNone {
		m.typeMask |= m.defaultType.bit()
	}
	for id := RS1; id < FieldNone; id++ {
		if m.fieldTypes[id] == OperandNone {
			m.fieldTypes[id] = m.defaultType
		} else {
			m.typeMask |= m.fieldTypes[id].bit()
		}
	}
	return m
}

func (m *InstMetaData) Mnemonic() string { return m.mnemonic }

func (m *InstMetaData) InstTypes() InstType { return m.instTypes }

// IsInstType reports whether any bit of t is set.
func (m *InstMetaData) IsInstType(t InstType) bool { return m.instTypes&t != 0 }

func (m *InstMetaData) ISAExtensions() ISAExt { return m.isaExts }

// IsExtInstType reports whether the mnemonic belongs to any extension in e.
func (m *InstMetaData) IsExtInstType(e ISAExt) bool { return m.isaExts&e != 0 }

// IsISAWidth reports whether the mnemonic exists at the given XLEN. An empty
// width list means every XLEN.
func (m *InstMetaData) IsISAWidth(xlen uint) bool {
	return len(m.isaWidths) == 0 || slices.Contains(m.isaWidths, xlen)
}

// OperandType returns the declared type of operand id.
func (m *InstMetaData) OperandType(id OperandFieldID) OperandType {
	if id >= FieldNone {
		return OperandNone
	}
	return m.fieldTypes[id]
}

// IsOperandType reports whether operand id is declared as kind.
func (m *InstMetaData) IsOperandType(id OperandFieldID, kind OperandType) bool {
	return kind != OperandNone && m.OperandType(id) == kind
}

// IsNoneOperandType reports that no operand of the mnemonic has type kind.
func (m *InstMetaData) IsNoneOperandType(kind OperandType) bool {
	return kind == OperandNone || m.typeMask&kind.bit() == 0
}

// IsAllOperandType reports that every operand of the mnemonic has type kind,
// including registers the encoding leaves implicit.
func (m *InstMetaData) IsAllOperandType(kind OperandType) bool {
	return kind != OperandNone && m.typeMask == kind.bit()
}

func (m *InstMetaData) FixedFields() []string { return m.fixedFields }

func (m *InstMetaData) IsFixedField(name string) bool {
	return slices.Contains(m.fixedFields, name)
}

// DataSize is the memory access size in bits, zero for non-memory instructions.
func (m *InstMetaData) DataSize() uint { return m.dataSize }

func (m *InstMetaData) HasTag(tag string) bool { return slices.Contains(m.tags, tag) }

func (m *InstMetaData) Tags() []string { return m.tags }
