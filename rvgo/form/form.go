package form

import (
	"fmt"
	"sort"
)

// ImmKind classifies the immediate of a Form.
type ImmKind uint8

const (
	ImmNone ImmKind = iota
	ImmUnsigned
	ImmSigned
)

func (k ImmKind) String() string {
	switch k {
	case ImmNone:
		return "none"
	case ImmUnsigned:
		return "unsigned"
	case ImmSigned:
		return "signed"
	default:
		return fmt.Sprintf("ImmKind(%d)", uint8(k))
	}
}

// Form is the fixed field catalog of one instruction encoding shape.
// Forms are built at package initialisation and never change afterwards.
type Form struct {
	name         string
	width        uint
	fields       []*Field
	byName       map[string]*Field
	index        map[string]int
	opcodeFields []*Field
	concat       map[string]*ConcatField
	immKind      ImmKind
}

type formOption func(f *Form)

// withAlias registers alias as a second name for the already declared field target.
// Both names resolve to the same *Field.
func withAlias(alias, target string) formOption {
	return func(f *Form) {
		fld, ok := f.byName[target]
		if !ok {
			panic(fmt.Errorf("form %s: alias %q of unknown field %q", f.name, alias, target))
		}
		if _, dup := f.byName[alias]; dup {
			panic(fmt.Errorf("form %s: duplicate field name %q", f.name, alias))
		}
		f.byName[alias] = fld
		f.index[alias] = f.index[target]
	}
}

func withOpcodeFields(names ...string) formOption {
	return func(f *Form) {
		for _, n := range names {
			fld, ok := f.byName[n]
			if !ok {
				panic(fmt.Errorf("form %s: opcode field %q not declared", f.name, n))
			}
			f.opcodeFields = append(f.opcodeFields, fld)
		}
	}
}

func withConcat(c *ConcatField) formOption {
	return func(f *Form) {
		for _, s := range c.Fields() {
			if s.Pos()+s.Len() > f.width {
				panic(fmt.Errorf("form %s: concat %q exceeds %d-bit word", f.name, c.Name(), f.width))
			}
		}
		f.concat[c.Name()] = c
	}
}

func newForm(name string, width uint, imm ImmKind, fields []*Field, opts ...formOption) *Form {
	f := &Form{
		name:    name,
		width:   width,
		fields:  fields,
		byName:  make(map[string]*Field, len(fields)),
		index:   make(map[string]int, len(fields)),
		concat:  make(map[string]*ConcatField),
		immKind: imm,
	}
	for i, fld := range fields {
		if fld.Pos()+fld.Len() > width {
			panic(fmt.Errorf("form %s: field %s exceeds %d-bit word", name, fld, width))
		}
		if _, dup := f.byName[fld.Name()]; dup {
			panic(fmt.Errorf("form %s: duplicate field name %q", name, fld.Name()))
		}
		f.byName[fld.Name()] = fld
		f.index[fld.Name()] = i
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) Name() string { return f.name }

// Width is the instruction word width in bits: 16 for compressed forms, 32 otherwise.
func (f *Form) Width() uint { return f.width }

// Fields returns the declared fields in declaration order, without aliases.
func (f *Form) Fields() []*Field { return f.fields }

// FieldNames returns every name the form answers to, aliases included, sorted.
func (f *Form) FieldNames() []string {
	names := make([]string, 0, len(f.byName))
	for n := range f.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (f *Form) Field(name string) (*Field, error) {
	fld, ok := f.byName[name]
	if !ok {
		return nil, &UnknownFieldError{Form: f.name, Field: name}
	}
	return fld, nil
}

// MustField is Field for names known at compile time.
func (f *Form) MustField(name string) *Field {
	fld, err := f.Field(name)
	if err != nil {
		panic(err)
	}
	return fld
}

func (f *Form) FieldIndex(name string) (int, error) {
	i, ok := f.index[name]
	if !ok {
		return 0, &UnknownFieldError{Form: f.name, Field: name}
	}
	return i, nil
}

// HasField reports whether name is a field or alias of the form.
func (f *Form) HasField(name string) bool {
	_, ok := f.byName[name]
	return ok
}

// OpcodeFields are the fields a decode table matches on to tell apart the
// instructions sharing this form.
func (f *Form) OpcodeFields() []*Field { return f.opcodeFields }

// OpcodeMask is the union of the opcode fields' positioned masks.
func (f *Form) OpcodeMask() uint64 {
	var m uint64
	for _, fld := range f.opcodeFields {
		m |= fld.ShiftedMask()
	}
	return m
}

// ConcatField returns a reassembled multi-range field, such as "imm".
func (f *Form) ConcatField(name string) (*ConcatField, error) {
	c, ok := f.concat[name]
	if !ok {
		return nil, &UnknownFieldError{Form: f.name, Field: name}
	}
	return c, nil
}

// MustConcatField is ConcatField for names known at compile time.
func (f *Form) MustConcatField(name string) *ConcatField {
	c, err := f.ConcatField(name)
	if err != nil {
		panic(err)
	}
	return c
}

func (f *Form) ImmediateKind() ImmKind { return f.immKind }

func (f *Form) HasImmediate() bool { return f.immKind != ImmNone }

func (f *Form) String() string { return f.name }
