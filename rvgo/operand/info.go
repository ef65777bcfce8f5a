package operand

import (
	"fmt"
	"strings"

	"github.com/ethereum-optimism/rvform/rvgo/meta"
)

// Element describes one operand of a decoded instruction.
type Element struct {
	FieldID     meta.OperandFieldID
	Type        meta.OperandType
	Value       uint32
	IsStoreData bool
	IsImplied   bool
}

func (e Element) String() string {
	s := fmt.Sprintf("%s:%s=%d", e.FieldID, e.Type, e.Value)
	if e.IsStoreData {
		s += " store-data"
	}
	if e.IsImplied {
		s += " implied"
	}
	return s
}

// DuplicateError reports two different elements for the same operand field.
// It can only come from an extractor bug.
type DuplicateError struct {
	Existing Element
	Added    Element
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("operand %s added twice with different attributes: have %s, got %s",
		e.Existing.FieldID, e.Existing, e.Added)
}

// InvalidFieldError is returned when querying a field the Info does not hold.
type InvalidFieldError struct {
	FieldID meta.OperandFieldID
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("no operand for field %s", e.FieldID)
}

// Info is the ordered list of operands produced by one extractor call.
// It is built per decode and not shared.
type Info struct {
	elems  []Element
	nOpers int
	nTypes [meta.NumOperandTypes]int
}

// Add appends e. An element identical to one already present only bumps the
// operand count; a different element for the same field is rejected.
func (info *Info) Add(e Element) error {
	for _, have := range info.elems {
		if have.FieldID != e.FieldID {
			continue
		}
		if have != e {
			return &DuplicateError{Existing: have, Added: e}
		}
		info.nOpers++
		return nil
	}
	info.elems = append(info.elems, e)
	info.nOpers++
	if int(e.Type) < len(info.nTypes) {
		info.nTypes[e.Type]++
	}
	return nil
}

// MustAdd is Add for extractors, where a conflicting element is a programming error.
func (info *Info) MustAdd(e Element) {
	if err := info.Add(e); err != nil {
		panic(err)
	}
}

func (info Info) Elements() []Element { return info.elems }

// NOpers counts every successful Add, exact duplicates included.
func (info Info) NOpers() int { return info.nOpers }

// NTypes counts distinct elements of type t.
func (info Info) NTypes(t meta.OperandType) int {
	if int(t) >= len(info.nTypes) {
		return 0
	}
	return info.nTypes[t]
}

func (info Info) HasField(id meta.OperandFieldID) bool {
	_, err := info.Element(id)
	return err == nil
}

func (info Info) Element(id meta.OperandFieldID) (Element, error) {
	for _, e := range info.elems {
		if e.FieldID == id {
			return e, nil
		}
	}
	return Element{}, &InvalidFieldError{FieldID: id}
}

func (info Info) FieldValue(id meta.OperandFieldID) (uint32, error) {
	e, err := info.Element(id)
	return e.Value, err
}

func (info Info) OperandType(id meta.OperandFieldID) (meta.OperandType, error) {
	e, err := info.Element(id)
	return e.Type, err
}

func (info Info) IsStoreData(id meta.OperandFieldID) (bool, error) {
	e, err := info.Element(id)
	return e.IsStoreData, err
}

func (info Info) IsImplied(id meta.OperandFieldID) (bool, error) {
	e, err := info.Element(id)
	return e.IsImplied, err
}

func (info Info) String() string {
	parts := make([]string, len(info.elems))
	for i, e := range info.elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
