package extract

import "fmt"

// SpecialField names a control field that is neither a register nor the
// immediate, such as a rounding mode or a CSR number.
type SpecialField uint8

const (
	SpecialAQ SpecialField = iota
	SpecialAVL
	SpecialCSR
	SpecialFM
	SpecialNF
	SpecialPred
	SpecialRL
	SpecialRM
	SpecialSucc
	SpecialVM
	SpecialWD
	SpecialCIMM
	SpecialMSB
	SpecialLSB
	numSpecialFields
)

var specialFieldNames = [numSpecialFields]string{
	SpecialAQ:   "aq",
	SpecialAVL:  "avl",
	SpecialCSR:  "csr",
	SpecialFM:   "fm",
	SpecialNF:   "nf",
	SpecialPred: "pred",
	SpecialRL:   "rl",
	SpecialRM:   "rm",
	SpecialSucc: "succ",
	SpecialVM:   "vm",
	SpecialWD:   "wd",
	SpecialCIMM: "cimm",
	SpecialMSB:  "msb",
	SpecialLSB:  "lsb",
}

func (s SpecialField) String() string {
	if s < numSpecialFields {
		return specialFieldNames[s]
	}
	return fmt.Sprintf("SpecialField(%d)", uint8(s))
}

// ParseSpecialField is the inverse of SpecialField.String.
func ParseSpecialField(name string) (SpecialField, error) {
	for i, n := range specialFieldNames {
		if n == name {
			return SpecialField(i), nil
		}
	}
	return 0, fmt.Errorf("unknown special field %q", name)
}

func (s SpecialField) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *SpecialField) UnmarshalText(text []byte) error {
	v, err := ParseSpecialField(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// SpecialFields lists every special field in enum order.
func SpecialFields() []SpecialField {
	out := make([]SpecialField, numSpecialFields)
	for i := range out {
		out[i] = SpecialField(i)
	}
	return out
}

// UnsupportedSpecialFieldError is returned when an extractor's form has no
// such special field. It is never a zero value in disguise.
type UnsupportedSpecialFieldError struct {
	Extractor string
	Field     SpecialField
}

func (e *UnsupportedSpecialFieldError) Error() string {
	return fmt.Sprintf("special field %s not supported by extractor %s", e.Field, e.Extractor)
}

// UnknownExtractorError is returned for a form or xform name with no extractor.
type UnknownExtractorError struct {
	Name string
}

func (e *UnknownExtractorError) Error() string {
	return fmt.Sprintf("unknown extractor %q", e.Name)
}
