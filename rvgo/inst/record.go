package inst

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ethereum-optimism/rvform/rvgo/meta"
)

// Record is one row of a JSON instruction table.
type Record struct {
	Mnemonic string `json:"mnemonic"`
	// Form names the extractor: a form name, or an xform for per-instruction variants.
	Form string `json:"form"`
	// Match holds the opcode bits selecting this mnemonic, under the form's
	// opcode fields plus the fixed fields.
	Match hexutil.Uint64 `json:"match"`

	Type   []string `json:"type,omitempty"`
	Ext    []string `json:"ext,omitempty"`
	Widths []uint   `json:"widths,omitempty"`

	OperandType   meta.OperandType                         `json:"operand-type,omitempty"`
	OperandFields map[meta.OperandFieldID]meta.OperandType `json:"operand-fields,omitempty"`

	Fixed []string `json:"fixed,omitempty"`
	Data  uint     `json:"data,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// Meta converts the record into read-only instruction metadata.
func (r *Record) Meta() (*meta.InstMetaData, error) {
	opts := []meta.Option{
		meta.WithOperandType(r.OperandType),
		meta.WithDataSize(r.Data),
	}
	for _, name := range r.Type {
		t, err := meta.ParseInstType(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, meta.WithInstTypes(t))
	}
	for _, name := range r.Ext {
		e, err := meta.ParseISAExt(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, meta.WithISAExt(e))
	}
	for id, t := range r.OperandFields {
		if id >= meta.FieldNone {
			return nil, fmt.Errorf("operand type for field %s", id)
		}
		opts = append(opts, meta.WithFieldType(id, t))
	}
	if len(r.Widths) > 0 {
		opts = append(opts, meta.WithISAWidths(r.Widths...))
	}
	if len(r.Fixed) > 0 {
		opts = append(opts, meta.WithFixedFields(r.Fixed...))
	}
	if len(r.Tags) > 0 {
		opts = append(opts, meta.WithTags(r.Tags...))
	}
	return meta.New(r.Mnemonic, opts...), nil
}
