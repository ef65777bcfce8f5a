package extract

import (
	"fmt"
	"sync"

	"github.com/ethereum-optimism/rvform/rvgo/form"
)

// Registry maps form and xform names to their extractors. It is read-only
// once built and safe for concurrent use.
type Registry struct {
	byName map[string]Extractor
	order  []string
}

func newRegistry(groups ...[]namedLayout) *Registry {
	r := &Registry{byName: make(map[string]Extractor)}
	for _, g := range groups {
		for _, nl := range g {
			if _, dup := r.byName[nl.name]; dup {
				panic(fmt.Errorf("duplicate extractor %q", nl.name))
			}
			r.byName[nl.name] = newExtractor(nl.name, nl.l)
			r.order = append(r.order, nl.name)
		}
	}
	return r
}

// Default holds an extractor for every form plus the xforms, built on first use.
var Default = sync.OnceValue(func() *Registry {
	return newRegistry(stdLayouts(), rvcLayouts(), vectorLayouts(), andesLayouts())
})

// Get returns the named extractor, or an *UnknownExtractorError.
func (r *Registry) Get(name string) (Extractor, error) {
	x, ok := r.byName[name]
	if !ok {
		return nil, &UnknownExtractorError{Name: name}
	}
	return x, nil
}

// Find returns the named extractor, or nil.
func (r *Registry) Find(name string) Extractor {
	return r.byName[name]
}

// Names lists extractor names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Lookup is a convenience for Default().Get.
func Lookup(name string) (Extractor, error) {
	return Default().Get(name)
}

// FixedFieldMask is the union of the positioned masks of the named fields of f.
func FixedFieldMask(f *form.Form, names ...string) (uint64, error) {
	var m uint64
	for _, n := range names {
		fld, err := f.Field(n)
		if err != nil {
			return 0, err
		}
		m |= fld.ShiftedMask()
	}
	return m, nil
}
