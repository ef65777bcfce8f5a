package form

import (
	"fmt"
	"sync"
)

// All returns every declared form in catalog order.
func All() []*Form {
	return []*Form{
		R, Rfloat, R4, I, ISH, ISHW, S, B, U, J, CSR, CSRI, FENCE, AMO,
		C0, C1, C2, CA, CB, CI, CIrDOnly, CIW, CIX, CJ, CJR, CR, CSS,
		V, VFMem, VSetvli, VSetivli, VSetvl, VUimm6,
		AndesCustom0, AndesCustom0S, AndesCustom1, AndesCustom1S,
		AndesCustom2, AndesCustom2BBx, AndesCustom2BxC, AndesCustom2XDEF,
	}
}

// Registry resolves form names, as used by data-driven instruction tables.
// It is read-only once built.
type Registry struct {
	forms map[string]*Form
	order []string
}

// NewRegistry indexes forms by name. Duplicate names panic.
func NewRegistry(forms ...*Form) *Registry {
	r := &Registry{forms: make(map[string]*Form, len(forms))}
	for _, f := range forms {
		if _, dup := r.forms[f.Name()]; dup {
			panic(fmt.Errorf("duplicate form %q", f.Name()))
		}
		r.forms[f.Name()] = f
		r.order = append(r.order, f.Name())
	}
	return r
}

// Default is the process-wide registry of All forms, built on first use.
var Default = sync.OnceValue(func() *Registry {
	return NewRegistry(All()...)
})

// Get returns the named form, or an *UnknownFormError.
func (r *Registry) Get(name string) (*Form, error) {
	f, ok := r.forms[name]
	if !ok {
		return nil, &UnknownFormError{Name: name}
	}
	return f, nil
}

// Find returns the named form, or nil.
func (r *Registry) Find(name string) *Form {
	return r.forms[name]
}

// Names lists the registered form names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Lookup is a convenience for Default().Get.
func Lookup(name string) (*Form, error) {
	return Default().Get(name)
}
