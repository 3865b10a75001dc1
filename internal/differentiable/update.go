package differentiable

import (
	"reflect"

	"github.com/pkg/errors"
)

// ErrMismatchedCount reports an aggregate update whose parameters and
// gradients do not have the same number of elements. It is raised as a panic.
var ErrMismatchedCount = errors.New("parameter and gradient element counts differ")

// ParameterGroup is an aggregate of parameters of element type P.
//
// UpdateWithGradients walks the receiver and gradients in lockstep and calls
// updater once per element, passing the parameter by reference.
type ParameterGroup[G, P any] interface {
	UpdateWithGradients(gradients G, updater func(param *P, gradient P))
}

// UpdateArray updates each parameter group in params with the matching group
// in gradients. The slices must have equal length.
//
// Example:
//
//	layers := []vector.Vec{w1, w2}
//	differentiable.UpdateArray(layers, grads, func(p *float64, g float64) {
//	    *p -= lr * g
//	})
func UpdateArray[G any, PG interface {
	*G
	ParameterGroup[G, P]
}, P any](params, gradients []G, updater func(param *P, gradient P)) {
	if len(params) != len(gradients) {
		panic(errors.Wrapf(ErrMismatchedCount, "differentiable: UpdateArray: %d groups, %d gradients",
			len(params), len(gradients)))
	}
	for i := range params {
		PG(&params[i]).UpdateWithGradients(gradients[i], updater)
	}
}

// UpdateFields applies updater to every float64 reachable from params,
// pairing it with the value at the same position in gradients.
//
// params must be a non-nil pointer to a struct; gradients must be a struct
// (or pointer to a struct) of the same type. Nested structs, pointers to
// structs, slices and arrays are walked recursively in lockstep. Float32 fields
// are widened for the updater and narrowed back. Values whose type is itself a
// float64 ParameterGroup (vector.Vec, vector.Matrix) update through their own
// UpdateWithGradients. Fields tagged `ad:"-"` and unexported fields carry no
// derivative and are skipped.
//
// A nil gradient slice leaves the matching parameters untouched; otherwise
// slice lengths must match.
func UpdateFields(params, gradients any, updater func(param *float64, gradient float64)) {
	pv := reflect.ValueOf(params)
	if pv.Kind() != reflect.Pointer || pv.IsNil() {
		panic("differentiable: UpdateFields: params must be a non-nil pointer")
	}
	gv := reflect.ValueOf(gradients)
	if gv.Kind() == reflect.Pointer {
		gv = gv.Elem()
	}
	pe := pv.Elem()
	if pe.Type() != gv.Type() {
		panic(errors.Errorf("differentiable: UpdateFields: parameter type %s, gradient type %s",
			pe.Type(), gv.Type()))
	}
	updateValue(pe, gv, updater, pe.Type().String())
}

var updaterType = reflect.TypeOf(func(*float64, float64) {})

func updateValue(p, g reflect.Value, updater func(*float64, float64), path string) {
	if group, ok := groupMethod(p); ok {
		group.Call([]reflect.Value{g, reflect.ValueOf(updater)})
		return
	}

	switch p.Kind() {
	case reflect.Float64:
		x := p.Float()
		updater(&x, g.Float())
		p.SetFloat(x)

	case reflect.Float32:
		x := p.Float()
		updater(&x, g.Float())
		p.SetFloat(x)

	case reflect.Struct:
		t := p.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || f.Tag.Get("ad") == "-" {
				continue
			}
			updateValue(p.Field(i), g.Field(i), updater, path+"."+f.Name)
		}

	case reflect.Pointer:
		if p.IsNil() || g.IsNil() {
			return
		}
		updateValue(p.Elem(), g.Elem(), updater, path)

	case reflect.Slice:
		if g.Len() == 0 {
			return
		}
		if p.Len() != g.Len() {
			panic(errors.Wrapf(ErrMismatchedCount, "differentiable: UpdateFields: %s has %d elements, gradient has %d",
				path, p.Len(), g.Len()))
		}
		for i := 0; i < p.Len(); i++ {
			updateValue(p.Index(i), g.Index(i), updater, path)
		}

	case reflect.Array:
		for i := 0; i < p.Len(); i++ {
			updateValue(p.Index(i), g.Index(i), updater, path)
		}
	}
}

// groupMethod returns the UpdateWithGradients method of values that are
// float64 parameter groups themselves, such as vector.Vec and vector.Matrix.
func groupMethod(p reflect.Value) (reflect.Value, bool) {
	if !p.CanInterface() {
		return reflect.Value{}, false
	}
	m := p.MethodByName("UpdateWithGradients")
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	t := m.Type()
	if t.NumIn() != 2 || t.NumOut() != 0 || t.In(0) != p.Type() || t.In(1) != updaterType {
		return reflect.Value{}, false
	}
	return m, true
}
