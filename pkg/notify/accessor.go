package notify

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// FieldNamer turns the struct field a selector points at into the name
// recorded on notifications.
type FieldNamer func(reflect.StructField) string

// GoFieldNamer reports the declared Go field name. It is the default.
func GoFieldNamer(f reflect.StructField) string {
	return f.Name
}

// JSONFieldNamer reports the name from the field's json tag, falling back to
// the Go field name when the tag is missing, empty or "-".
func JSONFieldNamer(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

type fieldKey struct {
	owner  reflect.Type
	offset uintptr
	value  reflect.Type
}

// fieldCache maps fieldKey to the resolved reflect.StructField.
var fieldCache sync.Map

// resolve calls sel on target and identifies the struct field whose address
// it returned. Any selector that is not a plain member access panics with
// ErrInvalidSelector.
func resolve[T, V any](target *T, sel func(*T) *V) (reflect.StructField, V) {
	owner := reflect.TypeFor[T]()
	if sel == nil {
		panic(fmt.Errorf("%w: nil selector for %s", ErrInvalidSelector, owner))
	}
	if owner.Kind() != reflect.Struct {
		panic(fmt.Errorf("%w: %s is not a struct", ErrInvalidSelector, owner))
	}

	ptr := sel(target)
	if ptr == nil {
		panic(fmt.Errorf("%w: selector for %s returned nil", ErrInvalidSelector, owner))
	}

	base := reflect.ValueOf(target).Pointer()
	addr := reflect.ValueOf(ptr).Pointer()
	if addr < base || addr >= base+owner.Size() {
		panic(fmt.Errorf("%w: selector for %s returned a pointer outside the target", ErrInvalidSelector, owner))
	}

	key := fieldKey{owner: owner, offset: addr - base, value: reflect.TypeFor[V]()}
	if f, ok := fieldCache.Load(key); ok {
		return f.(reflect.StructField), *ptr
	}

	f, ok := fieldAt(owner, key.offset, key.value)
	if !ok {
		panic(fmt.Errorf("%w: no field of type %s at offset %d in %s", ErrInvalidSelector, key.value, key.offset, owner))
	}
	fieldCache.Store(key, f)
	return f, *ptr
}

// fieldAt finds the field of type want starting at offset inside t,
// descending into nested struct values so that the innermost match wins.
func fieldAt(t reflect.Type, offset uintptr, want reflect.Type) (reflect.StructField, bool) {
	for i := range t.NumField() {
		f := t.Field(i)
		if offset < f.Offset || offset >= f.Offset+max(f.Type.Size(), 1) {
			continue
		}
		if f.Type.Kind() == reflect.Struct {
			if inner, ok := fieldAt(f.Type, offset-f.Offset, want); ok {
				return inner, true
			}
		}
		if f.Offset == offset && f.Type == want {
			return f, true
		}
	}
	return reflect.StructField{}, false
}
