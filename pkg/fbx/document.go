package fbx

import (
	"fmt"
	"strings"
)

// Document is a decoded FBX file.
type Document struct {
	Version uint32
	Records []*Record
}

// Find returns the first top-level record named name, or nil.
func (d *Document) Find(name string) *Record {
	for _, r := range d.Records {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Record is one node of the FBX record tree.
type Record struct {
	Name     string
	Props    []any
	Children []*Record
}

// NewRecord creates a record with the given properties.
func NewRecord(name string, props ...any) *Record {
	return &Record{Name: name, Props: props}
}

// Add appends children and returns r.
func (r *Record) Add(children ...*Record) *Record {
	r.Children = append(r.Children, children...)
	return r
}

// Child returns the first child named name, or nil.
func (r *Record) Child(name string) *Record {
	if r == nil {
		return nil
	}
	for _, c := range r.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Int64 returns property i as an int64. Integer properties of any width
// are accepted.
func (r *Record) Int64(i int) (int64, error) {
	v, err := r.prop(i)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case int64:
		return x, nil
	case int32:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	}
	return 0, r.typeError(i, "integer")
}

// Float64 returns property i as a float64. Integer properties are converted.
func (r *Record) Float64(i int) (float64, error) {
	v, err := r.prop(i)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	}
	n, err := r.Int64(i)
	if err != nil {
		return 0, r.typeError(i, "number")
	}
	return float64(n), nil
}

// String returns property i as a string.
func (r *Record) String(i int) (string, error) {
	v, err := r.prop(i)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", r.typeError(i, "string")
	}
	return s, nil
}

// Int64s returns property i as an int64 array. int32 arrays are widened.
func (r *Record) Int64s(i int) ([]int64, error) {
	v, err := r.prop(i)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case []int64:
		return x, nil
	case []int32:
		out := make([]int64, len(x))
		for j, n := range x {
			out[j] = int64(n)
		}
		return out, nil
	}
	return nil, r.typeError(i, "integer array")
}

// Int32s returns property i as an int32 array.
func (r *Record) Int32s(i int) ([]int32, error) {
	v, err := r.prop(i)
	if err != nil {
		return nil, err
	}
	x, ok := v.([]int32)
	if !ok {
		return nil, r.typeError(i, "int32 array")
	}
	return x, nil
}

// Float32s returns property i as a float32 array. float64 arrays are
// narrowed.
func (r *Record) Float32s(i int) ([]float32, error) {
	v, err := r.prop(i)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case []float32:
		return x, nil
	case []float64:
		out := make([]float32, len(x))
		for j, f := range x {
			out[j] = float32(f)
		}
		return out, nil
	}
	return nil, r.typeError(i, "float array")
}

func (r *Record) prop(i int) (any, error) {
	if i < 0 || i >= len(r.Props) {
		return nil, fmt.Errorf("record %s: missing property %d", r.Name, i)
	}
	return r.Props[i], nil
}

func (r *Record) typeError(i int, want string) error {
	return fmt.Errorf("record %s: property %d is %T, want %s", r.Name, i, r.Props[i], want)
}

// nameSeparator splits "Name\x00\x01Class" object names.
const nameSeparator = "\x00\x01"

// ObjectName strips the class suffix from an FBX object name. Both the
// binary "Name\x00\x01Class" and the "Class::Name" forms are recognized.
func ObjectName(s string) string {
	if i := strings.Index(s, nameSeparator); i >= 0 {
		return s[:i]
	}
	if i := strings.Index(s, "::"); i >= 0 {
		return s[i+2:]
	}
	return s
}
