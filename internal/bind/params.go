package bind

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Params are raw text parameters keyed by name.
type Params map[string]string

// ParseAssignments builds Params from "key=value" pairs. Later pairs win.
func ParseAssignments(pairs []string) (Params, error) {
	p := make(Params, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fieldErrorf(pair, "expected key=value, got %q", pair)
		}
		p[strings.ToLower(key)] = strings.TrimSpace(value)
	}
	return p, nil
}

// Variant removes the "mode" parameter and checks it against allowed. An
// absent mode selects allowed[0].
func Variant(p Params, allowed ...string) (mode string, rest Params, err error) {
	rest = make(Params, len(p))
	for k, v := range p {
		if k != "mode" {
			rest[k] = v
		}
	}
	mode = strings.ToLower(p["mode"])
	if mode == "" {
		return allowed[0], rest, nil
	}
	if !slices.Contains(allowed, mode) {
		return "", nil, fieldErrorf("mode", "mode must be one of %s", strings.Join(allowed, ", "))
	}
	return mode, rest, nil
}

// ParseFloat parses a finite decimal number. NaN, Inf and non-numeric
// text are rejected.
func ParseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fieldErrorf(field, "%s must be a number, got %q", field, s)
	}
	return v, nil
}

// ParseInt parses a base-10 integer.
func ParseInt(field, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fieldErrorf(field, "%s must be a whole number, got %q", field, s)
	}
	return v, nil
}

// Decode fills the struct pointed to by dst from p, then validates it.
//
// Each exported field names its parameter with a `param` tag and may give
// a `default` used when the parameter is absent. Supported kinds are
// float64, int and string. Parameters without a matching field are
// rejected.
func Decode(p Params, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind: Decode needs a struct pointer, got %T", dst)
	}
	rv = rv.Elem()
	rt := rv.Type()

	known := make([]string, 0, rt.NumField())
	for i := range rt.NumField() {
		sf := rt.Field(i)
		name := sf.Tag.Get("param")
		if name == "" || !sf.IsExported() {
			continue
		}
		known = append(known, name)

		raw, ok := p[name]
		if !ok || raw == "" {
			raw, ok = sf.Tag.Lookup("default")
			if !ok {
				continue
			}
		}
		if err := setField(rv.Field(i), name, raw); err != nil {
			return err
		}
	}

	keys := slices.Sorted(maps.Keys(p))
	for _, key := range keys {
		if !slices.Contains(known, key) {
			slices.Sort(known)
			return fieldErrorf(key, "unknown parameter %q (want %s)", key, strings.Join(known, ", "))
		}
	}

	return Struct(dst)
}

func setField(fv reflect.Value, name, raw string) error {
	switch fv.Kind() {
	case reflect.Float64:
		v, err := ParseFloat(name, raw)
		if err != nil {
			return err
		}
		fv.SetFloat(v)
	case reflect.Int:
		v, err := ParseInt(name, raw)
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
	case reflect.String:
		fv.SetString(raw)
	default:
		return fmt.Errorf("bind: unsupported field kind %s for %q", fv.Kind(), name)
	}
	return nil
}
