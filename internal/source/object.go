package source

import (
	"bytes"
	"encoding/json"
	"errors"

	"scene-converter/internal/common"
)

// object is a decoded JSON object whose members are still raw, so that
// required and optional keys can be told apart and reported with a path.
type object struct {
	path   string
	fields map[string]json.RawMessage
}

func newObject(path string, raw json.RawMessage) (object, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return object{}, malformed(path, err)
	}

	if fields == nil {
		return object{}, malformed(path, errors.New("expected an object, got null"))
	}

	return object{path: path, fields: fields}, nil
}

func (o object) child(key string) (object, error) {
	raw, ok := o.fields[key]
	if !ok {
		return object{}, &KeyError{Path: o.path, Key: key}
	}

	return newObject(common.Join(o.path, key), raw)
}

// list returns the raw elements of a required array member.
func (o object) list(key string) ([]json.RawMessage, error) {
	raw, ok := o.fields[key]
	if !ok {
		return nil, &KeyError{Path: o.path, Key: key}
	}

	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, malformed(common.Join(o.path, key), errors.New("expected an array, got null"))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, malformed(common.Join(o.path, key), err)
	}

	return items, nil
}

// members decodes the members of one object and keeps the first error, so a
// descriptor can be read as a flat list of require/optional calls.
type members struct {
	o   object
	err error
}

func (f *members) require(key string, v any) {
	if f.err != nil {
		return
	}

	raw, ok := f.o.fields[key]
	if !ok {
		f.err = &KeyError{Path: f.o.path, Key: key}
		return
	}

	f.decode(key, raw, v)
}

// optional decodes key into v when present and reports whether it was.
func (f *members) optional(key string, v any) bool {
	if f.err != nil {
		return false
	}

	raw, ok := f.o.fields[key]
	if !ok {
		return false
	}

	f.decode(key, raw, v)

	return f.err == nil
}

func (f *members) decode(key string, raw json.RawMessage, v any) {
	if err := json.Unmarshal(raw, v); err != nil {
		f.err = malformed(common.Join(f.o.path, key), err)
	}
}
