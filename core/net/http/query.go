package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

type undefined struct{}

// Undefined marks a value as absent. Query params holding it are skipped and body
// object fields holding it are dropped, while nil is kept as an explicit null.
var Undefined = undefined{}

// Param is one query entry
type Param struct {
	Key   string
	Value any
}

// Query is an ordered list of query params. Absent values (nil, nil pointers,
// Undefined) are dropped when encoded; every other value is stringified, so
// 0, "" and false are all sent.
type Query []Param

// Add appends key=value and returns the extended query
func (q Query) Add(key string, value any) Query {
	return append(q, Param{Key: key, Value: value})
}

// Join appends key with values joined by commas, or nothing when values is empty
func (q Query) Join(key string, values []string) Query {
	if len(values) == 0 {
		return q
	}
	return q.Add(key, strings.Join(values, ","))
}

// Defined returns the params that survive encoding, stringified, in insertion order
func (q Query) Defined() []Param {
	out := make([]Param, 0, len(q))
	for _, p := range q {
		s, ok := stringify(p.Value)
		if !ok {
			continue
		}
		out = append(out, Param{Key: p.Key, Value: s})
	}
	return out
}

// Encode renders the defined params as an escaped query string without the leading '?'
func (q Query) Encode() string {
	var b strings.Builder
	for i, p := range q.Defined() {
		if i > 0 {
			b.WriteByte('&')
		}
		writeQueryPair(&b, p.Key, p.Value.(string))
	}
	return b.String()
}

// stringify coerces a defined value into its query representation
func stringify(v any) (string, bool) {
	if isAbsent(v) {
		return "", false
	}

	switch t := v.(type) {
	case []string:
		return strings.Join(t, ","), true
	case *[]string:
		return strings.Join(*t, ","), true
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		s = fmt.Sprint(reflect.Indirect(reflect.ValueOf(v)).Interface())
	}
	return s, true
}

// isAbsent reports nil, typed nil pointers/interfaces and Undefined
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	if _, ok := v.(undefined); ok {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
