package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_Encode(t *testing.T) {
	page := 2
	var missing *int

	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{
			name:  "insertion order",
			query: Query{}.Add("z", "1").Add("a", "2"),
			want:  "z=1&a=2",
		},
		{
			name:  "falsy but defined values are kept",
			query: Query{}.Add("zero", 0).Add("empty", "").Add("no", false),
			want:  "zero=0&empty=&no=false",
		},
		{
			name:  "absent values are dropped",
			query: Query{}.Add("nil", nil).Add("ptr", missing).Add("undef", Undefined).Add("kept", "x"),
			want:  "kept=x",
		},
		{
			name:  "pointers are dereferenced",
			query: Query{}.Add("page", &page),
			want:  "page=2",
		},
		{
			name:  "floats and escaping",
			query: Query{}.Add("ratio", 1.5).Add("query", "black & white"),
			want:  "ratio=1.5&query=black+%26+white",
		},
		{
			name:  "joined values",
			query: Query{}.Join("ids", []string{"a", "b"}).Join("none", nil),
			want:  "ids=a%2Cb",
		},
		{
			name:  "empty",
			query: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Encode())
		})
	}
}

func TestQuery_Defined(t *testing.T) {
	q := Query{}.Add("a", 1).Add("b", nil).Add("c", true)
	assert.Equal(t, []Param{{Key: "a", Value: "1"}, {Key: "c", Value: "true"}}, q.Defined())
}
