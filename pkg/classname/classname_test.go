//go:build unit

package classname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromInternal(t *testing.T) {
	assert.Equal(t, "java.lang.String", FromInternal("java/lang/String"))
	assert.Equal(t, "com.x.Outer$Inner", FromInternal("com/x/Outer$Inner"))
	assert.Equal(t, "Default", FromInternal("Default"))
	assert.Equal(t, "com/x/Foo", ToInternal("com.x.Foo"))
}

func TestHasAnyPrefix(t *testing.T) {
	tests := []struct {
		name     string
		class    string
		prefixes []string
		expected bool
	}{
		{name: "No prefixes", class: "com.x.Foo", prefixes: nil, expected: false},
		{name: "Matching prefix", class: "com.x.Foo", prefixes: []string{"org.", "com.x."}, expected: true},
		{name: "No match", class: "com.x.Foo", prefixes: []string{"com.y."}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasAnyPrefix(tt.class, tt.prefixes))
		})
	}
}

func TestSet(t *testing.T) {
	s := NewSet("b.B", "a.A", "")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("a.A"))
	assert.False(t, s.Has(""))

	s.AddAll(NewSet("c.C", "a.A"))
	assert.Equal(t, []string{"a.A", "b.B", "c.C"}, s.Sorted())

	s.Remove("b.B")
	assert.True(t, s.Equal(NewSet("c.C", "a.A")))
	assert.False(t, s.Equal(NewSet("c.C")))
	assert.False(t, s.Equal(NewSet("c.C", "d.D")))
}
