package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushFrontOrder(t *testing.T) {
	l := NewLinkedList([]any{1, 2, 3})
	require.Equal(t, 3, l.Size())
	var got []any
	l.ForEach(func(_ int, v any) bool {
		got = append(got, v)
		return true
	})
	assert.Equal(t, []any{3, 2, 1}, got)

	var nilList *LinkedList
	assert.Panics(t, func() { nilList.Size() })
}

func TestFind(t *testing.T) {
	l := NewLinkedList(nil)
	_, ok := l.Find(func(any) bool { return true })
	assert.False(t, ok)
	l.PushFront("a")
	l.PushFront("b")
	val, ok := l.Find(func(v any) bool { return v == "a" })
	require.True(t, ok)
	assert.Equal(t, "a", val)
	_, ok = l.Find(func(v any) bool { return v == "z" })
	assert.False(t, ok)
}

func TestForEachStops(t *testing.T) {
	l := NewLinkedList([]any{1, 2, 3, 4})
	seen := 0
	l.ForEach(func(i int, _ any) bool {
		seen++
		return i < 1
	})
	assert.Equal(t, 2, seen)
}
