package bt

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlackboard_BasicOperations(t *testing.T) {
	t.Parallel()

	bb := new(Blackboard)

	bb.Set("key1", "value1")
	require.Equal(t, "value1", bb.Get("key1"))

	require.Nil(t, bb.Get("nonexistent"))

	require.True(t, bb.Has("key1"))
	require.False(t, bb.Has("nonexistent"))

	bb.Delete("key1")
	require.False(t, bb.Has("key1"))
	require.Nil(t, bb.Get("key1"))

	bb.Set("int", 42)
	bb.Set("float", 3.14)
	bb.Set("bool", true)
	bb.Set("slice", []int{1, 2, 3})

	require.Equal(t, 42, bb.Get("int"))
	require.Equal(t, 3.14, bb.Get("float"))
	require.Equal(t, true, bb.Get("bool"))
	require.Equal(t, []int{1, 2, 3}, bb.Get("slice"))
}

func TestBlackboard_ZeroValueReads(t *testing.T) {
	t.Parallel()

	bb := new(Blackboard)

	require.Nil(t, bb.Get("x"))
	require.False(t, bb.Has("x"))
	require.Empty(t, bb.Keys())
	require.Zero(t, bb.Len())
	require.Nil(t, bb.Snapshot())
	bb.Delete("x")
	bb.Clear()
}

func TestBlackboard_Keys(t *testing.T) {
	t.Parallel()

	bb := new(Blackboard)
	bb.Set("a", 1)
	bb.Set("b", 2)
	bb.Set("c", 3)

	require.ElementsMatch(t, []string{"a", "b", "c"}, bb.Keys())
	require.Equal(t, 3, bb.Len())
}

func TestBlackboard_Clear(t *testing.T) {
	t.Parallel()

	bb := new(Blackboard)
	bb.Set("a", 1)
	bb.Set("b", 2)

	bb.Clear()

	require.Zero(t, bb.Len())
	require.False(t, bb.Has("a"))

	// Usable after clearing.
	bb.Set("a", 10)
	require.Equal(t, 10, bb.Get("a"))
}

func TestBlackboard_Snapshot(t *testing.T) {
	t.Parallel()

	bb := new(Blackboard)
	bb.Set("a", 1)
	bb.Set("b", "two")

	snapshot := bb.Snapshot()
	require.Equal(t, map[string]any{"a": 1, "b": "two"}, snapshot)

	// Snapshot is a copy: later writes don't leak into it.
	bb.Set("c", 3)
	require.NotContains(t, snapshot, "c")
}

func TestBlackboard_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	bb := new(Blackboard)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bb.Set("shared", n)
				_ = bb.Get("shared")
				_ = bb.Len()
			}
		}(i)
	}
	wg.Wait()

	require.True(t, bb.Has("shared"))
}
