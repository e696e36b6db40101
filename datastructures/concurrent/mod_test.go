package concurrent

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Map_Add_If_Absent(t *testing.T) {
	m := NewMap[string, int]()

	var wg sync.WaitGroup
	var lock sync.Mutex
	added := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			if m.AddIfAbsent("key", v) {
				lock.Lock()
				added++
				lock.Unlock()
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, added)
	require.Len(t, m.Values(), 1)

	_, ok := m.Get("missing")
	require.False(t, ok)
}

func Test_Slice(t *testing.T) {
	s := NewSlice[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			s.Append(v)
		}(i)
	}
	wg.Wait()

	elems := s.Elements()
	require.Len(t, elems, 50)
	for i := 0; i < 50; i++ {
		require.Contains(t, elems, i)
	}

	elems[0] = -1
	require.NotContains(t, s.Elements(), -1)
}

func Test_Set(t *testing.T) {
	s := NewSet[string]()

	require.True(t, s.Add("a"))
	require.False(t, s.Add("a"))
	require.True(t, s.Add("b"))
	require.Equal(t, 2, s.Values().Size())

	s.Remove("a")
	require.False(t, s.Contains("a"))
	require.True(t, s.Values().Contains("b"))
}
