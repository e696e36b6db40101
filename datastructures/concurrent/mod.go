package concurrent

import (
	"sync"

	"go.dedis.ch/arp/datastructures"
)

// Thread safe append-only slice. Any operation is guaranteed to be thread-safe.
type Slice[T any] struct {
	sync.RWMutex
	elements []T
}

func NewSlice[T any]() Slice[T] {
	return Slice[T]{
		elements: make([]T, 0),
	}
}

func (slice *Slice[T]) Append(elem T) {
	slice.Lock()
	defer slice.Unlock()
	slice.elements = append(slice.elements, elem)
}

// Returns a copy of the elements, in insertion order.
func (slice *Slice[T]) Elements() []T {
	slice.RLock()
	defer slice.RUnlock()
	res := make([]T, len(slice.elements))
	copy(res, slice.elements)
	return res
}

// Thread safe map. Any operation is guaranteed to be thread-safe.
type Map[K comparable, V any] struct {
	sync.RWMutex
	content map[K]V
}

func NewMap[K comparable, V any]() Map[K, V] {
	return Map[K, V]{
		content: make(map[K]V),
	}
}

// Add an element only if the key is not in the map yet. Returns false, and
// leaves the map untouched, if the key was already present.
func (m *Map[K, V]) AddIfAbsent(key K, value V) bool {
	m.Lock()
	defer m.Unlock()
	if _, ok := m.content[key]; ok {
		return false
	}
	m.content[key] = value
	return true
}

// Get an element from the map. The second value is
// false if the key is not in the map.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.RLock()
	defer m.RUnlock()
	value, ok := m.content[key]
	return value, ok
}

// Returns a snapshot of the values, in no particular order.
func (m *Map[K, V]) Values() []V {
	m.RLock()
	defer m.RUnlock()
	res := make([]V, 0, len(m.content))
	for _, v := range m.content {
		res = append(res, v)
	}
	return res
}

// Warning does not accept self modification
func (m *Map[K, V]) ForEach(consumer func(K, V)) {
	m.RLock()
	defer m.RUnlock()

	for key, value := range m.content {
		consumer(key, value)
	}
}

// Thread-safe set.
type Set[T comparable] struct {
	underlyingMap Map[T, struct{}]
}

// Returns a new Set.
func NewSet[T comparable]() Set[T] {
	return Set[T]{
		underlyingMap: NewMap[T, struct{}](),
	}
}

// Add t to the set. Returns false if t was already in the set.
func (s *Set[T]) Add(t T) bool {
	return s.underlyingMap.AddIfAbsent(t, struct{}{})
}

// Returns true iff the set contains the provided element.
func (s *Set[T]) Contains(t T) bool {
	_, ok := s.underlyingMap.Get(t)
	return ok
}

// Remove element from the set
func (s *Set[T]) Remove(t T) {
	s.underlyingMap.Lock()
	defer s.underlyingMap.Unlock()
	delete(s.underlyingMap.content, t)
}

// Returns a snapshot of the set.
func (s *Set[T]) Values() datastructures.Set[T] {
	res := datastructures.EmptySet[T]()
	s.underlyingMap.ForEach(func(t T, _ struct{}) {
		res.Add(t)
	})
	return res
}
