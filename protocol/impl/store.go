package impl

import (
	"sync"

	"go.dedis.ch/arp/datastructures/concurrent"
	"go.dedis.ch/arp/types"
)

// an agent record and the lock serializing its read-modify-recompute cycles
type agentEntry struct {
	sync.Mutex
	agent types.Agent
}

// returns a copy of the record taken under its lock
func (e *agentEntry) snapshot() types.Agent {
	e.Lock()
	defer e.Unlock()
	return e.agent.Copy()
}

// initialises agent store
func newAgentStore() *agentStore {
	return &agentStore{
		entries: concurrent.NewMap[string, *agentEntry](),
	}
}

type agentStore struct {
	entries concurrent.Map[string, *agentEntry]
}

// adds the agent, returns false if its address is already taken
func (s *agentStore) add(agent types.Agent) bool {
	return s.entries.AddIfAbsent(agent.Address, &agentEntry{agent: agent})
}

func (s *agentStore) get(address string) (*agentEntry, bool) {
	return s.entries.Get(address)
}

// returns copies of every agent
func (s *agentStore) snapshot() []types.Agent {
	entries := s.entries.Values()
	res := make([]types.Agent, len(entries))
	for i, e := range entries {
		res[i] = e.snapshot()
	}
	return res
}

// locks both entries in address order and returns the unlocking function.
// a and b may be the same entry.
func lockPair(a, b *agentEntry) func() {
	if a == b {
		a.Lock()
		return a.Unlock
	}
	first, second := a, b
	if b.agent.Address < a.agent.Address {
		first, second = b, a
	}
	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}

// an entity guarded by its own lock
type entity[T any] struct {
	sync.Mutex
	value T
}

// initialises a store of entities kept in creation order
func newEntityStore[T any]() *entityStore[T] {
	return &entityStore[T]{
		entries: concurrent.NewMap[string, *entity[T]](),
		order:   concurrent.NewSlice[string](),
	}
}

type entityStore[T any] struct {
	entries concurrent.Map[string, *entity[T]]
	order   concurrent.Slice[string]
}

// adds the value under id, returns false if the id is already taken
func (s *entityStore[T]) add(id string, value T) bool {
	if !s.entries.AddIfAbsent(id, &entity[T]{value: value}) {
		return false
	}
	s.order.Append(id)
	return true
}

func (s *entityStore[T]) get(id string) (*entity[T], bool) {
	return s.entries.Get(id)
}

// returns the copies of every entity in creation order
func (s *entityStore[T]) list(copyFn func(*T) T) []T {
	ids := s.order.Elements()
	res := make([]T, 0, len(ids))
	for _, id := range ids {
		e, ok := s.entries.Get(id)
		if !ok {
			continue
		}
		e.Lock()
		res = append(res, copyFn(&e.value))
		e.Unlock()
	}
	return res
}
