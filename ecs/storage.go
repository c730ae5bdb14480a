package ecs

// entityStore hands out monotonically increasing entity ids and tracks which
// of them are still alive, in creation order.
type entityStore struct {
	nextID uint64
	alive  map[Entity]struct{}
	order  []Entity
}

func (s *entityStore) create() Entity {
	if s.alive == nil {
		s.alive = make(map[Entity]struct{})
	}
	s.nextID++
	e := Entity(s.nextID)
	s.alive[e] = struct{}{}
	s.order = append(s.order, e)
	return e
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	delete(s.alive, e)
	for i, cur := range s.order {
		if cur == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || s.alive == nil {
		return false
	}
	_, ok := s.alive[e]
	return ok
}

// componentStore keeps one component kind for many entities. Unlike a swap
// remove sparse set it preserves insertion order on removal; collision
// resolution depends on iterating entities in the order they were spawned.
type componentStore struct {
	entities []Entity
	values   []any
	index    map[Entity]int
}

func newComponentStore() *componentStore {
	return &componentStore{index: make(map[Entity]int)}
}

func (s *componentStore) has(e Entity) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[e]
	return ok
}

func (s *componentStore) get(e Entity) (any, bool) {
	if s == nil {
		return nil, false
	}
	idx, ok := s.index[e]
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

func (s *componentStore) set(e Entity, v any) {
	if idx, ok := s.index[e]; ok {
		s.values[idx] = v
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, v)
}

func (s *componentStore) remove(e Entity) bool {
	if s == nil {
		return false
	}
	idx, ok := s.index[e]
	if !ok {
		return false
	}
	s.entities = append(s.entities[:idx], s.entities[idx+1:]...)
	s.values = append(s.values[:idx], s.values[idx+1:]...)
	delete(s.index, e)
	for i := idx; i < len(s.entities); i++ {
		s.index[s.entities[i]] = i
	}
	return true
}

// snapshot copies the entity list so callers may add or remove components
// while iterating.
func (s *componentStore) snapshot() []Entity {
	if s == nil || len(s.entities) == 0 {
		return nil
	}
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

func (s *componentStore) len() int {
	if s == nil {
		return 0
	}
	return len(s.entities)
}
