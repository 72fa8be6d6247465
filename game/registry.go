package game

// Entity is anything the match advances once per tick.
type Entity interface {
	Update()
}

// EntityID is a handle into a Registry. Handles are never reused.
type EntityID int

// Registry holds the match entities in insertion order.
type Registry struct {
	entities []Entity
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add stores e and returns its handle.
func (r *Registry) Add(e Entity) EntityID {
	r.entities = append(r.entities, e)
	return EntityID(len(r.entities) - 1)
}

func (r *Registry) Get(id EntityID) (Entity, bool) {
	if id < 0 || int(id) >= len(r.entities) {
		return nil, false
	}
	return r.entities[id], true
}

func (r *Registry) Len() int { return len(r.entities) }

// UpdateAll calls Update on every entity in insertion order.
func (r *Registry) UpdateAll() {
	for _, e := range r.entities {
		e.Update()
	}
}
