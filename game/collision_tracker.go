package game

// CollisionKey identifies a ball and the entity it touches.
type CollisionKey struct {
	Ball   EntityID
	Target EntityID
}

// CollisionTracker remembers which pairs overlapped on the previous tick, so a
// contact fires once when it begins and not again while it lasts. It is only
// used from the match goroutine.
type CollisionTracker struct {
	activeCollisions map[CollisionKey]bool
}

func NewCollisionTracker() *CollisionTracker {
	return &CollisionTracker{
		activeCollisions: make(map[CollisionKey]bool),
	}
}

// BeginCollision registers the contact and returns true if it was not already
// active.
func (ct *CollisionTracker) BeginCollision(key CollisionKey) bool {
	if ct.activeCollisions[key] {
		return false
	}
	ct.activeCollisions[key] = true
	return true
}

// EndCollision forgets the contact; ending an inactive key is a no-op.
func (ct *CollisionTracker) EndCollision(key CollisionKey) {
	delete(ct.activeCollisions, key)
}

// Observe records whether the pair overlaps this tick and reports a new contact.
func (ct *CollisionTracker) Observe(key CollisionKey, overlapping bool) bool {
	if !overlapping {
		ct.EndCollision(key)
		return false
	}
	return ct.BeginCollision(key)
}

// ClearAll forgets every contact.
func (ct *CollisionTracker) ClearAll() {
	ct.activeCollisions = make(map[CollisionKey]bool)
}
