package library

import (
	"fmt"
	"time"
)

// Entry is a saved catalog record in the user's library (immutable value
// object). It references a plant by its catalog ID and carries the
// user-supplied notes and quantity.
type Entry struct {
	id       int64
	plantID  int64
	notes    string
	quantity int
	addedAt  int64
}

// New validates and creates an Entry. Quantity defaults to 1 when zero
// and must not be negative.
func New(plantID int64, notes string, quantity int) (Entry, error) {
	if plantID <= 0 {
		return Entry{}, fmt.Errorf("plant id must be positive, got %d", plantID)
	}
	if quantity < 0 {
		return Entry{}, fmt.Errorf("quantity must not be negative, got %d", quantity)
	}
	if quantity == 0 {
		quantity = 1
	}
	return Entry{
		plantID:  plantID,
		notes:    notes,
		quantity: quantity,
		addedAt:  time.Now().UnixMilli(),
	}, nil
}

// Reconstruct creates an Entry without validation (storage hydration).
func Reconstruct(id, plantID int64, notes string, quantity int, addedAt int64) Entry {
	return Entry{id: id, plantID: plantID, notes: notes, quantity: quantity, addedAt: addedAt}
}

// WithID returns a copy carrying the repository-assigned ID.
func (e Entry) WithID(id int64) Entry {
	e.id = id
	return e
}

// WithQuantity returns a copy with the given quantity.
func (e Entry) WithQuantity(q int) Entry {
	e.quantity = q
	return e
}

// ID returns the entry identifier (0 before the first Add).
func (e Entry) ID() int64 { return e.id }

// PlantID returns the referenced catalog record ID.
func (e Entry) PlantID() int64 { return e.plantID }

// Notes returns the user-supplied notes.
func (e Entry) Notes() string { return e.notes }

// Quantity returns how many of the plant the library holds.
func (e Entry) Quantity() int { return e.quantity }

// AddedAt returns when the entry was first added (unix millis).
func (e Entry) AddedAt() int64 { return e.addedAt }
