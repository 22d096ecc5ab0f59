// Package wishlist holds the client-local set of liked jerseys. Entries are
// denormalized snapshots taken at add time; catalog edits after that do not
// propagate. The whole set is written through to durable storage on every
// mutation and survives restarts.
package wishlist

// Item is a wishlist entry, keyed by the jersey id it was added from.
type Item struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	ImageURL string `json:"imageUrl"`
	Team     string `json:"team"`
}

type Store struct {
	storage Storage
	items   []Item
}

// NewStore loads the persisted set. Corrupt or unreadable storage degrades to
// an empty wishlist rather than an error.
func NewStore(storage Storage) *Store {
	items, err := storage.Load()
	if err != nil || items == nil {
		items = []Item{}
	}
	return &Store{storage: storage, items: items}
}

// Add appends the item unless one with the same id is already present, and
// reports whether an insert happened.
func (s *Store) Add(item Item) bool {
	if s.Contains(item.ID) {
		return false
	}
	s.items = append(s.items, item)
	s.save()
	return true
}

// Remove drops the entry with the given id, if present.
func (s *Store) Remove(id int) {
	items := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			items = append(items, it)
		}
	}
	s.items = items
	s.save()
}

func (s *Store) Contains(id int) bool {
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) Clear() {
	s.items = []Item{}
	s.save()
}

func (s *Store) Count() int {
	return len(s.items)
}

// Items returns a copy in insertion order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// save writes the full set through to storage. Write failures are silent;
// the in-memory set stays authoritative for the session.
func (s *Store) save() {
	_ = s.storage.Save(s.items)
}
