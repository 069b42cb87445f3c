package services

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github/itish2003/eventvendors/models"

	"github.com/google/uuid"
)

// ErrVendorNotFound is returned when no vendor has the requested id.
var ErrVendorNotFound = errors.New("vendor not found")

// Selection is the current category filter and search query.
type Selection struct {
	Category *models.Category
	Query    string
}

// VendorStore holds the vendor collection of the session together with the
// selected category and the search query. A published collection is never
// modified in place: every mutation swaps in a new slice and persists it.
type VendorStore struct {
	persistence *VendorPersistence
	now         func() time.Time
	newID       func() string

	mu        sync.RWMutex
	vendors   []models.Vendor
	selection Selection
}

// NewVendorStore loads the persisted collection.
func NewVendorStore(persistence *VendorPersistence) *VendorStore {
	vendors := persistence.Load()
	log.Printf("STORE: Loaded %d vendors from '%s'", len(vendors), persistence.Key())
	return &VendorStore{
		persistence: persistence,
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
		vendors:     vendors,
	}
}

// Vendors returns the current collection. Callers must not modify it.
func (s *VendorStore) Vendors() []models.Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vendors
}

func (s *VendorStore) Get(id string) (models.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.vendors, id); i >= 0 {
		return s.vendors[i], nil
	}
	return models.Vendor{}, fmt.Errorf("%w: %s", ErrVendorNotFound, id)
}

// Create appends a new vendor with a fresh id and creation time.
func (s *VendorStore) Create(in models.VendorInput) (models.Vendor, error) {
	if err := in.Validate(); err != nil {
		return models.Vendor{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vendor := models.Vendor{ID: s.newID(), CreatedAt: s.now().UnixMilli()}.Apply(in)

	next := make([]models.Vendor, len(s.vendors), len(s.vendors)+1)
	copy(next, s.vendors)
	next = append(next, vendor)
	s.commit(next)

	log.Printf("STORE: Created vendor '%s' (%s)", vendor.Name, vendor.ID)
	return vendor, nil
}

// Update replaces every editable field of the vendor with id. The id and creation time are kept.
func (s *VendorStore) Update(id string, in models.VendorInput) (models.Vendor, error) {
	if err := in.Validate(); err != nil {
		return models.Vendor{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.vendors, id)
	if i < 0 {
		return models.Vendor{}, fmt.Errorf("%w: %s", ErrVendorNotFound, id)
	}

	next := make([]models.Vendor, len(s.vendors))
	copy(next, s.vendors)
	next[i] = s.vendors[i].Apply(in)
	s.commit(next)

	log.Printf("STORE: Updated vendor '%s' (%s)", next[i].Name, id)
	return next[i], nil
}

// Save updates the vendor when id is known and creates a new one otherwise.
func (s *VendorStore) Save(id string, in models.VendorInput) (models.Vendor, error) {
	if id != "" {
		vendor, err := s.Update(id, in)
		if !errors.Is(err, ErrVendorNotFound) {
			return vendor, err
		}
	}
	return s.Create(in)
}

// Delete removes the vendor with id and reports whether it existed.
// An unknown id leaves the collection untouched.
func (s *VendorStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.vendors, id)
	if i < 0 {
		return false
	}

	next := make([]models.Vendor, 0, len(s.vendors)-1)
	next = append(next, s.vendors[:i]...)
	next = append(next, s.vendors[i+1:]...)
	s.commit(next)

	log.Printf("STORE: Deleted vendor %s", id)
	return true
}

// Reload replaces the collection with the persisted one. On a read or parse
// error the current collection is kept.
func (s *VendorStore) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vendors, err := s.persistence.LoadStrict()
	if err != nil {
		return fmt.Errorf("could not reload vendors: %w", err)
	}
	s.vendors = vendors
	log.Printf("STORE: Reloaded %d vendors", len(vendors))
	return nil
}

// SelectCategory sets the category filter; nil clears it.
func (s *VendorStore) SelectCategory(c *models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c == nil {
		s.selection.Category = nil
		return
	}
	selected := *c
	s.selection.Category = &selected
}

// SetSearchQuery stores q as given. An empty query disables the search filter.
func (s *VendorStore) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Query = q
}

// Select sets both the category filter and the query and returns the vendors
// they select, all under one lock so concurrent views never mix selections.
func (s *VendorStore) Select(c *models.Category, q string) []models.Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = Selection{Query: q}
	if c != nil {
		selected := *c
		s.selection.Category = &selected
	}
	return DisplayedVendors(s.vendors, s.selection.Category, s.selection.Query)
}

func (s *VendorStore) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// CategoryCounts derives the per-category counts of the current collection.
func (s *VendorStore) CategoryCounts() map[models.Category]int {
	return CategoryCounts(s.Vendors())
}

// DisplayedVendors derives the filtered list for the current selection.
func (s *VendorStore) DisplayedVendors() []models.Vendor {
	s.mu.RLock()
	vendors, sel := s.vendors, s.selection
	s.mu.RUnlock()
	return DisplayedVendors(vendors, sel.Category, sel.Query)
}

// commit publishes next and persists it. Must be called with mu held.
func (s *VendorStore) commit(next []models.Vendor) {
	s.vendors = next
	s.persistence.Save(next)
}

func indexOf(vendors []models.Vendor, id string) int {
	for i, v := range vendors {
		if v.ID == id {
			return i
		}
	}
	return -1
}
