package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github/itish2003/eventvendors/models"
)

// DefaultStorageKey is the key the vendor collection is stored under.
const DefaultStorageKey = "event_vendors"

// VendorPersistence serializes the whole vendor collection to a single key.
type VendorPersistence struct {
	kv  KeyValueStore
	key string
}

func NewVendorPersistence(kv KeyValueStore, key string) *VendorPersistence {
	if key == "" {
		key = DefaultStorageKey
	}
	return &VendorPersistence{kv: kv, key: key}
}

// Key returns the storage key.
func (p *VendorPersistence) Key() string { return p.key }

// Load returns the stored collection. A missing or unreadable value yields an empty collection;
// the failure is only logged.
func (p *VendorPersistence) Load() []models.Vendor {
	vendors, err := p.LoadStrict()
	if err != nil {
		log.Printf("STORE: Failed to load vendors, starting empty: %v", err)
		return []models.Vendor{}
	}
	return vendors
}

// LoadStrict is Load without the fallback.
func (p *VendorPersistence) LoadStrict() ([]models.Vendor, error) {
	data, ok, err := p.kv.Get(p.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Vendor{}, nil
	}

	var vendors []models.Vendor
	if err := json.Unmarshal(data, &vendors); err != nil {
		return nil, fmt.Errorf("failed to parse stored vendors: %w", err)
	}
	if vendors == nil {
		vendors = []models.Vendor{}
	}
	for i := range vendors {
		if vendors[i].Tags == nil {
			vendors[i].Tags = []string{}
		}
	}
	return vendors, nil
}

// Save overwrites the stored collection. Errors are logged, not returned.
func (p *VendorPersistence) Save(vendors []models.Vendor) {
	if vendors == nil {
		vendors = []models.Vendor{}
	}
	data, err := json.Marshal(vendors)
	if err != nil {
		log.Printf("STORE: Failed to encode %d vendors: %v", len(vendors), err)
		return
	}
	if err := p.kv.Set(p.key, data); err != nil {
		log.Printf("STORE: Failed to save vendors: %v", err)
	}
}
