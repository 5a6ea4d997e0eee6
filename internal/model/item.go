package model

// Item categories. Exactly one item per category may be equipped at a time.
const (
	CategoryFixture    = "primary-fixture"
	CategoryConsumable = "consumable"
)

// Item is a cosmetic altar item. Items are defined statically and never
// change at runtime.
type Item struct {
	ID              string `json:"id"`
	DisplayName     string `json:"display_name"`
	Category        string `json:"category"`
	UnlockThreshold int    `json:"unlock_threshold"`
}

// Categories returns the known item categories in display order.
func Categories() []string {
	return []string{CategoryFixture, CategoryConsumable}
}

// EquippedSet maps category -> equipped item id. Every referenced item must
// be unlocked at the current merit total.
type EquippedSet struct {
	Key   string            `json:"key"`
	Items map[string]string `json:"items"`
}

// SetKey sets the database key for this set.
func (s *EquippedSet) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for this set.
func (s *EquippedSet) GetKey() string {
	return s.Key
}

// Get returns the equipped item id for a category.
func (s *EquippedSet) Get(category string) string {
	return s.Items[category]
}

// Put records the equipped item id for a category.
func (s *EquippedSet) Put(category, itemID string) {
	if s.Items == nil {
		s.Items = make(map[string]string)
	}
	s.Items[category] = itemID
}
