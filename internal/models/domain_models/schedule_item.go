package domain_models

// ItemKind distinguishes the three placeable suggestion variants.
type ItemKind string

const (
	ItemKindPlace      ItemKind = "place"
	ItemKindRestaurant ItemKind = "restaurant"
	ItemKindHotel      ItemKind = "hotel"
)

func (k ItemKind) IsValid() bool {
	switch k {
	case ItemKindPlace, ItemKindRestaurant, ItemKindHotel:
		return true
	}
	return false
}

// ScheduleItem is a place, restaurant or hotel record that can be dropped
// into a time slot. Slots hold their own copy of the item; there is no shared
// mutable ownership between slots or with the suggestion catalog.
type ScheduleItem struct {
	ID              string   `json:"id"`
	Kind            ItemKind `json:"kind"`
	Title           string   `json:"title"`
	Rating          float64  `json:"rating,omitempty"`
	Thumbnail       string   `json:"thumbnail,omitempty"`
	DistanceKM      float64  `json:"distance_km,omitempty"`
	PriceLevel      int      `json:"price_level,omitempty"`
	Description     string   `json:"description,omitempty"`
	DefaultDuration int      `json:"default_duration_minutes,omitempty"`

	// Variant extras; only the fields matching Kind are populated.
	Category string `json:"category,omitempty"` // place
	Cuisine  string `json:"cuisine,omitempty"`  // restaurant
	Stars    int    `json:"stars,omitempty"`    // hotel
	Location string `json:"location,omitempty"` // hotel
}
