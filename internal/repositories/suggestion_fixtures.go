package repositories

import "tripforge/internal/models/domain_models"

// Hard-coded catalog used until the real places/booking APIs are wired in.
// Ratings, distances and prices are sample data for the Da Nang demo trip.
func suggestionFixtures() []domain_models.ScheduleItem {
	return []domain_models.ScheduleItem{
		{
			ID:              "place-marble-mountains",
			Kind:            domain_models.ItemKindPlace,
			Title:           "Marble Mountains",
			Rating:          4.6,
			Thumbnail:       "/images/places/marble-mountains.jpg",
			DistanceKM:      8.2,
			PriceLevel:      1,
			Description:     "Cluster of five limestone hills with caves, tunnels and hilltop pagodas.",
			DefaultDuration: 180,
			Category:        "sightseeing",
		},
		{
			ID:              "place-dragon-bridge",
			Kind:            domain_models.ItemKindPlace,
			Title:           "Dragon Bridge",
			Rating:          4.4,
			Thumbnail:       "/images/places/dragon-bridge.jpg",
			DistanceKM:      1.5,
			Description:     "Landmark bridge that breathes fire and water on weekend nights.",
			DefaultDuration: 60,
			Category:        "sightseeing",
		},
		{
			ID:              "place-my-khe-beach",
			Kind:            domain_models.ItemKindPlace,
			Title:           "My Khe Beach",
			Rating:          4.7,
			Thumbnail:       "/images/places/my-khe.jpg",
			DistanceKM:      3.1,
			Description:     "Long sandy beach with calm surf, walking distance from the city centre.",
			DefaultDuration: 120,
			Category:        "outdoors",
		},
		{
			ID:              "place-son-tra",
			Kind:            domain_models.ItemKindPlace,
			Title:           "Son Tra Peninsula",
			Rating:          4.5,
			Thumbnail:       "/images/places/son-tra.jpg",
			DistanceKM:      12.8,
			Description:     "Jungle peninsula with coastal viewpoints and the Lady Buddha statue.",
			DefaultDuration: 240,
			Category:        "outdoors",
		},
		{
			ID:              "place-han-market",
			Kind:            domain_models.ItemKindPlace,
			Title:           "Han Market",
			Rating:          4.1,
			Thumbnail:       "/images/places/han-market.jpg",
			DistanceKM:      0.9,
			Description:     "Covered market for local produce, textiles and souvenirs.",
			DefaultDuration: 90,
			Category:        "shopping",
		},
		{
			ID:              "restaurant-madame-lan",
			Kind:            domain_models.ItemKindRestaurant,
			Title:           "Madame Lan",
			Rating:          4.3,
			Thumbnail:       "/images/restaurants/madame-lan.jpg",
			DistanceKM:      1.2,
			PriceLevel:      2,
			Description:     "Central Vietnamese classics served in a colonial courtyard.",
			DefaultDuration: 90,
			Cuisine:         "vietnamese",
		},
		{
			ID:              "restaurant-banh-mi-phuong",
			Kind:            domain_models.ItemKindRestaurant,
			Title:           "Banh Mi Ba Lan",
			Rating:          4.5,
			Thumbnail:       "/images/restaurants/banh-mi.jpg",
			DistanceKM:      0.6,
			PriceLevel:      1,
			Description:     "Street-side banh mi counter, quick stop between activities.",
			DefaultDuration: 30,
			Cuisine:         "vietnamese",
		},
		{
			ID:              "restaurant-waterfront",
			Kind:            domain_models.ItemKindRestaurant,
			Title:           "Waterfront Riverside",
			Rating:          4.2,
			Thumbnail:       "/images/restaurants/waterfront.jpg",
			DistanceKM:      1.0,
			PriceLevel:      3,
			Description:     "Western menu and river views along the Han promenade.",
			DefaultDuration: 120,
			Cuisine:         "international",
		},
		{
			ID:              "restaurant-bep-cuon",
			Kind:            domain_models.ItemKindRestaurant,
			Title:           "Bep Cuon",
			Rating:          4.6,
			Thumbnail:       "/images/restaurants/bep-cuon.jpg",
			DistanceKM:      2.4,
			PriceLevel:      2,
			Description:     "Fresh rolls and family-style dishes, popular with locals.",
			DefaultDuration: 90,
			Cuisine:         "vietnamese",
		},
		{
			ID:              "hotel-furama",
			Kind:            domain_models.ItemKindHotel,
			Title:           "Furama Resort",
			Rating:          4.5,
			Thumbnail:       "/images/hotels/furama.jpg",
			DistanceKM:      4.8,
			PriceLevel:      4,
			Description:     "Beachfront resort with lagoon pools and spa.",
			Stars:           5,
			Location:        "My Khe Beach",
		},
		{
			ID:              "hotel-novotel-han",
			Kind:            domain_models.ItemKindHotel,
			Title:           "Novotel Han River",
			Rating:          4.3,
			Thumbnail:       "/images/hotels/novotel.jpg",
			DistanceKM:      0.7,
			PriceLevel:      3,
			Description:     "High-rise rooms over the river, close to the night market.",
			Stars:           4,
			Location:        "Han Riverside",
		},
		{
			ID:              "hotel-memory-hostel",
			Kind:            domain_models.ItemKindHotel,
			Title:           "Memory Hostel",
			Rating:          4.0,
			Thumbnail:       "/images/hotels/memory.jpg",
			DistanceKM:      1.1,
			PriceLevel:      1,
			Description:     "Budget beds a short walk from Dragon Bridge.",
			Stars:           2,
			Location:        "City Centre",
		},
	}
}
