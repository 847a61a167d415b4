package catalog

// Restaurant is one immutable catalog entry. The catalog is loaded once at
// startup and never mutated; callers receive copies or read-only views.
type Restaurant struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	LocationArea string            `json:"location_area"`
	Address      string            `json:"address"`
	Cuisine      []string          `json:"cuisine"`
	Capacity     int               `json:"capacity"`
	OpeningHours map[string]string `json:"opening_hours"`
	PriceRange   string            `json:"price_range"`
	Ambiance     []string          `json:"ambiance"`
	Description  string            `json:"description"`
}

// Catalog is a fixed, read-only set of restaurants.
type Catalog struct {
	restaurants []Restaurant
	byID        map[string]*Restaurant
}

// New builds a catalog from the given entries, preserving order.
func New(restaurants []Restaurant) *Catalog {
	c := &Catalog{restaurants: restaurants, byID: make(map[string]*Restaurant, len(restaurants))}
	for i := range c.restaurants {
		c.byID[c.restaurants[i].ID] = &c.restaurants[i]
	}
	return c
}

// Default returns the built-in FoodieSpot catalog.
func Default() *Catalog {
	return New(foodieSpotRestaurants)
}

// ByID returns the restaurant with the given id, or false if unknown.
func (c *Catalog) ByID(id string) (Restaurant, bool) {
	r, ok := c.byID[id]
	if !ok {
		return Restaurant{}, false
	}
	return *r, true
}

// Capacity returns the total seat capacity for a restaurant, or 0 if the id
// is unknown. A zero capacity is how the ledger detects an invalid id.
func (c *Catalog) Capacity(id string) int {
	if r, ok := c.byID[id]; ok {
		return r.Capacity
	}
	return 0
}

// All returns the catalog entries in load order.
func (c *Catalog) All() []Restaurant {
	return c.restaurants
}
