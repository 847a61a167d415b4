package catalog

// foodieSpotRestaurants is the static FoodieSpot location data.
var foodieSpotRestaurants = []Restaurant{
	{
		ID: "FS01", Name: "FoodieSpot Downtown Grill", LocationArea: "Downtown",
		Address: "123 Main St, City Center", Cuisine: []string{"American", "Steakhouse"},
		Capacity: 80, OpeningHours: map[string]string{"mon-fri": "11:00-22:00", "sat-sun": "12:00-23:00"},
		PriceRange: "$$$", Ambiance: []string{"Business", "Casual", "Modern"},
		Description: "Classic American grill in the heart of downtown.",
	},
	{
		ID: "FS02", Name: "FoodieSpot Seaside Bistro", LocationArea: "Seaside",
		Address: "45 Beach Ave, Waterfront", Cuisine: []string{"Seafood", "French"},
		Capacity: 60, OpeningHours: map[string]string{"tue-sun": "12:00-21:00", "mon": "closed"},
		PriceRange: "$$$$", Ambiance: []string{"Romantic", "Scenic", "Cozy"},
		Description: "Fresh seafood and French-inspired dishes with ocean views.",
	},
	{
		ID: "FS03", Name: "FoodieSpot Trattoria", LocationArea: "Downtown",
		Address: "125 Main St, City Center", Cuisine: []string{"Italian", "Pizza"},
		Capacity: 50, OpeningHours: map[string]string{"mon-sun": "12:00-22:00"},
		PriceRange: "$$", Ambiance: []string{"Casual", "Family-Friendly", "Warm"},
		Description: "Authentic Italian pasta and pizza.",
	},
	{
		ID: "FS04", Name: "FoodieSpot North End Cafe", LocationArea: "North End",
		Address: "88 Maple Rd, North End", Cuisine: []string{"Cafe", "Sandwiches", "Vegetarian"},
		Capacity: 30, OpeningHours: map[string]string{"mon-fri": "08:00-18:00", "sat": "09:00-17:00", "sun": "closed"},
		PriceRange: "$", Ambiance: []string{"Casual", "Cozy", "Quiet"},
		Description: "Cozy cafe with great coffee, sandwiches, and vegetarian options.",
	},
	{
		ID: "FS05", Name: "FoodieSpot Fusion Hub", LocationArea: "Uptown",
		Address: "210 Tech Plaza, Uptown", Cuisine: []string{"Asian Fusion", "Sushi"},
		Capacity: 70, OpeningHours: map[string]string{"mon-sat": "17:00-23:00", "sun": "closed"},
		PriceRange: "$$$", Ambiance: []string{"Modern", "Lively", "Trendy"},
		Description: "Exciting Asian Fusion dishes and creative sushi rolls.",
	},
	{
		ID: "FS06", Name: "FoodieSpot Taqueria", LocationArea: "West Side",
		Address: "5 Sunset Blvd, West Side", Cuisine: []string{"Mexican"},
		Capacity: 40, OpeningHours: map[string]string{"mon-sun": "11:00-21:00"},
		PriceRange: "$$", Ambiance: []string{"Casual", "Lively", "Colorful"},
		Description: "Authentic street-style tacos and Mexican favorites.",
	},
	{
		ID: "FS07", Name: "FoodieSpot Garden Terrace", LocationArea: "Uptown",
		Address: "212 Tech Plaza, Uptown", Cuisine: []string{"Mediterranean", "Healthy"},
		Capacity: 90, OpeningHours: map[string]string{"mon-sun": "12:00-22:00"},
		PriceRange: "$$$", Ambiance: []string{"Elegant", "Outdoor Seating", "Relaxed"},
		Description: "Mediterranean cuisine with a focus on fresh ingredients and a beautiful terrace.",
	},
	{
		ID: "FS08", Name: "FoodieSpot Downtown Deli", LocationArea: "Downtown",
		Address: "130 Main St, City Center", Cuisine: []string{"Deli", "Sandwiches"},
		Capacity: 25, OpeningHours: map[string]string{"mon-fri": "09:00-16:00", "sat-sun": "closed"},
		PriceRange: "$", Ambiance: []string{"Casual", "Quick Bite"},
		Description: "Classic deli sandwiches and soups, perfect for a quick lunch.",
	},
	{
		ID: "FS09", Name: "FoodieSpot Curry House", LocationArea: "North End",
		Address: "90 Maple Rd, North End", Cuisine: []string{"Indian"},
		Capacity: 55, OpeningHours: map[string]string{"tue-sun": "17:00-22:00", "mon": "closed"},
		PriceRange: "$$", Ambiance: []string{"Casual", "Authentic", "Aromatic"},
		Description: "Flavorful Indian curries and traditional dishes.",
	},
	{
		ID: "FS10", Name: "FoodieSpot BBQ Pit", LocationArea: "West Side",
		Address: "15 Smokey Ln, West Side", Cuisine: []string{"BBQ", "American"},
		Capacity: 100, OpeningHours: map[string]string{"wed-sun": "12:00-21:00", "mon-tue": "closed"},
		PriceRange: "$$", Ambiance: []string{"Casual", "Rustic", "Lively"},
		Description: "Slow-smoked BBQ ribs, brisket, and classic sides.",
	},
	{
		ID: "FS20", Name: "FoodieSpot Rooftop Bar", LocationArea: "Downtown",
		Address: "500 Skyscraper Ave, Fl 30, City Center", Cuisine: []string{"Tapas", "Cocktails"},
		Capacity: 120, OpeningHours: map[string]string{"mon-sat": "16:00-00:00", "sun": "16:00-22:00"},
		PriceRange: "$$$$", Ambiance: []string{"Trendy", "Scenic View", "Upscale", "Lively"},
		Description: "Craft cocktails and small plates with stunning city views.",
	},
}
