package catalog

// Sample returns the built-in demo catalog used when no catalog file is configured.
func Sample() Catalog {
	return MustNew([]Image{
		{
			ID:          1,
			URL:         "https://picsum.photos/id/10/800/600",
			Title:       "Computer Setup",
			Description: "Modern computer workspace with natural lighting",
			Date:        "2023-10-31",
		},
		{
			ID:          2,
			URL:         "https://picsum.photos/id/11/800/600",
			Title:       "Forest Lake",
			Description: "Serene lake surrounded by mountains",
			Date:        "2023-10-30",
		},
		{
			ID:          3,
			URL:         "https://picsum.photos/id/12/800/600",
			Title:       "Mountain Valley",
			Description: "Beautiful mountain landscape at sunset",
			Date:        "2023-10-29",
		},
		{
			ID:          4,
			URL:         "https://picsum.photos/id/13/800/600",
			Title:       "Desert Rocks",
			Description: "Rocky desert landscape under blue sky",
			Date:        "2023-10-28",
		},
		{
			ID:          5,
			URL:         "https://picsum.photos/id/14/800/600",
			Title:       "Ocean View",
			Description: "Peaceful ocean view with waves",
			Date:        "2023-10-27",
		},
		{
			ID:          6,
			URL:         "https://picsum.photos/id/15/800/600",
			Title:       "Forest Path",
			Description: "Path through a dense forest",
			Date:        "2023-10-26",
		},
	})
}
