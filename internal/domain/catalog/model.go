package catalog

// Category is a first-level price-list grouping (device family).
type Category struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// RepairType is a second-level grouping (kind of repair).
type RepairType struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// Input is the shared create/update shape for both catalog levels.
type Input struct {
	Name      string
	SortOrder int
}
