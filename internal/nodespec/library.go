package nodespec

// Complexity buckets a component by a deterministic weighted score.
type Complexity string

const (
	ComplexitySimple  Complexity = "Simple"
	ComplexityMedium  Complexity = "Medium"
	ComplexityComplex Complexity = "Complex"
)

// ComponentRef points into the component list by name; library groupings
// never embed component definitions.
type ComponentRef struct {
	Name         string     `json:"name"`
	Complexity   Complexity `json:"complexity"`
	VariantCount int        `json:"variantCount"`
}

// SubGroup splits a group by whether its components carry variants.
type SubGroup struct {
	Name       string         `json:"name"`
	Components []ComponentRef `json:"components"`
}

// Group clusters related components inside a category.
type Group struct {
	Name      string     `json:"name"`
	SubGroups []SubGroup `json:"subGroups"`
}

// Category is a top-level library section, ordered by Priority ascending.
type Category struct {
	Name     string  `json:"name"`
	Priority int     `json:"priority"`
	Groups   []Group `json:"groups"`
}

// Page is one navigable page of the generated library.
type Page struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

// LibraryStructure is the organized, navigable component library.
type LibraryStructure struct {
	Categories []Category `json:"categories"`
	Pages      []Page     `json:"pages"`
}

// ComponentCount returns the total number of component references.
func (l *LibraryStructure) ComponentCount() int {
	total := 0
	for _, cat := range l.Categories {
		for _, grp := range cat.Groups {
			for _, sub := range grp.SubGroups {
				total += len(sub.Components)
			}
		}
	}
	return total
}
