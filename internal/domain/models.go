package domain

// Topic is an opaque topic label from the catalog
type Topic string

// Country is a catalog country with its display glyph
type Country struct {
	Name string
	Flag string
}

// Label returns the chip label shown for a country
func (c Country) Label() string {
	if c.Flag == "" {
		return c.Name
	}
	return c.Flag + " " + c.Name
}

// Catalog holds the static suggestion sources. It is loaded once and
// never mutated afterwards.
type Catalog struct {
	Topics          []Topic
	Countries       []Country
	PopularSearches []string
}

// CountryByName looks up a catalog country by its unique name
func (c Catalog) CountryByName(name string) (Country, bool) {
	for _, country := range c.Countries {
		if country.Name == name {
			return country, true
		}
	}
	return Country{}, false
}

// HasTopic reports whether the topic is part of the catalog
func (c Catalog) HasTopic(topic Topic) bool {
	for _, t := range c.Topics {
		if t == topic {
			return true
		}
	}
	return false
}

// Result is a search result card shown below the search box
type Result struct {
	Title     string
	Subtitle  string
	Topics    []Topic
	Countries []string // country names
}
