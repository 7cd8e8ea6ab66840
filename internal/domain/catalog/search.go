// internal/domain/catalog/search.go
package catalog

import "strings"

// Search returns products whose name, description, category or any tag
// contains the query, case-insensitively. The empty query matches everything.
func Search(products []Product, query string) []Product {
	q := strings.ToLower(query)
	results := make([]Product, 0, len(products))
	for _, p := range products {
		if p.matchesQuery(q) {
			results = append(results, p)
		}
	}
	return results
}

func (p *Product) matchesQuery(q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
