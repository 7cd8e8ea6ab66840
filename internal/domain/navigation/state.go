// internal/domain/navigation/state.go
package navigation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/verve-shop/storefront/internal/domain/catalog"
)

var ErrUnknownAction = errors.New("unknown action")

// State is the per-session UI state. It changes only through Dispatch.
type State struct {
	page              Page
	selectedProductID string
	selectedCategory  string
	searchQuery       string
	cartOpen          bool
	dark              bool
}

// NewState returns the state of a fresh session
func NewState() *State {
	return &State{
		page:             Home{},
		selectedCategory: catalog.AllCategories,
	}
}

func (s *State) Page() Page                { return s.page }
func (s *State) SelectedProductID() string { return s.selectedProductID }
func (s *State) SelectedCategory() string  { return s.selectedCategory }
func (s *State) SearchQuery() string       { return s.searchQuery }
func (s *State) CartOpen() bool            { return s.cartOpen }
func (s *State) Dark() bool                { return s.dark }

// Theme returns "dark" or "light"
func (s *State) Theme() string {
	if s.dark {
		return "dark"
	}
	return "light"
}

// Action is a single state update. The set of implementations is closed.
type Action interface {
	apply(s *State)
}

// Navigate switches to a page
type Navigate struct {
	Page Page
}

// SelectProduct opens the detail page for a product
type SelectProduct struct {
	ProductID string
}

// SelectCategory sets the listing category and opens the listing
type SelectCategory struct {
	Category string
}

// SubmitSearch records the query and opens the search page
type SubmitSearch struct {
	Query string
}

// SetCartOpen shows or hides the cart drawer
type SetCartOpen struct {
	Open bool
}

// ToggleTheme flips between light and dark
type ToggleTheme struct{}

// Dispatch applies an action
func (s *State) Dispatch(a Action) {
	a.apply(s)
}

func (a Navigate) apply(s *State) {
	switch p := a.Page.(type) {
	case nil:
		return
	case ProductDetail:
		if p.ProductID == "" {
			p.ProductID = s.selectedProductID
		}
		s.selectedProductID = p.ProductID
		s.page = p
	case Search:
		s.searchQuery = p.Query
		s.page = p
	default:
		s.page = p
	}
}

func (a SelectProduct) apply(s *State) {
	s.selectedProductID = a.ProductID
	s.page = ProductDetail{ProductID: a.ProductID}
}

func (a SelectCategory) apply(s *State) {
	s.selectedCategory = a.Category
	if s.selectedCategory == "" {
		s.selectedCategory = catalog.AllCategories
	}
	s.page = Products{}
}

func (a SubmitSearch) apply(s *State) {
	s.searchQuery = a.Query
	s.page = Search{Query: a.Query}
}

func (a SetCartOpen) apply(s *State) {
	s.cartOpen = a.Open
}

func (ToggleTheme) apply(s *State) {
	s.dark = !s.dark
}

// ActionRequest is the wire form of an action
type ActionRequest struct {
	Type      string `json:"type" binding:"required"`
	Page      string `json:"page"`
	ProductID string `json:"product_id"`
	Query     string `json:"query"`
	Category  string `json:"category"`
	Open      bool   `json:"open"`
}

// ParseAction decodes a wire action
func ParseAction(req ActionRequest) (Action, error) {
	switch req.Type {
	case "navigate":
		page, err := ParsePage(req.Page, req.ProductID, req.Query)
		if err != nil {
			return nil, err
		}
		return Navigate{Page: page}, nil
	case "select_product":
		if req.ProductID == "" {
			return nil, fmt.Errorf("select_product requires product_id")
		}
		return SelectProduct{ProductID: req.ProductID}, nil
	case "select_category":
		return SelectCategory{Category: req.Category}, nil
	case "search":
		return SubmitSearch{Query: req.Query}, nil
	case "set_cart_open":
		return SetCartOpen{Open: req.Open}, nil
	case "toggle_theme":
		return ToggleTheme{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Type)
	}
}

type stateJSON struct {
	Page              PageName `json:"page"`
	SelectedProductID string   `json:"selected_product_id"`
	SelectedCategory  string   `json:"selected_category"`
	SearchQuery       string   `json:"search_query"`
	CartOpen          bool     `json:"cart_open"`
	Dark              bool     `json:"dark"`
}

// MarshalJSON encodes the state. Page parameters are carried by the
// selected product and search query fields.
func (s *State) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON{
		Page:              s.page.Name(),
		SelectedProductID: s.selectedProductID,
		SelectedCategory:  s.selectedCategory,
		SearchQuery:       s.searchQuery,
		CartOpen:          s.cartOpen,
		Dark:              s.dark,
	})
}

// UnmarshalJSON restores a state; an unknown page falls back to home
func (s *State) UnmarshalJSON(data []byte) error {
	var raw stateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	page, err := ParsePage(string(raw.Page), raw.SelectedProductID, raw.SearchQuery)
	if err != nil {
		page = Home{}
	}

	*s = State{
		page:              page,
		selectedProductID: raw.SelectedProductID,
		selectedCategory:  raw.SelectedCategory,
		searchQuery:       raw.SearchQuery,
		cartOpen:          raw.CartOpen,
		dark:              raw.Dark,
	}
	if s.selectedCategory == "" {
		s.selectedCategory = catalog.AllCategories
	}
	return nil
}
