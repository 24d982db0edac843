package store

import "github.com/zerodividas/zerodividas/internal/model"

// CategoryPatch is a shallow merge-patch for categories.
type CategoryPatch struct {
	Name  *string
	Color *string
	Type  *model.CategoryType
}

// AddCategory appends a category to the collection.
func (s *Store) AddCategory(c model.Category) {
	s.snap.Categories = append(s.snap.Categories, c)
	s.commit(KeyCategories)
}

// UpdateCategory merges the provided fields into the category with the given
// id. Unknown ids are silently ignored.
func (s *Store) UpdateCategory(id string, patch CategoryPatch) {
	for i := range s.snap.Categories {
		if s.snap.Categories[i].ID != id {
			continue
		}
		c := &s.snap.Categories[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Color != nil {
			c.Color = *patch.Color
		}
		if patch.Type != nil {
			c.Type = *patch.Type
		}
		s.commit(KeyCategories)
		return
	}
}

// DeleteCategory removes the category with the given id. Transactions that
// reference it are neither deleted nor reassigned; their lookups fall back
// to the "Outros" label.
func (s *Store) DeleteCategory(id string) {
	for i := range s.snap.Categories {
		if s.snap.Categories[i].ID == id {
			s.snap.Categories = append(s.snap.Categories[:i], s.snap.Categories[i+1:]...)
			s.commit(KeyCategories)
			return
		}
	}
}
