// Package catalog holds the static definition of the assessment: the ordered
// categories with their questions, and the feedback text for each score band.
//
// A Catalog never changes after construction. Accessors hand out copies, so
// any number of sessions may read the same Catalog without synchronization.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/bizcheck/internal/errs"
)

// Category is one rated dimension of the assessment.
type Category struct {
	ID          string
	Name        string
	Description string
	Questions   []string
}

// QuestionCount returns the number of questions (and answers) in the category.
func (c Category) QuestionCount() int {
	return len(c.Questions)
}

func (c Category) clone() Category {
	c.Questions = slices.Clone(c.Questions)
	return c
}

// Catalog is the ordered, immutable set of categories.
type Catalog struct {
	categories []Category
	byID       map[string]int
}

// New builds a Catalog from categories in display order. It rejects an empty
// catalog, blank or duplicate ids, and categories without questions.
func New(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: catalog has no categories", errs.ErrInvalidArgument)
	}

	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		byID:       make(map[string]int, len(categories)),
	}
	for i, cat := range categories {
		if strings.TrimSpace(cat.ID) == "" {
			return nil, fmt.Errorf("%w: category %d has no id", errs.ErrInvalidArgument, i)
		}
		if _, dup := c.byID[cat.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category id %q", errs.ErrInvalidArgument, cat.ID)
		}
		if len(cat.Questions) == 0 {
			return nil, fmt.Errorf("%w: category %q has no questions", errs.ErrInvalidArgument, cat.ID)
		}
		c.byID[cat.ID] = i
		c.categories = append(c.categories, cat.clone())
	}
	return c, nil
}

// Count returns the number of categories.
func (c *Catalog) Count() int {
	return len(c.categories)
}

// At returns the category at the given ordinal position.
func (c *Catalog) At(index int) (Category, error) {
	if index < 0 || index >= len(c.categories) {
		return Category{}, fmt.Errorf("%w: category index %d not in [0, %d)", errs.ErrOutOfRange, index, len(c.categories))
	}
	return c.categories[index].clone(), nil
}

// ByID returns the category with the given id.
func (c *Catalog) ByID(id string) (Category, error) {
	i, ok := c.byID[id]
	if !ok {
		return Category{}, fmt.Errorf("%w: category %q", errs.ErrNotFound, id)
	}
	return c.categories[i].clone(), nil
}

// IndexOf returns the ordinal position of the category with the given id.
func (c *Catalog) IndexOf(id string) (int, error) {
	i, ok := c.byID[id]
	if !ok {
		return -1, fmt.Errorf("%w: category %q", errs.ErrNotFound, id)
	}
	return i, nil
}

// QuestionCount returns the number of questions in the category with the given id.
func (c *Catalog) QuestionCount(id string) (int, error) {
	i, ok := c.byID[id]
	if !ok {
		return 0, fmt.Errorf("%w: category %q", errs.ErrNotFound, id)
	}
	return len(c.categories[i].Questions), nil
}

// All returns every category in catalog order.
func (c *Catalog) All() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.clone()
	}
	return out
}

// IDs returns the category ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.categories))
	for i, cat := range c.categories {
		ids[i] = cat.ID
	}
	return ids
}
