package ledger

import (
	"fmt"
	"strings"
	"sync"

	"paytrack/internal/model"
)

// CategoryStore owns the label lists for the fixed category dimensions.
type CategoryStore struct {
	categories []model.Category
	mu         sync.Mutex
}

// NewCategoryStore creates a store holding the given categories.
func NewCategoryStore(categories []model.Category) *CategoryStore {
	s := &CategoryStore{categories: make([]model.Category, len(categories))}
	for i, c := range categories {
		labels := make([]string, len(c.Labels))
		copy(labels, c.Labels)
		s.categories[i] = model.Category{ID: c.ID, Name: c.Name, Labels: labels}
	}
	return s
}

// Categories returns a snapshot of all categories.
func (s *CategoryStore) Categories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Category, len(s.categories))
	for i, c := range s.categories {
		labels := make([]string, len(c.Labels))
		copy(labels, c.Labels)
		out[i] = model.Category{ID: c.ID, Name: c.Name, Labels: labels}
	}
	return out
}

// Labels returns the label list for one category dimension.
func (s *CategoryStore) Labels(id model.CategoryID) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.find(id)
	if c == nil {
		return nil, fmt.Errorf("%w: category %s", ErrNotFound, id)
	}
	out := make([]string, len(c.Labels))
	copy(out, c.Labels)
	return out, nil
}

// AddLabel appends a label to a category. The label is trimmed; empty input
// and exact duplicates are no-ops. Requires the manage-categories permission.
func (s *CategoryStore) AddLabel(id model.CategoryID, label string, actor model.User) error {
	if !actor.Permissions.ManageCategories {
		return fmt.Errorf("%w: manage categories", ErrPermissionDenied)
	}

	label = strings.TrimSpace(label)
	if label == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.find(id)
	if c == nil {
		return fmt.Errorf("%w: category %s", ErrNotFound, id)
	}
	for _, existing := range c.Labels {
		if existing == label {
			return nil
		}
	}
	c.Labels = append(c.Labels, label)
	return nil
}

// RemoveLabel deletes a label from a category. It performs the in-use check
// itself rather than trusting the caller, so there is no window between check
// and act. Requires the manage-categories permission.
func (s *CategoryStore) RemoveLabel(id model.CategoryID, label string, payments []model.Payment, actor model.User) error {
	if !actor.Permissions.ManageCategories {
		return fmt.Errorf("%w: manage categories", ErrPermissionDenied)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.find(id)
	if c == nil {
		return fmt.Errorf("%w: category %s", ErrNotFound, id)
	}
	if labelInUse(id, label, payments) {
		return fmt.Errorf("%w: %q", ErrLabelInUse, label)
	}
	for i, existing := range c.Labels {
		if existing == label {
			c.Labels = append(c.Labels[:i], c.Labels[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: label %q", ErrNotFound, label)
}

// IsInUse reports whether any payment references the label in the field the
// category classifies. Pure predicate; used to disable removal up front and
// again inside RemoveLabel to gate the operation.
func (s *CategoryStore) IsInUse(id model.CategoryID, label string, payments []model.Payment) bool {
	return labelInUse(id, label, payments)
}

func labelInUse(id model.CategoryID, label string, payments []model.Payment) bool {
	for i := range payments {
		if id.PaymentField(payments[i]) == label {
			return true
		}
	}
	return false
}

// find returns the category with the given id. Callers must hold the mutex.
func (s *CategoryStore) find(id model.CategoryID) *model.Category {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return &s.categories[i]
		}
	}
	return nil
}
