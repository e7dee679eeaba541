package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")

type Category struct {
	ID          string
	Name        string
	Description string
	Active      bool
}

// CategoryPatch carries a partial update; nil fields are left untouched.
type CategoryPatch struct {
	Name        *string
	Description *string
	Active      *bool
}
