package service

import (
	"workspace-listing-api/internal/domain"
)

// Category is a known workspace category key accepted by the listing filter
type Category string

// Category constants. These are the only keys the filter recognizes; unknown
// keys in a request are skipped, never an error, so new keys can roll out
// ahead of this service.
const (
	CategoryWork    Category = "work"
	CategoryStudy   Category = "study"
	CategoryMeeting Category = "meeting"
	CategoryNetwork Category = "network"
)

// categoryPredicates maps category keys to the workspace attribute they test
var categoryPredicates = map[Category]func(*domain.Workspace) bool{
	CategoryWork:    func(w *domain.Workspace) bool { return w.CategoryWork },
	CategoryStudy:   func(w *domain.Workspace) bool { return w.CategoryStudy },
	CategoryMeeting: func(w *domain.Workspace) bool { return w.CategoryMeeting },
	CategoryNetwork: func(w *domain.Workspace) bool { return w.CategoryNetwork },
}

// WorkspaceFilter is a composed predicate over workspaces
type WorkspaceFilter func(*domain.Workspace) bool

// ComposeWorkspaceFilter builds a single predicate from the requested facets.
// Requested categories combine with AND, so a workspace must satisfy every
// one of them. Boolean facets are tri-state: a nil pointer adds no constraint.
func ComposeWorkspaceFilter(categories []string, dropIn, multipleLocations *bool) WorkspaceFilter {
	preds := make([]func(*domain.Workspace) bool, 0, len(categories)+2)

	for _, key := range categories {
		if pred, ok := categoryPredicates[Category(key)]; ok {
			preds = append(preds, pred)
		}
	}

	if dropIn != nil {
		want := *dropIn
		preds = append(preds, func(w *domain.Workspace) bool { return w.HasDropIn == want })
	}
	if multipleLocations != nil {
		want := *multipleLocations
		preds = append(preds, func(w *domain.Workspace) bool { return w.HasMultipleLocations == want })
	}

	return func(w *domain.Workspace) bool {
		for _, pred := range preds {
			if !pred(w) {
				return false
			}
		}
		return true
	}
}

// filterWorkspaces applies a composed predicate to a candidate set
func filterWorkspaces(workspaces []*domain.Workspace, filter WorkspaceFilter) []*domain.Workspace {
	matched := make([]*domain.Workspace, 0, len(workspaces))
	for _, w := range workspaces {
		if filter(w) {
			matched = append(matched, w)
		}
	}
	return matched
}

// categoriesOf lists the category keys a workspace carries
func categoriesOf(w *domain.Workspace) []string {
	categories := make([]string, 0, len(categoryPredicates))
	for _, key := range []Category{CategoryWork, CategoryStudy, CategoryMeeting, CategoryNetwork} {
		if categoryPredicates[key](w) {
			categories = append(categories, string(key))
		}
	}
	return categories
}
