// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Validatable is implemented by every entity that owns local validation rules.
// Validate returns a fresh, ordered list of human-readable failures; an empty
// list means the entity is valid.
type Validatable interface {
	Validate() []string
}

// cascadeRequired merges the messages of a required association.
// A missing association yields missingMsg and is not recursed into.
func cascadeRequired(errs []string, present bool, assoc Validatable, missingMsg string) []string {
	if !present {
		return append(errs, missingMsg)
	}

	return append(errs, assoc.Validate()...)
}

// cascadeOptional merges the messages of an optional association, skipping it
// silently when absent.
func cascadeOptional(errs []string, present bool, assoc Validatable) []string {
	if !present {
		return errs
	}

	return append(errs, assoc.Validate()...)
}
