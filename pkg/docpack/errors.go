package docpack

import (
	"errors"
	"fmt"
)

// RelationshipNotFoundError indicates that a part has no outbound
// relationship of the requested type. It is raised by the package lookup
// primitives and normally recovered by the lazy part accessors, which
// materialize a default part in response.
type RelationshipNotFoundError struct {
	Source  string
	RelType RelationshipType
}

func (e *RelationshipNotFoundError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("no package-level relationship of type %s", e.RelType)
	}
	return fmt.Sprintf("part %s has no relationship of type %s", e.Source, e.RelType)
}

// NewRelationshipNotFoundError creates a new relationship-not-found error
func NewRelationshipNotFoundError(source string, relType RelationshipType) error {
	return &RelationshipNotFoundError{
		Source:  source,
		RelType: relType,
	}
}

// PartNotFoundError indicates that a part name present in relationship
// metadata has no backing content in the package (a dangling edge).
type PartNotFoundError struct {
	PartName string
}

func (e *PartNotFoundError) Error() string {
	return fmt.Sprintf("part %s not found in package", e.PartName)
}

// NewPartNotFoundError creates a new part-not-found error
func NewPartNotFoundError(partName string) error {
	return &PartNotFoundError{PartName: partName}
}

// StyleNotFoundError indicates that a style id or name matches no style
// defined in the document.
type StyleNotFoundError struct {
	StyleOrName string
}

func (e *StyleNotFoundError) Error() string {
	return fmt.Sprintf("no style with name or id %q", e.StyleOrName)
}

// NewStyleNotFoundError creates a new style-not-found error
func NewStyleNotFoundError(styleOrName string) error {
	return &StyleNotFoundError{StyleOrName: styleOrName}
}

// WrongStyleTypeError indicates that a style id or name resolved to a
// defined style whose type differs from the requested one.
type WrongStyleTypeError struct {
	StyleOrName string
	Wanted      StyleType
	Got         StyleType
}

func (e *WrongStyleTypeError) Error() string {
	return fmt.Sprintf("style %q is a %s style, not a %s style", e.StyleOrName, e.Got, e.Wanted)
}

// NewWrongStyleTypeError creates a new wrong-style-type error
func NewWrongStyleTypeError(styleOrName string, wanted, got StyleType) error {
	return &WrongStyleTypeError{
		StyleOrName: styleOrName,
		Wanted:      wanted,
		Got:         got,
	}
}

// PackageError represents an error during package container operations
type PackageError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *PackageError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("package error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("package error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("package error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("package error during %s", e.Operation)
}

func (e *PackageError) Unwrap() error {
	return e.Cause
}

// NewPackageError creates a new package error
func NewPackageError(operation, path string, cause error) error {
	return &PackageError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// IsRelationshipNotFound checks if an error is a relationship-not-found error
func IsRelationshipNotFound(err error) bool {
	var target *RelationshipNotFoundError
	return errors.As(err, &target)
}

// IsPartNotFound checks if an error is a part-not-found error
func IsPartNotFound(err error) bool {
	var target *PartNotFoundError
	return errors.As(err, &target)
}

// IsStyleNotFound checks if an error is a style-not-found error
func IsStyleNotFound(err error) bool {
	var target *StyleNotFoundError
	return errors.As(err, &target)
}

// IsWrongStyleType checks if an error is a wrong-style-type error
func IsWrongStyleType(err error) bool {
	var target *WrongStyleTypeError
	return errors.As(err, &target)
}

// IsPackageError checks if an error is a package error
func IsPackageError(err error) bool {
	var target *PackageError
	return errors.As(err, &target)
}
