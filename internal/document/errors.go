package document

import (
	"errors"
	"fmt"
)

// Sentinel errors for error type checking
var (
	// ErrUnsupportedFormat indicates a document extension we cannot decode
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrUnknownProperty indicates a declaration for a property with no builder
	ErrUnknownProperty = errors.New("unknown property")

	// ErrInvalidValue indicates values that do not fit the property
	ErrInvalidValue = errors.New("invalid value")
)

// UnsupportedFormatError represents a file whose extension is not YAML or JSON
type UnsupportedFormatError struct {
	FilePath string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format for %s\nSuggestion: use a .yaml, .yml, .json or .jsonc file", e.FilePath)
}

func (e *UnsupportedFormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

// NewUnsupportedFormatError creates a new unsupported format error
func NewUnsupportedFormatError(filePath string) error {
	return &UnsupportedFormatError{FilePath: filePath}
}

// UnknownPropertyError represents a declaration naming an unsupported property
type UnknownPropertyError struct {
	Path     string
	Property string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("%s: unknown property '%s'\nSuggestion: use a custom property (--name) for arbitrary values", e.Path, e.Property)
}

func (e *UnknownPropertyError) Unwrap() error {
	return ErrUnknownProperty
}

// NewUnknownPropertyError creates a new unknown property error
func NewUnknownPropertyError(path, property string) error {
	return &UnknownPropertyError{Path: path, Property: property}
}

// InvalidValueError represents a value that cannot be used for a property
type InvalidValueError struct {
	Path     string
	Property string
	Reason   string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: invalid value for '%s': %s", e.Path, e.Property, e.Reason)
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidValue
}

// NewInvalidValueError creates a new invalid value error
func NewInvalidValueError(path, property, reason string) error {
	return &InvalidValueError{Path: path, Property: property, Reason: reason}
}
