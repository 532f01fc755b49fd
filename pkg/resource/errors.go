package resource

import "fmt"

// MissingAttributeError is returned when an attribute cannot be resolved
// through any of the decode, relation or include paths and the active
// attribute-error policy demands raising for the resource type.
type MissingAttributeError struct {
	Type string
	Attr string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("resource %s has no attribute %q", e.Type, e.Attr)
}

// ReadonlyAttributeError is returned when a write is attempted against an
// attribute that is readonly for the resource's current lifecycle state.
type ReadonlyAttributeError struct {
	Type string
	Attr string
}

func (e *ReadonlyAttributeError) Error() string {
	return fmt.Sprintf("attribute %q of resource %s is read only", e.Attr, e.Type)
}

// CustomFieldValueError is returned when the value assigned to custom_fields
// is not a sequence of objects each carrying an id key.
type CustomFieldValueError struct {
	Detail string
}

func (e *CustomFieldValueError) Error() string {
	if e.Detail != "" {
		return "custom_fields value must be a list of objects with an id key: " + e.Detail
	}
	return "custom_fields value must be a list of objects with an id key"
}

// VersionMismatchError is returned when a version-gated operation is invoked
// against a server older than the operation requires.
type VersionMismatchError struct {
	Feature  string
	Required string
	Server   string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("%s requires server version %s or higher, connected server is %s",
		e.Feature, e.Required, e.Server)
}

// UnsupportedOperationError is returned when an operation has no endpoint
// configured for the resource type.
type UnsupportedOperationError struct {
	Type string
	Op   string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("resource %s does not support %s", e.Type, e.Op)
}

// UnknownTypeError is returned when a type name is not present in the
// registry.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown resource type %q", e.Name)
}
