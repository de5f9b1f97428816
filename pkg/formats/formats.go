// Package formats provides parsers for mesh interchange file formats.
package formats

// Note: Wavefront OBJ triangle soups are fully implemented in obj.go
