// Package layout holds the data model of the flexbox engine: dimension
// values, styles, available space, handles and computed layouts.
//
// Nothing here performs layout. The resolver lives in internal/flex, the
// arena in internal/tree. Types are re-exported through the root flex
// package for public consumption.
package layout
