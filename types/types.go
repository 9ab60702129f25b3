// Package types defines the domain value types of the eput data format
// and their fixed-width wire encodings.
//
// Every type encodes field by field in declaration order with no
// padding, composed from the scalar codec. Like the scalar codec, the
// Put methods and FromBytes constructors expect the caller to supply a
// buffer of at least the type's wire size.
package types
