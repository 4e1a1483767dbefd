// Package domain defines the entities served by the storefront API and the
// request payloads used to create and update them.
//
// Each entity (User, Product, Order) carries a string primary key and plain
// JSON-serializable fields. Creation payloads validate themselves via
// Validate(); validation failures wrap ErrValidation so the HTTP layer can map
// them to a 400 response with errors.Is.
//
// Update payloads use pointer fields: a nil field is "leave untouched", a
// non-nil field is applied. This mirrors partial updates on the wire, where
// absent JSON keys decode to nil pointers.
package domain
