// Package repository defines the data access interfaces for the storefront.
//
// One interface per entity exposes find/create/update/delete, independent of
// storage technology. Two backend families implement them:
//
//   - memory: seeded in-process slices, insertion-ordered, counter ids
//   - sqlite: a SQLite database (persistent file, or :memory: for tests),
//     ordered by creation time descending, UUID ids
//
// The Store struct bundles the three repositories plus a Close, so the HTTP
// layer and tests receive one handle with an explicit lifecycle instead of
// process-global state. Backends are chosen at construction time in main.
package repository
