// Package handler implements the HTTP layer of the storefront API.
//
// Handlers are thin: they decode and validate the request body, call the
// repository, and map results to JSON responses. Error mapping is uniform
// across entities:
//
//   - invalid payloads return 400 {"error": "Invalid data"}
//   - missing records return 404 {"error": "<Entity> not found"}
//   - order creation naming a missing product returns 422 with the
//     descriptive referential error
//   - storage failures return 500
//
// The router mounts everything under /api plus /health and /metrics, with
// request logging, panic recovery, CORS, and prometheus middleware.
package handler
