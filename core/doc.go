// Package core contains the application shell around a single page.
//
// Allowed here:
// - model routing, message contracts, key registries
// - modal screen stack and shared state machines (picker logic)
// - header, status bar and footer chrome
//
// Not allowed here:
// - page content, demo data, or tab/scroll synchronization
// - low-level widget rendering primitives
package core
