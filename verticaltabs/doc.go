// Package verticaltabs contains a vertical tab view: a tab bar column paired
// with a scrollable content pane whose sections share index correspondence
// with the tab entries.
//
// Allowed here:
// - section height bookkeeping and offset <-> index mapping
// - scroll/press synchronization and the bubbletea component driving it
//
// Not allowed here:
// - application routing, status bars, or demo data
package verticaltabs
