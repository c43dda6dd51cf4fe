// Package demo is the product classification screen: one list of
// categories feeds both the tab bar and the content pane of a
// verticaltabs.Model.
package demo
