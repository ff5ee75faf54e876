// Package view renders the skip selector screens.
//
// Each function takes plain data and returns a string; none of them hold
// state or read configuration, so the model decides what is shown and the
// views only decide how.
package view
