// Package msg defines the message types used by the TUI's Bubbletea event loop
// and the command factories that produce them.
//
// The catalog fetch is the only asynchronous operation. Its result carries
// the generation it was issued for so the model can discard results that
// belong to an abandoned fetch.
package msg
