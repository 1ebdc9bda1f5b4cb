// Package notify prints the user-facing status lines of fagen.
//
// Each line carries a symbol and colour chosen by its [MessageType]:
// generate (✚), success (✔), error (✗), warning (⚠) and info (ℹ).
package notify
