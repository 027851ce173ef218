// Package timer defines the timer record exchanged with the remote timer API.
//
// A Timer is an opaque JSON object. Only two fields carry meaning for the
// client: "start", which identifies an entry in the persisted timer history,
// and "id", which identifies a currently running timer. Everything else is
// payload that round-trips untouched.
//
// Keys are compared strictly: a string never equals a number, while numbers
// compare by value whatever Go type holds them. This matters because ids
// built in Go code are usually ints and ids decoded from JSON are float64.
package timer
