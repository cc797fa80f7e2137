// Package webui binds the gatekeeper to the browser: DOM elements,
// localStorage and window.location. The DOM adapters build for GOOS=js
// GOARCH=wasm only; Guard builds everywhere.
package webui
