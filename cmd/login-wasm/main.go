//go:build js && wasm

// Command login-wasm is the login page script. `go generate` in the module
// root builds it into static/login.wasm next to wasm_exec.js.
package main

import (
	"log"

	"github.com/AliAlSubhi98/CodelineChallenge/gatekeeper"
	"github.com/AliAlSubhi98/CodelineChallenge/webui"
)

func main() {
	g := gatekeeper.New(webui.Document{}, webui.LocalStorage{}, webui.Location{})

	form := &webui.Form{ID: g.ElementIDs().Form}
	if err := g.Attach(form, webui.ReportError); err != nil {
		log.Fatalf("attach login form: %v", err)
	}

	select {}
}
