//go:build js && wasm

package webui

import (
	"errors"
	"syscall/js"

	"github.com/AliAlSubhi98/CodelineChallenge/gatekeeper"
)

var errNoStorage = errors.New("localStorage unavailable")

func getDocument() js.Value {
	return js.Global().Get("document")
}

func element(id string) (js.Value, error) {
	el := getDocument().Call("getElementById", id)
	if !el.Truthy() {
		return js.Value{}, gatekeeper.MissingElement(id)
	}
	return el, nil
}

// Document reads and writes elements of the current page.
type Document struct{}

func (Document) Value(id string) (string, error) {
	el, err := element(id)
	if err != nil {
		return "", err
	}
	return el.Get("value").String(), nil
}

func (Document) SetText(id, text string) error {
	el, err := element(id)
	if err != nil {
		return err
	}
	el.Set("textContent", text)
	return nil
}

// LocalStorage is window.localStorage.
type LocalStorage struct{}

func (LocalStorage) GetItem(key string) (string, bool, error) {
	storage := js.Global().Get("localStorage")
	if !storage.Truthy() {
		return "", false, errNoStorage
	}
	v := storage.Call("getItem", key)
	if v.IsNull() {
		return "", false, nil
	}
	return v.String(), true, nil
}

func (LocalStorage) SetItem(key, value string) error {
	storage := js.Global().Get("localStorage")
	if !storage.Truthy() {
		return errNoStorage
	}
	storage.Call("setItem", key, value)
	return nil
}

// Location navigates by assigning window.location.href.
type Location struct{}

func (Location) Navigate(url string) error {
	js.Global().Get("window").Get("location").Set("href", url)
	return nil
}

// Form is a <form> element found by id.
type Form struct {
	ID string

	funcs []js.Func
}

// submitEvent adapts a DOM event to gatekeeper.Event.
type submitEvent struct{ v js.Value }

func (e submitEvent) PreventDefault() { e.v.Call("preventDefault") }

// ReportError raises err in the page as an uncaught error without stopping
// the Go runtime.
func ReportError(err error) {
	jsErr := js.Global().Get("Error").New(err.Error())
	if report := js.Global().Get("reportError"); report.Type() == js.TypeFunction {
		js.Global().Call("reportError", jsErr)
		return
	}
	js.Global().Get("console").Call("error", jsErr)
}

// OnSubmit adds a "submit" listener. The listener stays registered for the
// life of the page; a panic inside fn is reported with ReportError.
func (f *Form) OnSubmit(fn func(gatekeeper.Event)) error {
	el, err := element(f.ID)
	if err != nil {
		return err
	}
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			ev := submitEvent{v: args[0]}
			Guard(func() { fn(ev) }, ReportError)
		}
		return nil
	})
	f.funcs = append(f.funcs, cb)
	el.Call("addEventListener", "submit", cb)
	return nil
}
