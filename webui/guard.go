package webui

import "fmt"

// Guard runs fn and passes a panic raised by it to report as an error. A
// failing submit listener then leaves the wasm runtime, and the listener
// itself, alive for the next event.
func Guard(fn func(), report func(error)) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			report(err)
		}
	}()
	fn()
}
