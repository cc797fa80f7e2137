// Package gatekeeper implements the login form submit handler: it compares the
// submitted username and password against a fixed pair, records a logged-in
// flag in a key-value store on success and navigates to the destination page,
// or shows an error message on failure.
//
// The page, the store and navigation are injected so the same handler runs in
// the browser (see package webui) and behind the HTTP fallback form.
package gatekeeper

import (
	"errors"
	"fmt"
)

const (
	// LoggedInKey is the storage key written on a successful login.
	LoggedInKey = "isLoggedIn"
	// LoggedInValue is the stringified boolean stored under LoggedInKey.
	LoggedInValue = "true"
	// Destination is the page opened after a successful login.
	Destination = "index.html"
	// InvalidCredentialsMessage is shown for any mismatching pair.
	InvalidCredentialsMessage = "Invalid username or password"
)

// ErrMissingElement is returned when the page lacks one of the elements the
// handler needs.
var ErrMissingElement = errors.New("element not found")

// Credentials is the username/password pair a submission must match.
type Credentials struct {
	Username string
	Password string
}

// DefaultCredentials is the built-in admin/admin pair.
var DefaultCredentials = Credentials{Username: "admin", Password: "admin"}

// Matches reports whether username and password equal c exactly. No trimming
// or case folding is applied.
func (c Credentials) Matches(username, password string) bool {
	return username == c.Username && password == c.Password
}

// ElementIDs names the page elements the handler reads from and writes to.
type ElementIDs struct {
	Username string
	Password string
	Error    string
	Form     string
}

// DefaultElementIDs matches the ids used by templates/login.html.
var DefaultElementIDs = ElementIDs{
	Username: "username",
	Password: "password",
	Error:    "error-message",
	Form:     "login-form",
}

// Event is the submit event delivered to the handler.
type Event interface {
	PreventDefault()
}

// Document gives access to the login page elements by id.
type Document interface {
	// Value returns the current value of an input element.
	Value(id string) (string, error)
	// SetText replaces the text content of an element.
	SetText(id, text string) error
}

// Storage is a persistent key-value store such as window.localStorage.
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
}

// Navigator moves the page to another URL.
type Navigator interface {
	Navigate(url string) error
}

// Form registers submit listeners.
type Form interface {
	OnSubmit(fn func(Event)) error
}

// Outcome is the result of one submission.
type Outcome int

const (
	Denied Outcome = iota
	Granted
)

func (o Outcome) String() string {
	switch o {
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Gatekeeper handles login form submissions. It keeps no state between
// submissions.
type Gatekeeper struct {
	creds       Credentials
	ids         ElementIDs
	destination string

	doc   Document
	store Storage
	nav   Navigator
}

// Option customises a Gatekeeper.
type Option func(*Gatekeeper)

// WithCredentials replaces DefaultCredentials.
func WithCredentials(c Credentials) Option {
	return func(g *Gatekeeper) { g.creds = c }
}

// WithElementIDs replaces DefaultElementIDs.
func WithElementIDs(ids ElementIDs) Option {
	return func(g *Gatekeeper) { g.ids = ids }
}

// WithDestination replaces Destination.
func WithDestination(url string) Option {
	return func(g *Gatekeeper) { g.destination = url }
}

// New returns a Gatekeeper bound to the given page, store and navigator.
func New(doc Document, store Storage, nav Navigator, opts ...Option) *Gatekeeper {
	g := &Gatekeeper{
		creds:       DefaultCredentials,
		ids:         DefaultElementIDs,
		destination: Destination,
		doc:         doc,
		store:       store,
		nav:         nav,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ElementIDs returns the element ids the gatekeeper uses.
func (g *Gatekeeper) ElementIDs() ElementIDs {
	return g.ids
}

// HandleSubmit processes one submit event. The event's default action is
// always prevented. On a match the logged-in flag is stored and the page is
// navigated to the destination; otherwise the error element shows
// InvalidCredentialsMessage. Failures of the page, store or navigator are
// returned to the caller.
func (g *Gatekeeper) HandleSubmit(ev Event) (Outcome, error) {
	ev.PreventDefault()

	username, err := g.doc.Value(g.ids.Username)
	if err != nil {
		return Denied, fmt.Errorf("read username: %w", err)
	}
	password, err := g.doc.Value(g.ids.Password)
	if err != nil {
		return Denied, fmt.Errorf("read password: %w", err)
	}

	if !g.creds.Matches(username, password) {
		if err := g.doc.SetText(g.ids.Error, InvalidCredentialsMessage); err != nil {
			return Denied, fmt.Errorf("show error message: %w", err)
		}
		return Denied, nil
	}

	if err := g.store.SetItem(LoggedInKey, LoggedInValue); err != nil {
		return Granted, fmt.Errorf("store login flag: %w", err)
	}
	if err := g.nav.Navigate(g.destination); err != nil {
		return Granted, fmt.Errorf("navigate to %s: %w", g.destination, err)
	}
	return Granted, nil
}

// Attach registers HandleSubmit as form's submit listener. Errors raised while
// handling a submission are passed to onError; a nil onError panics with the
// error so it surfaces as an uncaught failure.
func (g *Gatekeeper) Attach(form Form, onError func(error)) error {
	if onError == nil {
		onError = func(err error) { panic(err) }
	}
	return form.OnSubmit(func(ev Event) {
		if _, err := g.HandleSubmit(ev); err != nil {
			onError(err)
		}
	})
}

// MissingElement returns an error wrapping ErrMissingElement for id.
func MissingElement(id string) error {
	return fmt.Errorf("%w: #%s", ErrMissingElement, id)
}
