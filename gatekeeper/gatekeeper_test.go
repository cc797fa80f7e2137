package gatekeeper

import (
	"errors"
	"testing"
)

type fakeEvent struct{ prevented int }

func (e *fakeEvent) PreventDefault() { e.prevented++ }

type fakeDocument struct {
	values map[string]string
	text   map[string]string
	writes int
}

func newFakeDocument(username, password string) *fakeDocument {
	return &fakeDocument{
		values: map[string]string{"username": username, "password": password},
		text:   map[string]string{"error-message": ""},
	}
}

func (d *fakeDocument) Value(id string) (string, error) {
	v, ok := d.values[id]
	if !ok {
		return "", MissingElement(id)
	}
	return v, nil
}

func (d *fakeDocument) SetText(id, text string) error {
	if _, ok := d.text[id]; !ok {
		return MissingElement(id)
	}
	d.text[id] = text
	d.writes++
	return nil
}

type fakeStorage struct {
	items  map[string]string
	sets   int
	setErr error
}

func newFakeStorage() *fakeStorage { return &fakeStorage{items: map[string]string{}} }

func (s *fakeStorage) GetItem(key string) (string, bool, error) {
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *fakeStorage) SetItem(key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.items[key] = value
	s.sets++
	return nil
}

type fakeNavigator struct{ visited []string }

func (n *fakeNavigator) Navigate(url string) error {
	n.visited = append(n.visited, url)
	return nil
}

type fakeForm struct{ listeners []func(Event) }

func (f *fakeForm) OnSubmit(fn func(Event)) error {
	f.listeners = append(f.listeners, fn)
	return nil
}

func (f *fakeForm) submit(ev Event) {
	for _, fn := range f.listeners {
		fn(ev)
	}
}

func TestHandleSubmitGranted(t *testing.T) {
	doc := newFakeDocument("admin", "admin")
	store := newFakeStorage()
	nav := &fakeNavigator{}
	ev := &fakeEvent{}

	outcome, err := New(doc, store, nav).HandleSubmit(ev)
	if err != nil {
		t.Fatalf("HandleSubmit: %v", err)
	}
	if outcome != Granted {
		t.Fatalf("outcome = %v, want granted", outcome)
	}
	if got := store.items[LoggedInKey]; got != "true" {
		t.Fatalf("storage[%q] = %q, want %q", LoggedInKey, got, "true")
	}
	if len(nav.visited) != 1 || nav.visited[0] != "index.html" {
		t.Fatalf("navigations = %v, want [index.html]", nav.visited)
	}
	if doc.writes != 0 {
		t.Fatalf("error text written %d times on success", doc.writes)
	}
	if ev.prevented != 1 {
		t.Fatalf("PreventDefault called %d times, want 1", ev.prevented)
	}
}

func TestHandleSubmitDenied(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
	}{
		{"empty", "", ""},
		{"wrong password", "admin", "secret"},
		{"wrong username", "root", "admin"},
		{"case sensitive username", "Admin", "admin"},
		{"case sensitive password", "admin", "ADMIN"},
		{"leading space", " admin", "admin"},
		{"trailing space", "admin", "admin "},
		{"swapped prefix", "admi", "nadmin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := newFakeDocument(tc.username, tc.password)
			store := newFakeStorage()
			nav := &fakeNavigator{}
			ev := &fakeEvent{}

			outcome, err := New(doc, store, nav).HandleSubmit(ev)
			if err != nil {
				t.Fatalf("HandleSubmit: %v", err)
			}
			if outcome != Denied {
				t.Fatalf("outcome = %v, want denied", outcome)
			}
			if got := doc.text["error-message"]; got != "Invalid username or password" {
				t.Fatalf("error text = %q", got)
			}
			if store.sets != 0 {
				t.Fatalf("storage written %d times", store.sets)
			}
			if len(nav.visited) != 0 {
				t.Fatalf("unexpected navigation to %v", nav.visited)
			}
			if ev.prevented != 1 {
				t.Fatalf("PreventDefault called %d times, want 1", ev.prevented)
			}
		})
	}
}

func TestRepeatedFailuresOverwriteMessage(t *testing.T) {
	doc := newFakeDocument("guest", "guest")
	store := newFakeStorage()
	g := New(doc, store, &fakeNavigator{})

	for i := 0; i < 5; i++ {
		if _, err := g.HandleSubmit(&fakeEvent{}); err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
	}
	if got := doc.text["error-message"]; got != InvalidCredentialsMessage {
		t.Fatalf("error text = %q", got)
	}
	if len(store.items) != 0 {
		t.Fatalf("storage = %v, want empty", store.items)
	}

	// A later correct attempt still succeeds: there is no lockout.
	doc.values["username"], doc.values["password"] = "admin", "admin"
	outcome, err := g.HandleSubmit(&fakeEvent{})
	if err != nil || outcome != Granted {
		t.Fatalf("HandleSubmit = %v, %v; want granted", outcome, err)
	}
}

func TestHandleSubmitMissingElement(t *testing.T) {
	doc := &fakeDocument{values: map[string]string{"username": "admin"}, text: map[string]string{}}
	store := newFakeStorage()
	nav := &fakeNavigator{}
	ev := &fakeEvent{}

	_, err := New(doc, store, nav).HandleSubmit(ev)
	if !errors.Is(err, ErrMissingElement) {
		t.Fatalf("err = %v, want ErrMissingElement", err)
	}
	if ev.prevented != 1 {
		t.Fatalf("PreventDefault called %d times, want 1", ev.prevented)
	}
	if store.sets != 0 || len(nav.visited) != 0 {
		t.Fatal("side effects after a missing element")
	}
}

func TestHandleSubmitMissingErrorElement(t *testing.T) {
	doc := &fakeDocument{
		values: map[string]string{"username": "x", "password": "y"},
		text:   map[string]string{},
	}
	_, err := New(doc, newFakeStorage(), &fakeNavigator{}).HandleSubmit(&fakeEvent{})
	if !errors.Is(err, ErrMissingElement) {
		t.Fatalf("err = %v, want ErrMissingElement", err)
	}
}

func TestHandleSubmitStorageFailure(t *testing.T) {
	quota := errors.New("quota exceeded")
	store := newFakeStorage()
	store.setErr = quota
	nav := &fakeNavigator{}

	_, err := New(newFakeDocument("admin", "admin"), store, nav).HandleSubmit(&fakeEvent{})
	if !errors.Is(err, quota) {
		t.Fatalf("err = %v, want %v", err, quota)
	}
	if len(nav.visited) != 0 {
		t.Fatal("navigated although the flag could not be stored")
	}
}

func TestOptions(t *testing.T) {
	ids := ElementIDs{Username: "user", Password: "pass", Error: "err", Form: "f"}
	doc := &fakeDocument{
		values: map[string]string{"user": "ops", "pass": "hunter2"},
		text:   map[string]string{"err": ""},
	}
	store := newFakeStorage()
	nav := &fakeNavigator{}
	g := New(doc, store, nav,
		WithCredentials(Credentials{Username: "ops", Password: "hunter2"}),
		WithElementIDs(ids),
		WithDestination("/"),
	)

	outcome, err := g.HandleSubmit(&fakeEvent{})
	if err != nil || outcome != Granted {
		t.Fatalf("HandleSubmit = %v, %v; want granted", outcome, err)
	}
	if len(nav.visited) != 1 || nav.visited[0] != "/" {
		t.Fatalf("navigations = %v", nav.visited)
	}
	if g.ElementIDs() != ids {
		t.Fatalf("ElementIDs() = %+v", g.ElementIDs())
	}
}

func TestAttach(t *testing.T) {
	form := &fakeForm{}
	doc := newFakeDocument("nobody", "nothing")
	g := New(doc, newFakeStorage(), &fakeNavigator{})

	var errs []error
	if err := g.Attach(form, func(err error) { errs = append(errs, err) }); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	form.submit(&fakeEvent{})
	form.submit(&fakeEvent{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if doc.writes != 2 {
		t.Fatalf("error text written %d times, want 2", doc.writes)
	}

	delete(doc.values, "password")
	form.submit(&fakeEvent{})
	if len(errs) != 1 || !errors.Is(errs[0], ErrMissingElement) {
		t.Fatalf("errs = %v", errs)
	}
}

func TestAttachPanicsWithoutHandler(t *testing.T) {
	form := &fakeForm{}
	doc := &fakeDocument{values: map[string]string{}, text: map[string]string{}}
	if err := New(doc, newFakeStorage(), &fakeNavigator{}).Attach(form, nil); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrMissingElement) {
			t.Fatalf("recovered %v, want ErrMissingElement", r)
		}
	}()
	form.submit(&fakeEvent{})
}

func TestOutcomeString(t *testing.T) {
	if Granted.String() != "granted" || Denied.String() != "denied" {
		t.Fatalf("got %q / %q", Granted, Denied)
	}
}
