package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/AliAlSubhi98/CodelineChallenge/auth"
	"github.com/AliAlSubhi98/CodelineChallenge/gatekeeper"
	"github.com/AliAlSubhi98/CodelineChallenge/middleware"
	"github.com/gin-gonic/gin"
)

// postedForm exposes the submitted login form as a gatekeeper.Document. Text
// written to elements is kept and rendered back into login.html.
type postedForm struct {
	c    *gin.Context
	text map[string]string
}

func (f *postedForm) Value(id string) (string, error) {
	v, ok := f.c.GetPostForm(id)
	if !ok {
		return "", gatekeeper.MissingElement(id)
	}
	return v, nil
}

func (f *postedForm) SetText(id, text string) error {
	f.text[id] = text
	return nil
}

type redirect struct{ c *gin.Context }

func (r redirect) Navigate(url string) error {
	r.c.Redirect(http.StatusFound, url)
	return nil
}

// The POST is already the handler's own request; there is no browser
// default to suppress.
type formPost struct{}

func (formPost) PreventDefault() {}

// LoginHandler is the form fallback for browsers without WebAssembly. It runs
// the same gatekeeper as the page script, keeping the flag in a cookie
// session instead of localStorage.
func LoginHandler(creds gatekeeper.Credentials) gin.HandlerFunc {
	return func(c *gin.Context) {
		form := &postedForm{c: c, text: map[string]string{}}
		g := gatekeeper.New(form, auth.NewSessionStorage(c), redirect{c: c}, gatekeeper.WithCredentials(creds))

		outcome, err := g.HandleSubmit(formPost{})
		if err != nil {
			log.Printf("[HTTP] %s login failed: %v", middleware.GetRequestID(c), err)
			if errors.Is(err, gatekeeper.ErrMissingElement) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			return
		}
		if outcome == gatekeeper.Denied {
			c.HTML(http.StatusOK, "login.html", gin.H{"error": form.text[g.ElementIDs().Error]})
		}
	}
}
