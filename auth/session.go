package auth

import (
	"fmt"
	"net/http"

	"github.com/AliAlSubhi98/CodelineChallenge/config"
	"github.com/AliAlSubhi98/CodelineChallenge/gatekeeper"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SessionName is the cookie holding the fallback login flag.
const SessionName = "codeline_session"

// cookieMaxAge keeps the flag across browser restarts, like localStorage.
const cookieMaxAge = 400 * 24 * 60 * 60

// Credentials returns the pair the login form must match.
func Credentials(cfg *config.Config) gatekeeper.Credentials {
	return gatekeeper.Credentials{Username: cfg.AuthUsername, Password: cfg.AuthPassword}
}

// Sessions installs the cookie session store used by SessionStorage.
func Sessions(cfg *config.Config) gin.HandlerFunc {
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(SessionName, store)
}

// SessionStorage stores string items in the request's cookie session. It is
// the server-side counterpart of window.localStorage for clients without
// JavaScript.
type SessionStorage struct {
	session sessions.Session
}

// NewSessionStorage requires the Sessions middleware on the route.
func NewSessionStorage(c *gin.Context) *SessionStorage {
	return &SessionStorage{session: sessions.Default(c)}
}

func (s *SessionStorage) GetItem(key string) (string, bool, error) {
	v := s.session.Get(key)
	if v == nil {
		return "", false, nil
	}
	str, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("session item %q has type %T", key, v)
	}
	return str, true, nil
}

func (s *SessionStorage) SetItem(key, value string) error {
	s.session.Set(key, value)
	if err := s.session.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
