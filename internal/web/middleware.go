package web

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/erazemk/garderoba/internal/auth"
)

type webContextKey string

const webSessionKey webContextKey = "websession"

const sessionCookie = "session"

// sessionFromCookie returns the session ID carried by a valid cookie and
// whether the token should be reissued.
func (s *Server) sessionFromCookie(r *http.Request) (id string, reissue bool) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return "", true
	}
	claims, err := auth.ValidateToken(s.SessionKey, cookie.Value)
	if err != nil {
		return "", true
	}
	reissue = claims.IssuedAt == nil || time.Since(claims.IssuedAt.Time) >= s.SessionTTL/2
	return claims.SessionID(), reissue
}

// SessionMiddleware attaches the browser's session to the request context.
// A missing or invalid cookie starts a new session; a token past half its
// lifetime is reissued so active sessions do not expire.
func (s *Server) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, reissue := s.sessionFromCookie(r)
		if id == "" {
			id = auth.NewSessionID()
		}

		if reissue {
			token, err := auth.GenerateToken(s.SessionKey, id, s.SessionTTL)
			if err != nil {
				slog.Error("failed to issue session token", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			setSessionCookie(w, token, s.SessionTTL)
		}

		ctx := context.WithValue(r.Context(), webSessionKey, s.Sessions.get(id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ViewSessionMiddleware attaches the browser's session if it already has
// one. Otherwise the request sees a fresh workspace that is not kept, so
// browsing alone never registers a session.
func (s *Server) ViewSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := s.sessionFromCookie(r)

		sess, ok := s.Sessions.lookup(id)
		if !ok {
			sess = s.Sessions.transient()
		}

		ctx := context.WithValue(r.Context(), webSessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// setSessionCookie sets the session cookie with consistent attributes.
func setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// getSession retrieves the session from the request context.
func getSession(ctx context.Context) *session {
	sess, _ := ctx.Value(webSessionKey).(*session)
	return sess
}

// SubmitLimitMiddleware rejects form posts from a session that exceeds its
// rate limit. It must run after SessionMiddleware.
func SubmitLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := getSession(r.Context())
		if sess == nil {
			http.Error(w, "no session", http.StatusBadRequest)
			return
		}

		if !sess.limiter.Allow() {
			retryAfter := 1
			if limit := sess.limiter.Limit(); limit > 0 {
				retryAfter = max(1, int(math.Ceil(1/float64(limit))))
			}
			slog.Warn("submit rate limit exceeded", "path", r.URL.Path)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
