package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"go-storefront/session"
	"go-storefront/utils"
)

// Key type for context
type contextKey string

const SessionContextKey = contextKey("session")

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "storefront_session"

// SessionMiddleware resolves the shopper's session from the session cookie and
// attaches it to the request context. When there is no live session, GET and
// HEAD requests see an unregistered empty one; any other method starts a real
// session and issues a new cookie.
func SessionMiddleware(store *session.Store, signer *utils.TokenSigner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := lookupSession(r, store, signer)
			switch {
			case ok:
			case readOnly(r.Method):
				sess = store.Transient()
			default:
				sess = store.Create()
				token, err := signer.Issue(sess.ID)
				if err != nil {
					slog.ErrorContext(r.Context(), "issue session token", slog.Any("err", err))
					http.Error(w, "Session unavailable", http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(signer.MaxAge().Seconds()),
					HttpOnly: true,
					Secure:   r.TLS != nil,
					SameSite: http.SameSiteLaxMode,
				})
				slog.DebugContext(r.Context(), "session started", slog.String("session_id", sess.ID))
			}

			// Attach the session to the request context
			ctx := context.WithValue(r.Context(), SessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func readOnly(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

func lookupSession(r *http.Request, store *session.Store, signer *utils.TokenSigner) (*session.Session, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, false
	}
	id, err := signer.Verify(strings.TrimSpace(cookie.Value))
	if err != nil {
		return nil, false
	}
	return store.Get(id)
}

// SessionFromContext returns the session attached by SessionMiddleware
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(SessionContextKey).(*session.Session)
	return sess, ok
}
