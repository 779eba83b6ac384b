package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/hiretrack-backend/pkg/ctxutil"
)

const (
	// RequestIDHeader carries the request id in and out.
	RequestIDHeader = "X-Request-Id"
	// ActorHeader names the recruiter acting on the request. Used as the
	// default note author.
	ActorHeader = "X-Actor"

	maxActorLen = 200
)

// RequestID reuses an incoming X-Request-Id or generates a new one, stores
// it in the context and echoes it on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Actor stores the X-Actor header, trimmed, in the context.
func Actor() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := strings.TrimSpace(r.Header.Get(ActorHeader))
			if name == "" {
				next.ServeHTTP(w, r)
				return
			}
			if len(name) > maxActorLen {
				name = name[:maxActorLen]
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithActor(r.Context(), name)))
		})
	}
}
