package interfaces

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"net/http"
)

type pathParamKey string

// PathUUIDMiddleware parses the named path parameter as a UUID and stores it in the request
// context. A malformed id cannot name an existing entity, so it is answered with 404.
func PathUUIDMiddleware(respondError ErrorResponder, param, entity string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			parsed, err := uuid.Parse(r.PathValue(param))
			if err != nil {
				respondError(w, http.StatusNotFound, fmt.Sprintf("%s not found", entity))
				return
			}
			ctx := context.WithValue(r.Context(), pathParamKey(param), parsed)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func pathUUID(r *http.Request, param string) uuid.UUID {
	id, _ := r.Context().Value(pathParamKey(param)).(uuid.UUID)
	return id
}
