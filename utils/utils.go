package utils

import (
	"context"

	"github.com/go-chi/chi/v5/middleware"
)

// GetRequestIDFromCtx возвращает request id, проставленный chi middleware.RequestID.
func GetRequestIDFromCtx(ctx context.Context) string {
	return middleware.GetReqID(ctx)
}
