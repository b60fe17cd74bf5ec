package service

import (
	"context"

	"github.com/shenikar/incident_dispatch/internal/models"
)

type viewerContextKey struct{}

// WithViewer сохраняет идентификатор зрителя в контексте запроса.
// От зрителя зависит поле HasUpvoted в возвращаемых инцидентах.
func WithViewer(ctx context.Context, viewerID string) context.Context {
	return context.WithValue(ctx, viewerContextKey{}, viewerID)
}

// ViewerFromContext возвращает зрителя из контекста или анонимного зрителя
func ViewerFromContext(ctx context.Context) string {
	viewerID, _ := ctx.Value(viewerContextKey{}).(string)
	if viewerID == "" {
		return models.AnonymousReporter
	}
	return viewerID
}
