package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/lifecubes/internal/storage"
	"github.com/mmynk/lifecubes/pkg/api"
	"github.com/mmynk/lifecubes/pkg/api/apiconnect"
)

var _ apiconnect.TagServiceHandler = (*TagService)(nil)

// TagService implements the TagService RPC interface.
type TagService struct {
	store  storage.EventStore
	logger *slog.Logger
}

// NewTagService creates a new TagService.
func NewTagService(store storage.EventStore, logger *slog.Logger) *TagService {
	return &TagService{store: store, logger: logger}
}

// ListTags returns the distinct tags of the caller's events, for tag
// suggestions.
func (s *TagService) ListTags(ctx context.Context, req *connect.Request[api.ListTagsRequest]) (*connect.Response[api.ListTagsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	tags, err := s.store.ListTags(ctx, userID, strings.TrimSpace(req.Msg.Search))
	if err != nil {
		s.logger.Error("ListTags failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ListTagsResponse{Tags: toAPITags(tags)}), nil
}
