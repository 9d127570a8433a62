package api

import (
	"context"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/limbo/journal/pkg/httputil"
)

type CreateTagRequest struct {
	Name string `json:"name"`
}

func (s *Server) ListMoods(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	moods, err := s.catalogService.ListMoods(ctx)
	if err != nil {
		writeServiceError(w, logger, "list moods", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, moods)
}

func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	categories, err := s.catalogService.ListCategories(ctx)
	if err != nil {
		writeServiceError(w, logger, "list categories", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, categories)
}

func (s *Server) ListTags(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	tags, err := s.catalogService.ListTags(ctx)
	if err != nil {
		writeServiceError(w, logger, "list tags", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tags)
}

// CreateTag answers 200 for both a new and an already existing tag.
func (s *Server) CreateTag(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateTagRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("create tag error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	tag, err := s.catalogService.CreateCustomTag(ctx, req.Name)
	if err != nil {
		writeServiceError(w, logger, "create tag", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tag)
	logger.Info("tag ready", "tag_id", tag.ID)
}
