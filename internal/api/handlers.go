package api

import (
	"context"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"

	"github.com/limbo/journal/internal/service"
	"github.com/limbo/journal/pkg/dateutil"
	"github.com/limbo/journal/pkg/entity"
	"github.com/limbo/journal/pkg/httputil"
)

type CreateEntryRequest struct {
	// YYYY-MM-DD
	Date string `json:"date"`
	service.EntryRequest
}

type EntriesPageResponse struct {
	Page    int                   `json:"page"`
	Limit   int                   `json:"limit"`
	Total   int                   `json:"total"`
	Entries []entity.JournalEntry `json:"entries"`
}

func (s *Server) CreateEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateEntryRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create entry error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := dateutil.Parse(req.Date)
	if err != nil {
		logger.Error("create entry error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be a YYYY-MM-DD value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	entry, err := s.journalService.CreateEntry(ctx, date, &req.EntryRequest)
	if err != nil {
		writeServiceError(w, logger, "create entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("entry created", "entry_id", entry.ID)
}

func (s *Server) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeBadParam(w, logger, "update entry", err)
		return
	}
	var req service.EntryRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("update entry error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	entry, err := s.journalService.UpdateEntry(ctx, id, &req)
	if err != nil {
		writeServiceError(w, logger, "update entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("entry updated", "entry_id", id)
}

func (s *Server) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeBadParam(w, logger, "delete entry", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	if err = s.journalService.DeleteEntry(ctx, id); err != nil {
		writeServiceError(w, logger, "delete entry", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("entry deleted", "entry_id", id)
}

func (s *Server) GetEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeBadParam(w, logger, "get entry", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	entry, err := s.journalService.GetEntry(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
}

func (s *Server) GetEntryForDate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, err := dateutil.Parse(chi.URLParam(r, "date"))
	if err != nil {
		logger.Error("get entry for date error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be a YYYY-MM-DD value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	entry, err := s.journalService.GetEntryForDate(ctx, date)
	if err != nil {
		writeServiceError(w, logger, "get entry for date", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
}

func (s *Server) HasEntryForDate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, err := queryDate(r, "date")
	if err != nil || date == nil {
		logger.Error("has entry for date error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be a YYYY-MM-DD value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	exists, err := s.journalService.HasEntryForDate(ctx, *date)
	if err != nil {
		writeServiceError(w, logger, "has entry for date", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"date":   date.Format(dateutil.Layout),
		"exists": exists,
	})
}

func (s *Server) GetPaginatedEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	page, err := queryInt(r, "page", defaultPage)
	if err != nil {
		writeBadParam(w, logger, "get entries", err)
		return
	}
	limit, err := queryInt(r, "limit", defaultLimit)
	if err != nil {
		writeBadParam(w, logger, "get entries", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	entries, total, err := s.queryService.GetPaginatedEntries(ctx, page, limit)
	if err != nil {
		writeServiceError(w, logger, "get entries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, EntriesPageResponse{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Entries: entries,
	})
}

func (s *Server) SearchEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	req := service.SearchRequest{Text: r.URL.Query().Get("q")}
	var err error
	if req.Page, err = queryInt(r, "page", defaultPage); err != nil {
		writeBadParam(w, logger, "search entries", err)
		return
	}
	if req.PageSize, err = queryInt(r, "limit", defaultLimit); err != nil {
		writeBadParam(w, logger, "search entries", err)
		return
	}
	if req.From, err = queryDate(r, "from"); err != nil {
		writeBadParam(w, logger, "search entries", err)
		return
	}
	if req.To, err = queryDate(r, "to"); err != nil {
		writeBadParam(w, logger, "search entries", err)
		return
	}
	if req.MoodID, err = queryID(r, "mood"); err != nil {
		writeBadParam(w, logger, "search entries", err)
		return
	}
	if req.TagIDs, err = queryIDList(r, "tags"); err != nil {
		writeBadParam(w, logger, "search entries", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	entries, total, err := s.queryService.SearchAndFilterEntries(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "search entries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, EntriesPageResponse{
		Page:    req.Page,
		Limit:   req.PageSize,
		Total:   total,
		Entries: entries,
	})
}

// ExportEntries returns every matching entry at once, for exporters.
func (s *Server) ExportEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	filter := entity.EntryFilter{Search: r.URL.Query().Get("q")}
	var err error
	if filter.From, err = queryDate(r, "from"); err != nil {
		writeBadParam(w, logger, "export entries", err)
		return
	}
	if filter.To, err = queryDate(r, "to"); err != nil {
		writeBadParam(w, logger, "export entries", err)
		return
	}
	if filter.MoodIDs, err = queryIDList(r, "moods"); err != nil {
		writeBadParam(w, logger, "export entries", err)
		return
	}
	if filter.TagIDs, err = queryIDList(r, "tags"); err != nil {
		writeBadParam(w, logger, "export entries", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	entries, err := s.queryService.GetEntries(ctx, filter)
	if err != nil {
		writeServiceError(w, logger, "export entries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
	logger.Info("entries exported", "count", len(entries))
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	info, err := s.streakService.GetStreakInfo(ctx)
	if err != nil {
		writeServiceError(w, logger, "get streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, info)
}

func (s *Server) GetMissedDays(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	from, err := queryDate(r, "from")
	if err != nil || from == nil {
		logger.Error("get missed days error: invalid from")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "from must be a YYYY-MM-DD value", nil)
		return
	}
	to, err := queryDate(r, "to")
	if err != nil {
		writeBadParam(w, logger, "get missed days", err)
		return
	}
	if to == nil {
		today := dateutil.StartOfDay(time.Now())
		to = &today
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	missed, err := s.streakService.GetMissedDays(ctx, *from, *to)
	if err != nil {
		writeServiceError(w, logger, "get missed days", err)
		return
	}
	days := make([]string, len(missed))
	for i, d := range missed {
		days[i] = d.Format(dateutil.Layout)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"missed_days": days,
	})
}
