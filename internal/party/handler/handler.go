package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"partysearch/internal/party/models"
	dErrors "partysearch/pkg/domain-errors"
	"partysearch/pkg/platform/httputil"
	"partysearch/pkg/requestcontext"
)

// Service defines the party operations exposed over HTTP.
type Service interface {
	Search(ctx context.Context, q models.SearchQuery) (*models.SearchResult, error)
	Onboard(ctx context.Context, candidate *models.Party) (*models.Party, error)
	BulkLoad(ctx context.Context, parties []models.Party) error
	Reset(ctx context.Context) error
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public party routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/parties", h.HandleSearch)
	r.Get("/api/partysearch/search", h.HandleSearch)
	r.Post("/api/parties", h.HandleOnboard)
}

// RegisterAdmin mounts the data management routes. Callers wrap r with admin auth.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/admin/parties/bulk", h.HandleBulkLoad)
	r.Delete("/admin/parties", h.HandleReset)
}

// HandleSearch never rejects a query; malformed parameters fall back to defaults.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	q := ParseSearchQuery(r.URL.Query())
	res, err := h.service.Search(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "search parties failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toSearchResponse(q.Term, res))
}

// HandleOnboard creates a party and points Location at a search for it.
func (h *Handler) HandleOnboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[OnboardPartyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	party, err := h.service.Onboard(ctx, req.ToParty())
	if err != nil {
		h.logger.WarnContext(ctx, "onboard party failed",
			"error", err,
			"error_code", dErrors.CodeOf(err),
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Location", "/api/parties?query="+url.QueryEscape(party.PartyID))
	httputil.WriteJSON(w, http.StatusCreated, party)
}

func (h *Handler) HandleBulkLoad(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[BulkLoadRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.BulkLoad(ctx, req.ToParties()); err != nil {
		h.logger.ErrorContext(ctx, "bulk load failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if err := h.service.Reset(ctx); err != nil {
		h.logger.ErrorContext(ctx, "reset parties failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "party store reset", "request_id", requestID)
	w.WriteHeader(http.StatusNoContent)
}
