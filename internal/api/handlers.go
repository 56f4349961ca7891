package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/letter-tracker/internal/filters"
	"github.com/ignite/letter-tracker/internal/pkg/httputil"
	"github.com/ignite/letter-tracker/internal/service/letters"
	"github.com/ignite/letter-tracker/internal/service/shipments"
)

// Handlers bundles the HTTP handlers for the dashboard API.
type Handlers struct {
	shipments *shipments.Service
	letters   *letters.Service
}

// NewHandlers creates the handler set.
func NewHandlers(shipSvc *shipments.Service, letterSvc *letters.Service) *Handlers {
	return &Handlers{shipments: shipSvc, letters: letterSvc}
}

// ListShipments returns the filtered, sorted dashboard rows.
//
//	GET /api/shipments?accountId=&status=&letterType=&from=&to=&sort=
func (h *Handlers) ListShipments(w http.ResponseWriter, r *http.Request) {
	f := filters.Parse(r.URL.Query())

	rows, err := h.shipments.List(r.Context(), f)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, map[string]any{
		"shipments": rows,
		"count":     len(rows),
	})
}

// GetShipment returns one shipment with its full tracking timeline.
//
//	GET /api/shipments/{id}
func (h *Handlers) GetShipment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.BadRequest(w, "invalid shipment id")
		return
	}

	v, err := h.shipments.Get(r.Context(), id)
	if err == shipments.ErrNotFound {
		httputil.NotFound(w, "shipment not found")
		return
	}
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, v)
}

// ShipmentStats returns summary counts for the filtered set.
//
//	GET /api/shipments/stats
func (h *Handlers) ShipmentStats(w http.ResponseWriter, r *http.Request) {
	f := filters.Parse(r.URL.Query())

	st, err := h.shipments.Stats(r.Context(), f)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, st)
}

// ListLetters returns the letter catalog.
//
//	GET /api/letters
func (h *Handlers) ListLetters(w http.ResponseWriter, r *http.Request) {
	list, err := h.letters.List(r.Context())
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, map[string]any{
		"letters": list,
		"count":   len(list),
	})
}

// GetLetter returns a single letter template.
//
//	GET /api/letters/{id}
func (h *Handlers) GetLetter(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.BadRequest(w, "invalid letter id")
		return
	}

	l, err := h.letters.Get(r.Context(), id)
	if err == letters.ErrNotFound {
		httputil.NotFound(w, "letter not found")
		return
	}
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, l)
}

// LetterStats returns catalog summary counts.
//
//	GET /api/letters/stats
func (h *Handlers) LetterStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.letters.Stats(r.Context())
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, st)
}

// LetterNames returns the distinct letter names for the filter dropdown.
//
//	GET /api/letters/names
func (h *Handlers) LetterNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.letters.Names(r.Context())
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	httputil.OK(w, map[string]any{"names": names})
}
