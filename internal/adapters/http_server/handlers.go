package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"tonestats/internal/app"
	"tonestats/internal/domain"
)

type Handlers struct{ S *app.SatisfactionService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type toneCountDTO struct {
	Tone  string `json:"tone"`
	Count int64  `json:"count"`
}

type platformSatisfactionDTO struct {
	Company string `json:"company"`
	Tone    string `json:"tone"`
	Count   int64  `json:"count"`
}

type categorySatisfactionDTO struct {
	Category string `json:"category"`
	Tone     string `json:"tone"`
	Count    int64  `json:"count"`
}

type platformDetailDTO struct {
	Company string         `json:"company"`
	Tones   []toneCountDTO `json:"tones"`
}

type recordRequest struct {
	UserID    int64  `json:"user_id"`
	ProductID int64  `json:"product_id"`
	Tone      string `json:"tone"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/satisfaction/platform", h.platformSatisfaction)
	s.mux.Get("/v1/satisfaction/category", h.categorySatisfaction)
	s.mux.Get("/v1/satisfaction/platform/detail", h.platformDetail)
	s.mux.Post("/v1/satisfaction", h.recordSatisfaction)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// kindAndUser validates the query string. A user_id is required only
// for -mine kinds; -whole kinds aggregate across all users.
func kindAndUser(r *http.Request) (domain.Kind, int64, bool, string) {
	kind, err := domain.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		return "", 0, false, "kind must be one of platform-whole, platform-mine, category-whole, category-mine"
	}
	var userID int64
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		userID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			return "", 0, false, "user_id must be a positive integer"
		}
	}
	if kind.Mine() && userID == 0 {
		return "", 0, false, "user_id is required for -mine kinds"
	}
	return kind, userID, true, ""
}

func (h *Handlers) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		if errors.Is(err, domain.ErrNotExistKind) {
			writeProblem(w, http.StatusBadRequest, "Invalid kind", err.Error())
			return
		}
		log.Error().Err(err).Str("path", r.URL.Path).Msg("satisfaction query failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}

	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func (h *Handlers) platformSatisfaction(w http.ResponseWriter, r *http.Request) {
	kind, userID, ok, detail := kindAndUser(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Bad Request", detail)
		return
	}
	recs, err := h.S.GetPlatformSatisfaction(r.Context(), userID, kind)
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	out := make([]platformSatisfactionDTO, 0, len(recs))
	for _, rec := range recs {
		out = append(out, platformSatisfactionDTO{Company: rec.Company, Tone: rec.Tone, Count: rec.Count})
	}
	h.respond(w, r, out, nil)
}

func (h *Handlers) categorySatisfaction(w http.ResponseWriter, r *http.Request) {
	kind, userID, ok, detail := kindAndUser(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Bad Request", detail)
		return
	}
	recs, err := h.S.GetCategorySatisfaction(r.Context(), userID, kind)
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	out := make([]categorySatisfactionDTO, 0, len(recs))
	for _, rec := range recs {
		out = append(out, categorySatisfactionDTO{Category: rec.Category, Tone: rec.Tone, Count: rec.Count})
	}
	h.respond(w, r, out, nil)
}

func (h *Handlers) platformDetail(w http.ResponseWriter, r *http.Request) {
	kind, userID, ok, detail := kindAndUser(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Bad Request", detail)
		return
	}
	rows, err := h.S.GetPlatformDetail(r.Context(), userID, kind)
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	out := make([]platformDetailDTO, 0, len(rows))
	for _, row := range rows {
		dto := platformDetailDTO{Company: row.Company, Tones: make([]toneCountDTO, 0, len(row.Tones))}
		for _, tc := range row.Tones {
			dto.Tones = append(dto.Tones, toneCountDTO{Tone: tc.Tone, Count: tc.Count})
		}
		out = append(out, dto)
	}
	h.respond(w, r, out, nil)
}

func (h *Handlers) recordSatisfaction(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if req.UserID <= 0 || req.ProductID <= 0 || req.Tone == "" {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "user_id, product_id and tone are required")
		return
	}
	ev := domain.SatisfactionEvent{UserID: req.UserID, ProductID: req.ProductID, Tone: req.Tone}
	if err := h.S.RecordSatisfaction(r.Context(), ev); err != nil {
		log.Error().Err(err).Msg("record satisfaction failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	w.WriteHeader(http.StatusCreated)
}
