package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"writewise/internal/generator"
	"writewise/internal/models"
	"writewise/internal/session"
	"writewise/internal/tools"
)

const (
	SessionHeader = "X-Session-ID"

	maxBodyBytes = 1 << 20
)

// Handler serves the tool catalog and runs generations against per-client
// sessions kept in a TTL cache.
type Handler struct {
	gen      session.Generator
	sessions *cache.Cache
	logger   *zap.Logger
}

// NewHandler returns a Handler whose sessions expire after ttl of
// inactivity.
func NewHandler(gen session.Generator, ttl time.Duration, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		gen:      gen,
		sessions: cache.New(ttl, ttl),
		logger:   logger,
	}
}

type categoryResponse struct {
	Name  string                  `json:"name"`
	Tools []models.ToolDescriptor `json:"tools"`
}

type generateRequest struct {
	Tool  string `json:"tool"`
	Input string `json:"input"`
	Mode  string `json:"mode"`
}

type generateResponse struct {
	Output    string `json:"output"`
	SessionID string `json:"session_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	cats := tools.Categories()
	out := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		cr := categoryResponse{Name: c.Name, Tools: make([]models.ToolDescriptor, 0, len(c.Tools))}
		for _, id := range c.Tools {
			cr.Tools = append(cr.Tools, tools.MustDescribe(id))
		}
		out = append(out, cr)
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) GetTool(w http.ResponseWriter, r *http.Request) {
	id, err := tools.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	h.writeJSON(w, http.StatusOK, tools.MustDescribe(id))
}

// Generate runs one generation on the caller's session. A request for a
// different tool than the session's active one switches tools first, which
// resets the session. The mode is only parsed for tools that take one.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	id, err := tools.Parse(req.Tool)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	mode := models.ModeDefault
	if tools.SupportsMode(id) {
		if mode, err = models.ParseMode(req.Mode); err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	}

	sid, sess := h.session(r.Header.Get(SessionHeader), id)
	w.Header().Set(SessionHeader, sid)

	out, err := sess.Run(r.Context(), h.gen, id, mode, req.Input)
	switch {
	case errors.Is(err, session.ErrBusy):
		h.writeBusy(w)
		return
	case err != nil:
		var genErr *generator.Error
		if errors.As(err, &genErr) {
			h.logger.Warn("generation failed",
				zap.String("session_id", sid),
				zap.String("request_id", genErr.RequestID),
				zap.Stringer("kind", genErr.Kind),
			)
		}
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, generateResponse{Output: out, SessionID: sid})
}

// session returns the session for sid, creating one (with a fresh id when
// sid is empty) if it is unknown or expired. Every lookup extends its TTL.
func (h *Handler) session(sid string, tool models.ToolID) (string, *session.Session) {
	if sid == "" {
		sid = uuid.NewString()
	}
	if v, ok := h.sessions.Get(sid); ok {
		sess := v.(*session.Session)
		h.sessions.SetDefault(sid, sess)
		return sid, sess
	}

	sess := session.New(tool)
	if err := h.sessions.Add(sid, sess, cache.DefaultExpiration); err != nil {
		// lost a race with a concurrent request for the same id
		if v, ok := h.sessions.Get(sid); ok {
			return sid, v.(*session.Session)
		}
	}
	return sid, sess
}

func (h *Handler) writeBusy(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusConflict, errorResponse{Error: session.ErrBusy.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("encode response", zap.Error(err))
	}
}
