package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock-insight/internal/api/models"
	"stock-insight/internal/config"
	"stock-insight/internal/ingest"
	"stock-insight/internal/report"
	"stock-insight/internal/session"
)

// maxUploadBytes bounds uploaded CSVs; the dashboard works on small
// datasets, so anything larger is almost certainly a mistake.
const maxUploadBytes = 8 << 20

// SessionHandler owns session lifecycle, uploads and report export.
type SessionHandler struct {
	cfg   *config.Config
	store *session.Store
}

func NewSessionHandler(cfg *config.Config, store *session.Store) *SessionHandler {
	return &SessionHandler{cfg: cfg, store: store}
}

// Create handles POST /api/v1/sessions — creates a session and loads a
// generated series into it.
func (h *SessionHandler) Create(c *gin.Context) {
	// Body is optional; zero values fall back to config defaults.
	var req models.SessionRequest
	_ = c.ShouldBindJSON(&req)

	if req.Symbol == "" {
		req.Symbol = h.cfg.Market.Symbol
	}
	if req.Days == 0 {
		req.Days = h.cfg.Market.Days
	}

	st := h.store.Create()
	rng, _ := newRNG(req.Seed)
	st, err := session.ChangeSymbol(st, rng, req.Symbol, req.Days)
	if err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}
	if err := h.store.Put(st); err != nil {
		errorJSON(c, http.StatusInternalServerError, "SESSION_STORE_ERROR", err.Error())
		return
	}

	c.JSON(http.StatusOK, st)
}

// Get handles GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	st, err := h.store.Get(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
		return
	}
	c.JSON(http.StatusOK, st)
}

// ChangeSymbol handles POST /api/v1/sessions/:id/symbol
func (h *SessionHandler) ChangeSymbol(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}
	if req.Days == 0 {
		req.Days = h.cfg.Market.Days
	}

	st, err := h.store.Get(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
		return
	}

	rng, _ := newRNG(req.Seed)
	st, err = session.ChangeSymbol(st, rng, req.Symbol, req.Days)
	if err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}
	if err := h.store.Put(st); err != nil {
		errorJSON(c, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
		return
	}
	c.JSON(http.StatusOK, st)
}

// Upload handles POST /api/v1/upload — multipart CSV into a session.
// A malformed file surfaces as a 400 with an empty dataset; it never
// kills an existing session.
func (h *SessionHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "MISSING_FILE", "multipart field 'file' is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		badRequest(c, "FILE_TOO_LARGE", "uploaded file exceeds the size limit")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "UPLOAD_READ_ERROR", err.Error())
		return
	}
	defer f.Close()

	rows, err := ingest.ParseCSV(f)
	if err != nil {
		if errors.Is(err, ingest.ErrNoData) {
			badRequest(c, "EMPTY_FILE", "file has no header or data rows")
			return
		}
		badRequest(c, "PARSE_ERROR", err.Error())
		return
	}

	st, ok := h.sessionForUpload(c)
	if !ok {
		return
	}

	rng, _ := newRNG(0)
	st, err = session.LoadRows(st, rng, rows)
	if err != nil {
		badRequest(c, "ADAPT_ERROR", err.Error())
		return
	}
	if err := h.store.Put(st); err != nil {
		errorJSON(c, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{
		SessionID: st.ID,
		Rows:      len(rows),
		Points:    len(st.Series),
	})
}

// Report handles GET /api/v1/report/:id — the export bundle for the
// external file-save mechanism.
func (h *SessionHandler) Report(c *gin.Context) {
	st, err := h.store.Get(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
		return
	}
	c.JSON(http.StatusOK, report.Build(st))
}

// sessionForUpload resolves the optional session_id form field, creating
// a session when absent.
func (h *SessionHandler) sessionForUpload(c *gin.Context) (session.State, bool) {
	id := c.PostForm("session_id")
	if id == "" {
		return h.store.Create(), true
	}
	st, err := h.store.Get(id)
	if err != nil {
		errorJSON(c, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
		return session.State{}, false
	}
	return st, true
}
