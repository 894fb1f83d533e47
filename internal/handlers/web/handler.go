// Package web serves the roster over plain HTTP and streams live reports
// over websockets.
package web

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/army-rater/internal/errors"
	"github.com/KirkDiggler/army-rater/internal/orchestrators/roster"
	"github.com/KirkDiggler/army-rater/internal/services/interchange"
)

// maxBodyBytes bounds import and score payloads
const maxBodyBytes = 4 << 20

// Config holds dependencies for the HTTP handler
type Config struct {
	RosterService roster.Service
	Codec         interchange.Codec
	EventBus      events.EventBus
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.RosterService == nil {
		vb.RequiredField("RosterService")
	}
	if c.Codec == nil {
		vb.RequiredField("Codec")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	return vb.Build()
}

// Handler owns the HTTP routes
type Handler struct {
	roster   roster.Service
	codec    interchange.Codec
	bus      events.EventBus
	upgrader websocket.Upgrader
}

// NewHandler creates a new HTTP handler
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		roster: cfg.RosterService,
		codec:  cfg.Codec,
		bus:    cfg.EventBus,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}, nil
}

// Router returns a router with every route registered
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	h.Register(r)
	return r
}

// Register adds the routes to r
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/score", h.scoreUnits).Methods(http.MethodPost)
	api.HandleFunc("/thresholds", h.thresholds).Methods(http.MethodGet)
	api.HandleFunc("/armies", h.listArmies).Methods(http.MethodGet)
	api.HandleFunc("/armies/{id}/report", h.armyReport).Methods(http.MethodGet)
	api.HandleFunc("/armies/{id}/export", h.exportArmy).Methods(http.MethodGet)
	api.HandleFunc("/armies/{id}/import", h.importArmy).Methods(http.MethodPost)
	api.HandleFunc("/armies/{id}/units/{index:[0-9]+}/count", h.setUnitCount).Methods(http.MethodPut)
	api.HandleFunc("/armies/{id}/live", h.live).Methods(http.MethodGet)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) scoreUnits(w http.ResponseWriter, r *http.Request) {
	gameSize, err := queryInt(r, "game_size")
	if err != nil {
		writeError(w, r, err)
		return
	}
	data, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	format, err := requestFormat(r, data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	units, err := h.codec.Decode(data, format)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.roster.ScoreUnits(r.Context(), &roster.ScoreUnitsInput{Units: units, GameSize: gameSize})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Report)
}

func (h *Handler) thresholds(w http.ResponseWriter, r *http.Request) {
	gameSize, err := queryInt(r, "game_size")
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.roster.GetThresholds(r.Context(), &roster.GetThresholdsInput{GameSize: gameSize})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Thresholds)
}

// ArmySummary is one row of GET /api/v1/armies
type ArmySummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	GameSize    int     `json:"game_size"`
	Units       int     `json:"units"`
	TotalPoints int     `json:"total_points"`
	Offense     float64 `json:"offense"`
	Defense     float64 `json:"defense"`
	Tactical    float64 `json:"tactical"`
	Ratings     struct {
		Offense  string `json:"offense"`
		Defense  string `json:"defense"`
		Tactical string `json:"tactical"`
	} `json:"ratings"`
}

func (h *Handler) listArmies(w http.ResponseWriter, r *http.Request) {
	out, err := h.roster.ListArmies(r.Context(), &roster.ListArmiesInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	rows := make([]ArmySummary, 0, len(out.Armies))
	for _, a := range out.Armies {
		row := ArmySummary{
			ID:          a.Army.ID,
			Name:        a.Army.Name,
			GameSize:    a.Army.GameSize,
			Units:       len(a.Army.Units),
			TotalPoints: a.Score.TotalPoints,
			Offense:     a.Score.TotalOffense,
			Defense:     a.Score.TotalDefense,
			Tactical:    a.Score.TotalTactical,
		}
		row.Ratings.Offense = string(a.Assessment.Offense)
		row.Ratings.Defense = string(a.Assessment.Defense)
		row.Ratings.Tactical = string(a.Assessment.Tactical)
		rows = append(rows, row)
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) armyReport(w http.ResponseWriter, r *http.Request) {
	gameSize, err := queryInt(r, "game_size")
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.roster.ScoreArmy(r.Context(), &roster.ScoreArmyInput{
		ArmyID:   mux.Vars(r)["id"],
		GameSize: gameSize,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Report)
}

func (h *Handler) exportArmy(w http.ResponseWriter, r *http.Request) {
	var format interchange.Format
	if name := r.URL.Query().Get("format"); name != "" {
		parsed, err := interchange.ParseFormat(name)
		if err != nil {
			writeError(w, r, err)
			return
		}
		format = parsed
	}

	out, err := h.roster.ExportArmy(r.Context(), &roster.ExportArmyInput{
		ArmyID: mux.Vars(r)["id"],
		Format: format,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType(out.Format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Data)
}

func (h *Handler) importArmy(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	format, err := requestFormat(r, data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.roster.ImportArmy(r.Context(), &roster.ImportArmyInput{
		ArmyID: mux.Vars(r)["id"],
		Data:   data,
		Format: format,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"army": out.Army, "report": out.Report})
}

type countRequest struct {
	Count *int `json:"count"`
}

func (h *Handler) setUnitCount(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, r, errors.InvalidArgumentf("invalid unit index %q", mux.Vars(r)["index"]))
		return
	}

	var req countRequest
	data, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := json.Unmarshal(data, &req); err != nil {
		writeError(w, r, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}
	if req.Count == nil {
		vb := errors.NewValidationBuilder()
		vb.RequiredField("count")
		writeError(w, r, vb.Build())
		return
	}

	out, err := h.roster.SetUnitQuantity(r.Context(), &roster.SetUnitQuantityInput{
		ArmyID:   mux.Vars(r)["id"],
		Index:    index,
		Quantity: *req.Count,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"army": out.Army, "report": out.Report})
}

// readBody rejects bodies over maxBodyBytes; they are never truncated.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.InvalidArgumentf("request body exceeds %d bytes", tooLarge.Limit).
				WithMeta("limit_bytes", tooLarge.Limit)
		}
		return nil, errors.InvalidArgumentf("failed to read request body: %v", err)
	}
	return data, nil
}

// requestFormat reads ?format=, then the content type, then sniffs the body
func requestFormat(r *http.Request, data []byte) (interchange.Format, error) {
	if name := r.URL.Query().Get("format"); name != "" {
		return interchange.ParseFormat(name)
	}
	ct := strings.ToLower(r.Header.Get("Content-Type"))
	switch {
	case strings.Contains(ct, "yaml"):
		return interchange.FormatYAML, nil
	case strings.Contains(ct, "json"):
		return interchange.FormatJSON, nil
	}
	return interchange.DetectFormat("", data), nil
}

func contentType(f interchange.Format) string {
	if f == interchange.FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		vb := errors.NewValidationBuilder()
		vb.Fieldf(key, "must be a whole number, got %q", raw)
		return 0, vb.Build()
	}
	return v, nil
}

// errorBody is the JSON shape of every error response
type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error())
	}
	writeJSON(w, status, errorBody{
		Code:    code.String(),
		Message: err.Error(),
		Meta:    errors.GetMeta(err),
	})
}

// writeJSON encodes before writing the header. An unencodable value (a +Inf
// score) is answered with a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err.Error())
		body, _ = json.Marshal(errorBody{
			Code:    errors.CodeInternal.String(),
			Message: "failed to encode response",
		})
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		slog.Error("failed to write response", "error", err.Error())
	}
}
