package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/logging"
	"github.com/rshade/solarfocus/internal/render"
	"github.com/rshade/solarfocus/internal/report"
)

// maxBodyBytes caps the JSON request body.
const maxBodyBytes = 1 << 16

// estimateRequest is the body of POST /api/v1/estimate.
type estimateRequest struct {
	Label              string   `json:"label,omitempty"`
	MonthlyConsumption *float64 `json:"monthly_consumption"`
	MonthlyBill        *float64 `json:"monthly_bill"`
	Unit               string   `json:"unit,omitempty"`
}

func (r estimateRequest) input() (engine.Input, error) {
	if r.MonthlyConsumption == nil || r.MonthlyBill == nil {
		return engine.Input{}, fmt.Errorf("%w: monthly_consumption and monthly_bill are required", engine.ErrInvalidInput)
	}
	unit, err := engine.ParseUnit(r.Unit)
	if err != nil {
		return engine.Input{}, fmt.Errorf("%w: %w", engine.ErrInvalidInput, err)
	}
	in := engine.Input{
		Label:          r.Label,
		ConsumptionKWh: unit.ToKWh(*r.MonthlyConsumption),
		Bill:           *r.MonthlyBill,
	}
	return in, engine.ValidateInput(in)
}

// estimateResponse pairs the raw estimate with its formatted rendition.
type estimateResponse struct {
	Estimate *engine.Estimate `json:"estimate"`
	Display  []render.Section `json:"display"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError answers API paths with JSON and everything else with text.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeJSON(w, status, errorResponse{
			Error:     msg,
			RequestID: logging.TraceIDFromContext(r.Context()),
		})
		return
	}
	http.Error(w, msg, status)
}

// writeJSON encodes v before writing the header, so an encoding failure is
// answered with a 500 instead of a truncated 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = json.Marshal(errorResponse{Error: "encoding response: " + err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

// estimate runs the engine and records the outcome.
func (s *Server) estimate(r *http.Request, in engine.Input) (*engine.Estimate, error) {
	est, err := s.engine.Estimate(r.Context(), in)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveEstimate(est.Economics.PaybackStatus.String(), est.Cached)
	return est, nil
}

// statusFor maps engine errors onto HTTP status codes.
func statusFor(err error) int {
	if errors.Is(err, engine.ErrInvalidInput) || errors.Is(err, engine.ErrUnknownUnit) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, s.newPage())
}

func (s *Server) handleEstimatePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := s.newPage()
	page.Consumption = q.Get("consumption")
	page.Bill = q.Get("bill")

	in, err := engine.ParseInput(page.Consumption, page.Bill, q.Get("unit"))
	if err != nil {
		page.Error = err.Error()
		s.renderPage(w, r, http.StatusBadRequest, page)
		return
	}

	est, err := s.estimate(r, in)
	if err != nil {
		page.Error = err.Error()
		s.renderPage(w, r, statusFor(err), page)
		return
	}

	view, err := newResultView(s.formatter, est)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	page.Result = view
	s.renderPage(w, r, http.StatusOK, page)
}

func (s *Server) handleAPIEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	in, err := req.input()
	if err != nil {
		writeError(w, r, statusFor(err), err.Error())
		return
	}

	est, err := s.estimate(r, in)
	if err != nil {
		writeError(w, r, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, estimateResponse{
		Estimate: est,
		Display:  render.Sections(s.formatter, est),
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		writeError(w, r, http.StatusNotFound, err.Error())
		return
	}

	q := r.URL.Query()
	in, err := engine.ParseInput(q.Get("consumption"), q.Get("bill"), q.Get("unit"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	in.Label = q.Get("label")

	est, err := s.estimate(r, in)
	if err != nil {
		writeError(w, r, statusFor(err), err.Error())
		return
	}

	// Buffer so a failed render can still produce a clean error response.
	var buf bytes.Buffer
	if err = report.Write(&buf, format, est, report.Options{
		Formatter:   s.formatter,
		GeneratedAt: time.Now(),
	}); err != nil {
		s.internalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="solar-estimate.%s"`, format))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

func (s *Server) newPage() pageData {
	return pageData{Lang: s.lang, Symbol: s.formatter.Symbol()}
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, page pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		s.internalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error().
		Ctx(r.Context()).
		Str("component", "httpapi").
		Err(err).
		Msg("request failed")
	writeError(w, r, http.StatusInternalServerError, "internal error")
}

func formatQueryFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
