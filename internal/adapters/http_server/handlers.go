package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iron-24/ripper-report/internal/app"
	"github.com/iron-24/ripper-report/internal/domain"
)

type Handlers struct{ P *app.PlannerService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/resorts", h.getPlan)
	s.mux.Get("/v1/resorts/export", h.exportPlan)
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

// parsePlanRequest reads and validates the shared query parameters.
// Defaults: radius 20 miles, start today, end tomorrow.
func parsePlanRequest(r *http.Request) (app.PlanRequest, error) {
	q := r.URL.Query()

	req := app.PlanRequest{
		Location:    q.Get("location"),
		RadiusMiles: 20,
	}
	if req.Location == "" {
		return req, errors.New("location query parameter is required")
	}
	if rs := q.Get("radius"); rs != "" {
		rad, err := strconv.ParseFloat(rs, 64)
		if err != nil || rad <= 0 {
			return req, errors.New("radius must be a positive number of miles")
		}
		req.RadiusMiles = rad
	}

	now := time.Now().UTC().Truncate(24 * time.Hour)
	req.Params.Start, req.Params.End = now, now.Add(24*time.Hour)
	if ds := q.Get("start"); ds != "" {
		d, err := time.Parse("2006-01-02", ds)
		if err != nil {
			return req, fmt.Errorf("start must be YYYY-MM-DD: %q", ds)
		}
		req.Params.Start = d
	}
	if ds := q.Get("end"); ds != "" {
		d, err := time.Parse("2006-01-02", ds)
		if err != nil {
			return req, fmt.Errorf("end must be YYYY-MM-DD: %q", ds)
		}
		req.Params.End = d
	}
	if err := req.Params.Validate(); err != nil {
		return req, err
	}

	req.Params.NeedLesson = q.Get("lesson") == "true" || q.Get("lesson") == "1"
	req.Params.NeedRental = q.Get("rental") == "true" || q.Get("rental") == "1"
	return req, nil
}

func (h *Handlers) buildPlan(w http.ResponseWriter, r *http.Request) (domain.Plan, bool) {
	req, err := parsePlanRequest(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid request", err.Error())
		return domain.Plan{}, false
	}
	plan, err := h.P.BuildPlan(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoResorts), errors.Is(err, domain.ErrNoResults):
			writeProblem(w, http.StatusNotFound, "No resorts found",
				"no ski areas matched; try a larger radius or a different location")
		default:
			log.Error().Err(err).Msg("plan failed")
			writeProblem(w, http.StatusBadGateway, "Upstream failure", "could not assemble the resort plan")
		}
		return domain.Plan{}, false
	}
	return plan, true
}

func (h *Handlers) getPlan(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.buildPlan(w, r)
	if !ok {
		return
	}

	etag, body := calcETagAndBody(plan)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write plan body")
	}
}

func (h *Handlers) exportPlan(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.buildPlan(w, r)
	if !ok {
		return
	}

	doc := app.RenderReport(plan)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="ripper-report-%s.txt"`, plan.ID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(doc)); err != nil {
		log.Error().Err(err).Msg("failed to write export body")
	}
}
