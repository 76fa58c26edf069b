package http

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/kalyug-papa-bolo/vahan"
	"go.uber.org/zap"
)

// policyNote accompanies keyed responses. The consent query flag is
// accepted but not enforced; the note makes the expectation explicit.
const policyNote = "Data is sourced from public registry pages. Use requires the vehicle owner's consent."

// minRCLength is the shortest rc accepted on the keyed endpoint.
const minRCLength = 5

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"status":     "healthy",
		"timestamp":  time.Now().Unix(),
		"gate":       s.gate.Stats(),
		"powered_by": s.brand,
	})
}

// handleVehicleInfo serves the keyless endpoint. Upstream failures
// are embedded in the body with HTTP 200, matching the documented
// contract.
func (s *Server) handleVehicleInfo(w http.ResponseWriter, r *http.Request) {
	rc := strings.TrimSpace(r.URL.Query().Get("rc"))
	if rc == "" {
		s.respondJSON(w, http.StatusBadRequest, map[string]any{
			"error":      "Missing rc parameter",
			"usage":      "/api/vehicle-info?rc=<RC_NUMBER>",
			"powered_by": s.brand,
		})
		return
	}

	record, err := s.lookup(r.Context(), rc)
	if err != nil {
		s.logger.Warn("lookup failed",
			zap.String("rc", vahan.CanonicalRC(rc)),
			zap.Error(err),
		)
		s.respondJSON(w, http.StatusOK, map[string]any{
			"error":      vahan.ErrorMessage(err),
			"powered_by": s.brand,
		})
		return
	}

	s.respondJSON(w, http.StatusOK, record)
}

// handleInfo serves the keyed endpoint gated by the access layer.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := q.Get("key")
	rc := strings.TrimSpace(q.Get("rc"))

	if key == "" {
		s.respondFailure(w, http.StatusUnauthorized, "Missing key parameter")
		return
	}
	if len(rc) < minRCLength {
		s.respondFailure(w, http.StatusBadRequest, "Invalid rc parameter: expected at least 5 characters")
		return
	}

	source := clientIP(r)
	if err := s.gate.Authorize(key, source, rc); err != nil {
		status := http.StatusUnauthorized
		if vahan.ErrorCode(err) == vahan.ERATELIMIT {
			status = http.StatusTooManyRequests
		}
		s.logger.Info("request rejected",
			zap.String("source", source),
			zap.String("code", vahan.ErrorCode(err)),
		)
		s.respondFailure(w, status, vahan.ErrorMessage(err))
		return
	}

	record, err := s.lookup(r.Context(), rc)
	if err != nil {
		s.logger.Warn("lookup failed",
			zap.String("rc", vahan.CanonicalRC(rc)),
			zap.Error(err),
		)
		s.respondJSON(w, http.StatusOK, map[string]any{
			"success":    false,
			"queried":    vahan.CanonicalRC(rc),
			"error":      vahan.ErrorMessage(err),
			"powered_by": s.brand,
		})
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"queried":     vahan.CanonicalRC(rc),
		"result":      record,
		"policy_note": policyNote,
		"time":        time.Now().UTC().Format(time.RFC3339),
		"powered_by":  s.brand,
	})
}

// lookup fetches (or recalls) the detail page for rc and runs it
// through extraction, assembly, and normalization.
func (s *Server) lookup(ctx context.Context, rc string) (map[string]any, error) {
	html, ok := s.cache.Get(rc)
	if !ok {
		var err error
		html, err = s.fetcher.Fetch(ctx, rc)
		if err != nil {
			return nil, err
		}
		s.cache.Put(rc, html)
	}

	doc, err := s.parser.Parse(html)
	if err != nil {
		return nil, err
	}

	record := vahan.Normalize(vahan.Assemble(vahan.Extract(doc, rc), s.brand))
	if _, ok := record["powered_by"]; !ok {
		record["powered_by"] = s.brand
	}
	return record, nil
}

func (s *Server) respondFailure(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]any{
		"success":    false,
		"error":      message,
		"powered_by": s.brand,
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encoding response failed", zap.Error(err))
	}
}

// clientIP returns the source identifier for quota accounting. The
// RealIP middleware has already folded X-Forwarded-For into
// RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
