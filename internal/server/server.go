// Package server exposes the normalization and validation engine over HTTP
// for webhook-driven ingestion pipelines. The engine itself stays pure; this
// layer owns decoding, logging, and the idempotency cache.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ownerfi/listing-validate/internal/cache"
	"github.com/ownerfi/listing-validate/internal/listing"
	"github.com/ownerfi/listing-validate/internal/rules"
	"github.com/ownerfi/listing-validate/internal/validate"
)

type handler struct {
	logger      *zap.Logger
	thresholds  rules.Thresholds
	decisions   cache.DecisionCache
	maxBodySize int64
	version     string
}

// ValidationResponse is the wire shape for a single validated record.
type ValidationResponse struct {
	Record listing.FinancialData `json:"record"`
	Result listing.Result        `json:"result"`
}

// BatchItem pairs one input record with its outcome and disposition.
type BatchItem struct {
	Record      listing.FinancialData `json:"record"`
	Result      listing.Result        `json:"result"`
	Disposition string                `json:"disposition"`
}

// BatchResponse is the wire shape for a batch validation report.
type BatchResponse struct {
	ReportID string      `json:"reportId"`
	Total    int         `json:"total"`
	Approved int         `json:"approved"`
	Review   int         `json:"review"`
	Rejected int         `json:"rejected"`
	Items    []BatchItem `json:"items"`
}

// NewHandler constructs the HTTP handler serving the validation API.
func NewHandler(logger *zap.Logger, thresholds rules.Thresholds, decisions cache.DecisionCache, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if decisions == nil {
		decisions = cache.NewMemoryCache()
	}
	if maxBodySize <= 0 {
		maxBodySize = 1 << 20
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		thresholds:  thresholds,
		decisions:   decisions,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/validate/batch", h.handleValidateBatch)
	mux.HandleFunc("/api/version", h.handleVersion)
	return mux
}

func (h *handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var partial listing.PartialFinancialData
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodySize)).Decode(&partial); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	key := cache.Key(partial)
	if cached, ok := h.decisions.Get(r.Context(), key); ok {
		h.logger.Debug("serving cached decision",
			zap.String("op", "server.handleValidate"),
			zap.String("key", key),
		)
		writeJSONRaw(w, cached)
		return
	}

	record, result := validate.ValidateRecord(partial, h.thresholds)
	h.logger.Info("validated listing",
		zap.String("op", "server.handleValidate"),
		zap.String("address", record.Address),
		zap.Bool("isValid", result.IsValid),
		zap.Bool("shouldAutoReject", result.ShouldAutoReject),
		zap.Int("issues", len(result.Issues)),
	)

	response := ValidationResponse{Record: record, Result: result}
	encoded, err := json.Marshal(response)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	if err := h.decisions.Set(r.Context(), key, string(encoded)); err != nil {
		// The decision is already computed; a cache failure only costs a
		// recompute on redelivery.
		h.logger.Warn("failed to cache decision",
			zap.String("op", "server.handleValidate"),
			zap.Error(err),
		)
	}

	writeJSONRaw(w, string(encoded))
}

func (h *handler) handleValidateBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var partials []listing.PartialFinancialData
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodySize)).Decode(&partials); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response := BatchResponse{
		ReportID: uuid.NewString(),
		Total:    len(partials),
		Items:    make([]BatchItem, 0, len(partials)),
	}

	for _, partial := range partials {
		record, result := validate.ValidateRecord(partial, h.thresholds)
		disposition := Disposition(result)
		switch disposition {
		case DispositionApprove:
			response.Approved++
		case DispositionReview:
			response.Review++
		case DispositionReject:
			response.Rejected++
		}
		response.Items = append(response.Items, BatchItem{
			Record:      record,
			Result:      result,
			Disposition: disposition,
		})
	}

	h.logger.Info("validated batch",
		zap.String("op", "server.handleValidateBatch"),
		zap.String("reportId", response.ReportID),
		zap.Int("total", response.Total),
		zap.Int("rejected", response.Rejected),
	)

	writeJSON(w, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, map[string]string{"version": h.version})
}

// Disposition names the caller-side action a result implies.
const (
	DispositionApprove = "approve"
	DispositionReview  = "review"
	DispositionReject  = "reject"
)

// Disposition maps a validation result to the publish action the ingestion
// contract prescribes: reject beats review beats approve.
func Disposition(result listing.Result) string {
	switch {
	case result.ShouldAutoReject:
		return DispositionReject
	case result.NeedsReview:
		return DispositionReview
	default:
		return DispositionApprove
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("failed to encode response: %v", err), http.StatusInternalServerError)
	}
}

func writeJSONRaw(w http.ResponseWriter, payload string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(payload))
}
