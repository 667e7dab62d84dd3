package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ojamall/shipping/pkg/rates"
)

// shippingOptionsRequest is the JSON body for POST
// /api/v1/shipping/options.
type shippingOptionsRequest struct {
	OriginState           string  `json:"origin_state"`
	DestinationState      string  `json:"destination_state"`
	WeightKg              float64 `json:"weight_kg"`
	BaseShippingCostMinor int64   `json:"base_shipping_cost_minor"`
}

// optionPayload is a shipping option plus its display strings.
type optionPayload struct {
	rates.Option
	Display rates.BreakdownStrings `json:"display"`
}

type shippingOptionsResponse struct {
	Success       bool            `json:"success"`
	Options       []optionPayload `json:"options"`
	DefaultOption *optionPayload  `json:"default_option,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// orderTotalRequest is the JSON body for POST /api/v1/orders/total.
// The option is the one committed by the caller during checkout,
// carried through unchanged.
type orderTotalRequest struct {
	SubtotalMinor int64        `json:"subtotal_minor"`
	Option        rates.Option `json:"option"`
}

type orderTotalResponse struct {
	Breakdown rates.Breakdown             `json:"breakdown"`
	Display   rates.OrderBreakdownStrings `json:"display"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleShippingOptions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req shippingOptionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.RecordRequest("shipping_options", "bad_request", time.Since(start).Seconds())
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result := s.engine.GetOptions(r.Context(), rates.OptionsRequest{
		OriginState:      req.OriginState,
		DestinationState: req.DestinationState,
		WeightKg:         req.WeightKg,
		BaseCostMinor:    req.BaseShippingCostMinor,
	})

	status := "ok"
	if !result.Success {
		status = "invalid_input"
	} else if result.Error != "" {
		status = "fallback"
		s.metrics.RecordFallback("sendbox")
	}
	s.metrics.RecordRequest("shipping_options", status, time.Since(start).Seconds())
	s.metrics.RecordQuotesReturned("sendbox", len(result.Options))

	resp := shippingOptionsResponse{
		Success: result.Success,
		Options: make([]optionPayload, 0, len(result.Options)),
		Error:   result.Error,
	}
	for _, opt := range result.Options {
		resp.Options = append(resp.Options, optionPayload{
			Option:  opt,
			Display: rates.FormatBreakdown(opt),
		})
	}
	if result.DefaultOption != nil {
		resp.DefaultOption = &optionPayload{
			Option:  *result.DefaultOption,
			Display: rates.FormatBreakdown(*result.DefaultOption),
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleOrderTotal(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req orderTotalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.RecordRequest("order_total", "bad_request", time.Since(start).Seconds())
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.SubtotalMinor < 0 {
		s.metrics.RecordRequest("order_total", "bad_request", time.Since(start).Seconds())
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "subtotal must not be negative"})
		return
	}

	if req.Option.TotalCostMinor != req.Option.CourierCostMinor+req.Option.PlatformFeeMinor {
		s.metrics.RecordRequest("order_total", "bad_request", time.Since(start).Seconds())
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "option costs do not reconcile"})
		return
	}

	breakdown := rates.ComputeTotal(req.SubtotalMinor, req.Option, s.taxRate)
	s.metrics.RecordRequest("order_total", "ok", time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, orderTotalResponse{
		Breakdown: breakdown,
		Display:   rates.FormatOrderBreakdown(breakdown, req.Option.Currency),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
