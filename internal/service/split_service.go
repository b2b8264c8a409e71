package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/receiptsplit/internal/calculator"
	"github.com/mmynk/receiptsplit/internal/metrics"
	"github.com/mmynk/receiptsplit/internal/models"
	"github.com/mmynk/receiptsplit/pkg/rpc"
)

var _ rpc.SplitServiceHandler = (*SplitService)(nil)

// SplitService implements the Connect SplitService.
type SplitService struct {
	metrics *metrics.Metrics
}

// NewSplitService creates a new SplitService. m may be nil to skip metrics.
func NewSplitService(m *metrics.Metrics) *SplitService {
	return &SplitService{metrics: m}
}

// CalculateSplit validates the session snapshot and computes its split summary.
func (s *SplitService) CalculateSplit(ctx context.Context, req *connect.Request[models.Session]) (*connect.Response[models.SplitSummary], error) {
	session := req.Msg
	if err := session.Validate(); err != nil {
		slog.Warn("CalculateSplit rejected session", "error", err)
		s.countCalculation("invalid")
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	slog.Debug("Calculating split",
		"participants", len(session.Participants),
		"receipts", len(session.Receipts),
		"items", len(session.Items),
		"currency", session.SettlementCurrency,
	)

	start := time.Now()
	summary := calculator.Calculate(*session)
	s.observe(summary, time.Since(start))

	for _, w := range summary.CurrencyWarnings {
		slog.Warn("Receipt converted without exchange rate",
			"receipt_id", w.ReceiptID,
			"currency", w.Currency,
			"settlement_currency", session.SettlementCurrency,
		)
	}
	for _, item := range summary.Items {
		if item.UsedFallback {
			slog.Debug("Item split equally after invalid assignments",
				"item_id", item.ItemID,
				"requested_mode", item.RequestedMode,
			)
		}
	}
	if adj := summary.RoundingAdjustment; adj != nil {
		slog.Debug("Session rounding correction",
			"participant_id", adj.ParticipantID,
			"amount", adj.Amount,
		)
	}
	slog.Debug("Split calculated",
		"total", summary.Total,
		"settlements", len(summary.Settlements),
		"rounding_occurred", summary.RoundingOccurred,
	)

	return connect.NewResponse(&summary), nil
}

func (s *SplitService) countCalculation(result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.Calculations.WithLabelValues(result).Inc()
}

func (s *SplitService) observe(summary models.SplitSummary, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.Calculations.WithLabelValues("ok").Inc()
	s.metrics.CalculationDuration.Observe(elapsed.Seconds())
	if summary.RoundingAdjustment != nil {
		s.metrics.SessionCorrections.Inc()
	}
	for _, item := range summary.Items {
		if item.UsedFallback {
			s.metrics.SplitFallbacks.Inc()
		}
	}
	s.metrics.CurrencyFallbacks.Add(float64(len(summary.CurrencyWarnings)))
}
