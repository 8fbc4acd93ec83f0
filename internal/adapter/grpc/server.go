package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	performancev1 "github.com/FamilyApps/apestogether-performance/internal/adapter/grpc/performance/v1"
	"github.com/FamilyApps/apestogether-performance/internal/domain"
	"github.com/FamilyApps/apestogether-performance/internal/usecase/cache"
)

// Server implements the PerformanceService gRPC server.
// All reads go through the cache orchestrator so this boundary can never
// produce a number the tiered cache wouldn't also serve.
type Server struct {
	performancev1.UnimplementedPerformanceServiceServer

	Orchestrator *cache.Orchestrator

	// Clock supplies the reference instant threaded into every computation.
	// Overridable in tests; defaults to time.Now.
	Clock func() time.Time
}

// NewServer creates a new gRPC server instance
func NewServer(orchestrator *cache.Orchestrator) *Server {
	return &Server{
		Orchestrator: orchestrator,
		Clock:        time.Now,
	}
}

// GetPerformance handles the GetPerformance RPC
func (s *Server) GetPerformance(ctx context.Context, req *performancev1.GetPerformanceRequest) (*performancev1.GetPerformanceResponse, error) {
	entityID, code, variant, err := parseEntityRequest(req.EntityId, req.Period, req.Variant)
	if err != nil {
		return nil, err
	}

	view, err := s.entityView(ctx, entityID, code, variant, req.Live)
	if err != nil {
		return nil, mapError(err)
	}

	return &performancev1.GetPerformanceResponse{
		ReturnPct:          view.Payload.ReturnPct,
		EffectiveStart:     view.Payload.EffectiveStart,
		EffectiveEnd:       view.Payload.EffectiveEnd,
		NetCapitalDeployed: view.Payload.NetCapitalDeployed,
		SnapshotCount:      int32(view.Payload.SnapshotCount),
		Warnings:           view.Payload.Warnings,
		Partial:            view.Payload.Partial,
		NoData:             view.Payload.NoData,
		CacheTier:          string(view.Tier),
		GeneratedAt:        timestamppb.New(view.GeneratedAt),
	}, nil
}

// GetChart handles the GetChart RPC
func (s *Server) GetChart(ctx context.Context, req *performancev1.GetChartRequest) (*performancev1.GetChartResponse, error) {
	entityID, code, variant, err := parseEntityRequest(req.EntityId, req.Period, req.Variant)
	if err != nil {
		return nil, err
	}

	view, err := s.entityView(ctx, entityID, code, variant, false)
	if err != nil {
		return nil, mapError(err)
	}

	points := make([]*performancev1.ChartPoint, 0, len(view.Payload.Points))
	for _, p := range view.Payload.Points {
		points = append(points, &performancev1.ChartPoint{
			Date:         p.Date,
			EntityPct:    p.EntityPct,
			BenchmarkPct: p.BenchmarkPct,
		})
	}

	return &performancev1.GetChartResponse{
		Points:         points,
		EffectiveStart: view.Payload.EffectiveStart,
		// The chart's own points are baseline-relative; the headline here is
		// the canonical Modified-Dietz number for the identical window.
		HeadlineReturnPct: view.Payload.ReturnPct,
		Partial:           view.Payload.Partial,
		NoData:            view.Payload.NoData,
		CacheTier:         string(view.Tier),
		GeneratedAt:       timestamppb.New(view.GeneratedAt),
	}, nil
}

// GetLeaderboard handles the GetLeaderboard RPC
func (s *Server) GetLeaderboard(ctx context.Context, req *performancev1.GetLeaderboardRequest) (*performancev1.GetLeaderboardResponse, error) {
	code, err := parsePeriod(req.Period)
	if err != nil {
		return nil, err
	}
	variant, err := parseVariant(req.Variant)
	if err != nil {
		return nil, err
	}

	view, err := s.Orchestrator.GetPublic(ctx, code, variant)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, status.Errorf(codes.NotFound, "leaderboard for period %s not generated yet", code)
		}
		return nil, mapError(err)
	}

	rows := make([]*performancev1.LeaderboardRow, 0, len(view.Payload.Rows))
	for _, row := range view.Payload.Rows {
		rows = append(rows, &performancev1.LeaderboardRow{
			EntityId:      row.EntityID,
			ReturnPct:     row.ReturnPct,
			SnapshotCount: int32(row.SnapshotCount),
		})
	}

	return &performancev1.GetLeaderboardResponse{
		Rows:        rows,
		TradingDay:  view.Payload.TradingDay,
		Watermark:   view.Payload.Watermark,
		GeneratedAt: timestamppb.New(view.GeneratedAt),
	}, nil
}

// RefreshLeaderboard handles the RefreshLeaderboard RPC. An empty period
// runs the full market-close sweep across every supported period code.
func (s *Server) RefreshLeaderboard(ctx context.Context, req *performancev1.RefreshLeaderboardRequest) (*performancev1.RefreshLeaderboardResponse, error) {
	entityIDs := make([]uuid.UUID, 0, len(req.EntityIds))
	for _, raw := range req.EntityIds {
		entityID, err := uuid.Parse(raw)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid entity_id %q: %v", raw, err)
		}
		entityIDs = append(entityIDs, entityID)
	}

	var result *cache.BatchResult
	if strings.TrimSpace(req.Period) == "" {
		var err error
		result, err = s.Orchestrator.RefreshAllPublic(ctx, entityIDs, s.Clock())
		if err != nil {
			return nil, mapError(err)
		}
	} else {
		code, err := parsePeriod(req.Period)
		if err != nil {
			return nil, err
		}
		result, err = s.Orchestrator.RefreshPublic(ctx, entityIDs, code, s.Clock())
		if err != nil {
			return nil, mapError(err)
		}
	}

	failed := make([]string, 0, len(result.FailedEntities))
	for _, id := range result.FailedEntities {
		failed = append(failed, id.String())
	}

	return &performancev1.RefreshLeaderboardResponse{
		Succeeded:       int32(result.Succeeded),
		Failed:          int32(result.Failed),
		FailedEntityIds: failed,
	}, nil
}

// InvalidateEntity handles the InvalidateEntity RPC
func (s *Server) InvalidateEntity(ctx context.Context, req *performancev1.InvalidateEntityRequest) (*performancev1.InvalidateEntityResponse, error) {
	entityID, err := uuid.Parse(req.EntityId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid entity_id format: %v", err)
	}

	if err := s.Orchestrator.Invalidate(ctx, entityID); err != nil {
		return nil, mapError(err)
	}

	return &performancev1.InvalidateEntityResponse{}, nil
}

// entityView routes to tier 3 for live requests, tier 2 otherwise.
func (s *Server) entityView(ctx context.Context, entityID uuid.UUID, code domain.PeriodCode, variant domain.AudienceVariant, live bool) (*cache.EntityView, error) {
	if live {
		return s.Orchestrator.ComputeLive(ctx, entityID, code, s.Clock())
	}
	return s.Orchestrator.GetEntity(ctx, entityID, code, variant, s.Clock())
}

func parseEntityRequest(rawEntity, rawPeriod, rawVariant string) (uuid.UUID, domain.PeriodCode, domain.AudienceVariant, error) {
	entityID, err := uuid.Parse(rawEntity)
	if err != nil {
		return uuid.Nil, "", "", status.Errorf(codes.InvalidArgument, "invalid entity_id format: %v", err)
	}
	code, err := parsePeriod(rawPeriod)
	if err != nil {
		return uuid.Nil, "", "", err
	}
	variant, err := parseVariant(rawVariant)
	if err != nil {
		return uuid.Nil, "", "", err
	}
	return entityID, code, variant, nil
}

func parsePeriod(raw string) (domain.PeriodCode, error) {
	code, err := domain.ParsePeriodCode(raw)
	if err != nil {
		return "", status.Errorf(codes.InvalidArgument, "%v", err)
	}
	return code, nil
}

func parseVariant(raw string) (domain.AudienceVariant, error) {
	variant, err := domain.ParseAudienceVariant(raw)
	if err != nil {
		return "", status.Errorf(codes.InvalidArgument, "%v", err)
	}
	return variant, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrNoSnapshots) {
		return status.Errorf(codes.NotFound, "%s", err.Error())
	}

	errorMsg := err.Error()

	// Map common validation errors to InvalidArgument
	if strings.Contains(errorMsg, "unknown period") ||
		strings.Contains(errorMsg, "unknown audience variant") ||
		strings.Contains(errorMsg, "malformed snapshot run") ||
		strings.Contains(errorMsg, "invalid") {
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)
	}

	// Map "not found" errors to NotFound
	if strings.Contains(errorMsg, "not found") {
		return status.Errorf(codes.NotFound, "%s", errorMsg)
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", errorMsg)
}
