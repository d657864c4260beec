package handler

import (
	"context"
	"time"

	"resume-match-go/internal/types"
)

// ScoresListResponse 历史打分记录响应
type ScoresListResponse struct {
	Results []types.ScoreRecord `json:"results"`
}

// HandleListScores 返回最近n条打分记录，按分析时间倒序
func (h *ScoreHandler) HandleListScores(ctx context.Context, n int) (*ScoresListResponse, error) {
	if n <= 0 {
		n = h.cfg.Scoring.RecentLimit
	}
	records, err := h.storage.MySQL.ListRecentScores(ctx, n)
	if err != nil {
		return nil, err
	}

	results := make([]types.ScoreRecord, 0, len(records))
	for _, rec := range records {
		results = append(results, types.ScoreRecord{
			ID:         rec.ScoreID,
			Score:      rec.Score,
			AnalyzedAt: rec.AnalyzedAt.Format(time.RFC3339),
		})
	}
	return &ScoresListResponse{Results: results}, nil
}
