package handler

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"resume-match-go/internal/config"
	"resume-match-go/internal/constants"
	"resume-match-go/internal/logger"
	"resume-match-go/internal/parser"
	"resume-match-go/internal/scorer"
	"resume-match-go/internal/storage"
	"resume-match-go/internal/storage/models"
	"resume-match-go/internal/types"
	"resume-match-go/pkg/utils"
)

// ErrUnsupportedFileType 上传的文件不是PDF
var ErrUnsupportedFileType = errors.New("仅支持PDF文件")

// ScoreHandler 打分处理器，协调提取、打分与持久化流程
type ScoreHandler struct {
	cfg       *config.Config
	storage   *storage.Storage
	extractor *parser.PDFTextExtractor
	engine    *scorer.Engine
}

// NewScoreHandler 创建一个新的打分处理器
func NewScoreHandler(
	cfg *config.Config,
	storage *storage.Storage,
	extractor *parser.PDFTextExtractor,
	engine *scorer.Engine,
) *ScoreHandler {
	return &ScoreHandler{
		cfg:       cfg,
		storage:   storage,
		extractor: extractor,
		engine:    engine,
	}
}

// KeywordAnalysis 响应中的关键词分析明细
type KeywordAnalysis struct {
	TotalKeywords       int      `json:"total_keywords"`
	MatchedKeywords     int      `json:"matched_keywords"`
	ExtractedKeywords   []string `json:"extracted_keywords"`
	MatchedKeywordsList []string `json:"matched_keywords_list"`
}

// ScoreResponse 打分响应
type ScoreResponse struct {
	Status          string           `json:"status"`
	Score           float64          `json:"score"`
	KeywordAnalysis *KeywordAnalysis `json:"keyword_analysis,omitempty"`
	TextLength      int              `json:"text_length"`
	RecordID        string           `json:"record_id"`
	ResumePreview   string           `json:"resume_preview"`
}

// HandleScore 处理简历打分请求：提取文本、计算得分、持久化并返回结果
func (h *ScoreHandler) HandleScore(ctx context.Context, fileBytes []byte, filename string, jobDesc string) (*ScoreResponse, error) {
	// 文件类型校验属于请求边界的职责，解码之前先拦截明显的非PDF上传
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return nil, ErrUnsupportedFileType
	}

	resumeText, err := h.extractor.ExtractFromBytes(ctx, fileBytes)
	if err != nil {
		return nil, err
	}

	// 按JD文本内容查询关键词缓存，未命中或Redis不可用时由引擎重新提取
	var scoreOpts []scorer.ScoreOption
	jdMD5 := utils.CalculateMD5([]byte(jobDesc))
	cachedKeywords := h.lookupCachedKeywords(ctx, jdMD5)
	if cachedKeywords != nil {
		scoreOpts = append(scoreOpts, scorer.WithJobKeywords(cachedKeywords))
	}

	result := h.engine.Score(resumeText, jobDesc, scoreOpts...)

	if cachedKeywords == nil && result.Match != nil {
		h.cacheKeywords(ctx, jdMD5, result.Match.AllKeywords)
	}

	record := &models.ResumeScore{
		ResumeText:     utils.TruncateString(resumeText, h.cfg.Scoring.StoredTextLimit),
		JobDescription: jobDesc,
		Score:          result.Score,
		ScoringPolicy:  string(h.engine.Policy()),
		ScoringVersion: constants.DefaultScoringVersion,
	}
	if result.Match != nil {
		record.MatchedKeywordCount = len(result.Match.MatchedKeywords)
		record.TotalKeywordCount = len(result.Match.AllKeywords)
		record.MatchedKeywordsJSON = utils.ConvertArrayToJSON(result.Match.MatchedKeywords)
	}
	if err := h.storage.MySQL.SaveScore(ctx, record); err != nil {
		return nil, err
	}

	return h.buildScoreResponse(resumeText, record.ScoreID, result.Score, result.Match), nil
}

// buildScoreResponse 组装打分响应，关键词预览截取前10个
func (h *ScoreHandler) buildScoreResponse(resumeText, recordID string, score float64, match *types.MatchResult) *ScoreResponse {
	resp := &ScoreResponse{
		Status:        "success",
		Score:         score,
		TextLength:    utf8.RuneCountInString(resumeText), // 按字符计数，多字节文本与截断规则保持一致
		RecordID:      recordID,
		ResumePreview: previewText(resumeText, h.cfg.Scoring.PreviewLength),
	}
	if match != nil {
		extracted := match.AllKeywords
		if len(extracted) > 10 {
			extracted = extracted[:10]
		}
		resp.KeywordAnalysis = &KeywordAnalysis{
			TotalKeywords:       len(match.AllKeywords),
			MatchedKeywords:     len(match.MatchedKeywords),
			ExtractedKeywords:   extracted,
			MatchedKeywordsList: match.MatchedKeywords,
		}
	}
	return resp
}

// lookupCachedKeywords 查询关键词缓存，任何失败都降级为未命中
func (h *ScoreHandler) lookupCachedKeywords(ctx context.Context, jdMD5 string) []string {
	if h.storage.Redis == nil {
		return nil
	}
	keywordsJSON, err := h.storage.Redis.GetJobKeywords(ctx, jdMD5)
	if err != nil {
		logger.Warn().Err(err).Str("jd_md5", jdMD5).Msg("查询关键词缓存失败")
		return nil
	}
	if keywordsJSON == "" {
		return nil
	}
	var keywords []string
	if err := json.Unmarshal([]byte(keywordsJSON), &keywords); err != nil {
		logger.Warn().Err(err).Str("jd_md5", jdMD5).Msg("解析缓存关键词失败")
		return nil
	}
	return keywords
}

// cacheKeywords 回写关键词缓存，失败仅记录日志
func (h *ScoreHandler) cacheKeywords(ctx context.Context, jdMD5 string, keywords []string) {
	if h.storage.Redis == nil || len(keywords) == 0 {
		return
	}
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return
	}
	if err := h.storage.Redis.SetJobKeywords(ctx, jdMD5, string(keywordsJSON)); err != nil {
		logger.Warn().Err(err).Str("jd_md5", jdMD5).Msg("写入关键词缓存失败")
	}
}

// previewText 生成截断预览，超长时追加省略号
func previewText(text string, maxLen int) string {
	truncated := utils.TruncateString(text, maxLen)
	if len([]rune(text)) > maxLen {
		return truncated + "..."
	}
	return truncated
}
