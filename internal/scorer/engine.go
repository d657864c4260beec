package scorer

import (
	"math"
	"strings"

	"github.com/rs/zerolog"

	"resume-match-go/internal/types"
)

// Similarity 在双文档语料上计算TF-IDF余弦相似度并换算为百分比。
// 词汇与文档频率仅基于这两个文本计算。
func Similarity(textA, textB string, opts ...VectorizerOption) (float64, error) {
	matrix, err := FitTransform([]string{textA, textB}, opts...)
	if err != nil {
		return 0, err
	}
	return CosineSimilarity(matrix.Rows[0], matrix.Rows[1]) * 100, nil
}

// Config 打分引擎配置
type Config struct {
	Policy      types.Policy // 打分策略，默认simple
	MaxKeywords int          // 关键词数量上限，默认15
	MaxFeatures int          // 词汇表截断上限，默认100
}

// Engine 综合打分引擎。无状态且无副作用，可跨goroutine并发调用。
type Engine struct {
	cfg    Config
	logger zerolog.Logger
}

// Option 引擎的配置选项
type Option func(*Engine)

// WithLogger 配置诊断日志通道，用于观察内部回退路径
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine 创建打分引擎，未指定的配置项使用默认值
func NewEngine(cfg Config, options ...Option) *Engine {
	if cfg.Policy == "" {
		cfg.Policy = types.PolicySimple
	}
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = DefaultMaxKeywords
	}
	if cfg.MaxFeatures <= 0 {
		cfg.MaxFeatures = DefaultMaxFeatures
	}

	engine := &Engine{
		cfg:    cfg,
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(engine)
	}
	return engine
}

// Policy 返回引擎当前使用的打分策略
func (e *Engine) Policy() types.Policy {
	return e.cfg.Policy
}

// MaxKeywords 返回关键词数量上限
func (e *Engine) MaxKeywords() int {
	return e.cfg.MaxKeywords
}

// scoreOptions 单次打分调用的可选参数
type scoreOptions struct {
	jobKeywords []string
}

// ScoreOption 单次打分的配置选项
type ScoreOption func(*scoreOptions)

// WithJobKeywords 传入预先提取的岗位关键词，跳过内部提取。
// 调用方用它复用按内容寻址缓存的关键词；不影响打分语义。
func WithJobKeywords(keywords []string) ScoreOption {
	return func(o *scoreOptions) {
		o.jobKeywords = keywords
	}
}

// Score 计算简历与岗位描述的综合匹配得分。
// 打分路径内部的任何故障都会被吸收为降级结果，不向调用方抛出错误；
// 相同输入恒定产生相同输出。
func (e *Engine) Score(resumeText, jobText string, options ...ScoreOption) (result types.CompositeScore) {
	opts := &scoreOptions{}
	for _, option := range options {
		option(opts)
	}

	// 内部故障兜底：宁可返回0.0也不让打分请求失败
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface("panic", r).Msg("打分引擎内部故障，返回0.0")
			result = types.CompositeScore{
				Score: 0.0,
				Match: emptyMatch(),
			}
		}
	}()

	match := e.matchFor(resumeText, jobText, opts)

	switch e.cfg.Policy {
	case types.PolicyWeighted:
		return e.scoreWeighted(resumeText, jobText, match)
	default:
		return e.scoreSimple(resumeText, jobText, match)
	}
}

// matchFor 计算关键词匹配明细，优先使用调用方提供的关键词集合
func (e *Engine) matchFor(resumeText, jobText string, opts *scoreOptions) types.MatchResult {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return *emptyMatch()
	}
	if opts.jobKeywords != nil {
		return MatchAgainstKeywords(resumeText, opts.jobKeywords)
	}
	return MatchAgainstKeywords(resumeText, extractKeywords(jobText, e.cfg.MaxKeywords, e.cfg.MaxFeatures))
}

// scoreSimple 简单策略：仅使用unigram向量空间相似度，
// 向量化失败时回退为原始词汇重叠。
func (e *Engine) scoreSimple(resumeText, jobText string, match types.MatchResult) types.CompositeScore {
	resumeClean := strings.Join(strings.Fields(strings.ToLower(resumeText)), " ")
	jobClean := strings.Join(strings.Fields(strings.ToLower(jobText)), " ")

	if resumeClean == "" || jobClean == "" {
		return types.CompositeScore{Score: 0.0, Match: &match}
	}

	similarity, err := Similarity(resumeClean, jobClean)
	if err != nil {
		// 回退路径只做集合交集运算，不会再失败
		e.logger.Warn().Err(err).Msg("向量空间相似度计算失败，回退到词汇重叠")
		similarity = vocabularyOverlap(resumeText, jobText)
	}

	return types.CompositeScore{
		Score: round2(clampPercent(similarity)),
		Match: &match,
	}
}

// scoreWeighted 加权策略：0.5×关键词匹配 + 0.3×相似度 + 0.2×词汇重叠
func (e *Engine) scoreWeighted(resumeText, jobText string, match types.MatchResult) types.CompositeScore {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return types.CompositeScore{Score: 0.0, Match: &match}
	}

	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobText)

	keywordScore := match.Percentage

	similarity, err := Similarity(resumeLower, jobLower, WithBigrams())
	if err != nil {
		// 停用词过滤后没有词汇属于退化情形，相似度按最低值0处理
		e.logger.Debug().Err(err).Msg("双文档语料词汇表为空，相似度记为0")
		similarity = 0
	}

	overlapScore := vocabularyOverlap(resumeText, jobText)

	final := keywordScore*0.5 + similarity*0.3 + overlapScore*0.2

	return types.CompositeScore{
		Score: round2(clampPercent(final)),
		Breakdown: &types.ScoreBreakdown{
			KeywordScore:    round2(keywordScore),
			SimilarityScore: round2(similarity),
			OverlapScore:    round2(overlapScore),
		},
		Match: &match,
	}
}

// vocabularyOverlap 原始词汇重叠百分比：
// 100 × |简历词集 ∩ 岗位词集| / |岗位词集|，岗位文本无词时为0。
// 按空白切分小写文本，不做停用词过滤。
func vocabularyOverlap(resumeText, jobText string) float64 {
	resumeWords := splitWords(resumeText)
	jobWords := splitWords(jobText)
	if len(jobWords) == 0 {
		return 0
	}
	common := 0
	for word := range resumeWords {
		if _, ok := jobWords[word]; ok {
			common++
		}
	}
	return float64(common) / float64(len(jobWords)) * 100
}

func emptyMatch() *types.MatchResult {
	return &types.MatchResult{
		Percentage:      0,
		MatchedKeywords: []string{},
		AllKeywords:     []string{},
	}
}

// clampPercent 将得分约束到[0, 100]
func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// round2 四舍五入保留两位小数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
