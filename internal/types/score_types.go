package types

// Policy 表示综合打分策略
type Policy string

const (
	// PolicySimple 简单策略：仅使用向量空间相似度
	PolicySimple Policy = "simple"
	// PolicyWeighted 加权策略：关键词匹配 + 相似度 + 词汇重叠的加权组合
	PolicyWeighted Policy = "weighted"
)

// MatchResult 关键词匹配结果
type MatchResult struct {
	// 匹配百分比 [0, 100]，total > 0 时恒等于 100 * matched / total
	Percentage float64 `json:"percentage"`
	// 在简历中命中的岗位关键词（顺序与 AllKeywords 一致）
	MatchedKeywords []string `json:"matched_keywords_list"`
	// 作为匹配分母的完整岗位关键词集合（按重要性降序）
	AllKeywords []string `json:"extracted_keywords"`
}

// ScoreBreakdown 加权策略下的各分项得分
type ScoreBreakdown struct {
	KeywordScore    float64 `json:"keyword_score"`    // 关键词匹配得分
	SimilarityScore float64 `json:"similarity_score"` // TF-IDF余弦相似度得分
	OverlapScore    float64 `json:"overlap_score"`    // 原始词汇重叠得分
}

// CompositeScore 一次打分请求的最终结果，计算后不可变
type CompositeScore struct {
	// 最终得分 [0, 100]，保留两位小数
	Score float64 `json:"score"`
	// 各分项得分（简单策略下为 nil）
	Breakdown *ScoreBreakdown `json:"breakdown,omitempty"`
	// 关键词匹配明细
	Match *MatchResult `json:"keyword_analysis,omitempty"`
}

// ScoreRecord 持久化层返回的历史记录条目
type ScoreRecord struct {
	ID         string  `json:"id"`
	Score      float64 `json:"score"`
	AnalyzedAt string  `json:"analyzed_at"`
}
