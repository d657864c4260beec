package scorer

import (
	"strings"

	"resume-match-go/internal/types"
)

// MatchKeywords 衡量岗位描述关键词在简历文本中的命中比例。
// 任一输入为空白时返回零值结果而非错误。
func MatchKeywords(resumeText, jobText string, maxKeywords int) types.MatchResult {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return types.MatchResult{
			Percentage:      0,
			MatchedKeywords: []string{},
			AllKeywords:     []string{},
		}
	}

	jobKeywords := ExtractKeywords(jobText, maxKeywords)
	return MatchAgainstKeywords(resumeText, jobKeywords)
}

// MatchAgainstKeywords 使用已提取的岗位关键词集合做匹配，
// 供调用方复用缓存的关键词（按内容寻址）时使用。
func MatchAgainstKeywords(resumeText string, jobKeywords []string) types.MatchResult {
	resumeWords := TokenSet(NormalizeTokens(resumeText))

	matched := make([]string, 0, len(jobKeywords))
	for _, kw := range jobKeywords {
		if _, ok := resumeWords[kw]; ok {
			matched = append(matched, kw)
		}
	}

	percentage := 0.0
	if len(jobKeywords) > 0 {
		percentage = float64(len(matched)) / float64(len(jobKeywords)) * 100
	}

	if jobKeywords == nil {
		jobKeywords = []string{}
	}
	return types.MatchResult{
		Percentage:      percentage,
		MatchedKeywords: matched,
		AllKeywords:     jobKeywords,
	}
}
