package scorer

import (
	"sort"
	"strings"
)

const (
	// DefaultMaxKeywords 默认提取的关键词数量上限
	DefaultMaxKeywords = 15
	// DefaultMaxFeatures 词汇表截断上限，限制长文本的计算开销
	DefaultMaxFeatures = 100
)

// ExtractKeywords 使用TF-IDF从文本中提取最具区分度的关键词，
// 按重要性降序返回，最多maxKeywords个。
func ExtractKeywords(text string, maxKeywords int) []string {
	return extractKeywords(text, maxKeywords, DefaultMaxFeatures)
}

func extractKeywords(text string, maxKeywords, maxFeatures int) []string {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	tokens := NormalizeTokens(text)

	// 词元太少时排序没有意义，原样返回
	if len(tokens) < 3 {
		if len(tokens) > maxKeywords {
			return tokens[:maxKeywords]
		}
		return tokens
	}

	// 单文档语料上的TF-IDF：IDF退化为常数，排序等价于长度归一化后的词频
	matrix, err := FitTransform([]string{text}, WithMaxFeatures(maxFeatures))
	if err != nil {
		// 权重计算失败（如输入只含停用词）时回退为最高频词元
		return mostFrequentTokens(tokens, maxKeywords)
	}

	type scored struct {
		term   string
		weight float64
	}
	ranked := make([]scored, 0, len(matrix.Terms))
	for i, term := range matrix.Terms {
		if matrix.Rows[0][i] > 0 {
			ranked = append(ranked, scored{term: term, weight: matrix.Rows[0][i]})
		}
	}
	// Terms本身为字母序，稳定排序使平局保持确定性
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].weight > ranked[b].weight
	})

	if len(ranked) == 0 {
		if len(tokens) > maxKeywords {
			return tokens[:maxKeywords]
		}
		return tokens
	}

	if len(ranked) > maxKeywords {
		ranked = ranked[:maxKeywords]
	}
	keywords := make([]string, len(ranked))
	for i, s := range ranked {
		keywords[i] = s.term
	}
	return keywords
}

// mostFrequentTokens 按出现次数降序返回词元，平局按首次出现顺序
func mostFrequentTokens(tokens []string, max int) []string {
	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if _, ok := counts[tok]; !ok {
			firstSeen[tok] = i
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(a, b int) bool {
		if counts[order[a]] != counts[order[b]] {
			return counts[order[a]] > counts[order[b]]
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})

	if len(order) > max {
		order = order[:max]
	}
	return order
}
