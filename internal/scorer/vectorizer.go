package scorer

import (
	"errors"
	"math"
	"sort"
	"unicode/utf8"
)

// ErrEmptyVocabulary 语料在停用词过滤后没有留下任何词项
var ErrEmptyVocabulary = errors.New("词汇表为空: 输入在停用词过滤后没有剩余词项")

// vectorizerOptions TF-IDF向量化器配置
type vectorizerOptions struct {
	ngramMax    int // 1=仅unigram, 2=unigram+bigram
	maxFeatures int // 词汇表上限，0表示不限制
}

// VectorizerOption 向量化器的配置选项
type VectorizerOption func(*vectorizerOptions)

// WithBigrams 在unigram之外加入bigram特征
func WithBigrams() VectorizerOption {
	return func(o *vectorizerOptions) {
		o.ngramMax = 2
	}
}

// WithMaxFeatures 限制词汇表为语料中频率最高的n个词项
func WithMaxFeatures(n int) VectorizerOption {
	return func(o *vectorizerOptions) {
		o.maxFeatures = n
	}
}

// TfidfMatrix 对固定语料拟合后的TF-IDF矩阵，每行已做L2归一化
type TfidfMatrix struct {
	Terms []string    // 词汇表，字母序
	Rows  [][]float64 // 每个文档一行，与Terms对齐
}

// FitTransform 在给定语料上构建词汇表并计算TF-IDF权重矩阵。
// 词汇与文档频率仅基于这份语料计算；IDF使用平滑公式 ln((1+n)/(1+df)) + 1。
// 语料整体没有任何有效词项时返回 ErrEmptyVocabulary。
func FitTransform(docs []string, opts ...VectorizerOption) (*TfidfMatrix, error) {
	options := &vectorizerOptions{ngramMax: 1}
	for _, opt := range opts {
		opt(options)
	}

	// 每个文档的词项计数
	docCounts := make([]map[string]int, len(docs))
	corpusFreq := make(map[string]int)
	for i, doc := range docs {
		counts := make(map[string]int)
		for _, term := range extractTerms(doc, options.ngramMax) {
			counts[term]++
			corpusFreq[term]++
		}
		docCounts[i] = counts
	}

	if len(corpusFreq) == 0 {
		return nil, ErrEmptyVocabulary
	}

	// 按语料频率截断词汇表，平局按字母序，保证确定性
	terms := make([]string, 0, len(corpusFreq))
	for term := range corpusFreq {
		terms = append(terms, term)
	}
	if options.maxFeatures > 0 && len(terms) > options.maxFeatures {
		sort.Slice(terms, func(a, b int) bool {
			if corpusFreq[terms[a]] != corpusFreq[terms[b]] {
				return corpusFreq[terms[a]] > corpusFreq[terms[b]]
			}
			return terms[a] < terms[b]
		})
		terms = terms[:options.maxFeatures]
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}

	// 文档频率与平滑IDF
	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		df := 0
		for _, counts := range docCounts {
			if counts[term] > 0 {
				df++
			}
		}
		idf[i] = math.Log((1+n)/(1+float64(df))) + 1
	}

	rows := make([][]float64, len(docs))
	for d, counts := range docCounts {
		row := make([]float64, len(terms))
		for term, count := range counts {
			if i, ok := index[term]; ok {
				row[i] = float64(count) * idf[i]
			}
		}
		l2Normalize(row)
		rows[d] = row
	}

	return &TfidfMatrix{Terms: terms, Rows: rows}, nil
}

// extractTerms 生成一个文档的词项序列：过滤停用词和单字符词元后的
// unigram，以及可选的相邻词元bigram。
func extractTerms(text string, ngramMax int) []string {
	raw := NormalizeTokens(text)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if utf8.RuneCountInString(tok) < 2 || IsStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}

	terms := make([]string, 0, len(tokens)*ngramMax)
	terms = append(terms, tokens...)
	if ngramMax >= 2 {
		for i := 0; i+1 < len(tokens); i++ {
			terms = append(terms, tokens[i]+" "+tokens[i+1])
		}
	}
	return terms
}

// l2Normalize 原地做L2归一化，全零向量保持不变
func l2Normalize(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
}

// CosineSimilarity 计算两个向量的余弦相似度，任一向量为全零时返回0
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
