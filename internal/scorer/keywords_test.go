package scorer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywordsBasic(t *testing.T) {
	text := "Looking for Python developer with machine learning experience"
	keywords := ExtractKeywords(text, 15)

	require.NotEmpty(t, keywords, "正常文本应该提取到关键词")
	assert.LessOrEqual(t, len(keywords), 15, "关键词数量不应超过上限")

	for _, kw := range keywords {
		assert.Equal(t, strings.ToLower(kw), kw, "关键词应该全部小写: %s", kw)
		assert.NotContains(t, kw, ",", "关键词不应包含标点: %s", kw)
		assert.NotContains(t, kw, ".", "关键词不应包含标点: %s", kw)
	}

	// 停用词不应该出现在结果中
	assert.NotContains(t, keywords, "for", "停用词for应被排除")
	assert.NotContains(t, keywords, "with", "停用词with应被排除")
	assert.Contains(t, keywords, "python", "实义词python应被保留")
}

func TestExtractKeywordsMaxLimit(t *testing.T) {
	text := "alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima"
	keywords := ExtractKeywords(text, 5)
	assert.LessOrEqual(t, len(keywords), 5, "关键词数量不应超过请求的上限")
}

func TestExtractKeywordsShortText(t *testing.T) {
	// 少于3个词元时排序没有意义，原样返回
	keywords := ExtractKeywords("hello world", 15)
	assert.Equal(t, []string{"hello", "world"}, keywords, "短文本应原样返回全部词元")

	keywords = ExtractKeywords("golang", 15)
	assert.Equal(t, []string{"golang"}, keywords)
}

func TestExtractKeywordsEmptyInput(t *testing.T) {
	assert.Empty(t, ExtractKeywords("", 15), "空文本应返回空切片")
	assert.Empty(t, ExtractKeywords("   \t\n", 15), "空白文本应返回空切片")
}

func TestExtractKeywordsStopWordsOnlyFallback(t *testing.T) {
	// 输入只含停用词时TF-IDF失败，回退为最高频原始词元
	keywords := ExtractKeywords("the of and", 15)
	assert.Equal(t, []string{"the", "of", "and"}, keywords, "回退路径应按首次出现顺序返回原始词元")
}

func TestExtractKeywordsPunctuationStripped(t *testing.T) {
	keywords := ExtractKeywords("C++, Python!! And (Java)...", 15)
	for _, kw := range keywords {
		assert.Regexp(t, "^[a-z0-9_ ]+$", kw, "关键词应只含小写字母数字: %s", kw)
	}
	assert.Contains(t, keywords, "python")
	assert.Contains(t, keywords, "java")
}

func TestExtractKeywordsDeterministic(t *testing.T) {
	text := "Senior Go engineer building distributed storage systems with Go and Rust"
	first := ExtractKeywords(text, 10)
	second := ExtractKeywords(text, 10)
	assert.Equal(t, first, second, "相同输入应产生相同的关键词序列")
}

func TestMostFrequentTokensOrdering(t *testing.T) {
	tokens := []string{"b", "a", "a", "c", "b", "a"}
	result := mostFrequentTokens(tokens, 10)
	// a出现3次最多；b和c按首次出现顺序
	assert.Equal(t, []string{"a", "b", "c"}, result)

	result = mostFrequentTokens(tokens, 2)
	assert.Equal(t, []string{"a", "b"}, result, "应截断到上限")
}
