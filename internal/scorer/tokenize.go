package scorer

import (
	"strings"
	"unicode"
)

// NormalizeTokens 将文本归一化为小写词元序列：
// 非单词字符（字母、数字、下划线之外）全部替换为空格，再按空白切分。
func NormalizeTokens(text string) []string {
	lower := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return ' '
	}, lower)
	return strings.Fields(cleaned)
}

// TokenSet 返回词元去重后的集合
func TokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// splitWords 按空白切分小写化文本，不去除标点。
// 用于原始词汇重叠计算，保持与关键词归一化路径的区分。
func splitWords(text string) map[string]struct{} {
	return TokenSet(strings.Fields(strings.ToLower(text)))
}
