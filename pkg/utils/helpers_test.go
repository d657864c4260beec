package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMD5(t *testing.T) {
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", CalculateMD5([]byte("hello")))
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", CalculateMD5(nil), "空输入应得到空串的MD5")

	// 相同内容应得到相同哈希
	assert.Equal(t, CalculateMD5([]byte("岗位描述")), CalculateMD5([]byte("岗位描述")))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "hello", TruncateString("hello", 10), "短于上限的字符串应原样返回")
	assert.Equal(t, "hel", TruncateString("hello", 3))
	assert.Equal(t, "", TruncateString("hello", 0))
	assert.Equal(t, "", TruncateString("hello", -1))

	// 多字节字符不应被切断
	assert.Equal(t, "简历", TruncateString("简历文本", 2))
}

func TestConvertArrayToJSON(t *testing.T) {
	assert.Equal(t, "[]", string(ConvertArrayToJSON(nil)), "空数组应序列化为[]")
	assert.Equal(t, "[]", string(ConvertArrayToJSON([]string{})))
	assert.JSONEq(t, `["python","golang"]`, string(ConvertArrayToJSON([]string{"python", "golang"})))
}
