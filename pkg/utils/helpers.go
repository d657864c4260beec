package utils

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"

	"gorm.io/datatypes"
)

// CalculateMD5 computes the MD5 hash of a byte slice.
func CalculateMD5(data []byte) string {
	hasher := md5.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// TruncateString 按字符数截断字符串，保证不切断多字节字符
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// ConvertArrayToJSON 辅助函数: 将字符串数组转换为JSON
func ConvertArrayToJSON(arr []string) datatypes.JSON {
	if len(arr) == 0 {
		return datatypes.JSON("[]")
	}
	jsonBytes, err := json.Marshal(arr)
	if err != nil {
		// 简单数组序列化理论上不会失败，失败时返回安全默认值
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(jsonBytes)
}
