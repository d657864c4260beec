package parser

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	// ErrEncryptedDocument 文档加密且空密码无法打开，不可重试
	ErrEncryptedDocument = errors.New("文档受密码保护")
	// ErrNoExtractableText 文档可解码但所有页面均无可提取文本（如扫描件）
	ErrNoExtractableText = errors.New("文档中没有可提取的文本")
	// ErrDocumentProcessing 其他解码/解析失败
	ErrDocumentProcessing = errors.New("文档处理失败")
)

// DocumentError 包含底层原因描述的文档处理错误
type DocumentError struct {
	Op      string
	BaseErr error
	Detail  string
}

func (e *DocumentError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s): %s", e.BaseErr, e.Op, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s)", e.BaseErr, e.Op)
}

func (e *DocumentError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *DocumentError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewEncryptedError(op string) error {
	return &DocumentError{
		Op:      op,
		BaseErr: ErrEncryptedDocument,
	}
}

func NewNoTextError(op string) error {
	return &DocumentError{
		Op:      op,
		BaseErr: ErrNoExtractableText,
	}
}

func NewProcessingError(op string, cause error) error {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return &DocumentError{
		Op:      op,
		BaseErr: ErrDocumentProcessing,
		Detail:  detail,
	}
}
