package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

// PDFTextExtractor 从PDF字节内容中提取纯文本
type PDFTextExtractor struct {
	logger zerolog.Logger
}

// PDFOption PDF提取器的配置选项
type PDFOption func(*PDFTextExtractor)

// WithPDFLogger 配置自定义日志记录器
func WithPDFLogger(logger zerolog.Logger) PDFOption {
	return func(e *PDFTextExtractor) {
		e.logger = logger
	}
}

// NewPDFTextExtractor 初始化PDF文本提取器
func NewPDFTextExtractor(options ...PDFOption) *PDFTextExtractor {
	extractor := &PDFTextExtractor{
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor
}

// ExtractFromBytes 按页序从PDF字节内容中提取完整的纯文本。
// 加密且空密码无法打开时返回 ErrEncryptedDocument；
// 所有页面拼接后仍为空时返回 ErrNoExtractableText（疑似扫描件）；
// 其余解析失败包装为 ErrDocumentProcessing 并携带底层原因。
func (e *PDFTextExtractor) ExtractFromBytes(ctx context.Context, data []byte) (text string, err error) {
	startTime := time.Now()

	// 底层解析器在畸形文件上可能panic，统一吸收为处理错误
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface("panic", r).Msg("PDF解析器发生panic")
			text = ""
			err = NewProcessingError("parse", fmt.Errorf("parser panic: %v", r))
		}
	}()

	if len(data) == 0 {
		return "", NewProcessingError("open", errors.New("文件内容为空"))
	}

	// 加密文档仅尝试空密码，失败即视为受保护文档
	reader, err := pdf.NewReaderEncrypted(bytes.NewReader(data), int64(len(data)), func() string { return "" })
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			e.logger.Warn().Msg("PDF受密码保护，空密码解密失败")
			return "", NewEncryptedError("decrypt")
		}
		return "", NewProcessingError("open", err)
	}

	totalPages := reader.NumPage()
	parts := make([]string, 0, totalPages)
	for i := 1; i <= totalPages; i++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", NewProcessingError("parse", ctxErr)
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		// 单页无文本不是错误，按空串处理
		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			e.logger.Debug().Err(pageErr).Int("page", i).Msg("页面文本提取失败，按空页处理")
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText != "" {
			parts = append(parts, pageText)
		}
	}

	fullText := strings.TrimSpace(strings.Join(parts, " "))
	if fullText == "" {
		e.logger.Warn().Int("pages", totalPages).Msg("PDF所有页面均无可提取文本")
		return "", NewNoTextError("extract")
	}

	e.logger.Debug().
		Int("pages", totalPages).
		Int("text_length", len(fullText)).
		Dur("duration", time.Since(startTime)).
		Msg("PDF文本提取完成")
	return fullText, nil
}
