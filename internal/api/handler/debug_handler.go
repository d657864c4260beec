package handler

import (
	"context"
	"unicode/utf8"

	"resume-match-go/internal/constants"
)

// DebugExtractResponse 文本提取调试响应
type DebugExtractResponse struct {
	Status               string `json:"status"`
	Error                string `json:"error,omitempty"`
	ExtractedTextLength  int    `json:"extracted_text_length,omitempty"`
	ExtractedTextPreview string `json:"extracted_text_preview,omitempty"`
	IsTextExtracted      bool   `json:"is_text_extracted"`
}

// HandleDebugExtract 调试端点：只做文本提取并返回诊断信息，不打分不落库。
// 提取失败不作为HTTP错误返回，错误描述放在响应体中。
func (h *ScoreHandler) HandleDebugExtract(ctx context.Context, fileBytes []byte) *DebugExtractResponse {
	text, err := h.extractor.ExtractFromBytes(ctx, fileBytes)
	if err != nil {
		return &DebugExtractResponse{
			Status: "error",
			Error:  err.Error(),
		}
	}
	return &DebugExtractResponse{
		Status:               "success",
		ExtractedTextLength:  utf8.RuneCountInString(text),
		ExtractedTextPreview: previewText(text, constants.DebugPreviewLength),
		IsTextExtracted:      text != "",
	}
}
