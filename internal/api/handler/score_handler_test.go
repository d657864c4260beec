package handler

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match-go/internal/config"
	"resume-match-go/internal/parser"
	"resume-match-go/internal/scorer"
	"resume-match-go/internal/storage"
	"resume-match-go/internal/types"
)

func newTestHandler(t *testing.T) *ScoreHandler {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return NewScoreHandler(
		cfg,
		&storage.Storage{},
		parser.NewPDFTextExtractor(),
		scorer.NewEngine(scorer.Config{Policy: types.PolicyWeighted}),
	)
}

func TestHandleScoreRejectsNonPDF(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.HandleScore(context.Background(), []byte("plain text"), "resume.txt", "some job")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFileType, "非PDF扩展名应被拒绝")

	_, err = h.HandleScore(context.Background(), []byte("plain text"), "resume", "some job")
	assert.ErrorIs(t, err, ErrUnsupportedFileType, "无扩展名应被拒绝")
}

func TestHandleScoreExtensionCaseInsensitive(t *testing.T) {
	h := newTestHandler(t)

	// 大写扩展名应通过类型校验，随后在解析阶段失败
	_, err := h.HandleScore(context.Background(), []byte("not a real pdf"), "RESUME.PDF", "some job")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFileType)
	assert.ErrorIs(t, err, parser.ErrDocumentProcessing)
}

func TestHandleDebugExtractInvalidPDF(t *testing.T) {
	h := newTestHandler(t)

	resp := h.HandleDebugExtract(context.Background(), []byte("garbage bytes"))
	require.NotNil(t, resp)
	assert.Equal(t, "error", resp.Status, "提取失败应以响应体形式返回错误")
	assert.NotEmpty(t, resp.Error)
	assert.False(t, resp.IsTextExtracted)
}

func TestBuildScoreResponse(t *testing.T) {
	h := newTestHandler(t)

	match := &types.MatchResult{
		Percentage:      60,
		MatchedKeywords: []string{"golang", "redis"},
		AllKeywords: []string{
			"golang", "redis", "mysql", "docker", "kubernetes", "kafka",
			"grpc", "linux", "git", "terraform", "ansible", "prometheus",
		},
	}
	resumeText := strings.Repeat("резюме content ", 30)

	resp := h.buildScoreResponse(resumeText, "record-123", 72.51, match)

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 72.51, resp.Score)
	assert.Equal(t, "record-123", resp.RecordID)
	// 多字节文本按字符计数，不按字节
	assert.Equal(t, utf8.RuneCountInString(resumeText), resp.TextLength)
	assert.Equal(t, 450, resp.TextLength)
	assert.Less(t, resp.TextLength, len(resumeText), "西里尔字母文本的字节数应大于字符数")

	require.NotNil(t, resp.KeywordAnalysis)
	assert.Equal(t, 12, resp.KeywordAnalysis.TotalKeywords)
	assert.Equal(t, 2, resp.KeywordAnalysis.MatchedKeywords)
	assert.Len(t, resp.KeywordAnalysis.ExtractedKeywords, 10, "关键词预览应截取前10个")
	assert.Equal(t, []string{"golang", "redis"}, resp.KeywordAnalysis.MatchedKeywordsList)
}

func TestBuildScoreResponseNoMatch(t *testing.T) {
	h := newTestHandler(t)

	resp := h.buildScoreResponse("short resume", "id-1", 0, nil)
	assert.Nil(t, resp.KeywordAnalysis, "没有匹配明细时省略keyword_analysis")
	assert.Equal(t, "short resume", resp.ResumePreview)
}

func TestPreviewText(t *testing.T) {
	assert.Equal(t, "short", previewText("short", 200), "短文本不加省略号")
	assert.Equal(t, "abcde...", previewText("abcdefgh", 5), "超长文本截断后追加省略号")
	assert.Equal(t, "简历文...", previewText("简历文本内容", 3), "按字符数截断多字节文本")
}
