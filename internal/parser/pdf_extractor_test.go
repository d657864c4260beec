package parser

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTextlessPDF 构造一个单页但没有任何文本内容的最小合法PDF（模拟扫描件）。
// 交叉引用表的偏移量按实际写入位置计算，保证文件结构有效。
func buildTextlessPDF() []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}
	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	writeObj("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R >>\nendobj\n")
	writeObj("4 0 obj\n<< /Length 0 >>\nstream\nendstream\nendobj\n")

	xrefOffset := buf.Len()
	buf.WriteString("xref\n0 5\n0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 5 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefOffset)
	return buf.Bytes()
}

func TestExtractFromBytesInvalidData(t *testing.T) {
	extractor := NewPDFTextExtractor()

	_, err := extractor.ExtractFromBytes(context.Background(), []byte("this is not a pdf"))
	require.Error(t, err, "非PDF字节流应返回错误")
	assert.ErrorIs(t, err, ErrDocumentProcessing, "解析失败应归类为文档处理错误")
}

func TestExtractFromBytesEmptyData(t *testing.T) {
	extractor := NewPDFTextExtractor()

	_, err := extractor.ExtractFromBytes(context.Background(), nil)
	require.Error(t, err, "空字节流应返回错误")
	assert.ErrorIs(t, err, ErrDocumentProcessing)

	_, err = extractor.ExtractFromBytes(context.Background(), []byte{})
	assert.Error(t, err)
}

func TestExtractFromBytesTruncatedHeader(t *testing.T) {
	extractor := NewPDFTextExtractor()

	// 只有文件头没有交叉引用表的残缺文件
	_, err := extractor.ExtractFromBytes(context.Background(), []byte("%PDF-1.7\n"))
	require.Error(t, err, "残缺PDF应返回错误")
	assert.ErrorIs(t, err, ErrDocumentProcessing)
}

func TestExtractFromBytesTextlessPDF(t *testing.T) {
	extractor := NewPDFTextExtractor()

	// 结构合法但所有页面均无文本的文档应归类为无可提取文本（疑似扫描件）
	_, err := extractor.ExtractFromBytes(context.Background(), buildTextlessPDF())
	require.Error(t, err, "无文本PDF应返回错误")
	assert.ErrorIs(t, err, ErrNoExtractableText)
	assert.NotErrorIs(t, err, ErrDocumentProcessing, "无文本不应归类为处理失败")
}

func TestExtractFromBytesEncryptedPDF(t *testing.T) {
	path := filepath.Join("testdata", "encrypted.pdf")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Skipf("测试文件不存在，跳过: %s", path)
	}

	extractor := NewPDFTextExtractor()
	_, err = extractor.ExtractFromBytes(context.Background(), data)
	require.Error(t, err, "加密PDF在空密码下应返回错误")
	assert.ErrorIs(t, err, ErrEncryptedDocument)
}

func TestExtractFromBytesCancelledContext(t *testing.T) {
	path := filepath.Join("testdata", "sample_resume.pdf")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Skipf("测试文件不存在，跳过: %s", path)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	extractor := NewPDFTextExtractor()
	_, err = extractor.ExtractFromBytes(ctx, data)
	assert.Error(t, err, "已取消的context应中断提取")
}

func TestExtractFromBytesSample(t *testing.T) {
	path := filepath.Join("testdata", "sample_resume.pdf")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Skipf("测试文件不存在，跳过: %s", path)
	}

	extractor := NewPDFTextExtractor()
	text, err := extractor.ExtractFromBytes(context.Background(), data)
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(text), "样例简历应提取到非空文本")
}

func TestDocumentErrorWrapping(t *testing.T) {
	err := NewEncryptedError("decrypt")
	assert.ErrorIs(t, err, ErrEncryptedDocument, "包装错误应能匹配哨兵错误")
	assert.Contains(t, err.Error(), "decrypt")

	err = NewNoTextError("extract")
	assert.ErrorIs(t, err, ErrNoExtractableText)
	assert.NotErrorIs(t, err, ErrEncryptedDocument, "不同类别的哨兵错误不应互相匹配")
}
