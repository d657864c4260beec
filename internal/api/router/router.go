package router

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"resume-match-go/internal/api/handler"
	"resume-match-go/internal/parser"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, scoreHandler *handler.ScoreHandler) {
	api := h.Group("/api/v1")

	api.POST("/resume/score", func(c context.Context, ctx *app.RequestContext) {
		fileBytes, filename, ok := readUploadedFile(ctx)
		if !ok {
			return
		}
		jobDesc := ctx.PostForm("job_desc")

		resp, err := scoreHandler.HandleScore(c, fileBytes, filename, jobDesc)
		if err != nil {
			status, message := mapError(err)
			ctx.JSON(status, utils.H{"error": message})
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/resume/debug-extract", func(c context.Context, ctx *app.RequestContext) {
		fileBytes, _, ok := readUploadedFile(ctx)
		if !ok {
			return
		}
		ctx.JSON(consts.StatusOK, scoreHandler.HandleDebugExtract(c, fileBytes))
	})

	api.GET("/resume/scores", func(c context.Context, ctx *app.RequestContext) {
		limit := 0
		if limitStr := ctx.Query("limit"); limitStr != "" {
			if n, err := strconv.Atoi(limitStr); err == nil {
				limit = n
			}
		}
		resp, err := scoreHandler.HandleListScores(c, limit)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	// 健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}

// readUploadedFile 读取multipart表单中的file字段，失败时直接写出错误响应
func readUploadedFile(ctx *app.RequestContext) ([]byte, string, bool) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
		return nil, "", false
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "读取文件内容失败"})
		return nil, "", false
	}
	return fileBytes, fileHeader.Filename, true
}

// mapError 将提取/校验错误映射为HTTP状态码和用户可读消息。
// 打分路径内部的故障不会以错误形式到达这里。
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, handler.ErrUnsupportedFileType):
		return consts.StatusBadRequest, "仅支持PDF文件"
	case errors.Is(err, parser.ErrEncryptedDocument):
		return consts.StatusBadRequest, "文档受密码保护"
	case errors.Is(err, parser.ErrNoExtractableText):
		return consts.StatusBadRequest, "未找到可提取文本，文件可能是扫描件"
	case errors.Is(err, parser.ErrDocumentProcessing):
		return consts.StatusBadRequest, "文档处理失败: " + err.Error()
	default:
		return consts.StatusInternalServerError, err.Error()
	}
}
