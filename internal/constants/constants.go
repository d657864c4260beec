package constants

import "time"

const (
	// DefaultScoringVersion 当前打分算法版本标记
	DefaultScoringVersion = "1.0"

	// StoredTextLimit 持久化时简历文本的截断长度
	StoredTextLimit = 5000
	// PreviewLength 响应中简历预览的长度
	PreviewLength = 200
	// DebugPreviewLength 调试端点中预览的长度
	DebugPreviewLength = 500
	// DefaultRecentLimit 历史记录查询的默认条数
	DefaultRecentLimit = 10

	// KeywordCacheDuration 岗位关键词缓存的默认过期时间
	KeywordCacheDuration = 24 * time.Hour
)

// Redis Key 前缀和格式常量
// 命名规范: app:{module}:{entity}:{unique_id}
const (
	// AppPrefix 所有Redis Key的统一应用前缀
	AppPrefix = "resume_match"

	// JobModulePrefix 岗位模块
	JobModulePrefix = "job"

	// EntityKeywords 关键词实体
	EntityKeywords = "keywords"

	// KeyJobKeywords 岗位关键词缓存 (STRING, JSON数组)
	// 格式: resume_match:job:keywords:{jd_text_md5}
	KeyJobKeywords = AppPrefix + ":" + JobModulePrefix + ":" + EntityKeywords + ":%s"
)
