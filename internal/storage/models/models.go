package models

import (
	"time"

	"gorm.io/datatypes"
)

// ResumeScore 简历打分记录表
type ResumeScore struct {
	ScoreID             string         `gorm:"type:char(36);primaryKey"`
	ResumeText          string         `gorm:"type:text"` // 调用方截断后的简历文本
	JobDescription      string         `gorm:"type:text"`
	Score               float64        `gorm:"type:double;index:idx_resume_scores_score"`
	ScoringPolicy       string         `gorm:"type:varchar(20)"`
	ScoringVersion      string         `gorm:"type:varchar(50)"`
	MatchedKeywordCount int            `gorm:"type:int"`
	TotalKeywordCount   int            `gorm:"type:int"`
	MatchedKeywordsJSON datatypes.JSON `gorm:"type:json"`
	AnalyzedAt          time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);index:idx_resume_scores_analyzed_at"`
}

func (ResumeScore) TableName() string {
	return "resume_scores"
}
