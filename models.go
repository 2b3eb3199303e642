package main

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/davidlamina/atsworker/internal/critique"
	"github.com/davidlamina/atsworker/internal/database"
	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type WorkerConfig struct {
	DB          *database.Queries
	R2          *R2Config
	AwsConfig   *aws.Config
	RabbitConn  *amqp.Connection
	RabbitMQUrl string
	Critique    critique.Provider
	Vocabulary  []string
}

// MatchReport is the per-resume analysis for one document in a session.
// Error entries carry IsErrorResult and leave the scoring fields zeroed.
type MatchReport struct {
	ResumeFilename string         `json:"resume_filename"`
	Score          int            `json:"score"`
	MatchedSkills  []string       `json:"matched_skills"`
	MissingSkills  []string       `json:"missing_skills"`
	SkillScores    map[string]int `json:"skill_scores"`
	AnalysisText   string         `json:"analysis_text"`
	DownloadKey    string         `json:"download_key,omitempty"`
	IsErrorResult  bool           `json:"is_error_result"`
	Error          string         `json:"error,omitempty"`
}

type MatchReports struct {
	ID        uuid.UUID     `json:"id"`
	Reports   []MatchReport `json:"reports"`
	CreatedAt time.Time     `json:"created_at"`
	SessionID uuid.UUID     `json:"session_id"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type Session struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Name           string    `json:"name"`
	UserID         uuid.UUID `json:"user_id"`
	Status         string    `json:"status"`
	JobTitle       string    `json:"job_title"`
	JobDescription string    `json:"job_description"`
}
