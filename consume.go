package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/davidlamina/atsworker/internal/ats"
	"github.com/davidlamina/atsworker/internal/critique"
	"github.com/davidlamina/atsworker/internal/database"
	"github.com/davidlamina/atsworker/internal/extract"
	"github.com/davidlamina/atsworker/internal/revise"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/streadway/amqp"
)

// improvedSummary replaces the summary paragraph of DOCX resumes.
const improvedSummary = "Results-driven candidate aligned with job requirements."

// retry retries a function up to `attempts` times with backoff
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		wait := time.Duration(500*(i+1)) * time.Millisecond
		time.Sleep(wait)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

func errorReport(filename, errorMsg string) MatchReport {
	return MatchReport{
		ResumeFilename: filename,
		IsErrorResult:  true,
		Error:          errorMsg,
	}
}

// analyzeResume runs the scoring pipeline for one extracted resume:
// match both texts against the vocabulary, score the resume against the
// job description's skills, assemble the report, then attach the
// best-effort critique.
func analyzeResume(ctx context.Context, cfg *WorkerConfig, currentSession Session, filename, resumeText string) MatchReport {
	jobSkills := ats.Match(currentSession.JobDescription, cfg.Vocabulary)
	resumeSkills := ats.Match(resumeText, cfg.Vocabulary)

	report := ats.BuildReport(resumeSkills, jobSkills)
	score := ats.KeywordScore(resumeText, jobSkills)

	analysisText := critique.Analyze(ctx, cfg.Critique, critique.Input{
		ResumeText:     resumeText,
		JobDescription: currentSession.JobDescription,
		Score:          score,
		Matched:        report.MatchedSkills,
		Missing:        report.MissingSkills,
	})

	return MatchReport{
		ResumeFilename: filename,
		Score:          score,
		MatchedSkills:  report.MatchedSkills,
		MissingSkills:  report.MissingSkills,
		SkillScores:    report.SkillScores,
		AnalysisText:   analysisText,
	}
}

// analyzeSession runs the full pipeline for all resumes in a session:
// download, text extraction, matching and scoring, critique, optional
// DOCX rewrite, and report persistence. Network and DB calls are retried;
// per-resume failures become error entries and the session still completes.
func analyzeSession(currentSession Session, cfg *WorkerConfig) error {
	ctx := context.Background()

	resumes, err := cfg.DB.GetResumesBySession(ctx, currentSession.ID)
	if err != nil {
		return fmt.Errorf("error getting resumes for session: %v, err: %v", currentSession.ID, err)
	}

	results := &MatchReports{
		SessionID: currentSession.ID,
	}

	r2Client := newR2Client(cfg)

	for _, resume := range resumes {
		fileBytes, err := retry(3, func() ([]byte, error) {
			return DownloadFromR2(ctx, r2Client, cfg.R2.Bucket, resume.ObjectKey)
		})
		if err != nil {
			log.Printf("failed to download %s after retries: %v", resume.ObjectKey, err)
			results.Reports = append(results.Reports, errorReport(resume.OriginalFilename, fmt.Sprintf("file download error: %v", err)))
			continue
		}

		resumeText, err := extract.Text(resume.Mime, fileBytes)
		if err != nil {
			log.Printf("text extraction failed for %s: %v", resume.ObjectKey, err)
			results.Reports = append(results.Reports, errorReport(resume.OriginalFilename, fmt.Sprintf("text extraction error: %v", err)))
			continue
		}

		report := analyzeResume(ctx, cfg, currentSession, resume.OriginalFilename, resumeText)

		// DOCX resumes also get a rewritten summary uploaded back to R2.
		if resume.Mime == extract.MimeDocx {
			report.DownloadKey = reviseAndUpload(ctx, cfg, r2Client, resume.ObjectKey, fileBytes)
		}

		results.Reports = append(results.Reports, report)
	}
	log.Println("session id: " + currentSession.ID.String() + " analyzed")

	reportsJSON, err := json.Marshal(results.Reports)
	if err != nil {
		return fmt.Errorf("failed to marshal match reports: %w", err)
	}

	_, err = retry(3, func() (any, error) {
		return nil, cfg.DB.UpsertMatchReports(ctx, database.UpsertMatchReportsParams{
			Reports:   reportsJSON,
			SessionID: results.SessionID,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save match reports after retries: %w", err)
	}

	return nil
}

// reviseAndUpload rewrites the resume's summary section and stores the
// revised document. Returns the object key, or "" when the rewrite or
// upload fails; either way the analysis result stands.
func reviseAndUpload(ctx context.Context, cfg *WorkerConfig, r2Client *s3.Client, objectKey string, fileBytes []byte) string {
	revised, err := revise.Summary(fileBytes, improvedSummary)
	if err != nil {
		log.Printf("summary rewrite skipped for %s: %v", objectKey, err)
		return ""
	}

	key := fmt.Sprintf("generated/%s.docx", uuid.New())
	if err := UploadToR2(ctx, r2Client, cfg.R2.Bucket, key, revised); err != nil {
		log.Printf("failed to upload revised resume for %s: %v", objectKey, err)
		return ""
	}
	return key
}

func worker(id int, cfg *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()

	conn, err := amqp.Dial(cfg.RabbitMQUrl)
	if err != nil {
		log.Fatal("error dialling rabbitmq: " + err.Error())
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("error connecting to rabbitmq channel: " + err.Error())
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		"sessions", // queue name
		true,       // durable (survives broker restarts)
		false,      // auto-delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(
		"sessions", // queue name
		"",         // consumer tag
		true,       // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatal("error consuming rabbitmq message: " + err.Error())
	}

	for msg := range msgs {
		session := Session{}
		err = json.Unmarshal(msg.Body, &session)
		if err != nil {
			log.Printf("error unmarshalling message body. err: %v", err)
			markSessionFailed(cfg, session)
			continue
		}
		log.Printf("Worker %d processing session. session_id: %s", id+1, session.ID)

		setSessionStatus(cfg, session, "processing", "analysis started")

		err = analyzeSession(session, cfg)
		if err != nil {
			log.Printf("error analyzing session_id: %v. err: %v", session.ID, err)
			markSessionFailed(cfg, session)
			continue
		}

		setSessionStatus(cfg, session, "completed", "analysis completed")
	}
}

// setSessionStatus persists the session status and mirrors it to the
// session_updates exchange.
func setSessionStatus(cfg *WorkerConfig, session Session, status, message string) {
	err := cfg.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
		Status: status,
		ID:     session.ID,
	})
	if err != nil {
		log.Printf("failed to update session status to %s: %v", status, err)
	}

	update := map[string]any{
		"session_id": session.ID,
		"status":     status,
		"message":    message,
		"timestamp":  time.Now(),
	}
	if err := publishSessionUpdate(cfg.RabbitConn, session.ID.String(), update); err != nil {
		log.Println("failed to publish update:", err)
	}
}

func markSessionFailed(cfg *WorkerConfig, session Session) {
	setSessionStatus(cfg, session, "failed", "analysis failed")
}

func (cfg *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := range numWorkers {
		log.Println("worker id ", i+1, "started")
		go worker(i, cfg, &wg)
	}
	wg.Wait() // block until all workers finish
}
