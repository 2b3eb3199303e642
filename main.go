package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/davidlamina/atsworker/internal/ats"
	"github.com/davidlamina/atsworker/internal/critique"
	"github.com/davidlamina/atsworker/internal/database"
	"github.com/joho/godotenv"
	"github.com/streadway/amqp"
)

func main() {
	_ = godotenv.Load()
	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		log.Fatal("empty DB_URL in environment")
	}

	rabbitmqUrl := os.Getenv("RABBITMQ_URL")
	if rabbitmqUrl == "" {
		log.Fatal("empty RABBITMQ_URL in env")
	}

	db, err := sql.Open("postgres", dbUrl)
	if err != nil {
		log.Fatal("error opening db. err: ", err)
	}

	dbqueries := database.New(db)

	r2AccountId := os.Getenv("R2_ACCOUNT_ID")
	if r2AccountId == "" {
		log.Fatal("empty R2_ACCOUNT_ID in environment")
	}
	r2Bucket := os.Getenv("R2_BUCKET")
	if r2Bucket == "" {
		log.Fatal("empty R2_BUCKET in environment")
	}
	r2SecretKey := os.Getenv("R2_SECRET_KEY")
	if r2SecretKey == "" {
		log.Fatal("empty R2_SECRET_KEY in environment")
	}
	r2AccessKey := os.Getenv("R2_ACCESS_KEY")
	if r2AccessKey == "" {
		log.Fatal("empty R2_ACCESS_KEY in environment")
	}
	r2Config := R2Config{
		AccountID: r2AccountId,
		AccessKey: r2AccessKey,
		SecretKey: r2SecretKey,
		Bucket:    r2Bucket,
	}
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2Config.AccessKey, r2Config.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal("error creating aws config", err)
	}

	provider, err := critiqueProvider()
	if err != nil {
		log.Fatalf("failed to create critique provider: %v", err)
	}

	conn, err := amqp.Dial(rabbitmqUrl)
	if err != nil {
		log.Fatalf("error connecting to RabbitMQ. err:  %v", err)
	}

	workerConfig := WorkerConfig{
		DB:          dbqueries,
		R2:          &r2Config,
		AwsConfig:   &awsConfig,
		RabbitConn:  conn,
		RabbitMQUrl: rabbitmqUrl,
		Critique:    provider,
		Vocabulary:  ats.Vocabulary(),
	}

	fmt.Println("Starting 3 workers consumer pool ")
	workerConfig.StartConsumerWorkerPool(3)
}

// critiqueProvider picks the LLM backend from the environment. Missing
// credentials disable the critique feature instead of failing startup.
func critiqueProvider() (critique.Provider, error) {
	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		return critique.NewOpenRouter(key, &http.Client{Timeout: 60 * time.Second}), nil
	}

	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return critique.NewGemini(context.Background(), key)
	}

	log.Println("WARNING: no OPENROUTER_API_KEY or GOOGLE_API_KEY set. AI analysis will be disabled.")
	return critique.Disabled{}, nil
}
