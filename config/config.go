package config

import (
	"os"
	"time"
)

type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Region          string
}

func GetS3Config() *S3Config {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "auto"
	}
	return &S3Config{
		Endpoint:        os.Getenv("S3_ENDPOINT"),
		AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("S3_BUCKET_NAME"),
		PublicURL:       os.Getenv("S3_PUBLIC_URL"),
		Region:          region,
	}
}

type DirectoryConfig struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
}

func GetDirectoryConfig() *DirectoryConfig {
	return &DirectoryConfig{
		BaseURL:      os.Getenv("DIRECTORY_URL"),
		TokenURL:     os.Getenv("DIRECTORY_TOKEN_URL"),
		ClientID:     os.Getenv("DIRECTORY_CLIENT_ID"),
		ClientSecret: os.Getenv("DIRECTORY_CLIENT_SECRET"),
	}
}

// GetSweepInterval reads STORY_SWEEP_INTERVAL (Go duration syntax);
// malformed or missing values fall back to the default.
func GetSweepInterval() time.Duration {
	raw := os.Getenv("STORY_SWEEP_INTERVAL")
	if raw == "" {
		return 5 * time.Minute
	}
	interval, err := time.ParseDuration(raw)
	if err != nil || interval <= 0 {
		return 5 * time.Minute
	}
	return interval
}

func GetRedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}
