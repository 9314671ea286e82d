package controllers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sergiostefanizzi/profile-microservice-sub000/config"
	"github.com/sergiostefanizzi/profile-microservice-sub000/utils"
)

// UploadController hands out presigned PUT URLs for the media bucket. The
// resulting public URL is what clients send back as a post contentUrl or a
// profile pictureUrl.
type UploadController struct {
	S3Client *s3.Client
	S3Config *config.S3Config
}

type UploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type UploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

const maxUploadSize = 50 << 20 // 50 MB

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"video/mp4":  ".mp4",
}

func NewUploadController(s3Config *config.S3Config) *UploadController {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(s3Config.Endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			s3Config.AccessKeyID,
			s3Config.SecretAccessKey,
			"",
		),
		Region: s3Config.Region,
	})

	return &UploadController{
		S3Client: client,
		S3Config: s3Config,
	}
}

// CreateUpload godoc
// @Summary Get a presigned media upload URL
// @Tags uploads
// @Accept json
// @Produce json
// @Param upload body UploadRequest true "Upload request"
// @Success 201 {object} UploadResponse
// @Router /uploads [post]
func (uc *UploadController) CreateUpload(c *gin.Context) {
	user := utils.GetUser(c)
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := allowedContentTypes[req.ContentType]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported content type"})
		return
	}
	if req.FileSize <= 0 || req.FileSize > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file size exceeds limit"})
		return
	}

	key := uc.generateFileKey(user.AccountID, req.FileName, req.ContentType)

	uploadURL, err := uc.createPresignedURL(c.Request.Context(), key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create upload URL"})
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{
		UploadURL: uploadURL,
		FileURL:   fmt.Sprintf("%s/%s", uc.S3Config.PublicURL, key),
		Key:       key,
		ExpiresIn: 3600,
	})
}

func (uc *UploadController) generateFileKey(accountID, fileName, contentType string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = allowedContentTypes[contentType]
	}
	return fmt.Sprintf("media/%s/%s%s", accountID, uuid.New().String(), ext)
}

func (uc *UploadController) createPresignedURL(ctx context.Context, key, contentType string) (string, error) {
	presignClient := s3.NewPresignClient(uc.S3Client)
	request, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(uc.S3Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", err
	}
	return request.URL, nil
}
