package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/folio/internal/logging"
	sc "github.com/dmitrijs2005/folio/internal/server/config"
	"github.com/dmitrijs2005/folio/internal/server/models"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}

	now = time.Now
)

// objectAPI is the part of *s3.Client the relay uses.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Store struct {
	client        objectAPI
	bucket        string
	publicBaseURL string
	cb            *gobreaker.CircuitBreaker
	logger        logging.Logger
}

// NewS3Store builds an S3 client from the server config. Path-style
// addressing keeps MinIO endpoints working.
func NewS3Store(ctx context.Context, cfg *sc.Config, logger logging.Logger) (*S3Store, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3Store(client, cfg.S3Bucket, cfg.S3PublicBaseURL, logger), nil
}

func newS3Store(client objectAPI, bucket, publicBaseURL string, logger logging.Logger) *S3Store {
	if publicBaseURL != "" && !strings.HasSuffix(publicBaseURL, "/") {
		publicBaseURL += "/"
	}
	logger = logger.With("module", "storage")

	st := gobreaker.Settings{
		Name:        "object-store",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn(context.Background(), "circuit breaker state changed",
				"name", name, "from", from.String(), "to", to.String())
		},
	}

	return &S3Store{
		client:        client,
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
		cb:            gobreaker.NewCircuitBreaker(st),
		logger:        logger,
	}
}

func (s *S3Store) Upload(ctx context.Context, f File, kind models.UploadKind) (models.RemoteAsset, error) {
	contentType, err := sniffContentType(f)
	if err != nil {
		return models.RemoteAsset{}, err
	}

	key := folderFor(kind) + "/" + objectName(f.Name, contentType, kind)

	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f.Body,
		ContentType: aws.String(contentType),
	}
	if f.Size > 0 {
		in.ContentLength = aws.Int64(f.Size)
	}
	if kind == models.UploadResume {
		in.ContentDisposition = aws.String(mime.FormatMediaType("attachment",
			map[string]string{"filename": filepath.Base(f.Name)}))
	}

	_, err = s.cb.Execute(func() (interface{}, error) {
		return s.client.PutObject(ctx, in)
	})
	if err != nil {
		return models.RemoteAsset{}, fmt.Errorf("put object %s: %w", key, err)
	}

	s.logger.Debug(ctx, "object stored", "key", key, "content_type", contentType)
	return models.RemoteAsset{URL: s.publicBaseURL + key, RemoteID: key}, nil
}

func (s *S3Store) Delete(ctx context.Context, remoteID string) error {
	if remoteID == "" {
		return nil
	}

	_, err := s.cb.Execute(func() (interface{}, error) {
		return s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(remoteID),
		})
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", remoteID, err)
	}
	return nil
}

func (s *S3Store) RemoteIDFromURL(url string) (string, bool) {
	if s.publicBaseURL == "" {
		return "", false
	}
	key, ok := strings.CutPrefix(url, s.publicBaseURL)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// sniffContentType trusts a specific client-declared type and otherwise
// detects it from the first 512 bytes, rewinding the body afterwards.
func sniffContentType(f File) (string, error) {
	if f.Body == nil {
		return "", errors.New("empty upload body")
	}
	if f.ContentType != "" && f.ContentType != "application/octet-stream" {
		return f.ContentType, nil
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(f.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if _, err := f.Body.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	return http.DetectContentType(head[:n]), nil
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// objectName returns <uuid><ext> for images and <basename>_<unixmillis><ext>
// for resumes, which keep their original extension.
func objectName(filename, contentType string, kind models.UploadKind) string {
	ext := strings.ToLower(filepath.Ext(filename))

	if kind == models.UploadResume {
		base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		base = strings.Trim(unsafeNameChars.ReplaceAllString(base, "_"), "_")
		if base == "" {
			base = "resume"
		}
		return fmt.Sprintf("%s_%d%s", base, now().UnixMilli(), ext)
	}

	if ext == "" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	return uuid.NewString() + ext
}
