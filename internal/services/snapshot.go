package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/redis/go-redis/v9"
)

// ErrSnapshotNotFound is returned when no snapshot has been saved under a key
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore persists opaque whole-store snapshots under a key, one
// entry per store. Every Save replaces the previous blob in full.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// InitSnapshots selects a snapshot backend based on configuration:
// Redis when REDIS_URL is set, S3 when AWS credentials are set, and
// local file storage otherwise.
func InitSnapshots() (SnapshotStore, error) {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
		}

		client := redis.NewClient(opt)
		if _, err := client.Ping(context.Background()).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %v", err)
		}

		fmt.Println("✅ Redis snapshot storage initialized successfully")
		return &RedisSnapshotStore{client: client}, nil
	}

	awsRegion := os.Getenv("AWS_REGION")
	awsAccessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	awsSecretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")

	if awsRegion != "" && awsAccessKey != "" && awsSecretKey != "" {
		bucket := os.Getenv("AWS_S3_BUCKET")
		if bucket == "" {
			return nil, fmt.Errorf("S3 bucket name not configured")
		}

		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(awsRegion),
			Credentials: credentials.NewStaticCredentials(
				awsAccessKey,
				awsSecretKey,
				"",
			),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %v", err)
		}

		fmt.Println("✅ AWS S3 snapshot storage initialized successfully")
		return &S3SnapshotStore{
			client:   s3.New(sess),
			uploader: s3manager.NewUploader(sess),
			bucket:   bucket,
		}, nil
	}

	dir := os.Getenv("SNAPSHOT_DIR")
	if dir == "" {
		dir = "./data"
	}

	store, err := NewFileSnapshotStore(dir)
	if err != nil {
		return nil, err
	}

	fmt.Println("⚠️  Redis and S3 not configured. Using local file snapshot storage")
	return store, nil
}

// RedisSnapshotStore keeps snapshots as Redis string values
type RedisSnapshotStore struct {
	client *redis.Client
}

func (s *RedisSnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %v", key, err)
	}
	return data, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	// No expiration: snapshots are the durable copy of store state
	return s.client.Set(ctx, key, data, 0).Err()
}

// S3SnapshotStore keeps snapshots as objects under a snapshots/ prefix
type S3SnapshotStore struct {
	client   *s3.S3
	uploader *s3manager.Uploader
	bucket   string
}

func (s *S3SnapshotStore) objectKey(key string) string {
	return "snapshots/" + key + ".json"
}

func (s *S3SnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot %s: %v", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %v", key, err)
	}
	return data, nil
}

func (s *S3SnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot %s: %v", key, err)
	}
	return nil
}

// SnapshotWriter serializes saves for one snapshot key. Writes are
// fire and forget from the caller's side, but at most one Save is ever
// in flight, so an older blob can never land after a newer one.
// Pending blobs are coalesced: only the most recent one is written.
type SnapshotWriter struct {
	store SnapshotStore
	key   string

	mu      sync.Mutex
	pending []byte
	writing bool
}

func NewSnapshotWriter(store SnapshotStore, key string) *SnapshotWriter {
	return &SnapshotWriter{store: store, key: key}
}

// Write queues a blob for saving and returns immediately
func (w *SnapshotWriter) Write(data []byte) {
	w.mu.Lock()
	w.pending = data
	if w.writing {
		w.mu.Unlock()
		return
	}
	w.writing = true
	w.mu.Unlock()

	go w.drain()
}

func (w *SnapshotWriter) drain() {
	for {
		w.mu.Lock()
		data := w.pending
		w.pending = nil
		if data == nil {
			w.writing = false
			w.mu.Unlock()
			return
		}
		w.mu.Unlock()

		if err := w.store.Save(context.Background(), w.key, data); err != nil {
			log.Printf("Failed to persist snapshot %s: %v", w.key, err)
		}
	}
}

// FileSnapshotStore keeps snapshots as JSON files in a local directory
type FileSnapshotStore struct {
	dir string
}

func NewFileSnapshotStore(dir string) (*FileSnapshotStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %v", err)
	}
	return &FileSnapshotStore{dir: dir}, nil
}

func (s *FileSnapshotStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileSnapshotStore) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %v", key, err)
	}
	return data, nil
}

func (s *FileSnapshotStore) Save(_ context.Context, key string, data []byte) error {
	// Write to a temp file and rename so a crash mid-write never leaves
	// a truncated snapshot behind
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %v", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %v", key, err)
	}
	return nil
}
