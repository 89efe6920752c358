// file: internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	aliyun "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

/* =======================================================================
   OSS client (env-driven singleton)
   Required env: OSS_ENDPOINT, OSS_ACCESS_KEY_ID, OSS_ACCESS_KEY_SECRET,
   OSS_BUCKET. Optional: OSS_PUBLIC_BASE_URL (CDN front).
======================================================================= */

type Service struct {
	bucket        *aliyun.Bucket
	bucketName    string
	endpoint      string
	publicBaseURL string
}

var (
	svc     *Service
	svcErr  error
	svcOnce sync.Once
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func FromEnv() (*Service, error) {
	svcOnce.Do(func() {
		endpoint := getEnv("OSS_ENDPOINT")
		keyID := getEnv("OSS_ACCESS_KEY_ID")
		keySecret := getEnv("OSS_ACCESS_KEY_SECRET")
		bucketName := getEnv("OSS_BUCKET")
		if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
			svcErr = fmt.Errorf("oss: incomplete config (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
			return
		}

		client, err := aliyun.New(endpoint, keyID, keySecret)
		if err != nil {
			svcErr = fmt.Errorf("oss: init client: %w", err)
			return
		}
		bucket, err := client.Bucket(bucketName)
		if err != nil {
			svcErr = fmt.Errorf("oss: open bucket: %w", err)
			return
		}
		svc = &Service{
			bucket:        bucket,
			bucketName:    bucketName,
			endpoint:      endpoint,
			publicBaseURL: getEnv("OSS_PUBLIC_BASE_URL"),
		}
	})
	return svc, svcErr
}

// UploadBytes stores data under folder with a unique object key and returns
// the public URL.
func (s *Service) UploadBytes(folder, ext, contentType string, data []byte) (string, error) {
	key := buildObjectKey(folder, ext)
	opts := []aliyun.Option{
		aliyun.ContentType(contentType),
		aliyun.ObjectACL(aliyun.ACLPublicRead),
	}
	if err := s.bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", fmt.Errorf("oss: put %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}

func (s *Service) DeleteObject(key string) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	return s.bucket.DeleteObject(key)
}

// DeleteByPublicURL best-effort removes the object behind a public URL.
// Unparseable URLs are ignored so a dangling DB field never blocks a delete.
func (s *Service) DeleteByPublicURL(raw string) error {
	key := s.KeyFromPublicURL(raw)
	if key == "" {
		return nil
	}
	return s.DeleteObject(key)
}

func (s *Service) PublicURL(key string) string {
	if s.publicBaseURL != "" {
		return strings.TrimRight(s.publicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.%s/%s", s.bucketName, strings.TrimPrefix(s.endpoint, "https://"), key)
}

func (s *Service) KeyFromPublicURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Path == "" {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}

func buildObjectKey(folder, ext string) string {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		folder = "misc"
	}
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.NewString())
	if ext != "" {
		name += "." + ext
	}
	return folder + "/" + name
}
