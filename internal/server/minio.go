package server

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"fileshare/internal/config"
)

func normaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("empty endpoint")
	}

	// Accept either "minio:9000" or "http://minio:9000" / "https://minio:9000".
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("invalid endpoint")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("endpoint must not contain a path")
		}
		secure = (u.Scheme == "https")
		return u.Host, secure, nil
	}

	// No scheme provided, treat as host:port (insecure by default for local MinIO).
	return raw, false, nil
}

// NewMinioClient builds the object store client from configuration. Static
// credentials win when configured; otherwise the standard AWS environment
// variables are used. No network call happens here: the service must come up
// even when the bucket is unreachable, so connectivity problems surface on
// the first request instead of at boot.
func NewMinioClient(cfg *config.Config) (*minio.Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is not set")
	}

	endpoint := fmt.Sprintf("s3.%s.amazonaws.com", cfg.Region)
	secure := true
	if cfg.S3Endpoint != "" {
		var err error
		endpoint, secure, err = normaliseEndpoint(cfg.S3Endpoint)
		if err != nil {
			return nil, err
		}
	}

	var creds *credentials.Credentials
	if cfg.S3AccessKey != "" {
		creds = credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, "")
	} else {
		creds = credentials.NewEnvAWS()
	}

	return minio.New(endpoint, &minio.Options{
		Creds:  creds,
		Secure: secure,
		Region: cfg.Region,
	})
}
