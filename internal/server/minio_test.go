package server

import (
	"testing"

	"fileshare/internal/config"
)

func TestNormaliseEndpoint(t *testing.T) {
	tests := []struct {
		in         string
		wantHost   string
		wantSecure bool
		wantErr    bool
	}{
		{"minio:9000", "minio:9000", false, false},
		{"http://minio:9000", "minio:9000", false, false},
		{"https://s3.example.com", "s3.example.com", true, false},
		{"  minio:9000  ", "minio:9000", false, false},
		{"", "", false, true},
		{"http://minio:9000/some/path", "", false, true},
	}

	for _, tt := range tests {
		host, secure, err := normaliseEndpoint(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("normaliseEndpoint(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("normaliseEndpoint(%q): %v", tt.in, err)
			continue
		}
		if host != tt.wantHost || secure != tt.wantSecure {
			t.Errorf("normaliseEndpoint(%q) = (%q, %v), want (%q, %v)",
				tt.in, host, secure, tt.wantHost, tt.wantSecure)
		}
	}
}

func TestNewMinioClient_RequiresBucket(t *testing.T) {
	if _, err := NewMinioClient(&config.Config{Region: "us-east-1"}); err == nil {
		t.Fatal("expected error when bucket is not configured")
	}
}

func TestNewMinioClient_LocalEndpoint(t *testing.T) {
	cfg := &config.Config{
		Bucket:      "testbucket",
		Region:      "us-east-1",
		S3Endpoint:  "localhost:9000",
		S3AccessKey: "minio",
		S3SecretKey: "minio123",
	}

	mc, err := NewMinioClient(cfg)
	if err != nil {
		t.Fatalf("NewMinioClient: %v", err)
	}
	if got := mc.EndpointURL().Host; got != "localhost:9000" {
		t.Errorf("endpoint host = %q, want localhost:9000", got)
	}
	if mc.EndpointURL().Scheme != "http" {
		t.Errorf("expected insecure scheme for host:port endpoint, got %q", mc.EndpointURL().Scheme)
	}
}
