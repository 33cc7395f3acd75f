package server

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestMinioStore_URL(t *testing.T) {
	tests := []struct {
		bucket string
		region string
		key    string
		want   string
	}{
		{"mybucket", "us-east-1", "report.pdf", "https://mybucket.s3.us-east-1.amazonaws.com/report.pdf"},
		{"shared", "eu-west-1", "a.txt", "https://shared.s3.eu-west-1.amazonaws.com/a.txt"},
	}

	for _, tt := range tests {
		store := NewMinioStore(nil, tt.bucket, tt.region)
		if got := store.URL(tt.key); got != tt.want {
			t.Errorf("URL(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestMemStore_RoundTrip(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	content := []byte("payload")
	if err := store.Put(ctx, "k", bytes.NewReader(content), int64(len(content)), "text/plain"); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("got %q, want %q", got, content)
	}
}

func TestMemStore_MissingKey(t *testing.T) {
	store := newMemStore()

	_, err := store.Get(context.Background(), "absent")
	if err == nil {
		t.Fatal("expected error for missing key")
	}
	if !strings.Contains(err.Error(), "absent") {
		t.Errorf("error %q does not name the key", err)
	}
}
