package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDownloadHandler_Success(t *testing.T) {
	store := newMemStore()
	content := []byte("hello, attachment")
	store.objects["notes.txt"] = content
	handler := newTestHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/file/notes.txt", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !bytes.Equal(rr.Body.Bytes(), content) {
		t.Errorf("body differs: got %q, want %q", rr.Body.Bytes(), content)
	}
	if cd := rr.Header().Get("Content-Disposition"); cd != `attachment; filename="notes.txt"` {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/octet-stream" {
		t.Errorf("unexpected Content-Type %q", ct)
	}
	if cl := rr.Header().Get("Content-Length"); cl != "17" {
		t.Errorf("unexpected Content-Length %q", cl)
	}
}

func TestDownloadHandler_MissingKey(t *testing.T) {
	// A missing key is not special-cased: it collapses into the generic
	// 500 error path like any other backend failure.
	handler := newTestHandler(newMemStore())

	req := httptest.NewRequest(http.MethodGet, "/file/does-not-exist", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rr.Code)
	}
	if msg := decodeErrorBody(t, rr); msg == "" {
		t.Error("expected a non-empty error message")
	}
}

func TestDownloadHandler_BadName(t *testing.T) {
	handler := newTestHandler(newMemStore())

	req := httptest.NewRequest(http.MethodGet, "/file/..", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	// The router cleans "/file/.." before the handler sees it, so either a
	// routing 404 or a validation 400 is acceptable; it must not be a 200.
	if rr.Code == http.StatusOK {
		t.Errorf("expected failure for traversal name, got 200")
	}
}

func TestUploadDownload_RoundTrip(t *testing.T) {
	handler := newTestHandler(newMemStore())

	content := []byte{0x00, 0x01, 0xfe, 0xff, 'p', 'd', 'f'}
	upReq := fileUploadRequest(t, "file", "report.pdf", content)
	upRR := httptest.NewRecorder()
	handler.ServeHTTP(upRR, upReq)
	if upRR.Code != http.StatusOK {
		t.Fatalf("upload failed: %d %s", upRR.Code, upRR.Body.String())
	}

	downReq := httptest.NewRequest(http.MethodGet, "/file/report.pdf", nil)
	downRR := httptest.NewRecorder()
	handler.ServeHTTP(downRR, downReq)
	if downRR.Code != http.StatusOK {
		t.Fatalf("download failed: %d %s", downRR.Code, downRR.Body.String())
	}

	if !bytes.Equal(downRR.Body.Bytes(), content) {
		t.Errorf("round trip not identical: got %v, want %v", downRR.Body.Bytes(), content)
	}
}
