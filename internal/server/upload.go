package server

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

const uploadTimeout = 5 * time.Minute

// validObjectKey reports whether a client-supplied filename may be used as a
// storage key. Keys are a flat namespace: anything that smells like path
// traversal is rejected, everything else is used verbatim (silent overwrite
// included).
func validObjectKey(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	if name == "." || name == ".." || strings.Contains(name, "..") {
		return false
	}
	return true
}

// handleUpload stores the multipart "file" field under its original filename
// and responds with an HTML page embedding the shareable URL.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	mr, err := r.MultipartReader()
	if err != nil {
		writeAPIError(w, errMissingPart())
		return
	}

	// Walk the parts looking for a file field named "file". A plain form
	// value with the same name does not count: only parts carrying a
	// filename directive are files.
	var (
		filePart    io.Reader
		filename    string
		contentType string
		closePart   func()
	)
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			writeAPIError(w, errMissingPart())
			return
		}

		if part.FormName() != "file" {
			_ = part.Close()
			continue
		}

		_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
		if err != nil {
			_ = part.Close()
			writeAPIError(w, errMissingPart())
			return
		}
		name, hasFilename := params["filename"]
		if !hasFilename {
			_ = part.Close()
			continue
		}

		filePart = part
		filename = name
		contentType = part.Header.Get("Content-Type")
		closePart = func() { _ = part.Close() }
		break
	}

	if filePart == nil {
		writeAPIError(w, errMissingPart())
		return
	}
	defer closePart()

	if filename == "" {
		writeAPIError(w, errEmptyFilename())
		return
	}
	if !validObjectKey(filename) {
		writeAPIError(w, errBadObjectKey())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), uploadTimeout)
	defer cancel()

	// Stream the part straight to the bucket; size -1 means unknown length.
	if err := s.store.Put(ctx, filename, filePart, -1, contentType); err != nil {
		s.log.Error("upload failed", map[string]any{
			"request_id": RequestIDFromContext(r.Context()),
			"key":        filename,
		}, err)
		s.metrics.RecordUploadError()
		writeAPIError(w, errUpload(err))
		return
	}

	s.metrics.RecordUpload()
	renderSuccessPage(w, s.store.URL(filename))
}
