package server

import (
	"encoding/json"
	"net/http"
)

// apiError is the uniform failure result produced by handler logic and
// translated to a transport response at the handler boundary. The mapping
// from failure kind to status code lives in the constructors below, so it
// stays explicit and testable.
type apiError struct {
	status int
	msg    string
}

func (e *apiError) Error() string { return e.msg }

func errMissingPart() *apiError {
	return &apiError{status: http.StatusBadRequest, msg: "No file part in the request"}
}

func errEmptyFilename() *apiError {
	return &apiError{status: http.StatusBadRequest, msg: "No selected file"}
}

func errBadObjectKey() *apiError {
	return &apiError{status: http.StatusBadRequest, msg: "Invalid file name"}
}

// Backend failures surface the raw error text to the client. Known
// information disclosure trade-off; see DESIGN.md.

func errUpload(err error) *apiError {
	return &apiError{status: http.StatusInternalServerError, msg: err.Error()}
}

func errDownload(err error) *apiError {
	return &apiError{status: http.StatusInternalServerError, msg: err.Error()}
}

func errDatabase(err error) *apiError {
	return &apiError{status: http.StatusInternalServerError, msg: err.Error()}
}

// writeAPIError renders the {"error": "..."} envelope every failure path uses.
func writeAPIError(w http.ResponseWriter, e *apiError) {
	writeJSON(w, e.status, map[string]string{"error": e.msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
