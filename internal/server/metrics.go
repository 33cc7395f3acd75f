package server

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Metrics holds the in-process request and transfer counters exposed on
// /metrics in Prometheus text format.
type Metrics struct {
	mu sync.Mutex

	requestsTotal    int64
	requestErrors4xx int64
	requestErrors5xx int64

	uploadsTotal      int64
	uploadErrorsTotal int64

	downloadsTotal      int64
	downloadErrorsTotal int64
	downloadBytesTotal  int64

	startedAt time.Time
}

// NewMetrics returns a zeroed registry.
func NewMetrics() *Metrics {
	return &Metrics{startedAt: time.Now()}
}

// RecordRequest counts a finished HTTP request by status class.
func (m *Metrics) RecordRequest(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestsTotal++
	switch {
	case status >= 500:
		m.requestErrors5xx++
	case status >= 400:
		m.requestErrors4xx++
	}
}

// RecordUpload counts a successful upload.
func (m *Metrics) RecordUpload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadsTotal++
}

// RecordUploadError counts a failed upload.
func (m *Metrics) RecordUploadError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadErrorsTotal++
}

// RecordDownload counts a successful download and the bytes served.
func (m *Metrics) RecordDownload(bytes int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.downloadsTotal++
	m.downloadBytesTotal += bytes
}

// RecordDownloadError counts a failed download.
func (m *Metrics) RecordDownloadError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.downloadErrorsTotal++
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	RequestsTotal    int64
	RequestErrors4xx int64
	RequestErrors5xx int64

	UploadsTotal      int64
	UploadErrorsTotal int64

	DownloadsTotal      int64
	DownloadErrorsTotal int64
	DownloadBytesTotal  int64

	UptimeSeconds float64
}

// Snapshot copies the counters under the lock.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MetricsSnapshot{
		RequestsTotal:       m.requestsTotal,
		RequestErrors4xx:    m.requestErrors4xx,
		RequestErrors5xx:    m.requestErrors5xx,
		UploadsTotal:        m.uploadsTotal,
		UploadErrorsTotal:   m.uploadErrorsTotal,
		DownloadsTotal:      m.downloadsTotal,
		DownloadErrorsTotal: m.downloadErrorsTotal,
		DownloadBytesTotal:  m.downloadBytesTotal,
		UptimeSeconds:       time.Since(m.startedAt).Seconds(),
	}
}

// Handler serves the counters in Prometheus text exposition format.
func (m *Metrics) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := m.Snapshot()

		var out strings.Builder
		writeCounter(&out, "fileshare_requests_total", "Total number of HTTP requests", snap.RequestsTotal)
		writeCounter(&out, "fileshare_request_errors_4xx_total", "HTTP requests answered with a 4xx status", snap.RequestErrors4xx)
		writeCounter(&out, "fileshare_request_errors_5xx_total", "HTTP requests answered with a 5xx status", snap.RequestErrors5xx)
		writeCounter(&out, "fileshare_uploads_total", "Successful file uploads", snap.UploadsTotal)
		writeCounter(&out, "fileshare_upload_errors_total", "Failed file uploads", snap.UploadErrorsTotal)
		writeCounter(&out, "fileshare_downloads_total", "Successful file downloads", snap.DownloadsTotal)
		writeCounter(&out, "fileshare_download_errors_total", "Failed file downloads", snap.DownloadErrorsTotal)
		writeCounter(&out, "fileshare_download_bytes_total", "Bytes served by file downloads", snap.DownloadBytesTotal)

		out.WriteString("# HELP fileshare_uptime_seconds Seconds since process start\n")
		out.WriteString("# TYPE fileshare_uptime_seconds gauge\n")
		fmt.Fprintf(&out, "fileshare_uptime_seconds %f\n", snap.UptimeSeconds)

		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(out.String()))
	}
}

func writeCounter(out *strings.Builder, name, help string, value int64) {
	fmt.Fprintf(out, "# HELP %s %s\n", name, help)
	fmt.Fprintf(out, "# TYPE %s counter\n", name)
	fmt.Fprintf(out, "%s %d\n", name, value)
}
