package server

import (
	"html/template"
	"net/http"
)

const uploadPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Upload File | FileShare</title>
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css">
  <style>
    body { font-family: Arial, sans-serif; background: #f4f7fa; display: flex; justify-content: center; align-items: center; height: 100vh; margin: 0; }
    .container { text-align: center; background: #fff; padding: 40px; border-radius: 12px; box-shadow: 0 4px 15px rgba(0,0,0,0.1); width: 400px; }
    h2 { color: #333; margin-bottom: 20px; }
    input[type=file] { margin-bottom: 15px; }
    .btn { background: #007bff; color: #fff; border: none; padding: 10px 20px; border-radius: 6px; cursor: pointer; font-size: 14px; }
    .btn:hover { background: #0056b3; }
  </style>
</head>
<body>
  <div class="container">
    <h2><i class="fas fa-cloud-upload-alt"></i> Upload File</h2>
    <form action="/upload_success" method="post" enctype="multipart/form-data">
      <input type="file" name="file" required><br>
      <button class="btn" type="submit"><i class="fas fa-upload"></i> Upload</button>
    </form>
  </div>
</body>
</html>
`

const successPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Upload Success | FileShare</title>
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css">
  <style>
    body { font-family: Arial, sans-serif; background: #f4f7fa; display: flex; justify-content: center; align-items: center; height: 100vh; margin: 0; }
    .container { text-align: center; background: #fff; padding: 40px; border-radius: 12px; box-shadow: 0 4px 15px rgba(0,0,0,0.1); width: 500px; }
    .success-icon { font-size: 60px; color: #28a745; margin-bottom: 20px; }
    h2 { color: #333; margin-bottom: 10px; }
    p { color: #666; margin-bottom: 20px; }
    .url-box { display: flex; justify-content: space-between; align-items: center; border: 1px solid #ddd; padding: 10px; border-radius: 8px; margin-bottom: 20px; }
    .url-text { flex: 1; word-break: break-all; text-align: left; }
    .copy-btn { background: #007bff; color: #fff; border: none; padding: 8px 15px; border-radius: 6px; cursor: pointer; }
    .copy-btn:hover { background: #0056b3; }
    .action-buttons { display: flex; justify-content: center; gap: 10px; }
    .btn { padding: 10px 20px; border-radius: 6px; text-decoration: none; font-size: 14px; }
    .btn-primary { background: #007bff; color: #fff; }
    .btn-secondary { background: #6c757d; color: #fff; }
    .btn-primary:hover { background: #0056b3; }
    .btn-secondary:hover { background: #565e64; }
  </style>
</head>
<body>
  <div class="container">
    <div class="success-icon"><i class="fas fa-check-circle"></i></div>
    <h2>File Uploaded Successfully!</h2>
    <p>Your file has been uploaded. Copy the URL below to share it:</p>
    <div class="url-box">
      <div class="url-text" id="url-text">{{.URL}}</div>
      <button class="copy-btn" id="copy-btn"><i class="fas fa-copy"></i> Copy</button>
    </div>
    <div class="action-buttons">
      <a href="/upload" class="btn btn-secondary"><i class="fas fa-arrow-left"></i> Back to Upload</a>
      <a href="{{.URL}}" target="_blank" class="btn btn-primary"><i class="fas fa-share-alt"></i> Open File</a>
    </div>
  </div>
  <script>
    const copyBtn = document.getElementById("copy-btn");
    const urlText = document.getElementById("url-text").innerText;
    copyBtn.addEventListener("click", () => {
      navigator.clipboard.writeText(urlText).then(() => {
        copyBtn.innerHTML = "<i class='fas fa-check'></i> Copied!";
        setTimeout(() => {
          copyBtn.innerHTML = "<i class='fas fa-copy'></i> Copy";
        }, 2000);
      });
    });
  </script>
</body>
</html>
`

var successTmpl = template.Must(template.New("success").Parse(successPageHTML))

// handleUploadPage serves the static upload form.
func (s *Server) handleUploadPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(uploadPageHTML))
}

// renderSuccessPage writes the success page with the shareable URL filled in.
func renderSuccessPage(w http.ResponseWriter, url string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = successTmpl.Execute(w, struct{ URL string }{URL: url})
}
