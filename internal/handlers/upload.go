package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/ukaji3/dutysheet-go/pkg/dutysheet"
)

// uploadExtensions are the spreadsheet types accepted from operators.
var uploadExtensions = map[string]bool{".xlsx": true, ".xls": true}

// upload stores a roster spreadsheet and lists its sheets
func (r *Router) upload(w http.ResponseWriter, req *http.Request) {
	req.Body = http.MaxBytesReader(w, req.Body, r.cfg.MaxUploadBytes())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("文件超过%dMB限制", r.cfg.MaxUploadMB))
			return
		}
		respondError(w, http.StatusBadRequest, "没有文件部分")
		return
	}

	file, hdr, err := req.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "没有文件部分")
		return
	}
	defer file.Close()

	name := filepath.Base(strings.ReplaceAll(hdr.Filename, `\`, "/"))
	if name == "" || name == "." || name == "/" {
		respondError(w, http.StatusBadRequest, "没有选择文件")
		return
	}
	if !uploadExtensions[strings.ToLower(filepath.Ext(name))] {
		respondError(w, http.StatusBadRequest, "只支持Excel文件(.xlsx, .xls)")
		return
	}

	stored := uuid.NewString() + "_" + name
	path, err := r.saveUpload(file, stored)
	if err != nil {
		r.log.Error("failed to store upload", "filename", name, "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	info, err := dutysheet.Inspect(path)
	if err != nil {
		r.log.Error("failed to read uploaded workbook", "filename", stored, "error", err)
		_ = os.Remove(path)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	sheets := make([]string, 0, len(info.Sheets))
	for _, s := range info.Sheets {
		sheets = append(sheets, s.Name)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"filename": stored,
		"file_num": req.FormValue("fileNum"),
		"sheets":   sheets,
		"workbook": info,
	})
}

// saveUpload copies the uploaded file into the upload dir
func (r *Router) saveUpload(src io.Reader, name string) (string, error) {
	if err := os.MkdirAll(r.cfg.UploadDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(r.cfg.UploadDir, name)
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	written, err := io.Copy(out, src)
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}
	r.log.Info("uploaded file", "filename", name, "bytes", written)
	return path, nil
}

// listSheets returns the sheets of a stored upload
func (r *Router) listSheets(w http.ResponseWriter, req *http.Request) {
	name := mux.Vars(req)["filename"]
	path, err := r.uploadPath(name)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	info, err := dutysheet.Inspect(path)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	sheets := make([]string, 0, len(info.Sheets))
	for _, s := range info.Sheets {
		sheets = append(sheets, s.Name)
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"filename": name,
		"sheets":   sheets,
		"workbook": info,
	})
}

// serveUpload serves a stored upload by name
func (r *Router) serveUpload(w http.ResponseWriter, req *http.Request) {
	path, err := r.uploadPath(mux.Vars(req)["filename"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := os.Stat(path); err != nil {
		respondError(w, http.StatusNotFound, "文件不存在")
		return
	}
	http.ServeFile(w, req, path)
}
