package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet"
	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/profile"
)

// AnalyzeRequest asks for one location's schedule from an uploaded sheet
type AnalyzeRequest struct {
	Filename  string                `json:"filename"`
	SheetName string                `json:"sheet_name"`
	FileNum   json.Number           `json:"file_num"`
	Config    *profile.OffsetsPatch `json:"dezhongtang_config,omitempty"`
	// Date overrides the target day (YYYY-MM-DD); default is tomorrow.
	Date string `json:"date,omitempty"`
}

// analyze renders the duty text of a location
func (r *Router) analyze(w http.ResponseWriter, req *http.Request) {
	var body AnalyzeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if body.Filename == "" || body.SheetName == "" || body.FileNum == "" {
		respondError(w, http.StatusBadRequest, "缺少必要参数: filename, sheet_name, file_num")
		return
	}

	id, err := profile.ParseID(body.FileNum.String())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	path, err := r.uploadPath(body.Filename)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	target := dutysheet.Tomorrow(r.now().In(r.cfg.Location))
	if body.Date != "" {
		if target, err = dutysheet.ParseTarget(body.Date, r.cfg.Location); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	opts := dutysheet.DefaultOptions()
	opts.Logger = r.log
	if id == profile.Dezhongtang {
		offsets := body.Config.Apply(r.offsets.Load())
		opts.Offsets = &offsets
	}

	sched, err := dutysheet.Render(path, body.SheetName, id, target, opts)
	if err != nil {
		r.log.Error("analyze failed", "filename", body.Filename, "sheet", body.SheetName, "profile", int(id), "error", err)
		respondError(w, statusFor(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"result":   sched.Text,
		"schedule": sched,
	})
}
