package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ukaji3/dutysheet-go/pkg/dutysheet"
)

// preview returns the non-empty cells of an uploaded sheet
func (r *Router) preview(w http.ResponseWriter, req *http.Request) {
	path, err := r.uploadPath(mux.Vars(req)["filename"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sheet := req.URL.Query().Get("sheet")
	if sheet == "" {
		respondError(w, http.StatusBadRequest, "缺少必要参数: sheet")
		return
	}

	p, err := dutysheet.Preview(path, sheet, req.URL.Query().Get("range"))
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, p)
}
