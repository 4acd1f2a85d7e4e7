package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/profile"
)

// getConfig returns the stored offsets of the configurable location
func (r *Router) getConfig(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.offsets.Load())
}

// saveConfig merges the posted offsets over the stored ones and persists them
func (r *Router) saveConfig(w http.ResponseWriter, req *http.Request) {
	var patch profile.OffsetsPatch
	if err := json.NewDecoder(req.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	offsets := patch.Apply(r.offsets.Load())
	if err := offsets.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := r.offsets.Save(offsets); err != nil {
		r.log.Error("failed to save offsets", "path", r.offsets.Path(), "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"config": offsets,
	})
}
