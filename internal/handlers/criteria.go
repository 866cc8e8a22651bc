package handlers

import (
	"net/http"
	"time"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

func (h *Handler) HandleCriteriaCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}

	var in models.NewCriteria
	if !decode(w, r, &in) {
		return
	}
	criteria, err := h.service.CreateCriteria(in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, criteria)
}

func (h *Handler) HandleCriteriaBatchCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}

	var in []models.NewCriteria
	if !decode(w, r, &in) {
		return
	}
	created, err := h.service.BatchCreateCriteria(in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, map[string]interface{}{"rows": created})
}

func (h *Handler) HandleCriteriaGet(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid criteria id", http.StatusBadRequest)
		return
	}
	criteria, err := h.service.GetCriteria(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, criteria)
}

func (h *Handler) HandleTaskCriteria(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	taskID, err := pathID(r, "taskID")
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return
	}
	rows, err := h.service.ListTaskCriteria(taskID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, map[string]interface{}{"rows": rows})
}

func (h *Handler) HandleCriteriaUpdate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid criteria id", http.StatusBadRequest)
		return
	}

	var in models.NewCriteria
	if !decode(w, r, &in) {
		return
	}
	criteria, err := h.service.UpdateCriteria(id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, criteria)
}

func (h *Handler) HandleCriteriaPatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid criteria id", http.StatusBadRequest)
		return
	}

	var in models.PatchCriteria
	if !decode(w, r, &in) {
		return
	}
	criteria, err := h.service.PatchCriteria(id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, criteria)
}

func (h *Handler) HandleCriteriaDelete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid criteria id", http.StatusBadRequest)
		return
	}
	if err := h.service.DeleteCriteria(id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
