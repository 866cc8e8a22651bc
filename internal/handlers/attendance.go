package handlers

import (
	"net/http"
	"time"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

func (h *Handler) HandleAttendanceCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}

	var in models.NewAttendance
	if !decode(w, r, &in) {
		return
	}
	record, err := h.service.CreateAttendance(in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, record)
}

// HandleAttendanceBatchCreate marks one class session for many students.
func (h *Handler) HandleAttendanceBatchCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}

	var items []models.NewAttendance
	if !decode(w, r, &items) {
		return
	}
	records, err := h.service.BatchCreateAttendance(items)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, map[string]interface{}{
		"rows": records,
	})
}

func (h *Handler) HandleAttendanceGet(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid attendance id", http.StatusBadRequest)
		return
	}
	record, err := h.service.GetAttendance(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, record)
}

func (h *Handler) HandleCourseAttendance(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	courseID, err := pathID(r, "courseID")
	if err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}
	records, err := h.service.ListCourseAttendance(courseID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, map[string]interface{}{
		"rows": records,
	})
}

func (h *Handler) HandleAttendanceUpdate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid attendance id", http.StatusBadRequest)
		return
	}

	var in models.NewAttendance
	if !decode(w, r, &in) {
		return
	}
	record, err := h.service.UpdateAttendance(id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, record)
}

func (h *Handler) HandleAttendancePatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid attendance id", http.StatusBadRequest)
		return
	}

	var in models.PatchAttendance
	if !decode(w, r, &in) {
		return
	}
	record, err := h.service.PatchAttendance(id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, record)
}

func (h *Handler) HandleAttendanceDelete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid attendance id", http.StatusBadRequest)
		return
	}
	if err := h.service.DeleteAttendance(id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
