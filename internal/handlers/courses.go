package handlers

import (
	"net/http"
	"time"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

func (h *Handler) HandleCourseCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}

	var in models.NewCourse
	if !decode(w, r, &in) {
		return
	}
	course, err := h.service.CreateCourse(in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, course)
}

func (h *Handler) HandleCourseGet(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}
	course, err := h.service.GetCourse(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, course)
}

func (h *Handler) HandleOwnerCourses(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	ownerID, err := pathID(r, "ownerID")
	if err != nil {
		http.Error(w, "Invalid owner id", http.StatusBadRequest)
		return
	}
	rows, err := h.service.ListOwnerCourses(ownerID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, map[string]interface{}{"rows": rows})
}

func (h *Handler) HandleCourseUpdate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}

	var in models.NewCourse
	if !decode(w, r, &in) {
		return
	}
	course, err := h.service.UpdateCourse(id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, course)
}

func (h *Handler) HandleCoursePatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}

	var in models.PatchCourse
	if !decode(w, r, &in) {
		return
	}
	course, err := h.service.PatchCourse(id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, course)
}

func (h *Handler) HandleCourseDelete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}
	if err := h.service.DeleteCourse(id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
