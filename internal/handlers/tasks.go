package handlers

import (
	"net/http"
	"time"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/ordering"
)

func (h *Handler) HandleTaskCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}

	var in models.NewTask
	if !decode(w, r, &in) {
		return
	}
	task, err := h.service.CreateTask(in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, task)
}

func (h *Handler) HandleTaskGet(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return
	}
	task, err := h.service.GetTask(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, task)
}

// HandleCourseTasks returns the course's tasks in display order.
func (h *Handler) HandleCourseTasks(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	courseID, err := pathID(r, "courseID")
	if err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}
	tasks, err := h.service.ListCourseTasks(courseID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, map[string]interface{}{
		"rows": tasks,
	})
}

func (h *Handler) HandleTaskUpdate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return
	}

	var in models.NewTask
	if !decode(w, r, &in) {
		return
	}
	task, err := h.service.UpdateTask(id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, task)
}

func (h *Handler) HandleTaskPatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return
	}

	var in models.PatchTask
	if !decode(w, r, &in) {
		return
	}
	task, err := h.service.PatchTask(id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, task)
}

func (h *Handler) HandleTaskDelete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return
	}
	if err := h.service.DeleteTask(id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleTaskReorder applies a bulk renumbering to one course.
func (h *Handler) HandleTaskReorder(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	courseID, err := pathID(r, "courseID")
	if err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}

	var items []ordering.ReorderItem
	if !decode(w, r, &items) {
		return
	}
	if err := h.service.ReorderTasks(courseID, items); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// HandleCourseScoreboard returns student -> task -> total score for a course.
func (h *Handler) HandleCourseScoreboard(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	courseID, err := pathID(r, "courseID")
	if err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}
	scores, err := h.service.CourseScoreboard(courseID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, map[string]interface{}{
		"scores": scores,
	})
}
