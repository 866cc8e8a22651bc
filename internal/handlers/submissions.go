package handlers

import (
	"net/http"
	"time"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

// HandleSubmissionCreate records a student's submission. When auth is
// enabled the caller must present the course join token.
func (h *Handler) HandleSubmissionCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}

	var in models.NewSubmission
	if !decode(w, r, &in) {
		return
	}

	task, err := h.service.GetTask(in.TaskID)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.service.ValidateRequest(r, task.CourseID); err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sub, err := h.service.CreateSubmission(in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, sub)
}

func (h *Handler) HandleSubmissionGet(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	taskID, err := pathID(r, "taskID")
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return
	}
	studentID, err := pathID(r, "studentID")
	if err != nil {
		http.Error(w, "Invalid student id", http.StatusBadRequest)
		return
	}
	sub, err := h.service.GetSubmission(taskID, studentID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, sub)
}

func (h *Handler) HandleTaskSubmissions(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	taskID, err := pathID(r, "taskID")
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return
	}
	subs, err := h.service.ListTaskSubmissions(taskID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, map[string]interface{}{
		"rows": subs,
	})
}

// HandleSubmissionUpdate replaces the submission wholesale; omitting
// satisfied_criteria clears the set.
func (h *Handler) HandleSubmissionUpdate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	taskID, err := pathID(r, "taskID")
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return
	}
	studentID, err := pathID(r, "studentID")
	if err != nil {
		http.Error(w, "Invalid student id", http.StatusBadRequest)
		return
	}

	var in models.NewSubmission
	if !decode(w, r, &in) {
		return
	}
	sub, err := h.service.UpdateSubmission(taskID, studentID, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, sub)
}

func (h *Handler) HandleSubmissionPatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	taskID, err := pathID(r, "taskID")
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return
	}
	studentID, err := pathID(r, "studentID")
	if err != nil {
		http.Error(w, "Invalid student id", http.StatusBadRequest)
		return
	}

	var in models.PatchSubmission
	if !decode(w, r, &in) {
		return
	}
	sub, err := h.service.PatchSubmission(taskID, studentID, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, sub)
}

// HandleSubmissionRescore recomputes the derived score, e.g. after the task's
// deadlines or criteria changed.
func (h *Handler) HandleSubmissionRescore(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	taskID, err := pathID(r, "taskID")
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return
	}
	studentID, err := pathID(r, "studentID")
	if err != nil {
		http.Error(w, "Invalid student id", http.StatusBadRequest)
		return
	}
	sub, err := h.service.RescoreSubmission(taskID, studentID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, sub)
}

func (h *Handler) HandleSubmissionDelete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	taskID, err := pathID(r, "taskID")
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)
		return
	}
	studentID, err := pathID(r, "studentID")
	if err != nil {
		http.Error(w, "Invalid student id", http.StatusBadRequest)
		return
	}
	if err := h.service.DeleteSubmission(taskID, studentID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
