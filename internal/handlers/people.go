package handlers

import (
	"net/http"
	"time"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

// People endpoints exist to bootstrap a fresh deployment: a course needs an
// owning user before anything else can be created.

func (h *Handler) HandleUserCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	var in models.NewUser
	if !decode(w, r, &in) {
		return
	}
	user, err := h.service.CreateUser(in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, user)
}

func (h *Handler) HandleUserGet(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	user, err := h.service.GetUser(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, user)
}

func (h *Handler) HandleStudentCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	var in models.NewStudent
	if !decode(w, r, &in) {
		return
	}
	student, err := h.service.CreateStudent(in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, student)
}

func (h *Handler) HandleStudentGet(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid student id", http.StatusBadRequest)
		return
	}
	student, err := h.service.GetStudent(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, student)
}

func (h *Handler) HandleEmployeeCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	var in models.NewEmployee
	if !decode(w, r, &in) {
		return
	}
	employee, err := h.service.CreateEmployee(in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, employee)
}

func (h *Handler) HandleEmployeeGet(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid employee id", http.StatusBadRequest)
		return
	}
	employee, err := h.service.GetEmployee(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, employee)
}
