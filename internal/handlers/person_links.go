package handlers

import (
	"net/http"
	"time"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

func (h *Handler) HandlePersonLinkCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}

	var in models.NewPersonLink
	if !decode(w, r, &in) {
		return
	}
	link, err := h.service.CreatePersonLink(in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, link)
}

func (h *Handler) HandlePersonLinkGet(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid link id", http.StatusBadRequest)
		return
	}
	link, err := h.service.GetPersonLink(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, link)
}

func (h *Handler) HandlePersonLinks(w http.ResponseWriter, r *http.Request) {
	if !h.gate(w, r) {
		return
	}
	links, err := h.service.ListPersonLinks()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, map[string]interface{}{"rows": links})
}

func (h *Handler) HandlePersonLinkUpdate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid link id", http.StatusBadRequest)
		return
	}

	var in models.NewPersonLink
	if !decode(w, r, &in) {
		return
	}
	link, err := h.service.UpdatePersonLink(id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, link)
}

func (h *Handler) HandlePersonLinkPatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid link id", http.StatusBadRequest)
		return
	}

	var in models.PatchPersonLink
	if !decode(w, r, &in) {
		return
	}
	link, err := h.service.PatchPersonLink(id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, link)
}

func (h *Handler) HandlePersonLinkDelete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observe(r, start)
	if !h.gate(w, r) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid link id", http.StatusBadRequest)
		return
	}
	if err := h.service.DeletePersonLink(id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
