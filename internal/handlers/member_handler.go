package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/libraryservice/backend/internal/models"
	"go.uber.org/zap"
)

// MemberService is the interface that wraps methods for member management by librarians.
type MemberService interface {
	// Method ListMembers returns every member account, soft-deleted ones marked "Deleted".
	ListMembers(ctx context.Context) ([]models.MemberListItem, error)
	// Method CreateMember creates a new account, a member unless the request names another user_type.
	//
	// If an active user already holds the username, a models.ErrConflict error is returned.
	CreateMember(ctx context.Context, req *models.SignupRequest) (*models.User, error)
	// Method GetMember returns the details of an active member.
	//
	// If no such member exists, a models.ErrNotFound error is returned.
	GetMember(ctx context.Context, id string) (*models.MemberDetails, error)
	// Method UpdateMember changes username, address and email of an active member.
	//
	// If no such member exists, a models.ErrNotFound error is returned.
	// If the new username is taken, a models.ErrConflict error is returned.
	UpdateMember(ctx context.Context, id string, req *models.UpdateMemberRequest) error
	// Method DeleteMember soft-deletes an active member.
	//
	// If no such member exists, a models.ErrNotFound error is returned.
	DeleteMember(ctx context.Context, id string) error
	// Method History returns the books last borrowed by an active member and the member's borrow log.
	//
	// If no such member exists, a models.ErrNotFound error is returned.
	History(ctx context.Context, id string) (*models.MemberHistory, error)
}

// MemberHandler handles HTTP requests for member management
type MemberHandler struct {
	BaseHandler
	memberService MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService MemberService, logger *zap.Logger) *MemberHandler {
	return &MemberHandler{
		BaseHandler:   BaseHandler{logger: logger},
		memberService: memberService,
	}
}

// RegisterRoutes registers all member handler routes, every one of them librarian-only
func (h *MemberHandler) RegisterRoutes(r chi.Router, librarianOnly Middleware) {
	r.Group(func(r chi.Router) {
		r.Use(librarianOnly)
		r.Get("/members", h.ListMembers)
		r.Post("/members", h.CreateMember)
		r.Get("/members/{member_id}", h.GetMember)
		r.Put("/members/{member_id}", h.UpdateMember)
		r.Delete("/members/{member_id}", h.DeleteMember)
		r.Get("/members/{member_id}/history", h.History)
	})
}

// ListMembers handles GET /members
// @Summary List members
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]models.MemberListItem
// @Failure 401 {object} map[string]string "Could not validate credentials"
// @Failure 403 {object} map[string]string "User not allowed to perform this action."
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /members [get]
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.ListMembers(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to list members")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string][]models.MemberListItem{"members": members})
}

// CreateMember handles POST /members
// @Summary Add a member
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SignupRequest true "New account"
// @Success 201 {object} map[string]string "Member added successfully"
// @Failure 400 {object} map[string]string "Invalid request or username already exist"
// @Failure 401 {object} map[string]string "Could not validate credentials"
// @Failure 403 {object} map[string]string "User not allowed to perform this action."
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /members [post]
func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member, err := h.memberService.CreateMember(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create member")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Member added successfully",
		"id":      member.ID,
	})
}

// GetMember handles GET /members/{member_id}
// @Summary Get a member
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param member_id path string true "Member ID"
// @Success 200 {object} map[string]models.MemberDetails
// @Failure 401 {object} map[string]string "Could not validate credentials"
// @Failure 403 {object} map[string]string "User not allowed to perform this action."
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /members/{member_id} [get]
func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.memberService.GetMember(r.Context(), chi.URLParam(r, "member_id"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get member")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]*models.MemberDetails{"member": member})
}

// UpdateMember handles PUT /members/{member_id}
// @Summary Update a member
// @Description Change username, address and email. The role cannot be changed.
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param member_id path string true "Member ID"
// @Param request body models.UpdateMemberRequest true "Member profile"
// @Success 200 {object} map[string]string "Member updated successfully"
// @Failure 400 {object} map[string]string "Invalid request or username already exist"
// @Failure 401 {object} map[string]string "Could not validate credentials"
// @Failure 403 {object} map[string]string "User not allowed to perform this action."
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /members/{member_id} [put]
func (h *MemberHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.memberService.UpdateMember(r.Context(), chi.URLParam(r, "member_id"), &req); err != nil {
		h.respondServiceError(w, err, "failed to update member")
		return
	}

	h.respondMessage(w, http.StatusOK, "Member updated successfully")
}

// DeleteMember handles DELETE /members/{member_id}
// @Summary Delete a member
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param member_id path string true "Member ID"
// @Success 200 {object} map[string]string "Member deleted successfully"
// @Failure 401 {object} map[string]string "Could not validate credentials"
// @Failure 403 {object} map[string]string "User not allowed to perform this action."
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /members/{member_id} [delete]
func (h *MemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := h.memberService.DeleteMember(r.Context(), chi.URLParam(r, "member_id")); err != nil {
		h.respondServiceError(w, err, "failed to delete member")
		return
	}

	h.respondMessage(w, http.StatusOK, "Member deleted successfully")
}

// History handles GET /members/{member_id}/history
// @Summary Borrow history of a member
// @Description Books last borrowed by the member and the member's borrow/return log, newest first
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param member_id path string true "Member ID"
// @Success 200 {object} models.MemberHistory
// @Failure 401 {object} map[string]string "Could not validate credentials"
// @Failure 403 {object} map[string]string "User not allowed to perform this action."
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /members/{member_id}/history [get]
func (h *MemberHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.memberService.History(r.Context(), chi.URLParam(r, "member_id"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get member history")
		return
	}

	h.respondJSON(w, http.StatusOK, history)
}
