package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	"github.com/gajipro/gajipro-backend-go/internal/handler/http/response"
)

// MaxPhotoUploadSize caps the multipart body of a profile photo upload.
const MaxPhotoUploadSize = 5 << 20

type ProfileHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	UploadPhoto(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	userService user.UserService
}

func NewProfileHandler(userService user.UserService) ProfileHandler {
	return &profileHandlerImpl{userService: userService}
}

// Get handles GET /me
func (h *profileHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), actor.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// Update handles PUT /me
func (h *profileHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req user.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := h.userService.UpdateProfile(r.Context(), actor.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated successfully", profile)
}

// ChangePassword handles PUT /me/password
func (h *profileHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req user.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.userService.ChangePassword(r.Context(), actor.UserID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password changed successfully", nil)
}

// UploadPhoto handles POST /me/photo with a multipart "photo" field
func (h *profileHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxPhotoUploadSize)
	if err := r.ParseMultipartForm(MaxPhotoUploadSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Photo must be a multipart upload of at most 5MB", nil)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "Field 'photo' is required", map[string]string{"photo": "photo is required"})
		return
	}
	defer file.Close()

	profile, err := h.userService.UploadPhoto(r.Context(), actor.UserID, file, header.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Photo updated successfully", profile)
}
