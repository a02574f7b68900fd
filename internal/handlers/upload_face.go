package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/smartbank/smartbank/internal/logger"
	"github.com/smartbank/smartbank/internal/repositories"
	"github.com/smartbank/smartbank/internal/services"
)

// maxUploadBytes caps the face upload size at 5 MB.
const maxUploadBytes = 5 << 20

// FaceUploader defines the interface that the face-upload service must implement.
type FaceUploader interface {
	Upload(ctx context.Context, userID int64, filename string, file io.Reader) (string, error)
}

// UploadFaceResponse represents a successful face upload
// swagger:model UploadFaceResponse
type UploadFaceResponse struct {
	// Success message
	// default: Face uploaded successfully
	Message string `json:"message"`

	// Stored asset name; re-uploads overwrite it
	// default: user_1.jpg
	FaceFilename string `json:"face_filename"`
}

// UploadFaceErrorResponse represents an error response for face upload
// swagger:model UploadFaceErrorResponse
type UploadFaceErrorResponse struct {
	// Error message
	// default: Invalid file type (png/jpg/jpeg only)
	Error string `json:"error"`
}

// NewUploadFaceHandler returns an HTTP handler for the face-upload step of
// onboarding. Expects a multipart form with a "face" file field.
// @Summary Upload face image
// @Description Stores the face photo for a user as user_<id>.<ext>; png, jpg and jpeg only, 5 MB max
// @Tags account
// @Accept mpfd
// @Produce json
// @Param user_id path int true "User identifier"
// @Param face formData file true "Face image"
// @Success 201 {object} handlers.UploadFaceResponse "Face stored"
// @Failure 400 {object} handlers.UploadFaceErrorResponse "No file selected or invalid file type"
// @Failure 404 {object} handlers.UploadFaceErrorResponse "Unknown user"
// @Failure 503 {object} handlers.UploadFaceErrorResponse "Database not configured"
// @Router /upload-face/{user_id} [post]
func NewUploadFaceHandler(svc FaceUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UploadFaceErrorResponse{
				Error: "User not found.",
			})
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		file, header, err := r.FormFile("face")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadFaceErrorResponse{
				Error: "No file selected",
			})
			return
		}
		defer file.Close()

		saveName, err := svc.Upload(r.Context(), userID, header.Filename, file)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UploadFaceErrorResponse{
					Error: "User not found.",
				})
			case errors.Is(err, services.ErrInvalidFile):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UploadFaceErrorResponse{
					Error: "Invalid file type (png/jpg/jpeg only)",
				})
			case errors.Is(err, repositories.ErrStoreUnavailable):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(UploadFaceErrorResponse{
					Error: "Database not configured",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UploadFaceErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UploadFaceResponse{
			Message:      "Face uploaded successfully",
			FaceFilename: saveName,
		})
	}
}
