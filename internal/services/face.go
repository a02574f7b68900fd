package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/smartbank/smartbank/internal/logger"
	"github.com/smartbank/smartbank/internal/models"
)

// ErrInvalidFile is returned for a missing filename or a disallowed extension.
var ErrInvalidFile = errors.New("invalid file type (png/jpg/jpeg only)")

var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
}

// FaceUserReader resolves the user the upload belongs to.
type FaceUserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// FaceWriter persists the stored asset reference on the user.
type FaceWriter interface {
	SaveFaceFilename(ctx context.Context, userID int64, filename string) error
}

// FaceStorage performs the durable write of the asset bytes.
type FaceStorage interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// FaceService handles the face-photo step of onboarding.
type FaceService struct {
	reader  FaceUserReader
	writer  FaceWriter
	storage FaceStorage
}

// NewFaceService creates a new FaceService instance.
func NewFaceService(reader FaceUserReader, writer FaceWriter, storage FaceStorage) *FaceService {
	return &FaceService{
		reader:  reader,
		writer:  writer,
		storage: storage,
	}
}

// Upload validates the inbound asset, stores it as user_<id>.<ext> so a
// re-upload overwrites the previous asset, and persists the reference.
func (svc *FaceService) Upload(ctx context.Context, userID int64, filename string, file io.Reader) (string, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user for face upload", "user_id", userID, "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	ext, ok := allowedExtension(filename)
	if !ok {
		logger.Log.Infow("rejected face upload", "user_id", userID, "filename", filename)
		return "", ErrInvalidFile
	}

	saveName := fmt.Sprintf("user_%d.%s", user.ID, ext)

	if _, err := svc.storage.Save(ctx, saveName, file); err != nil {
		logger.Log.Errorw("failed to store face image", "user_id", userID, "filename", saveName, "err", err)
		return "", err
	}

	if err := svc.writer.SaveFaceFilename(ctx, user.ID, saveName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}
		logger.Log.Errorw("failed to save face reference", "user_id", userID, "err", err)
		return "", err
	}

	return saveName, nil
}

// allowedExtension returns the lowercased extension when the filename is
// non-empty and carries one of the allowed image extensions.
func allowedExtension(filename string) (string, bool) {
	filename = strings.TrimSpace(filename)
	i := strings.LastIndex(filename, ".")
	if i <= 0 || i == len(filename)-1 {
		return "", false
	}
	ext := strings.ToLower(filename[i+1:])
	_, ok := allowedExtensions[ext]
	return ext, ok
}
