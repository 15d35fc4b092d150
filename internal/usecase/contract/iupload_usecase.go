package usecasecontract

import (
	"context"

	"github.com/vibra-app/vibra/internal/domain/entity"
)

// UploadRequest carries the metadata of a simulated upload. No bytes are
// ever transferred; only the file's name and size are validated.
type UploadRequest struct {
	Title       string
	Description string
	Tags        []string
	FileName    string
	FileSize    int64
}

// IUploadUseCase runs the simulated upload pipeline.
type IUploadUseCase interface {
	// Upload validates the metadata, waits out the simulated processing
	// delay under the caller's context, and registers the new video.
	Upload(ctx context.Context, userID string, req UploadRequest) (*entity.Video, error)
}
