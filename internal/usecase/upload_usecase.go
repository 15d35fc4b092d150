package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
	"github.com/vibra-app/vibra/internal/infrastructure/simulate"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// Upload validation errors.
var (
	ErrMissingTitle    = errors.New("title is required")
	ErrMissingFile     = errors.New("video file is required")
	ErrFileTooLarge    = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedFile = errors.New("unsupported video format")
)

// uploadStages is how many progress steps the simulated pipeline reports.
const uploadStages = 4

// UploadUsecase runs the simulated upload pipeline: no bytes move, only
// metadata is validated, and the processing delay is waited out under the
// caller's context.
type UploadUsecase struct {
	userRepo  contract.IUserRepository
	videoRepo contract.IVideoRepository
	idGen     contract.IIDGenerator
	logger    usecasecontract.IAppLogger
	config    usecasecontract.IConfigProvider
}

// NewUploadUsecase creates a new UploadUsecase instance.
func NewUploadUsecase(
	userRepo contract.IUserRepository,
	videoRepo contract.IVideoRepository,
	idGen contract.IIDGenerator,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
) *UploadUsecase {
	return &UploadUsecase{
		userRepo:  userRepo,
		videoRepo: videoRepo,
		idGen:     idGen,
		logger:    logger,
		config:    cfg,
	}
}

var _ usecasecontract.IUploadUseCase = (*UploadUsecase)(nil)

// Upload validates metadata, simulates processing and registers the new
// video with zeroed counters at the end of the feed.
func (uc *UploadUsecase) Upload(ctx context.Context, userID string, req usecasecontract.UploadRequest) (*entity.Video, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrMissingTitle
	}
	if req.FileName == "" || req.FileSize <= 0 {
		return nil, ErrMissingFile
	}
	if req.FileSize > uc.config.GetMaxUploadBytes() {
		return nil, ErrFileTooLarge
	}
	if !supportedVideoFile(req.FileName) {
		return nil, ErrUnsupportedFile
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}

	err = simulate.RunStaged(ctx, uc.config.GetUploadDelay(), uploadStages, func(pct int) {
		uc.logger.Debugf("upload %s for %s: %d%%", req.FileName, userID, pct)
	})
	if err != nil {
		uc.logger.Infof("upload for %s cancelled: %v", userID, err)
		return nil, fmt.Errorf("upload: %w", err)
	}

	video := &entity.Video{
		ID:           uc.idGen.NewID("video"),
		UserID:       user.ID,
		Username:     user.Username,
		Avatar:       user.Avatar,
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		VideoURL:     "https://cdn.vibra.app/videos/" + req.FileName,
		ThumbnailURL: "https://cdn.vibra.app/thumbs/" + req.FileName + ".jpg",
		Tags:         normalizeTags(req.Tags),
		CreatedAt:    time.Now().UTC(),
		Rewards:      decimal.Zero,
	}
	if err := uc.videoRepo.CreateVideo(ctx, video); err != nil {
		uc.logger.Errorf("upload register failed: %v", err)
		return nil, fmt.Errorf("upload: %w", err)
	}
	return video, nil
}

func supportedVideoFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range []string{".mp4", ".mov", ".avi", ".webm"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func normalizeTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		t = strings.TrimSpace(strings.TrimPrefix(t, "#"))
		if t != "" {
			out = append(out, strings.ToLower(t))
		}
	}
	return out
}
