package service

import (
	"bandisch/gym-tracker/internal/serialize"
	"bandisch/gym-tracker/internal/storage"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Export is a training history snapshot uploaded to object storage.
type Export struct {
	ObjectKey string
	URL       string
}

//go:generate mockgen -source=$GOFILE -destination=../api/export_service_mocks_test.go -package=api_test

// ExportService writes a gym goer's full training history to object storage
// and hands back a temporary download link.
type ExportService interface {
	ExportTrainingHistory(ctx context.Context, gymGoerID string) (*Export, error)
}

type exportService struct {
	gymGoerService GymGoerService
	fileStorage    storage.FileStorage
	urlExpiry      time.Duration
	now            func() time.Time
}

// NewExportService creates a new instance of exportService.
func NewExportService(gymGoerService GymGoerService, fileStorage storage.FileStorage, urlExpiry time.Duration) ExportService {
	return &exportService{
		gymGoerService: gymGoerService,
		fileStorage:    fileStorage,
		urlExpiry:      urlExpiry,
		now:            time.Now,
	}
}

func (s *exportService) ExportTrainingHistory(ctx context.Context, gymGoerID string) (*Export, error) {
	gymGoer, err := s.gymGoerService.GetByID(ctx, gymGoerID)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(serialize.GymGoerFull(gymGoer))
	if err != nil {
		return nil, fmt.Errorf("marshal training history: %w", err)
	}

	objectKey := fmt.Sprintf("exports/%s/%s-%s.json", gymGoer.ID.Hex(), s.now().UTC().Format("20060102T150405Z"), uuid.NewString())
	if err := s.fileStorage.PutObject(ctx, objectKey, "application/json", body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	log.WithFields(log.Fields{
		"gymGoerId": gymGoerID,
		"objectKey": objectKey,
	}).Info("training history exported")
	return &Export{ObjectKey: objectKey, URL: url}, nil
}
