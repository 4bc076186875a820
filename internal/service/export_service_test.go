package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestExportService_ExportTrainingHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	storageMock := NewMockFileStorage(ctrl)
	gymGoers := newTestGymGoerService(&testClock{now: time.Now()})
	svc := NewExportService(gymGoers, storageMock, 10*time.Minute)
	ctx := context.Background()

	email := gofakeit.Email()
	g, err := gymGoers.Create(ctx, email)
	require.NoError(t, err)
	_, err = gymGoers.AddExercise(ctx, g.ID.Hex(), "legs", "squat")
	require.NoError(t, err)

	var uploadedKey string
	storageMock.EXPECT().
		PutObject(gomock.Any(), gomock.Any(), "application/json", gomock.Any()).
		DoAndReturn(func(ctx context.Context, objectKey, contentType string, body []byte) error {
			uploadedKey = objectKey
			var doc map[string]interface{}
			require.NoError(t, json.Unmarshal(body, &doc))
			assert.Equal(t, email, doc["email"])
			assert.Len(t, doc["trainingSessions"], 1)
			return nil
		}).Times(1)
	storageMock.EXPECT().
		GeneratePresignedDownloadURL(gomock.Any(), gomock.Any(), 10*time.Minute).
		DoAndReturn(func(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
			assert.Equal(t, uploadedKey, objectKey)
			return "https://bucket.example/" + objectKey, nil
		}).Times(1)

	export, err := svc.ExportTrainingHistory(ctx, g.ID.Hex())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(export.ObjectKey, "exports/"+g.ID.Hex()+"/"))
	assert.True(t, strings.HasSuffix(export.ObjectKey, ".json"))
	assert.Equal(t, "https://bucket.example/"+export.ObjectKey, export.URL)
}

func TestExportService_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	storageMock := NewMockFileStorage(ctrl)
	gymGoers := newTestGymGoerService(&testClock{now: time.Now()})
	svc := NewExportService(gymGoers, storageMock, time.Minute)
	ctx := context.Background()

	_, err := svc.ExportTrainingHistory(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	g, err := gymGoers.Create(ctx, "a@b.com")
	require.NoError(t, err)
	storageMock.EXPECT().
		PutObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset")).Times(1)

	_, err = svc.ExportTrainingHistory(ctx, g.ID.Hex())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
