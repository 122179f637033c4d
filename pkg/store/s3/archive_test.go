package s3

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/offer-atlas/pkg/models/api"
	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockS3Client struct {
	mock.Mock
	body []byte
}

func (m *mockS3Client) PutObject(
	ctx context.Context,
	params *s3.PutObjectInput,
	_ ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	if params.Body != nil {
		m.body, _ = io.ReadAll(params.Body)
	}
	args := m.Called(awssdk.ToString(params.Bucket), awssdk.ToString(params.Key))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func TestArchive_Publish(t *testing.T) {
	// Given
	client := new(mockS3Client)
	client.On("PutObject", "offers", "signed/summer-fest.json").Return(&s3.PutObjectOutput{}, nil)
	archive := newArchive(client, Settings{Bucket: "offers", Prefix: "signed"})
	snapshot := domain.Snapshot{
		ID:            "snap-1",
		OfferID:       "summer-fest",
		SignedAt:      time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
		NetProfit:     99.99,
		CategoryCosts: map[string]float64{"catering": 12},
		Currency:      "EUR",
	}

	// When
	err := archive.Publish(context.Background(), snapshot)

	// Then
	require.NoError(t, err)
	client.AssertExpectations(t)

	var stored api.Snapshot
	require.NoError(t, json.Unmarshal(client.body, &stored))
	assert.Equal(t, "snap-1", stored.ID)
	assert.Equal(t, 99.99, stored.NetProfit)
	assert.Equal(t, map[string]float64{"catering": 12}, stored.CategoryCosts)
}

func TestArchive_PublishError(t *testing.T) {
	client := new(mockS3Client)
	client.On("PutObject", "offers", "snapshots/o1.json").Return(nil, errors.New("access denied"))
	archive := newArchive(client, Settings{Bucket: "offers"})

	err := archive.Publish(context.Background(), domain.Snapshot{OfferID: "o1"})

	assert.ErrorContains(t, err, "s3://offers/snapshots/o1.json")
}

func TestNewArchive_RequiresBucket(t *testing.T) {
	_, err := NewArchive(context.Background(), Settings{})
	assert.Error(t, err)
}
