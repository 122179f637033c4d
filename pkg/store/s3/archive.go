package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/offer-atlas/pkg/adapters"
	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

const (
	DefaultRegion = "eu-central-1"
	DefaultPrefix = "snapshots"
)

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Settings struct {
	Bucket  string
	Prefix  string
	Profile string
}

// Archive keeps a JSON copy of every signed snapshot under <prefix>/<offer>.json
type Archive struct {
	client putObjectAPI
	bucket string
	prefix string
}

func LoadConfig(ctx context.Context, profile string) (*awssdk.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithDefaultRegion(DefaultRegion),
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &awsCfg, nil
}

func NewArchive(ctx context.Context, settings Settings) (*Archive, error) {
	if settings.Bucket == "" {
		return nil, fmt.Errorf("snapshot bucket is empty")
	}

	awsCfg, err := LoadConfig(ctx, settings.Profile)
	if err != nil {
		return nil, err
	}
	return newArchive(s3.NewFromConfig(*awsCfg), settings), nil
}

func newArchive(client putObjectAPI, settings Settings) *Archive {
	prefix := settings.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Archive{
		client: client,
		bucket: settings.Bucket,
		prefix: prefix,
	}
}

func (a *Archive) Key(offerID string) string {
	return path.Join(a.prefix, offerID+".json")
}

func (a *Archive) Publish(ctx context.Context, snapshot domain.Snapshot) error {
	body, err := json.Marshal(adapters.MapDomainSnapshotToApiSnapshot(snapshot))
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	key := a.Key(snapshot.OfferID)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      awssdk.String(a.bucket),
		Key:         awssdk.String(key),
		Body:        bytes.NewReader(body),
		ContentType: awssdk.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put snapshot s3://%s/%s: %w", a.bucket, key, err)
	}

	zerolog.Ctx(ctx).Info().
		Str("bucket", a.bucket).
		Str("key", key).
		Msg("archived signed snapshot")
	return nil
}
