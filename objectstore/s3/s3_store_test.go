package s3

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/gearsetup/objectstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_S3Store(t *testing.T) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		t.Skip("Skipping S3 integration test: S3_BUCKET not set")
	}

	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx)
	require.NoError(t, err)

	client := s3.NewFromConfig(cfg)

	// Create a unique prefix for this test run
	prefix := fmt.Sprintf("test-gearsetup-%d/", time.Now().UnixNano())
	store := New(client, bucket, prefix)

	t.Run("Put and Get", func(t *testing.T) {
		name := "equipment/latest.json"
		data := make([]byte, 1024*1024) // 1MB, exercises multipart path
		rand.Read(data)

		require.NoError(t, store.Put(ctx, name, data))

		names, err := store.List(ctx, "equipment/")
		require.NoError(t, err)
		assert.Contains(t, names, name)

		got, err := store.Get(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, data, got)

		require.NoError(t, store.Delete(ctx, name))
	})

	t.Run("Get missing", func(t *testing.T) {
		_, err := store.Get(ctx, "does/not/exist.json")
		assert.True(t, errors.Is(err, objectstore.ErrNotFound))
	})

	t.Run("Delete missing", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "does/not/exist.json"))
	})
}
