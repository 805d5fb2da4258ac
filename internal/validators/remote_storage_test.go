// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/news-radar/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRemote() config.RemoteStorage {
	return config.RemoteStorage{
		EndpointURL:     "https://s3.example.com",
		BucketName:      "news",
		AccessKeyID:     "AKIA",
		SecretAccessKey: "secret",
	}
}

func missingOf(t *testing.T, err error) []string {
	t.Helper()

	var mfe *MissingFieldsError
	require.ErrorAs(t, err, &mfe)
	return mfe.Missing
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewRemoteStorageValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validRemote()))
	})

	t.Run("pointer", func(t *testing.T) {
		r := validRemote()
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("nil pointer reports everything", func(t *testing.T) {
		var r *config.RemoteStorage
		err := v.Validate(ctx, r)
		assert.Equal(t, config.RequiredRemoteFields, missingOf(t, err))
	})

	t.Run("tree", func(t *testing.T) {
		tree := config.TreeFromMap(map[string]any{
			"storage": map[string]any{
				"remote": map[string]any{
					"endpoint_url": "https://s3.example.com",
					"bucket_name":  "news",
				},
			},
		})
		err := v.Validate(ctx, tree)
		assert.Equal(t, []string{config.FieldAccessKeyID, config.FieldSecretAccessKey}, missingOf(t, err))
	})

	t.Run("tree with falsy values", func(t *testing.T) {
		tree := config.TreeFromMap(map[string]any{
			"storage": map[string]any{
				"remote": map[string]any{
					"endpoint_url":      "https://s3.example.com",
					"bucket_name":       false,
					"access_key_id":     0,
					"secret_access_key": "secret",
				},
			},
		})
		err := v.Validate(ctx, tree)
		assert.Equal(t, []string{config.FieldBucketName, config.FieldAccessKeyID}, missingOf(t, err))
	})
}

// ---------------------------------------------------------------------------
// TestValidate_RemoteStorage
// ---------------------------------------------------------------------------

func TestValidate_RemoteStorage(t *testing.T) {
	v := NewRemoteStorageValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *config.RemoteStorage)
		fields  []string
		missing []string
		wantErr error
	}{
		{
			name:   "complete",
			mutate: func(r *config.RemoteStorage) {},
		},
		{
			name:   "region is not required by default",
			mutate: func(r *config.RemoteStorage) { r.Region = "" },
		},
		{
			name:    "missing secret",
			mutate:  func(r *config.RemoteStorage) { r.SecretAccessKey = "" },
			missing: []string{config.FieldSecretAccessKey},
		},
		{
			name: "all missing fields reported in order",
			mutate: func(r *config.RemoteStorage) {
				r.AccessKeyID = ""
				r.EndpointURL = ""
			},
			missing: []string{config.FieldEndpointURL, config.FieldAccessKeyID},
		},
		{
			name:   "restricted to present fields",
			mutate: func(r *config.RemoteStorage) { r.SecretAccessKey = "" },
			fields: []string{config.FieldEndpointURL, config.FieldBucketName},
		},
		{
			name:    "region checked when named",
			mutate:  func(r *config.RemoteStorage) {},
			fields:  []string{config.FieldRegion},
			missing: []string{config.FieldRegion},
		},
		{
			name:    "duplicate field names reported once",
			mutate:  func(r *config.RemoteStorage) { r.BucketName = "" },
			fields:  []string{config.FieldBucketName, config.FieldBucketName},
			missing: []string{config.FieldBucketName},
		},
		{
			name:    "unknown field",
			mutate:  func(r *config.RemoteStorage) {},
			fields:  []string{"nope"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRemote()
			tt.mutate(&r)

			err := v.Validate(ctx, r, tt.fields...)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.missing != nil:
				assert.ErrorIs(t, err, ErrIncompleteRemoteStorage)
				assert.Equal(t, tt.missing, missingOf(t, err))
			default:
				assert.NoError(t, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMissingFieldsError
// ---------------------------------------------------------------------------

func TestMissingFieldsError(t *testing.T) {
	err := &MissingFieldsError{Missing: []string{"endpoint_url", "bucket_name"}}

	assert.Equal(t, "remote storage configuration is incomplete: missing endpoint_url, bucket_name", err.Error())
	assert.ErrorIs(t, err, ErrIncompleteRemoteStorage)
}
