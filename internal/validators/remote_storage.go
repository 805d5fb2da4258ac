package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/news-radar/internal/config"
)

// RemoteStorageValidator checks that a remote storage descriptor carries
// every field needed to reach the object store.
type RemoteStorageValidator struct{}

// NewRemoteStorageValidator returns a Validator for config.RemoteStorage
// values. It also accepts a config.Tree, from which storage.remote.* is
// extracted first.
func NewRemoteStorageValidator() Validator {
	return &RemoteStorageValidator{}
}

// Validate returns a *MissingFieldsError when any checked field is empty.
// With no fields, all of config.RequiredRemoteFields are checked; region is
// only checked when named explicitly.
func (v *RemoteStorageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case config.RemoteStorage:
		return v.validateRemoteStorage(value, fields...)
	case *config.RemoteStorage:
		if value == nil {
			return v.validateRemoteStorage(config.RemoteStorage{}, fields...)
		}
		return v.validateRemoteStorage(*value, fields...)
	case config.Tree:
		return v.validateRemoteStorage(config.RemoteStorageFromTree(value), fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RemoteStorageValidator) validateRemoteStorage(remote config.RemoteStorage, fields ...string) error {
	if len(fields) == 0 {
		fields = config.RequiredRemoteFields
	}

	var missing []string
	for _, f := range fields {
		if !isRemoteField(f) {
			return ErrUnknownField
		}
		if remote.Field(f) == "" && !slices.Contains(missing, f) {
			missing = append(missing, f)
		}
	}

	if len(missing) > 0 {
		return &MissingFieldsError{Missing: missing}
	}
	return nil
}

func isRemoteField(name string) bool {
	return name == config.FieldRegion || slices.Contains(config.RequiredRemoteFields, name)
}
