package config

// Field names of the remote storage descriptor as they appear under
// storage.remote in the configuration tree.
const (
	FieldEndpointURL     = "endpoint_url"
	FieldBucketName      = "bucket_name"
	FieldAccessKeyID     = "access_key_id"
	FieldSecretAccessKey = "secret_access_key"
	FieldRegion          = "region"
)

// RequiredRemoteFields lists the mandatory remote storage fields in the
// order they are reported.
var RequiredRemoteFields = []string{
	FieldEndpointURL,
	FieldBucketName,
	FieldAccessKeyID,
	FieldSecretAccessKey,
}

const remotePrefix = "storage.remote."

// RemoteStorage addresses an S3-compatible object store.
type RemoteStorage struct {
	EndpointURL     string `json:"endpoint_url"`
	BucketName      string `json:"bucket_name"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	Region          string `json:"region"`
}

// RemoteStorageFromTree extracts storage.remote.* from tree. Absent and
// falsy fields (false, numeric zero) are left empty; this never fails.
func RemoteStorageFromTree(tree Tree) RemoteStorage {
	return RemoteStorage{
		EndpointURL:     remoteField(tree, FieldEndpointURL),
		BucketName:      remoteField(tree, FieldBucketName),
		AccessKeyID:     remoteField(tree, FieldAccessKeyID),
		SecretAccessKey: remoteField(tree, FieldSecretAccessKey),
		Region:          remoteField(tree, FieldRegion),
	}
}

func remoteField(tree Tree, name string) string {
	path := remotePrefix + name
	if v, ok := tree.Lookup(path); ok && isFalsy(v.Scalar()) {
		return ""
	}
	return tree.String(path, "")
}

func isFalsy(v any) bool {
	switch n := v.(type) {
	case bool:
		return !n
	case int:
		return n == 0
	case int64:
		return n == 0
	case uint64:
		return n == 0
	case float64:
		return n == 0
	default:
		return false
	}
}

// Field returns the value of the named field, or "" for unknown names.
func (r RemoteStorage) Field(name string) string {
	switch name {
	case FieldEndpointURL:
		return r.EndpointURL
	case FieldBucketName:
		return r.BucketName
	case FieldAccessKeyID:
		return r.AccessKeyID
	case FieldSecretAccessKey:
		return r.SecretAccessKey
	case FieldRegion:
		return r.Region
	default:
		return ""
	}
}

// IsComplete reports whether every required field is non-empty. Region is
// never required.
func (r RemoteStorage) IsComplete() bool {
	return len(r.MissingFields()) == 0
}

// MissingFields returns the required fields that are empty, in
// [RequiredRemoteFields] order.
func (r RemoteStorage) MissingFields() []string {
	missing := make([]string, 0, len(RequiredRemoteFields))
	for _, f := range RequiredRemoteFields {
		if r.Field(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}
