package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var treeCmp = cmp.AllowUnexported(Value{})

func diffTrees(t *testing.T, want, got Tree) {
	t.Helper()
	if diff := cmp.Diff(want, got, treeCmp); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

// ── Merge ─────────────────────────────────────────────────────────────────────

// TestMerge_OverridePrecedence verifies that nested mappings merge key by key
// and that override values win.
func TestMerge_OverridePrecedence(t *testing.T) {
	base := Tree{"a": Mapping(Tree{"x": Scalar(1), "y": Scalar(2)})}
	override := Tree{"a": Mapping(Tree{"y": Scalar(3), "z": Scalar(4)})}

	got := Merge(base, override)

	diffTrees(t, Tree{"a": Mapping(Tree{"x": Scalar(1), "y": Scalar(3), "z": Scalar(4)})}, got)
}

// TestMerge_EmptySides verifies that merging with an empty tree on either
// side yields the non-empty side.
func TestMerge_EmptySides(t *testing.T) {
	tree := Tree{
		"storage": Mapping(Tree{
			"remote": Mapping(Tree{"bucket_name": Scalar("news")}),
		}),
		"debug": Scalar(true),
	}

	diffTrees(t, tree, Merge(tree, Tree{}))
	diffTrees(t, tree, Merge(Tree{}, tree))
	diffTrees(t, tree, Merge(nil, tree))
	diffTrees(t, tree, Merge(tree, nil))
}

// TestMerge_ScalarReplacesMapping verifies that a scalar override replaces a
// whole base mapping.
func TestMerge_ScalarReplacesMapping(t *testing.T) {
	base := Tree{"a": Mapping(Tree{"x": Scalar(1)})}
	override := Tree{"a": Scalar("flat")}

	diffTrees(t, Tree{"a": Scalar("flat")}, Merge(base, override))
}

// TestMerge_MappingReplacesScalar verifies that a mapping override replaces a
// base scalar without keeping any trace of it.
func TestMerge_MappingReplacesScalar(t *testing.T) {
	base := Tree{"a": Scalar("flat"), "b": Scalar(2)}
	override := Tree{"a": Mapping(Tree{"x": Scalar(1)})}

	diffTrees(t, Tree{"a": Mapping(Tree{"x": Scalar(1)}), "b": Scalar(2)}, Merge(base, override))
}

// TestMerge_NullOverrideReplaces verifies that an explicit null still counts
// as a defined key.
func TestMerge_NullOverrideReplaces(t *testing.T) {
	base := Tree{"a": Scalar("value")}
	override := Tree{"a": Scalar(nil)}

	got := Merge(base, override)
	v, ok := got.Lookup("a")
	require.True(t, ok)
	assert.Nil(t, v.Scalar())
}

// TestMerge_DoesNotMutateInputs verifies that neither input changes and that
// the result shares no mappings with them.
func TestMerge_DoesNotMutateInputs(t *testing.T) {
	base := Tree{"a": Mapping(Tree{"x": Scalar(1)})}
	override := Tree{"a": Mapping(Tree{"y": Scalar(2)}), "b": Mapping(Tree{"z": Scalar(3)})}
	baseCopy, overrideCopy := base.Clone(), override.Clone()

	got := Merge(base, override)
	got["a"].Tree()["x"] = Scalar(100)
	got["b"].Tree()["z"] = Scalar(300)

	diffTrees(t, baseCopy, base)
	diffTrees(t, overrideCopy, override)
}

// TestMerge_DeepNesting verifies recursion below the second level.
func TestMerge_DeepNesting(t *testing.T) {
	base := Tree{"storage": Mapping(Tree{
		"remote": Mapping(Tree{"endpoint_url": Scalar("https://a"), "region": Scalar("eu")}),
		"local":  Mapping(Tree{"data_dir": Scalar("output")}),
	})}
	override := Tree{"storage": Mapping(Tree{
		"remote": Mapping(Tree{"endpoint_url": Scalar("https://b")}),
	})}

	got := Merge(base, override)

	assert.Equal(t, "https://b", got.String("storage.remote.endpoint_url", ""))
	assert.Equal(t, "eu", got.String("storage.remote.region", ""))
	assert.Equal(t, "output", got.String("storage.local.data_dir", ""))
}
