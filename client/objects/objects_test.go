package objects

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	*BaseObject
	events *[]string
}

func newRecorder(id string, zIndex int, events *[]string) *recorder {
	return &recorder{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		events:     events,
	}
}

func (r *recorder) Init() error {
	*r.events = append(*r.events, "init "+r.GetID())
	return nil
}

func (r *recorder) Destroy() error {
	*r.events = append(*r.events, "destroy "+r.GetID())
	return nil
}

func (r *recorder) Update() error {
	*r.events = append(*r.events, "update "+r.GetID())
	return nil
}

func (r *recorder) Draw(screen *ebiten.Image) {
	*r.events = append(*r.events, "draw "+r.GetID())
}

func TestBaseObject_AddAndRemoveChild(t *testing.T) {
	var events []string
	root := NewBaseObject("root", nil)
	parent := newRecorder("parent", 0, &events)
	child := newRecorder("child", 0, &events)
	require.NoError(t, parent.AddChild("child", child))
	require.NoError(t, root.AddChild("parent", parent))

	assert.Equal(t, []string{"init child", "init parent", "init child"}, events)
	assert.Same(t, parent, root.GetChild("parent"))
	assert.Equal(t, GameObject(root), parent.GetParent())

	assert.Error(t, root.AddChild("parent", newRecorder("parent", 0, &events)))

	events = nil
	require.NoError(t, root.RemoveChild("parent"))
	assert.Equal(t, []string{"destroy child", "destroy parent"}, events)
	assert.Nil(t, root.GetChild("parent"))
	assert.Nil(t, parent.GetParent())
	assert.Error(t, root.RemoveChild("parent"))
}

func TestBaseObject_RemoveFromParent(t *testing.T) {
	var events []string
	root := NewBaseObject("root", nil)
	child := newRecorder("child", 0, &events)
	require.NoError(t, root.AddChild("child", child))

	require.NoError(t, child.RemoveFromParent())
	assert.Empty(t, root.GetChildren())
	assert.Error(t, child.RemoveFromParent())
}

func TestBaseObject_RemoveChildren(t *testing.T) {
	var events []string
	root := NewBaseObject("root", nil)
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, root.AddChild(id, newRecorder(id, 0, &events)))
	}
	events = nil

	require.NoError(t, root.RemoveChildren())
	assert.Empty(t, root.GetChildren())
	assert.Equal(t, []string{"destroy a", "destroy b", "destroy c"}, events)
}

type selfRemover struct {
	*BaseObject
}

func (o *selfRemover) Update() error {
	return o.RemoveFromParent()
}

func TestUpdateTree_ChildRemovingItself(t *testing.T) {
	var events []string
	root := NewBaseObject("root", nil)
	require.NoError(t, root.AddChild("gone", &selfRemover{BaseObject: NewBaseObject("gone", nil)}))
	require.NoError(t, root.AddChild("stays", newRecorder("stays", 0, &events)))
	events = nil

	require.NoError(t, UpdateTree(root))
	assert.Equal(t, []string{"update stays"}, events)
	assert.Len(t, root.GetChildren(), 1)
}

func TestDrawTree_SortedAndHidden(t *testing.T) {
	var events []string
	root := NewSortedZIndexObject("root")
	require.NoError(t, root.AddChild("top", newRecorder("top", 30, &events)))
	require.NoError(t, root.AddChild("bottom", newRecorder("bottom", 0, &events)))
	middle := newRecorder("middle", 10, &events)
	require.NoError(t, root.AddChild("middle", middle))
	hidden := newRecorder("hidden", 20, &events)
	hidden.SetHidden(true)
	require.NoError(t, root.AddChild("hidden", hidden))
	require.NoError(t, middle.AddChild("inner", newRecorder("inner", 0, &events)))
	events = nil

	DrawTree(root, nil)
	assert.Equal(t, []string{"draw bottom", "draw middle", "draw inner", "draw top"}, events)

	require.NoError(t, root.RemoveChild("middle"))
	events = nil
	DrawTree(root, nil)
	assert.Equal(t, []string{"draw bottom", "draw top"}, events)
}
