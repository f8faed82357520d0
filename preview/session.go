package preview

import (
	"github.com/HeyGarrison/cakeelizabethdotcom/location"
	"github.com/HeyGarrison/cakeelizabethdotcom/router"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
	"github.com/HeyGarrison/cakeelizabethdotcom/vdom"
)

// session renders a component tree in memory against an in-memory history.
// It plays the part the DOM renderer plays in the browser.
type session struct {
	tree      *runtime.Reconciler
	root      runtime.Component
	history   *router.Memory
	current   *vdom.VNode
	rendering bool
	pending   bool
}

var _ runtime.Renderer = (*session)(nil)

func newSession(root runtime.Component, history *router.Memory) *session {
	s := &session{tree: runtime.NewReconciler(), root: root, history: history}
	root.SetRenderer(s)
	return s
}

// render runs a render pass. A render requested while one is running runs
// right after it.
func (s *session) render() {
	if s.rendering {
		s.pending = true
		return
	}
	s.rendering = true
	defer func() { s.rendering = false }()

	for {
		s.pending = false
		s.tree.Begin()
		s.current = s.tree.Root(s.root, s)
		s.tree.End()
		if !s.pending {
			return
		}
	}
}

func (s *session) RenderChild(key string, child runtime.Component) *vdom.VNode {
	return s.tree.Child(key, child, s)
}

func (s *session) ReRender() { s.render() }

func (s *session) Navigate(path string) error { return s.history.Navigate(path) }

func (s *session) Replace(loc location.Location) error { return s.history.Replace(loc) }

func (s *session) Location() location.Location { return s.history.Location() }

func (s *session) close() {
	s.tree.UnmountAll()
	s.current = nil
}
