package pegdrop

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, touches and resolved contacts are forwarded to it.
type EntityStore interface {
	EmitTouch(event TouchEvent)
	EmitContact(event ContactEvent)
}

// TouchEvent reports a routed touch. Object is nil when the touch toggled
// edit mode instead of spawning.
type TouchEvent struct {
	X, Y        float64
	EditingMode bool
	Object      *WorldObject
}

// ContactEvent reports a contact between two live world objects.
type ContactEvent struct {
	A, B *WorldObject
}

// Layout of the sample scene, in Y-down world coordinates.
const (
	labelFont      = "Chalkduster"
	labelFontSize  = 32
	labelTopOffset = 700 // labels sit this far above the bottom edge
	scoreLabelX    = 980
	editLabelX     = 80
	backgroundName = "background"
)

// editTouchPadding widens the edit label's touch target on every side.
const editTouchPadding = 12

var (
	slotXs    = []float64{128, 384, 640, 896}
	bouncerXs = []float64{0, 256, 512, 768, 1024}
)

// Scene is the peg-drop game scene. It owns the node tree, the physics
// world, the camera, the labels and every spawned object.
type Scene struct {
	cfg    Config
	state  SceneState
	rng    *rand.Rand
	assets *Assets
	store  EntityStore
	debug  bool

	root       *Node
	world      *Node
	background *Node
	scoreLabel *Node
	editLabel  *Node
	camera     *Camera
	physics    *World
	objects    []*WorldObject

	size           Vec2
	originalHeight float64
	frame          uint64

	contactHandlers []*contactHandler
	nextHandlerID   uint32
	tweens          []*TweenGroup
	finishedFx      []*Node
	hitBuf          []*Node
	hitOut          []*Node

	// Input state
	touchBuf        []ebiten.TouchID
	injectQueue     []Vec2
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene builds the scene: background, labels, edge loop, camera, and
// the box dropped at start. assets may be nil; missing assets fall back to
// solid shapes and the built-in font.
func NewScene(cfg Config, assets *Assets) (*Scene, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if assets == nil {
		assets = NewAssets(nil)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s := &Scene{
		cfg:            cfg,
		rng:            rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		assets:         assets,
		root:           NewContainer("root"),
		world:          NewContainer("world"),
		size:           Vec2{X: cfg.Width, Y: cfg.Height},
		originalHeight: cfg.Height,
	}
	s.SetDebugMode(cfg.Debug)
	s.root.Interactable = true
	s.world.Interactable = true

	if img, err := assets.Image(backgroundName); err == nil {
		s.background = NewSprite(backgroundName, img)
	} else {
		s.debugf("background: %v", err)
		s.background = NewRect(backgroundName, cfg.Width, cfg.Height, Color{0.08, 0.1, 0.16, 1})
	}
	s.background.SetPosition(cfg.Width/2, cfg.BackgroundBaseY)
	s.background.BlendMode = BlendReplace
	s.background.Interactable = true
	s.background.SetZIndex(-1)
	s.root.AddChild(s.background)
	s.root.AddChild(s.world)

	face := s.faceOrDefault(labelFont, labelFontSize)
	labelY := cfg.Height - labelTopOffset
	s.scoreLabel = NewLabel("scoreLabel", ScoreText(0), face, TextAlignRight)
	s.scoreLabel.SetPosition(scoreLabelX, labelY)
	s.editLabel = NewLabel("editLabel", EditText(false), face, TextAlignCenter)
	s.editLabel.SetPosition(editLabelX, labelY)
	s.root.AddChild(s.scoreLabel)
	s.root.AddChild(s.editLabel)

	s.physics = NewWorld(Vec2{X: 0, Y: cfg.Gravity})
	s.physics.SetBounds(Rect{Width: cfg.Width, Height: cfg.Height})
	s.physics.OnContact(s.onContact)

	for i, x := range slotXs {
		if err := s.MakeSlot(Vec2{X: x, Y: cfg.Height}, i%2 == 0); err != nil {
			s.debugf("%v", err)
		}
	}
	for _, x := range bouncerXs {
		if err := s.MakeBouncer(Vec2{X: x, Y: cfg.Height}); err != nil {
			s.debugf("%v", err)
		}
	}

	s.camera = NewCamera(Rect{Width: cfg.Width, Height: cfg.Height})
	s.DropObjects()
	s.render()
	return s, nil
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node { return s.root }

// Camera returns the active viewpoint.
func (s *Scene) Camera() *Camera { return s.camera }

// Physics returns the physics world.
func (s *Scene) Physics() *World { return s.physics }

// Background returns the background sprite.
func (s *Scene) Background() *Node { return s.background }

// ScoreLabel returns the score label node.
func (s *Scene) ScoreLabel() *Node { return s.scoreLabel }

// EditLabel returns the edit/done toggle label node.
func (s *Scene) EditLabel() *Node { return s.editLabel }

// Size returns the current scene extents. Height tracks CameraYOffset.
func (s *Scene) Size() Vec2 { return s.size }

// OriginalHeight returns the height the scene was created with.
func (s *Scene) OriginalHeight() float64 { return s.originalHeight }

// Frame returns the number of completed Update calls.
func (s *Scene) Frame() uint64 { return s.frame }

// Config returns the configuration the scene was built from.
func (s *Scene) Config() Config { return s.cfg }

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and diagnostics are printed to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// Update runs one simulation tick: scripted input, touch routing, the
// physics step with its contacts, body-to-node sync, the post-physics
// scroll pass, then tweens and particles.
func (s *Scene) Update() {
	dt := 1.0 / float64(s.cfg.TPS)

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()

	s.physics.Step(dt)
	for _, o := range s.objects {
		o.syncFromBody()
	}
	s.didSimulatePhysics()

	s.updateTweens(float32(dt))
	s.finishedFx = updateParticles(s.root, dt, s.finishedFx[:0])
	for i, fx := range s.finishedFx {
		fx.Dispose()
		s.finishedFx[i] = nil
	}

	s.frame++
	if s.debug && s.frame%uint64(s.cfg.TPS) == 0 {
		s.debugLog()
	}
}

func (s *Scene) String() string {
	return fmt.Sprintf("Scene(frame=%d objects=%d score=%d editing=%t)",
		s.frame, len(s.objects), s.state.Score, s.state.EditingMode)
}
