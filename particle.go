package pegdrop

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

type particle struct {
	x, y       float64
	vx, vy     float64
	life       float64 // remaining lifetime in seconds
	maxLife    float64
	startScale float64
	endScale   float64
	startAlpha float64
	endAlpha   float64
}

// EmitterConfig describes a particle effect. It is the JSON shape of the
// particle descriptors served by Assets.Emitter.
type EmitterConfig struct {
	// MaxParticles is the pool size. New particles are silently dropped when full.
	MaxParticles int `json:"maxParticles"`
	// Burst is the number of particles spawned on the first update.
	Burst int `json:"burst"`
	// EmitRate is the number of particles spawned per second while emitting.
	EmitRate float64 `json:"emitRate"`
	// Duration is how long the emitter keeps emitting, in seconds. Zero or
	// less emits only the burst.
	Duration float64 `json:"duration"`

	Lifetime   Range `json:"lifetime"`
	Speed      Range `json:"speed"`
	Angle      Range `json:"angle"`
	Size       Range `json:"size"`
	StartScale Range `json:"startScale"`
	EndScale   Range `json:"endScale"`
	StartAlpha Range `json:"startAlpha"`
	EndAlpha   Range `json:"endAlpha"`
	Gravity    Vec2  `json:"gravity"`
	StartColor Color `json:"startColor"`
	EndColor   Color `json:"endColor"`
	// Additive selects additive blending.
	Additive bool `json:"additive"`
}

// ParticleEmitter manages a pool of particles with CPU-based simulation.
// Particles live in the emitter node's local space.
type ParticleEmitter struct {
	config    EmitterConfig
	particles []particle
	alive     int
	emitAccum float64
	elapsed   float64
	burstDone bool
	rng       *rand.Rand
	size      float64
}

func newParticleEmitter(cfg EmitterConfig, rng *rand.Rand) *ParticleEmitter {
	max := cfg.MaxParticles
	if max <= 0 {
		max = 128
	}
	size := cfg.Size.Random(rng)
	if size <= 0 {
		size = 4
	}
	return &ParticleEmitter{
		config:    cfg,
		particles: make([]particle, max),
		rng:       rng,
		size:      size,
	}
}

// NewParticleEmitter creates a particle emitter node. rng may be nil, in which
// case the emitter draws from the global source.
func NewParticleEmitter(name string, cfg EmitterConfig, rng *rand.Rand) *Node {
	n := &Node{Name: name, Type: NodeTypeParticleEmitter, Emitter: newParticleEmitter(cfg, rng)}
	nodeDefaults(n)
	if cfg.Additive {
		n.BlendMode = BlendAdd
	}
	return n
}

// AliveCount returns the number of alive particles.
func (e *ParticleEmitter) AliveCount() int {
	return e.alive
}

// Finished reports whether the emitter is done emitting and every particle died.
func (e *ParticleEmitter) Finished() bool {
	return e.burstDone && e.elapsed >= e.config.Duration && e.alive == 0
}

// update advances particle simulation by dt seconds.
func (e *ParticleEmitter) update(dt float64) {
	gx := e.config.Gravity.X * dt
	gy := e.config.Gravity.Y * dt

	i := 0
	for i < e.alive {
		p := &e.particles[i]
		p.life -= dt
		if p.life <= 0 {
			e.alive--
			e.particles[i] = e.particles[e.alive]
			continue
		}
		p.vx += gx
		p.vy += gy
		p.x += p.vx * dt
		p.y += p.vy * dt
		i++
	}

	if !e.burstDone {
		e.burstDone = true
		for k := 0; k < e.config.Burst && e.alive < len(e.particles); k++ {
			e.spawnParticle()
		}
	}

	if e.elapsed < e.config.Duration && e.config.EmitRate > 0 {
		e.emitAccum += e.config.EmitRate * dt
		for e.emitAccum >= 1.0 {
			e.emitAccum -= 1.0
			if e.alive < len(e.particles) {
				e.spawnParticle()
			}
		}
	}
	e.elapsed += dt
}

func (e *ParticleEmitter) spawnParticle() {
	p := &e.particles[e.alive]

	angle := e.config.Angle.Random(e.rng)
	speed := e.config.Speed.Random(e.rng)
	p.vx = math.Cos(angle) * speed
	p.vy = math.Sin(angle) * speed
	p.x, p.y = 0, 0

	p.life = e.config.Lifetime.Random(e.rng)
	if p.life <= 0 {
		p.life = 1.0
	}
	p.maxLife = p.life
	p.startScale = e.config.StartScale.Random(e.rng)
	p.endScale = e.config.EndScale.Random(e.rng)
	p.startAlpha = e.config.StartAlpha.Random(e.rng)
	p.endAlpha = e.config.EndAlpha.Random(e.rng)

	e.alive++
}

// progress returns how far through its life p is, eased out so effects
// fade quickly at first and linger at the tail.
func (p *particle) progress() float64 {
	t := float32(1.0 - p.life/p.maxLife)
	return float64(ease.OutQuad(t, 0, 1, 1))
}

// draw renders every alive particle as a tinted square.
func (e *ParticleEmitter) draw(target *ebiten.Image, n *Node, view [6]float64) {
	world := multiplyAffine(view, n.worldTransform)
	var op ebiten.DrawImageOptions
	op.Blend = n.BlendMode.EbitenBlend()
	for i := 0; i < e.alive; i++ {
		p := &e.particles[i]
		t := p.progress()
		scale := lerp(p.startScale, p.endScale, t) * e.size
		alpha := lerp(p.startAlpha, p.endAlpha, t) * n.worldAlpha
		c := Color{
			R: lerp(e.config.StartColor.R, e.config.EndColor.R, t),
			G: lerp(e.config.StartColor.G, e.config.EndColor.G, t),
			B: lerp(e.config.StartColor.B, e.config.EndColor.B, t),
			A: alpha,
		}
		sx, sy := transformPoint(world, p.x, p.y)
		op.GeoM.Reset()
		op.GeoM.Translate(-0.5, -0.5)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(sx, sy)
		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(c.toRGBA())
		target.DrawImage(WhitePixel, &op)
	}
}

// updateParticles walks the tree and advances every emitter. Finished
// emitters are collected into done so the caller can remove them.
func updateParticles(n *Node, dt float64, done []*Node) []*Node {
	if n.Emitter != nil {
		n.Emitter.update(dt)
		if n.Emitter.Finished() {
			done = append(done, n)
		}
	}
	for _, child := range n.children {
		done = updateParticles(child, dt, done)
	}
	return done
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Random returns a random float64 in [Min, Max]. A nil r uses the global source.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	var f float64
	if rng != nil {
		f = rng.Float64()
	} else {
		f = rand.Float64()
	}
	return r.Min + f*(r.Max-r.Min)
}
