package pegdrop

import (
	"fmt"
	"os"
)

// debugf prints a diagnostic line to stderr in debug mode.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[pegdrop] "+format+"\n", args...)
}

// debugLog prints scene counters to stderr, once per simulated second.
func (s *Scene) debugLog() {
	particles := 0
	for _, n := range s.world.Children() {
		if n.Emitter != nil {
			particles += n.Emitter.AliveCount()
		}
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[pegdrop] frame: %d | objects: %d | bodies: %d | particles: %d | camera y: %.1f | height: %.1f\n",
		s.frame, len(s.objects), s.physics.BodyCount(), particles, s.camera.Y, s.size.Y)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("pegdrop debug: %s on disposed node %q", op, n.Name))
	}
}
