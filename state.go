package pegdrop

import "strconv"

// SceneState is the mutable game state of a scene. Each field has a single
// writer: EditingMode is flipped by touch routing, CameraYOffset is set by
// UpdateBackgroundPosition, and Score changes only through AddScore.
type SceneState struct {
	Score         int
	EditingMode   bool
	CameraYOffset float64
}

// ScoreText is the score label content for score.
func ScoreText(score int) string {
	return "Score: " + strconv.Itoa(score)
}

// EditText is the edit label content for the given mode.
func EditText(editing bool) string {
	if editing {
		return "Done"
	}
	return "Edit"
}

// State returns a copy of the scene state.
func (s *Scene) State() SceneState {
	return s.state
}

// AddScore adjusts the score by delta, never going below zero.
func (s *Scene) AddScore(delta int) {
	s.state.Score += delta
	if s.state.Score < 0 {
		s.state.Score = 0
	}
	s.render()
}

// SetEditingMode switches between placing obstacles and dropping balls.
func (s *Scene) SetEditingMode(editing bool) {
	s.state.EditingMode = editing
	s.render()
}

// UpdateBackgroundPosition sets the externally driven vertical offset. The
// background and scene extents follow it on the next post-physics pass.
func (s *Scene) UpdateBackgroundPosition(yOffset float64) {
	s.state.CameraYOffset = yOffset
}

// render projects state onto the labels. Called after every state mutation
// so label text is never stale.
func (s *Scene) render() {
	s.scoreLabel.SetText(ScoreText(s.state.Score))
	s.editLabel.SetText(EditText(s.state.EditingMode))
	s.editLabel.HitShape = editTouchTarget(s.editLabel)
}

// editTouchTarget pads the edit label's footprint so a touch near the
// text still toggles. Recomputed whenever the label text changes width.
func editTouchTarget(label *Node) HitRect {
	return HitRect{
		X:      -editTouchPadding,
		Y:      -editTouchPadding,
		Width:  label.Width + 2*editTouchPadding,
		Height: label.Height + 2*editTouchPadding,
	}
}
