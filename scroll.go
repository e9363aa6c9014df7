package pegdrop

// didSimulatePhysics is the post-physics pass. The camera and edit label
// advance by the same step so the label stays put on screen, then the scene
// extents and background follow CameraYOffset. The camera scroll and
// CameraYOffset are independent: the camera drifts every tick while the
// background only moves when UpdateBackgroundPosition is called.
func (s *Scene) didSimulatePhysics() {
	step := s.cfg.ScrollStep
	s.camera.Y += step
	s.editLabel.SetPosition(s.editLabel.X, s.editLabel.Y+step)

	offset := s.state.CameraYOffset
	s.size.Y = s.originalHeight + offset
	s.background.SetPosition(s.background.X, s.cfg.BackgroundBaseY+offset)
	s.physics.SetBounds(Rect{Width: s.size.X, Height: s.size.Y})
}
