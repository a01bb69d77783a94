// Package sway implements a damped-harmonic spring integrator for
// smooth scalar animation.
//
// sway advances a spring toward its target one time step at a time
// using semi-implicit Euler integration. The caller owns the animation
// loop and supplies the elapsed milliseconds per frame; sway owns the
// physics.
//
// Basic usage:
//
//	cfg := sway.NewConfig(170, 26)
//	s := sway.New(0, 100)
//
//	for !s.AtRest() {
//	    s = s.Update(cfg, sway.FPS(60))
//	    render(s.Value())
//	}
//
// Config and Spring are immutable values: every operation returns a
// fresh value and never mutates its input, so snapshots may be shared
// freely across goroutines.
package sway
