// File: led.go
// Title: Demo LED
// Description: An LED with an enumerated state and a snapshot image.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package demo

import (
	"image"
	"image/color"

	"github.com/msto63/devmon/foundation/monitor/coerce"
)

// LEDState is the state of an LED
type LEDState int

const (
	LEDOff LEDState = iota
	LEDOn
	LEDBlinking
)

// EnumValues implements coerce.Enum
func (LEDState) EnumValues() []coerce.EnumValue {
	return []coerce.EnumValue{
		{Name: "Off", Value: int64(LEDOff)},
		{Name: "On", Value: int64(LEDOn)},
		{Name: "Blinking", Value: int64(LEDBlinking)},
	}
}

// LED is a GPIO-driven light
type LED struct {
	state   LEDState
	toggles int
}

// Kind implements Peripheral
func (l *LED) Kind() string { return "led" }

// Reset switches the LED off
func (l *LED) Reset() { l.state, l.toggles = LEDOff, 0 }

// State returns the current state
func (l *LED) State() LEDState { return l.state }

// SetState changes the state
func (l *LED) SetState(s LEDState) { l.state = s }

// Toggle flips between on and off and returns the new state
func (l *LED) Toggle() LEDState {
	if l.state == LEDOn {
		l.state = LEDOff
	} else {
		l.state = LEDOn
	}
	l.toggles++
	return l.state
}

// Toggles returns how often Toggle ran
func (l *LED) Toggles() int { return l.toggles }

// Snapshot renders the LED as a small image
func (l *LED) Snapshot() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	c := color.RGBA{A: 0xFF}
	if l.state != LEDOff {
		c.G = 0xFF
	}
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}
