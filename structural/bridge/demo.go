package bridge

import (
	"fmt"
	"io"
)

// Demo runs the bridge demonstration: the same remote abstraction drives two
// different devices, and the advanced remote adds mute over either one.
func Demo(w io.Writer) error {
	// A basic remote over a TV.
	tv := NewRemote(NewTV())
	tv.TogglePower()
	tv.VolumeUp()
	if _, err := fmt.Fprintln(w, tv.Status()); err != nil {
		return err
	}

	// The same abstraction over a radio, untouched by the device swap.
	radio := NewRemote(NewRadio())
	radio.TogglePower()
	radio.VolumeDown()
	if _, err := fmt.Fprintln(w, radio.Status()); err != nil {
		return err
	}

	// The advanced remote extends the abstraction without new devices.
	adv := NewAdvancedRemote(NewTV())
	adv.TogglePower()
	adv.VolumeUp()
	adv.Mute()
	if _, err := fmt.Fprintf(w, "muted   %s\n", adv.Status()); err != nil {
		return err
	}
	adv.Unmute()
	if _, err := fmt.Fprintf(w, "unmuted %s\n", adv.Status()); err != nil {
		return err
	}
	return nil
}
