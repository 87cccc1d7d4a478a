// Package bridge demonstrates the Bridge pattern with a remote-control
// domain.
//
// The abstraction (a remote control) and the implementation (a device) vary
// independently: any remote drives any device through the small Device
// interface. Adding a new device never touches the remotes, and a richer
// remote never touches the devices.
package bridge

import "fmt"

// Device is the implementation side of the bridge. Remotes only ever speak
// this interface.
type Device interface {
	// Name identifies the device in transcripts.
	Name() string

	// Enabled reports whether the device is powered on.
	Enabled() bool

	// Enable powers the device on; Disable powers it off.
	Enable()
	Disable()

	// Volume returns the current volume in the range 0..100.
	Volume() int

	// SetVolume clamps v into 0..100 and applies it.
	SetVolume(v int)
}

// TV is a concrete device.
type TV struct {
	on  bool
	vol int
}

// NewTV returns a TV that is off with a default volume of 30.
func NewTV() *TV { return &TV{vol: 30} }

func (t *TV) Name() string  { return "tv" }
func (t *TV) Enabled() bool { return t.on }
func (t *TV) Enable()       { t.on = true }
func (t *TV) Disable()      { t.on = false }
func (t *TV) Volume() int   { return t.vol }

func (t *TV) SetVolume(v int) { t.vol = clampVolume(v) }

// Radio is a concrete device with a different default than the TV.
type Radio struct {
	on  bool
	vol int
}

// NewRadio returns a radio that is off with a default volume of 20.
func NewRadio() *Radio { return &Radio{vol: 20} }

func (r *Radio) Name() string  { return "radio" }
func (r *Radio) Enabled() bool { return r.on }
func (r *Radio) Enable()       { r.on = true }
func (r *Radio) Disable()      { r.on = false }
func (r *Radio) Volume() int   { return r.vol }

func (r *Radio) SetVolume(v int) { r.vol = clampVolume(v) }

// clampVolume bounds v to the valid 0..100 range shared by all devices.
func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Remote is the abstraction side of the bridge: a basic remote holding a
// Device reference. It adds behavior (toggle, stepped volume) on top of the
// primitive Device operations.
type Remote struct {
	device Device
}

// NewRemote pairs a basic remote with the given device.
func NewRemote(d Device) *Remote {
	return &Remote{device: d}
}

// Device exposes the paired device, mainly for demos and tests.
func (r *Remote) Device() Device { return r.device }

// TogglePower flips the device's power state.
func (r *Remote) TogglePower() {
	if r.device.Enabled() {
		r.device.Disable()
		return
	}
	r.device.Enable()
}

// VolumeUp raises the volume by 10, clamped by the device.
func (r *Remote) VolumeUp() {
	r.device.SetVolume(r.device.Volume() + 10)
}

// VolumeDown lowers the volume by 10, clamped by the device.
func (r *Remote) VolumeDown() {
	r.device.SetVolume(r.device.Volume() - 10)
}

// Status renders a one-line device status for transcripts.
func (r *Remote) Status() string {
	state := "off"
	if r.device.Enabled() {
		state = "on"
	}
	return fmt.Sprintf("%s: power=%s volume=%d", r.device.Name(), state, r.device.Volume())
}

// AdvancedRemote extends the basic remote by composition, not subclassing:
// it embeds Remote and adds mute with restore. The embedded remote keeps
// working against whatever device it was constructed with.
type AdvancedRemote struct {
	Remote

	// lastVolume remembers the volume before a Mute so Unmute can restore it.
	lastVolume int
}

// NewAdvancedRemote pairs an advanced remote with the given device.
func NewAdvancedRemote(d Device) *AdvancedRemote {
	return &AdvancedRemote{Remote: Remote{device: d}}
}

// Mute drops the volume to zero, remembering the previous level.
func (r *AdvancedRemote) Mute() {
	r.lastVolume = r.device.Volume()
	r.device.SetVolume(0)
}

// Unmute restores the volume saved by the last Mute. Unmute without a prior
// Mute leaves the device at volume zero only if it already was.
func (r *AdvancedRemote) Unmute() {
	r.device.SetVolume(r.lastVolume)
}
