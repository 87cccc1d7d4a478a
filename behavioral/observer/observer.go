// Package observer demonstrates the Observer pattern with a weather-station
// domain.
//
// A WeatherStation is the subject: it holds the latest reading and a list of
// attached observers. Setting a new reading synchronously notifies every
// observer in attachment order. Attach is idempotent (attaching the same
// observer twice does not duplicate notifications) and Detach stops further
// deliveries to that observer without disturbing the others.
//
// Everything is single-threaded: notify is a plain loop, and there are no
// delivery guarantees beyond call order.
package observer

import "fmt"

// Reading is the state observers are notified about.
type Reading struct {
	// TemperatureC is the temperature in degrees Celsius.
	TemperatureC float64

	// Humidity is the relative humidity in percent.
	Humidity float64
}

// Observer receives readings pushed by the subject.
type Observer interface {
	// Update is called synchronously for each new reading.
	Update(r Reading)
}

// WeatherStation is the subject: current reading plus attached observers.
type WeatherStation struct {
	reading   Reading
	observers []Observer
}

// NewWeatherStation returns a station with no observers and a zero reading.
func NewWeatherStation() *WeatherStation {
	return &WeatherStation{}
}

// Reading returns the most recent reading.
func (s *WeatherStation) Reading() Reading { return s.reading }

// Observers returns the number of currently attached observers.
func (s *WeatherStation) Observers() int { return len(s.observers) }

// Attach registers o for future notifications. Attaching an observer that is
// already registered is a no-op, so no observer is ever notified twice for
// one reading.
func (s *WeatherStation) Attach(o Observer) {
	for _, existing := range s.observers {
		if existing == o {
			return
		}
	}
	s.observers = append(s.observers, o)
}

// Detach unregisters o. Detaching an unknown observer is a no-op. Attachment
// order of the remaining observers is preserved.
func (s *WeatherStation) Detach(o Observer) {
	for i, existing := range s.observers {
		if existing == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// SetReading stores the new reading and notifies every attached observer in
// attachment order.
func (s *WeatherStation) SetReading(r Reading) {
	s.reading = r
	for _, o := range s.observers {
		o.Update(r)
	}
}

// Display is a simple observer rendering readings as text lines through a
// print function, keeping the demo free of direct stdout writes.
type Display struct {
	name  string
	print func(format string, args ...any)
}

// NewDisplay creates a named display writing through print.
func NewDisplay(name string, print func(format string, args ...any)) *Display {
	return &Display{name: name, print: print}
}

// Update renders the reading on the display.
func (d *Display) Update(r Reading) {
	d.print("[%s] %.1f°C %.0f%% humidity\n", d.name, r.TemperatureC, r.Humidity)
}

// String identifies the display in error messages and logs.
func (d *Display) String() string { return fmt.Sprintf("display(%s)", d.name) }
