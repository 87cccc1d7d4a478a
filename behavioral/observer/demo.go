package observer

import (
	"fmt"
	"io"
)

// Demo runs the observer demonstration: two displays and a structured logger
// follow the station; one display is detached mid-sequence and misses the
// final reading.
func Demo(w io.Writer) error {
	station := NewWeatherStation()

	print := func(format string, args ...any) { fmt.Fprintf(w, format, args...) }
	lobby := NewDisplay("lobby", print)
	roof := NewDisplay("roof", print)

	logger := NewTranscriptLogger(w)
	defer func() { _ = logger.Sync() }()

	station.Attach(lobby)
	station.Attach(roof)
	station.Attach(NewLoggingObserver(logger))

	// Attaching lobby a second time must not double its notifications.
	station.Attach(lobby)

	station.SetReading(Reading{TemperatureC: 21.5, Humidity: 40})

	station.Detach(roof)
	fmt.Fprintln(w, "-- roof display detached --")

	station.SetReading(Reading{TemperatureC: 19.0, Humidity: 55})
	return nil
}
