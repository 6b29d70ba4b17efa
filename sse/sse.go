// Package sse decodes Server-Sent Events from a streaming response body.
package sse

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Event is a single decoded server-sent event.
type Event struct {
	// ID is the event ID, from the "id:" field.
	ID string
	// Type is the event type, from the "event:" field. Empty for data-only
	// events.
	Type string
	// Data is the event payload. Multi-line data fields are joined with
	// newlines.
	Data string
	// Retry is the reconnection delay in milliseconds, from the "retry:"
	// field. Zero when absent.
	Retry int
}

// Decoder reads events from a stream. It does not own the stream; the caller
// releases it.
type Decoder struct {
	scanner *bufio.Scanner
}

// NewDecoder creates a decoder over a streaming body.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4*1024), 1024*1024)
	return &Decoder{scanner: sc}
}

// Next returns the next event. It returns io.EOF when the stream ends.
func (d *Decoder) Next() (Event, error) {
	var ev Event
	var dataSeen bool

	for d.scanner.Scan() {
		line := d.scanner.Text()

		// Blank line dispatches the accumulated event.
		if line == "" {
			if dataSeen {
				return ev, nil
			}
			continue
		}
		// Comment lines keep the connection alive; skip them.
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value := splitField(line)
		switch field {
		case "data":
			if dataSeen {
				ev.Data += "\n" + value
			} else {
				ev.Data = value
				dataSeen = true
			}
		case "event":
			ev.Type = value
		case "id":
			ev.ID = value
		case "retry":
			if ms, err := strconv.Atoi(value); err == nil {
				ev.Retry = ms
			}
		}
	}

	if err := d.scanner.Err(); err != nil {
		return Event{}, err
	}
	if dataSeen {
		// Stream ended without a trailing blank line.
		return ev, nil
	}
	return Event{}, io.EOF
}

// splitField splits an SSE line into field name and value, stripping the
// single optional space after the colon.
func splitField(line string) (string, string) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return line, ""
	}
	field, value := line[:idx], line[idx+1:]
	if value != "" && value[0] == ' ' {
		value = value[1:]
	}
	return field, value
}
