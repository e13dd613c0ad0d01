// Package cache implements the PSAP binary timeline format and a
// content-addressed file cache keyed by the SHA-1 of the source chart
// text, so identical charts skip re-planning.
package cache

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/qwe28256/phiauto/internal/geometry"
	"github.com/qwe28256/phiauto/internal/touch"
)

var magic = [4]byte{'P', 'S', 'A', 'P'}

// ErrCacheCorrupt is returned by Load when the magic is missing or a
// record is truncated mid-event.
var ErrCacheCorrupt = errors.New("cache: corrupt data")

// Screen is the logical resolution a dumped timeline was planned
// against.
type Screen struct {
	Width, Height uint32
}

// Dump serializes screen and frames into the flat PSAP binary format:
// a 4-byte magic, the screen resolution, then one record per frame
// (ts int32, event count uint8, events as 21-byte fixed records).
func Dump(screen Screen, frames []touch.Frame) []byte {
	var buf bytes.Buffer
	buf.Write(magic[:])

	var header [8]byte
	binary.BigEndian.PutUint32(header[0:4], screen.Width)
	binary.BigEndian.PutUint32(header[4:8], screen.Height)
	buf.Write(header[:])

	for _, frame := range frames {
		var rec [5]byte
		binary.BigEndian.PutUint32(rec[0:4], uint32(frame.TimeMs))
		rec[4] = byte(len(frame.Events))
		buf.Write(rec[:])

		for _, ev := range frame.Events {
			buf.Write(encodeEvent(ev))
		}
	}

	return buf.Bytes()
}

const eventSize = 1 + 4 + 8 + 8

func encodeEvent(ev touch.Event) []byte {
	var b [eventSize]byte
	b[0] = byte(ev.Action)
	binary.BigEndian.PutUint32(b[1:5], ev.PointerID)
	binary.BigEndian.PutUint64(b[5:13], math.Float64bits(ev.Pos.X))
	binary.BigEndian.PutUint64(b[13:21], math.Float64bits(ev.Pos.Y))
	return b[:]
}

func decodeEvent(b []byte) touch.Event {
	return touch.Event{
		Action:    touch.Action(b[0]),
		PointerID: binary.BigEndian.Uint32(b[1:5]),
		Pos: geometry.Vec2{
			X: math.Float64frombits(binary.BigEndian.Uint64(b[5:13])),
			Y: math.Float64frombits(binary.BigEndian.Uint64(b[13:21])),
		},
	}
}

// Load parses the PSAP format produced by Dump. EOF at a record
// boundary is normal termination; EOF mid-record is ErrCacheCorrupt.
func Load(data []byte) (Screen, []touch.Frame, error) {
	r := bytes.NewReader(data)

	var gotMagic [4]byte
	if n, _ := io.ReadFull(r, gotMagic[:]); n < 4 || gotMagic != magic {
		return Screen{}, nil, fmt.Errorf("%w: missing magic", ErrCacheCorrupt)
	}

	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Screen{}, nil, fmt.Errorf("%w: truncated header", ErrCacheCorrupt)
	}
	screen := Screen{
		Width:  binary.BigEndian.Uint32(header[0:4]),
		Height: binary.BigEndian.Uint32(header[4:8]),
	}

	var frames []touch.Frame
	for {
		var rec [5]byte
		n, err := io.ReadFull(r, rec[:])
		if err == io.EOF && n == 0 {
			break
		}
		if err != nil {
			return Screen{}, nil, fmt.Errorf("%w: truncated record header", ErrCacheCorrupt)
		}

		ts := int32(binary.BigEndian.Uint32(rec[0:4]))
		count := int(rec[4])

		events := make([]touch.Event, count)
		for i := 0; i < count; i++ {
			var eb [eventSize]byte
			if _, err := io.ReadFull(r, eb[:]); err != nil {
				return Screen{}, nil, fmt.Errorf("%w: truncated event", ErrCacheCorrupt)
			}
			events[i] = decodeEvent(eb[:])
		}

		frames = append(frames, touch.Frame{TimeMs: ts, Events: events})
	}

	return screen, frames, nil
}
