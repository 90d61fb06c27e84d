package cdda

import (
	"encoding/binary"
	"sort"

	"github.com/go-logr/logr"

	"github.com/binaryphile/cdtoc/internal/logging"
)

// RawEntry is one 11-byte Full TOC descriptor, kept verbatim so the TOC can
// be re-encoded byte for byte.
type RawEntry struct {
	Session byte
	ADR     byte // upper nibble of byte 1
	Ctrl    byte // lower nibble of byte 1
	TNO     byte
	Point   byte
	Min     byte
	Sec     byte
	Frame   byte
	Zero    byte
	PMin    byte
	PSec    byte
	PFrame  byte
}

// Address returns the entry's min/sec/frame field.
func (e RawEntry) Address() Address {
	return AddressFromMSF(int(e.Min), int(e.Sec), int(e.Frame))
}

// PAddress returns the entry's pmin/psec/pframe field.
func (e RawEntry) PAddress() Address {
	return AddressFromMSF(int(e.PMin), int(e.PSec), int(e.PFrame))
}

func parseRawEntry(b []byte) RawEntry {
	return RawEntry{
		Session: b[0],
		ADR:     b[1] >> 4,
		Ctrl:    b[1] & 0x0F,
		TNO:     b[2],
		Point:   b[3],
		Min:     b[4],
		Sec:     b[5],
		Frame:   b[6],
		Zero:    b[7],
		PMin:    b[8],
		PSec:    b[9],
		PFrame:  b[10],
	}
}

func (e RawEntry) appendTo(buf []byte) []byte {
	return append(buf,
		e.Session, e.ADR<<4|e.Ctrl&0x0F, e.TNO, e.Point,
		e.Min, e.Sec, e.Frame, e.Zero,
		e.PMin, e.PSec, e.PFrame)
}

// Session describes one recorded session of the disc.
type Session struct {
	Number     int
	FirstTrack int
	LastTrack  int
	Leadout    Address
	DiscType   byte
}

// Track is a track from the Full TOC.
type Track struct {
	Number     int
	Session    int // number of the owning session
	Ctrl       byte
	Address    Address
	EndAddress Address // exclusive
}

// IsData reports whether the track holds data rather than audio.
func (t Track) IsData() bool { return t.Ctrl&CtrlDataTrack != 0 }

// IsAudio reports whether the track is an audio track.
func (t Track) IsAudio() bool { return !t.IsData() }

// FourChannel reports whether an audio track has four channels.
func (t Track) FourChannel() bool { return t.Ctrl&CtrlFourChannel != 0 }

// CopyPermitted reports whether the digital copy bit is set.
func (t Track) CopyPermitted() bool { return t.Ctrl&CtrlCopyPermitted != 0 }

// PreEmphasis reports whether an audio track was recorded with pre-emphasis.
func (t Track) PreEmphasis() bool { return t.Ctrl&CtrlPreEmphasis != 0 }

// Length returns the track length in frames.
func (t Track) Length() int {
	return t.EndAddress.LBA() - t.Address.LBA()
}

// FullTOC is the decoded result of READ TOC/PMA/ATIP format 2.
// A FullTOC returned by ParseFullTOC is never modified afterwards.
type FullTOC struct {
	Entries  []RawEntry // in buffer order
	Sessions []Session  // sorted by number, consecutive from 1
	Tracks   []Track    // sorted by number, consecutive
}

// Session returns the session with the given number.
func (t *FullTOC) Session(number int) (Session, bool) {
	if number < 1 || number > len(t.Sessions) {
		return Session{}, false
	}
	return t.Sessions[number-1], true
}

// Track returns the track with the given number.
func (t *FullTOC) Track(number int) (Track, bool) {
	if len(t.Tracks) == 0 {
		return Track{}, false
	}
	i := number - t.Tracks[0].Number
	if i < 0 || i >= len(t.Tracks) {
		return Track{}, false
	}
	return t.Tracks[i], true
}

// FirstSession returns session 1. Like LastSession, FirstTrack and
// LastTrack it panics on an empty TOC, which ParseFullTOC never returns.
func (t *FullTOC) FirstSession() Session { return t.Sessions[0] }

// LastSession returns the highest numbered session.
func (t *FullTOC) LastSession() Session { return t.Sessions[len(t.Sessions)-1] }

// FirstTrack returns the lowest numbered track.
func (t *FullTOC) FirstTrack() Track { return t.Tracks[0] }

// LastTrack returns the highest numbered track, the data track on an Enhanced CD.
func (t *FullTOC) LastTrack() Track { return t.Tracks[len(t.Tracks)-1] }

// Bytes encodes the TOC back into READ TOC format 2 layout. For a FullTOC
// produced by ParseFullTOC the result equals the decoded buffer.
//
// The header's first and last session come from Sessions, not from the
// session bytes of Entries. ParseFullTOC has already matched the header
// against Sessions, while ignored entries (skip intervals, unknown points)
// may carry any session byte.
func (t *FullTOC) Bytes() []byte {
	buf := make([]byte, 4, 4+fullTOCEntrySize*len(t.Entries))
	binary.BigEndian.PutUint16(buf[0:2], uint16(2+fullTOCEntrySize*len(t.Entries)))
	if len(t.Sessions) > 0 {
		buf[2] = byte(t.FirstSession().Number)
		buf[3] = byte(t.LastSession().Number)
	}
	for _, e := range t.Entries {
		buf = e.appendTo(buf)
	}
	return buf
}

// Option configures decoding.
type Option func(*options)

type options struct {
	log logr.Logger
}

// WithLogger sets the logger that receives debug output about ignored entries.
func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// sessionState accumulates the A0/A1/A2 entries of one session.
type sessionState struct {
	Session
	haveFirst, haveLast, haveLeadout bool
}

type entryKey struct {
	session byte
	point   byte
}

// ParseFullTOC decodes the response of READ TOC/PMA/ATIP with format 2.
//
// Layout: u16 length (big-endian, counts bytes after itself), first session,
// last session, then 11-byte entries. The whole buffer must be consumed.
// This is a pure function; every structural violation returns an error
// wrapping ErrMalformedTOC.
func ParseFullTOC(buf []byte, opts ...Option) (*FullTOC, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	log := logging.New(o.log).WithName("fulltoc")

	if len(buf) < 4 {
		return nil, malformed("full TOC too short: %d bytes, need at least 4", len(buf))
	}

	dataLen := int(binary.BigEndian.Uint16(buf[0:2]))
	firstSession := int(buf[2])
	lastSession := int(buf[3])

	end := dataLen + 2
	switch {
	case dataLen < 2:
		return nil, malformed("full TOC length %d too small", dataLen)
	case end > len(buf):
		return nil, malformed("full TOC length %d exceeds buffer of %d bytes", dataLen, len(buf))
	case end < len(buf):
		return nil, malformed("%d trailing bytes after full TOC data", len(buf)-end)
	case (end-4)%fullTOCEntrySize != 0:
		return nil, malformed("full TOC length %d does not end on an entry boundary: %d bytes left over",
			dataLen, (end-4)%fullTOCEntrySize)
	}

	toc := &FullTOC{}
	sessions := make(map[int]*sessionState)
	tracks := make(map[int]Track)
	seen := make(map[entryKey]bool)

	for offset := 4; offset+fullTOCEntrySize <= end; offset += fullTOCEntrySize {
		e := parseRawEntry(buf[offset : offset+fullTOCEntrySize])
		toc.Entries = append(toc.Entries, e)

		if e.ADR != ADRPosition || !isPositionPoint(e.Point) {
			// Skip intervals (ADR 5) and anything unrecognised carry nothing
			// we need.
			log.Debug("ignoring TOC entry", "session", e.Session, "adr", e.ADR, "point", e.Point)
			continue
		}

		key := entryKey{e.Session, e.Point}
		if seen[key] {
			return nil, malformed("duplicate TOC entry: session=%d, point=%#x", e.Session, e.Point)
		}
		seen[key] = true

		if e.Point <= 99 {
			number := int(e.Point)
			if _, dup := tracks[number]; dup {
				return nil, malformed("duplicate TOC entry for track %d in session %d", number, e.Session)
			}
			tracks[number] = Track{
				Number:  number,
				Session: int(e.Session),
				Ctrl:    e.Ctrl,
				Address: e.PAddress(),
			}
			continue
		}

		s := sessions[int(e.Session)]
		if s == nil {
			s = &sessionState{Session: Session{Number: int(e.Session)}}
			sessions[int(e.Session)] = s
		}
		switch e.Point {
		case PointFirstTrack:
			s.FirstTrack = int(e.PMin)
			s.DiscType = e.PSec
			s.haveFirst = true
		case PointLastTrack:
			s.LastTrack = int(e.PMin)
			s.haveLast = true
		case PointLeadout:
			s.Leadout = e.PAddress()
			s.haveLeadout = true
		}
	}

	var err error
	if toc.Sessions, err = buildSessions(sessions, firstSession, lastSession); err != nil {
		return nil, err
	}
	if toc.Tracks, err = buildTracks(tracks, toc.Sessions); err != nil {
		return nil, err
	}

	log.Debug("decoded full TOC", "sessions", len(toc.Sessions), "tracks", len(toc.Tracks),
		"entries", len(toc.Entries))
	return toc, nil
}

func isPositionPoint(point byte) bool {
	return (point >= 1 && point <= 99) ||
		point == PointFirstTrack || point == PointLastTrack || point == PointLeadout
}

func buildSessions(states map[int]*sessionState, first, last int) ([]Session, error) {
	if len(states) == 0 {
		return nil, malformed("full TOC contains no sessions")
	}

	numbers := make([]int, 0, len(states))
	for n := range states {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	sessions := make([]Session, 0, len(numbers))
	for i, n := range numbers {
		if n != i+1 {
			return nil, malformed("TOC has non-consecutive sessions: expected session %d next, found %d", i+1, n)
		}

		s := states[n]
		switch {
		case !s.haveFirst:
			return nil, malformed("missing first track number for session %d", n)
		case !s.haveLast:
			return nil, malformed("missing last track number for session %d", n)
		case !s.haveLeadout:
			return nil, malformed("missing leadout address for session %d", n)
		}
		sessions = append(sessions, s.Session)
	}

	if first != sessions[0].Number {
		return nil, malformed("invalid first session number in TOC: value is %d, actual first session is %d",
			first, sessions[0].Number)
	}
	if last != sessions[len(sessions)-1].Number {
		return nil, malformed("invalid last session number in TOC: value is %d, actual last session is %d",
			last, sessions[len(sessions)-1].Number)
	}
	return sessions, nil
}

func buildTracks(byNumber map[int]Track, sessions []Session) ([]Track, error) {
	if len(byNumber) == 0 {
		return nil, malformed("full TOC contains no tracks")
	}
	for _, s := range sessions {
		for _, n := range []int{s.FirstTrack, s.LastTrack} {
			t, ok := byNumber[n]
			if !ok {
				return nil, malformed("session %d declares track %d, which has no TOC entry", s.Number, n)
			}
			if t.Session != s.Number {
				return nil, malformed("session %d declares track %d, which belongs to session %d",
					s.Number, n, t.Session)
			}
		}
	}

	tracks := make([]Track, 0, len(byNumber))
	for _, t := range byNumber {
		tracks = append(tracks, t)
	}
	sort.Slice(tracks, func(i, j int) bool { return tracks[i].Number < tracks[j].Number })

	// Tracks are numbered consecutively, but the first track may be
	// numbered higher than 1 (MMC section 3.1).
	expected := sessions[0].FirstTrack
	for i := range tracks {
		t := &tracks[i]
		if t.Number != expected {
			return nil, malformed("TOC has non-consecutive tracks: expected track %d next, found %d",
				expected, t.Number)
		}
		expected++

		if t.Session < 1 || t.Session > len(sessions) {
			return nil, malformed("track %d belongs to unknown session %d", t.Number, t.Session)
		}
		session := sessions[t.Session-1]

		// Consecutive numbering makes the next slice element the next
		// physical track.
		switch {
		case t.Number == session.LastTrack:
			t.EndAddress = session.Leadout
		case i+1 < len(tracks):
			t.EndAddress = tracks[i+1].Address
		default:
			return nil, malformed("track %d is not the last track of session %d but no track follows it",
				t.Number, session.Number)
		}
	}
	return tracks, nil
}
