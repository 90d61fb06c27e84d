package cdda

import (
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"strings"
)

// musicBrainzEncoding is standard base64 with the MusicBrainz URL-safe
// substitutions: + → . , / → _ and padding = → -
var musicBrainzEncoding = base64.NewEncoding(
	"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789._").WithPadding('-')

// dataSessionGap is the gap, in frames, between the end of the audio session
// and the start of the data session on an Enhanced CD (lead-out 6750 +
// lead-in 4500 + pregap 150).
const dataSessionGap = 11400

// MusicBrainzID computes the MusicBrainz disc ID from a Full TOC.
// This is a pure function: FullTOC → 28-char disc ID string.
//
// Algorithm:
// 1. Format track data as hex ASCII string
// 2. SHA-1 hash the string
// 3. Base64 encode with MusicBrainz URL-safe substitutions
//
// On multi-session discs only the audio session counts: the last session is
// assumed to hold a single data track, and the audio lead-out is derived from
// its start.
func MusicBrainzID(toc *FullTOC) string {
	first := toc.FirstTrack().Number

	last := toc.LastTrack().Number
	leadout := toc.FirstSession().Leadout.LBA()
	if len(toc.Sessions) > 1 {
		// ParseFullTOC guarantees the data track; a hand-built TOC without
		// it falls back to the audio session's own lead-out.
		if dataTrack, ok := toc.Track(toc.LastSession().FirstTrack); ok {
			leadout = dataTrack.Address.LBA() - dataSessionGap
			last = toc.LastTrack().Number - 1
		} else {
			last = toc.FirstSession().LastTrack
		}
	}

	// Format: "%02X%02X" + "%08X" * 100
	// - First track number (1 byte as 2 hex chars)
	// - Last track number (1 byte as 2 hex chars)
	// - 100 offsets as 8 hex chars each:
	//   - Index 0: leadout offset
	//   - Index 1-99: track offsets (0 for unused)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%02X%02X", first, last)
	fmt.Fprintf(&sb, "%08X", leadout+MSFOffset)

	for n := 1; n <= 99; n++ {
		offset := 0
		if n <= last {
			if track, ok := toc.Track(n); ok {
				offset = track.Address.LBA() + MSFOffset
			}
		}
		fmt.Fprintf(&sb, "%08X", offset)
	}

	hash := sha1.Sum([]byte(sb.String()))
	return musicBrainzEncoding.EncodeToString(hash[:])
}
