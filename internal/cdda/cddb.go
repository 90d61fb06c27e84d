package cdda

import (
	"fmt"
	"strings"
)

// CDDBID computes the freedb/CDDB disc ID from a Full TOC.
// This is a pure function.
//
// Layout: checksum%255 in the top byte, total playing seconds in the middle
// 16 bits and the track count in the low byte. The checksum is the sum of the
// decimal digits of each track's start time in whole seconds.
func CDDBID(toc *FullTOC) uint32 {
	checksum := 0
	for _, offset := range TrackOffsets(toc) {
		for secs := offset / FramesPerSecond; secs > 0; secs /= 10 {
			checksum += secs % 10
		}
	}

	total := TotalTrackLength(toc)
	return uint32(checksum%0xFF)<<24 | uint32(total)<<8 | uint32(len(toc.Tracks))
}

// TrackOffsets returns the CDDB offset (LBA + 150) of every track.
func TrackOffsets(toc *FullTOC) []int {
	offsets := make([]int, len(toc.Tracks))
	for i, t := range toc.Tracks {
		offsets[i] = t.Address.LBA() + MSFOffset
	}
	return offsets
}

// DiscLength returns the number of seconds from the very start of the disc,
// including the 2 second pregap, to the lead-out of the last session.
// It is the trailing field of a CDDB query.
func DiscLength(toc *FullTOC) int {
	return (toc.LastSession().Leadout.LBA() + MSFOffset) / FramesPerSecond
}

// TotalTrackLength returns the seconds between the start of the first track
// and the last session's lead-out. On multi-session discs this includes the
// lead-in/lead-out areas between sessions.
func TotalTrackLength(toc *FullTOC) int {
	return floorDiv(toc.LastSession().Leadout.LBA(), FramesPerSecond) -
		floorDiv(toc.FirstTrack().Address.LBA(), FramesPerSecond)
}

// CDDBQuery formats the "cddb query" command sent to a CDDB server:
//
//	cddb query <discid> <ntrks> <off_1> ... <off_n> <nsecs>
func CDDBQuery(toc *FullTOC) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "cddb query %08x %d", CDDBID(toc), len(toc.Tracks))
	for _, offset := range TrackOffsets(toc) {
		fmt.Fprintf(&sb, " %d", offset)
	}
	fmt.Fprintf(&sb, " %d", DiscLength(toc))
	return sb.String()
}
