package encode

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// GenerateFilename creates a filename from track metadata.
// This is a pure function: (performer, album, track, title) → filename
//
// Format: Performer-Album-NN-Title.mp3
//
// Character handling:
// - Non-ASCII → normalized to ASCII equivalents (ō→o, é→e)
// - Spaces, / and \ and shell metacharacters → underscores
// - Quotes (' " `) → removed
// - Runs of underscores collapse, leading/trailing ones are trimmed
func GenerateFilename(performer, album string, track int, title string) string {
	return joinName(sanitize(performer), sanitize(album), fmt.Sprintf("%02d", track), sanitize(title))
}

// GenerateCompilationFilename creates a filename for a track whose performer
// differs from the disc's.
//
// Format: Album-NN-Performer-Title.mp3
func GenerateCompilationFilename(album string, track int, performer, title string) string {
	return joinName(sanitize(album), fmt.Sprintf("%02d", track), sanitize(performer), sanitize(title))
}

// TrackFilename picks the filename layout for meta. Untitled tracks are
// named "Track_NN".
func TrackFilename(meta TrackMeta) string {
	title := meta.Title
	if title == "" {
		title = fmt.Sprintf("Track %02d", meta.TrackNum)
	}
	if meta.Compilation {
		return GenerateCompilationFilename(meta.Album, meta.TrackNum, meta.Artist, title)
	}
	return GenerateFilename(meta.Artist, meta.Album, meta.TrackNum, title)
}

// joinName drops empty components so missing CD-TEXT fields do not leave
// doubled separators.
func joinName(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "-") + ".mp3"
}

const (
	removed  = "'\"`"
	replaced = " /\\$!*?[](){}<>|&;"
)

// sanitize prepares a string for use in a filename that needs no shell
// quoting.
func sanitize(s string) string {
	s = normalizeToASCII(s)

	var b strings.Builder
	b.Grow(len(s))

	lastWasUnderscore := false
	for _, r := range s {
		switch {
		case strings.ContainsRune(removed, r):
		case strings.ContainsRune(replaced, r) || r == '_' || unicode.IsControl(r):
			if !lastWasUnderscore {
				b.WriteByte('_')
				lastWasUnderscore = true
			}
		default:
			b.WriteRune(r)
			lastWasUnderscore = false
		}
	}

	return strings.Trim(b.String(), "_")
}

// normalizeToASCII converts non-ASCII characters to their ASCII equivalents.
// NFKD decomposes characters (ō→o, é→e), marks are dropped, and anything
// still outside ASCII is stripped.
func normalizeToASCII(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	result, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return result
}
