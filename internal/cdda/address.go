package cdda

import "fmt"

// Address is a sector address on the disc, stored as minute/second/frame.
//
// Components are not range checked: callers may build degenerate addresses
// (e.g. 00:00.00, which is LBA -150) for arithmetic purposes.
type Address struct {
	Min   int
	Sec   int
	Frame int
}

// AddressFromLBA converts a logical block address to an Address.
// LBA 0 is MSF 00:02.00.
func AddressFromLBA(lba int) Address {
	n := lba + MSFOffset
	return Address{
		Min:   floorDiv(n, FramesPerSecond*SecondsPerMinute),
		Sec:   floorMod(floorDiv(n, FramesPerSecond), SecondsPerMinute),
		Frame: floorMod(n, FramesPerSecond),
	}
}

// AddressFromMSF builds an Address from minute, second and frame values.
func AddressFromMSF(min, sec, frame int) Address {
	return Address{Min: min, Sec: sec, Frame: frame}
}

// LBA returns the logical block address.
func (a Address) LBA() int {
	return (a.Min*SecondsPerMinute+a.Sec)*FramesPerSecond + a.Frame - MSFOffset
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal
// to, or after b. Ordering is lexicographic on (Min, Sec, Frame).
func (a Address) Compare(b Address) int {
	switch {
	case a.Min != b.Min:
		return sign(a.Min - b.Min)
	case a.Sec != b.Sec:
		return sign(a.Sec - b.Sec)
	default:
		return sign(a.Frame - b.Frame)
	}
}

// Less reports whether a sorts before b.
func (a Address) Less(b Address) bool {
	return a.Compare(b) < 0
}

// Equal reports whether a and b hold the same MSF value.
func (a Address) Equal(b Address) bool {
	return a == b
}

// IsZero reports whether the address is MSF 00:00.00.
func (a Address) IsZero() bool {
	return a.Min == 0 && a.Sec == 0 && a.Frame == 0
}

func (a Address) String() string {
	return fmt.Sprintf("%02d:%02d.%02d", a.Min, a.Sec, a.Frame)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
