package types

import "fmt"

// EncodingType tags how a column's values are physically stored. It is a
// label only: nothing at the LQP or expression layer interprets it, it only
// flows through so the calibration generator can select columns by
// (DataType, EncodingType) and downstream consumers can report it.
//
// The set is extensible; new encodings can be appended without touching
// existing callers since the LQP never branches on encoding beyond equality.
type EncodingType int

const (
	Unencoded EncodingType = iota
	Dictionary
	RunLength
	FrameOfReference
	LZ4
	FixedStringDictionary
)

func (e EncodingType) String() string {
	switch e {
	case Unencoded:
		return "Unencoded"
	case Dictionary:
		return "Dictionary"
	case RunLength:
		return "RunLength"
	case FrameOfReference:
		return "FrameOfReference"
	case LZ4:
		return "LZ4"
	case FixedStringDictionary:
		return "FixedStringDictionary"
	default:
		return fmt.Sprintf("EncodingType(%d)", int(e))
	}
}
