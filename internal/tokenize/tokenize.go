// Package tokenize splits a byte range into word/whitespace/other tokens for
// the diff core, hashing each token with a fast non-cryptographic hash so
// equality checks can short-circuit on a hash mismatch before falling back to
// a byte comparison.
package tokenize

import "github.com/cespare/xxhash/v2"

// Class identifies the byte class a token (or a single byte) belongs to.
type Class int

const (
	// ClassWhitespace covers ' ', '\t', '\n'. Whitespace bytes delimit
	// tokens but are never emitted as tokens themselves.
	ClassWhitespace Class = iota
	// ClassWord covers [0-9A-Za-z_]. Consecutive word bytes coalesce into
	// one token.
	ClassWord
	// ClassOther covers any byte that is neither whitespace nor a word
	// byte. Each such byte is its own single-byte token.
	ClassOther
)

// ClassOf classifies a single byte.
func ClassOf(b byte) Class {
	switch {
	case b == ' ' || b == '\t' || b == '\n':
		return ClassWhitespace
	case b >= '0' && b <= '9', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b == '_':
		return ClassWord
	default:
		return ClassOther
	}
}

// HashedSpan is a token located at data[Offset : Offset+Length], along with a
// hash of its bytes.
type HashedSpan struct {
	Offset int
	Length int
	Hash   uint64
}

// Tokens splits data[ofs:end] into HashedSpan tokens. Offsets in the returned
// spans are absolute into data (i.e. relative to data[0], not to ofs).
func Tokens(data []byte, ofs, end int) []HashedSpan {
	var spans []HashedSpan
	i := ofs
	for i < end {
		b := data[i]
		switch ClassOf(b) {
		case ClassWhitespace:
			i++
		case ClassWord:
			j := i + 1
			for j < end && ClassOf(data[j]) == ClassWord {
				j++
			}
			spans = append(spans, span(data, i, j))
			i = j
		case ClassOther:
			spans = append(spans, span(data, i, i+1))
			i++
		}
	}
	return spans
}

func span(data []byte, start, end int) HashedSpan {
	return HashedSpan{
		Offset: start,
		Length: end - start,
		Hash:   xxhash.Sum64(data[start:end]),
	}
}

// SkipMarkerAndIndent returns the offset of the first token-eligible byte of
// a '+'/'-' diff line: past the single leading marker byte and any
// immediately following ASCII whitespace.
func SkipMarkerAndIndent(data []byte, lineStart, lineEnd int) int {
	i := lineStart
	if i < lineEnd {
		i++ // the marker byte itself
	}
	for i < lineEnd && ClassOf(data[i]) == ClassWhitespace {
		i++
	}
	return i
}

// Equal reports whether two spans, each relative to its own data buffer,
// cover byte-identical content. The hash is checked first as a fast-path
// rejection; bytes are compared on a hash collision.
func Equal(aData []byte, a HashedSpan, bData []byte, b HashedSpan) bool {
	if a.Hash != b.Hash || a.Length != b.Length {
		return false
	}
	aBytes := aData[a.Offset : a.Offset+a.Length]
	bBytes := bData[b.Offset : b.Offset+b.Length]
	for i := range aBytes {
		if aBytes[i] != bBytes[i] {
			return false
		}
	}
	return true
}
