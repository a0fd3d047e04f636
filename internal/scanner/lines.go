package scanner

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/spf13/afero"
	"golang.org/x/text/transform"
)

// dropIllFormed passes well-formed UTF-8 through unchanged and drops every
// byte that does not begin a valid encoding. A literal U+FFFD in the input is
// well-formed and kept.
type dropIllFormed struct{ transform.NopResetter }

func (dropIllFormed) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			nSrc++
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return nDst, nSrc, nil
}

// CountLines counts text lines in r. "\n", "\r\n" and a lone "\r" each end a
// line, and trailing text without a terminator counts as one more line.
// Undecodable bytes are dropped before counting.
func CountLines(r io.Reader) (int, error) {
	br := bufio.NewReader(transform.NewReader(r, dropIllFormed{}))

	count := 0
	pending := false
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
		switch b {
		case '\n':
			count++
			pending = false
		case '\r':
			count++
			pending = false
			if next, err := br.Peek(1); err == nil && next[0] == '\n' {
				_, _ = br.ReadByte()
			}
		default:
			pending = true
		}
	}
	if pending {
		count++
	}
	return count, nil
}

// CountFileLines opens path in fsys and counts its lines.
func CountFileLines(fsys afero.Fs, path string) (int, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return CountLines(f)
}
