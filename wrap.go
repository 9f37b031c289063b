package tablefmt

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// ellipsis marks truncated content. One display column wide.
const ellipsis = "…"

// splitLines splits cell text at explicit line breaks.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// wrapCell splits one cell's rendered text into sub-lines no wider than
// width display columns. Explicit line breaks always start a new sub-line and
// are never merged; lines already within width pass through untouched.
// width <= 0 disables wrapping. The result is never empty: blank input
// yields a single empty sub-line.
func wrapCell(text string, width int, mode WrapMode, prefix string) []string {
	return wrapLines(splitLines(text), width, mode, prefix)
}

// wrapLines is wrapCell over pre-split lines.
func wrapLines(lines []string, width int, mode WrapMode, prefix string) []string {
	if width <= 0 {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if displayWidth(line) <= width {
			out = append(out, line)
			continue
		}
		switch mode {
		case WrapModeTruncate:
			out = append(out, truncateWidth(line, width))
		case WrapModeTruncateEllipsis:
			out = append(out, runewidth.Truncate(line, width, ellipsis))
		case WrapModeTruncateFront:
			out = append(out, ellipsis+suffixWithin(line, width-1))
		case WrapModeTruncateMiddle:
			out = append(out, truncateMiddle(line, width))
		default:
			out = append(out, wrapLine(line, width, prefix)...)
		}
	}
	return out
}

// truncateWidth cuts s to at most width display columns with no marker,
// never splitting a wide rune.
func truncateWidth(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}

// suffixWithin returns the longest suffix of s no wider than width display
// columns, never splitting a wide rune.
func suffixWithin(s string, width int) string {
	if width <= 0 {
		return ""
	}
	rs := []rune(s)
	i := len(rs)
	w := 0
	for i > 0 {
		rw := runewidth.RuneWidth(rs[i-1])
		if w+rw > width {
			break
		}
		i--
		w += rw
	}
	return string(rs[i:])
}

// truncateMiddle keeps both ends of the line around a centered " … ".
func truncateMiddle(s string, width int) string {
	room := width - 3 // " … "
	if room < 2 {
		return runewidth.Truncate(s, width, ellipsis)
	}
	head := truncateWidth(s, room/2)
	tail := suffixWithin(s, room/2)
	return head + " " + ellipsis + " " + tail
}

// wrapLine breaks a single over-width line at whitespace boundaries. Lines
// after the first carry prefix, which consumes display width. A token wider
// than a whole line is hard-broken at the rune boundary nearest the limit
// without splitting a wide rune.
func wrapLine(line string, width int, prefix string) []string {
	contAvail := width - displayWidth(prefix)
	if contAvail < 1 {
		// Guarded against in New; keeps the loop finite regardless.
		contAvail = 1
	}

	var lines []string
	avail := width
	var cur strings.Builder
	curW := 0

	flush := func() {
		text := strings.TrimRight(cur.String(), " \t")
		if len(lines) > 0 {
			text = prefix + text
		}
		lines = append(lines, text)
		cur.Reset()
		curW = 0
		avail = contAvail
	}

	for _, chunk := range splitChunks(line) {
		blank := strings.TrimSpace(chunk) == ""
		if blank && curW == 0 && len(lines) > 0 {
			continue // drop leading whitespace on continuation lines
		}
		cw := displayWidth(chunk)
		if curW+cw <= avail {
			cur.WriteString(chunk)
			curW += cw
			continue
		}
		if blank {
			flush()
			continue
		}
		if cw > contAvail {
			// Token cannot fit on any line: hard-break it.
			for rest := chunk; rest != ""; {
				if curW >= avail {
					flush()
				}
				shard := truncateWidth(rest, avail-curW)
				if shard == "" {
					if curW > 0 {
						flush()
						continue
					}
					// Wide rune wider than the line itself:
					// advance one rune to avoid an infinite loop.
					r := []rune(rest)
					shard = string(r[0])
				}
				cur.WriteString(shard)
				curW += displayWidth(shard)
				rest = rest[len(shard):]
			}
			continue
		}
		flush()
		cur.WriteString(chunk)
		curW = cw
	}
	if curW > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// splitChunks splits a line into alternating runs of whitespace and
// non-whitespace. Runs are indivisible except by hard-breaking.
func splitChunks(s string) []string {
	var chunks []string
	start := 0
	var blank bool
	for i, r := range s {
		b := unicode.IsSpace(r)
		if i == 0 {
			blank = b
			continue
		}
		if b != blank {
			chunks = append(chunks, s[start:i])
			start = i
			blank = b
		}
	}
	if start < len(s) {
		chunks = append(chunks, s[start:])
	}
	return chunks
}
