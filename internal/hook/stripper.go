package hook

import (
	"encoding/json"
	"io"
	"regexp"
	"strings"
)

const (
	// shellTool is the tool name whose commands are inspected.
	shellTool = "Bash"

	// commitMarker identifies a version-control commit among arbitrary
	// shell commands.
	commitMarker = "git commit"

	// attributionBanner is the generated-with line injected into commit
	// messages.
	attributionBanner = "🤖 Generated with [Claude Code](https://claude.com/claude-code)"

	// coAuthorPrefix starts the co-authorship trailer line.
	coAuthorPrefix = "Co-Authored-By: Claude"

	// heredocDelimiter terminates inline multi-line commit messages.
	heredocDelimiter = "EOF"
)

// missingNewlineBeforeDelimiter matches a delimiter that lost its leading
// newline to marker removal. A preceding single quote is excluded so the
// <<'EOF' opener is never touched.
var missingNewlineBeforeDelimiter = regexp.MustCompile(`([^\n'])` + heredocDelimiter + `(\n|\))`)

// extraNewlinesBeforeDelimiter matches runs of blank lines left in front
// of the delimiter.
var extraNewlinesBeforeDelimiter = regexp.MustCompile(`\n{2,}` + heredocDelimiter + `(\n|\))`)

// segmentKind classifies one span of the command string.
type segmentKind int

const (
	segmentText segmentKind = iota
	segmentBanner
	segmentCoAuthor
)

// segment is one span of the command: literal text or a recognized
// attribution marker (including the newlines the marker owns).
type segment struct {
	kind segmentKind
	text string
}

// Process applies the hook contract to one record. The boolean is false
// when nothing should be emitted: wrong tool, no commit marker, or the
// command was already clean.
func Process(in Input) (Output, bool) {
	if in.ToolName != shellTool {
		return Output{}, false
	}

	command := in.ToolInput.Command
	if !strings.Contains(command, commitMarker) {
		return Output{}, false
	}

	modified := Strip(command)
	if modified == command {
		return Output{}, false
	}

	return NewOutput(modified), true
}

// Run reads a single record from r and, when stripping changed the
// command, writes the patch to w. Malformed input degrades to a no-op so
// the hook never blocks the outer operation.
func Run(r io.Reader, w io.Writer) error {
	var in Input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil
	}

	out, changed := Process(in)
	if !changed {
		return nil
	}

	return json.NewEncoder(w).Encode(out)
}

// Strip removes attribution markers from a command string and normalizes
// the heredoc delimiter. Idempotent: stripping already-clean text returns
// it unchanged.
func Strip(command string) string {
	var b strings.Builder
	b.Grow(len(command))
	for _, seg := range scanSegments(command) {
		if seg.kind == segmentText {
			b.WriteString(seg.text)
		}
	}

	return normalizeDelimiter(b.String())
}

// scanSegments splits the command into literal text and marker spans.
// A banner span covers the banner line plus the newline runs on both
// sides. A co-author span covers the trailer from any leading newlines
// through the rest of the line: a terminating newline is part of the
// span, a closing double quote is not, and a trailer that runs to the
// end of the string unterminated stays literal text.
func scanSegments(command string) []segment {
	var segments []segment
	textStart := 0
	pos := 0

	for pos < len(command) {
		kind, markerIdx, markerEnd := nextMarker(command, pos)
		if markerIdx < 0 {
			break
		}

		spanStart := markerIdx
		for spanStart > textStart && command[spanStart-1] == '\n' {
			spanStart--
		}

		if spanStart > textStart {
			segments = append(segments, segment{kind: segmentText, text: command[textStart:spanStart]})
		}
		segments = append(segments, segment{kind: kind, text: command[spanStart:markerEnd]})

		textStart = markerEnd
		pos = markerEnd
	}

	if textStart < len(command) {
		segments = append(segments, segment{kind: segmentText, text: command[textStart:]})
	}

	return segments
}

// nextMarker finds the earliest marker at or after pos. Returns the kind,
// the marker's start index, and the end of its span (exclusive of any
// leading newlines, which the caller claims). A -1 start means no marker.
func nextMarker(command string, pos int) (segmentKind, int, int) {
	bannerIdx := indexFrom(command, pos, attributionBanner)
	coAuthorIdx := indexFrom(command, pos, coAuthorPrefix)

	// Prefer whichever marker appears first.
	if bannerIdx >= 0 && (coAuthorIdx < 0 || bannerIdx <= coAuthorIdx) {
		end := bannerIdx + len(attributionBanner)
		for end < len(command) && command[end] == '\n' {
			end++
		}
		return segmentBanner, bannerIdx, end
	}

	if coAuthorIdx >= 0 {
		end := coAuthorIdx + len(coAuthorPrefix)
		for end < len(command) && command[end] != '\n' && command[end] != '"' {
			end++
		}
		if end == len(command) {
			// Unterminated trailer: leave it alone, scan past it.
			return nextMarkerAfterText(command, coAuthorIdx+len(coAuthorPrefix))
		}
		if command[end] == '\n' {
			end++
		}
		return segmentCoAuthor, coAuthorIdx, end
	}

	return segmentText, -1, -1
}

// nextMarkerAfterText resumes the marker search past a span that turned
// out to be ordinary text.
func nextMarkerAfterText(command string, pos int) (segmentKind, int, int) {
	if pos >= len(command) {
		return segmentText, -1, -1
	}
	return nextMarker(command, pos)
}

func indexFrom(s string, pos int, substr string) int {
	idx := strings.Index(s[pos:], substr)
	if idx < 0 {
		return -1
	}
	return pos + idx
}

// normalizeDelimiter repairs heredoc formatting around the closing
// delimiter: reinsert the newline marker removal may have eaten, then
// collapse any blank lines before the delimiter down to one.
func normalizeDelimiter(command string) string {
	command = missingNewlineBeforeDelimiter.ReplaceAllString(command, "${1}\n"+heredocDelimiter+"${2}")
	command = extraNewlinesBeforeDelimiter.ReplaceAllString(command, "\n"+heredocDelimiter+"${1}")
	return command
}
