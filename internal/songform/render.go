package songform

import "strings"

// DefaultSongName heads the lyrics export when the song has no name.
const DefaultSongName = "Song"

const interludeMarker = "[" + SectionInterlude + "]"

// RenderFull renders every section of the structure in order as a "[name]"
// header followed by its lyrics, blocks separated by one blank line.
// Sections without lyrics render as the bare header.
func RenderFull(structure Structure, l Lyrics) string {
	blocks := make([]string, 0, len(structure))
	for _, token := range structure {
		block := "[" + token + "]"
		if text := l[token]; !isBlank(text) {
			block += "\n" + text
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}

// RenderLyricsOnly renders the text handed to the file export: the song
// name, a blank line, then the lyrics in structure order without section
// headers. Interludes are kept as a "[interlude]" marker surrounded by blank
// lines; every other section without lyrics is skipped.
func RenderLyricsOnly(structure Structure, l Lyrics, songName string) string {
	var parts []string
	lastIsText := func() bool {
		return len(parts) > 0 && !isBlank(parts[len(parts)-1])
	}

	for i, token := range structure {
		if isInterlude(token) {
			if lastIsText() {
				parts = append(parts, "")
			}
			parts = append(parts, interludeMarker, "")
			continue
		}

		text := l[token]
		if isBlank(text) {
			continue
		}
		if i > 0 && !isInterlude(structure[i-1]) && lastIsText() {
			parts = append(parts, "")
		}
		parts = append(parts, text)
	}

	name := strings.TrimSpace(songName)
	if name == "" {
		name = DefaultSongName
	}
	return name + "\n\n" + strings.Join(parts, "\n")
}

// RenderUniqueSections renders each unique section once with its header,
// skipping sections that have no text. Used for "copy all lyrics".
func RenderUniqueSections(sections []string, l Lyrics) string {
	var blocks []string
	for _, section := range sections {
		if text := l[section]; text != "" {
			blocks = append(blocks, "["+section+"]\n"+text)
		}
	}
	return strings.Join(blocks, "\n\n")
}
