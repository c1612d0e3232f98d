package songform

// Stats holds the counts shown next to an assembled song.
type Stats struct {
	SectionCount int `json:"section_count"`
	TotalLines   int `json:"total_lines"`
}

// ComputeStats counts the sections of the structure, repeats included, and
// the non-blank lyric lines each occurrence contributes.
func ComputeStats(structure Structure, l Lyrics) Stats {
	stats := Stats{SectionCount: len(structure)}
	for _, token := range structure {
		stats.TotalLines += LineCount(l[token])
	}
	return stats
}
