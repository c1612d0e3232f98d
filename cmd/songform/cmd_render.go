package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/sukalov/songform/internal/logger"
	"github.com/sukalov/songform/internal/songform"
	"go.uber.org/zap"
)

var (
	renderStructure string
	renderLyrics    string
	renderName      string
	renderMode      string
	renderOutput    string
	renderExport    bool

	now = time.Now
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a song from a structure and a lyrics file",
	Long: `Renders the song in one of three modes:
  full    every section with its [header]
  lyrics  song name, then the lyrics with [interlude] markers only
  unique  each unique section once, as copied from the lyrics screen

The lyrics file is a JSON object keyed by section name.`,
	Example: `  songform render -s "verse-chorus-2-verse-chorus" -l lyrics.json -n "My Song" -m lyrics --export`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderStructure, "structure", "s", "", "Song structure (required)")
	renderCmd.Flags().StringVarP(&renderLyrics, "lyrics", "l", "", "JSON file with lyrics per section")
	renderCmd.Flags().StringVarP(&renderName, "name", "n", "", "Song name")
	renderCmd.Flags().StringVarP(&renderMode, "mode", "m", "full", "Render mode: full, lyrics or unique")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write to this file instead of stdout")
	renderCmd.Flags().BoolVar(&renderExport, "export", false, "Write to <name>_<date>.txt in the current directory")
	_ = renderCmd.MarkFlagRequired("structure")
}

func readLyrics(path string) (songform.Lyrics, error) {
	if path == "" {
		return songform.Lyrics{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lyrics file: %w", err)
	}
	var l songform.Lyrics
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse lyrics file %s: %w", path, err)
	}
	return l, nil
}

func renderSong(structure songform.Structure, l songform.Lyrics, name, mode string) (string, error) {
	switch mode {
	case "full":
		return songform.RenderFull(structure, l), nil
	case "lyrics":
		return songform.RenderLyricsOnly(structure, l, name), nil
	case "unique":
		return songform.RenderUniqueSections(songform.UniqueLyricSections(structure), l), nil
	default:
		return "", fmt.Errorf("unknown render mode %q", mode)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	structure := songform.Parse(renderStructure)
	if len(structure) == 0 {
		return fmt.Errorf("structure is empty")
	}

	l, err := readLyrics(renderLyrics)
	if err != nil {
		return err
	}
	sections := songform.UniqueLyricSections(structure)
	l = songform.InitLyrics(l, sections)

	text, err := renderSong(structure, l, renderName, renderMode)
	if err != nil {
		return err
	}

	output := renderOutput
	if output == "" && renderExport {
		output = songform.ExportFileName(renderName, now())
	}
	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	if err := os.WriteFile(output, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	stats := songform.ComputeStats(structure, l)
	logger.Success("song rendered",
		zap.String("file", output),
		zap.String("mode", renderMode),
		zap.Int("sections", stats.SectionCount),
		zap.Int("lines", stats.TotalLines))
	fmt.Fprintf(cmd.OutOrStdout(), "saved to %s (%d sections, %d lines)\n", output, stats.SectionCount, stats.TotalLines)
	return nil
}
