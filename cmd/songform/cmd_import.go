package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/sukalov/songform/internal/logger"
	"github.com/sukalov/songform/internal/lyrics"
	"github.com/sukalov/songform/internal/songform"
	"go.uber.org/zap"
)

var (
	importOutput string
	importFormat string

	importer lyrics.SongExtractor
)

var importCmd = &cobra.Command{
	Use:   "import [url]",
	Short: "Import structure and lyrics from an amdm.ru chords page",
	Example: `  songform import https://amdm.ru/akkordi/kino/99000/gruppa_krovi/ -f json -o krovi.json`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "Write to this file instead of stdout")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "text", "Output format: text or json")
}

func newImportService() *lyrics.Service {
	if importer != nil {
		return lyrics.NewServiceWithParser(importer)
	}
	return lyrics.NewService()
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	url := args[0]
	song, err := newImportService().Import(ctx, url)
	if err != nil {
		logger.Error("import failed", zap.String("url", url), zap.Error(err))
		return err
	}

	var data []byte
	switch importFormat {
	case "json":
		data, err = json.MarshalIndent(song, "", "    ")
		if err != nil {
			return fmt.Errorf("failed to encode song: %w", err)
		}
	case "text":
		data = []byte(fmt.Sprintf("%s\n%s\n\n%s", song.Title, song.Structure, songform.RenderFull(song.Structure, song.Lyrics)))
	default:
		return fmt.Errorf("unknown format %q", importFormat)
	}

	if importOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	if err := os.WriteFile(importOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", importOutput, err)
	}
	logger.Success("song imported",
		zap.String("url", url),
		zap.String("output", importOutput),
		zap.Int("sections", len(song.Structure)))
	fmt.Fprintf(cmd.OutOrStdout(), "saved to %s\n", importOutput)
	return nil
}
