package render

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gbhwdb/sitegen/internal/page"
	"github.com/gbhwdb/sitegen/internal/parser"
	"github.com/gbhwdb/sitegen/internal/submission"
)

// writeCSVDump writes the UTF-8 encoded CSV export of one mapper's
// submissions.
func writeCSVDump(path string, props page.MapperProps) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{
		"title", "contributor", "type", "board_kind", "board_date", "mapper_kind",
		"photo_front", "photo_pcb_front", "photo_pcb_back",
	}); err != nil {
		return err
	}

	for _, sub := range props.Submissions {
		date := ""
		if code, ok := parser.ParseStamp(sub.BoardStamp()); ok {
			date = code.CalendarShort()
		}
		row := []string{
			sub.Title,
			sub.Contributor,
			sub.Type,
			sub.BoardKind(),
			date,
			sub.MapperKind(),
			photoPath(sub.Photos.Front),
			photoPath(sub.Photos.PcbFront),
			photoPath(sub.Photos.PcbBack),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv write failed: %w", err)
	}
	return nil
}

func photoPath(p *submission.Photo) string {
	if p == nil {
		return ""
	}
	return p.Path
}
