package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/artem13815/interview/pkg/interview"
)

const (
	CandidatesSheet  = "Candidates"
	TranscriptsSheet = "Transcripts"

	// ContentType is the MIME type of the generated workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	candidateHeaders  = []string{"Name", "Email", "Phone", "Status", "Final Score", "Answered", "Started", "Completed", "Summary"}
	transcriptHeaders = []string{"Candidate", "#", "Difficulty", "Question", "Answer", "Score", "Time Spent (s)", "Timed Out", "Answered At"}
)

// WriteXLSX renders the dashboard: one row per candidate and one row per
// recorded answer.
func WriteXLSX(w io.Writer, candidates []interview.Candidate) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CandidatesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(TranscriptsSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("create styles: %w", err)
	}
	if err := writeCandidates(f, st, candidates); err != nil {
		return fmt.Errorf("failed to create candidates sheet: %w", err)
	}
	if err := writeTranscripts(f, st, candidates); err != nil {
		return fmt.Errorf("failed to create transcripts sheet: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type styles struct {
	header, good, fair, poor int
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	var st styles
	var err error
	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	}); err != nil {
		return st, err
	}
	fills := []struct {
		dst   *int
		color string
	}{{&st.good, "C6EFCE"}, {&st.fair, "FFEB9C"}, {&st.poor, "FFC7CE"}}
	for _, fl := range fills {
		if *fl.dst, err = f.NewStyle(&excelize.Style{
			Fill:   excelize.Fill{Type: "pattern", Color: []string{fl.color}, Pattern: 1},
			Border: border,
		}); err != nil {
			return st, err
		}
	}
	return st, nil
}

// scoreStyle: 8+ good, 5..7 fair, below 5 poor, unscored unstyled.
func (st styles) scoreStyle(score *int) int {
	switch {
	case score == nil:
		return 0
	case *score >= 8:
		return st.good
	case *score >= 5:
		return st.fair
	default:
		return st.poor
	}
}

func writeHeader(f *excelize.File, sheet string, st styles, headers []string) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, st.header); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func writeCandidates(f *excelize.File, st styles, candidates []interview.Candidate) error {
	sheet := CandidatesSheet
	if err := writeHeader(f, sheet, st, candidateHeaders); err != nil {
		return err
	}
	widths := map[string]float64{"A": 25, "B": 28, "C": 16, "D": 13, "E": 12, "F": 10, "G": 22, "H": 22, "I": 60}
	for col, w := range widths {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}

	for i, c := range candidates {
		row := i + 2
		var score any = ""
		if c.FinalScore != nil {
			score = *c.FinalScore
		}
		values := []any{
			c.Name, c.Email, c.Phone, string(c.InterviewStatus), score,
			len(c.Answers), formatTime(c.StartTime), formatTime(c.EndTime), c.FinalSummary,
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return err
		}
		if style := st.scoreStyle(c.FinalScore); style != 0 {
			cell := fmt.Sprintf("E%d", row)
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeTranscripts(f *excelize.File, st styles, candidates []interview.Candidate) error {
	sheet := TranscriptsSheet
	if err := writeHeader(f, sheet, st, transcriptHeaders); err != nil {
		return err
	}
	widths := map[string]float64{"A": 25, "B": 5, "C": 11, "D": 60, "E": 60, "F": 8, "G": 14, "H": 10, "I": 22}
	for col, w := range widths {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}

	row := 2
	for _, c := range candidates {
		for i, a := range c.Answers {
			values := []any{
				c.Name, i + 1, string(a.Difficulty), a.Question, a.Answer,
				a.Score, a.TimeSpent, a.TimedOut, formatTime(&a.Timestamp),
			}
			if err := writeRow(f, sheet, row, values); err != nil {
				return err
			}
			score := a.Score
			cell := fmt.Sprintf("F%d", row)
			if err := f.SetCellStyle(sheet, cell, cell, st.scoreStyle(&score)); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}
