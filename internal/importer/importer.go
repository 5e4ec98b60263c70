// Package importer reads question/answer pairs from spreadsheet uploads.
//
// Column A is the question, column B the answer. A first row reading
// "question" / "answer" is treated as a header. Completely empty rows are
// ignored; rows with only one side filled in are reported back instead of
// being imported.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"studystack/internal/model"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported file type (use .csv or .xlsx)", model.ErrInvalidInput)
	ErrTooManyRows       = fmt.Errorf("%w: too many rows", model.ErrInvalidInput)
	ErrNoRows            = fmt.Errorf("%w: file contains no cards", model.ErrInvalidInput)
)

// Row is one accepted question/answer pair. Line is the 1-based row number
// in the uploaded file.
type Row struct {
	Line     int
	Question string
	Answer   string
}

type Result struct {
	Rows    []Row
	Skipped []model.RowError
}

// Parse picks the reader from the file extension.
func Parse(filename string, r io.Reader, maxRows int) (*Result, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseCSV(r, maxRows)
	case ".xlsx":
		return ParseXLSX(r, maxRows)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func ParseCSV(r io.Reader, maxRows int) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []record
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: malformed csv: %v", model.ErrInvalidInput, err)
		}
		// csv.Reader は空行を読み飛ばすので行番号は FieldPos から取る
		line, _ := reader.FieldPos(0)
		records = append(records, record{line: line, fields: fields})
	}
	if len(records) > 0 && len(records[0].fields) > 0 {
		records[0].fields[0] = strings.TrimPrefix(records[0].fields[0], "\uFEFF")
	}
	return collect(records, maxRows)
}

func ParseXLSX(r io.Reader, maxRows int) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable xlsx: %v", model.ErrInvalidInput, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}
	// 先頭シートのみ読む
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable xlsx: %v", model.ErrInvalidInput, err)
	}
	records := make([]record, len(rows))
	for i, fields := range rows {
		records[i] = record{line: i + 1, fields: fields}
	}
	return collect(records, maxRows)
}

type record struct {
	line   int
	fields []string
}

func collect(records []record, maxRows int) (*Result, error) {
	res := &Result{Rows: []Row{}, Skipped: []model.RowError{}}
	for i, rec := range records {
		line := rec.line
		question, answer := cell(rec.fields, 0), cell(rec.fields, 1)

		if i == 0 && isHeader(question, answer) {
			continue
		}
		if question == "" && answer == "" {
			continue
		}
		switch {
		case question == "":
			res.Skipped = append(res.Skipped, model.RowError{Row: line, Reason: "question is empty"})
			continue
		case answer == "":
			res.Skipped = append(res.Skipped, model.RowError{Row: line, Reason: "answer is empty"})
			continue
		}

		if maxRows > 0 && len(res.Rows) >= maxRows {
			return nil, fmt.Errorf("%w (limit %d)", ErrTooManyRows, maxRows)
		}
		res.Rows = append(res.Rows, Row{Line: line, Question: question, Answer: answer})
	}
	if len(res.Rows) == 0 && len(res.Skipped) == 0 {
		return nil, ErrNoRows
	}
	return res, nil
}

func cell(fields []string, idx int) string {
	if idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}

func isHeader(question, answer string) bool {
	return strings.EqualFold(question, "question") && strings.EqualFold(answer, "answer")
}
