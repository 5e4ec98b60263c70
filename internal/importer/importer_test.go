package importer

import (
	"bytes"
	"strings"
	"testing"

	"studystack/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		maxRows     int
		wantRows    []Row
		wantSkipped []model.RowError
		wantErr     error
	}{
		{
			name:    "正常系: ヘッダー付き",
			input:   "question,answer\n2+2,4\n3*3,9\n",
			maxRows: 10,
			wantRows: []Row{
				{Line: 2, Question: "2+2", Answer: "4"},
				{Line: 3, Question: "3*3", Answer: "9"},
			},
			wantSkipped: []model.RowError{},
		},
		{
			name:    "正常系: BOM とヘッダーなし、前後の空白は除去",
			input:   "\uFEFFhola,  hello  \n\n adios ,bye\n",
			maxRows: 10,
			wantRows: []Row{
				{Line: 1, Question: "hola", Answer: "hello"},
				{Line: 3, Question: "adios", Answer: "bye"},
			},
			wantSkipped: []model.RowError{},
		},
		{
			name:     "正常系: 片側が空の行はスキップとして報告",
			input:    "Q1,A1\n,A2\nQ3,\nQ4\n",
			maxRows:  10,
			wantRows: []Row{{Line: 1, Question: "Q1", Answer: "A1"}},
			wantSkipped: []model.RowError{
				{Row: 2, Reason: "question is empty"},
				{Row: 3, Reason: "answer is empty"},
				{Row: 4, Reason: "answer is empty"},
			},
		},
		{
			name:    "異常系: 行数上限を超える",
			input:   "a,1\nb,2\nc,3\n",
			maxRows: 2,
			wantErr: ErrTooManyRows,
		},
		{
			name:    "異常系: データ行なし",
			input:   "question,answer\n",
			maxRows: 10,
			wantErr: ErrNoRows,
		},
		{
			name:    "異常系: 壊れたCSV",
			input:   "\"unterminated,1\n",
			maxRows: 10,
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseCSV(strings.NewReader(tt.input), tt.maxRows)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, res.Rows)
			assert.Equal(t, tt.wantSkipped, res.Skipped)
		})
	}
}

func buildXLSX(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellName, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseXLSX(t *testing.T) {
	buf := buildXLSX(t, [][]interface{}{
		{"Question", "Answer"},
		{"capital of France", "Paris"},
		{"", "orphan"},
		{"7*6", 42},
	})

	res, err := ParseXLSX(buf, 10)
	require.NoError(t, err)

	assert.Equal(t, []Row{
		{Line: 2, Question: "capital of France", Answer: "Paris"},
		{Line: 4, Question: "7*6", Answer: "42"},
	}, res.Rows)
	assert.Equal(t, []model.RowError{{Row: 3, Reason: "question is empty"}}, res.Skipped)
}

func TestParseXLSX_NotASpreadsheet(t *testing.T) {
	_, err := ParseXLSX(strings.NewReader("plain text"), 10)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestParse_DispatchByExtension(t *testing.T) {
	res, err := Parse("cards.CSV", strings.NewReader("q,a\n"), 10)
	require.NoError(t, err)
	assert.Len(t, res.Rows, 1)

	_, err = Parse("cards.xlsx", buildXLSX(t, [][]interface{}{{"q", "a"}}), 10)
	assert.NoError(t, err)

	_, err = Parse("cards.txt", strings.NewReader("q,a\n"), 10)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
