package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCell(t *testing.T) {
	d := time.Date(1994, 4, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		input    any
		typ      CellType
		expected string
	}{
		{nil, CellEmpty, ""},
		{"  ", CellEmpty, ""},
		{"氏名", CellText, "氏名"},
		{30, CellInt, "30"},
		{int64(44392), CellInt, "44392"},
		{30.0, CellInt, "30"},
		{3.5, CellFloat, "3.5"},
		{d, CellDate, "1994-04-15"},
	}

	for _, tt := range tests {
		c := NewCell(1, 2, tt.input)
		assert.Equal(t, tt.typ, c.Type, "NewCell(%v).Type", tt.input)
		assert.Equal(t, tt.expected, c.String(), "NewCell(%v).String()", tt.input)
		assert.Equal(t, 1, c.Row)
		assert.Equal(t, 2, c.Col)
	}
}

func TestSheetGrid(t *testing.T) {
	s := NewSheet("Sheet1", [][]any{
		{"氏名", nil, "山田 太郎"},
		{},
		{"年齢", 30},
	})

	assert.Equal(t, 3, s.RowCount())
	assert.Equal(t, 3, s.ColCount())
	assert.Equal(t, "山田 太郎", s.CellAt(0, 2).String())
	assert.True(t, s.IsEmpty(0, 1))
	assert.True(t, s.IsEmpty(1, 0))
	assert.True(t, s.IsEmpty(-1, 0))
	assert.True(t, s.IsEmpty(10, 10))
	assert.Equal(t, 2, s.CellAt(2, 1).Row)
	assert.Equal(t, "年齢 30", s.RowText(2))
	assert.True(t, s.HasData())
	assert.False(t, NewSheet("empty", [][]any{{nil, ""}}).HasData())
}

func TestSheetText(t *testing.T) {
	s := NewSheet("Sheet1", [][]any{{"a", "b"}, {"c"}})
	s.TextBoxes = []string{"JLPT N1"}
	assert.Equal(t, "a b\nc\nJLPT N1\n", s.Text())
}

func TestMergeAt(t *testing.T) {
	s := NewSheet("Sheet1", [][]any{{"生年月日"}})
	s.Merges = []MergeRange{{R1: 0, C1: 0, R2: 0, C2: 3}}

	m, ok := s.MergeAt(0, 0)
	require.True(t, ok)
	assert.True(t, m.Contains(0, 3))
	assert.False(t, m.Contains(1, 0))

	_, ok = s.MergeAt(0, 1)
	assert.False(t, ok)
}

func TestRecordNormalize(t *testing.T) {
	blank := "  "
	name := "山田 太郎"
	r := &ResumeRecord{
		Name:   &name,
		Gender: &blank,
		Skills: []string{},
		Roles:  []string{"PM", " "},
	}
	r.Normalize()

	require.NotNil(t, r.Name)
	assert.Equal(t, "山田 太郎", *r.Name)
	assert.Nil(t, r.Gender)
	assert.Nil(t, r.Skills)
	assert.Equal(t, []string{"PM"}, r.Roles)
	assert.Equal(t, 2, r.FoundCount())
	assert.Equal(t, []string{"name", "roles"}, r.Fields())
}
