package spatial

import (
	"testing"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/stretchr/testify/assert"
)

func testGrid() *models.Sheet {
	return models.NewSheet("Sheet1", [][]any{
		{"氏名", nil, "山田 太郎", nil, nil, nil, nil, nil},
		{nil, nil, nil, nil, nil, nil, nil, nil},
		{"性別", nil, "男", nil, nil, nil, nil, "年齢"},
		{nil, nil, nil, nil, nil, nil, nil, nil},
		{nil, nil, nil, nil, nil, nil, nil, nil},
		{nil, nil, nil, nil, nil, nil, nil, nil},
		{nil, nil, nil, nil, nil, nil, nil, nil},
		{nil, nil, nil, nil, nil, nil, nil, "男"},
	})
}

func TestHasNearbyKeyword(t *testing.T) {
	g := testGrid()
	tests := []struct {
		row, col, radius int
		expected         bool
	}{
		{2, 2, 5, true},
		{7, 7, 5, true},
		{7, 7, 4, false},
		{7, 0, 3, false},
		{100, 100, 5, false},
	}

	for _, tt := range tests {
		got := HasNearbyKeyword(g, tt.row, tt.col, []string{"性別"}, tt.radius)
		if tt.row == 7 && tt.col == 7 {
			got = HasNearbyKeyword(g, tt.row, tt.col, []string{"年齢"}, tt.radius)
		}
		assert.Equal(t, tt.expected, got, "HasNearbyKeyword(%d, %d, r=%d)", tt.row, tt.col, tt.radius)
	}
}

func TestScanClampsAndOrders(t *testing.T) {
	g := testGrid()
	var got []string
	for c := range Scan(g, 0, 0, Window{RowMin: -5, RowMax: 2, ColMin: -5, ColMax: 2}) {
		got = append(got, c.String())
	}
	assert.Equal(t, []string{"氏名", "山田 太郎", "性別", "男"}, got)
}

func TestScanStopsEarly(t *testing.T) {
	g := testGrid()
	n := 0
	for range Scan(g, 0, 0, Square(10)) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestContextScore(t *testing.T) {
	g := testGrid()
	assert.Equal(t, 2.0, ContextScore(g, 1, 1, []string{"氏名", "性別"}))
	assert.Equal(t, 0.0, ContextScore(g, 7, 0, []string{"氏名"}))
}

func TestFirstKeyword(t *testing.T) {
	kw, ok := FirstKeyword("基本設計・詳細設計", []string{"詳細設計", "基本設計"})
	assert.True(t, ok)
	assert.Equal(t, "詳細設計", kw)
	_, ok = FirstKeyword("", []string{""})
	assert.False(t, ok)
}
