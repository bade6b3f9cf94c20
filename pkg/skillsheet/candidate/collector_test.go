package candidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  山田　太郎 ", "山田 太郎"},
		{"３年６ヶ月", "3年6ヶ月"},
		{"ＪＬＰＴ　Ｎ２", "JLPT N2"},
		{"ﾌﾟﾛｸﾞﾗﾏｰ", "プログラマー"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "Normalize(%q)", tt.input)
	}
}

func TestCollectorSumsPerValue(t *testing.T) {
	c := New()
	c.Add("中国", 1)
	c.Add("日本", 2.5)
	c.Add(" 中国 ", 2)

	got, ok := c.Best()
	require.True(t, ok)
	assert.Equal(t, "中国", got)
	assert.Equal(t, 3.0, c.Score("中国"))
	assert.Equal(t, 2, c.Len())
}

func TestCollectorTieGoesToFirstSeen(t *testing.T) {
	for i := 0; i < 20; i++ {
		c := New()
		c.Add("b", 1)
		c.Add("a", 1)
		c.Add("c", 0.5)
		c.Add("c", 0.5)
		got, _ := c.Best()
		assert.Equal(t, "b", got)
	}
}

func TestCollectorIgnoresBlankAndNonPositive(t *testing.T) {
	c := New()
	c.Add("  ", 5)
	c.Add("x", 0)
	c.Add("y", -1)
	_, ok := c.Best()
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCaseInsensitiveKeepsFirstSpelling(t *testing.T) {
	c := NewCaseInsensitive()
	c.Add("Java", 1)
	c.Add("JAVA", 1)
	c.Add("Python", 1.5)

	got, _ := c.Best()
	assert.Equal(t, "Java", got)
	assert.Equal(t, 2, c.Len())
}

func TestBest(t *testing.T) {
	_, ok := Best(nil)
	assert.False(t, ok)

	got, ok := Best([]Candidate{{"N2", 2}, {"N1", 1.5}, {"N1", 1}})
	require.True(t, ok)
	assert.Equal(t, "N1", got)
}

func TestValuesKeepFirstSeenOrder(t *testing.T) {
	c := NewCaseInsensitive()
	for _, v := range []string{"Java", "python", "JAVA", "MySQL", "Python"} {
		c.Add(v, 1)
	}
	assert.Equal(t, []string{"Java", "python", "MySQL"}, c.Values())
}

func TestFoldKeepsLines(t *testing.T) {
	assert.Equal(t, "JLPT N1\n日本語 ビジネスレベル", Fold("ＪＬＰＴ Ｎ１\n日本語 ビジネスレベル"))
}
