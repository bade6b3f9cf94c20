package fields

import (
	"testing"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/vocab"
	"github.com/stretchr/testify/assert"
)

func TestNameWithDenylistedCharacters(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		wantOK bool
	}{
		{"moon in surname", "望月 太郎", true},
		{"moon in given name", "山田 美月", true},
		{"man in given name", "田中 一男", true},
		{"woman in given name", "鈴木 早女", true},
		{"plain", "山田 太郎", true},
		{"gender token alone", "男", false},
		{"label word inside", "山田 担当", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewNameExtractor(testEnv()).Extract(sheetDoc([]any{"氏名", tt.value}))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.value, got)
			}
		})
	}
}

func TestNameDenylistOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides vocab.Overrides
		value     string
		want      bool
	}{
		{"default accepts", vocab.Overrides{}, "山田 技術", false},
		{"removed word accepted", vocab.Overrides{NameDenylistRemove: []string{"技術"}}, "山田 技術", true},
		{"removal is width and case insensitive", vocab.Overrides{NameDenylistRemove: []string{"ｊｌｐｔ"}}, "JLPT", true},
		{"added word rejects", vocab.Overrides{NameDenylist: []string{"営業"}}, "営業 太郎", false},
		{"empty overrides keep names", vocab.Overrides{}, "望月 太郎", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testEnv()
			env.Vocab = vocab.Default().Extend(tt.overrides)
			assert.Equal(t, tt.want, NewNameExtractor(env).IsValidName(tt.value))
		})
	}
}
