package output

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSONKeepsJapanese(t *testing.T) {
	rec := &models.ResumeRecord{
		Name:   models.StringPtr("山田 太郎"),
		Skills: []string{"C++", "<Java>"},
	}
	data, err := ToJSON(rec, false)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"name":"山田 太郎"`)
	assert.Contains(t, s, `"<Java>"`)
	assert.Contains(t, s, `"age":null`)
	assert.Contains(t, s, `"roles":null`)
	assert.NotContains(t, s, "\n")
}

func TestToJSONPretty(t *testing.T) {
	data, err := ToJSON(map[string]int{"a": 1}, true)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))
}

func TestErrorJSON(t *testing.T) {
	var body map[string]string
	require.NoError(t, json.Unmarshal(ErrorJSON(errors.New("file not found: a.xlsx")), &body))
	assert.Equal(t, map[string]string{"error": "file not found: a.xlsx"}, body)
}

func TestValidate(t *testing.T) {
	valid := &models.ResumeRecord{
		Name:        models.StringPtr("王 小明"),
		Gender:      models.StringPtr("male"),
		Age:         models.StringPtr("30"),
		Birthdate:   models.StringPtr("1994-04-15"),
		ArrivalYear: models.StringPtr("2016"),
		Skills:      []string{"Java", "Go"},
	}
	assert.NoError(t, Validate(valid))
	assert.NoError(t, Validate(&models.ResumeRecord{}))

	blank := ""
	tests := []struct {
		name string
		rec  *models.ResumeRecord
	}{
		{"empty string", &models.ResumeRecord{Name: &blank}},
		{"empty list", &models.ResumeRecord{Skills: []string{}}},
		{"duplicate list item", &models.ResumeRecord{Roles: []string{"PL", "PL"}}},
		{"unknown gender", &models.ResumeRecord{Gender: models.StringPtr("男")}},
		{"bad birthdate", &models.ResumeRecord{Birthdate: models.StringPtr("1994/4/15")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.rec)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}
