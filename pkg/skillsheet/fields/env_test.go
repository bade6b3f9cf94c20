package fields

import (
	"testing"
	"time"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var refDate = time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)

func testEnv() Env {
	return NewEnv(refDate)
}

func sheetDoc(rows ...[]any) *models.Document {
	return models.NewDocument("test.xlsx", models.NewSheet("Sheet1", rows))
}

func TestDefaultTuning(t *testing.T) {
	tn := DefaultTuning()
	assert.Equal(t, 10, tn.NameRows)
	assert.Equal(t, 30, tn.ScanRows)
	assert.Equal(t, 5, tn.GenderRadius)
	assert.Equal(t, 5, tn.BlankRun)
}

func TestTraceLogsCandidates(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	env := testEnv()
	env.Logger = zap.New(core)

	doc := sheetDoc([]any{"氏名", "山田 太郎"})
	name, ok := NewNameExtractor(env).Extract(doc)
	require.True(t, ok)
	assert.Equal(t, "山田 太郎", name)

	entries := logs.FilterMessage("candidate").FilterField(zap.String("field", "name")).All()
	require.NotEmpty(t, entries)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "Sheet1", ctx["sheet"])
	assert.Equal(t, "山田 太郎", ctx["value"])
}

func TestTraceSilentAboveDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	env := testEnv()
	env.Logger = zap.New(core)

	_, _ = NewNameExtractor(env).Extract(sheetDoc([]any{"氏名", "山田 太郎"}))
	assert.Zero(t, logs.Len())
}
