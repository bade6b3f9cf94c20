package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet"
	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRecord(t *testing.T) {
	r := NewRecorder()
	rec := &models.ResumeRecord{
		Name:   models.StringPtr("山田 太郎"),
		Skills: []string{"Java"},
	}
	r.ObserveRecord(rec, 20*time.Millisecond)
	r.ObserveRecord(&models.ResumeRecord{Name: models.StringPtr("佐藤 花子")}, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.documents.WithLabelValues("ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.fieldsFound.WithLabelValues("name")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.fieldsFound.WithLabelValues("skills")))
	assert.Equal(t, uint64(2), sampleCount(t, r, "skills_extractor_extract_duration_seconds"))
}

func sampleCount(t *testing.T, r *Recorder, name string) uint64 {
	t.Helper()
	families, err := r.Gatherer().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return 0
}

func TestObserveFailure(t *testing.T) {
	r := NewRecorder()
	r.ObserveFailure(fmt.Errorf("load: %w", skillsheet.ErrNoData), time.Millisecond)
	r.ObserveFailure(skillsheet.ErrCodecUnavailable, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.documents.WithLabelValues("no_data")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.documents.WithLabelValues("unsupported")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.documents.WithLabelValues("ok")))
}

func TestResult(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{skillsheet.ErrFileNotFound, "not_found"},
		{skillsheet.ErrUnsupportedFormat, "unsupported"},
		{skillsheet.ErrInvalidFormat, "invalid"},
		{fmt.Errorf("x: %w", skillsheet.ErrNoData), "no_data"},
		{fmt.Errorf("boom"), "error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Result(tt.err), "Result(%v)", tt.err)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.ObserveRecord(&models.ResumeRecord{Age: models.StringPtr("30")}, time.Millisecond)

	path := filepath.Join(t.TempDir(), "skills.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `skills_extractor_extract_documents_total{result="ok"} 1`)
	assert.Contains(t, string(data), `skills_extractor_extract_fields_found_total{field="age"} 1`)
}
