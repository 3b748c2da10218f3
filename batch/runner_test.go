package batch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/zakaut"
	"github.com/poiesic/zakaut/core"
)

// stubProcessor is a thread-safe Processor double.
type stubProcessor struct {
	// If nil, every file is answered with one mobility case.
	ProcessFunc func(ctx context.Context, intakeText string, docs []core.CriteriaDocument, opts *zakaut.ProcessOptions) (*zakaut.ProcessResult, error)

	mu     sync.Mutex
	calls  int
	runIDs []string
}

func (s *stubProcessor) Process(ctx context.Context, intakeText string, docs []core.CriteriaDocument, opts *zakaut.ProcessOptions) (*zakaut.ProcessResult, error) {
	s.mu.Lock()
	s.calls++
	if opts != nil {
		s.runIDs = append(s.runIDs, opts.RunID)
	}
	fn := s.ProcessFunc
	s.mu.Unlock()

	if fn != nil {
		return fn(ctx, intakeText, docs, opts)
	}
	return &zakaut.ProcessResult{
		Route: &core.RouteResult{Categories: []string{"ניידות"}},
		Cases: []*core.CaseRecord{{RunID: opts.RunID, Category: "ניידות", Answer: "תשובה"}},
	}, nil
}

func (s *stubProcessor) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *stubProcessor) RunIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.runIDs...)
}

func testConfig() *Config {
	return &Config{
		PoolSize:       2,
		ReportInterval: 1,
		MaxRetries:     1,
		RetryDelay:     time.Millisecond,
	}
}

func testDocs() []core.CriteriaDocument {
	return []core.CriteriaDocument{{ID: "חוק", Content: "סעיף 1: תנאי זכאות."}}
}

func TestNewRunner(t *testing.T) {
	t.Run("requires processor", func(t *testing.T) {
		_, err := NewRunner(nil, testConfig(), &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrProcessorRequired)
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		runner, err := NewRunner(&stubProcessor{}, nil, &bytes.Buffer{})
		require.NoError(t, err)
		require.NotNil(t, runner)
		runner.Release()
	})
}

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	writeIntakeFile(t, dir, "קבלה 2.txt", "המטופלת בת 80, מתקשה בניידות.")
	writeIntakeFile(t, dir, "קבלה 1.txt", "המטופל בן 68, מבקש בדיקת זכאות.")
	writeIntakeFile(t, dir, "קבלה 3.txt", "המטופל לאחר תאונת עבודה.")

	stub := &stubProcessor{}
	var buf bytes.Buffer
	runner, err := NewRunner(stub, testConfig(), &buf)
	require.NoError(t, err)
	defer runner.Release()

	result, err := runner.Run(context.Background(), dir, testDocs())
	require.NoError(t, err)
	require.NotNil(t, result)

	_, err = uuid.Parse(result.RunID)
	assert.NoError(t, err, "run ID should be a UUID")

	require.Len(t, result.Results, 3)
	assert.Equal(t, 0, result.Failed)

	// Results follow the directory's name order regardless of completion order
	assert.Equal(t, "קבלה 1.txt", result.Results[0].Name)
	assert.Equal(t, "קבלה 2.txt", result.Results[1].Name)
	assert.Equal(t, "קבלה 3.txt", result.Results[2].Name)

	for _, res := range result.Results {
		require.NoError(t, res.Err)
		require.NotNil(t, res.Route)
		require.Len(t, res.Cases, 1)
		assert.Equal(t, result.RunID, res.Cases[0].RunID)
	}

	// Every file was processed once, under the run's ID
	assert.Equal(t, 3, stub.CallCount())
	for _, runID := range stub.RunIDs() {
		assert.Equal(t, result.RunID, runID)
	}

	output := buf.String()
	assert.Contains(t, output, "Starting batch run "+result.RunID)
	assert.Contains(t, output, "3/3")
	assert.Contains(t, output, "(0 failed)")
}

func TestRunner_Run_FileFailure(t *testing.T) {
	dir := t.TempDir()
	writeIntakeFile(t, dir, "א.txt", "המטופל בן 68.")
	writeIntakeFile(t, dir, "ב.txt", "מסמך עם כשל.")
	writeIntakeFile(t, dir, "ג.txt", "המטופלת בת 75.")

	stub := &stubProcessor{
		ProcessFunc: func(ctx context.Context, intakeText string, docs []core.CriteriaDocument, opts *zakaut.ProcessOptions) (*zakaut.ProcessResult, error) {
			if strings.Contains(intakeText, "כשל") {
				return nil, errors.New("model unavailable")
			}
			return &zakaut.ProcessResult{Route: &core.RouteResult{Categories: []string{"ניידות"}}}, nil
		},
	}

	config := testConfig()
	config.MaxRetries = 2

	var buf bytes.Buffer
	runner, err := NewRunner(stub, config, &buf)
	require.NoError(t, err)
	defer runner.Release()

	result, err := runner.Run(context.Background(), dir, testDocs())
	require.NoError(t, err, "a failing file must not fail the run")

	require.Len(t, result.Results, 3)
	assert.Equal(t, 1, result.Failed)
	assert.NoError(t, result.Results[0].Err)
	assert.ErrorContains(t, result.Results[1].Err, "model unavailable")
	assert.NoError(t, result.Results[2].Err)

	// The failing file used both attempts, the others one each
	assert.Equal(t, 4, stub.CallCount())
	assert.Contains(t, buf.String(), "(1 failed)")
}

func TestRunner_Run_RetryRecovers(t *testing.T) {
	dir := t.TempDir()
	writeIntakeFile(t, dir, "א.txt", "המטופל בן 68.")
	writeIntakeFile(t, dir, "ב.txt", "המטופלת בת 75.")

	var mu sync.Mutex
	attempts := make(map[string]int)
	stub := &stubProcessor{
		ProcessFunc: func(ctx context.Context, intakeText string, docs []core.CriteriaDocument, opts *zakaut.ProcessOptions) (*zakaut.ProcessResult, error) {
			mu.Lock()
			attempts[intakeText]++
			n := attempts[intakeText]
			mu.Unlock()
			if n == 1 {
				return nil, errors.New("temporary error")
			}
			return &zakaut.ProcessResult{Route: &core.RouteResult{Categories: []string{"ניידות"}}}, nil
		},
	}

	config := testConfig()
	config.MaxRetries = 3

	runner, err := NewRunner(stub, config, &bytes.Buffer{})
	require.NoError(t, err)
	defer runner.Release()

	result, err := runner.Run(context.Background(), dir, testDocs())
	require.NoError(t, err)

	assert.Equal(t, 0, result.Failed)
	for _, res := range result.Results {
		assert.NoError(t, res.Err)
	}
	assert.Equal(t, 4, stub.CallCount(), "each file should fail once and then recover")
}

func TestRunner_Run_NoFiles(t *testing.T) {
	runner, err := NewRunner(&stubProcessor{}, testConfig(), &bytes.Buffer{})
	require.NoError(t, err)
	defer runner.Release()

	_, err = runner.Run(context.Background(), t.TempDir(), testDocs())
	assert.ErrorIs(t, err, ErrNoIntakeFiles)
}

func TestRunner_Run_InvalidDocs(t *testing.T) {
	dir := t.TempDir()
	writeIntakeFile(t, dir, "קבלה.txt", "המטופל בן 68.")

	runner, err := NewRunner(&stubProcessor{}, testConfig(), &bytes.Buffer{})
	require.NoError(t, err)
	defer runner.Release()

	_, err = runner.Run(context.Background(), dir, nil)
	assert.ErrorIs(t, err, core.ErrNoDocuments)
}

func TestRunner_Run_ContextCanceled(t *testing.T) {
	dir := t.TempDir()
	writeIntakeFile(t, dir, "קבלה.txt", "המטופל בן 68.")

	stub := &stubProcessor{}
	runner, err := NewRunner(stub, testConfig(), &bytes.Buffer{})
	require.NoError(t, err)
	defer runner.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = runner.Run(ctx, dir, testDocs())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, stub.CallCount(), "no file should be processed after cancellation")
}
