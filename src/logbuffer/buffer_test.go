// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logbuffer_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/logbuffer/src/logbuffer"
	"github.com/H0llyW00dzZ/logbuffer/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readLines returns the file's lines without the trailing empty one.
func readLines(t *testing.T, name string) []string {
	t.Helper()
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	if len(data) == 0 {
		return nil
	}
	require.True(t, strings.HasSuffix(string(data), "\n"), "file must end with a newline")
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// messages extracts the message part of each line.
func messages(t *testing.T, lines []string) []string {
	t.Helper()
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		e, err := logbuffer.ParseLine(l)
		require.NoError(t, err)
		out = append(out, e.Message)
	}
	return out
}

func TestFlush_Filters(t *testing.T) {
	record := func(b *logbuffer.Buffer) {
		b.Info("a")
		b.Error("b")
		b.Debug("c")
		b.Error("d")
	}

	tests := []struct {
		name     string
		env      string
		setEnv   bool
		record   func(b *logbuffer.Buffer)
		expected []string
	}{
		{name: "Unset", record: record, expected: []string{"a", "b", "c", "d"}},
		{name: "Unrecognized", env: "warning", setEnv: true, record: record, expected: []string{"a", "b", "c", "d"}},
		{name: "UppercaseIsUnrecognized", env: "INFO", setEnv: true, record: record, expected: []string{"a", "b", "c", "d"}},
		{name: "Debug", env: "debug", setEnv: true, record: record, expected: []string{"a", "b", "c", "d"}},
		{name: "Info", env: "info", setEnv: true, record: record, expected: []string{"a"}},
		{
			name:   "InfoOnlyExact",
			env:    "info",
			setEnv: true,
			record: func(b *logbuffer.Buffer) {
				b.Error("x")
				b.Info("y")
			},
			expected: []string{"y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(logbuffer.LevelEnv, tt.env)
			} else {
				t.Setenv(logbuffer.LevelEnv, "")
				os.Unsetenv(logbuffer.LevelEnv)
			}

			name := filepath.Join(t.TempDir(), "app.log")
			buf := logbuffer.New(name)
			tt.record(buf)

			require.NoError(t, buf.Flush())
			assert.Equal(t, tt.expected, messages(t, readLines(t, name)))
		})
	}
}

func TestFlushWith_Error(t *testing.T) {
	name := filepath.Join(t.TempDir(), "app.log")
	buf := logbuffer.New(name)
	buf.Info("a")
	buf.Error("b")
	buf.Debug("c")
	buf.Error("d")

	require.NoError(t, buf.FlushWith(logbuffer.Error))

	lines := readLines(t, name)
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"b", "d"}, messages(t, lines))
	for _, l := range lines {
		assert.Contains(t, l, "] Error: ")
	}
}

func TestFlush_LineFormat(t *testing.T) {
	name := filepath.Join(t.TempDir(), "app.log")
	buf := logbuffer.New(name)
	buf.SetFilterResolver(logbuffer.Fixed(logbuffer.Default))
	buf.Debug("one")
	buf.Infof("two %d", 2)
	buf.Errorf("three %s", "3")
	buf.Info("")

	require.NoError(t, buf.Flush())

	lines := readLines(t, name)
	require.Len(t, lines, 4)

	expectLabels := []string{"Debug", "Info", "Error", "Info"}
	expectMsgs := []string{"one", "two 2", "three 3", ""}
	for i, l := range lines {
		// [YYYY-MM-DD HH-MM-SS] Label: message
		require.GreaterOrEqual(t, len(l), 22, "line %d too short: %q", i, l)
		assert.Equal(t, byte('['), l[0])
		assert.Equal(t, "] ", l[20:22])
		assert.Equal(t, byte('-'), l[14], "hour and minute are dash separated")
		assert.Equal(t, byte('-'), l[17], "minute and second are dash separated")
		assert.Equal(t, expectLabels[i]+": "+expectMsgs[i], l[22:])
	}
}

func TestFlush_EmptyBufferCreatesFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "nested", "deeper", "empty.log")
	buf := logbuffer.New(name)

	require.NoError(t, buf.Flush())

	info, err := os.Stat(name)
	require.NoError(t, err, "file must exist after flushing an empty buffer")
	assert.Equal(t, int64(0), info.Size())
	assert.True(t, buf.Flushed())
}

func TestFlush_Idempotent(t *testing.T) {
	name := filepath.Join(t.TempDir(), "app.log")
	buf := logbuffer.New(name)
	buf.Info("only once")

	calls := 0
	buf.SetFilterResolver(func() (logbuffer.Severity, error) {
		calls++
		return logbuffer.Default, nil
	})

	require.NoError(t, buf.Flush())
	first, err := os.ReadFile(name)
	require.NoError(t, err)

	// Removing the file proves the second flush does no I/O at all.
	require.NoError(t, os.Remove(name))
	require.NoError(t, buf.Flush())
	require.NoError(t, buf.FlushWith(logbuffer.Info))

	assert.Equal(t, 1, calls, "filter must not be re-resolved after a successful flush")
	_, err = os.Stat(name)
	assert.True(t, errors.Is(err, os.ErrNotExist), "second flush must not recreate the file")
	assert.Equal(t, 1, strings.Count(string(first), "\n"))
}

func TestFlush_AppendsToExistingFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(name, []byte("previous run\n"), 0o644))

	buf := logbuffer.New(name)
	buf.SetFilterResolver(logbuffer.Fixed(logbuffer.Default))
	buf.Info("this run")
	require.NoError(t, buf.Flush())

	lines := readLines(t, name)
	require.Len(t, lines, 2)
	assert.Equal(t, "previous run", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "Info: this run"))
}

func TestFlush_DirectoryTarget(t *testing.T) {
	dir := t.TempDir()
	buf := logbuffer.New(dir)
	buf.SetFilterResolver(logbuffer.Fixed(logbuffer.Default))
	buf.Info("into a directory")

	name := filepath.Join(dir, logbuffer.DefaultFileName())
	assert.Equal(t, dir, buf.Path())
	assert.Equal(t, name, buf.Target())

	require.NoError(t, buf.Flush())

	lines := readLines(t, name)
	assert.Equal(t, []string{"into a directory"}, messages(t, lines))
	assert.Equal(t, name, buf.Target())
}

func TestTarget(t *testing.T) {
	name := filepath.Join(t.TempDir(), "app.log")
	assert.Equal(t, name, logbuffer.New(name).Target())
	assert.Equal(t, logbuffer.DefaultPath(), logbuffer.New("").Target())
}

func TestFlush_DirectoryCreationFails(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

	// A regular file in the middle of the path makes MkdirAll fail, even as root.
	buf := logbuffer.New(filepath.Join(blocker, "sub", "app.log"))
	buf.SetFilterResolver(logbuffer.Fixed(logbuffer.Default))
	buf.Info("kept")

	err := buf.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create log directory")
	assert.False(t, buf.Flushed())
	assert.Equal(t, 1, buf.Len(), "entries survive a failed flush")

	// Clearing the obstacle lets a retry succeed.
	require.NoError(t, os.Remove(blocker))
	require.NoError(t, buf.Flush())
	assert.True(t, buf.Flushed())
	assert.Equal(t, []string{"kept"}, messages(t, readLines(t, filepath.Join(blocker, "sub", "app.log"))))
}

func TestFlush_ResolverError(t *testing.T) {
	name := filepath.Join(t.TempDir(), "app.log")
	buf := logbuffer.New(name)
	buf.Info("x")

	boom := errors.New("lookup broke")
	buf.SetFilterResolver(func() (logbuffer.Severity, error) { return logbuffer.Default, boom })

	err := buf.Flush()
	require.Error(t, err)
	assert.ErrorIs(t, err, logbuffer.ErrFilter)
	assert.ErrorIs(t, err, boom)
	assert.False(t, buf.Flushed())

	_, statErr := os.Stat(name)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "nothing is opened when the filter cannot be resolved")

	buf.SetFilterResolver(nil)
	t.Setenv(logbuffer.LevelEnv, "debug")
	require.NoError(t, buf.Flush())
}

func TestFlush_FilterReadAtFlushTime(t *testing.T) {
	name := filepath.Join(t.TempDir(), "app.log")
	t.Setenv(logbuffer.LevelEnv, "debug")

	buf := logbuffer.New(name)
	buf.Info("before")
	buf.Error("skipped")
	t.Setenv(logbuffer.LevelEnv, "info")
	buf.Info("after")

	require.NoError(t, buf.Flush())
	assert.Equal(t, []string{"before", "after"}, messages(t, readLines(t, name)))
}

func TestBuffer_SealedAfterFlush(t *testing.T) {
	name := filepath.Join(t.TempDir(), "app.log")
	buf := logbuffer.New(name)
	buf.SetFilterResolver(logbuffer.Fixed(logbuffer.Default))
	buf.Info("recorded")
	require.NoError(t, buf.Flush())

	buf.Info("late")
	buf.Errorf("late %d", 2)

	assert.Equal(t, 1, buf.Len())
	assert.Equal(t, 2, buf.Dropped())
	assert.Equal(t, []string{"recorded"}, messages(t, readLines(t, name)))
}

func TestBuffer_EntriesIsACopy(t *testing.T) {
	buf := logbuffer.New("")
	buf.Info("original")

	entries := buf.Entries()
	entries[0].Message = "mutated"

	assert.Equal(t, "original", buf.Entries()[0].Message)
	assert.Equal(t, "", buf.Path())
}

func TestBuffer_NewFileNotice(t *testing.T) {
	name := filepath.Join(t.TempDir(), "app.log")

	var out bytes.Buffer
	buf := logbuffer.New(name)
	buf.SetLogger(logger.NewCLILogger(&out))
	buf.SetFilterResolver(logbuffer.Fixed(logbuffer.Default))
	require.NoError(t, buf.Flush())
	assert.Equal(t, "Creating new log file at: "+name+"\n", out.String())

	// Existing files are opened silently.
	out.Reset()
	again := logbuffer.New(name)
	again.SetLogger(logger.NewCLILogger(&out))
	again.SetFilterResolver(logbuffer.Fixed(logbuffer.Default))
	require.NoError(t, again.Flush())
	assert.Empty(t, out.String())

	assert.NotPanics(t, func() { again.SetLogger(nil) })
}

func TestBuffer_Concurrent(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Record",
			testFunc: func(t *testing.T) {
				buf := logbuffer.New("")

				const numGoroutines = 50
				const perGoroutine = 20

				var wg sync.WaitGroup
				wg.Add(numGoroutines)
				for i := range numGoroutines {
					go func(id int) {
						defer wg.Done()
						for j := range perGoroutine {
							switch j % 3 {
							case 0:
								buf.Debugf("g%d m%d", id, j)
							case 1:
								buf.Infof("g%d m%d", id, j)
							default:
								buf.Errorf("g%d m%d", id, j)
							}
						}
					}(i)
				}
				wg.Wait()

				assert.Equal(t, numGoroutines*perGoroutine, buf.Len())
			},
		},
		{
			name: "FlushWritesOnce",
			testFunc: func(t *testing.T) {
				name := filepath.Join(t.TempDir(), "app.log")
				buf := logbuffer.New(name)
				buf.SetFilterResolver(logbuffer.Fixed(logbuffer.Default))
				for i := range 100 {
					buf.Infof("entry %d", i)
				}

				const flushers = 20
				errs := make(chan error, flushers)
				var wg sync.WaitGroup
				wg.Add(flushers)
				for range flushers {
					go func() {
						defer wg.Done()
						errs <- buf.Flush()
					}()
				}
				wg.Wait()
				close(errs)

				for err := range errs {
					assert.NoError(t, err)
				}
				assert.Len(t, readLines(t, name), 100, "exactly one flush may write")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}
