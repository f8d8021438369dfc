package audit

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/kiddo_tracking_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger создает журнал во временном каталоге
func newTestLogger(t *testing.T, cfg Config) *Logger {
	t.Helper()

	if cfg.FilePath == "" {
		cfg.FilePath = filepath.Join(t.TempDir(), "audit_log.jsonl")
	}
	if cfg.BufferSize == 0 {
		cfg.BufferSize = 5
	}
	if cfg.MaxFileSize == 0 {
		cfg.MaxFileSize = 1024 * 1024
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = 100
	}

	log := logrus.New()
	log.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	logger, err := New(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return logger
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	require.NoError(t, scanner.Err())
	return count
}

func TestConfigValidate(t *testing.T) {
	valid := Config{FilePath: "data/audit.jsonl", BufferSize: 50, MaxFileSize: 1024, CacheSize: 100}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty path", func(c *Config) { c.FilePath = "" }},
		{"zero buffer", func(c *Config) { c.BufferSize = 0 }},
		{"zero max size", func(c *Config) { c.MaxFileSize = 0 }},
		{"zero cache", func(c *Config) { c.CacheSize = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestAppend_FlushesExactlyAtBufferSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit_log.jsonl")
	logger := newTestLogger(t, Config{FilePath: path, BufferSize: 5})

	// До порога на диске ничего нет
	for i := 0; i < 4; i++ {
		require.NoError(t, logger.LogSystem("test", fmt.Sprintf("event %d", i)))
	}
	assert.Equal(t, 0, countLines(t, path))

	// Пятая запись вызывает ровно один сброс
	require.NoError(t, logger.LogSystem("test", "event 4"))
	assert.Equal(t, 5, countLines(t, path))
}

func TestAppend_FileIsValidJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit_log.jsonl")
	logger := newTestLogger(t, Config{FilePath: path, BufferSize: 2})

	loc, err := models.NewLocationNow(40.7128, -74.0060)
	require.NoError(t, err)
	require.NoError(t, logger.LogLocation(loc))
	require.NoError(t, logger.LogPanicTrigger("api"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var types []string
	for scanner.Scan() {
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &decoded))
		assert.Contains(t, decoded, "timestamp")
		assert.Contains(t, decoded, "event_type")
		types = append(types, decoded["event_type"].(string))
	}
	assert.Equal(t, []string{"location_update", "panic_trigger"}, types)
}

func TestRecentEntries_SeesAppendedEntryAfterImplicitFlush(t *testing.T) {
	logger := newTestLogger(t, Config{BufferSize: 50})

	require.NoError(t, logger.LogSystem("test", "hello"))

	// Явного Flush нет - чтение само сбрасывает буфер
	entries := logger.RecentEntries(1, "")
	require.Len(t, entries, 1)
	assert.Equal(t, models.EventSystem, entries[0].EventType)

	details, ok := entries[0].Details.(models.SystemDetails)
	require.True(t, ok)
	assert.Equal(t, "hello", details.Message)
}

func TestRecentEntries_FilterAndLimit(t *testing.T) {
	logger := newTestLogger(t, Config{BufferSize: 2})

	for i := 0; i < 6; i++ {
		require.NoError(t, logger.LogSystem("test", fmt.Sprintf("sys %d", i)))
	}
	require.NoError(t, logger.LogPanicTrigger("api"))

	sys := logger.RecentEntries(3, models.EventSystem)
	require.Len(t, sys, 3)
	for _, entry := range sys {
		assert.Equal(t, models.EventSystem, entry.EventType)
	}
	// Возвращаются самые свежие записи в хронологическом порядке
	assert.Equal(t, "sys 5", sys[2].Details.(models.SystemDetails).Message)

	panics := logger.RecentEntries(10, models.EventPanicTrigger)
	assert.Len(t, panics, 1)
}

func TestEntriesByTimeRange(t *testing.T) {
	logger := newTestLogger(t, Config{BufferSize: 10})

	past := time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	now := time.Now().UTC().Format(time.RFC3339)
	future := time.Now().UTC().Add(time.Hour).Format(time.RFC3339)

	require.NoError(t, logger.Append(models.LogEntry{Timestamp: past, EventType: models.EventSystem}))
	require.NoError(t, logger.Append(models.LogEntry{Timestamp: now, EventType: models.EventSystem}))

	inRange := logger.EntriesByTimeRange(past, future)
	assert.Len(t, inRange, 2)

	onlyRecent := logger.EntriesByTimeRange(now, future)
	assert.Len(t, onlyRecent, 1)

	none := logger.EntriesByTimeRange(future, "")
	assert.Empty(t, none)
}

func TestCacheEvictsOldestFirst(t *testing.T) {
	logger := newTestLogger(t, Config{BufferSize: 1, CacheSize: 3})

	for i := 0; i < 5; i++ {
		require.NoError(t, logger.LogSystem("test", fmt.Sprintf("event %d", i)))
	}

	entries := logger.RecentEntries(0, "")
	require.Len(t, entries, 3)
	assert.Equal(t, "event 2", entries[0].Details.(models.SystemDetails).Message)
	assert.Equal(t, "event 4", entries[2].Details.(models.SystemDetails).Message)
}

func TestRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audit_log.jsonl")
	logger := newTestLogger(t, Config{FilePath: path, BufferSize: 1, MaxFileSize: 512})

	// Пишем до превышения порога ротации
	for i := 0; i < 50; i++ {
		require.NoError(t, logger.LogSystem("test", strings.Repeat("x", 64)))
	}

	matches, err := filepath.Glob(path + ".*.gz")
	require.NoError(t, err)
	require.NotEmpty(t, matches, "expected at least one rotated archive")

	// Живой файл после ротации снова маленький
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(1024))

	// Архив - валидный gzip с jsonl внутри
	f, err := os.Open(matches[0])
	require.NoError(t, err)
	defer f.Close()
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"event_type":"system"`)
}

func TestStatistics(t *testing.T) {
	logger := newTestLogger(t, Config{BufferSize: 10})

	loc, err := models.NewLocationNow(0, 0)
	require.NoError(t, err)
	require.NoError(t, logger.LogLocation(loc))
	require.NoError(t, logger.LogLocation(loc))
	require.NoError(t, logger.LogPanicTrigger("api"))

	stats := logger.Statistics()
	assert.Equal(t, 3, stats.TotalEntries)
	assert.Equal(t, 2, stats.ByType[models.EventLocationUpdate])
	assert.Equal(t, 1, stats.ByType[models.EventPanicTrigger])
	assert.NotEmpty(t, stats.Earliest)
	assert.LessOrEqual(t, stats.Earliest, stats.Latest)
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit_log.jsonl")
	logger := newTestLogger(t, Config{FilePath: path, BufferSize: 1})

	require.NoError(t, logger.LogSystem("test", "before clear"))
	require.Equal(t, 1, countLines(t, path))

	logger.Clear()

	assert.Empty(t, logger.RecentEntries(0, ""))
	assert.Equal(t, 0, countLines(t, path))
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	logger := newTestLogger(t, Config{FilePath: filepath.Join(dir, "audit_log.jsonl"), BufferSize: 10})

	require.NoError(t, logger.LogSystem("test", "exported"))

	exportPath := filepath.Join(dir, "export.jsonl")
	require.NoError(t, logger.Export(exportPath))
	assert.Equal(t, 1, countLines(t, exportPath))
}

func TestAppend_RejectsInvalidEntry(t *testing.T) {
	logger := newTestLogger(t, Config{})

	err := logger.Append(models.LogEntry{EventType: ""})
	assert.Error(t, err)
}

func TestAppend_AfterCloseFails(t *testing.T) {
	logger := newTestLogger(t, Config{})
	require.NoError(t, logger.Close())

	err := logger.LogSystem("test", "too late")
	assert.Error(t, err)
}

func TestClose_ReportsUnflushedEntries(t *testing.T) {
	// Путь журнала указывает на каталог - запись на диск невозможна
	path := filepath.Join(t.TempDir(), "audit_log.jsonl")
	require.NoError(t, os.MkdirAll(path, 0o755))
	logger := newTestLogger(t, Config{FilePath: path, BufferSize: 50})

	require.NoError(t, logger.LogSystem("test", "stuck in buffer"))

	err := logger.Close()
	require.Error(t, err)
	assert.ErrorContains(t, err, "not flushed on close")
}

func TestFlush_UnmarshalableEntrySkippedEverywhere(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit_log.jsonl")
	logger := newTestLogger(t, Config{FilePath: path, BufferSize: 10})

	// NaN не сериализуется в JSON; запись не должна попасть ни в файл, ни в кеш
	require.NoError(t, logger.Append(models.NewLogEntry(models.EventSystem, math.NaN())))
	require.NoError(t, logger.LogSystem("test", "good entry"))

	entries := logger.RecentEntries(0, "")
	require.Len(t, entries, 1)
	assert.Equal(t, "good entry", entries[0].Details.(models.SystemDetails).Message)
	assert.Equal(t, 1, countLines(t, path))

	stats := logger.Statistics()
	assert.Equal(t, 1, stats.TotalEntries)
}

func TestConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit_log.jsonl")
	logger := newTestLogger(t, Config{FilePath: path, BufferSize: 7, CacheSize: 1000})

	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = logger.LogSystem("worker", fmt.Sprintf("w%d-%d", w, i))
			}
		}(w)
	}
	wg.Wait()

	logger.Flush()
	assert.Equal(t, writers*perWriter, countLines(t, path))

	stats := logger.Statistics()
	assert.Equal(t, writers*perWriter, stats.TotalEntries)
}
