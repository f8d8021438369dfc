package audit

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shenikar/kiddo_tracking_system/internal/geo"
	"github.com/shenikar/kiddo_tracking_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Config - настройки журнала аудита
type Config struct {
	FilePath    string // путь к живому jsonl-файлу
	BufferSize  int    // число записей до автоматического сброса на диск
	MaxFileSize int64  // порог ротации живого файла в байтах
	CacheSize   int    // емкость кеша последних записей
}

// Validate проверяет настройки журнала
func (c Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("audit log file path cannot be empty")
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("audit buffer size must be positive, got %d", c.BufferSize)
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("audit max file size must be positive, got %d", c.MaxFileSize)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("audit cache size must be positive, got %d", c.CacheSize)
	}
	return nil
}

// Statistics - агрегаты по записям из кеша последних событий
type Statistics struct {
	TotalEntries int                      `json:"total_entries"`
	ByType       map[models.EventType]int `json:"by_type"`
	Earliest     string                   `json:"earliest,omitempty"`
	Latest       string                   `json:"latest,omitempty"`
}

// Logger - журнал аудита: упорядоченный append-only jsonl-файл с буфером
// записи в памяти, кольцевым кешем последних записей и ротацией по размеру.
// Append не выполняет блокирующую запись на диск, пока буфер не заполнен;
// ошибки ввода-вывода логируются и не возвращаются вызывающему.
type Logger struct {
	cfg    Config
	logger *logrus.Logger

	mu     sync.Mutex // защищает buffer, cache и closed; держится и на время файловых операций сброса
	buffer []models.LogEntry
	cache  []models.LogEntry // кольцо: старые записи вытесняются с головы
	closed bool
}

// New создает журнал и каталог для него
func New(cfg Config, logger *logrus.Logger) (*Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("audit: invalid config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return nil, fmt.Errorf("audit: could not create log directory: %w", err)
	}
	return &Logger{
		cfg:    cfg,
		logger: logger,
		buffer: make([]models.LogEntry, 0, cfg.BufferSize),
	}, nil
}

// Append добавляет запись в буфер; при достижении порога буфер сбрасывается
// на диск одной операцией дозаписи. Ошибка записи не возвращается.
func (l *Logger) Append(entry models.LogEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("audit: invalid entry: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return fmt.Errorf("audit: logger is closed")
	}

	l.buffer = append(l.buffer, entry)
	if len(l.buffer) >= l.cfg.BufferSize {
		l.flushLocked()
	}
	return nil
}

// Flush принудительно сбрасывает буфер независимо от порога
func (l *Logger) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flushLocked()
}

// flushLocked пишет буфер в файл одной дозаписью, очищает буфер и
// переносит записи в кеш. Перед записью проверяется ротация.
// Вызывается только под l.mu.
func (l *Logger) flushLocked() {
	if len(l.buffer) == 0 {
		return
	}

	l.rotateIfNeededLocked()

	data := make([]byte, 0, len(l.buffer)*128)
	flushed := make([]models.LogEntry, 0, len(l.buffer))
	for _, entry := range l.buffer {
		line, err := json.Marshal(entry)
		if err != nil {
			// Невалидная запись не должна ронять весь сброс; в кеш она тоже
			// не попадает - запросы видят только то, что дошло до файла
			l.logger.WithError(err).Error("Failed to marshal audit entry, skipping")
			continue
		}
		data = append(data, line...)
		data = append(data, '\n')
		flushed = append(flushed, entry)
	}

	if len(flushed) == 0 {
		l.buffer = l.buffer[:0]
		return
	}

	if err := appendToFile(l.cfg.FilePath, data); err != nil {
		// Данные остаются в буфере, повторная попытка на следующем сбросе;
		// двойного учета нет - буфер очищается только после успешной записи
		l.logger.WithError(err).Error("Failed to write audit log file")
		return
	}

	l.cache = append(l.cache, flushed...)
	if excess := len(l.cache) - l.cfg.CacheSize; excess > 0 {
		l.cache = append([]models.LogEntry(nil), l.cache[excess:]...)
	}
	l.buffer = l.buffer[:0]
}

// rotateIfNeededLocked переносит живой файл в gzip-архив с суффиксом
// временной метки и обнуляет его, если превышен порог размера.
// Неудачная ротация не фатальна - запись продолжается в живой файл.
func (l *Logger) rotateIfNeededLocked() {
	info, err := os.Stat(l.cfg.FilePath)
	if err != nil || info.Size() < l.cfg.MaxFileSize {
		return
	}

	archivePath := fmt.Sprintf("%s.%s.gz", l.cfg.FilePath, time.Now().UTC().Format("20060102T150405"))
	if err := compressFile(l.cfg.FilePath, archivePath); err != nil {
		l.logger.WithError(err).Error("Failed to rotate audit log, continuing with live file")
		return
	}

	if err := os.Truncate(l.cfg.FilePath, 0); err != nil {
		l.logger.WithError(err).Error("Failed to truncate audit log after rotation")
		return
	}

	l.logger.WithFields(logrus.Fields{
		"archive": archivePath,
		"size":    info.Size(),
	}).Info("Audit log rotated")
}

// RecentEntries возвращает последние limit записей из кеша, опционально
// отфильтрованные по типу события, в хронологическом порядке.
// Перед чтением выполняется неявный сброс буфера.
func (l *Logger) RecentEntries(limit int, eventType models.EventType) []models.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flushLocked()

	var matched []models.LogEntry
	for _, entry := range l.cache {
		if eventType != "" && entry.EventType != eventType {
			continue
		}
		matched = append(matched, entry)
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	return append([]models.LogEntry(nil), matched...)
}

// EntriesByTimeRange возвращает записи кеша с временной меткой в [from, to].
// Метки RFC3339 фиксированной ширины, поэтому достаточно лексикографического сравнения.
func (l *Logger) EntriesByTimeRange(from, to string) []models.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flushLocked()

	var matched []models.LogEntry
	for _, entry := range l.cache {
		if from != "" && entry.Timestamp < from {
			continue
		}
		if to != "" && entry.Timestamp > to {
			continue
		}
		matched = append(matched, entry)
	}
	return matched
}

// Statistics возвращает агрегаты по кешу последних записей
// (не по всей истории файла - это намеренное ограничение ради скорости)
func (l *Logger) Statistics() Statistics {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flushLocked()

	stats := Statistics{ByType: make(map[models.EventType]int)}
	for _, entry := range l.cache {
		stats.TotalEntries++
		stats.ByType[entry.EventType]++
		if stats.Earliest == "" || entry.Timestamp < stats.Earliest {
			stats.Earliest = entry.Timestamp
		}
		if entry.Timestamp > stats.Latest {
			stats.Latest = entry.Timestamp
		}
	}
	return stats
}

// Export копирует текущий живой файл журнала в указанный путь
func (l *Logger) Export(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flushLocked()

	src, err := os.Open(l.cfg.FilePath)
	if err != nil {
		return fmt.Errorf("audit: could not open log file for export: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audit: could not create export file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("audit: could not export log file: %w", err)
	}
	return nil
}

// Clear сбрасывает буфер, очищает кеш и обнуляет живой файл.
// Полный сброс состояния, не часть обычной работы.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.buffer = l.buffer[:0]
	l.cache = nil

	if err := os.Truncate(l.cfg.FilePath, 0); err != nil && !os.IsNotExist(err) {
		l.logger.WithError(err).Error("Failed to truncate audit log file on clear")
	}
}

// Close сбрасывает буфер и запрещает дальнейшую запись.
// Возвращает ошибку, если часть записей так и не дошла до диска.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flushLocked()
	l.closed = true
	if n := len(l.buffer); n > 0 {
		return fmt.Errorf("audit: %d entries were not flushed on close", n)
	}
	return nil
}

// Типизированные методы записи - по одному на вид события.

// LogLocation записывает событие обновления позиции
func (l *Logger) LogLocation(loc models.Location) error {
	return l.Append(models.NewLogEntry(models.EventLocationUpdate, models.LocationDetails{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Timestamp: loc.Timestamp,
	}))
}

// LogAlert записывает тревогу
func (l *Logger) LogAlert(alert models.Alert) error {
	details := models.AlertDetails{
		AlertID:   alert.ID.String(),
		AlertType: alert.Type,
		Message:   alert.Message,
		Severity:  alert.Severity,
		Location:  alert.Location,
	}
	return l.Append(models.NewLogEntry(models.EventAlert, details))
}

// LogGeofenceExit записывает тревогу выхода за зону с расстоянием до границы
func (l *Logger) LogGeofenceExit(alert models.Alert, fence models.Geofence) error {
	details := models.AlertDetails{
		AlertID:   alert.ID.String(),
		AlertType: alert.Type,
		Message:   alert.Message,
		Severity:  alert.Severity,
		Location:  alert.Location,
	}
	if alert.Location != nil {
		details.BoundaryMeters = geo.BoundaryDistance(*alert.Location, fence)
	}
	return l.Append(models.NewLogEntry(models.EventAlert, details))
}

// LogGeofenceUpdate записывает смену конфигурации зоны
func (l *Logger) LogGeofenceUpdate(fence models.Geofence) error {
	return l.Append(models.NewLogEntry(models.EventGeofenceUpdate, models.GeofenceDetails{
		CenterLatitude:  fence.Center.Latitude,
		CenterLongitude: fence.Center.Longitude,
		RadiusMeters:    fence.RadiusMeters,
	}))
}

// LogPanicTrigger записывает срабатывание паники
func (l *Logger) LogPanicTrigger(source string) error {
	return l.Append(models.NewLogEntry(models.EventPanicTrigger, models.PanicDetails{
		State:  models.EmergencyPanic.String(),
		Source: source,
	}))
}

// LogPanicResolution записывает разрешение паники
func (l *Logger) LogPanicResolution(source string) error {
	return l.Append(models.NewLogEntry(models.EventPanicResolved, models.PanicDetails{
		State:  models.EmergencyResolved.String(),
		Source: source,
	}))
}

// LogSystem записывает системное событие
func (l *Logger) LogSystem(component, message string) error {
	return l.Append(models.NewLogEntry(models.EventSystem, models.SystemDetails{
		Message:   message,
		Component: component,
	}))
}

// LogError записывает ошибку
func (l *Logger) LogError(component, message string) error {
	return l.Append(models.NewLogEntry(models.EventError, models.ErrorDetails{
		Message:   message,
		Component: component,
	}))
}

// appendToFile дописывает данные в конец файла одной операцией
func appendToFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}

// compressFile сжимает файл в gzip-архив
func compressFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}
