package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/sirupsen/logrus"

	"github.com/anwaraftab007/women-analytics-backend/internal/metrics"
	"github.com/anwaraftab007/women-analytics-backend/internal/models"
	"github.com/anwaraftab007/women-analytics-backend/internal/service"
	"github.com/anwaraftab007/women-analytics-backend/pkg/geo"
)

// CrimeDataset хранит криминальные записи, загруженные из CSV-файла.
// Загрузка собирает новое поколение целиком и подменяет его атомарно:
// читатели видят предыдущее поколение до завершения подмены.
type CrimeDataset struct {
	mu      sync.RWMutex
	records []models.CrimeRecord
	loaded  bool

	// loadMu сериализует конкурирующие загрузки
	loadMu sync.Mutex
	logger *logrus.Logger
}

func NewCrimeDataset(logger *logrus.Logger) service.CrimeStore {
	return &CrimeDataset{
		logger: logger,
	}
}

// Load читает CSV-файл и заменяет текущий набор записей. Отсутствующий файл
// не является ошибкой: набор становится пустым. Путь с суффиксом .gz читается
// через прозрачную gzip-распаковку.
func (d *CrimeDataset) Load(ctx context.Context, path string) (int, error) {
	d.loadMu.Lock()
	defer d.loadMu.Unlock()

	log := d.logger.WithFields(logrus.Fields{
		"repository": "crime_dataset",
		"path":       path,
	})

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("Crime data file does not exist, dataset is empty")
			d.swap(nil)
			return 0, nil
		}
		d.swap(nil)
		return 0, fmt.Errorf("failed to open crime data file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			d.swap(nil)
			return 0, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	records, dropped, err := d.parse(ctx, reader)
	if err != nil {
		d.swap(nil)
		return 0, err
	}

	d.swap(records)
	metrics.CrimeRecordsLoaded.Set(float64(len(records)))
	metrics.CrimeRowsDroppedTotal.Add(float64(dropped))
	log.WithFields(logrus.Fields{
		"records": len(records),
		"dropped": dropped,
	}).Info("Crime dataset loaded")
	return len(records), nil
}

// swap устанавливает новое поколение записей. Флаг loaded взводится даже при
// пустом наборе: "не загружалось" и "загрузилось пустым" — разные состояния.
func (d *CrimeDataset) swap(records []models.CrimeRecord) {
	d.mu.Lock()
	d.records = records
	d.loaded = true
	d.mu.Unlock()
}

// parse собирает записи из CSV-потока. Строки с невалидными координатами или
// сломанной разметкой пропускаются и считаются; ошибка ввода-вывода или
// отсутствие обязательных колонок в заголовке прерывают загрузку.
func (d *CrimeDataset) parse(ctx context.Context, r io.Reader) ([]models.CrimeRecord, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// Пустой файл — пустой набор
			return []models.CrimeRecord{}, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to read csv header: %w", err)
	}

	latCol, lngCol, typeCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "latitude":
			latCol = i
		case "longitude":
			lngCol = i
		case "type":
			typeCol = i
		}
	}
	if latCol < 0 || lngCol < 0 {
		return nil, 0, fmt.Errorf("csv header must contain latitude and longitude columns")
	}

	records := make([]models.CrimeRecord, 0, 1024)
	dropped := 0
	rows := 0
	for {
		rows++
		if rows%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, dropped, err
			}
		}

		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				dropped++
				d.logger.WithError(err).Debug("Dropped malformed csv row")
				continue
			}
			return nil, dropped, fmt.Errorf("failed to read csv row: %w", err)
		}

		if len(cells) <= latCol || len(cells) <= lngCol {
			dropped++
			continue
		}
		lat, errLat := strconv.ParseFloat(strings.TrimSpace(cells[latCol]), 64)
		lng, errLng := strconv.ParseFloat(strings.TrimSpace(cells[lngCol]), 64)
		if errLat != nil || errLng != nil || !geo.IsValidCoordinate(lat, lng) {
			dropped++
			d.logger.WithField("row", rows).Debug("Dropped csv row with invalid coordinates")
			continue
		}

		category := "Unknown"
		if typeCol >= 0 && typeCol < len(cells) {
			if v := strings.TrimSpace(cells[typeCol]); v != "" {
				category = v
			}
		}

		records = append(records, models.CrimeRecord{
			ID:        strconv.Itoa(len(records) + 1),
			Latitude:  lat,
			Longitude: lng,
			Category:  category,
			Raw:       cells,
		})
	}
	return records, dropped, nil
}

// snapshot возвращает текущее поколение записей без копирования.
// Поколение после подмены не модифицируется, поэтому делиться им безопасно.
func (d *CrimeDataset) snapshot() []models.CrimeRecord {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.loaded {
		d.logger.Warn("Crime dataset queried before load")
	}
	return d.records
}

// GetAll возвращает копию всех записей набора
func (d *CrimeDataset) GetAll() []models.CrimeRecord {
	snap := d.snapshot()
	records := make([]models.CrimeRecord, len(snap))
	copy(records, snap)
	return records
}

// FilterByType возвращает записи, категория которых содержит подстроку
// (без учета регистра). Пустой фильтр возвращает все записи.
func (d *CrimeDataset) FilterByType(category string) []models.CrimeRecord {
	query := strings.ToLower(strings.TrimSpace(category))
	if query == "" {
		return d.GetAll()
	}

	records := make([]models.CrimeRecord, 0)
	for _, rec := range d.snapshot() {
		if strings.Contains(strings.ToLower(rec.Category), query) {
			records = append(records, rec)
		}
	}
	return records
}

// FilterByArea возвращает записи в радиусе от точки. Граница включается.
func (d *CrimeDataset) FilterByArea(lat, lng float64, radiusMeters int) ([]models.CrimeRecord, error) {
	if !geo.IsValidCoordinate(lat, lng) {
		return nil, models.ErrInvalidCoordinate
	}
	if radiusMeters <= 0 {
		return nil, models.ErrInvalidRadius
	}

	records := make([]models.CrimeRecord, 0)
	for _, rec := range d.snapshot() {
		if geo.IsWithinRadius(lat, lng, rec.Latitude, rec.Longitude, radiusMeters) {
			records = append(records, rec)
		}
	}
	return records, nil
}

// Query применяет фильтр по категории, затем фильтр по области к уже
// отфильтрованному подмножеству
func (d *CrimeDataset) Query(category string, area *models.AreaFilter) ([]models.CrimeRecord, error) {
	records := d.FilterByType(category)
	d.logger.WithFields(logrus.Fields{
		"category": category,
		"matched":  len(records),
	}).Debug("Category filter applied")

	if area == nil {
		return records, nil
	}
	if !geo.IsValidCoordinate(area.Latitude, area.Longitude) {
		return nil, models.ErrInvalidCoordinate
	}
	if area.RadiusMeters <= 0 {
		return nil, models.ErrInvalidRadius
	}

	filtered := make([]models.CrimeRecord, 0, len(records))
	for _, rec := range records {
		if geo.IsWithinRadius(area.Latitude, area.Longitude, rec.Latitude, rec.Longitude, area.RadiusMeters) {
			filtered = append(filtered, rec)
		}
	}
	d.logger.WithFields(logrus.Fields{
		"radius":  area.RadiusMeters,
		"matched": len(filtered),
	}).Debug("Area filter applied")
	return filtered, nil
}

// Stats возвращает сводку по текущему поколению записей
func (d *CrimeDataset) Stats() models.CrimeStats {
	d.mu.RLock()
	defer d.mu.RUnlock()

	stats := models.CrimeStats{
		Total:      len(d.records),
		ByCategory: make(map[string]int, 16),
		Loaded:     d.loaded,
	}
	for _, rec := range d.records {
		stats.ByCategory[rec.Category]++
	}
	return stats
}
