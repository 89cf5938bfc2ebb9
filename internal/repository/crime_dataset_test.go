package repository

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anwaraftab007/women-analytics-backend/internal/models"
)

// Вторая запись лежит в ≈667 м севернее первой, третья — в ≈7.3 км
const baseCrimeCSV = `type,latitude,longitude,description
Theft,26.8467,80.9462,phone snatched near market
Harassment,26.8527,80.9462,street harassment reported
Chain Snatching,26.9000,80.9900,chain snatching on highway
`

// newTestCrimeDataset — вспомогательная функция для создания пустого набора.
func newTestCrimeDataset(t *testing.T) *CrimeDataset {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewCrimeDataset(logger).(*CrimeDataset)
}

// writeCrimeFile пишет фикстуру во временный каталог и возвращает путь к ней.
func writeCrimeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCrimeDatasetLoad_Success(t *testing.T) {
	// Подготовка
	ds := newTestCrimeDataset(t)
	path := writeCrimeFile(t, "crimes.csv", baseCrimeCSV)

	// Действие
	count, err := ds.Load(context.Background(), path)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	records := ds.GetAll()
	require.Len(t, records, 3)
	assert.Equal(t, "1", records[0].ID, "идентификаторы присваиваются последовательно с единицы")
	assert.Equal(t, "Theft", records[0].Category)
	assert.Equal(t, 26.8467, records[0].Latitude)
	assert.Equal(t, 80.9462, records[0].Longitude)
	assert.Equal(t, []string{"Theft", "26.8467", "80.9462", "phone snatched near market"}, records[0].Raw)
	assert.Equal(t, "3", records[2].ID)
	assert.Equal(t, "Chain Snatching", records[2].Category)
}

func TestCrimeDatasetLoad_HeaderCaseInsensitive(t *testing.T) {
	// Подготовка
	ds := newTestCrimeDataset(t)
	path := writeCrimeFile(t, "crimes.csv", "TYPE,Latitude,LONGITUDE\nRobbery,26.84,80.94\n")

	// Действие
	count, err := ds.Load(context.Background(), path)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "Robbery", ds.GetAll()[0].Category)
}

func TestCrimeDatasetLoad_DropsInvalidRows(t *testing.T) {
	// Подготовка
	// Строки с координатами за пределами, нечисловыми значениями и недостающими
	// колонками пропускаются, остальные загружаются
	ds := newTestCrimeDataset(t)
	content := `type,latitude,longitude
Theft,26.8467,80.9462
Assault,200.0,80.9462
Robbery,abc,80.9462
Stalking
Harassment,26.8527,80.9500
`
	path := writeCrimeFile(t, "crimes.csv", content)

	// Действие
	count, err := ds.Load(context.Background(), path)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	records := ds.GetAll()
	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "Theft", records[0].Category)
	assert.Equal(t, "2", records[1].ID, "нумерация идет по принятым записям, а не по строкам файла")
	assert.Equal(t, "Harassment", records[1].Category)
}

func TestCrimeDatasetLoad_RecoversAfterMalformedRow(t *testing.T) {
	// Подготовка
	// Строка со сломанной разметкой CSV отбрасывается, чтение продолжается
	ds := newTestCrimeDataset(t)
	content := "type,latitude,longitude\nTheft,26.84,80.94\nAssault,26.85,bro\"ken\nRobbery,26.86,80.96\n"
	path := writeCrimeFile(t, "crimes.csv", content)

	// Действие
	count, err := ds.Load(context.Background(), path)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	records := ds.GetAll()
	assert.Equal(t, "Theft", records[0].Category)
	assert.Equal(t, "Robbery", records[1].Category)
}

func TestCrimeDatasetLoad_TypeColumnOptional(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"колонка type отсутствует", "latitude,longitude\n26.84,80.94\n"},
		{"ячейка type пустая", "type,latitude,longitude\n,26.84,80.94\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Подготовка
			ds := newTestCrimeDataset(t)
			path := writeCrimeFile(t, "crimes.csv", tt.content)

			// Действие
			count, err := ds.Load(context.Background(), path)

			// Проверки
			require.NoError(t, err)
			require.Equal(t, 1, count)
			assert.Equal(t, "Unknown", ds.GetAll()[0].Category)
		})
	}
}

func TestCrimeDatasetLoad_MissingFile(t *testing.T) {
	// Подготовка
	ds := newTestCrimeDataset(t)
	path := filepath.Join(t.TempDir(), "does-not-exist.csv")

	// Действие
	count, err := ds.Load(context.Background(), path)

	// Проверки
	// Отсутствующий файл — не ошибка: сервис стартует с пустым набором
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, ds.GetAll())
	assert.True(t, ds.Stats().Loaded)
}

func TestCrimeDatasetLoad_MissingRequiredColumns(t *testing.T) {
	// Подготовка
	ds := newTestCrimeDataset(t)
	path := writeCrimeFile(t, "crimes.csv", "type,description\nTheft,no coordinates here\n")

	// Действие
	count, err := ds.Load(context.Background(), path)

	// Проверки
	require.Error(t, err)
	assert.Zero(t, count)
	assert.ErrorContains(t, err, "latitude and longitude")
	assert.Empty(t, ds.GetAll(), "после неудачной загрузки набор пуст")
}

func TestCrimeDatasetLoad_EmptyFile(t *testing.T) {
	// Подготовка
	ds := newTestCrimeDataset(t)
	path := writeCrimeFile(t, "crimes.csv", "")

	// Действие
	count, err := ds.Load(context.Background(), path)

	// Проверки
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.True(t, ds.Stats().Loaded)
}

func TestCrimeDatasetLoad_Gzip(t *testing.T) {
	// Подготовка
	ds := newTestCrimeDataset(t)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(baseCrimeCSV))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	path := filepath.Join(t.TempDir(), "crimes.csv.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	// Действие
	count, err := ds.Load(context.Background(), path)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, "Theft", ds.GetAll()[0].Category)
}

func TestCrimeDatasetLoad_ReplacesPreviousGeneration(t *testing.T) {
	// Подготовка
	ds := newTestCrimeDataset(t)
	first := writeCrimeFile(t, "first.csv", baseCrimeCSV)
	second := writeCrimeFile(t, "second.csv", "type,latitude,longitude\nAssault,26.95,81.00\n")

	_, err := ds.Load(context.Background(), first)
	require.NoError(t, err)

	// Действие
	count, err := ds.Load(context.Background(), second)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	records := ds.GetAll()
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].ID, "нумерация нового поколения начинается заново")
	assert.Equal(t, "Assault", records[0].Category)
}

func TestCrimeDatasetLoad_CanceledContext(t *testing.T) {
	// Подготовка
	// Отмена контекста проверяется каждые 1000 строк
	ds := newTestCrimeDataset(t)

	var sb strings.Builder
	sb.WriteString("type,latitude,longitude\n")
	for i := 0; i < 1500; i++ {
		fmt.Fprintf(&sb, "Theft,26.%04d,80.9462\n", i)
	}
	path := writeCrimeFile(t, "big.csv", sb.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Действие
	_, err := ds.Load(ctx, path)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCrimeDatasetFilterByType(t *testing.T) {
	// Подготовка
	ds := newTestCrimeDataset(t)
	_, err := ds.Load(context.Background(), writeCrimeFile(t, "crimes.csv", baseCrimeCSV))
	require.NoError(t, err)

	// Действие и проверки
	// Фильтр — подстрока без учета регистра, пустой фильтр возвращает все
	assert.Len(t, ds.FilterByType("theft"), 1)
	assert.Len(t, ds.FilterByType("THEFT"), 1)
	assert.Len(t, ds.FilterByType("snatching"), 1)
	assert.Len(t, ds.FilterByType(""), 3)
	assert.Empty(t, ds.FilterByType("kidnapping"))
}

func TestCrimeDatasetFilterByArea(t *testing.T) {
	// Подготовка
	ds := newTestCrimeDataset(t)
	_, err := ds.Load(context.Background(), writeCrimeFile(t, "crimes.csv", baseCrimeCSV))
	require.NoError(t, err)
	centerLat, centerLng := 26.8467, 80.9462

	// Действие и проверки
	within, err := ds.FilterByArea(centerLat, centerLng, 1000)
	require.NoError(t, err)
	assert.Len(t, within, 2)

	// Вторая запись ровно на границе радиуса — граница включается
	within, err = ds.FilterByArea(centerLat, centerLng, 667)
	require.NoError(t, err)
	assert.Len(t, within, 2)

	within, err = ds.FilterByArea(centerLat, centerLng, 666)
	require.NoError(t, err)
	assert.Len(t, within, 1)

	within, err = ds.FilterByArea(centerLat, centerLng, 8000)
	require.NoError(t, err)
	assert.Len(t, within, 3)
}

func TestCrimeDatasetFilterByArea_Validation(t *testing.T) {
	// Подготовка
	ds := newTestCrimeDataset(t)
	_, err := ds.Load(context.Background(), writeCrimeFile(t, "crimes.csv", baseCrimeCSV))
	require.NoError(t, err)

	// Действие и проверки
	_, err = ds.FilterByArea(200.0, 80.9462, 1000)
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)

	_, err = ds.FilterByArea(26.8467, 80.9462, 0)
	assert.ErrorIs(t, err, models.ErrInvalidRadius)

	_, err = ds.FilterByArea(26.8467, 80.9462, -50)
	assert.ErrorIs(t, err, models.ErrInvalidRadius)
}

func TestCrimeDatasetQuery_Combined(t *testing.T) {
	// Подготовка
	ds := newTestCrimeDataset(t)
	_, err := ds.Load(context.Background(), writeCrimeFile(t, "crimes.csv", baseCrimeCSV))
	require.NoError(t, err)
	area := &models.AreaFilter{Latitude: 26.8467, Longitude: 80.9462, RadiusMeters: 1000}

	// Действие и проверки
	// Сначала категория, затем область по уже отфильтрованному подмножеству
	records, err := ds.Query("harassment", area)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Harassment", records[0].Category)

	records, err = ds.Query("snatching", area)
	require.NoError(t, err)
	assert.Empty(t, records, "категория совпала, но запись вне радиуса")

	records, err = ds.Query("", nil)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	_, err = ds.Query("", &models.AreaFilter{Latitude: 200, Longitude: 80, RadiusMeters: 1000})
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)

	_, err = ds.Query("", &models.AreaFilter{Latitude: 26.8467, Longitude: 80.9462, RadiusMeters: 0})
	assert.ErrorIs(t, err, models.ErrInvalidRadius)
}

func TestCrimeDatasetStats(t *testing.T) {
	// Подготовка
	ds := newTestCrimeDataset(t)
	_, err := ds.Load(context.Background(), writeCrimeFile(t, "crimes.csv", baseCrimeCSV))
	require.NoError(t, err)

	// Действие
	stats := ds.Stats()

	// Проверки
	assert.Equal(t, 3, stats.Total)
	assert.True(t, stats.Loaded)
	assert.Equal(t, map[string]int{"Theft": 1, "Harassment": 1, "Chain Snatching": 1}, stats.ByCategory)
}

func TestCrimeDatasetQueriedBeforeLoad(t *testing.T) {
	// Подготовка
	ds := newTestCrimeDataset(t)

	// Действие и проверки
	// До первой загрузки набор пуст, запросы не падают
	assert.Empty(t, ds.GetAll())
	assert.Empty(t, ds.FilterByType("theft"))

	records, err := ds.FilterByArea(26.8467, 80.9462, 1000)
	require.NoError(t, err)
	assert.Empty(t, records)

	stats := ds.Stats()
	assert.Zero(t, stats.Total)
	assert.False(t, stats.Loaded)
}
