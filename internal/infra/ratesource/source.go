package ratesource

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/BurntSushi/toml"

	"github.com/resortdesk/quote-service/internal/domain"
)

// Source хранит текущую тарифную таблицу. Чтение без блокировок,
// замена атомарная: читатели видят либо старую, либо новую таблицу целиком.
type Source struct {
	path    string
	persist bool

	table atomic.Pointer[domain.RateTable]
	// mu сериализует запись файла при замене
	mu sync.Mutex
}

// Load читает тарифы из TOML-файла.
// persist=true означает, что Replace перезаписывает файл.
func Load(path string, persist bool) (*Source, error) {
	var table domain.RateTable
	if _, err := toml.DecodeFile(path, &table); err != nil {
		return nil, fmt.Errorf("%w: Load - decode %s: %v", ErrReadFile, path, err)
	}

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("%w: Load - %v", ErrInvalidTable, err)
	}

	s := &Source{path: path, persist: persist}
	s.table.Store(&table)
	return s, nil
}

// New создает источник из готовой таблицы без привязки к файлу
func New(table *domain.RateTable) *Source {
	s := &Source{}
	s.table.Store(table)
	return s
}

// Current возвращает текущую таблицу. Возвращенное значение не изменяется.
func (s *Source) Current() *domain.RateTable {
	return s.table.Load()
}

// Replace проверяет и целиком заменяет таблицу
func (s *Source) Replace(table *domain.RateTable) error {
	if err := table.Validate(); err != nil {
		return fmt.Errorf("%w: Replace - %v", ErrInvalidTable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persist && s.path != "" {
		if err := writeFile(s.path, table); err != nil {
			return fmt.Errorf("%w: Replace - %v", ErrPersist, err)
		}
	}

	s.table.Store(table)
	return nil
}

func writeFile(path string, table *domain.RateTable) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(toFileTable(table)); err != nil {
		return fmt.Errorf("encode: %v", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".rates-*.toml")
	if err != nil {
		return fmt.Errorf("create temp file: %v", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %v", err)
	}

	return os.Rename(tmp.Name(), path)
}
