package queryparams

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Sorgu dizesinden gelen filtre/sayfalama parametrelerini GORM sorgusuna
// uygulayan yardımcılar. Filtreler `alan[op]=deger` biçimindedir ve
// eq/like/gte/lte/gt/lt operatörlerini destekler.

const (
	DefaultLimit   = 10
	MaxLimit       = 100
	DefaultOrderBy = "desc"
)

// Condition tek bir filtre koşulunu taşır.
type Condition struct {
	Field    string
	Operator string
	Value    string
}

// ListParams listeleme uçlarının ortak parametre kümesi.
type ListParams struct {
	Conditions []Condition
	Limit      int
	Offset     int
	SortBy     string
	SortOrder  string
}

// Validate sayfalama sınırlarını makul aralığa çeker.
func (p *ListParams) Validate() {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	order := strings.ToLower(p.SortOrder)
	if order != "asc" && order != "desc" {
		p.SortOrder = DefaultOrderBy
	} else {
		p.SortOrder = order
	}
}

// IsFieldAllowed koşul ve sıralama alanlarının izin listesinde olup
// olmadığını kontrol eder. Geçersiz parametre BadRequest'e çevrilir.
func (p *ListParams) IsFieldAllowed(allowed []string) bool {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		allowedSet[f] = struct{}{}
	}
	for _, c := range p.Conditions {
		if _, ok := allowedSet[c.Field]; !ok {
			return false
		}
	}
	if p.SortBy != "" {
		if _, ok := allowedSet[p.SortBy]; !ok {
			return false
		}
	}
	return true
}

// Parse query map'inden ListParams üretir. Tanınan operatör ekleri
// dışındaki anahtarlar (limit, offset, sortBy, sortOrder hariç) eq kabul edilir.
func Parse(query map[string]string) ListParams {
	params := ListParams{}
	for key, value := range query {
		switch key {
		case "limit":
			fmt.Sscanf(value, "%d", &params.Limit)
		case "offset":
			fmt.Sscanf(value, "%d", &params.Offset)
		case "sortBy":
			params.SortBy = value
		case "sortOrder":
			params.SortOrder = value
		default:
			field, op := splitOperator(key)
			params.Conditions = append(params.Conditions, Condition{Field: field, Operator: op, Value: value})
		}
	}
	params.Validate()
	return params
}

// splitOperator "eventId[eq]" gibi bir anahtarı alan ve operatöre ayırır.
func splitOperator(key string) (string, string) {
	open := strings.Index(key, "[")
	if open > 0 && strings.HasSuffix(key, "]") {
		field := key[:open]
		op := key[open+1 : len(key)-1]
		switch op {
		case "eq", "like", "gte", "lte", "gt", "lt":
			return field, op
		}
	}
	return key, "eq"
}

// Apply koşulları, sıralamayı ve sayfalamayı sorguya ekler.
// columns eşlemesi dış alan adını veritabanı sütununa çevirir; eşlemede
// olmayan alanlar sessizce atlanır (izin listesi görevini de görür).
func (p ListParams) Apply(db *gorm.DB, columns map[string]string) *gorm.DB {
	query := db
	for _, c := range p.Conditions {
		column, ok := columns[c.Field]
		if !ok {
			continue
		}
		switch c.Operator {
		case "like":
			query = query.Where(column+" LIKE ?", "%"+c.Value+"%")
		case "gte":
			query = query.Where(column+" >= ?", c.Value)
		case "lte":
			query = query.Where(column+" <= ?", c.Value)
		case "gt":
			query = query.Where(column+" > ?", c.Value)
		case "lt":
			query = query.Where(column+" < ?", c.Value)
		default:
			query = query.Where(column+" = ?", c.Value)
		}
	}
	if p.SortBy != "" {
		if column, ok := columns[p.SortBy]; ok {
			query = query.Order(column + " " + p.SortOrder)
		}
	}
	return query.Limit(p.Limit).Offset(p.Offset)
}
