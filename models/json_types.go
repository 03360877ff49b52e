package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON kolonlarında saklanan yardımcı tipler. GORM'un desteklediği her
// sürücüde çalışması için değerler metin olarak yazılıp okunur.

// RSVPQuestion davetle birlikte sorulan LCV sorusunu taşır.
type RSVPQuestion struct {
	Title string `json:"title"`
}

// RSVPResponse LCV sorusuna verilebilecek seçenekleri ve işaret durumlarını
// taşır.
type RSVPResponse struct {
	Options map[string]bool `json:"options"`
}

// StringList JSON dizisi olarak saklanan string listesi.
type StringList []string

func (q RSVPQuestion) Value() (driver.Value, error) {
	return json.Marshal(q)
}

func (q *RSVPQuestion) Scan(value interface{}) error {
	return scanJSON(value, q)
}

func (r RSVPResponse) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *RSVPResponse) Scan(value interface{}) error {
	return scanJSON(value, r)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(l))
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("json kolon için beklenmeyen tip: %T", value)
	}
}
