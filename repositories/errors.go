package repositories

import "errors"

// ErrNotFound aranan kayıt bulunamadığında tüm repository'lerin döndürdüğü
// ortak hatadır. Servis katmanı bunu kendi hata tipine çevirir.
var ErrNotFound = errors.New("kayıt bulunamadı")
