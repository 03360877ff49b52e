package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış loglama için global zap logger.
// SLog ise printf tarzı kullanım için sugared versiyonu.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger ortam değişkenine göre logger'ı hazırlar.
// APP_ENV=production ise JSON formatında, aksi halde geliştirme formatında loglar.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logger kurulamazsa uygulama devam edemez.
		panic("logger baslatilamadi: " + err.Error())
	}
	Log = logger
	SLog = logger.Sugar()
}

// Sync tamponlanmış log kayıtlarını boşaltır. main içinde defer ile çağrılır.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

func init() {
	// Testler ve migration aracı gibi InitLogger çağırmayan girişler için
	// sessiz bir varsayılan ata.
	if Log == nil {
		Log = zap.NewNop()
		SLog = Log.Sugar()
	}
}
