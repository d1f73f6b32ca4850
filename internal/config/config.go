package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/StounhandJ/video_helper/internal/platform"
)

var (
	configPath      = "config/config.yaml"
	devConfigPath   = "config/config.dev.yaml"
	localConfigPath = "config/config.local.yaml"
)

var (
	ErrNoAllowedPrefixes = errors.New("Proxy.AllowedPrefixes must not be empty")
	ErrNoDefaultAsset    = errors.New("Download.DefaultAsset must not be empty")
	ErrBadPort           = errors.New("Application.Port must be in 1..65535")
	ErrBadRateLimit      = errors.New("Proxy.RateLimit must not be negative")
)

// Duration читается из yaml как "5m", целое число секунд или дробное число секунд
type Duration time.Duration

func LoadConfig(c any) error {
	// .env не обязателен
	_ = godotenv.Load()

	var path string

	switch os.Getenv("ENV") {
	case "local":
		path = localConfigPath
	case "dev":
		path = devConfigPath
	case "prod":
		path = configPath
	default:
		path = configPath
	}

	return parseConfig(c, path, CommonParseOptions)
}

func parseConfig(c any, path string, opts parseOptions) error {
	if err := readFile(c, path); err != nil {
		return err
	}

	return CommonHelp("video_helper", "Запустить сервер", "", c, opts)
}

func readFile(cfg interface{}, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Fatal(cerr)
		}
	}()

	decoder := yaml.NewDecoder(f)

	if err = decoder.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode yaml file %s: %w", path, err)
	}

	return nil
}

// Validate нормализует конфиг после загрузки. Возвращает предупреждения, которые
// нужно залогировать после инициализации логгера
func (c *Config) Validate() ([]string, error) {
	var warnings []string

	if c.Application.Port < 1 || c.Application.Port > 65535 {
		return nil, fmt.Errorf("%w: %d", ErrBadPort, c.Application.Port)
	}

	c.Application.PublicURL = strings.TrimRight(strings.TrimSpace(c.Application.PublicURL), "/")
	c.Application.AllowedOrigins = cleanList(c.Application.AllowedOrigins)

	for _, o := range c.Application.AllowedOrigins {
		if o == "*" {
			c.Application.AllowedOrigins = nil

			break
		}
	}

	c.Proxy.AllowedPrefixes = cleanList(c.Proxy.AllowedPrefixes)
	if len(c.Proxy.AllowedPrefixes) == 0 {
		return nil, ErrNoAllowedPrefixes
	}

	if strings.TrimSpace(c.Proxy.Filename) == "" {
		c.Proxy.Filename = "video.mp4"
	}

	if c.Proxy.RateLimit < 0 {
		return nil, ErrBadRateLimit
	}

	if c.Proxy.RateLimit > 0 && c.Proxy.RateBurst < 1 {
		c.Proxy.RateBurst = 1
	}

	c.Download.DefaultAsset = strings.TrimSpace(c.Download.DefaultAsset)
	if c.Download.DefaultAsset == "" {
		return nil, ErrNoDefaultAsset
	}

	if !c.Proxy.IsAllowed(c.Download.DefaultAsset) {
		warnings = append(warnings, fmt.Sprintf("Download.DefaultAsset %q не входит в Proxy.AllowedPrefixes, ссылка ready вернёт 400", c.Download.DefaultAsset))
	}

	assets := make(map[string]string, len(c.Download.Assets))

	for key, asset := range c.Download.Assets {
		p := platform.Parse(key)
		if p == "" || p == platform.Unknown {
			warnings = append(warnings, fmt.Sprintf("Download.Assets: неизвестная платформа %q пропущена", key))

			continue
		}

		asset = strings.TrimSpace(asset)
		if !c.Proxy.IsAllowed(asset) {
			warnings = append(warnings, fmt.Sprintf("Download.Assets[%s] %q не входит в Proxy.AllowedPrefixes", p, asset))
		}

		assets[p.String()] = asset
	}

	c.Download.Assets = assets

	return warnings, nil
}

// IsAllowed - простое сравнение префикса, других проверок источника нет
func (p Proxy) IsAllowed(source string) bool {
	for _, prefix := range p.AllowedPrefixes {
		if strings.HasPrefix(source, prefix) {
			return true
		}
	}

	return false
}

// Asset возвращает файл для платформы или файл по умолчанию
func (d Download) Asset(p platform.Platform) string {
	if asset, ok := d.Assets[p.String()]; ok && asset != "" {
		return asset
	}

	return d.DefaultAsset
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))

	for _, v := range in {
		// значения из env могут прийти одной строкой через запятую
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

// UnmarshalYAML реализует InterfaceUnmarshaler (UnmarshalYAML(func(interface{}) error) error).
// Поддерживает:
// - строку parseable через time.ParseDuration, например "5m", "1h30m"
// - целое число (интерпретируем как секунды)
// - числовой тип (float) - тоже как секунды с дробной частью
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		// число без единиц goccy тоже отдаёт строкой, тогда пробуем дальше
		if dur, err := time.ParseDuration(s); err == nil {
			*d = Duration(dur)

			return nil
		}
	}

	var i int64
	if err := unmarshal(&i); err == nil {
		*d = Duration(time.Duration(i) * time.Second)

		return nil
	}

	var f float64
	if err := unmarshal(&f); err == nil {
		*d = Duration(time.Duration(f * float64(time.Second)))

		return nil
	}

	return fmt.Errorf("unsupported duration format")
}

// MarshalYAML - запишет строку "5m0s"
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
