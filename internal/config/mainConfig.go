package config

type Config struct {
	Application Application `yaml:"Application" env:"APP" flag:""`
	Proxy       Proxy       `yaml:"Proxy" env:"PROXY"`
	Download    Download    `yaml:"Download" env:"DOWNLOAD"`
	Telegram    Telegram    `yaml:"Telegram" env:"TG" cli:"optional"`
}

type Application struct {
	Name            string   `yaml:"Name" usage:"Имя сервиса в ответе GET /"`
	Author          string   `yaml:"Author" usage:"Автор в ответе GET /"`
	LogLevel        string   `yaml:"LogLevel" env:"LOGLEVEL"`
	Port            int      `yaml:"Port" envprefix:"" env:"PORT" usage:"Порт HTTP сервера"`
	PublicURL       string   `yaml:"PublicURL" env:"PUBLIC_URL" flag:"public-url" cli:"optional" usage:"Внешний адрес сервиса для ссылок на скачивание"`
	ProxyURL        string   `yaml:"ProxyURL" env:"PROXY_URL" flag:"proxy-url" cli:"optional" usage:"Прокси для исходящих запросов"`
	AllowedOrigins  []string `yaml:"AllowedOrigins" envprefix:"" env:"ALLOWED_ORIGINS" cli:"optional" usage:"Разрешённые CORS origin через запятую, пусто - все"`
	ShutdownTimeout Duration `yaml:"ShutdownTimeout" usage:"Время на корректное завершение"`
}

type Proxy struct {
	AllowedPrefixes []string `yaml:"AllowedPrefixes" usage:"Префиксы ссылок, которые можно проксировать"`
	Filename        string   `yaml:"Filename" usage:"Имя файла в Content-Disposition"`
	HeaderTimeout   Duration `yaml:"HeaderTimeout" usage:"Таймаут ожидания заголовков источника"`
	RateLimit       float64  `yaml:"RateLimit" cli:"optional" usage:"Запросов в секунду на /direct-download, 0 - без лимита"`
	RateBurst       int      `yaml:"RateBurst" cli:"optional"`
}

type Download struct {
	DefaultAsset  string            `yaml:"DefaultAsset" usage:"Файл, который отдаётся в ответе ready"`
	Assets        map[string]string `yaml:"Assets" cli:"-"`
	FetchMetadata bool              `yaml:"FetchMetadata" usage:"Дополнять ответ названием и обложкой видео"`
}

type Telegram struct {
	Token        string `yaml:"Token" env:"BOT_TOKEN" flag:"token" cli:"optional" usage:"Токен телеграм бота"`
	ThumbnailURL string `yaml:"ThumbnailURL" cli:"optional" usage:"Обложка для inline ответа, если у ролика её нет"`
	Debug        bool   `yaml:"Debug" cli:"optional"`
}
