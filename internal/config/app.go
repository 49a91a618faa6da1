package config

// AppConfig — настройки HTTP-сервера и аутентификации.
type AppConfig struct {
	// Адрес HTTP-сервера, например ":8080".
	HTTPAddr string

	// Секрет проверки подписи JWT (HS256). Токены выпускает внешний
	// identity-сервис, здесь они только проверяются.
	JWTSecret string

	// "debug" | "info" | "warn" | "error"
	LogLevel string

	// Человекочитаемый вывод логов для разработки.
	LogPretty bool
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
		JWTSecret: getEnv("JWT_SECRET", ""),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnv("ENV", "") == "development",
	}
}
