package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Единственный администратор бота: все привилегированные команды сверяются
// с этим Telegram ID
const defaultAdminChatID int64 = 457081438

type Config struct {
	TelegramToken string
	DBDSN         string
	AdminChatID   int64
	Environment   string
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	// Читаем напрямую из переменных окружения (после godotenv.Load они там)
	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DBDSN:         os.Getenv("DB_DSN"),
		AdminChatID:   defaultAdminChatID,
		Environment:   os.Getenv("ENV"),
	}

	if raw := os.Getenv("ADMIN_CHAT_ID"); raw != "" {
		adminChatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_CHAT_ID must be a number: %w", err)
		}
		cfg.AdminChatID = adminChatID
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	// Проверяем обязательные поля: без токена и базы боту не стартовать
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	log.Printf("Config loaded\n")

	return cfg, nil
}
