package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// Config is read once at startup. Every knob has a default so the server
// runs with no environment at all.
type Config struct {
	HTTPAddr       string
	SocketAddr     string
	AllowedOrigins []string
	StaticDir      string

	MaxPlayers     int
	StartMoney     int
	PassGoBonus    int
	LuxuryTax      int
	IncomeTaxPct   int
	AuctionTimeout time.Duration
}

func Load() Config {
	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":4101"),
		SocketAddr:     getenv("SOCKET_ADDR", ":8000"),
		AllowedOrigins: strings.Split(getenv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		StaticDir:      getenv("STATIC_DIR", "./static"),
		MaxPlayers:     getenvInt("MAX_PLAYERS_PER_ROOM", 6),
		StartMoney:     getenvInt("START_MONEY", 1500),
		PassGoBonus:    getenvInt("PASS_GO_BONUS", 200),
		LuxuryTax:      getenvInt("LUXURY_TAX", 75),
		IncomeTaxPct:   getenvInt("INCOME_TAX_PCT", 10),
		AuctionTimeout: time.Duration(getenvInt("AUCTION_TIMEOUT_MS", 30000)) * time.Millisecond,
	}
}

func getenv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
