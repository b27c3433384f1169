package config

import (
	"github.com/joho/godotenv"
	"os"
	"strconv"
	"time"
)

type ServerConfig struct {
	Env     string        `env:"ENV,required"` // local, dev, prod
	Address string        `env:"ADDRESS,required"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

type DatabaseConfig struct {
	PostgresConn string `env:"POSTGRES_CONN,required"`
}

type JWTConfig struct {
	Secret                  string `env:"JWT_SECRET,required"`
	AccessExpirationMinutes int    `env:"ACCESS_EXPIRATION_MINUTES" envDefault:"15"`
	RefreshExpirationDays   int    `env:"REFRESH_EXPIRATION_DAYS" envDefault:"7"`
}

type GatewayConfig struct {
	APIBase    string `env:"API_BASE" envDefault:"http://localhost:8080"`
	LedgerPath string `env:"LEDGER_PATH" envDefault:"student-coin-demo.json"`
}

// EmailConfig carries the transactional email provider settings. An empty
// ServiceID or PublicKey disables all sends.
type EmailConfig struct {
	ServiceID                 string `env:"EMAILJS_SERVICE_ID"`
	PublicKey                 string `env:"EMAILJS_PUBLIC_KEY"`
	TemplateTransferAdmin     string `env:"EMAILJS_TEMPLATE_TRANSFER_ADMIN"`
	TemplateTransferStudent   string `env:"EMAILJS_TEMPLATE_TRANSFER_STUDENT"`
	TemplateTransferProfessor string `env:"EMAILJS_TEMPLATE_TRANSFER_PROFESSOR"`
	TemplateRedeemStudent     string `env:"EMAILJS_TEMPLATE_REDEEM_STUDENT"`
	TemplateRedeemCompany     string `env:"EMAILJS_TEMPLATE_REDEEM_COMPANY"`
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Gateway  GatewayConfig
	Email    EmailConfig
}

const (
	local = ".env.local"
	dev   = ".env.dev"
	prod  = ".env.prod"
)

func MustLoad() *Config {
	if err := godotenv.Load(local); err != nil {
		panic(err)
	}

	timeoutStr := os.Getenv("TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		panic("Invalid TIMEOUT format: " + err.Error())
	}

	accessExpStr := os.Getenv("ACCESS_EXPIRATION_MINUTES")
	accessExp, err := strconv.Atoi(accessExpStr)
	if err != nil {
		panic("Invalid ACCESS_EXPIRATION_MINUTES format: " + err.Error())
	}

	refreshExpStr := os.Getenv("REFRESH_EXPIRATION_DAYS")
	refreshExp, err := strconv.Atoi(refreshExpStr)
	if err != nil {
		panic("Invalid REFRESH_EXPIRATION_DAYS format: " + err.Error())
	}

	return &Config{
		Server: ServerConfig{
			Env:     os.Getenv("ENV"),
			Address: os.Getenv("ADDRESS"),
			Timeout: timeout,
		},
		Database: DatabaseConfig{
			PostgresConn: os.Getenv("POSTGRES_CONN"),
		},
		JWT: JWTConfig{
			Secret:                  os.Getenv("JWT_SECRET"),
			AccessExpirationMinutes: accessExp,
			RefreshExpirationDays:   refreshExp,
		},
		Gateway: loadGateway(),
		Email:   loadEmail(),
	}
}

// MustLoadClient loads only what the gateway side needs. The demo client runs
// without Postgres/Redis/JWT settings, so missing server keys are not an
// error here and a missing env file is fine too.
func MustLoadClient() *Config {
	_ = godotenv.Load(local)

	return &Config{
		Gateway: loadGateway(),
		Email:   loadEmail(),
	}
}

func loadGateway() GatewayConfig {
	apiBase := os.Getenv("API_BASE")
	if apiBase == "" {
		apiBase = "http://localhost:8080"
	}

	ledgerPath := os.Getenv("LEDGER_PATH")
	if ledgerPath == "" {
		ledgerPath = "student-coin-demo.json"
	}

	return GatewayConfig{
		APIBase:    apiBase,
		LedgerPath: ledgerPath,
	}
}

func loadEmail() EmailConfig {
	return EmailConfig{
		ServiceID:                 os.Getenv("EMAILJS_SERVICE_ID"),
		PublicKey:                 os.Getenv("EMAILJS_PUBLIC_KEY"),
		TemplateTransferAdmin:     os.Getenv("EMAILJS_TEMPLATE_TRANSFER_ADMIN"),
		TemplateTransferStudent:   os.Getenv("EMAILJS_TEMPLATE_TRANSFER_STUDENT"),
		TemplateTransferProfessor: os.Getenv("EMAILJS_TEMPLATE_TRANSFER_PROFESSOR"),
		TemplateRedeemStudent:     os.Getenv("EMAILJS_TEMPLATE_REDEEM_STUDENT"),
		TemplateRedeemCompany:     os.Getenv("EMAILJS_TEMPLATE_REDEEM_COMPANY"),
	}
}
