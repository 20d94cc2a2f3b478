package db

import (
	"context"
	"fmt"
	"time"

	"github.com/KromaTelecom/api-pedidos/internal/config"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN monta a string de conexão do driver postgres.
func DSN(cfg config.Banco, usuario, senha string) string {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d", cfg.Host, usuario, senha, cfg.Nome, cfg.Porta)
	if cfg.SSLDesativar {
		dsn += " sslmode=disable"
	}
	return dsn
}

// Conectar abre o pool do gorm. As credenciais vêm do ambiente ou, na falta delas, do Secrets Manager.
func Conectar(ctx context.Context, cfg config.Banco, log logrus.FieldLogger) (*gorm.DB, error) {
	usuario, senha, err := Credenciais(ctx, cfg, nil)
	if err != nil {
		return nil, err
	}

	database, err := gorm.Open(postgres.Open(DSN(cfg, usuario, senha)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("abrindo conexão com %s: %w", cfg.Host, err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxAbertas)
	sqlDB.SetMaxIdleConns(cfg.MaxOciosas)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping no banco %s: %w", cfg.Host, err)
	}

	log.WithFields(logrus.Fields{"host": cfg.Host, "banco": cfg.Nome}).Info("banco conectado")
	return database, nil
}
