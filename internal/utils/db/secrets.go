package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KromaTelecom/api-pedidos/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SecretsAPI é o recorte do cliente do Secrets Manager que usamos.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

func novoClienteSecrets(ctx context.Context) (SecretsAPI, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("carregando config da AWS: %w", err)
	}
	return secretsmanager.NewFromConfig(cfg), nil
}

// Credenciais prefere DB_USERNAME/DB_PASSWORD; sem elas lê o segredo DB_SECRET_ID.
// client nil usa o cliente padrão da AWS.
func Credenciais(ctx context.Context, cfg config.Banco, client SecretsAPI) (string, string, error) {
	if cfg.Usuario != "" && cfg.Senha != "" {
		return cfg.Usuario, cfg.Senha, nil
	}
	if cfg.SecretID == "" {
		return "", "", errors.New("credenciais do banco ausentes: defina DB_USERNAME/DB_PASSWORD ou DB_SECRET_ID")
	}

	if client == nil {
		var err error
		if client, err = novoClienteSecrets(ctx); err != nil {
			return "", "", err
		}
	}

	result, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(cfg.SecretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", "", fmt.Errorf("lendo segredo %s: %w", cfg.SecretID, err)
	}
	if result.SecretString == nil {
		return "", "", fmt.Errorf("segredo %s sem SecretString", cfg.SecretID)
	}

	var secret Credentials
	if err := json.Unmarshal([]byte(*result.SecretString), &secret); err != nil {
		return "", "", fmt.Errorf("segredo %s mal formado: %w", cfg.SecretID, err)
	}
	return secret.Username, secret.Password, nil
}
