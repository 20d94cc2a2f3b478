package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/KromaTelecom/api-pedidos/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type fakeSecrets struct {
	valor *string
	err   error
	lido  string
}

func (f *fakeSecrets) GetSecretValue(_ context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.lido = aws.ToString(in.SecretId)
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: f.valor}, nil
}

func TestDSN(t *testing.T) {
	cfg := config.Banco{Host: "db", Porta: 5432, Nome: "pedidos"}
	if got := DSN(cfg, "u", "p"); got != "host=db user=u password=p dbname=pedidos port=5432" {
		t.Fatalf("unexpected dsn %q", got)
	}
	cfg.SSLDesativar = true
	if got := DSN(cfg, "u", "p"); !strings.HasSuffix(got, " sslmode=disable") {
		t.Fatalf("expected sslmode=disable, got %q", got)
	}
}

func TestCredenciais(t *testing.T) {
	ctx := context.Background()

	t.Run("ambiente tem prioridade", func(t *testing.T) {
		f := &fakeSecrets{err: errors.New("não deveria chamar")}
		u, p, err := Credenciais(ctx, config.Banco{Usuario: "app", Senha: "s3", SecretID: "x"}, f)
		if err != nil || u != "app" || p != "s3" || f.lido != "" {
			t.Fatalf("unexpected %q %q %v (read %q)", u, p, err, f.lido)
		}
	})

	t.Run("segredo", func(t *testing.T) {
		f := &fakeSecrets{valor: aws.String(`{"username":"svc","password":"pw"}`)}
		u, p, err := Credenciais(ctx, config.Banco{SecretID: "rds/pedidos"}, f)
		if err != nil || u != "svc" || p != "pw" {
			t.Fatalf("unexpected %q %q %v", u, p, err)
		}
		if f.lido != "rds/pedidos" {
			t.Fatalf("expected secret id rds/pedidos, got %q", f.lido)
		}
	})

	t.Run("sem credencial nenhuma", func(t *testing.T) {
		if _, _, err := Credenciais(ctx, config.Banco{}, &fakeSecrets{}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("segredo mal formado", func(t *testing.T) {
		f := &fakeSecrets{valor: aws.String("nao-e-json")}
		if _, _, err := Credenciais(ctx, config.Banco{SecretID: "x"}, f); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("falha da aws", func(t *testing.T) {
		f := &fakeSecrets{err: errors.New("AccessDenied")}
		_, _, err := Credenciais(ctx, config.Banco{SecretID: "x"}, f)
		if err == nil || !strings.Contains(err.Error(), "AccessDenied") {
			t.Fatalf("expected wrapped aws error, got %v", err)
		}
	})
}
