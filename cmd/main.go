package main

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KromaTelecom/api-pedidos/internal/auth"
	"github.com/KromaTelecom/api-pedidos/internal/config"
	"github.com/KromaTelecom/api-pedidos/internal/eventos"
	"github.com/KromaTelecom/api-pedidos/internal/linhas"
	"github.com/KromaTelecom/api-pedidos/internal/notificacao"
	"github.com/KromaTelecom/api-pedidos/internal/pedido"
	"github.com/KromaTelecom/api-pedidos/internal/produto"
	"github.com/KromaTelecom/api-pedidos/internal/upsell"
	"github.com/KromaTelecom/api-pedidos/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	log := config.NovoLogger(cfg.LogLevel).WithField("service", cfg.ServiceName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Conectar(ctx, cfg.Banco, log)
	if err != nil {
		log.WithError(err).Fatal("Erro ao conectar no banco")
	}

	// AutoMigrate na ordem das chaves estrangeiras
	for _, migrar := range []func(*gorm.DB) error{produto.Migrate, pedido.Migrate, linhas.Migrate} {
		if err := migrar(database); err != nil {
			log.WithError(err).Fatal("Erro no AutoMigrate")
		}
	}

	chave, err := auth.CarregarChavePublica(cfg.Auth.ChavePublicaPath)
	if err != nil {
		log.WithError(err).Fatal("Erro ao carregar chave pública do token")
	}
	verificador := auth.Verificador{
		Chaves:   map[string]*rsa.PublicKey{cfg.Auth.KID: chave},
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
	}

	// Catálogo, com cache no redis quando configurado
	produtoRepo := produto.NewRepository(database)
	var (
		catalogo    produto.Buscador = produtoRepo
		invalidador produto.Invalidador
	)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		cache := produto.NewCache(produtoRepo, rdb, log)
		catalogo, invalidador = cache, cache
	}

	// Eventos de domínio
	var pub eventos.Publicador = eventos.Nulo{Log: log}
	if len(cfg.KafkaBrokers) > 0 {
		producer := eventos.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopico, 256, cfg.ServiceName, log)
		producer.Start()
		defer producer.Close()
		pub = producer
	}

	var alertas notificacao.Alertador = notificacao.Nenhum{}
	if cfg.WebhookAlert != "" {
		alertas = notificacao.NewWebhook(cfg.WebhookAlert, log)
	}

	// Handlers
	pedidoRepo := pedido.NewRepository()
	produtoHandler := produto.NewHandler(produtoRepo, invalidador, log)
	pedidoHandler := pedido.NewHandler(pedido.NewService(pedido.NewStore(database, pedidoRepo), catalogo, pub, log), log)
	linhasHandler := linhas.NewHandler(linhas.NewService(linhas.NewStore(database, pedidoRepo), catalogo, pub, alertas, log), log)
	upsellHandler := upsell.NewHandler(upsell.NewService(upsell.NewStore(database, pedidoRepo), catalogo, pub, log), log)

	// Router
	r := mux.NewRouter()
	r.HandleFunc("/healthz", healthz(database)).Methods("GET")

	api := r.NewRoute().Subrouter()
	api.Use(verificador.Middleware(log))

	// Rotas de produtos (escrita só admin)
	api.HandleFunc("/produtos", produtoHandler.ListProdutos).Methods("GET")
	api.HandleFunc("/produtos/{id}", produtoHandler.GetProduto).Methods("GET")
	api.Handle("/produtos", auth.RequireAdmin(http.HandlerFunc(produtoHandler.CreateProduto))).Methods("POST")
	api.Handle("/produtos/{id}", auth.RequireAdmin(http.HandlerFunc(produtoHandler.UpdateProduto))).Methods("PUT")

	// Rotas de pedidos
	api.HandleFunc("/pedidos", pedidoHandler.Criar).Methods("POST")
	api.HandleFunc("/pedidos", pedidoHandler.Listar).Methods("GET")
	api.HandleFunc("/pedidos/{id}", pedidoHandler.Buscar).Methods("GET")
	api.HandleFunc("/pedidos/{id}/etapa", pedidoHandler.AlterarEtapa).Methods("PATCH")

	// Rotas de linhas
	api.HandleFunc("/pedidos/{id}/linhas/resumo", linhasHandler.Resumo).Methods("GET")
	api.HandleFunc("/pedidos/{id}/linhas", linhasHandler.Criar).Methods("POST")
	api.HandleFunc("/linhas/{id}", linhasHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/linhas/{id}", linhasHandler.Remover).Methods("DELETE")
	api.HandleFunc("/linhas/{id}/svas", linhasHandler.AdicionarSva).Methods("POST")

	// Rotas de upsell
	api.HandleFunc("/pedidos/{id}/upsell/proximo", upsellHandler.Proximo).Methods("GET")
	api.HandleFunc("/pedidos/{id}/upsell/visualizado", upsellHandler.Visualizado).Methods("POST")
	api.HandleFunc("/pedidos/{id}/upsell/resposta", upsellHandler.Resposta).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigens,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("Servidor rodando")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Erro no servidor HTTP")
		}
	}()

	<-ctx.Done()
	log.Info("Encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Erro ao encerrar servidor")
	}
}

func healthz(database *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := database.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			http.Error(w, "banco indisponível", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}
}
