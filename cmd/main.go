package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"partstock/config"
	"partstock/internal/pkg/cache"
	"partstock/internal/pkg/database"
	"partstock/internal/pkg/logger"
	"partstock/internal/pkg/token"
	"partstock/internal/pkg/validation"

	// Camadas para Injeção de Dependências
	"partstock/internal/api/color"
	"partstock/internal/api/order"
	"partstock/internal/api/part"
	"partstock/internal/api/report"
	"partstock/internal/api/router"
	"partstock/internal/api/stock"
	"partstock/internal/api/user"
	"partstock/internal/repository/colorrepo"
	"partstock/internal/repository/orderrepo"
	"partstock/internal/repository/partrepo"
	"partstock/internal/repository/stockrepo"
	"partstock/internal/repository/userrepo"
	"partstock/internal/service/colorservice"
	"partstock/internal/service/orderservice"
	"partstock/internal/service/partservice"
	"partstock/internal/service/reportservice"
	"partstock/internal/service/stockservice"
	"partstock/internal/service/userservice"
)

// @title PartStock API
// @version 1.0
// @description Estoque de peças por cor, razão de movimentações, pedidos a fornecedores e relatórios.
// @host localhost:8080
// @BasePath /v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	// Sem .env seguimos apenas com o ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Inicialização
	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Inicializando serviço PartStock...", map[string]interface{}{"env": cfg.Environment})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	pool := database.DefaultPoolConfig()
	pool.MaxOpenConns = cfg.DBMaxOpenConns
	pool.MaxIdleConns = cfg.DBMaxIdleConns
	pool.ConnMaxLifetime = cfg.DBConnMaxLife

	db, err := database.NewPostgresDB(cfg.DatabaseURL, pool)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis). Sem Redis a API continua funcionando, apenas sem cache.
	cacheClient := cache.NewRedisClient(cfg.RedisAddr, cfg.CacheTimeout)
	pingCtx, cancelPing := context.WithTimeout(context.Background(), cfg.CacheTimeout)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Warn("Redis indisponível; cache e rate limit operarão em modo degradado.", map[string]interface{}{
			"addr":  cfg.RedisAddr,
			"error": err.Error(),
		})
	} else {
		log.Info("Conexão Redis estabelecida.", nil)
	}
	cancelPing()
	collections := cache.NewCollectionCache(cacheClient, cfg.CacheTTL, log)

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	validator := validation.New()

	// A. Repositórios
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, log)
	partRepo := partrepo.NewPartRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, log)
	colorRepo := colorrepo.NewColorRepository(db, cfg.DBTimeout, log)
	stockRepo := stockrepo.NewStockRepository(db, cfg.DBTimeout, cfg.DBMaxRetries, log)
	orderRepo := orderrepo.NewOrderRepository(db, cfg.DBTimeout, cfg.DBMaxRetries, log)
	log.Debug("Repositórios inicializados.", nil)

	// B. Serviços
	userSvc := userservice.NewService(userRepo, tokenSvc, log)
	partSvc := partservice.NewService(partRepo, collections, log)
	colorSvc := colorservice.NewService(colorRepo, collections, log)
	stockSvc := stockservice.NewService(stockRepo, collections, log)
	orderSvc := orderservice.NewService(orderRepo, collections, log, orderrepo.NewOrderNumber)
	reportSvc := reportservice.NewService(stockRepo, stockRepo, orderRepo, log)
	log.Debug("Serviços inicializados.", nil)

	// C. Handlers
	handlers := router.Handlers{
		User:   user.NewHandler(userSvc, validator, log),
		Part:   part.NewHandler(partSvc, validator, log),
		Color:  color.NewHandler(colorSvc, validator, log),
		Stock:  stock.NewHandler(stockSvc, validator, log),
		Order:  order.NewHandler(orderSvc, validator, log),
		Report: report.NewHandler(reportSvc, log),
	}

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(handlers, router.Options{
		TokenService: tokenSvc,
		Cache:        cacheClient,
		RateLimit:    cfg.RateLimitMaxRequests,
		RateWindow:   cfg.RateLimitPeriod,
		Logger:       log,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor PartStock ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
