package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/MatrixETF/solana-airdrop/internal/config"
	"github.com/MatrixETF/solana-airdrop/internal/delivery"
	"github.com/MatrixETF/solana-airdrop/internal/delivery/http"
	"github.com/MatrixETF/solana-airdrop/internal/entity"
	"github.com/MatrixETF/solana-airdrop/internal/graceful"
	"github.com/MatrixETF/solana-airdrop/internal/logging"
	"github.com/MatrixETF/solana-airdrop/internal/metrics"
	"github.com/MatrixETF/solana-airdrop/internal/pkg"
	"github.com/MatrixETF/solana-airdrop/internal/redisClient"
	"github.com/MatrixETF/solana-airdrop/internal/usecase"
)

func init() {
	// loads values from .env into the system
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found")
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logging.NewLogger(cfg.LogFormat)
	metrics.RegisterMetrics(lg)

	ledger := pkg.NewRPCLedger(cfg.RPCEndpoint)
	coins := entity.DefaultCoins()

	var cache usecase.MintCache
	if cfg.RedisAddr != "" {
		rdb := redisClient.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() {
			if err := rdb.Close(); err != nil {
				lg.Errorf("failed to close redis: %v", err)
			}
		}()
		cache = redisClient.NewMintCache(rdb)
	}

	verifyCtx, cancelVerify := context.WithTimeout(context.Background(), 30*time.Second)
	coinInfo := usecase.NewCoinInfoService(ledger, cache, lg).Verify(verifyCtx, coins)
	cancelVerify()

	faucet := usecase.NewFaucet(ledger, coins, cfg.Operator, lg)
	h := delivery.NewHandler(faucet, coinInfo, delivery.Options{
		ServiceName: cfg.ServiceName,
		Network:     cfg.Network,
		Timeout:     cfg.RequestTimeout,
	}, lg)

	app := fiber.New(fiber.Config{
		AppName:      cfg.ServiceName + " Airdrop API",
		ErrorHandler: delivery.ErrorHandler,
	})
	app.Use(logger.New())
	http.InitHandlers(app, h, cfg.StaticDir)

	go func() {
		sig := <-graceful.MakeSigintChan()
		lg.Infof("received exit signal: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			lg.Errorf("failed to shut down: %v", err)
		}
	}()

	lg.Infof("App is listening on port: %s", cfg.Port)
	lg.Infof("Running Solana: %s (%s)", cfg.Network, cfg.RPCEndpoint)
	lg.Infof("Using account: %s", faucet.Operator())

	if err := app.Listen(":" + cfg.Port); err != nil {
		lg.Fatalf("failed to start server: %v", err)
	}
}
