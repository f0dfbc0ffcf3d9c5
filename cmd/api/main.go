package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/TallerTurnos01/taller-scheduler/internal/cache"
	"github.com/TallerTurnos01/taller-scheduler/internal/config"
	dbpkg "github.com/TallerTurnos01/taller-scheduler/internal/db"
	"github.com/TallerTurnos01/taller-scheduler/internal/metrics"
	"github.com/TallerTurnos01/taller-scheduler/internal/middleware"
	"github.com/TallerTurnos01/taller-scheduler/internal/notify"
	"github.com/TallerTurnos01/taller-scheduler/internal/payments"
	"github.com/TallerTurnos01/taller-scheduler/internal/routes"
	"github.com/TallerTurnos01/taller-scheduler/internal/storage"
)

func main() {

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	metrics.Register()

	// ======================================================
	// COLABORADORES OPCIONALES (según config)
	// ======================================================
	var availCache *cache.AvailabilityCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		availCache = cache.New(rdb, time.Duration(cfg.CacheTTLSeconds)*time.Second)
		log.Info().Str("addr", cfg.RedisAddr).Msg("cache de disponibilidad habilitado")
	}

	var provider payments.PreferenceClient
	if cfg.MPAccessToken != "" {
		mp, err := payments.NewMercadoPago(cfg.MPAccessToken)
		if err != nil {
			log.Fatal().Err(err).Msg("no se pudo inicializar Mercado Pago")
		}
		provider = mp
		log.Info().Msg("pagos con Mercado Pago habilitados")
	}

	var mailer notify.Mailer
	if cfg.SMTPHost != "" {
		mailer = notify.NewSMTPMailer(cfg)
	}
	dispatcher := notify.NewDispatcher(mailer)

	photos := storage.NewPhotoStore(cfg)

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, db, cfg, routes.Deps{
		Cache:    availCache,
		Notify:   dispatcher,
		Provider: provider,
		Photos:   photos,
	})

	log.Info().Str("addr", cfg.Addr()).Msg("servidor escuchando")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("no se pudo iniciar el servidor")
	}
}
