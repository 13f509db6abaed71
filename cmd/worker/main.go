package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airport-pps/config"
	"github.com/Domenick1991/airport-pps/internal/kafka"
	"github.com/Domenick1991/airport-pps/internal/logger"
	"github.com/Domenick1991/airport-pps/internal/reconcile"
)

func main() {
	cfgPath, err := config.ResolvePath("worker", os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg, err := logger.New(cfg.App.LogMode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logg.Sync()

	if len(cfg.Kafka.Brokers) == 0 {
		logg.Fatal("kafka.brokers is required for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BoardingTopic)
	defer consumer.Close()

	recorder := reconcile.NewRecorder(logg.With("component", "reconcile"))

	logg.Info("consuming boarding events", "topic", cfg.Kafka.BoardingTopic, "group", cfg.Kafka.GroupID)
	if err := consumer.Consume(ctx, recorder.HandleMessage); err != nil {
		logg.Error("consumer stopped", "error", err)
		return
	}
	logg.Info("worker stopped")
}
