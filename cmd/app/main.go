package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/valyala/fasthttp"

	"github.com/StounhandJ/video_helper/internal/config"
	downloadersService "github.com/StounhandJ/video_helper/internal/downloaders"
	"github.com/StounhandJ/video_helper/internal/downloaders/facebook"
	tiktok "github.com/StounhandJ/video_helper/internal/downloaders/tik_tok"
	"github.com/StounhandJ/video_helper/internal/downloaders/youtube"
	"github.com/StounhandJ/video_helper/internal/handlers"
	"github.com/StounhandJ/video_helper/internal/intake"
	"github.com/StounhandJ/video_helper/internal/metrics"
	"github.com/StounhandJ/video_helper/internal/telegram"
	"github.com/StounhandJ/video_helper/internal/utils"
	"github.com/StounhandJ/video_helper/web"
)

var cfg config.Config

func main() {
	//------ Получение Конфигурации ------//
	if err := config.LoadConfig(&cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	warnings, err := cfg.Validate()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	utils.InitLogger(cfg.Application.LogLevel)

	for _, w := range warnings {
		utils.Log.Warn(w)
	}
	//---------------//

	//------ HTTP клиент для отправки запросов ------//
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = cfg.Proxy.HeaderTimeout.Std()

	if cfg.Application.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.Application.ProxyURL)
		if err != nil {
			utils.Log.Panic(err)
		}

		transport.Proxy = http.ProxyURL(proxyURL) // прокси
	}

	client := &http.Client{Transport: transport}
	//---------------//

	//------ Сервисы ------//
	var registry *downloadersService.Registry
	if cfg.Download.FetchMetadata {
		registry = downloadersService.NewRegistry(
			youtube.New(client),
			facebook.New(client),
			tiktok.New(client),
		)
	}

	m := metrics.New()
	service := intake.New(&cfg, registry, m)
	//---------------//

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//------ TELEGRAM бот ------//
	if cfg.Telegram.Token != "" {
		if err := startBot(ctx, service); err != nil {
			utils.Log.Error(err)
			os.Exit(1)
		}
	}
	//---------------//

	//------ HTTP сервер ------//
	server := &fasthttp.Server{
		Name:    "video_helper",
		Handler: handlers.NewHandler(&cfg, service, client, m, web.Assets).Handler(),
	}

	addr := fmt.Sprintf(":%d", cfg.Application.Port)

	go func() {
		utils.Log.Infof("HTTP сервер слушает %s", addr)

		if err := server.ListenAndServe(addr); err != nil {
			utils.Log.Error(err)
			stop()
		}
	}()
	//---------------//

	//------ Ожидание завершения программы ------//
	utils.Log.Info("Всё запущено")
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Application.ShutdownTimeout.Std())
	defer cancel()

	if err := server.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		utils.Log.Error(err)
	}

	utils.Log.Info("Сервер остановлен")
}

func startBot(ctx context.Context, service *intake.Service) error {
	utils.Log.Info("Подключение TG-бота")

	if cfg.Application.PublicURL == "" {
		utils.Log.Warn("Application.PublicURL не задан, inline режим бота отвечает пустым списком")
	}

	bot, err := telego.NewBot(cfg.Telegram.Token, telego.WithDefaultLogger(cfg.Telegram.Debug, true))
	if err != nil {
		return err
	}

	// Обработка сообщений ботом
	updates, err := bot.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		return err
	}

	bh, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return err
	}

	telegram.NewHandler(&cfg, service).SetupRoutes(bh)

	user, err := bot.GetMe(ctx)
	if err != nil {
		return err
	}

	go func() {
		utils.Log.Infof(
			"TG БОТ ID=%d имя=%s username=@%s",
			user.ID,
			user.FirstName,
			user.Username,
		)

		if err := bh.Start(); err != nil {
			utils.Log.Error(err)
		}
	}()

	go func() {
		<-ctx.Done()

		if err := bh.Stop(); err != nil {
			utils.Log.Error(err)
		}
	}()

	return nil
}
