package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-RentalReservations/internal/config"
	"github.com/m04kA/SMC-RentalReservations/internal/domain"
	"github.com/m04kA/SMC-RentalReservations/internal/infra/seed"
	bookingRepo "github.com/m04kA/SMC-RentalReservations/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RentalReservations/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-RentalReservations/internal/service/reservations"
	"github.com/m04kA/SMC-RentalReservations/internal/service/reservations/models"
	"github.com/m04kA/SMC-RentalReservations/pkg/logger"
	"github.com/m04kA/SMC-RentalReservations/pkg/metrics"
	"github.com/m04kA/SMC-RentalReservations/pkg/ptr"
)

func main() {
	// Переменные окружения из .env (файл необязателен)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RentalReservations demo...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем каталог и бронирования
	dataset, err := seed.Load(cfg.Data.SeedFile)
	if err != nil {
		log.Fatal("Failed to load seed data: %v", err)
	}
	log.Info("Seed data loaded from %s", cfg.Data.SeedFile)

	catalogRepository, err := catalog.NewRepository(dataset.ToDomainProperties())
	if err != nil {
		log.Fatal("Failed to build catalog: %v", err)
	}

	bookingRepository, err := bookingRepo.NewRepository(
		dataset.ToDomainBookings(),
		bookingRepo.WithIDGenerator(newIDGenerator(cfg.Ledger)),
	)
	if err != nil {
		log.Fatal("Failed to build booking ledger: %v", err)
	}
	log.Info("Catalog and ledger ready (properties=%d, bookings=%d)",
		catalogRepository.Count(), bookingRepository.Count())

	// Интерфейс метрик сервиса: nil-указатель на Metrics не должен попасть внутрь
	var serviceMetrics reservations.MetricsCollector
	if metricsCollector != nil {
		serviceMetrics = metricsCollector
	}

	svc := reservations.NewService(catalogRepository, bookingRepository, serviceMetrics, log)

	runDemo(svc, cfg.Data.ReportDate, log)

	if !cfg.Metrics.Enabled {
		return
	}

	// Metrics endpoint
	r := mux.NewRouter()
	r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Prometheus metrics endpoint exposed at %s%s", addr, cfg.Metrics.Path)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

func newIDGenerator(cfg config.LedgerConfig) bookingRepo.IDGenerator {
	if cfg.IDStrategy == config.IDStrategyUUID {
		return bookingRepo.NewUUIDGenerator(cfg.IDPrefix)
	}
	return bookingRepo.NewSequentialIDGenerator(cfg.IDPrefix)
}

func runDemo(svc *reservations.Service, reportDate string, log *logger.Logger) {
	// 1. Активные объекты
	printStep("Active properties", models.FromDomainPropertyList(svc.ListActiveProperties()))

	// 2. Поиск: Хараре, до 100 за ночь, с WiFi
	found := svc.SearchProperties(domain.SearchFilter{
		City:      ptr.Ptr("Harare"),
		MaxRate:   ptr.Ptr(100.0),
		Amenities: []string{"WiFi"},
	})
	printStep("Search: Harare, max 100/night, WiFi", models.FromDomainPropertyList(found))

	// 3. Доступность
	available, err := svc.IsAvailable("P001", "2026-02-12", "2026-02-15")
	if err != nil {
		log.Error("Demo: availability check failed: %v", err)
	}
	printStep("Is P001 available 2026-02-12 - 2026-02-15", available)

	// 4. Стоимость
	quote, err := svc.Quote("P001", "2026-02-20", "2026-02-22")
	if err != nil {
		log.Error("Demo: quote failed: %v", err)
	}
	printStep("Quote P001 2026-02-20 - 2026-02-22", models.FromDomainQuote(quote))

	// 5. Бронирование с превышением вместимости
	invalid := models.BookingRequest{PropertyID: "P002", GuestName: "Test", Guests: 10, CheckIn: "2026-02-20", CheckOut: "2026-02-22"}
	b, err := svc.RequestBooking(invalid.ToDomain())
	printStep("Booking request: 10 guests at P002", models.NewBookingResult(b, err))

	// 6. Корректное бронирование
	valid := models.BookingRequest{PropertyID: "P002", GuestName: "Jane", Guests: 2, CheckIn: "2026-02-20", CheckOut: "2026-02-22"}
	b, err = svc.RequestBooking(valid.ToDomain())
	printStep("Booking request: Jane at P002", models.NewBookingResult(b, err))

	// 7. Подтверждение
	if err == nil {
		printStep(fmt.Sprintf("Confirm %s", b.ID), svc.ConfirmBooking(b.ID))
	}

	// 8. Отчет за день
	report, err := svc.DailyReport(reportDate)
	if err != nil {
		log.Error("Demo: daily report failed: %v", err)
	}
	printStep(fmt.Sprintf("Daily report %s", reportDate), models.FromDomainReport(report))
}

func printStep(title string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("=== %s ===\nfailed to encode: %v\n\n", title, err)
		return
	}
	fmt.Printf("=== %s ===\n%s\n\n", title, data)
}
