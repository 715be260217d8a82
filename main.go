package main

import (
	"bufio"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"booking-assistant/config"
	"booking-assistant/formatter"
	"booking-assistant/intent"
	"booking-assistant/ledger"
	"booking-assistant/logging"
	"booking-assistant/metrics"
	"booking-assistant/models"
	"booking-assistant/parser"
	"booking-assistant/scheduler"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Define flags; config supplies the defaults so flags always win
	data := flag.String("data", cfg.DataFile, "Technician profile data file (JSON)")
	appointments := flag.String("appointments", cfg.AppointmentsFile, "Appointment ledger file (one JSON record per line)")
	format := flag.String("format", "text", "Confirmation output format: text|json")
	metricsAddr := flag.String("metrics-addr", cfg.MetricsAddr, "Address to expose Prometheus metrics (e.g., :9090)")
	pushGateway := flag.String("push-url", cfg.PushURL, "Pushgateway URL to push metrics to (e.g., http://localhost:9091)")
	wait := flag.Bool("wait", false, "Keep process running after exit to allow for metric scraping")

	flag.Parse()

	logging.Initialize(cfg.Env)
	log := logging.Get()
	defer log.Sync()

	// Validate format enum
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[*format] {
		fmt.Printf("Error: format must be one of: text, json (got: %s)\n", *format)
		os.Exit(1)
	}

	// Start metrics server if address provided
	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			fmt.Printf("Metrics server listening on %s/metrics\n", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				log.Error("metrics server error", zap.Error(err))
			}
		}()
	}

	file, err := os.Open(*data)
	if err != nil {
		fmt.Printf("Error opening data file: %v\n", err)
		os.Exit(1)
	}
	technicians, err := parser.Parse(file)
	file.Close()
	if err != nil {
		fmt.Printf("Error parsing data file: %v\n", err)
		os.Exit(1)
	}
	log.Info("roster loaded", zap.Int("technicians", len(technicians)))

	led := ledger.Load(*appointments, log)
	log.Info("ledger loaded", zap.Int("appointments", led.Len()))

	runChatLoop(technicians, led, *format, log)

	// Persist whatever the session booked, once more, on the way out.
	if err := led.Save(); err != nil {
		log.Error("final ledger save failed", zap.Error(err))
		fmt.Printf("Warning: could not save appointments: %v\n", err)
	}

	// Handle metrics pushing or waiting
	if *pushGateway != "" {
		jobName := "booking_assistant"
		if err := push.New(*pushGateway, jobName).Gatherer(metrics.Registry).Push(); err != nil {
			log.Error("error pushing to pushgateway", zap.Error(err))
		} else {
			fmt.Println("\nMetrics successfully pushed to Pushgateway")
		}
	}

	if *wait && *metricsAddr != "" {
		fmt.Println("\nProcess kept alive for metric scraping. Press Ctrl+C to exit.")
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		fmt.Println("\nExiting...")
	} else if *metricsAddr != "" && *pushGateway == "" {
		// Small delay to allow a final scrape for short sessions
		time.Sleep(100 * time.Millisecond)
	}
}

func runChatLoop(technicians []models.Technician, led *ledger.Ledger, format string, log *zap.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	ask := func(prompt string) (string, bool) {
		fmt.Print(prompt)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	fmt.Println("Welcome to the Service Assistant!")
	fmt.Println("- Type 'book' to book an appointment")
	fmt.Println("- Type 'faq' to ask about locations/hours or services offered")
	fmt.Println("- Type 'quit' to exit")

	for {
		choice, ok := ask("\nWhat would you like to do? (book/faq/quit): ")
		if !ok {
			return
		}
		switch strings.ToLower(choice) {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return
		case "book":
			runBookingFlow(technicians, led, format, ask, log)
		case "faq":
			runFAQFlow(technicians, ask)
		default:
			fmt.Println("Please choose 'book', 'faq', or 'quit'.")
		}
	}
}

// askFunc prompts the user once; ok is false when input is exhausted.
type askFunc func(prompt string) (string, bool)

func runBookingFlow(technicians []models.Technician, led *ledger.Ledger, format string, ask askFunc, log *zap.Logger) {
	fmt.Println("\nLet's book your appointment. You'll be asked a few quick questions.")

	var trade string
	for trade == "" {
		input, ok := ask("Service needed (e.g., plumber, electrician, hvac): ")
		if !ok {
			return
		}
		normalized, recognized := intent.NormalizeTrade(input)
		if !recognized {
			fmt.Println("Sorry, I didn't catch that trade. Try 'plumber', 'electrician', or 'hvac'.")
			continue
		}
		trade = normalized
	}

	var start time.Time
	for start.IsZero() {
		input, ok := ask("Preferred date & time (YYYY-MM-DD HH:MM, 24h): ")
		if !ok {
			return
		}
		parsed, recognized := parser.ParseRequestedTime(input)
		if !recognized {
			fmt.Println("Please use format YYYY-MM-DD HH:MM, for example 2025-10-21 14:30.")
			continue
		}
		start = parsed
	}

	var zip string
	for zip == "" {
		input, ok := ask("Service zip code (5 digits): ")
		if !ok {
			return
		}
		normalized, recognized := parser.NormalizeZip(input)
		if !recognized {
			fmt.Println("Please enter a valid 5-digit zip code.")
			continue
		}
		zip = normalized
	}

	result, booked := scheduler.BookFirstAvailable(trade, zip, start, technicians, led)
	if !booked {
		fmt.Println("\n" + formatter.FormatNoAvailability(trade, zip, start))
		return
	}

	if err := led.Save(); err != nil {
		// The booking is confirmed in memory; losing the write is a real
		// fault and the operator needs to know about it.
		log.Error("ledger save failed after booking",
			zap.String("appointment_id", result.Appointment.ID), zap.Error(err))
		fmt.Printf("\nWarning: your booking is confirmed but could not be saved: %v\n", err)
	}

	fmt.Println()
	if format == "json" {
		fmt.Println(formatter.FormatConfirmationJSON(result, zip))
	} else {
		fmt.Print(formatter.FormatConfirmation(result, zip))
	}
}

func runFAQFlow(technicians []models.Technician, ask askFunc) {
	fmt.Println("\nAsk your question (e.g., 'What locations do you serve?', 'What services do you offer?').")
	question, ok := ask("> ")
	if !ok {
		return
	}

	detected := intent.Detect(question)
	metrics.IntentDetectedTotal.WithLabelValues(string(detected)).Inc()

	switch detected {
	case intent.FAQLocations:
		fmt.Println()
		fmt.Print(formatter.FormatCoverage(scheduler.DeriveCoverageHours(technicians)))
	case intent.FAQServices:
		fmt.Println()
		fmt.Print(formatter.FormatServices(scheduler.DeriveServicesOffered(technicians)))
	default:
		fmt.Println("\nSorry, I can help with locations/hours or services offered. Try asking one of those.")
	}
}
