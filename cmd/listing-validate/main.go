package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ownerfi/listing-validate/internal/cache"
	"github.com/ownerfi/listing-validate/internal/config"
	"github.com/ownerfi/listing-validate/internal/ingest"
	"github.com/ownerfi/listing-validate/internal/server"
	"github.com/ownerfi/listing-validate/internal/validate"
	"github.com/ownerfi/listing-validate/pkg/constants"
	"github.com/ownerfi/listing-validate/pkg/output"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	inputFile := flag.String("input", "", "path to a listing CSV file to validate")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "run the HTTP validation API instead of a batch run")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	flag.Parse()

	// Load the config file to get thresholds and logging configuration. An
	// absent default config file means standard thresholds; an explicit
	// -config path must exist.
	var conf *config.Configuration
	if _, statErr := os.Stat(*configLocation); os.IsNotExist(statErr) && *configLocation == constants.DefaultConfigFile {
		conf = config.DefaultConfiguration()
	} else {
		var err error
		conf, err = config.LoadConfiguration(*configLocation)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			os.Exit(1)
		}
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *serve {
		runServer(logger, conf, *serverConfigLocation)
		return
	}

	if *inputFile == "" {
		logger.Fatal("either -input or -serve is required",
			zap.String("op", "main"),
		)
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := config.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	reader := ingest.NewCSVReader(logger)
	records, err := reader.ReadFile(*inputFile)
	if err != nil {
		logger.Fatal("failed to read listing file",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	report := output.Report{ReportID: uuid.NewString()}
	rejected := 0
	for _, partial := range records {
		record, result := validate.ValidateRecord(partial, conf.Rules)
		disposition := server.Disposition(result)
		if disposition == server.DispositionReject {
			rejected++
		}
		report.Outcomes = append(report.Outcomes, output.Outcome{
			Record:      record,
			Result:      result,
			Disposition: disposition,
		})
	}

	logger.Info("batch validation complete",
		zap.String("op", "main"),
		zap.String("reportId", report.ReportID),
		zap.Int("records", len(report.Outcomes)),
		zap.Int("rejected", rejected),
	)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(report)
	case constants.OutputFormatCSV:
		output.CsvFormat(report)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(report); err != nil {
			logger.Fatal("failed to write report",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	if rejected > 0 {
		os.Exit(1)
	}
}

func runServer(logger *zap.Logger, conf *config.Configuration, serverConfigLocation string) {
	serverConf, err := server.LoadConfig(serverConfigLocation)
	if err != nil {
		logger.Fatal("failed to load server configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	var decisions cache.DecisionCache
	if serverConf.RedisAddress != "" {
		decisions = cache.NewRedisCache(serverConf.RedisAddress, serverConf.TTL())
		logger.Info("using redis decision cache",
			zap.String("op", "main"),
			zap.String("address", serverConf.RedisAddress),
		)
	} else {
		decisions = cache.NewMemoryCache()
	}

	handler := server.NewHandler(logger, conf.Rules, decisions, serverConf.MaxBodySize, version)
	logger.Info("starting validation API",
		zap.String("op", "main"),
		zap.String("address", serverConf.Address),
	)
	if err := http.ListenAndServe(serverConf.Address, handler); err != nil {
		logger.Fatal("server stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
