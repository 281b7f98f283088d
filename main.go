package main

import (
	"bluebot/dal"
	"bluebot/logic"
	"bluebot/server"
	"bluebot/shared"
	"bluebot/texts"
	"context"
	"fmt"
	"github.com/charmbracelet/log"
	"go.uber.org/fx"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const appStartStopTimeout = 30 * time.Second

type initErrorHandler struct {
}

func (*initErrorHandler) HandleError(err error) {
	fmt.Fprintf(os.Stderr, "Failed to initialize dependency injection\n%v", err)
}

var logger *log.Logger
var cfg *shared.Config

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig runs before every command. Network commands need full credentials.
func loadConfig(mode string, validate bool) {
	cfg = shared.LoadConfig()
	if mode != "" {
		cfg.Mode = mode
	}
	defs, err := texts.DefaultPersonas()
	if err != nil {
		log.Fatal(err)
	}
	cfg.MergePersonas(defs)

	logger = initLogger(cfg)
	if validate {
		if err = cfg.Validate(); err != nil {
			logger.Fatalf("Invalid configuration: %v", err)
		}
	}
}

func commonProviders() fx.Option {
	provideConfig := func() *shared.Config {
		return cfg
	}
	provideLogger := func() shared.ILogger {
		return logger
	}
	return fx.Provide(
		provideConfig,
		provideLogger,
		shared.NewUserAgent,
		texts.NewTexts,
		dal.NewRepo,
		logic.NewMetrics,
		logic.NewQuotaManager,
		logic.NewReplyLedger,
		logic.NewSocialClient,
		logic.NewCandidateFinder,
		logic.NewChatProvider,
		logic.NewTextGenerator,
		logic.NewImageGenerator,
		logic.NewTopicPicker,
		logic.NewReplyWorkflow,
		logic.NewLikeFollowWorkflow,
		logic.NewPostWorkflow,
		logic.NewWorkflowRunner,
	)
}

// runService is the long-running mode: scheduler plus HTTP server until a signal arrives.
func runService() {
	app := fx.New(
		fx.NopLogger,
		commonProviders(),
		fx.Provide(
			logic.NewScheduler,
			logic.NewProfiler,
			server.NewHTTPServer,
			fx.Annotate(server.NewMux, fx.ParamTags(`group:"handler_group"`)),
			asHandlerGroupDef(server.NewApiHandlerGroup),
			asHandlerGroupDef(server.NewMetricsHandlerGroup),
		),
		fx.Invoke(
			registerHooks,
			func(repo dal.IRepo) { repo.InitUpdateDb() },
			registerSchedulerHooks,
			func(*http.Server) {},
		),
		fx.ErrorHook(&initErrorHandler{}),
	)
	app.Run()
}

// startOneShot builds the object graph for a single command and fills in targets.
func startOneShot(targets ...any) (*fx.App, error) {
	app := fx.New(
		fx.NopLogger,
		commonProviders(),
		fx.Invoke(func(repo dal.IRepo) { repo.InitUpdateDb() }),
		fx.Populate(targets...),
		fx.ErrorHook(&initErrorHandler{}),
	)
	if err := app.Err(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), appStartStopTimeout)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

func stopOneShot(app *fx.App) {
	ctx, cancel := context.WithTimeout(context.Background(), appStartStopTimeout)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		logger.Errorf("Failed to stop cleanly: %v", err)
	}
}

func asHandlerGroupDef(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(server.IHandlerGroup)),
		fx.ResultTags(`group:"handler_group"`),
	)
}

func initLogger(cfg *shared.Config) *log.Logger {

	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
		if err != nil {
			msg := fmt.Sprintf("Failed to open log file '%v': %v", cfg.LogFile, err)
			log.Fatal(msg)
		}
		out = io.MultiWriter(os.Stdout, logFile)
	}

	logger := log.New(out)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat("2006-01-02 15:04:05.000")
	switch cfg.LogLevel {
	case "Debug":
		logger.SetLevel(log.DebugLevel)
	case "Info":
		logger.SetLevel(log.InfoLevel)
	case "Warn":
		logger.SetLevel(log.WarnLevel)
	case "Error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	logger.SetReportCaller(true)

	return logger
}

func registerHooks(lc fx.Lifecycle, metrics logic.IMetrics) {
	lc.Append(
		fx.Hook{
			OnStart: func(context.Context) error {
				logger.Printf("Application starting up in %s mode", cfg.Mode)
				metrics.ServiceStarted()
				return nil
			},
			OnStop: func(context.Context) error {
				logger.Printf("Application shutting down")
				return nil
			},
		},
	)
}

func registerSchedulerHooks(lc fx.Lifecycle, scheduler logic.IScheduler, profiler logic.IProfiler) {
	lc.Append(
		fx.Hook{
			OnStart: func(context.Context) error {
				profiler.Start()
				return scheduler.Start()
			},
			OnStop: func(context.Context) error {
				profiler.Stop()
				return scheduler.Stop()
			},
		},
	)
}
