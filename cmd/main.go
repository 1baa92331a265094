package main

import (
	"fmt"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/application/services"
	"github.com/gulam-moin/interactive-voice-response/config"
	"github.com/gulam-moin/interactive-voice-response/infrastructure/adapters"
	"github.com/gulam-moin/interactive-voice-response/infrastructure/gin_interface/controllers"
	"github.com/gulam-moin/interactive-voice-response/middleware"
	mockcall "github.com/gulam-moin/interactive-voice-response/mock"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"net/http"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load .env file")
	}

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	loggingConfig, err := config.GetLoggingConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get logging config")
	}

	sessionConfig, err := config.GetSessionConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get session config")
	}

	weatherConfig, err := config.GetOpenWeatherConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get weather config")
	}

	mandiConfig, err := config.GetMandiPriceConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get mandi price config")
	}

	pollyConfig, err := config.GetPollyConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get polly config")
	}

	speechConfig, err := config.GetSpeechConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get speech config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	twilioConfig, err := config.GetTwilioConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get twilio config")
	}

	authConfig, err := config.NewAuthorizerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get authorizer config")
	}

	zeroLogger := adapters.NewConfiguredZerologWrapper(loggingConfig)

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(serverConfig.WorkerPoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	sess, err := session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
		Config:            aws.Config{Region: aws.String(pollyConfig.Region)},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create aws session")
	}

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	var sessionStore outbound.CallSessionStorePort
	switch sessionConfig.Backend {
	case config.SessionBackendRedis:
		redisClient, err := adapters.NewRedisClient(sessionConfig.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create redis client")
		}
		defer redisClient.Close()
		sessionStore = adapters.NewRedisSessionStore(redisClient, sessionConfig.RedisPrefix, sessionConfig.TTL)
	default:
		sessionStore = adapters.NewMemorySessionStore(sessionConfig.TTL, sessionConfig.SweepInterval)
	}

	weatherGateway := adapters.NewOpenWeatherGateway(contentFetcher, weatherConfig, zeroLogger)

	priceGateway := adapters.NewDefaultPriceTableGateway()
	if mandiConfig != nil {
		priceGateway = adapters.NewMandiPriceGateway(contentFetcher, mandiConfig, priceGateway, zeroLogger)
	}

	var neuralSynthesizer outbound.SpeechSynthesizerPort
	if pollyConfig.Enabled {
		neuralSynthesizer = adapters.NewPollySynthesizer(polly.New(sess), pollyConfig, zeroLogger)
	}

	var multilingualSynthesizer outbound.SpeechSynthesizerPort
	switch speechConfig.MultilingualProvider {
	case config.MultilingualProviderTranslate:
		multilingualSynthesizer = adapters.NewTranslateTTSSynthesizer(contentFetcher, speechConfig, zeroLogger)
	case config.MultilingualProviderElevenLabs:
		elevenLabsConfig, err := config.GetElevenLabsConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get eleven labs config")
		}
		multilingualSynthesizer = adapters.NewElevenLabsSynthesizer(contentFetcher, elevenLabsConfig, zeroLogger)
	}

	speechDispatcher := services.NewSpeechDispatcher(zeroLogger, neuralSynthesizer, multilingualSynthesizer, speechConfig.Timeout)

	var audioStore outbound.AudioStorePort
	if s3Config != nil {
		audioStore = adapters.NewS3AudioStore(s3.New(sess), s3Config, zeroLogger)
	} else {
		audioStore, err = adapters.NewLocalAudioStore(serverConfig.AudioDir, zeroLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create local audio store")
		}
	}

	var outcomeRecorder outbound.CallOutcomeRecorderPort
	if dynamoConfig != nil {
		outcomeRecorder = adapters.NewDynamoOutcomeRecorder(zeroLogger, dynamodb.New(sess), dynamoConfig)
	}

	outcomePipeline := services.NewOutcomePipeline(services.OutcomePipelineDeps{
		Logger:      zeroLogger,
		WorkerPool:  workerPool,
		Resolver:    services.NewDefaultLocationResolver(),
		Weather:     weatherGateway,
		Price:       priceGateway,
		Composer:    services.NewMessageComposer(),
		Synthesizer: speechDispatcher,
		AudioStore:  audioStore,
		Recorder:    outcomeRecorder,
	})

	callFlow := services.NewCallFlow(services.CallFlowDeps{
		Logger:       zeroLogger,
		Store:        sessionStore,
		Pipeline:     outcomePipeline,
		MaxReprompts: sessionConfig.MaxReprompts,
	})

	baseURLPolicy := controllers.BaseURLPolicy{
		PublicBaseURL:         serverConfig.PublicBaseURL,
		TrustForwardedHeaders: serverConfig.TrustForwardedHeaders,
	}
	ivrController := controllers.NewIVRController(zeroLogger, callFlow, adapters.NewTwiMLRenderer(), baseURLPolicy)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(zeroLogger))

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if s3Config == nil {
		router.Static(adapters.AudioRoutePrefix, serverConfig.AudioDir)
	}


	webhooks := router.Group("/")
	if twilioConfig != nil && twilioConfig.ValidateSignature {
		webhooks.Use(middleware.TwilioSignature(twilioConfig.AuthToken, baseURLPolicy.Resolve, zeroLogger))
	}
	ivrController.RegisterRoutes(webhooks)

	if twilioConfig != nil && authConfig != nil {
		authHandler, err := middleware.NewAuthHandler(authConfig, zeroLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}

		callPlacer := adapters.NewTwilioCallPlacer(adapters.NewTwilioCallCreator(twilioConfig), twilioConfig.FromNumber, zeroLogger)
		outboundCallController := controllers.NewOutboundCallController(zeroLogger, callPlacer, baseURLPolicy)

		operator := router.Group("/")
		operator.Use(authHandler.AuthMiddleware())
		outboundCallController.RegisterRoutes(operator)
	} else {
		zeroLogger.Info("Operator routes disabled, TWILIO_* and JWKS_URL are both required")
	}

	if serverConfig.EnableMock {
		mockcall.Init(router, callFlow, baseURLPolicy, zeroLogger)
	}

	zeroLogger.InfoWithFields("Starting IVR server", map[string]interface{}{
		"port":          serverConfig.Port,
		"session_store": sessionConfig.Backend,
	})

	err = router.Run(":" + serverConfig.Port)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
