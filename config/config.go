package config

import "time"

type Config struct {
	AppName                       string   `env:"APP_NAME" env-default:"content-hub-api"`
	Port                          int      `env:"PORT" env-default:"3001"`
	LogLevel                      string   `env:"LOG_LEVEL" env-default:"info"`
	PrettyLogs                    bool     `env:"PRETTY_LOGS" env-default:"false"`
	HttpServerWriteTimeoutSeconds int      `env:"HTTP_SERVER_WRITE_TIMEOUT_SECONDS" env-default:"120"`
	HttpServerReadTimeoutSeconds  int      `env:"HTTP_SERVER_READ_TIMEOUT_SECONDS" env-default:"10"`
	HttpServerIdleTimeoutSeconds  int      `env:"HTTP_SERVER_IDLE_TIMEOUT_SECONDS" env-default:"10"`
	MaxHeaderBytes                int      `env:"HTTP_SERVER_MAX_HEADER_BYTES" env-default:"64000"` // 64KB
	AllowOrigins                  []string `env:"HTTP_SERVER_ALLOW_ORIGINS" env-default:"*"`
	AllowMethods                  []string `env:"HTTP_SERVER_ALLOW_METHODS" env-default:"GET,POST,PUT,DELETE"`
	StartupMaxAttempts            int      `env:"STARTUP_MAX_ATTEMPTS" env-default:"5"`

	// PostgreSQL (social account cache + published posts)
	DatabaseDriver                string        `env:"DB_DRIVER" env-default:"postgres"`
	DatabaseHost                  string        `env:"DB_HOST" env-default:""`
	DatabasePort                  string        `env:"DB_PORT" env-default:"5432"`
	DatabaseUserName              string        `env:"DB_USER_NAME" env-default:""`
	DatabasePassword              string        `env:"DB_PASSWORD" env-default:""`
	DatabaseName                  string        `env:"DB_NAME" env-default:"contenthub"`
	DatabaseSSLMode               string        `env:"DB_SQL_MODE" env-default:"disable"`
	DatabaseMaxOpenConns          int           `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	DatabaseMaxIdleConns          int           `env:"DB_MAX_IDLE_CONNS" env-default:"10"`
	DatabaseConnMaxLifetime       time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"10s"`
	DatabaseMigrationFolderPath   string        `env:"DB_MIGRATION_FOLDER_PATH" env-default:"db/pg"`
	DatabaseMigrationVersion      int           `env:"DB_MIGRATION_VERSION" env-default:"0"`
	DatabaseMigrationForce        int           `env:"DB_MIGRATION_FORCE" env-default:"0"`
	DatabaseMigrationAutoRollback bool          `env:"DB_MIGRATION_AUTO_ROLLBACK" env-default:"true"`

	// Graph Database (company directory, Memgraph/Neo4j)
	GraphDBHost     string `env:"GRAPH_DB_HOST" env-default:"localhost"`
	GraphDBPort     int    `env:"GRAPH_DB_PORT" env-default:"7687"`
	GraphDBUser     string `env:"GRAPH_DB_USER" env-default:""`
	GraphDBPassword string `env:"GRAPH_DB_PASSWORD" env-default:""`

	// Redis (watsonx bearer token cache)
	RedisHost     string `env:"REDIS_HOST" env-default:"localhost"`
	RedisPort     int    `env:"REDIS_PORT" env-default:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD" env-default:""`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`

	// watsonx text generation
	WatsonxBaseURL       string `env:"WATSONX_BASE_URL" env-default:"https://us-south.ml.cloud.ibm.com"`
	WatsonxAPIVersion    string `env:"WATSONX_API_VERSION" env-default:"2023-05-29"`
	WatsonxModelID       string `env:"WATSONX_MODEL_ID" env-default:"ibm/granite-3-8b-instruct"`
	WatsonxProjectID     string `env:"WATSONX_PROJECT_ID" env-default:""`
	IBMAPIKey            string `env:"IBM_API_KEY" env-default:""`
	IBMTokenURL          string `env:"IBM_TOKEN_URL" env-default:"https://iam.cloud.ibm.com/identity/token"`
	TokenCacheTTLSeconds int    `env:"TOKEN_CACHE_TTL_SECONDS" env-default:"3600"`
	TokenSkewSeconds     int    `env:"TOKEN_SKEW_SECONDS" env-default:"60"`

	// Agent webhooks (profile scraping, url/video analysis, image generation)
	TwitterProfileWebhookURL   string `env:"TWITTER_PROFILE_WEBHOOK_URL" env-default:"https://api-lr.agent.ai/v1/agent/sa3zhs11qxhjbd8t/webhook/8e25ef47"`
	LinkedInProfileWebhookURL  string `env:"LINKEDIN_PROFILE_WEBHOOK_URL" env-default:"https://api-lr.agent.ai/v1/agent/cv2ubaozjew6mcrt/webhook/672bc812"`
	URLAnalysisWebhookURL      string `env:"URL_ANALYSIS_WEBHOOK_URL" env-default:"https://api-lr.agent.ai/v1/agent/9xgko4mdmqambne0/webhook/ac042486"`
	YouTubeAnalysisWebhookURL  string `env:"YOUTUBE_ANALYSIS_WEBHOOK_URL" env-default:"https://api-lr.agent.ai/v1/agent/0usvm0kxa18r1fs6/webhook/7243feda"`
	ImageGenerationWebhookURL  string `env:"IMAGE_GENERATION_WEBHOOK_URL" env-default:"https://api-lr.agent.ai/v1/agent/jzdtshn6u3sz625y/webhook/858144e2"`
	InstagramCaptionWebhookURL string `env:"INSTAGRAM_CAPTION_WEBHOOK_URL" env-default:"https://api-lr.agent.ai/v1/agent/98z7h166e066cn5k/webhook/777fe811"`
	WebhookTimeout             time.Duration `env:"WEBHOOK_TIMEOUT" env-default:"120s"`

	// Kafka producer (post.published events, optional)
	KafkaEnabled      bool     `env:"KAFKA_ENABLED" env-default:"false"`
	KafkaBrokers      []string `env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	KafkaOutputTopic  string   `env:"KAFKA_OUTPUT_TOPIC" env-default:"published-posts"`
	KafkaBatchSize    int      `env:"KAFKA_BATCH_SIZE" env-default:"100"`
	KafkaBatchTimeout int      `env:"KAFKA_BATCH_TIMEOUT_MS" env-default:"100"`
	KafkaRequiredAcks int      `env:"KAFKA_REQUIRED_ACKS" env-default:"1"`
	KafkaCompression  string   `env:"KAFKA_COMPRESSION" env-default:"snappy"`

	// Tracing
	TracingEnabled      bool   `env:"TRACING_ENABLED" env-default:"false"`
	TracingOTLPEndpoint string `env:"TRACING_OTLP_ENDPOINT" env-default:"localhost:4317"`
	TracingOTLPProtocol string `env:"TRACING_OTLP_PROTOCOL" env-default:"grpc"`
	TracingInsecure     bool   `env:"TRACING_INSECURE" env-default:"true"`
}
