package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/profissaovlog/profissaovlog-api/config"
	"github.com/profissaovlog/profissaovlog-api/internal/infrastructure/memory"
	"github.com/profissaovlog/profissaovlog-api/pkg/helpers"
)

// App-level container sharing constructed components across packages so
// the router registry can auto-wire modules. Redis, GCS, and ES may stay
// nil when unconfigured; consumers degrade gracefully.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	store       *memory.Store
	redisClient *redis.Client
	gcsClient   *storage.Client
	esClient    *elasticsearch.Client
	jwtManager  *helpers.JWTManager
)

func SetConfig(c *config.Config)         { cfg = c }
func GetConfig() *config.Config          { return cfg }
func SetLogger(l *logrus.Logger)         { logger = l }
func GetLogger() *logrus.Logger          { return logger }
func SetStore(s *memory.Store)           { store = s }
func GetStore() *memory.Store            { return store }
func SetRedis(r *redis.Client)           { redisClient = r }
func GetRedis() *redis.Client            { return redisClient }
func SetGCS(s *storage.Client)           { gcsClient = s }
func GetGCS() *storage.Client            { return gcsClient }
func SetES(c *elasticsearch.Client)      { esClient = c }
func GetES() *elasticsearch.Client       { return esClient }
func SetJWT(m *helpers.JWTManager)       { jwtManager = m }
func GetJWT() *helpers.JWTManager        { return jwtManager }
