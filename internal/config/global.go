package config

import (
	"application-service/internal/utils/runtime"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	kafkaHostFlag            = "kafka-host"
	kafkaPortFlag            = "kafka-port"
	mongoDBURIFlag           = "mongodb-uri"
	redisHostFlag            = "redis-host"
	redisPortFlag            = "redis-port"
	permissionServiceURLFlag = "permission-service-url"
	catalogPathFlag          = "catalog-path"
	developmentFlag          = "development"
	httpPortFlag             = "port"
	draftTTLFlag             = "draft-ttl"
	inactivityWindowFlag     = "inactivity-window"
	sweepIntervalFlag        = "sweep-interval"
)

type Config struct {
	Kafka   KafkaConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig

	PermissionServiceURL string
	CatalogPath          string

	Development bool

	HTTPPort int

	Sweep SweepConfig
}

type KafkaConfig struct {
	Host string
	Port int
}

type MongoDBConfig struct {
	URI string
}

type RedisConfig struct {
	Host string
	Port int
}

type SweepConfig struct {
	// DraftTTL is how long a draft may sit undecided before it is expired.
	DraftTTL time.Duration
	// InactivityWindow is how long an accepted role may go without a newer
	// ledger entry before it is flagged inactive.
	InactivityWindow time.Duration
	// Interval is the period between sweep rounds.
	Interval time.Duration
}

func LoadGlobalConfig() Config {
	viper.SetDefault(kafkaHostFlag, "localhost")
	viper.SetDefault(kafkaPortFlag, 9092)
	viper.SetDefault(mongoDBURIFlag, "mongodb://localhost:27017")
	viper.SetDefault(redisHostFlag, "localhost")
	viper.SetDefault(redisPortFlag, 6379)
	viper.SetDefault(permissionServiceURLFlag, "http://localhost:10010")
	viper.SetDefault(catalogPathFlag, "roles.yaml")
	viper.SetDefault(developmentFlag, true)
	viper.SetDefault(httpPortFlag, 10030)
	viper.SetDefault(draftTTLFlag, 14*24*time.Hour)
	viper.SetDefault(inactivityWindowFlag, 18*24*time.Hour)
	viper.SetDefault(sweepIntervalFlag, 24*time.Hour)

	pflag.String(kafkaHostFlag, viper.GetString(kafkaHostFlag), "Kafka host")
	pflag.Int32(kafkaPortFlag, viper.GetInt32(kafkaPortFlag), "Kafka port")
	pflag.String(mongoDBURIFlag, viper.GetString(mongoDBURIFlag), "MongoDB URI")
	pflag.String(redisHostFlag, viper.GetString(redisHostFlag), "Redis host")
	pflag.Int32(redisPortFlag, viper.GetInt32(redisPortFlag), "Redis port")
	pflag.String(permissionServiceURLFlag, viper.GetString(permissionServiceURLFlag), "Base URL of the permission service")
	pflag.String(catalogPathFlag, viper.GetString(catalogPathFlag), "Path to the role catalog document")
	pflag.Bool(developmentFlag, viper.GetBool(developmentFlag), "Development mode")
	pflag.Int32(httpPortFlag, viper.GetInt32(httpPortFlag), "HTTP port")
	pflag.Duration(draftTTLFlag, viper.GetDuration(draftTTLFlag), "TTL for undecided application drafts")
	pflag.Duration(inactivityWindowFlag, viper.GetDuration(inactivityWindowFlag), "Inactivity window for accepted roles")
	pflag.Duration(sweepIntervalFlag, viper.GetDuration(sweepIntervalFlag), "Period between maintenance sweeps")
	pflag.Parse()

	// Bind the viper flags to environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	runtime.Must(viper.BindEnv(kafkaHostFlag))
	runtime.Must(viper.BindEnv(kafkaPortFlag))
	runtime.Must(viper.BindEnv(mongoDBURIFlag))
	runtime.Must(viper.BindEnv(redisHostFlag))
	runtime.Must(viper.BindEnv(redisPortFlag))
	runtime.Must(viper.BindEnv(permissionServiceURLFlag))
	runtime.Must(viper.BindEnv(catalogPathFlag))
	runtime.Must(viper.BindEnv(developmentFlag))
	runtime.Must(viper.BindEnv(httpPortFlag))
	runtime.Must(viper.BindEnv(draftTTLFlag))
	runtime.Must(viper.BindEnv(inactivityWindowFlag))
	runtime.Must(viper.BindEnv(sweepIntervalFlag))

	return Config{
		Kafka: KafkaConfig{
			Host: viper.GetString(kafkaHostFlag),
			Port: int(viper.GetInt32(kafkaPortFlag)),
		},
		MongoDB: MongoDBConfig{
			URI: viper.GetString(mongoDBURIFlag),
		},
		Redis: RedisConfig{
			Host: viper.GetString(redisHostFlag),
			Port: int(viper.GetInt32(redisPortFlag)),
		},
		PermissionServiceURL: viper.GetString(permissionServiceURLFlag),
		CatalogPath:          viper.GetString(catalogPathFlag),
		Development:          viper.GetBool(developmentFlag),
		HTTPPort:             int(viper.GetInt32(httpPortFlag)),
		Sweep: SweepConfig{
			DraftTTL:         viper.GetDuration(draftTTLFlag),
			InactivityWindow: viper.GetDuration(inactivityWindowFlag),
			Interval:         viper.GetDuration(sweepIntervalFlag),
		},
	}
}
