package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultAlertRadiusMeters  = 10000
	defaultAccessTTL          = 12 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		WorkerPort         int    `json:"workerPort" yaml:"workerPort"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access    string        `json:"access" yaml:"access"`
		AccessTTL time.Duration `json:"accessTtl" yaml:"accessTtl"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Storage selects the tracker store backend
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Redis backs the conditions cache and the offline queue when selected
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Tracker configures the boat registry and proximity alerts
	Tracker *TrackerConfig `json:"tracker" yaml:"tracker"`

	// Connectivity configures uplink detection for the offline SOS queue
	Connectivity *ConnectivityConfig `json:"connectivity" yaml:"connectivity"`

	// Simulation drives the fleet movement ticker
	Simulation *SimulationConfig `json:"simulation" yaml:"simulation"`

	// Weather, Marine and Advisory configure the external data providers
	Weather  *ProviderConfig `json:"weather" yaml:"weather"`
	Marine   *ProviderConfig `json:"marine" yaml:"marine"`
	Advisory *AdvisoryConfig `json:"advisory" yaml:"advisory"`
	Cache    *CacheConfig    `json:"cache" yaml:"cache"`
	Navigate *NavigateConfig `json:"navigation" yaml:"navigation" mapstructure:"navigation"`
	Voice    *VoiceConfig    `json:"voice" yaml:"voice"`
	Metrics  *MetricsConfig  `json:"metrics" yaml:"metrics"`
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
	QRCode   *QRCodeConfig   `json:"qrcode" yaml:"qrcode"`
	PubSub   *PubSubConfig   `json:"pubsub" yaml:"pubsub"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int        `json:"bcryptCost" yaml:"bcryptCost"`
	Users      []SeedUser `json:"users" yaml:"users"`
}

// SeedUser is a demo account created at start-up
type SeedUser struct {
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
	Name     string `json:"name" yaml:"name"`
	Role     string `json:"role" yaml:"role"`
	BoatID   string `json:"boatId" yaml:"boatId"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig selects where boats, SOS events and notifications live
type StorageConfig struct {
	// Driver is "memory" or "postgres"
	Driver string `json:"driver" yaml:"driver"`
}

// RedisConfig defines the redis connection
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// TrackerConfig configures the proximity notifier and the seed fleet
type TrackerConfig struct {
	AlertRadiusMeters float64            `json:"alertRadiusMeters" yaml:"alertRadiusMeters"`
	RecentWindow      time.Duration      `json:"recentWindow" yaml:"recentWindow"`
	Boats             []SeedBoat         `json:"boats" yaml:"boats"`
	OfflineQueue      OfflineQueueConfig `json:"offlineQueue" yaml:"offlineQueue"`
}

// SeedBoat is a boat registered at start-up
type SeedBoat struct {
	ID     string  `json:"id" yaml:"id"`
	Lat    float64 `json:"lat" yaml:"lat"`
	Lng    float64 `json:"lng" yaml:"lng"`
	Status string  `json:"status" yaml:"status"`
	Zone   string  `json:"zone" yaml:"zone"`
}

// OfflineQueueConfig selects the durable queue for SOS events raised offline
type OfflineQueueConfig struct {
	// Backend is "file", "redis" or "memory"
	Backend  string `json:"backend" yaml:"backend"`
	Path     string `json:"path" yaml:"path"`
	RedisKey string `json:"redisKey" yaml:"redisKey"`
}

// ConnectivityConfig defines how the uplink state is detected
type ConnectivityConfig struct {
	// Mode is "static" (use Online) or "http" (probe ProbeURL)
	Mode          string        `json:"mode" yaml:"mode"`
	Online        bool          `json:"online" yaml:"online"`
	ProbeURL      string        `json:"probeUrl" yaml:"probeUrl"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	CheckInterval time.Duration `json:"checkInterval" yaml:"checkInterval"`
}

// SimulationConfig drives the simulated fleet movement
type SimulationConfig struct {
	Enabled      bool          `json:"enabled" yaml:"enabled"`
	TickInterval time.Duration `json:"tickInterval" yaml:"tickInterval"`
	Seed         int64         `json:"seed" yaml:"seed"`
}

// ProviderConfig configures an external REST data provider.
// An empty APIKey selects mock data.
type ProviderConfig struct {
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// AdvisoryConfig configures the Gemini advisory generator
type AdvisoryConfig struct {
	APIKey        string        `json:"apiKey" yaml:"apiKey"`
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	Model         string        `json:"model" yaml:"model"`
	Temperature   float64       `json:"temperature" yaml:"temperature"`
	NearbyRadiusM float64       `json:"nearbyRadiusM" yaml:"nearbyRadiusM"`
}

// CacheConfig selects the last-known conditions cache
type CacheConfig struct {
	// Backend is "redis" or "memory"
	Backend string        `json:"backend" yaml:"backend"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// NavigateConfig holds geofences, harbors and the coastline heuristic
type NavigateConfig struct {
	DangerZones []ZoneConfig   `json:"dangerZones" yaml:"dangerZones"`
	SafeZones   []ZoneConfig   `json:"safeZones" yaml:"safeZones"`
	Harbors     []HarborConfig `json:"harbors" yaml:"harbors"`
	Coast       CoastConfig    `json:"coast" yaml:"coast"`
}

// ZoneConfig is a circular zone
type ZoneConfig struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Lat     float64 `json:"lat" yaml:"lat"`
	Lng     float64 `json:"lng" yaml:"lng"`
	RadiusM float64 `json:"radiusM" yaml:"radiusM"`
}

// HarborConfig is a safe harbor
type HarborConfig struct {
	Name string  `json:"name" yaml:"name"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lng  float64 `json:"lng" yaml:"lng"`
}

// CoastConfig is the bounding box used by the near-coast check
type CoastConfig struct {
	Lat     float64 `json:"lat" yaml:"lat"`
	Lng     float64 `json:"lng" yaml:"lng"`
	LatSpan float64 `json:"latSpan" yaml:"latSpan"`
	LngSpan float64 `json:"lngSpan" yaml:"lngSpan"`
}

// VoiceConfig configures voice alerts
type VoiceConfig struct {
	DefaultLanguage string `json:"defaultLanguage" yaml:"defaultLanguage"`
}

// MetricsConfig configures the prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	AuthorityTopic  string `json:"authorityTopic" yaml:"authorityTopic"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google", "kafka", or empty for a no-op publisher
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Audience expected in push OIDC tokens (for google provider)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Kafka settings (for kafka provider)
	Kafka KafkaConfig `json:"kafka" yaml:"kafka"`
}

// KafkaConfig defines the kafka writer
type KafkaConfig struct {
	Brokers      []string      `json:"brokers" yaml:"brokers"`
	Topic        string        `json:"topic" yaml:"topic"`
	GroupID      string        `json:"groupId" yaml:"groupId"` // Consumer group of the alert worker
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// SIMULATION_TICKINTERVAL -> simulation.tickInterval, matched against the YAML keys.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every section left empty by the config file.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.SecretKey.AccessTTL <= 0 {
		cfg.SecretKey.AccessTTL = defaultAccessTTL
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if len(cfg.Auth.Users) == 0 {
		cfg.Auth.Users = DefaultSeedUsers()
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "memory"
	}
	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "tidewise:"
	}
	cfg.applyTrackerDefaults()
	if cfg.Connectivity == nil {
		cfg.Connectivity = &ConnectivityConfig{Mode: "static", Online: true}
	}
	if cfg.Connectivity.Mode == "" {
		cfg.Connectivity.Mode = "static"
	}
	if cfg.Connectivity.Timeout <= 0 {
		cfg.Connectivity.Timeout = 2 * time.Second
	}
	if cfg.Connectivity.CheckInterval <= 0 {
		cfg.Connectivity.CheckInterval = 5 * time.Second
	}
	if cfg.Simulation == nil {
		cfg.Simulation = &SimulationConfig{}
	}
	if cfg.Simulation.TickInterval <= 0 {
		cfg.Simulation.TickInterval = 500 * time.Millisecond
	}
	cfg.applyProviderDefaults()
	if cfg.Navigate == nil {
		cfg.Navigate = &NavigateConfig{}
	}
	if len(cfg.Navigate.DangerZones) == 0 {
		cfg.Navigate.DangerZones = DefaultDangerZones()
	}
	if len(cfg.Navigate.SafeZones) == 0 {
		cfg.Navigate.SafeZones = DefaultSafeZones()
	}
	if len(cfg.Navigate.Harbors) == 0 {
		cfg.Navigate.Harbors = DefaultHarbors()
	}
	if cfg.Navigate.Coast == (CoastConfig{}) {
		cfg.Navigate.Coast = CoastConfig{Lat: 16.5, Lng: 80.65, LatSpan: 0.6, LngSpan: 0.8}
	}
	if cfg.Voice == nil {
		cfg.Voice = &VoiceConfig{}
	}
	if cfg.Voice.DefaultLanguage == "" {
		cfg.Voice.DefaultLanguage = "en"
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{Enabled: true}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
	if cfg.Firebase.AuthorityTopic == "" {
		cfg.Firebase.AuthorityTopic = "sos-authority"
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = 256
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.PubSub.Kafka.WriteTimeout <= 0 {
		cfg.PubSub.Kafka.WriteTimeout = 5 * time.Second
	}
	if cfg.PubSub.Kafka.GroupID == "" {
		cfg.PubSub.Kafka.GroupID = "tidewise-alertworker"
	}
}

func (cfg *Config) applyTrackerDefaults() {
	if cfg.Tracker == nil {
		cfg.Tracker = &TrackerConfig{}
	}
	if cfg.Tracker.AlertRadiusMeters <= 0 {
		cfg.Tracker.AlertRadiusMeters = defaultAlertRadiusMeters
	}
	if cfg.Tracker.RecentWindow <= 0 {
		cfg.Tracker.RecentWindow = 5 * time.Minute
	}
	if cfg.Tracker.Boats == nil {
		cfg.Tracker.Boats = DefaultSeedBoats()
	}
	if cfg.Tracker.OfflineQueue.Backend == "" {
		cfg.Tracker.OfflineQueue.Backend = "file"
	}
	if cfg.Tracker.OfflineQueue.Path == "" {
		cfg.Tracker.OfflineQueue.Path = filepath.Join(os.TempDir(), "tidewise_sos_queue_v1.json")
	}
	if cfg.Tracker.OfflineQueue.RedisKey == "" {
		cfg.Tracker.OfflineQueue.RedisKey = "sos_queue_v1"
	}
}

func (cfg *Config) applyProviderDefaults() {
	if cfg.Weather == nil {
		cfg.Weather = &ProviderConfig{}
	}
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if cfg.Marine == nil {
		cfg.Marine = &ProviderConfig{}
	}
	if cfg.Marine.BaseURL == "" {
		cfg.Marine.BaseURL = "https://api.stormglass.io/v2"
	}
	if cfg.Advisory == nil {
		cfg.Advisory = &AdvisoryConfig{}
	}
	if cfg.Advisory.BaseURL == "" {
		cfg.Advisory.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Advisory.Model == "" {
		cfg.Advisory.Model = "gemini-1.5-flash"
	}
	if cfg.Advisory.Temperature == 0 {
		cfg.Advisory.Temperature = 0.4
	}
	if cfg.Advisory.NearbyRadiusM <= 0 {
		cfg.Advisory.NearbyRadiusM = 5000
	}
	for _, timeout := range []*time.Duration{&cfg.Weather.Timeout, &cfg.Marine.Timeout, &cfg.Advisory.Timeout} {
		if *timeout <= 0 {
			*timeout = 5 * time.Second
		}
	}
	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "memory"
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = 6 * time.Hour
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds read replicas from POSTGRES_REPLICAS_{index}_{field}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
