package config

// Storage drivers
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

type StorageConfig interface {
	GetStorageDriver() string
	GetStoragePath() string
	GetRedisURL() string
}

var _ StorageConfig = Settings{}

func (s Settings) GetStorageDriver() string {
	return s.StorageDriver
}

// GetStoragePath is the JSON file for the file driver or the database file for sqlite
func (s Settings) GetStoragePath() string {
	return s.StoragePath
}

func (s Settings) GetRedisURL() string {
	return s.RedisURL
}
