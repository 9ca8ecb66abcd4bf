package config

import (
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server Server `yaml:"server"`
}

type Server struct {
	Listen        string `yaml:"listen"`
	MongoURI      string `yaml:"mongoURI"`
	MongoDatabase string `yaml:"mongoDatabase"`

	// CacheBackend selects the entity read cache: none, memory, redis
	// or memcached.
	CacheBackend  string `yaml:"cacheBackend"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`

	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.Listen == "" {
		config.Server.Listen = ":8000"
	}
	if config.Server.MongoURI == "" {
		config.Server.MongoURI = "mongodb://localhost:27017"
	}
	if config.Server.MongoDatabase == "" {
		config.Server.MongoDatabase = "geodata"
	}
	if config.Server.CacheBackend == "" {
		config.Server.CacheBackend = "memory"
	}

	return config, nil
}
