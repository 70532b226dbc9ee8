package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// InsecureDefaultSecret is used for HMAC hashing and token signing when
// JWT_SECRET is not set. Known weakness: anyone who reads this source can
// forge tokens against such a deployment, so set JWT_SECRET everywhere
// except local development.
const InsecureDefaultSecret = "insecure-dev-secret"

type Config struct {
	MongoURI    string
	MongoDB     string
	Secret      []byte
	TokenTTL    time.Duration
	Port        string
	CORSOrigins []string
}

// Load reads configuration from the environment. A missing MONGO_URI is
// fatal; everything else has a default.
func Load() *Config {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatalf("MONGO_URI is not set")
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "quizgame"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = InsecureDefaultSecret
		log.Printf("WARNING: JWT_SECRET is not set, falling back to the insecure default")
	}

	ttl := 168 * time.Hour
	if raw := os.Getenv("TOKEN_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			log.Fatalf("invalid TOKEN_TTL_HOURS %q", raw)
		}
		ttl = time.Duration(hours) * time.Hour
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		MongoURI:    uri,
		MongoDB:     dbName,
		Secret:      []byte(secret),
		TokenTTL:    ttl,
		Port:        port,
		CORSOrigins: origins,
	}
}
