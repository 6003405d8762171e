package bootstrap

import (
	httpapi "github.com/ypd-labs/cvp-lite-backend/internal/api/http"
	"github.com/ypd-labs/cvp-lite-backend/internal/api/http/middleware"

	assessmenthttp "github.com/ypd-labs/cvp-lite-backend/internal/assessment/http"
	assessmentservice "github.com/ypd-labs/cvp-lite-backend/internal/assessment/service"
	usershttp "github.com/ypd-labs/cvp-lite-backend/internal/users/http"
	usersrepo "github.com/ypd-labs/cvp-lite-backend/internal/users/repository"
	usersservice "github.com/ypd-labs/cvp-lite-backend/internal/users/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RouterDeps struct {
	ServiceName     string
	Version         string
	Redis           *redis.Client // nil when running fully in-memory
	RateLimitPerSec int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	// Allow-all CORS, same posture as the original deployment
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: false,
	}))
	r.Use(middleware.RequestIDMiddleware())
	if dep.Redis != nil && dep.RateLimitPerSec > 0 {
		r.Use(middleware.RateLimitMiddleware(dep.Redis, dep.RateLimitPerSec))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	rootHandler := httpapi.NewRootHandler(dep.ServiceName, dep.Version)
	rootHandler.RegisterRoutes(r)

	questionHandler := assessmenthttp.New(assessmentservice.NewQuestionService())
	questionHandler.Register(r.Group("/cvp_lite"))

	var store usersrepo.ProfileStore
	if dep.Redis != nil {
		store = usersrepo.NewRedisStore(dep.Redis)
	} else {
		store = usersrepo.NewMemoryStore()
	}
	profileHandler := usershttp.New(usersservice.NewProfileService(store))
	profileHandler.Register(r.Group("/user"))

	return r
}
